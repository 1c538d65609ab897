package assets

import (
	"context"

	"github.com/dmitrijs2005/legacykeeper/internal/client/models"
)

// Repository describes CRUD operations for Asset rows.
type Repository interface {
	// Insert stores a new row and returns its id.
	Insert(ctx context.Context, form models.AssetFormData, createdAt int64) (int64, error)

	// GetAll returns every row, newest first.
	GetAll(ctx context.Context) ([]models.Asset, error)

	// GetByID returns one row or common.ErrorNotFound.
	GetByID(ctx context.Context, id int64) (models.Asset, error)

	// Update overwrites the editable columns of the row with the given id.
	// Updating a missing id is not an error.
	Update(ctx context.Context, id int64, form models.AssetFormData) error

	// DeleteByID removes a row. Deleting a missing id is not an error.
	DeleteByID(ctx context.Context, id int64) error
}
