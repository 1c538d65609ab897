package assets

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/legacykeeper/internal/client/models"
	"github.com/dmitrijs2005/legacykeeper/internal/common"
	"github.com/dmitrijs2005/legacykeeper/internal/dbx"
)

const selectColumns = `id, name, category, account, password, note, imageUri, createdAt`

// SQLiteRepository implements Repository using a DBTX (either *sql.DB or *sql.Tx).
type SQLiteRepository struct {
	db dbx.DBTX
}

// NewSQLiteRepository returns a new SQLiteRepository bound to the given DBTX.
func NewSQLiteRepository(db dbx.DBTX) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

func (r *SQLiteRepository) Insert(ctx context.Context, f models.AssetFormData, createdAt int64) (int64, error) {
	query := `INSERT INTO assets (name, category, account, password, note, imageUri, createdAt)
			VALUES (?, ?, ?, ?, ?, ?, ?)`
	res, err := r.db.ExecContext(ctx, query,
		f.Name, f.Category, f.Account, f.Password, f.Note, f.ImageURI, createdAt)
	if err != nil {
		return models.NoID, fmt.Errorf("failed to insert asset: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return models.NoID, fmt.Errorf("failed to get last insert id: %w", err)
	}
	return id, nil
}

func (r *SQLiteRepository) GetAll(ctx context.Context) ([]models.Asset, error) {
	query := `SELECT ` + selectColumns + ` FROM assets ORDER BY createdAt DESC, id DESC`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to select assets: %w", err)
	}
	defer rows.Close()

	result := make([]models.Asset, 0)
	for rows.Next() {
		a, err := scanAsset(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan asset row: %w", err)
		}
		result = append(result, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate asset rows: %w", err)
	}
	return result, nil
}

func (r *SQLiteRepository) GetByID(ctx context.Context, id int64) (models.Asset, error) {
	query := `SELECT ` + selectColumns + ` FROM assets WHERE id = ?`
	a, err := scanAsset(r.db.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return models.Asset{}, common.ErrorNotFound
	}
	if err != nil {
		return models.Asset{}, fmt.Errorf("failed to get asset %d: %w", id, err)
	}
	return a, nil
}

func (r *SQLiteRepository) Update(ctx context.Context, id int64, f models.AssetFormData) error {
	query := `UPDATE assets SET name = ?, category = ?, account = ?, password = ?, note = ?, imageUri = ?
			WHERE id = ?`
	_, err := r.db.ExecContext(ctx, query,
		f.Name, f.Category, f.Account, f.Password, f.Note, f.ImageURI, id)
	if err != nil {
		return fmt.Errorf("failed to update asset %d: %w", id, err)
	}
	return nil
}

func (r *SQLiteRepository) DeleteByID(ctx context.Context, id int64) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM assets WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete asset %d: %w", id, err)
	}
	return nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanAsset(s scanner) (models.Asset, error) {
	var (
		a                               models.Asset
		account, password, note, imgURI sql.NullString
	)
	err := s.Scan(&a.ID, &a.Name, &a.Category, &account, &password, &note, &imgURI, &a.CreatedAt)
	if err != nil {
		return models.Asset{}, err
	}
	a.Account = account.String
	a.Password = password.String
	a.Note = note.String
	a.ImageURI = imgURI.String
	return a, nil
}
