package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/dmitrijs2005/legacykeeper/internal/client/database"
	"github.com/dmitrijs2005/legacykeeper/internal/client/models"
	"github.com/dmitrijs2005/legacykeeper/internal/client/repositories/assets"
	"github.com/dmitrijs2005/legacykeeper/internal/common"
	"github.com/dmitrijs2005/legacykeeper/internal/logging"
)

// StoreState tracks AssetStore initialisation.
type StoreState int

const (
	// StateUninitialized means Init has not finished yet.
	StateUninitialized StoreState = iota
	// StateReady means the schema is in place and CRUD calls reach storage.
	StateReady
	// StateUnavailable means Init finished but storage could not be set up.
	StateUnavailable
)

func (s StoreState) String() string {
	switch s {
	case StateReady:
		return "ready"
	case StateUnavailable:
		return "unavailable"
	default:
		return "uninitialized"
	}
}

// AssetStore is the durable CRUD surface over vault assets.
type AssetStore struct {
	log logging.Logger
	now func() time.Time

	mu    sync.RWMutex
	state StoreState
	repo  assets.Repository
}

// AssetStoreOption customises an AssetStore.
type AssetStoreOption func(*AssetStore)

// WithAssetClock overrides the clock used for createdAt.
func WithAssetClock(now func() time.Time) AssetStoreOption {
	return func(s *AssetStore) { s.now = now }
}

// NewAssetStore returns an uninitialised store. Call Init before use.
func NewAssetStore(log logging.Logger, opts ...AssetStoreOption) *AssetStore {
	s := &AssetStore{log: log.With("component", "assets"), now: time.Now}
	for _, o := range opts {
		o(s)
	}
	return s
}

// Init creates the schema on db if needed and makes the store ready. It is
// idempotent. On failure the store becomes unavailable: every later call
// fails with ErrStorageUnavailable and listing returns nothing.
func (s *AssetStore) Init(ctx context.Context, db *sql.DB) error {
	if db == nil {
		return s.fail(ctx, errors.New("no database handle"))
	}
	if err := database.RunMigrations(ctx, db); err != nil {
		return s.fail(ctx, err)
	}
	s.Attach(assets.NewSQLiteRepository(db))
	s.log.Debug(ctx, "asset store ready")
	return nil
}

// Attach makes the store ready over a repository whose schema is already in place.
func (s *AssetStore) Attach(repo assets.Repository) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.repo = repo
	s.state = StateReady
}

func (s *AssetStore) fail(ctx context.Context, err error) error {
	s.mu.Lock()
	s.state = StateUnavailable
	s.repo = nil
	s.mu.Unlock()

	s.log.Error(ctx, "asset store initialisation failed", "err", err)
	return fmt.Errorf("%w: %w", common.ErrStorageUnavailable, err)
}

// State reports the initialisation state.
func (s *AssetStore) State() StoreState {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

// Ready reports whether Init has completed, successfully or not.
func (s *AssetStore) Ready() bool {
	return s.State() != StateUninitialized
}

// Available reports whether CRUD calls reach storage.
func (s *AssetStore) Available() bool {
	return s.State() == StateReady
}

func (s *AssetStore) repository() (assets.Repository, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.state != StateReady {
		return nil, fmt.Errorf("%w: asset store is %s", common.ErrStorageUnavailable, s.state)
	}
	return s.repo, nil
}

// Insert stores a new asset stamped with the current time and returns its
// id. On failure it returns models.NoID.
func (s *AssetStore) Insert(ctx context.Context, form models.AssetFormData) (int64, error) {
	repo, err := s.repository()
	if err != nil {
		s.log.Error(ctx, "insert asset", "err", err)
		return models.NoID, err
	}

	createdAt := s.now().UnixMilli()
	id, err := repo.Insert(ctx, form, createdAt)
	if err != nil {
		s.log.Error(ctx, "insert asset", "err", err)
		return models.NoID, fmt.Errorf("%w: %w", common.ErrWriteFailure, err)
	}

	s.log.Debug(ctx, "asset inserted", "id", id, "category", form.Category)
	return id, nil
}

// GetAll lists every asset, newest first. It never fails: when storage is
// unavailable or the query breaks, the error is logged and the result is empty.
func (s *AssetStore) GetAll(ctx context.Context) []models.Asset {
	repo, err := s.repository()
	if err != nil {
		s.log.Warn(ctx, "list assets", "err", err)
		return []models.Asset{}
	}

	list, err := repo.GetAll(ctx)
	if err != nil {
		s.log.Error(ctx, "list assets", "err", err)
		return []models.Asset{}
	}
	return list
}

// GetByID looks up one asset. A missing row yields common.ErrorNotFound; a
// failed lookup yields ErrReadFailure or ErrStorageUnavailable.
func (s *AssetStore) GetByID(ctx context.Context, id int64) (models.Asset, error) {
	repo, err := s.repository()
	if err != nil {
		s.log.Error(ctx, "get asset", "id", id, "err", err)
		return models.Asset{}, err
	}

	a, err := repo.GetByID(ctx, id)
	if errors.Is(err, common.ErrorNotFound) {
		s.log.Debug(ctx, "asset not found", "id", id)
		return models.Asset{}, err
	}
	if err != nil {
		s.log.Error(ctx, "get asset", "id", id, "err", err)
		return models.Asset{}, fmt.Errorf("%w: %w", common.ErrReadFailure, err)
	}
	return a, nil
}

// Update overwrites the editable fields of asset id. createdAt is left
// alone. An id that matches nothing is still a success.
func (s *AssetStore) Update(ctx context.Context, id int64, form models.AssetFormData) error {
	repo, err := s.repository()
	if err != nil {
		s.log.Error(ctx, "update asset", "id", id, "err", err)
		return err
	}

	if err := repo.Update(ctx, id, form); err != nil {
		s.log.Error(ctx, "update asset", "id", id, "err", err)
		return fmt.Errorf("%w: %w", common.ErrWriteFailure, err)
	}

	s.log.Debug(ctx, "asset updated", "id", id)
	return nil
}

// Delete removes asset id. Deleting a missing id is a success.
func (s *AssetStore) Delete(ctx context.Context, id int64) error {
	repo, err := s.repository()
	if err != nil {
		s.log.Error(ctx, "delete asset", "id", id, "err", err)
		return err
	}

	if err := repo.DeleteByID(ctx, id); err != nil {
		s.log.Error(ctx, "delete asset", "id", id, "err", err)
		return fmt.Errorf("%w: %w", common.ErrWriteFailure, err)
	}

	s.log.Debug(ctx, "asset deleted", "id", id)
	return nil
}
