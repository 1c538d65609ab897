// Package assets provides the client-side persistence layer for vault assets.
//
// # Overview
//
// The package defines a Repository interface for the five statements the
// vault issues against the assets table, and a SQLite-backed implementation
// (SQLiteRepository) over a dbx.DBTX (either *sql.DB or *sql.Tx).
//
// # Data Model
//
// Rows mirror models.Asset. Optional text columns may hold NULL in databases
// written by older clients; they are read back as empty strings. Listing is
// ordered by createdAt descending, ties broken by id descending.
//
// # Errors
//
// Driver errors are wrapped with context and returned as-is; GetByID maps a
// missing row to common.ErrorNotFound. Classification into storage outcome
// classes happens in the services layer.
//
// Typical Usage
//
//	repo := assets.NewSQLiteRepository(db)
//	id, _ := repo.Insert(ctx, form, time.Now().UnixMilli())
//	list, _ := repo.GetAll(ctx)
//	one, _ := repo.GetByID(ctx, id)
//	_ = repo.Update(ctx, id, form)
//	_ = repo.DeleteByID(ctx, id)
package assets
