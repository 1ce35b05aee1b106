// Package sqlite is an alternative storage backend for users who prefer a
// single database file over the JSON state directory. Writes keep the same
// whole-value replace semantics as the jsonfile backend.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	// import sqlite driver.
	_ "github.com/mattn/go-sqlite3"

	"github.com/arjunveda/studentspend/internal/storage"
)

const busyTimeoutMillis = 5000

type sqliteStorage struct {
	db *sql.DB
}

func New(source string) (storage.Storage, error) {
	db, err := sql.Open("sqlite3", source)
	if err != nil {
		return nil, err
	}

	ctx := context.Background()

	if _, err = db.ExecContext(ctx, "PRAGMA journal_mode = WAL"); err != nil {
		return nil, fmt.Errorf("failed to set journal_mode: %w", err)
	}

	if _, err = db.ExecContext(ctx, fmt.Sprintf("PRAGMA busy_timeout = %d", busyTimeoutMillis)); err != nil {
		return nil, fmt.Errorf("failed to set busy_timeout: %w", err)
	}

	s := &sqliteStorage{db: db}

	if err = s.applyMigrations(ctx); err != nil {
		return nil, err
	}

	return s, nil
}

func (s *sqliteStorage) Close() error {
	return s.db.Close()
}
