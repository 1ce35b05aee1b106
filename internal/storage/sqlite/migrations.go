package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"
)

// migrations run in order; each entry's index+1 is its version. The
// position column preserves the ledger's newest-first ordering across
// a save/load round trip.
var migrations = []string{
	`CREATE TABLE IF NOT EXISTS expenses (
		id TEXT PRIMARY KEY,
		position INTEGER NOT NULL,
		amount INTEGER NOT NULL,
		category TEXT NOT NULL,
		note TEXT NOT NULL,
		date TEXT NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS budget (
		id INTEGER PRIMARY KEY CHECK (id = 1),
		monthly_limit INTEGER NOT NULL
	)`,
}

func (s *sqliteStorage) applyMigrations(ctx context.Context) error {
	_, err := s.db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS schema_migrations (
			version INTEGER PRIMARY KEY,
			applied_at INTEGER NOT NULL
		)
	`)
	if err != nil {
		return fmt.Errorf("failed to create migrations table: %w", err)
	}

	var current int
	err = s.db.QueryRowContext(ctx, "SELECT COALESCE(MAX(version), 0) FROM schema_migrations").Scan(&current)
	if err != nil {
		return fmt.Errorf("failed to read schema version: %w", err)
	}

	for i := current; i < len(migrations); i++ {
		version := i + 1
		if err = s.applyMigration(ctx, version, migrations[i]); err != nil {
			return fmt.Errorf("migration %d failed: %w", version, err)
		}
	}

	return nil
}

func (s *sqliteStorage) applyMigration(ctx context.Context, version int, statement string) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}

	if _, err = tx.ExecContext(ctx, statement); err != nil {
		return rollback(tx, err)
	}

	_, err = tx.ExecContext(ctx,
		"INSERT INTO schema_migrations (version, applied_at) VALUES (?, ?)",
		version, time.Now().Unix())
	if err != nil {
		return rollback(tx, err)
	}

	return tx.Commit()
}

func rollback(tx *sql.Tx, err error) error {
	if rErr := tx.Rollback(); rErr != nil {
		return rErr
	}
	return err
}
