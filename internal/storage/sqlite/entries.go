package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/arjunveda/studentspend/internal/expense"
)

func (s *sqliteStorage) LoadExpenses(ctx context.Context) ([]expense.Record, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT id, amount, category, note, date FROM expenses ORDER BY position ASC")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	records := []expense.Record{}
	for rows.Next() {
		var id, category, note, date string
		var amount int64
		if err = rows.Scan(&id, &amount, &category, &note, &date); err != nil {
			return nil, err
		}

		day, err := expense.ParseDate(date)
		if err != nil {
			return nil, fmt.Errorf("malformed date %q for record %s: %w", date, id, err)
		}
		record, err := expense.New(id, amount, expense.ParseCategory(category), note, day)
		if err != nil {
			return nil, fmt.Errorf("malformed record %s: %w", id, err)
		}
		records = append(records, record)
	}

	return records, rows.Err()
}

// SaveExpenses replaces the full ledger in one transaction, mirroring the
// whole-value write semantics of the jsonfile backend.
func (s *sqliteStorage) SaveExpenses(ctx context.Context, records []expense.Record) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}

	if _, err = tx.ExecContext(ctx, "DELETE FROM expenses"); err != nil {
		return rollback(tx, err)
	}

	for i, r := range records {
		_, err = tx.ExecContext(ctx,
			"INSERT INTO expenses (id, position, amount, category, note, date) VALUES (?, ?, ?, ?, ?, ?)",
			r.ID, i, r.Amount, r.Category.Label(), r.Note, r.Date.Format(expense.DateLayout))
		if err != nil {
			return rollback(tx, err)
		}
	}

	return tx.Commit()
}

func (s *sqliteStorage) LoadBudget(ctx context.Context) (int64, bool, error) {
	var limit int64
	err := s.db.QueryRowContext(ctx, "SELECT monthly_limit FROM budget WHERE id = 1").Scan(&limit)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, err
	}
	return limit, true, nil
}

func (s *sqliteStorage) SaveBudget(ctx context.Context, limit int64) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO budget (id, monthly_limit) VALUES (1, ?)
		ON CONFLICT (id) DO UPDATE SET monthly_limit = excluded.monthly_limit
	`, limit)
	return err
}
