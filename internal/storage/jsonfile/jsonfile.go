// Package jsonfile is the default storage backend: two JSON files in a
// state directory, one for the ledger and one for the budget, each
// rewritten whole on every mutation.
package jsonfile

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/arjunveda/studentspend/internal/expense"
	"github.com/arjunveda/studentspend/internal/storage"
)

const (
	expensesFile = "expenses.json"
	budgetFile   = "budget.json"
)

type jsonFileStorage struct {
	dir string
}

func New(dir string) (storage.Storage, error) {
	if err := os.MkdirAll(dir, 0700); err != nil {
		return nil, fmt.Errorf("unable to create state dir %s: %w", dir, err)
	}
	return &jsonFileStorage{dir: dir}, nil
}

func (s *jsonFileStorage) LoadExpenses(_ context.Context) ([]expense.Record, error) {
	data, err := os.ReadFile(filepath.Join(s.dir, expensesFile))
	if os.IsNotExist(err) {
		return []expense.Record{}, nil
	}
	if err != nil {
		return nil, err
	}
	return storage.DecodeExpenses(data)
}

func (s *jsonFileStorage) SaveExpenses(_ context.Context, records []expense.Record) error {
	data, err := storage.EncodeExpenses(records)
	if err != nil {
		return err
	}
	return s.writeEntry(expensesFile, data)
}

func (s *jsonFileStorage) LoadBudget(_ context.Context) (int64, bool, error) {
	data, err := os.ReadFile(filepath.Join(s.dir, budgetFile))
	if os.IsNotExist(err) {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, err
	}
	limit, err := storage.DecodeBudget(data)
	if err != nil {
		return 0, false, err
	}
	return limit, true, nil
}

func (s *jsonFileStorage) SaveBudget(_ context.Context, limit int64) error {
	data, err := storage.EncodeBudget(limit)
	if err != nil {
		return err
	}
	return s.writeEntry(budgetFile, data)
}

func (s *jsonFileStorage) Close() error {
	return nil
}

// writeEntry replaces an entry through a temp file and rename, so a crash
// mid-write never leaves a torn entry behind.
func (s *jsonFileStorage) writeEntry(name string, data []byte) error {
	tmp, err := os.CreateTemp(s.dir, name+".tmp-*")
	if err != nil {
		return err
	}

	if _, err = tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return err
	}
	if err = tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return err
	}

	return os.Rename(tmp.Name(), filepath.Join(s.dir, name))
}
