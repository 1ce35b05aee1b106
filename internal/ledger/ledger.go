// Package ledger owns the ordered expense collection and the budget
// configuration. Every mutation persists the full entry synchronously
// before returning; derived views live in the metrics and filter packages.
package ledger

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/arjunveda/studentspend/internal/expense"
	"github.com/arjunveda/studentspend/internal/logger"
	"github.com/arjunveda/studentspend/internal/storage"
)

// Ledger is the ordered collection of expense records, newest first.
type Ledger struct {
	records []expense.Record
	store   storage.Storage
	logger  *logger.Logger

	now   func() time.Time
	newID func() string
}

// Open loads the stored ledger. Absent or malformed stored data starts an
// empty ledger; startup never fails on bad state.
func Open(ctx context.Context, store storage.Storage, log *logger.Logger) *Ledger {
	l := &Ledger{
		store:  store,
		logger: log,
		now:    time.Now,
		newID:  uuid.NewString,
	}

	records, err := store.LoadExpenses(ctx)
	if err != nil {
		log.Warn("stored expenses unreadable, starting with an empty ledger", "error", err.Error())
		records = []expense.Record{}
	}
	l.records = records

	return l
}

// Add validates the amount, stamps a fresh id and today's date, prepends
// the record and persists the full ledger. Nothing is stored when
// validation fails.
func (l *Ledger) Add(ctx context.Context, amount int64, category expense.Category, note string) (expense.Record, error) {
	record, err := expense.New(l.newID(), amount, category, note, l.now())
	if err != nil {
		return expense.Record{}, err
	}

	updated := make([]expense.Record, 0, len(l.records)+1)
	updated = append(updated, record)
	updated = append(updated, l.records...)

	if err = l.store.SaveExpenses(ctx, updated); err != nil {
		return expense.Record{}, fmt.Errorf("unable to persist ledger: %w", err)
	}

	l.records = updated
	l.logger.Debug("expense added", "id", record.ID, "category", record.Category.Label())
	return record, nil
}

// Remove deletes the record with the given id. An absent id is a no-op,
// not an error, which also makes Remove idempotent.
func (l *Ledger) Remove(ctx context.Context, id string) error {
	index := -1
	for i, r := range l.records {
		if r.ID == id {
			index = i
			break
		}
	}
	if index == -1 {
		return nil
	}

	updated := make([]expense.Record, 0, len(l.records)-1)
	updated = append(updated, l.records[:index]...)
	updated = append(updated, l.records[index+1:]...)

	if err := l.store.SaveExpenses(ctx, updated); err != nil {
		return fmt.Errorf("unable to persist ledger: %w", err)
	}

	l.records = updated
	l.logger.Debug("expense removed", "id", id)
	return nil
}

// Clear empties the ledger and persists the empty state.
func (l *Ledger) Clear(ctx context.Context) error {
	empty := []expense.Record{}
	if err := l.store.SaveExpenses(ctx, empty); err != nil {
		return fmt.Errorf("unable to persist ledger: %w", err)
	}
	l.records = empty
	return nil
}

// Records returns a copy of the ledger, newest first. Callers never hold
// a reference into the ledger's own slice.
func (l *Ledger) Records() []expense.Record {
	out := make([]expense.Record, len(l.records))
	copy(out, l.records)
	return out
}

func (l *Ledger) Len() int {
	return len(l.records)
}
