package ledger

import (
	"context"
	"errors"
	"fmt"

	"github.com/arjunveda/studentspend/internal/logger"
	"github.com/arjunveda/studentspend/internal/storage"
)

// ErrNegativeLimit rejects negative monthly limits. A zero limit is valid
// and simply means everything spent is over budget.
var ErrNegativeLimit = errors.New("monthly limit cannot be negative")

// Budget holds the single mutable monthly limit. Changing it reinterprets
// all remaining-budget calculations; no history is kept.
type Budget struct {
	limit  int64
	store  storage.Storage
	logger *logger.Logger
}

// OpenBudget loads the stored limit, falling back to defaultLimit when the
// entry is absent or malformed.
func OpenBudget(ctx context.Context, store storage.Storage, defaultLimit int64, log *logger.Logger) *Budget {
	b := &Budget{
		limit:  defaultLimit,
		store:  store,
		logger: log,
	}

	limit, ok, err := store.LoadBudget(ctx)
	switch {
	case err != nil:
		log.Warn("stored budget unreadable, using default limit", "error", err.Error())
	case ok:
		b.limit = limit
	}

	return b
}

// Set replaces the monthly limit and persists it.
func (b *Budget) Set(ctx context.Context, limit int64) error {
	if limit < 0 {
		return ErrNegativeLimit
	}

	if err := b.store.SaveBudget(ctx, limit); err != nil {
		return fmt.Errorf("unable to persist budget: %w", err)
	}

	b.limit = limit
	b.logger.Debug("budget updated", "monthly_limit", limit)
	return nil
}

// Limit returns the monthly limit in cents.
func (b *Budget) Limit() int64 {
	return b.limit
}
