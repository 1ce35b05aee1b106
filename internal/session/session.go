// Package session wires the ledger, budget and insight collaborator into a
// single explicit object. There is no ambient global state: everything a
// command needs hangs off the Session it is handed.
package session

import (
	"context"
	"errors"
	"sync/atomic"

	"github.com/arjunveda/studentspend/internal/config"
	"github.com/arjunveda/studentspend/internal/expense"
	"github.com/arjunveda/studentspend/internal/insight"
	"github.com/arjunveda/studentspend/internal/ledger"
	"github.com/arjunveda/studentspend/internal/logger"
	"github.com/arjunveda/studentspend/internal/storage"
)

// ErrInsightInFlight rejects a second advice request while one is pending.
var ErrInsightInFlight = errors.New("an insight request is already in flight")

type Session struct {
	Ledger *ledger.Ledger
	Budget *ledger.Budget

	insight         *insight.Client
	insightInFlight atomic.Bool
	logger          *logger.Logger
}

// New loads both stored entries (recovering to defaults on absent or
// malformed data) and builds the insight client from configuration.
func New(ctx context.Context, conf *config.Config, store storage.Storage, log *logger.Logger) *Session {
	return &Session{
		Ledger:  ledger.Open(ctx, store, log),
		Budget:  ledger.OpenBudget(ctx, store, conf.DefaultLimitCents(), log),
		insight: insight.NewClient(conf.Insight, conf.Currency),
		logger:  log,
	}
}

// Insight requests AI advice for the current snapshot. Only one request may
// be in flight at a time; the guard is cooperative, not a lock, mirroring
// the single-threaded mutation model. Provider failures are logged and
// replaced with the fixed fallback message; they never propagate.
func (s *Session) Insight(ctx context.Context) (string, error) {
	if !s.insightInFlight.CompareAndSwap(false, true) {
		return "", ErrInsightInFlight
	}
	defer s.insightInFlight.Store(false)

	records := s.Ledger.Records()
	text, err := s.insight.Generate(ctx, records, s.Budget.Limit())
	if err != nil {
		s.logger.Warn("insight provider failed, using fallback", "error", err.Error())
		return insight.FallbackMessage, nil
	}
	return text, nil
}

// Records returns the current ledger snapshot, newest first.
func (s *Session) Records() []expense.Record {
	return s.Ledger.Records()
}
