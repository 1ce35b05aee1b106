package storage

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"

	"github.com/arjunveda/studentspend/internal/expense"
)

// Storage persists the two whole-value entries the application owns: the
// expense ledger and the budget configuration. Every write replaces the
// full entry; there are no partial patches, so no rollback logic exists.
//
// Load methods report absence without an error. Malformed stored data is
// an error here; callers recover by treating it as absent.
type Storage interface {
	LoadExpenses(ctx context.Context) ([]expense.Record, error)
	SaveExpenses(ctx context.Context, records []expense.Record) error

	LoadBudget(ctx context.Context) (limit int64, ok bool, err error)
	SaveBudget(ctx context.Context, limit int64) error

	Close() error
}

// expenseEntry is the wire shape of a single stored record. The amount is a
// decimal number in currency units, the timestamp a YYYY-MM-DD day.
type expenseEntry struct {
	ID        string      `json:"id"`
	Amount    json.Number `json:"amount"`
	Category  string      `json:"category"`
	Note      string      `json:"note"`
	Timestamp string      `json:"timestamp"`
}

// budgetEntry is the wire shape of the budget configuration.
type budgetEntry struct {
	MonthlyLimit json.Number `json:"monthlyLimit"`
}

// EncodeExpenses serializes the ledger newest-first as a JSON array.
func EncodeExpenses(records []expense.Record) ([]byte, error) {
	entries := make([]expenseEntry, len(records))
	for i, r := range records {
		entries[i] = expenseEntry{
			ID:        r.ID,
			Amount:    json.Number(expense.FormatAmount(r.Amount)),
			Category:  r.Category.Label(),
			Note:      r.Note,
			Timestamp: r.Date.Format(expense.DateLayout),
		}
	}
	return encode(entries)
}

// DecodeExpenses parses a stored JSON ledger, preserving order.
func DecodeExpenses(data []byte) ([]expense.Record, error) {
	var entries []expenseEntry
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("malformed expenses entry: %w", err)
	}

	records := make([]expense.Record, 0, len(entries))
	for _, e := range entries {
		amount, err := expense.ParseAmount(e.Amount.String())
		if err != nil {
			return nil, fmt.Errorf("malformed amount %q for record %s: %w", e.Amount, e.ID, err)
		}
		date, err := expense.ParseDate(e.Timestamp)
		if err != nil {
			return nil, fmt.Errorf("malformed timestamp %q for record %s: %w", e.Timestamp, e.ID, err)
		}
		record, err := expense.New(e.ID, amount, expense.ParseCategory(e.Category), e.Note, date)
		if err != nil {
			return nil, err
		}
		records = append(records, record)
	}
	return records, nil
}

// EncodeBudget serializes the budget configuration.
func EncodeBudget(limit int64) ([]byte, error) {
	return encode(budgetEntry{MonthlyLimit: json.Number(expense.FormatAmount(limit))})
}

// encode marshals without HTML escaping, so category labels like
// "Food & Drinks" are stored verbatim.
func encode(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}

// DecodeBudget parses a stored budget entry.
func DecodeBudget(data []byte) (int64, error) {
	var entry budgetEntry
	if err := json.Unmarshal(data, &entry); err != nil {
		return 0, fmt.Errorf("malformed budget entry: %w", err)
	}
	limit, err := expense.ParseLimit(entry.MonthlyLimit.String())
	if err != nil {
		return 0, fmt.Errorf("malformed monthlyLimit %q: %w", entry.MonthlyLimit, err)
	}
	return limit, nil
}
