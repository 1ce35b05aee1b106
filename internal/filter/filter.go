// Package filter projects a ledger snapshot through a free-text query and
// an optional category selector. It never mutates the ledger.
package filter

import (
	"strings"

	"github.com/arjunveda/studentspend/internal/expense"
)

// Filter holds the transient search state. Category is a pointer so the
// nil "match all" sentinel stays distinct from any real category.
type Filter struct {
	Query    string
	Category *expense.Category
}

// Matches reports whether a single record passes the filter. The query is a
// case-insensitive substring match against the note or the category label;
// an empty query matches everything.
func (f Filter) Matches(r expense.Record) bool {
	if f.Category != nil && r.Category != *f.Category {
		return false
	}

	query := strings.ToLower(strings.TrimSpace(f.Query))
	if query == "" {
		return true
	}

	return strings.Contains(strings.ToLower(r.Note), query) ||
		strings.Contains(strings.ToLower(r.Category.Label()), query)
}

// Apply returns the records matching the filter, preserving ledger order.
func Apply(records []expense.Record, f Filter) []expense.Record {
	out := make([]expense.Record, 0, len(records))
	for _, r := range records {
		if f.Matches(r) {
			out = append(out, r)
		}
	}
	return out
}
