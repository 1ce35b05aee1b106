// Package metrics derives totals, budget usage, category breakdowns and the
// trailing daily series from a ledger snapshot. Everything here is pure and
// recomputed on every read: ledgers are small, so no caching is kept.
package metrics

import (
	"sort"
	"time"

	"github.com/arjunveda/studentspend/internal/expense"
	"github.com/arjunveda/studentspend/internal/util"
)

const percentFull = 100.0

// DefaultWindowDays is the trailing window for the daily series.
const DefaultWindowDays = 7

type CategoryTotal struct {
	Category expense.Category
	Amount   int64
}

type DayTotal struct {
	Date   time.Time
	Amount int64
}

// TotalSpent sums every record's amount.
func TotalSpent(records []expense.Record) int64 {
	var total int64
	for _, r := range records {
		total += r.Amount
	}
	return total
}

// Remaining is the monthly limit minus the total spent. Negative values
// mean over budget and are a first-class signal, not an error.
func Remaining(records []expense.Record, monthlyLimit int64) int64 {
	return monthlyLimit - TotalSpent(records)
}

// PercentUsed is the share of the monthly limit spent, clamped to [0, 100].
// A zero limit counts as fully used as soon as anything is spent, so the
// result is always defined.
func PercentUsed(records []expense.Record, monthlyLimit int64) float64 {
	spent := TotalSpent(records)
	if monthlyLimit <= 0 {
		if spent > 0 {
			return percentFull
		}
		return 0
	}

	percent := float64(spent) / float64(monthlyLimit) * percentFull
	if percent > percentFull {
		return percentFull
	}
	if percent < 0 {
		return 0
	}
	return percent
}

// ByCategory groups spending by category label. Categories with no records
// are omitted entirely; entries are ordered by descending amount with the
// label as tiebreak. Summing every entry always equals TotalSpent.
func ByCategory(records []expense.Record) []CategoryTotal {
	totals := make(map[expense.Category]int64)
	for _, r := range records {
		totals[r.Category] += r.Amount
	}

	out := make([]CategoryTotal, 0, len(totals))
	for c, amount := range totals {
		out = append(out, CategoryTotal{Category: c, Amount: amount})
	}

	sort.Slice(out, func(i, j int) bool {
		if out[i].Amount != out[j].Amount {
			return out[i].Amount > out[j].Amount
		}
		return out[i].Category.Label() < out[j].Category.Label()
	})

	return out
}

// DailySeries returns one entry per calendar day for the windowDays days
// ending at now's day, oldest first. Days without records have a zero sum.
// The window is anchored to now, not to the ledger, so it shifts every day
// even with no new data.
func DailySeries(records []expense.Record, windowDays int, now time.Time) []DayTotal {
	days := util.LastNDays(windowDays, now)

	byDay := make(map[time.Time]int64, windowDays)
	for _, day := range days {
		byDay[day] = 0
	}
	for _, r := range records {
		if _, inWindow := byDay[r.Date]; inWindow {
			byDay[r.Date] += r.Amount
		}
	}

	series := make([]DayTotal, len(days))
	for i, day := range days {
		series[i] = DayTotal{Date: day, Amount: byDay[day]}
	}
	return series
}
