package expense

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"time"
)

// ErrInvalidAmount is returned when an amount fails boundary validation:
// missing, non-numeric, zero or negative.
var ErrInvalidAmount = errors.New("amount must be a positive number")

const (
	centsPerUnit = 100

	// DateLayout is the day-granularity timestamp format used everywhere:
	// storage, export and the insight prompt.
	DateLayout = "2006-01-02"
)

// Record is a single logged expense. Records are immutable once created:
// there is no update operation, only add and remove by id.
type Record struct {
	ID       string
	Amount   int64 // cents
	Category Category
	Note     string
	Date     time.Time // day granularity, midnight UTC
}

// New builds a record from already-validated parts. Amounts must be positive.
func New(id string, amount int64, category Category, note string, date time.Time) (Record, error) {
	if amount <= 0 {
		return Record{}, ErrInvalidAmount
	}
	return Record{
		ID:       id,
		Amount:   amount,
		Category: category,
		Note:     note,
		Date:     Day(date),
	}, nil
}

// Day truncates a time to its calendar day at midnight UTC.
func Day(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// ParseDate parses a YYYY-MM-DD timestamp.
func ParseDate(s string) (time.Time, error) {
	return time.Parse(DateLayout, s)
}

// ParseAmount converts user input like "200" or "49.50" into cents.
// Zero, negative, or non-numeric input is rejected at this boundary and
// never reaches the ledger.
func ParseAmount(s string) (int64, error) {
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, ErrInvalidAmount
	}
	cents := int64(math.Round(f * centsPerUnit))
	if cents <= 0 {
		return 0, ErrInvalidAmount
	}
	return cents, nil
}

// ParseLimit is ParseAmount for budget limits, where zero is allowed
// but negative values are rejected.
func ParseLimit(s string) (int64, error) {
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, ErrInvalidAmount
	}
	cents := int64(math.Round(f * centsPerUnit))
	if cents < 0 {
		return 0, ErrInvalidAmount
	}
	return cents, nil
}

// FormatAmount renders cents as a plain decimal string ("200", "49.50").
// This is the storage and export form; terminal rendering goes through
// util.FormatMoney instead.
func FormatAmount(cents int64) string {
	sign := ""
	if cents < 0 {
		sign = "-"
		cents = -cents
	}
	units := cents / centsPerUnit
	rest := cents % centsPerUnit
	if rest == 0 {
		return fmt.Sprintf("%s%d", sign, units)
	}
	return fmt.Sprintf("%s%d.%02d", sign, units, rest)
}
