// Package export serializes a ledger snapshot for download. It has no
// network or storage dependency.
package export

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/arjunveda/studentspend/internal/expense"
)

// CSV writes the ledger in current order with the header
// Date,Category,Amount,Note. Going through encoding/csv means notes
// containing commas or quotes are escaped instead of corrupting the row.
func CSV(writer io.Writer, records []expense.Record) error {
	w := csv.NewWriter(writer)
	defer w.Flush()

	rows := make([][]string, 0, len(records)+1)
	rows = append(rows, []string{"Date", "Category", "Amount", "Note"})

	for _, r := range records {
		rows = append(rows, []string{
			r.Date.Format(expense.DateLayout),
			r.Category.Label(),
			expense.FormatAmount(r.Amount),
			r.Note,
		})
	}

	if err := w.WriteAll(rows); err != nil {
		return fmt.Errorf("failed to write CSV records: %w", err)
	}

	return nil
}
