package insight

import (
	"fmt"
	"strings"

	"github.com/arjunveda/studentspend/internal/expense"
	"github.com/arjunveda/studentspend/internal/metrics"
)

// prompt embeds the budget limit, total spent, remaining amount and a
// newline-delimited listing of every expense, one line per record in
// `timestamp: category - amount (note)` form.
func (c *Client) prompt(records []expense.Record, monthlyLimit int64) string {
	totalSpent := metrics.TotalSpent(records)
	remaining := metrics.Remaining(records, monthlyLimit)

	lines := make([]string, len(records))
	for i, r := range records {
		lines[i] = fmt.Sprintf("%s: %s - %s%s (%s)",
			r.Date.Format(expense.DateLayout),
			r.Category.Label(),
			c.currency,
			expense.FormatAmount(r.Amount),
			r.Note)
	}

	return fmt.Sprintf(`As a student financial mentor, analyze these university expenses and provide 3-4 bullet points of concise, actionable advice.
Currency: %s
Monthly Budget: %s%s
Total Spent: %s%s
Remaining: %s%s

Expenses:
%s

Keep it friendly, student-centric, and encouraging. Focus on typical student spending patterns (like eating out, transport, mobile recharges) and saving tips.`,
		c.currency,
		c.currency, expense.FormatAmount(monthlyLimit),
		c.currency, expense.FormatAmount(totalSpent),
		c.currency, expense.FormatAmount(remaining),
		strings.Join(lines, "\n"))
}
