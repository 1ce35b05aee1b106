package util

import "time"

// LastNDays returns the last n calendar days ending at anchor's day,
// oldest first, each at midnight UTC. The window is anchored to the
// anchor date, not to any data, so it shifts every day.
func LastNDays(n int, anchor time.Time) []time.Time {
	days := make([]time.Time, 0, n)
	y, m, d := anchor.Date()
	end := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	for i := n - 1; i >= 0; i-- {
		days = append(days, end.AddDate(0, 0, -i))
	}
	return days
}
