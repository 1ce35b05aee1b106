// Package chart renders the aggregate views as PNG images: a donut chart
// for the category breakdown and a bar chart for the trailing daily series.
package chart

import (
	"bytes"
	"fmt"

	"github.com/wcharczuk/go-chart/v2"

	"github.com/arjunveda/studentspend/internal/metrics"
)

const (
	chartWidth  = 1024
	chartHeight = 512
	centsInUnit = 100.0
)

// CategoryDonut renders the per-category spending breakdown. Returns nil
// bytes when there is nothing to draw.
func CategoryDonut(totals []metrics.CategoryTotal, currency string) ([]byte, error) {
	values := make([]chart.Value, 0, len(totals))
	for _, t := range totals {
		if t.Amount <= 0 {
			continue
		}
		amount := float64(t.Amount) / centsInUnit
		values = append(values, chart.Value{
			Label: fmt.Sprintf("%s: %s%.2f", t.Category.Label(), currency, amount),
			Value: amount,
		})
	}

	if len(values) == 0 {
		return nil, nil
	}

	donut := chart.DonutChart{
		Width:  chartHeight,
		Height: chartHeight,
		Values: values,
	}

	var buffer bytes.Buffer
	if err := donut.Render(chart.PNG, &buffer); err != nil {
		return nil, fmt.Errorf("failed to render category chart: %w", err)
	}
	return buffer.Bytes(), nil
}

// DailyBars renders the trailing daily series, one bar per day including
// zero days, so gaps in spending stay visible.
func DailyBars(series []metrics.DayTotal, currency string) ([]byte, error) {
	if len(series) == 0 {
		return nil, nil
	}

	bars := make([]chart.Value, len(series))
	var maxAmount float64
	for i, day := range series {
		amount := float64(day.Amount) / centsInUnit
		if amount > maxAmount {
			maxAmount = amount
		}
		bars[i] = chart.Value{
			Label: day.Date.Format("01-02"),
			Value: amount,
		}
	}

	// A flat all-zero week still renders with a sane axis.
	if maxAmount == 0 {
		maxAmount = 1
	}

	barChart := chart.BarChart{
		Width:    chartWidth,
		Height:   chartHeight,
		BarWidth: 60,
		YAxis: chart.YAxis{
			ValueFormatter: func(v interface{}) string {
				if f, ok := v.(float64); ok {
					return fmt.Sprintf("%s%.0f", currency, f)
				}
				return ""
			},
			Range: &chart.ContinuousRange{Min: 0, Max: maxAmount},
		},
		Bars: bars,
	}

	var buffer bytes.Buffer
	if err := barChart.Render(chart.PNG, &buffer); err != nil {
		return nil, fmt.Errorf("failed to render daily chart: %w", err)
	}
	return buffer.Bytes(), nil
}
