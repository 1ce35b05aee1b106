package report

import (
	"embed"
	"flag"
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"
	"text/template"
	"time"

	chartPkg "github.com/arjunveda/studentspend/internal/chart"
	"github.com/arjunveda/studentspend/internal/cli"
	"github.com/arjunveda/studentspend/internal/config"
	"github.com/arjunveda/studentspend/internal/logger"
	"github.com/arjunveda/studentspend/internal/metrics"
	"github.com/arjunveda/studentspend/internal/session"
	"github.com/arjunveda/studentspend/internal/util"
)

// content holds our static content.
//
//go:embed templates/*
var content embed.FS

type categoryLine struct {
	Name   string
	Amount int64
}

type dayLine struct {
	Day    string
	Amount int64
}

type reportData struct {
	Currency    string
	Limit       int64
	Spent       int64
	Remaining   int64
	PercentUsed float64
	OverBudget  bool
	WindowDays  int
	Categories  []categoryLine
	Series      []dayLine
}

type reportCommand struct {
	windowDays int
	chartsDir  string
}

func NewCommand() cli.Command {
	return &reportCommand{}
}

func (c *reportCommand) Description() string {
	return "Show totals, budget usage, category breakdown and the daily series"
}

func (c *reportCommand) SetFlags(fset *flag.FlagSet) {
	fset.IntVar(&c.windowDays, "days", metrics.DefaultWindowDays, "trailing window for the daily series")
	fset.StringVar(&c.chartsDir, "charts", "", "directory to additionally render PNG charts into")
}

func (c *reportCommand) Run(sess *session.Session, conf *config.Config, log *logger.Logger, _ []string) error {
	records := sess.Records()
	limit := sess.Budget.Limit()
	byCategory := metrics.ByCategory(records)
	series := metrics.DailySeries(records, c.windowDays, time.Now())

	data := reportData{
		Currency:    conf.Currency,
		Limit:       limit,
		Spent:       metrics.TotalSpent(records),
		Remaining:   metrics.Remaining(records, limit),
		PercentUsed: metrics.PercentUsed(records, limit),
		WindowDays:  c.windowDays,
	}
	data.OverBudget = data.Remaining < 0

	for _, entry := range byCategory {
		data.Categories = append(data.Categories, categoryLine{
			Name:   entry.Category.Label(),
			Amount: entry.Amount,
		})
	}
	for _, day := range series {
		data.Series = append(data.Series, dayLine{
			Day:    day.Date.Format("01-02"),
			Amount: day.Amount,
		})
	}

	if err := renderTemplate(os.Stdout, "report.tmpl", data); err != nil {
		return fmt.Errorf("unable to render report: %w", err)
	}

	if c.chartsDir != "" {
		// Chart failures are reported but never abort the report itself.
		if err := c.renderCharts(byCategory, series, conf.Currency); err != nil {
			log.Error("unable to render charts", "error", err.Error())
		}
	}

	return nil
}

func (c *reportCommand) renderCharts(
	byCategory []metrics.CategoryTotal,
	series []metrics.DayTotal,
	currency string,
) error {
	if err := os.MkdirAll(c.chartsDir, 0700); err != nil {
		return err
	}

	donut, err := chartPkg.CategoryDonut(byCategory, currency)
	if err != nil {
		return err
	}
	if donut != nil {
		if err = os.WriteFile(filepath.Join(c.chartsDir, "categories.png"), donut, 0600); err != nil {
			return err
		}
		fmt.Printf("wrote %s\n", filepath.Join(c.chartsDir, "categories.png"))
	}

	bars, err := chartPkg.DailyBars(series, currency)
	if err != nil {
		return err
	}
	if bars != nil {
		if err = os.WriteFile(filepath.Join(c.chartsDir, "daily.png"), bars, 0600); err != nil {
			return err
		}
		fmt.Printf("wrote %s\n", filepath.Join(c.chartsDir, "daily.png"))
	}

	return nil
}

var templateFuncs = template.FuncMap{
	"formatMoney": util.FormatMoney,
	"colorOutput": util.ColorOutput,
}

func renderTemplate(out io.Writer, templateName string, value interface{}) error {
	tmpl, err := content.ReadFile(path.Join("templates", templateName))
	if err != nil {
		return err
	}
	t := template.Must(template.New(templateName).Funcs(templateFuncs).Parse(string(tmpl)))
	return t.Execute(out, value)
}
