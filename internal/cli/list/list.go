package list

import (
	"flag"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/arjunveda/studentspend/internal/cli"
	"github.com/arjunveda/studentspend/internal/config"
	"github.com/arjunveda/studentspend/internal/expense"
	"github.com/arjunveda/studentspend/internal/filter"
	"github.com/arjunveda/studentspend/internal/logger"
	"github.com/arjunveda/studentspend/internal/session"
	"github.com/arjunveda/studentspend/internal/util"
)

type listCommand struct {
	query    string
	category string
	showIDs  bool
}

func NewCommand() cli.Command {
	return &listCommand{}
}

func (c *listCommand) Description() string {
	return "List logged expenses, newest first"
}

func (c *listCommand) SetFlags(fset *flag.FlagSet) {
	fset.StringVar(&c.query, "q", "", "free-text query matched against note and category")
	fset.StringVar(&c.category, "category", "", "only show expenses with this exact category")
	fset.BoolVar(&c.showIDs, "ids", false, "include record ids (needed for remove)")
}

func (c *listCommand) Run(sess *session.Session, conf *config.Config, _ *logger.Logger, _ []string) error {
	f := filter.Filter{Query: c.query}
	if c.category != "" {
		category := expense.ParseCategory(c.category)
		f.Category = &category
	}

	records := filter.Apply(sess.Records(), f)
	if len(records) == 0 {
		fmt.Println("no expenses logged")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 8, 2, ' ', 0)
	for _, r := range records {
		note := r.Note
		if note == "" {
			note = "-"
		}
		line := fmt.Sprintf("%s\t%s\t%s%s\t%s",
			r.Date.Format(expense.DateLayout),
			util.ColorOutput(r.Category.Label(), "cyan"),
			conf.Currency,
			util.FormatMoney(r.Amount, ",", "."),
			note)
		if c.showIDs {
			line += "\t" + util.ColorOutput(r.ID, "faint")
		}
		fmt.Fprintln(w, line)
	}
	if err := w.Flush(); err != nil {
		return err
	}

	fmt.Printf("%d records\n", len(records))
	return nil
}
