package add

import (
	"context"
	"flag"
	"fmt"

	"github.com/arjunveda/studentspend/internal/cli"
	"github.com/arjunveda/studentspend/internal/config"
	"github.com/arjunveda/studentspend/internal/expense"
	"github.com/arjunveda/studentspend/internal/logger"
	"github.com/arjunveda/studentspend/internal/session"
	"github.com/arjunveda/studentspend/internal/util"
)

type addCommand struct {
	customCategory string
}

func NewCommand() cli.Command {
	return &addCommand{}
}

func (c *addCommand) Description() string {
	return "Log an expense: add <amount> [categoryIndex] [note...]"
}

func (c *addCommand) SetFlags(fset *flag.FlagSet) {
	fset.StringVar(&c.customCategory, "category", "", "custom category label instead of a category index")
}

func (c *addCommand) Run(sess *session.Session, conf *config.Config, _ *logger.Logger, args []string) error {
	amount, category, note, err := cli.ParseAdd(args)
	if err != nil {
		return err
	}

	if c.customCategory != "" {
		category, err = expense.NewCustomCategory(c.customCategory)
		if err != nil {
			return err
		}
	}

	record, err := sess.Ledger.Add(context.Background(), amount, category, note)
	if err != nil {
		return err
	}

	fmt.Printf("logged %s%s for %s on %s\n",
		conf.Currency,
		util.FormatMoney(record.Amount, ",", "."),
		util.ColorOutput(record.Category.Label(), "cyan"),
		record.Date.Format(expense.DateLayout))
	return nil
}
