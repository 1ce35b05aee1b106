package budget

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

type budgetCommand struct {
}

func NewCommand() cli.Command {
	return budgetCommand{}
}

func (c budgetCommand) Description() string {
	return "Show or set the monthly budget limit: budget [limit]"
}

func (c budgetCommand) SetFlags(*flag.FlagSet) {
}

func (c budgetCommand) Run(sess *session.Session, conf *config.Config, _ *logger.Logger, args []string) error {
	if len(args) == 0 {
		fmt.Printf("monthly budget: %s%s\n", conf.Currency, util.FormatMoney(sess.Budget.Limit(), ",", "."))
		return nil
	}

	limit, err := expense.ParseLimit(args[0])
	if err != nil {
		return fmt.Errorf("invalid budget limit %q: %w", args[0], err)
	}

	if err := sess.Budget.Set(context.Background(), limit); err != nil {
		return err
	}

	fmt.Printf("monthly budget set to %s%s\n", conf.Currency, util.FormatMoney(limit, ",", "."))
	return nil
}
