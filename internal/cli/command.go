package cli

import (
	"flag"
	"fmt"
	"strconv"
	"strings"

	"github.com/arjunveda/studentspend/internal/config"
	"github.com/arjunveda/studentspend/internal/expense"
	"github.com/arjunveda/studentspend/internal/logger"
	"github.com/arjunveda/studentspend/internal/session"
)

// Command is a single CLI subcommand. args holds the positional arguments
// left after flag parsing.
type Command interface {
	SetFlags(fset *flag.FlagSet)
	Description() string
	Run(sess *session.Session, conf *config.Config, log *logger.Logger, args []string) error
}

// ParseAdd parses the `add <amount> [categoryIndex] [note...]` grammar
// shared by the add subcommand and the interactive shell. The category
// index is 1-based; a second token that is not a valid index is treated as
// the start of the note. The category defaults to the first known one.
func ParseAdd(args []string) (int64, expense.Category, string, error) {
	if len(args) == 0 {
		return 0, expense.Category{}, "", fmt.Errorf("usage: add <amount> [categoryIndex] [note...]")
	}

	amount, err := expense.ParseAmount(args[0])
	if err != nil {
		return 0, expense.Category{}, "", err
	}

	category, _ := expense.CategoryAt(1)
	rest := args[1:]

	if len(rest) > 0 {
		if index, convErr := strconv.Atoi(rest[0]); convErr == nil {
			c, ok := expense.CategoryAt(index)
			if !ok {
				return 0, expense.Category{}, "",
					fmt.Errorf("category index %d out of range (1-%d)", index, len(expense.Categories()))
			}
			category = c
			rest = rest[1:]
		}
	}

	return amount, category, strings.Join(rest, " "), nil
}
