package clear

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/arjunveda/studentspend/internal/cli"
	"github.com/arjunveda/studentspend/internal/config"
	"github.com/arjunveda/studentspend/internal/logger"
	"github.com/arjunveda/studentspend/internal/session"
)

type clearCommand struct {
	force bool
}

func NewCommand() cli.Command {
	return &clearCommand{}
}

func (c *clearCommand) Description() string {
	return "Delete every logged expense"
}

func (c *clearCommand) SetFlags(fset *flag.FlagSet) {
	fset.BoolVar(&c.force, "f", false, "skip the confirmation prompt")
}

func (c *clearCommand) Run(sess *session.Session, _ *config.Config, _ *logger.Logger, _ []string) error {
	if sess.Ledger.Len() == 0 {
		fmt.Println("ledger is already empty")
		return nil
	}

	if !c.force {
		fmt.Printf("delete all %d records? [y/N] ", sess.Ledger.Len())
		reader := bufio.NewReader(os.Stdin)
		answer, _ := reader.ReadString('\n')
		if strings.TrimSpace(strings.ToLower(answer)) != "y" {
			fmt.Println("aborted")
			return nil
		}
	}

	if err := sess.Ledger.Clear(context.Background()); err != nil {
		return err
	}

	fmt.Println("ledger cleared")
	return nil
}
