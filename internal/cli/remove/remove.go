package remove

import (
	"context"
	"flag"
	"fmt"

	"github.com/arjunveda/studentspend/internal/cli"
	"github.com/arjunveda/studentspend/internal/config"
	"github.com/arjunveda/studentspend/internal/logger"
	"github.com/arjunveda/studentspend/internal/session"
)

type removeCommand struct {
}

func NewCommand() cli.Command {
	return removeCommand{}
}

func (c removeCommand) Description() string {
	return "Remove an expense by id: remove <id> (see list -ids)"
}

func (c removeCommand) SetFlags(*flag.FlagSet) {
}

func (c removeCommand) Run(sess *session.Session, _ *config.Config, _ *logger.Logger, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("usage: remove <id>")
	}

	// Removing an absent id is a no-op by contract, so this never fails
	// on a stale id.
	if err := sess.Ledger.Remove(context.Background(), args[0]); err != nil {
		return err
	}

	fmt.Printf("removed %s\n", args[0])
	return nil
}
