package insight

import (
	"context"
	"flag"
	"fmt"

	"github.com/arjunveda/studentspend/internal/cli"
	"github.com/arjunveda/studentspend/internal/config"
	"github.com/arjunveda/studentspend/internal/logger"
	"github.com/arjunveda/studentspend/internal/session"
)

type insightCommand struct {
}

func NewCommand() cli.Command {
	return insightCommand{}
}

func (c insightCommand) Description() string {
	return "Ask the AI mentor for spending advice"
}

func (c insightCommand) SetFlags(*flag.FlagSet) {
}

func (c insightCommand) Run(sess *session.Session, _ *config.Config, _ *logger.Logger, _ []string) error {
	fmt.Println("analyzing your spending...")

	text, err := sess.Insight(context.Background())
	if err != nil {
		return err
	}

	fmt.Println(text)
	return nil
}
