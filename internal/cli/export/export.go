package export

import (
	"flag"
	"fmt"
	"os"

	"github.com/arjunveda/studentspend/internal/cli"
	"github.com/arjunveda/studentspend/internal/config"
	exportPkg "github.com/arjunveda/studentspend/internal/export"
	"github.com/arjunveda/studentspend/internal/logger"
	"github.com/arjunveda/studentspend/internal/session"
)

type exportCommand struct {
	outputPath string
}

func NewCommand() cli.Command {
	return &exportCommand{}
}

func (c *exportCommand) Description() string {
	return "Export the ledger as CSV"
}

func (c *exportCommand) SetFlags(fset *flag.FlagSet) {
	fset.StringVar(&c.outputPath, "o", "", "output file (defaults to stdout)")
}

func (c *exportCommand) Run(sess *session.Session, _ *config.Config, _ *logger.Logger, _ []string) error {
	if c.outputPath == "" {
		return exportPkg.CSV(os.Stdout, sess.Records())
	}

	file, err := os.Create(c.outputPath)
	if err != nil {
		return fmt.Errorf("unable to create %s: %w", c.outputPath, err)
	}
	defer file.Close()

	if err = exportPkg.CSV(file, sess.Records()); err != nil {
		return err
	}

	fmt.Printf("exported %d records to %s\n", sess.Ledger.Len(), c.outputPath)
	return nil
}
