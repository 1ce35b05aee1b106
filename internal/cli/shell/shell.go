// Package shell is the interactive line-oriented surface layered over the
// same session operations as the rest of the CLI. It is a thin text
// front-end, not a separate data path.
package shell

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/arjunveda/studentspend/internal/cli"
	"github.com/arjunveda/studentspend/internal/config"
	"github.com/arjunveda/studentspend/internal/expense"
	"github.com/arjunveda/studentspend/internal/logger"
	"github.com/arjunveda/studentspend/internal/session"
	"github.com/arjunveda/studentspend/internal/util"
)

const prompt = "studentspend> "

const helpText = `commands:
  add <amount> [categoryIndex] [note...]  log an expense
  budget [limit]                          show or set the monthly limit
  list                                    show all expenses
  insight                                 ask the AI mentor for advice
  clear                                   delete every expense
  help                                    show this help
  exit                                    leave the shell`

type shellCommand struct {
}

func NewCommand() cli.Command {
	return shellCommand{}
}

func (c shellCommand) Description() string {
	return "Interactive shell over the same ledger operations"
}

func (c shellCommand) SetFlags(*flag.FlagSet) {
}

func (c shellCommand) Run(sess *session.Session, conf *config.Config, _ *logger.Logger, _ []string) error {
	fmt.Println("studentspend shell. Type 'help' for commands, 'exit' to leave.")
	return run(sess, conf, os.Stdin, os.Stdout)
}

// run drives the shell loop. Split from Run so tests can feed scripted
// input and capture output.
func run(sess *session.Session, conf *config.Config, in io.Reader, out io.Writer) error {
	scanner := bufio.NewScanner(in)

	for {
		fmt.Fprint(out, prompt)
		if !scanner.Scan() {
			fmt.Fprintln(out)
			return scanner.Err()
		}

		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		fields := strings.Fields(line)
		command, args := fields[0], fields[1:]

		switch command {
		case "exit", "quit":
			return nil
		case "help":
			fmt.Fprintln(out, helpText)
		case "add":
			runAdd(sess, conf, out, args)
		case "budget":
			runBudget(sess, conf, out, args)
		case "list":
			runList(sess, conf, out)
		case "insight":
			runInsight(sess, out)
		case "clear":
			runClear(sess, out)
		default:
			fmt.Fprintf(out, "unknown command: %s\n", line)
		}
	}
}

func runAdd(sess *session.Session, conf *config.Config, out io.Writer, args []string) {
	amount, category, note, err := cli.ParseAdd(args)
	if err != nil {
		fmt.Fprintf(out, "error: %s\n", err.Error())
		return
	}

	record, err := sess.Ledger.Add(context.Background(), amount, category, note)
	if err != nil {
		fmt.Fprintf(out, "error: %s\n", err.Error())
		return
	}

	fmt.Fprintf(out, "logged %s%s for %s\n",
		conf.Currency, util.FormatMoney(record.Amount, ",", "."), record.Category.Label())
}

func runBudget(sess *session.Session, conf *config.Config, out io.Writer, args []string) {
	if len(args) == 0 {
		fmt.Fprintf(out, "monthly budget: %s%s\n",
			conf.Currency, util.FormatMoney(sess.Budget.Limit(), ",", "."))
		return
	}

	limit, err := expense.ParseLimit(args[0])
	if err != nil {
		fmt.Fprintf(out, "error: invalid budget limit %q\n", args[0])
		return
	}
	if err = sess.Budget.Set(context.Background(), limit); err != nil {
		fmt.Fprintf(out, "error: %s\n", err.Error())
		return
	}

	fmt.Fprintf(out, "monthly budget set to %s%s\n", conf.Currency, util.FormatMoney(limit, ",", "."))
}

func runList(sess *session.Session, conf *config.Config, out io.Writer) {
	records := sess.Records()
	if len(records) == 0 {
		fmt.Fprintln(out, "no expenses logged")
		return
	}

	for _, r := range records {
		note := r.Note
		if note == "" {
			note = "-"
		}
		fmt.Fprintf(out, "%s  %-18s %s%s  %s\n",
			r.Date.Format(expense.DateLayout),
			r.Category.Label(),
			conf.Currency,
			util.FormatMoney(r.Amount, ",", "."),
			note)
	}
	fmt.Fprintf(out, "%d records\n", len(records))
}

func runInsight(sess *session.Session, out io.Writer) {
	fmt.Fprintln(out, "analyzing your spending...")

	text, err := sess.Insight(context.Background())
	if err != nil {
		fmt.Fprintf(out, "error: %s\n", err.Error())
		return
	}
	fmt.Fprintln(out, text)
}

func runClear(sess *session.Session, out io.Writer) {
	if err := sess.Ledger.Clear(context.Background()); err != nil {
		fmt.Fprintf(out, "error: %s\n", err.Error())
		return
	}
	fmt.Fprintln(out, "ledger cleared")
}
