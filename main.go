package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/joho/godotenv"
	"golang.org/x/exp/maps"

	"github.com/arjunveda/studentspend/internal/cli"
	addCmd "github.com/arjunveda/studentspend/internal/cli/add"
	budgetCmd "github.com/arjunveda/studentspend/internal/cli/budget"
	clearCmd "github.com/arjunveda/studentspend/internal/cli/clear"
	exportCmd "github.com/arjunveda/studentspend/internal/cli/export"
	insightCmd "github.com/arjunveda/studentspend/internal/cli/insight"
	listCmd "github.com/arjunveda/studentspend/internal/cli/list"
	removeCmd "github.com/arjunveda/studentspend/internal/cli/remove"
	reportCmd "github.com/arjunveda/studentspend/internal/cli/report"
	shellCmd "github.com/arjunveda/studentspend/internal/cli/shell"
	"github.com/arjunveda/studentspend/internal/config"
	"github.com/arjunveda/studentspend/internal/logger"
	"github.com/arjunveda/studentspend/internal/session"
	"github.com/arjunveda/studentspend/internal/storage"
	"github.com/arjunveda/studentspend/internal/storage/jsonfile"
	"github.com/arjunveda/studentspend/internal/storage/sqlite"
)

var configPath string

var subcommands = map[string]cli.Command{
	"add":     addCmd.NewCommand(),
	"budget":  budgetCmd.NewCommand(),
	"list":    listCmd.NewCommand(),
	"remove":  removeCmd.NewCommand(),
	"report":  reportCmd.NewCommand(),
	"insight": insightCmd.NewCommand(),
	"export":  exportCmd.NewCommand(),
	"clear":   clearCmd.NewCommand(),
	"shell":   shellCmd.NewCommand(),
}

func main() {
	if len(os.Args) < 2 {
		fmt.Println("subcommand is required")
		printHelp()
		os.Exit(1)
	}

	commandName := os.Args[1]
	if strings.Contains(commandName, "help") {
		printHelp()
		os.Exit(0)
	}

	command, ok := subcommands[commandName]
	if !ok {
		fmt.Printf("unknown command: %s\n\n", commandName)
		printHelp()
		os.Exit(1)
	}

	fset := flag.NewFlagSet(commandName, flag.ExitOnError)
	fset.StringVar(&configPath, "c", "studentspend.toml", "Configuration file")
	command.SetFlags(fset)
	_ = fset.Parse(os.Args[2:])

	// .env is optional; it usually only carries GEMINI_API_KEY.
	_ = godotenv.Load()

	conf, err := config.Parse(configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "unable to parse the configuration: %s\n", err.Error())
		os.Exit(1)
	}

	log := logger.New(conf.Logger)

	store, err := openStorage(conf)
	if err != nil {
		log.Fatal("unable to open storage", "backend", string(conf.Storage.Backend), "error", err.Error())
	}
	defer func() { _ = store.Close() }()

	sess := session.New(context.Background(), conf, store, log)

	if err := command.Run(sess, conf, log, fset.Args()); err != nil {
		log.Fatal("command failed", "command", commandName, "error", err.Error())
	}
}

func openStorage(conf *config.Config) (storage.Storage, error) {
	switch conf.Storage.Backend {
	case config.BackendSQLite:
		return sqlite.New(filepath.Join(conf.Storage.StateDir, conf.Storage.SQLiteFile))
	default:
		return jsonfile.New(conf.Storage.StateDir)
	}
}

func printHelp() {
	fmt.Printf("usage: studentspend <subcommand> [flags]\n\n")

	names := maps.Keys(subcommands)
	sort.Strings(names)
	for _, name := range names {
		fmt.Printf("  %-8s %s\n", name, subcommands[name].Description())
	}
}
