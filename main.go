package main

import (
	"fmt"
	"os"

	"github.com/GustavoCaso/expense-tracker/internal/cli"
	"github.com/GustavoCaso/expense-tracker/internal/cli/add"
	"github.com/GustavoCaso/expense-tracker/internal/cli/delete"
	exportCmd "github.com/GustavoCaso/expense-tracker/internal/cli/export"
	"github.com/GustavoCaso/expense-tracker/internal/cli/list"
	"github.com/GustavoCaso/expense-tracker/internal/cli/summary"
	"github.com/GustavoCaso/expense-tracker/internal/config"
	"github.com/GustavoCaso/expense-tracker/internal/expense"
	"github.com/GustavoCaso/expense-tracker/internal/logger"
	"github.com/GustavoCaso/expense-tracker/internal/storage"
)

var subcommands = map[string]cli.Command{
	"add":     add.NewCommand(),
	"delete":  delete.NewCommand(),
	"list":    list.NewCommand(),
	"summary": summary.NewCommand(),
	"export":  exportCmd.NewCommand(),
}

func main() {
	if err := config.LoadEnv(); err != nil {
		fmt.Fprintf(os.Stderr, "%s\n", err.Error())
		os.Exit(1)
	}

	configPath := os.Getenv("EXPENSE_TRACKER_CONFIG")
	if configPath == "" {
		configPath = config.DefaultFile
	}

	conf, err := config.Parse(configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Unable to parse the configuration. %s\n", err.Error())
		os.Exit(1)
	}

	appLogger := logger.New(conf.Logger)

	store, err := storage.New(conf.Store, appLogger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s\n", err.Error())
		os.Exit(1)
	}

	appLogger.Debug("Using store", "path", store.Path())

	app := &cli.App{
		Name:     "expense-tracker",
		Commands: subcommands,
		Tracker:  expense.New(store, appLogger),
		Stdout:   os.Stdout,
		Stderr:   os.Stderr,
	}

	os.Exit(app.Run(os.Args[1:]))
}
