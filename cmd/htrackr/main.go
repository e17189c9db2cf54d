package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/alecthomas/kong"

	"github.com/julianstephens/htrackr/internal/cli"
	"github.com/julianstephens/htrackr/internal/config"
	"github.com/julianstephens/htrackr/internal/storage"
)

var CLI struct {
	Version kong.VersionFlag
	Config  string `help:"Config file path." type:"path"`
	DB      string `help:"Database file path (overrides config)." type:"path"`

	List   cli.ListCmd   `cmd:"" help:"List habits for a month." default:"1"`
	Create cli.CreateCmd `cmd:"" help:"Create a new habit."`
	Delete cli.DeleteCmd `cmd:"" help:"Delete a habit and its entries."`
	Rename cli.RenameCmd `cmd:"" help:"Rename a habit."`
	ID     cli.IDCmd     `cmd:"" name:"id" help:"Print a habit's identifier."`
	Mark   cli.MarkCmd   `cmd:"" help:"Mark a habit as complete for a date."`
	Unmark cli.UnmarkCmd `cmd:"" help:"Unmark a habit for a date."`
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name("htrackr"),
		kong.Description("Personal habit tracker"),
		kong.UsageOnError(),
		kong.Vars{"version": "v0.1.0"},
	)

	cfg, err := config.Load(CLI.Config)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	dbPath := cfg.DB
	if CLI.DB != "" {
		dbPath = CLI.DB
	}

	// Storage backend is selected by extension, JSON for .json paths and
	// SQLite for everything else.
	var store storage.Provider
	if strings.HasSuffix(dbPath, ".json") {
		store = storage.NewJSONStore(dbPath)
	} else {
		store = storage.NewSQLiteStore(dbPath)
	}

	if err := store.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	appCtx := &cli.Context{
		Store:   store,
		Compact: cfg.Compact,
	}

	err = ctx.Run(appCtx)
	if cerr := store.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
