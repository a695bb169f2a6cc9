package ui

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/lkaestner/tourplan/internal/config"
	"github.com/lkaestner/tourplan/internal/store"
	"github.com/lkaestner/tourplan/internal/tui"
)

var (
	// Version is set at build time
	Version = "dev"
	// Commit is set at build time
	Commit = "none"
)

// App holds the CLI application state.
type App struct {
	store  store.Store
	config *config.Config
	root   *cobra.Command
}

// NewApp creates a new CLI application with the given store and config.
func NewApp(st store.Store, cfg *config.Config) *App {
	a := &App{store: st, config: cfg}

	a.root = &cobra.Command{
		Use:   "tourplan",
		Short: "A CLI tool for care service tour planning",
		Long: `Tourplan schedules the daily tours of an ambulatory care service.

It lays out each caregiver's day on a timeline, finds free slots for
new visits, flags overlapping visits, and can plan whole tours from
natural language via an LLM.`,
		RunE: func(_ *cobra.Command, _ []string) error {
			return tui.Run(a.store, a.config)
		},
	}

	a.root.AddCommand(a.versionCmd())
	a.root.AddCommand(a.configCmd())
	a.root.AddCommand(a.dayCmd())
	a.root.AddCommand(a.toursCmd())
	a.root.AddCommand(a.addCmd())
	a.root.AddCommand(a.editCmd())
	a.root.AddCommand(a.moveCmd())
	a.root.AddCommand(a.planCmd())
	a.root.AddCommand(a.seedCmd())

	return a
}

func (a *App) versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version number",
		Run: func(_ *cobra.Command, _ []string) {
			fmt.Printf("tourplan %s (commit: %s)\n", Version, Commit)
		},
	}
}

// Execute runs the CLI application.
func (a *App) Execute() error {
	return a.root.Execute()
}
