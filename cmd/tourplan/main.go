package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/lkaestner/tourplan/internal/config"
	"github.com/lkaestner/tourplan/internal/store"
	"github.com/lkaestner/tourplan/internal/ui"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	if !cfg.UI.Color {
		ui.DisableColor()
	}

	if err := os.MkdirAll(filepath.Dir(cfg.Storage.DBPath), 0o755); err != nil {
		return fmt.Errorf("creating data directory: %w", err)
	}
	st, err := store.NewSQLite(cfg.Storage.DBPath)
	if err != nil {
		return fmt.Errorf("opening store: %w", err)
	}
	defer func() { _ = st.Close() }()

	app := ui.NewApp(st, cfg)
	return app.Execute()
}
