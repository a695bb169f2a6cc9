package ui

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/lkaestner/tourplan/internal/config"
)

func (a *App) configCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "View or edit configuration",
		Long: `Interactive configuration management.

If no config file exists, creates one with default values.
Otherwise, displays current config and allows editing.`,
		RunE: func(_ *cobra.Command, _ []string) error {
			return runConfigInteractive()
		},
	}
}

func runConfigInteractive() error {
	configPath := config.DefaultConfigPath()
	fmt.Printf("Config file: %s\n\n", configPath)

	cfg, err := config.LoadFrom(configPath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	_, fileErr := os.Stat(configPath)
	if os.IsNotExist(fileErr) {
		fmt.Println("No config file found. Creating with default values...")
		if err := cfg.Save(); err != nil {
			return fmt.Errorf("saving config: %w", err)
		}
		fmt.Printf("Created %s\n\n", configPath)
	}

	printConfig(cfg)

	if !promptYesNo("\nWould you like to edit the configuration?") {
		return nil
	}

	reader := bufio.NewReader(os.Stdin)

	cfg.Timeline.StartHour = promptInt(reader, "Timeline start hour", cfg.Timeline.StartHour)
	cfg.Timeline.EndHour = promptInt(reader, "Timeline end hour", cfg.Timeline.EndHour)
	cfg.LLM.Provider = promptValue(reader, "LLM provider", cfg.LLM.Provider)
	cfg.LLM.Model = promptValue(reader, "LLM model", cfg.LLM.Model)
	cfg.LLM.BaseURL = promptValue(reader, "LLM base URL (Ollama/LM Studio)", cfg.LLM.BaseURL)
	cfg.Storage.DBPath = promptValue(reader, "Database path", cfg.Storage.DBPath)

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	if err := cfg.Save(); err != nil {
		return fmt.Errorf("saving config: %w", err)
	}

	fmt.Println("\nConfiguration saved.")
	return nil
}

func printConfig(cfg *config.Config) {
	fmt.Println(formatHeader("Current configuration:"))
	fmt.Printf("  Timeline:    %02d:00 - %02d:00 (%.0f px/h)\n",
		cfg.Timeline.StartHour, cfg.Timeline.EndHour, cfg.Timeline.PixelsPerHour)
	fmt.Printf("  LLM:         %s / %s\n", cfg.LLM.Provider, cfg.LLM.Model)
	if cfg.LLM.BaseURL != "" {
		fmt.Printf("  LLM URL:     %s\n", cfg.LLM.BaseURL)
	}
	fmt.Printf("  Database:    %s\n", cfg.Storage.DBPath)
	fmt.Printf("  Color:       %t\n", cfg.UI.Color)
}

func promptYesNo(question string) bool {
	fmt.Printf("%s [y/N]: ", question)
	reader := bufio.NewReader(os.Stdin)
	answer, err := reader.ReadString('\n')
	if err != nil {
		return false
	}
	answer = strings.TrimSpace(strings.ToLower(answer))
	return answer == "y" || answer == "yes"
}

func promptValue(reader *bufio.Reader, label, current string) string {
	fmt.Printf("%s [%s]: ", label, current)
	answer, err := reader.ReadString('\n')
	if err != nil {
		return current
	}
	answer = strings.TrimSpace(answer)
	if answer == "" {
		return current
	}
	return answer
}

func promptInt(reader *bufio.Reader, label string, current int) int {
	answer := promptValue(reader, label, strconv.Itoa(current))
	value, err := strconv.Atoi(answer)
	if err != nil {
		fmt.Printf("  invalid number %q, keeping %d\n", answer, current)
		return current
	}
	return value
}
