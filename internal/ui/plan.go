package ui

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/lkaestner/tourplan/internal/agent"
	"github.com/lkaestner/tourplan/internal/dateutil"
	"github.com/lkaestner/tourplan/internal/llm"
	"github.com/lkaestner/tourplan/internal/store"
)

func (a *App) planCmd() *cobra.Command {
	var (
		modelFlag string
		date      string
		dryRun    bool
	)

	cmd := &cobra.Command{
		Use:   "plan [description]",
		Short: "Plan tours from natural language input",
		Long: `Use AI to plan tours from a natural language description.

The model proposes a batch of actions (create tours, add visits with
driving segments between them) which is applied to a working copy of
the schedule. Failed actions are reported but do not abort the batch.

Interactive mode:
  After the AI proposes a plan, you can:
  - [a]ccept: Save the resulting schedule
  - [m]odify: Provide feedback to adjust the proposal
  - [c]ancel: Exit without saving`,
		Example: `  tourplan plan "Frühschicht für Anna mit allen Bewohnern über Pflegegrad 3"
  tourplan plan "Verteile die Einsätze von Karl Hoffmann auf zwei Touren" --date=2026-09-02
  tourplan plan "Plane morgen eine Spätschicht" --dry-run`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			ctx := context.Background()
			now := time.Now()

			day, err := parseDayArg(date)
			if err != nil {
				return err
			}
			dayStr := dateutil.FormatDate(day)

			input := strings.Join(args, " ")

			// Use config default for model if not overridden
			model := modelFlag
			if model == "" {
				model = a.config.LLM.Model
			}

			client, err := llm.NewClient(a.config.LLM.Provider, model, a.config.LLM.BaseURL)
			if err != nil {
				return fmt.Errorf("creating LLM client: %w", err)
			}
			planner := llm.NewPlanner(client)

			tours, err := store.LoadTours(ctx, a.store)
			if err != nil {
				return fmt.Errorf("loading tours: %w", err)
			}
			employees, err := store.LoadEmployees(ctx, a.store)
			if err != nil {
				return fmt.Errorf("loading employees: %w", err)
			}
			residents, err := store.LoadResidents(ctx, a.store)
			if err != nil {
				return fmt.Errorf("loading residents: %w", err)
			}
			roster := NewRoster(employees, residents)

			snap := agent.Snapshot{Tours: tours}

			fmt.Println("Plane Touren...")
			messages := planner.BuildMessages(llm.PlanRequest{
				Input:     input,
				Date:      day,
				Employees: employees,
				Residents: residents,
				Tours:     snap.ToursForDate(dayStr),
			})

			reader := bufio.NewReader(os.Stdin)
			for {
				resp, err := planner.PlanWithMessages(ctx, messages)
				if err != nil {
					return fmt.Errorf("planning: %w", err)
				}

				batch := agent.Run(snap, resp.Actions, now)
				a.displayPlan(resp, batch, roster, dayStr)

				if dryRun {
					fmt.Println("\n(Dry run - Änderungen nicht gespeichert)")
					return nil
				}

				fmt.Print("\n[a]ccept / [m]odify / [c]ancel: ")
				choice, err := reader.ReadString('\n')
				if err != nil {
					return fmt.Errorf("reading input: %w", err)
				}
				choice = strings.TrimSpace(strings.ToLower(choice))

				switch choice {
				case "a", "accept":
					if err := store.SaveTours(ctx, a.store, batch.Snapshot.Tours); err != nil {
						return fmt.Errorf("saving tours: %w", err)
					}
					fmt.Println("\nTourenplan gespeichert.")
					return nil

				case "m", "modify":
					fmt.Print("Feedback: ")
					feedback, err := reader.ReadString('\n')
					if err != nil {
						return fmt.Errorf("reading input: %w", err)
					}
					messages = append(messages,
						llm.Message{Role: "assistant", Content: resp.Reasoning},
						llm.Message{Role: "user", Content: strings.TrimSpace(feedback)},
					)

				case "c", "cancel":
					fmt.Println("Abgebrochen, nichts gespeichert.")
					return nil

				default:
					fmt.Println("Bitte a, m oder c eingeben.")
				}
			}
		},
	}

	cmd.Flags().StringVar(&modelFlag, "model", "", "Override the configured LLM model")
	cmd.Flags().StringVar(&date, "date", "", "Day to plan (YYYY-MM-DD, default: today)")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Show the proposed plan without saving")

	return cmd
}

// displayPlan prints the proposed actions, their outcomes, and the
// resulting day timeline.
func (a *App) displayPlan(resp *llm.PlanResponse, batch agent.BatchResult, roster *Roster, dayStr string) {
	fmt.Printf("\n%s\n", formatHeader("Vorschlag"))
	if resp.Reasoning != "" {
		fmt.Printf("%s\n\n", resp.Reasoning)
	}

	for _, r := range batch.Results {
		if r.OK {
			fmt.Printf("  ✓ %s: %s\n", r.Action, r.Message)
		} else {
			fmt.Printf("  %s %s: %v\n", formatConflict("✗"), r.Action, r.Err)
		}
	}
	if failed := batch.Failed(); len(failed) > 0 {
		fmt.Printf("\n%d von %d Aktionen fehlgeschlagen.\n", len(failed), len(batch.Results))
	}
	for _, w := range resp.Warnings {
		fmt.Printf("  %s\n", formatMuted("Hinweis: "+w))
	}

	fmt.Printf("\n%s\n", separator())
	tl := a.timeline()
	for _, t := range batch.Snapshot.ToursForDate(dayStr) {
		t.SortTasks()
		PrintTour(&t, roster, tl, dayStr)
	}
}
