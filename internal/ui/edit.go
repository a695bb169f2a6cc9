package ui

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/lkaestner/tourplan/internal/agent"
	"github.com/lkaestner/tourplan/internal/dateutil"
	"github.com/lkaestner/tourplan/internal/store"
	"github.com/lkaestner/tourplan/internal/tour"
)

func (a *App) editCmd() *cobra.Command {
	var (
		taskID   string
		date     string
		start    string
		duration int
		notes    string
	)

	cmd := &cobra.Command{
		Use:   "edit",
		Short: "Edit a visit",
		Long: `Change the start time, duration, or notes of a visit.

Only the given flags are changed; everything else stays as it is.`,
		Example: `  tourplan edit --task=task-demo-03 --start=10:15
  tourplan edit --task=task-demo-03 --duration=45 --notes="Verband wechseln"`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := context.Background()
			now := time.Now()

			tours, err := store.LoadTours(ctx, a.store)
			if err != nil {
				return fmt.Errorf("loading tours: %w", err)
			}

			var upd agent.TaskUpdate
			if start != "" {
				day, err := parseDayArg(date)
				if err != nil {
					return err
				}
				scheduled, err := dateutil.CombineDateClock(day, start)
				if err != nil {
					return fmt.Errorf("invalid start time %q: %w", start, err)
				}
				upd.ScheduledTime = &scheduled
			}
			if duration > 0 {
				upd.EstimatedDuration = &duration
			}
			if cmd.Flags().Changed("notes") {
				upd.Notes = &notes
			}
			if upd.ScheduledTime == nil && upd.EstimatedDuration == nil && upd.Notes == nil {
				return fmt.Errorf("nothing to change, pass --start, --duration or --notes")
			}

			snap := agent.Snapshot{Tours: tours}
			next, updated, err := snap.UpdateTask(taskID, upd, now)
			if err != nil {
				return err
			}

			if err := store.SaveTours(ctx, a.store, next.Tours); err != nil {
				return fmt.Errorf("saving tours: %w", err)
			}

			fmt.Printf("Einsatz %s aktualisiert: %s, %s\n",
				updated.ID,
				updated.ScheduledTime.Format("15:04"),
				tour.FormatDuration(updated.EstimatedDuration),
			)
			return nil
		},
	}

	cmd.Flags().StringVar(&taskID, "task", "", "Task id (required)")
	cmd.Flags().StringVar(&date, "date", "", "Day for --start (YYYY-MM-DD, default: today)")
	cmd.Flags().StringVar(&start, "start", "", "New start time (HH:MM)")
	cmd.Flags().IntVar(&duration, "duration", 0, "New duration in minutes")
	cmd.Flags().StringVar(&notes, "notes", "", "New notes")

	_ = cmd.MarkFlagRequired("task")

	return cmd
}
