package ui

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/lkaestner/tourplan/internal/placement"
	"github.com/lkaestner/tourplan/internal/store"
	"github.com/lkaestner/tourplan/internal/tour"
)

func (a *App) moveCmd() *cobra.Command {
	var (
		taskID   string
		employee string
		start    string
		date     string
	)

	cmd := &cobra.Command{
		Use:   "move",
		Short: "Move a visit to a new time or caregiver",
		Long: `Move a visit within its tour or to another caregiver.

Moving within the same tour only re-times the visit. Moving to another
caregiver transfers it to their tour for that day, creating the tour
if none exists yet.`,
		Example: `  tourplan move --task=task-demo-03 --start=10:15
  tourplan move --task=task-demo-03 --employee=emp-sarah-mueller --start=09:00`,
		RunE: func(_ *cobra.Command, _ []string) error {
			ctx := context.Background()
			now := time.Now()

			day, err := parseDayArg(date)
			if err != nil {
				return err
			}

			tours, err := store.LoadTours(ctx, a.store)
			if err != nil {
				return fmt.Errorf("loading tours: %w", err)
			}

			payload, err := findTaskPayload(tours, taskID)
			if err != nil {
				return err
			}

			target := employee
			if target == "" {
				target = payload.SourceEmployeeID
			}

			result, err := placement.Drop(tours, payload, target, start, day, now)
			if err != nil {
				return err
			}

			if err := store.SaveTours(ctx, a.store, result.Tours); err != nil {
				return fmt.Errorf("saving tours: %w", err)
			}

			fmt.Printf("Einsatz %s verschoben auf %s\n", result.Moved.ID, result.Moved.ScheduledTime.Format("15:04"))
			if result.CreatedTour != nil {
				fmt.Printf("Neue Tour %s angelegt (%s, %s-%s)\n",
					result.CreatedTour.ID,
					tour.ShiftLabel(result.CreatedTour.Shift),
					result.CreatedTour.PlannedStart,
					result.CreatedTour.PlannedEnd,
				)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&taskID, "task", "", "Task id (required)")
	cmd.Flags().StringVar(&employee, "employee", "", "Target employee id (default: keep current)")
	cmd.Flags().StringVar(&start, "start", "", "New start time (HH:MM, required)")
	cmd.Flags().StringVar(&date, "date", "", "Day (YYYY-MM-DD, default: today)")

	_ = cmd.MarkFlagRequired("task")
	_ = cmd.MarkFlagRequired("start")

	return cmd
}

// findTaskPayload locates a task across all tours and builds the drop
// payload for it.
func findTaskPayload(tours []tour.Tour, taskID string) (placement.TaskPayload, error) {
	for i := range tours {
		if j := tours[i].FindTask(taskID); j >= 0 {
			return placement.TaskPayload{
				Task:             tours[i].Tasks[j],
				SourceTourID:     tours[i].ID,
				SourceEmployeeID: tours[i].EmployeeID,
			}, nil
		}
	}
	return placement.TaskPayload{}, fmt.Errorf("task %s: %w", taskID, tour.ErrTaskNotFound)
}
