package ui

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/lkaestner/tourplan/internal/agent"
	"github.com/lkaestner/tourplan/internal/dateutil"
	"github.com/lkaestner/tourplan/internal/placement"
	"github.com/lkaestner/tourplan/internal/store"
	"github.com/lkaestner/tourplan/internal/tour"
)

func (a *App) addCmd() *cobra.Command {
	var (
		tourID   string
		resident string
		taskType string
		date     string
		start    string
		duration int
		notes    string
	)

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a visit to a tour",
		Long: `Add a visit to an existing tour.

Type and duration default to the values a resident drop on the
timeline would produce: 30 minutes of basic care, or a 10 minute
driving segment when the resident is "driving".`,
		Example: `  tourplan add --tour=tour-demo-early --resident=res-helga-schneider --start=10:00
  tourplan add --tour=tour-demo-early --resident=driving --start=10:30 --duration=15`,
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

			snap := agent.Snapshot{Tours: tours}
			pos := snap.FindTour(tourID)
			if pos < 0 {
				return fmt.Errorf("tour %s: %w", tourID, tour.ErrTourNotFound)
			}

			draft := placement.TaskDraft(snap.Tours[pos].EmployeeID, resident, start)
			if taskType != "" {
				draft.Type = tour.TaskType(taskType)
			}
			if duration > 0 {
				draft.EstimatedDuration = duration
			}
			if notes != "" {
				draft.Notes = notes
			}

			scheduled, err := dateutil.CombineDateClock(day, draft.StartClock)
			if err != nil {
				return fmt.Errorf("invalid start time %q: %w", start, err)
			}

			next, created, err := snap.AddTask(agent.AddTaskInput{
				TourID:            tourID,
				ResidentID:        draft.ResidentID,
				Type:              draft.Type,
				ScheduledTime:     scheduled,
				EstimatedDuration: draft.EstimatedDuration,
				Notes:             draft.Notes,
			}, now)
			if err != nil {
				return err
			}

			if err := store.SaveTours(ctx, a.store, next.Tours); err != nil {
				return fmt.Errorf("saving tours: %w", err)
			}

			fmt.Printf("Einsatz %s angelegt: %s %s, %s\n",
				created.ID,
				created.ScheduledTime.Format("15:04"),
				tour.TaskTypeLabel(created.Type),
				tour.FormatDuration(created.EstimatedDuration),
			)
			return nil
		},
	}

	cmd.Flags().StringVar(&tourID, "tour", "", "Tour id (required)")
	cmd.Flags().StringVar(&resident, "resident", "", "Resident id, or \"driving\" for a travel segment (required)")
	cmd.Flags().StringVar(&taskType, "type", "", "Visit type (default: koerperpflege, dokumentation for driving)")
	cmd.Flags().StringVar(&date, "date", "", "Day (YYYY-MM-DD, default: today)")
	cmd.Flags().StringVar(&start, "start", "", "Start time (HH:MM, required)")
	cmd.Flags().IntVar(&duration, "duration", 0, "Duration in minutes (default: 30, 10 for driving)")
	cmd.Flags().StringVar(&notes, "notes", "", "Free-form notes")

	_ = cmd.MarkFlagRequired("tour")
	_ = cmd.MarkFlagRequired("resident")
	_ = cmd.MarkFlagRequired("start")

	return cmd
}
