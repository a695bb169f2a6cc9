package ui

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/lkaestner/tourplan/internal/dateutil"
	"github.com/lkaestner/tourplan/internal/store"
	"github.com/lkaestner/tourplan/internal/tour"
)

func (a *App) toursCmd() *cobra.Command {
	var (
		date string
		all  bool
	)

	cmd := &cobra.Command{
		Use:   "tours",
		Short: "List tours",
		Long: `List tours with their ids, useful as input for move and plan.

By default only tours of a single day are listed.`,
		Example: `  tourplan tours
  tourplan tours --date=2026-09-01
  tourplan tours --all`,
		RunE: func(_ *cobra.Command, _ []string) error {
			ctx := context.Background()

			tours, err := store.LoadTours(ctx, a.store)
			if err != nil {
				return fmt.Errorf("loading tours: %w", err)
			}
			roster, err := a.loadRoster(ctx)
			if err != nil {
				return err
			}

			var dayStr string
			if !all {
				day, err := parseDayArg(date)
				if err != nil {
					return err
				}
				dayStr = dateutil.FormatDate(day)
			}

			count := 0
			for i := range tours {
				t := &tours[i]
				if !all && t.Date != dayStr {
					continue
				}
				count++
				early := t.Shift == tour.ShiftEarly
				fmt.Printf("%s  %s  %s  %s-%s  %d Einsätze  (%s)\n",
					t.ID,
					t.Date,
					formatShift(tour.ShiftLabel(t.Shift), early),
					t.PlannedStart, t.PlannedEnd,
					len(t.Tasks),
					roster.EmployeeName(t.EmployeeID),
				)
				for _, task := range t.Tasks {
					fmt.Printf("    %s  %s  %s\n",
						formatMuted(task.ID),
						task.ScheduledTime.Format("15:04"),
						roster.ResidentName(task.ResidentID),
					)
				}
			}
			if count == 0 {
				fmt.Println("Keine Touren gefunden.")
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&date, "date", "", "Day to list (YYYY-MM-DD, default: today)")
	cmd.Flags().BoolVar(&all, "all", false, "List tours of all days")

	return cmd
}
