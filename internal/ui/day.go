package ui

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/lkaestner/tourplan/internal/dateutil"
	"github.com/lkaestner/tourplan/internal/store"
	"github.com/lkaestner/tourplan/internal/timeline"
)

func (a *App) dayCmd() *cobra.Command {
	var date string

	cmd := &cobra.Command{
		Use:   "day",
		Short: "Show the day timeline for all tours",
		Long: `Show each caregiver's tour for a day as a timeline.

Visits are listed in order with overlap warnings, remaining free slots,
and per-tour statistics.`,
		Example: `  tourplan day
  tourplan day --date=2026-09-01`,
		RunE: func(_ *cobra.Command, _ []string) error {
			ctx := context.Background()

			day, err := parseDayArg(date)
			if err != nil {
				return err
			}
			dayStr := dateutil.FormatDate(day)

			tours, err := store.LoadTours(ctx, a.store)
			if err != nil {
				return fmt.Errorf("loading tours: %w", err)
			}
			roster, err := a.loadRoster(ctx)
			if err != nil {
				return err
			}

			tl := a.timeline()

			fmt.Printf("%s\n%s\n\n", formatHeader("Tourenplan "+dayStr), separator())

			found := false
			for i := range tours {
				if tours[i].Date != dayStr {
					continue
				}
				found = true
				tours[i].SortTasks()
				PrintTour(&tours[i], roster, tl, dayStr)
			}
			if !found {
				fmt.Println("Keine Touren für diesen Tag geplant.")
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&date, "date", "", "Day to show (YYYY-MM-DD, default: today)")

	return cmd
}

// timeline builds the day-view geometry from the configured window.
func (a *App) timeline() timeline.Timeline {
	return timeline.Timeline{
		StartHour:     a.config.Timeline.StartHour,
		EndHour:       a.config.Timeline.EndHour,
		PixelsPerHour: a.config.Timeline.PixelsPerHour,
	}
}

// parseDayArg parses a --date flag value, defaulting to today.
func parseDayArg(date string) (time.Time, error) {
	day, err := dateutil.ParseDate(date)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: %w", date, err)
	}
	return day, nil
}

func (a *App) loadRoster(ctx context.Context) (*Roster, error) {
	employees, err := store.LoadEmployees(ctx, a.store)
	if err != nil {
		return nil, fmt.Errorf("loading employees: %w", err)
	}
	residents, err := store.LoadResidents(ctx, a.store)
	if err != nil {
		return nil, fmt.Errorf("loading residents: %w", err)
	}
	return NewRoster(employees, residents), nil
}
