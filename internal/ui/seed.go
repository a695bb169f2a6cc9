package ui

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/lkaestner/tourplan/internal/dateutil"
	"github.com/lkaestner/tourplan/internal/seed"
)

func (a *App) seedCmd() *cobra.Command {
	var (
		date  string
		force bool
	)

	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Load demo data",
		Long: `Load a demo roster of caregivers and residents plus two sample
tours, for trying out the planner on an empty database.`,
		Example: `  tourplan seed
  tourplan seed --date=2026-09-01 --force`,
		RunE: func(_ *cobra.Command, _ []string) error {
			day, err := parseDayArg(date)
			if err != nil {
				return err
			}

			err = seed.Apply(context.Background(), a.store, dateutil.FormatDate(day), time.Now(), force)
			if err != nil {
				return err
			}

			fmt.Println("Demo-Daten geladen.")
			return nil
		},
	}

	cmd.Flags().StringVar(&date, "date", "", "Day for the demo tours (YYYY-MM-DD, default: today)")
	cmd.Flags().BoolVar(&force, "force", false, "Overwrite existing data")

	return cmd
}
