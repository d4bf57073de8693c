package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/alexanderramin/pacer/internal/cli/formatter"
	"github.com/alexanderramin/pacer/internal/tui"
	"github.com/spf13/cobra"
)

func newCalendarCmd(app *App) *cobra.Command {
	var month string
	var interactive bool

	cmd := &cobra.Command{
		Use:   "calendar ID",
		Short: "Show a plan as a month calendar",
		Long: "Render one month of a plan's schedule. With --interactive (and a\n" +
			"terminal) opens a navigable calendar where days can be marked\n" +
			"directly.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			if interactive {
				if app.IsInteractive == nil || !app.IsInteractive() {
					return fmt.Errorf("interactive calendar requires a terminal")
				}
				return tui.Run(ctx, app.Tracker, args[0], app.Clock)
			}

			plan, days, err := app.Tracker.Days(ctx, args[0])
			if err != nil {
				return err
			}

			focus := app.Clock()
			if month != "" {
				parsed, err := time.Parse("2006-01", month)
				if err != nil {
					return fmt.Errorf("invalid month %q (expected YYYY-MM): %w", month, err)
				}
				focus = parsed
			} else if !plan.Contains(focus) {
				focus = plan.StartDate
			}

			fmt.Printf("%s\n", formatter.FormatCalendar(plan, days, focus))
			return nil
		},
	}

	cmd.Flags().StringVar(&month, "month", "", "Month to render (YYYY-MM), defaults to the current month")
	cmd.Flags().BoolVarP(&interactive, "interactive", "i", false, "Open the interactive calendar")

	return cmd
}
