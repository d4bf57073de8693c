package cli

import (
	"context"
	"fmt"

	"github.com/alexanderramin/pacer/internal/cli/formatter"
	"github.com/alexanderramin/pacer/internal/contract"
	"github.com/alexanderramin/pacer/internal/domain"
	"github.com/spf13/cobra"
)

func runTransition(app *App, ref, date string, status domain.DayStatus, actual *int) error {
	day, err := parseDate(app, date)
	if err != nil {
		return err
	}

	result, err := app.Tracker.SetStatus(context.Background(), contract.MarkRequest{
		PlanRef:     ref,
		Date:        day,
		Status:      status,
		ActualPages: actual,
	})
	if err != nil {
		return err
	}

	switch status {
	case domain.DayRead:
		fmt.Printf("Marked %s read: %s\n",
			day.Format("Jan 2"), formatter.FormatPages(result.Day.EffectivePages()))
	case domain.DayMissed:
		fmt.Printf("Marked %s missed.\n", day.Format("Jan 2"))
	default:
		fmt.Printf("Cleared %s.\n", day.Format("Jan 2"))
	}

	if result.RebalancedDays > 0 {
		fmt.Printf("Rebalanced %d remaining days.\n", result.RebalancedDays)
	}
	for _, w := range result.Warnings {
		fmt.Println(formatter.Dim("warning: " + w))
	}
	return nil
}

func newMarkCmd(app *App) *cobra.Command {
	var pages int

	cmd := &cobra.Command{
		Use:   "mark ID DATE",
		Short: "Mark a day as read",
		Long: "Mark a day as read. DATE is YYYY-MM-DD or \"today\". Without\n" +
			"--pages the day counts at its planned target.",
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			var actual *int
			if cmd.Flags().Changed("pages") {
				actual = &pages
			}
			return runTransition(app, args[0], args[1], domain.DayRead, actual)
		},
	}

	cmd.Flags().IntVar(&pages, "pages", 0, "Pages actually read (overrides the planned target)")

	return cmd
}

func newMissCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "miss ID DATE",
		Short: "Mark a day as missed",
		Long: "Mark a day as missed. The day's allocation is not refunded; the\n" +
			"remaining pages spread over the days still open.",
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTransition(app, args[0], args[1], domain.DayMissed, nil)
		},
	}
}

func newClearCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "clear ID DATE",
		Short: "Reset a day back to unset",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTransition(app, args[0], args[1], domain.DayUnset, nil)
		},
	}
}
