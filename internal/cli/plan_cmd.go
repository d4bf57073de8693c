package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/alexanderramin/pacer/internal/cli/formatter"
	"github.com/alexanderramin/pacer/internal/contract"
	"github.com/spf13/cobra"
)

// parseDate parses a YYYY-MM-DD argument, accepting "today" as a shortcut
// for the injected clock's current date.
func parseDate(app *App, input string) (time.Time, error) {
	if strings.EqualFold(input, "today") {
		now := app.Clock()
		return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC), nil
	}
	t, err := time.Parse("2006-01-02", input)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q (expected YYYY-MM-DD): %w", input, err)
	}
	return t, nil
}

func newPlanCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "plan",
		Short: "Manage reading plans",
	}

	cmd.AddCommand(
		newPlanAddCmd(app),
		newPlanListCmd(app),
		newPlanShowCmd(app),
		newPlanPagesCmd(app),
		newPlanArchiveCmd(app),
		newPlanRemoveCmd(app),
		newPlanAuditCmd(app),
	)

	return cmd
}

func newPlanAddCmd(app *App) *cobra.Command {
	var title, shortID, start, end string
	var pages int

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Create a new reading plan",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			// With no flags on an interactive terminal, walk through the
			// create wizard instead of failing on missing input.
			if cmd.Flags().NFlag() == 0 && app.IsInteractive != nil && app.IsInteractive() {
				return runCreateWizard(ctx, app)
			}

			startDate, err := parseDate(app, start)
			if err != nil {
				return err
			}
			endDate, err := parseDate(app, end)
			if err != nil {
				return err
			}

			plan, err := app.Plans.Create(ctx, contract.CreatePlanRequest{
				Title:      title,
				ShortID:    strings.ToUpper(shortID),
				TotalPages: pages,
				StartDate:  startDate,
				EndDate:    endDate,
			})
			if err != nil {
				return err
			}

			fmt.Printf("Created plan %s [%s]: %s over %d days\n",
				plan.Title, plan.ShortID,
				formatter.FormatPages(plan.TotalPages),
				int(plan.EndDate.Sub(plan.StartDate).Hours()/24)+1)
			return nil
		},
	}

	cmd.Flags().StringVar(&shortID, "id", "", "Short ID (3-6 uppercase letters + 2-4 digits, e.g. HOB01)")
	cmd.Flags().StringVar(&title, "title", "", "Book or document title")
	cmd.Flags().IntVar(&pages, "pages", 0, "Total pages to read")
	cmd.Flags().StringVar(&start, "start", "", "First reading day (YYYY-MM-DD)")
	cmd.Flags().StringVar(&end, "end", "", "Last reading day (YYYY-MM-DD)")

	return cmd
}

func newPlanListCmd(app *App) *cobra.Command {
	var all bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List reading plans",
		RunE: func(cmd *cobra.Command, args []string) error {
			plans, err := app.Plans.List(context.Background(), all)
			if err != nil {
				return err
			}

			if len(plans) == 0 {
				fmt.Println("No plans found.")
				return nil
			}

			fmt.Printf("%s\n", formatter.FormatPlanList(plans))
			return nil
		},
	}

	cmd.Flags().BoolVar(&all, "all", false, "Include archived plans")

	return cmd
}

func newPlanShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show ID",
		Short: "Show a plan's day-by-day schedule",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			plan, days, err := app.Tracker.Days(context.Background(), args[0])
			if err != nil {
				return err
			}

			fmt.Printf("%s\n", formatter.FormatPlanDetail(plan, days))
			return nil
		},
	}
}

func newPlanPagesCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "pages ID COUNT",
		Short: "Change a plan's total page count and rebalance open days",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			pages, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("invalid page count %q: %w", args[1], err)
			}

			plan, err := app.Plans.SetTotalPages(context.Background(), args[0], pages)
			if err != nil {
				return err
			}

			fmt.Printf("Plan %s now targets %s.\n",
				plan.DisplayID(), formatter.FormatPages(plan.TotalPages))
			return nil
		},
	}
}

func newPlanArchiveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "archive ID",
		Short: "Archive a plan",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.Plans.Archive(context.Background(), args[0]); err != nil {
				return err
			}
			fmt.Printf("Archived plan %s\n", args[0])
			return nil
		},
	}
}

func newPlanRemoveCmd(app *App) *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "remove ID",
		Short: "Delete a plan and its history",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !force {
				return fmt.Errorf("refusing to delete without --force (history is not recoverable)")
			}
			if err := app.Plans.Delete(context.Background(), args[0]); err != nil {
				return err
			}
			fmt.Printf("Removed plan %s\n", args[0])
			return nil
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "Confirm permanent deletion")

	return cmd
}

func newPlanAuditCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "audit ID",
		Short: "Show a plan's change history",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			entries, err := app.Tracker.Audit(context.Background(), args[0])
			if err != nil {
				return err
			}

			if len(entries) == 0 {
				fmt.Println("No history yet.")
				return nil
			}

			fmt.Printf("%s\n", formatter.FormatAudit(entries))
			return nil
		},
	}
}
