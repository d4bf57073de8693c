package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/alexanderramin/pacer/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newStatusCmd(app *App) *cobra.Command {
	var all bool
	var asOf string

	cmd := &cobra.Command{
		Use:   "status [ID]",
		Short: "Show reading progress",
		Long: "With no argument, shows a pace overview of every plan. With a\n" +
			"plan ID, shows that plan's full progress report.",
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			var today *time.Time
			if asOf != "" {
				t, err := parseDate(app, asOf)
				if err != nil {
					return err
				}
				today = &t
			}

			if len(args) == 1 {
				resp, err := app.Progress.Report(ctx, args[0], today)
				if err != nil {
					return err
				}
				fmt.Print(formatter.FormatReport(resp))
				return nil
			}

			rows, err := app.Progress.Overview(ctx, all, today)
			if err != nil {
				return err
			}
			if len(rows) == 0 {
				fmt.Println("No plans found.")
				return nil
			}
			fmt.Print(formatter.FormatOverview(rows))
			return nil
		},
	}

	cmd.Flags().BoolVar(&all, "all", false, "Include archived plans")
	cmd.Flags().StringVar(&asOf, "as-of", "", "Evaluate progress as of this date (YYYY-MM-DD)")

	return cmd
}
