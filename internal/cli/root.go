package cli

import (
	"github.com/alexanderramin/pacer/internal/service"
	"github.com/spf13/cobra"
)

// App holds references to all service interfaces used by CLI commands.
type App struct {
	Plans    service.PlanService
	Tracker  service.TrackerService
	Progress service.ProgressService

	// Clock supplies "today" for date parsing and defaults.
	Clock service.Clock

	// IsInteractive reports whether stdin is attached to a terminal.
	// Interactive-only surfaces (the create wizard, the calendar TUI) are
	// skipped when it returns false.
	IsInteractive func() bool
}

// NewRootCmd creates the top-level "pacer" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:   "pacer",
		Short: "Adaptive reading schedule tracker",
		Long: "Pacer spreads a book's pages across a date range and rebalances\n" +
			"the remaining days as you log what you actually read.",
	}

	root.AddCommand(
		newPlanCmd(app),
		newMarkCmd(app),
		newMissCmd(app),
		newClearCmd(app),
		newStatusCmd(app),
		newCalendarCmd(app),
	)

	return root
}
