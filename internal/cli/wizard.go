package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/alexanderramin/pacer/internal/cli/formatter"
	"github.com/alexanderramin/pacer/internal/contract"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

// pacerHuhTheme returns a custom huh theme using the existing Gruvbox palette.
func pacerHuhTheme() *huh.Theme {
	t := huh.ThemeBase()

	// Focused state: orange accent
	t.Focused.Title = lipgloss.NewStyle().Foreground(formatter.ColorHeader).Bold(true)
	t.Focused.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorGreen)
	t.Focused.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.FocusedButton = lipgloss.NewStyle().Foreground(formatter.ColorFg).Background(formatter.ColorHeader).Padding(0, 1)
	t.Focused.BlurredButton = lipgloss.NewStyle().Foreground(formatter.ColorDim).Padding(0, 1)
	t.Focused.TextInput.Cursor = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.TextInput.Placeholder = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Focused.Description = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	// Blurred state: dimmed
	t.Blurred.Title = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	return t
}

func validateWizardDate(s string) error {
	if _, err := time.Parse("2006-01-02", s); err != nil {
		return fmt.Errorf("use YYYY-MM-DD")
	}
	return nil
}

// runCreateWizard walks through plan creation interactively.
func runCreateWizard(ctx context.Context, app *App) error {
	var title, shortID, pagesStr, start, end string

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Title").
				Placeholder("The Hobbit").
				Value(&title).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return fmt.Errorf("title is required")
					}
					return nil
				}),
			huh.NewInput().
				Title("Short ID").
				Description("3-6 uppercase letters + 2-4 digits").
				Placeholder("HOB01").
				Value(&shortID),
			huh.NewInput().
				Title("Total pages").
				Value(&pagesStr).
				Validate(func(s string) error {
					n, err := strconv.Atoi(s)
					if err != nil || n <= 0 {
						return fmt.Errorf("enter a positive number")
					}
					return nil
				}),
		),
		huh.NewGroup(
			huh.NewInput().
				Title("First reading day").
				Placeholder("2026-03-01").
				Value(&start).
				Validate(validateWizardDate),
			huh.NewInput().
				Title("Last reading day").
				Placeholder("2026-03-21").
				Value(&end).
				Validate(validateWizardDate),
		),
	).WithTheme(pacerHuhTheme()).WithShowHelp(false)

	if err := form.Run(); err != nil {
		return err
	}

	pages, _ := strconv.Atoi(pagesStr)
	startDate, _ := time.Parse("2006-01-02", start)
	endDate, _ := time.Parse("2006-01-02", end)

	plan, err := app.Plans.Create(ctx, contract.CreatePlanRequest{
		Title:      strings.TrimSpace(title),
		ShortID:    strings.ToUpper(strings.TrimSpace(shortID)),
		TotalPages: pages,
		StartDate:  startDate,
		EndDate:    endDate,
	})
	if err != nil {
		return err
	}

	fmt.Printf("Created plan %s [%s]\n", plan.Title, plan.ShortID)
	return nil
}
