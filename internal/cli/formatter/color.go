package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/pacer/internal/domain"
	"github.com/alexanderramin/pacer/internal/schedule"
	"github.com/charmbracelet/lipgloss"
)

// Gruvbox-inspired color palette.
var (
	ColorGreen  = lipgloss.Color("#8ec07c")
	ColorYellow = lipgloss.Color("#fabd2f")
	ColorRed    = lipgloss.Color("#fb4934")
	ColorBlue   = lipgloss.Color("#83a598")
	ColorPurple = lipgloss.Color("#d3869b")
	ColorDim    = lipgloss.Color("#928374")
	ColorFg     = lipgloss.Color("#ebdbb2")
	ColorHeader = lipgloss.Color("#fe8019")
)

// Predefined lipgloss styles.
var (
	StyleGreen  = lipgloss.NewStyle().Foreground(ColorGreen)
	StyleYellow = lipgloss.NewStyle().Foreground(ColorYellow)
	StyleRed    = lipgloss.NewStyle().Foreground(ColorRed)
	StyleBlue   = lipgloss.NewStyle().Foreground(ColorBlue)
	StylePurple = lipgloss.NewStyle().Foreground(ColorPurple)
	StyleDim    = lipgloss.NewStyle().Foreground(ColorDim)
	StyleFg     = lipgloss.NewStyle().Foreground(ColorFg)
	StyleHeader = lipgloss.NewStyle().Foreground(ColorHeader).Bold(true)
	StyleBold   = lipgloss.NewStyle().Foreground(ColorFg).Bold(true)
)

// PaceColor returns the lipgloss style corresponding to a report kind.
func PaceColor(kind schedule.ReportKind) lipgloss.Style {
	switch kind {
	case schedule.ReportOverdue:
		return StyleRed
	case schedule.ReportCatchUp:
		return StyleYellow
	case schedule.ReportOnTrack:
		return StyleGreen
	default:
		return StyleDim
	}
}

// PaceIndicator returns a colored pace indicator string such as "● CATCH UP".
func PaceIndicator(kind schedule.ReportKind) string {
	switch kind {
	case schedule.ReportOverdue:
		return StyleRed.Render("● OVERDUE")
	case schedule.ReportCatchUp:
		return StyleYellow.Render("● CATCH UP")
	case schedule.ReportOnTrack:
		return StyleGreen.Render("● ON TRACK")
	default:
		return StyleDim.Render("● UNKNOWN")
	}
}

// DayGlyph returns a single colored glyph for a day status, used by the
// calendar views.
func DayGlyph(status domain.DayStatus) string {
	switch status {
	case domain.DayRead:
		return StyleGreen.Render("✓")
	case domain.DayMissed:
		return StyleRed.Render("✗")
	default:
		return StyleDim.Render("·")
	}
}

// Header renders a section header with the orange header style and an underline.
func Header(text string) string {
	upper := strings.ToUpper(text)
	line := strings.Repeat("─", len(upper))
	return fmt.Sprintf("%s\n%s", StyleHeader.Render(upper), StyleDim.Render(line))
}

// Dim renders text in the muted/dim color.
func Dim(text string) string {
	return StyleDim.Render(text)
}

// Bold renders text in bold with the foreground color.
func Bold(text string) string {
	return StyleBold.Render(text)
}
