package formatter

import (
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/pacer/internal/domain"
)

// FormatCalendar renders one month of a plan as a week-per-row grid. Each
// in-plan day shows its status glyph and planned pages; out-of-plan days are
// dimmed. month may be any time within the month to render.
func FormatCalendar(p *domain.Plan, days []domain.DaySession, month time.Time) string {
	byKey := make(map[string]domain.DaySession, len(days))
	for _, d := range days {
		byKey[d.Date.Format("2006-01-02")] = d
	}

	first := time.Date(month.Year(), month.Month(), 1, 0, 0, 0, 0, time.UTC)
	last := first.AddDate(0, 1, -1)

	var b strings.Builder
	b.WriteString(Header(first.Format("January 2006")))
	b.WriteString("\n")

	for _, wd := range []string{"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"} {
		b.WriteString(Dim(fmt.Sprintf("%-8s", wd)))
	}
	b.WriteString("\n")

	// Leading blanks up to the first weekday. Weeks start on Monday.
	offset := (int(first.Weekday()) + 6) % 7
	b.WriteString(strings.Repeat(" ", offset*8))

	col := offset
	for cur := first; !cur.After(last); cur = cur.AddDate(0, 0, 1) {
		b.WriteString(renderCalendarCell(p, byKey, cur))
		col++
		if col == 7 {
			b.WriteString("\n")
			col = 0
		}
	}
	if col != 0 {
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("%s read   %s missed   %s planned\n",
		StyleGreen.Render("✓"), StyleRed.Render("✗"), Dim("·")))

	return b.String()
}

func renderCalendarCell(p *domain.Plan, byKey map[string]domain.DaySession, cur time.Time) string {
	if !p.Contains(cur) {
		return Dim(fmt.Sprintf("%-8d", cur.Day()))
	}

	glyph := DayGlyph(domain.DayUnset)
	pages := 0
	if d, ok := byKey[cur.Format("2006-01-02")]; ok {
		glyph = DayGlyph(d.Status)
		pages = d.PlannedPages
		if d.Status == domain.DayRead {
			pages = d.EffectivePages()
		}
	}

	cell := fmt.Sprintf("%2d%s%-3d", cur.Day(), glyph, pages)
	pad := 8 - 6
	return cell + strings.Repeat(" ", pad)
}
