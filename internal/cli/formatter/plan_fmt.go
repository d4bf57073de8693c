package formatter

import (
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/pacer/internal/domain"
)

// FormatPlanList formats plans as a table for the list command.
func FormatPlanList(plans []*domain.Plan) string {
	headers := []string{"ID", "TITLE", "PAGES", "START", "END", "STATUS"}
	rows := make([][]string, 0, len(plans))

	for _, p := range plans {
		status := StyleGreen.Render(string(p.Status))
		switch p.Status {
		case domain.PlanArchived:
			status = Dim(string(p.Status))
		case domain.PlanFinished:
			status = StyleBlue.Render(string(p.Status))
		}

		rows = append(rows, []string{
			StylePurple.Render(p.DisplayID()),
			Bold(p.Title),
			fmt.Sprintf("%d", p.TotalPages),
			p.StartDate.Format("2006-01-02"),
			p.EndDate.Format("2006-01-02"),
			status,
		})
	}

	return RenderTable(headers, rows)
}

// FormatPlanDetail formats a single plan with its per-day schedule.
func FormatPlanDetail(p *domain.Plan, days []domain.DaySession) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("%s %s\n", StylePurple.Render(p.DisplayID()), Bold(p.Title)))
	b.WriteString(fmt.Sprintf("%s across %s to %s\n",
		FormatPages(p.TotalPages),
		p.StartDate.Format("Jan 2, 2006"),
		p.EndDate.Format("Jan 2, 2006")))
	b.WriteString("\n")

	byKey := make(map[string]domain.DaySession, len(days))
	for _, d := range days {
		byKey[d.Date.Format("2006-01-02")] = d
	}

	headers := []string{"DATE", "", "PLANNED", "READ"}
	var rows [][]string
	for cur := p.StartDate; !cur.After(p.EndDate); cur = cur.AddDate(0, 0, 1) {
		d, ok := byKey[cur.Format("2006-01-02")]
		planned, read := "0", Dim("--")
		glyph := DayGlyph(domain.DayUnset)
		if ok {
			planned = fmt.Sprintf("%d", d.PlannedPages)
			glyph = DayGlyph(d.Status)
			if d.Status == domain.DayRead {
				read = StyleGreen.Render(fmt.Sprintf("%d", d.EffectivePages()))
			}
		}
		rows = append(rows, []string{cur.Format("Mon Jan 2"), glyph, planned, read})
	}

	b.WriteString(RenderTable(headers, rows))
	return b.String()
}

// FormatAudit formats a plan's audit trail, most recent first.
func FormatAudit(entries []domain.AuditEntry) string {
	headers := []string{"WHEN", "DATE", "ACTION", "PAGES"}
	rows := make([][]string, 0, len(entries))

	for _, e := range entries {
		delta := Dim("0")
		if e.PagesDelta > 0 {
			delta = StyleGreen.Render(fmt.Sprintf("+%d", e.PagesDelta))
		} else if e.PagesDelta < 0 {
			delta = StyleRed.Render(fmt.Sprintf("%d", e.PagesDelta))
		}
		rows = append(rows, []string{
			Dim(e.CreatedAt.Format(time.RFC3339)),
			e.Date.Format("2006-01-02"),
			auditActionLabel(e.Action),
			delta,
		})
	}

	return RenderTable(headers, rows)
}

func auditActionLabel(a domain.AuditAction) string {
	switch a {
	case domain.AuditMarkedRead:
		return StyleGreen.Render("read")
	case domain.AuditMarkedMissed:
		return StyleRed.Render("missed")
	case domain.AuditCleared:
		return StyleYellow.Render("cleared")
	case domain.AuditPagesEdited:
		return StyleBlue.Render("pages edited")
	default:
		return string(a)
	}
}
