package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/pacer/internal/contract"
	"github.com/alexanderramin/pacer/internal/schedule"
)

const statusProgressBarWidth = 10

// FormatOverview formats the multi-plan status table.
func FormatOverview(rows []contract.PlanOverview) string {
	var b strings.Builder

	headers := []string{"ID", "TITLE", "PROGRESS", "PACE", "ENDS"}
	table := make([][]string, 0, len(rows))

	var onTrack, catchUp, overdue int
	for _, row := range rows {
		pct := 0.0
		if row.Plan.TotalPages > 0 {
			pct = float64(row.Report.TotalPagesRead) / float64(row.Plan.TotalPages)
		}

		switch row.Report.Kind {
		case schedule.ReportOnTrack:
			onTrack++
		case schedule.ReportCatchUp:
			catchUp++
		case schedule.ReportOverdue:
			overdue++
		}

		table = append(table, []string{
			StylePurple.Render(row.Plan.DisplayID()),
			Bold(row.Plan.Title),
			RenderProgress(pct, statusProgressBarWidth),
			PaceIndicator(row.Report.Kind),
			RelativeDateStyled(row.Plan.EndDate),
		})
	}

	b.WriteString(RenderTable(headers, table))
	b.WriteString("\n")

	summary := fmt.Sprintf("%s, %s, %s",
		StyleGreen.Render(fmt.Sprintf("%d On Track", onTrack)),
		StyleYellow.Render(fmt.Sprintf("%d Catch Up", catchUp)),
		StyleRed.Render(fmt.Sprintf("%d Overdue", overdue)))
	b.WriteString(summary + "\n")

	return b.String()
}

// FormatReport formats a single plan's progress report.
func FormatReport(resp *contract.ProgressResponse) string {
	p := resp.Plan
	r := resp.Report

	var b strings.Builder
	b.WriteString(fmt.Sprintf("%s %s  %s\n\n",
		StylePurple.Render(p.DisplayID()), Bold(p.Title), PaceIndicator(r.Kind)))

	pct := 0.0
	if p.TotalPages > 0 {
		pct = float64(r.TotalPagesRead) / float64(p.TotalPages)
	}
	b.WriteString(fmt.Sprintf("%s  %d / %d pages\n\n",
		RenderProgress(pct, 20), r.TotalPagesRead, p.TotalPages))

	b.WriteString(fmt.Sprintf("Expected by today   %s\n", FormatPages(r.ExpectedToday)))
	b.WriteString(fmt.Sprintf("Remaining           %s over %d days\n",
		FormatPages(r.RemainingPages), r.RemainingDays))

	if missed := r.ExplicitMissed + r.ImplicitPastUnread; missed > 0 {
		b.WriteString(fmt.Sprintf("Days behind         %s\n",
			StyleYellow.Render(fmt.Sprintf("%d", missed))))
	}

	switch r.Kind {
	case schedule.ReportCatchUp:
		b.WriteString("\n")
		b.WriteString(StyleYellow.Render(fmt.Sprintf(
			"Read %s today to finish on time.", FormatPages(r.SuggestedPages))) + "\n")
	case schedule.ReportOverdue:
		b.WriteString("\n")
		b.WriteString(StyleRed.Render(fmt.Sprintf(
			"Past the end date with %s left.", FormatPages(r.RemainingPages))) + "\n")
	}

	return b.String()
}
