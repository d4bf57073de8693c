package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/pacer/internal/cli/formatter"
	"github.com/alexanderramin/pacer/internal/contract"
	"github.com/alexanderramin/pacer/internal/domain"
	"github.com/alexanderramin/pacer/internal/service"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// daysLoadedMsg signals that the plan and its day records have been loaded.
type daysLoadedMsg struct {
	plan *domain.Plan
	days []domain.DaySession
	err  error
}

// transitionDoneMsg signals a completed day-status write.
type transitionDoneMsg struct {
	result *contract.MarkResult
	err    error
}

type keyMap struct {
	Left      key.Binding
	Right     key.Binding
	Up        key.Binding
	Down      key.Binding
	PrevMonth key.Binding
	NextMonth key.Binding
	Read      key.Binding
	Miss      key.Binding
	Clear     key.Binding
	Quit      key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Left:      key.NewBinding(key.WithKeys("h", "left"), key.WithHelp("h", "prev day")),
		Right:     key.NewBinding(key.WithKeys("l", "right"), key.WithHelp("l", "next day")),
		Up:        key.NewBinding(key.WithKeys("k", "up"), key.WithHelp("k", "prev week")),
		Down:      key.NewBinding(key.WithKeys("j", "down"), key.WithHelp("j", "next week")),
		PrevMonth: key.NewBinding(key.WithKeys("["), key.WithHelp("[", "prev month")),
		NextMonth: key.NewBinding(key.WithKeys("]"), key.WithHelp("]", "next month")),
		Read:      key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "mark read")),
		Miss:      key.NewBinding(key.WithKeys("m"), key.WithHelp("m", "mark missed")),
		Clear:     key.NewBinding(key.WithKeys("u"), key.WithHelp("u", "clear")),
		Quit:      key.NewBinding(key.WithKeys("q", "esc", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// calendarModel is the bubbletea Model for the interactive plan calendar.
type calendarModel struct {
	ctx     context.Context
	tracker service.TrackerService
	ref     string
	keys    keyMap

	plan   *domain.Plan
	days   map[string]domain.DaySession
	cursor time.Time
	month  time.Time // first day of the rendered month

	statusLine string
	loading    bool
	err        error
	quitting   bool
}

func newCalendarModel(ctx context.Context, tracker service.TrackerService, ref string, clock service.Clock) calendarModel {
	today := domain.DateOnly(clock())
	return calendarModel{
		ctx:     ctx,
		tracker: tracker,
		ref:     ref,
		keys:    defaultKeyMap(),
		cursor:  today,
		month:   firstOfMonth(today),
		loading: true,
	}
}

func firstOfMonth(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC)
}

func (m calendarModel) loadCmd() tea.Cmd {
	return func() tea.Msg {
		plan, days, err := m.tracker.Days(m.ctx, m.ref)
		return daysLoadedMsg{plan: plan, days: days, err: err}
	}
}

func (m calendarModel) transitionCmd(status domain.DayStatus) tea.Cmd {
	date := m.cursor
	return func() tea.Msg {
		result, err := m.tracker.SetStatus(m.ctx, contract.MarkRequest{
			PlanRef: m.ref,
			Date:    date,
			Status:  status,
		})
		return transitionDoneMsg{result: result, err: err}
	}
}

func (m calendarModel) Init() tea.Cmd {
	return m.loadCmd()
}

func (m calendarModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case daysLoadedMsg:
		m.loading = false
		if msg.err != nil {
			m.err = msg.err
			m.quitting = true
			return m, tea.Quit
		}
		m.plan = msg.plan
		m.days = make(map[string]domain.DaySession, len(msg.days))
		for _, d := range msg.days {
			m.days[dayKey(d.Date)] = d
		}
		// Snap the cursor into the plan range on first load.
		if !m.plan.Contains(m.cursor) {
			m.cursor = domain.DateOnly(m.plan.StartDate)
			m.month = firstOfMonth(m.cursor)
		}
		return m, nil

	case transitionDoneMsg:
		if msg.err != nil {
			m.statusLine = formatter.StyleRed.Render(msg.err.Error())
			return m, nil
		}
		m.statusLine = transitionSummary(msg.result)
		return m, m.loadCmd()

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

func (m calendarModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, m.keys.Left):
		return m.moveCursor(-1), nil
	case key.Matches(msg, m.keys.Right):
		return m.moveCursor(1), nil
	case key.Matches(msg, m.keys.Up):
		return m.moveCursor(-7), nil
	case key.Matches(msg, m.keys.Down):
		return m.moveCursor(7), nil
	case key.Matches(msg, m.keys.PrevMonth):
		m.month = m.month.AddDate(0, -1, 0)
		return m, nil
	case key.Matches(msg, m.keys.NextMonth):
		m.month = m.month.AddDate(0, 1, 0)
		return m, nil
	case key.Matches(msg, m.keys.Read):
		if m.plan != nil && m.plan.Contains(m.cursor) {
			return m, m.transitionCmd(domain.DayRead)
		}
	case key.Matches(msg, m.keys.Miss):
		if m.plan != nil && m.plan.Contains(m.cursor) {
			return m, m.transitionCmd(domain.DayMissed)
		}
	case key.Matches(msg, m.keys.Clear):
		if m.plan != nil && m.plan.Contains(m.cursor) {
			return m, m.transitionCmd(domain.DayUnset)
		}
	}
	return m, nil
}

func (m calendarModel) moveCursor(deltaDays int) calendarModel {
	m.cursor = m.cursor.AddDate(0, 0, deltaDays)
	if m.cursor.Before(m.month) || !m.cursor.Before(m.month.AddDate(0, 1, 0)) {
		m.month = firstOfMonth(m.cursor)
	}
	m.statusLine = ""
	return m
}

func (m calendarModel) View() string {
	if m.quitting {
		return ""
	}
	if m.loading || m.plan == nil {
		return formatter.Dim("Loading...")
	}

	var b strings.Builder

	b.WriteString(fmt.Sprintf("%s %s  %s\n\n",
		formatter.StylePurple.Render(m.plan.DisplayID()),
		formatter.Bold(m.plan.Title),
		formatter.Dim(m.month.Format("January 2006"))))

	b.WriteString(m.renderGrid())
	b.WriteString("\n")

	b.WriteString(m.renderCursorDetail())
	b.WriteString("\n")

	if m.statusLine != "" {
		b.WriteString(m.statusLine + "\n")
	}

	b.WriteString(formatter.Dim("h/j/k/l move · [/] month · r read · m miss · u clear · q quit"))
	b.WriteString("\n")

	return b.String()
}

func (m calendarModel) renderGrid() string {
	var b strings.Builder

	for _, wd := range []string{"Mo", "Tu", "We", "Th", "Fr", "Sa", "Su"} {
		b.WriteString(formatter.Dim(fmt.Sprintf("%-5s", wd)))
	}
	b.WriteString("\n")

	last := m.month.AddDate(0, 1, -1)
	offset := (int(m.month.Weekday()) + 6) % 7
	b.WriteString(strings.Repeat(" ", offset*5))

	col := offset
	for cur := m.month; !cur.After(last); cur = cur.AddDate(0, 0, 1) {
		b.WriteString(m.renderCell(cur))
		col++
		if col == 7 {
			b.WriteString("\n")
			col = 0
		}
	}
	if col != 0 {
		b.WriteString("\n")
	}

	return b.String()
}

func (m calendarModel) renderCell(cur time.Time) string {
	label := fmt.Sprintf("%2d", cur.Day())

	var style lipgloss.Style
	switch {
	case !m.plan.Contains(cur):
		style = formatter.StyleDim
	default:
		switch m.dayStatus(cur) {
		case domain.DayRead:
			style = formatter.StyleGreen
		case domain.DayMissed:
			style = formatter.StyleRed
		default:
			style = formatter.StyleFg
		}
	}

	cell := style.Render(label)
	if sameDate(cur, m.cursor) {
		cell = lipgloss.NewStyle().
			Foreground(formatter.ColorFg).
			Background(formatter.ColorDim).
			Bold(true).
			Render(label)
	}

	return cell + "   "
}

func (m calendarModel) renderCursorDetail() string {
	if !m.plan.Contains(m.cursor) {
		return formatter.Dim(m.cursor.Format("Mon Jan 2") + " is outside this plan")
	}

	d, ok := m.days[dayKey(m.cursor)]
	if !ok {
		return fmt.Sprintf("%s  %s", formatter.Bold(m.cursor.Format("Mon Jan 2")),
			formatter.Dim("no pages scheduled"))
	}

	detail := fmt.Sprintf("%d planned", d.PlannedPages)
	switch d.Status {
	case domain.DayRead:
		detail = formatter.StyleGreen.Render(fmt.Sprintf("read %d", d.EffectivePages()))
	case domain.DayMissed:
		detail = formatter.StyleRed.Render("missed")
	}

	return fmt.Sprintf("%s  %s %s", formatter.Bold(m.cursor.Format("Mon Jan 2")),
		formatter.DayGlyph(d.Status), detail)
}

func (m calendarModel) dayStatus(t time.Time) domain.DayStatus {
	if d, ok := m.days[dayKey(t)]; ok {
		return d.Status
	}
	return domain.DayUnset
}

func transitionSummary(result *contract.MarkResult) string {
	line := fmt.Sprintf("Updated %s", result.Day.Date.Format("Jan 2"))
	if result.RebalancedDays > 0 {
		line += fmt.Sprintf(", rebalanced %d days", result.RebalancedDays)
	}
	return formatter.StyleYellow.Render(line)
}

func dayKey(t time.Time) string {
	return t.Format("2006-01-02")
}

func sameDate(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month() && a.Day() == b.Day()
}

// Run opens the interactive calendar for the referenced plan and blocks
// until the user quits.
func Run(ctx context.Context, tracker service.TrackerService, ref string, clock service.Clock) error {
	m := newCalendarModel(ctx, tracker, ref, clock)

	final, err := tea.NewProgram(m, tea.WithAltScreen()).Run()
	if err != nil {
		return err
	}
	if fm, ok := final.(calendarModel); ok && fm.err != nil {
		return fm.err
	}
	return nil
}
