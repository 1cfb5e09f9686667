package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"golang.org/x/text/language"

	"github.com/rshade/fitreport/internal/workout"
)

// Default dimensions for the report view.
const (
	reportDefaultHeight = 10
	reportChromeRows    = 6
)

// ReportModel is the Bubble Tea model behind `report --interactive`.
// Up/down move the cursor, enter shows the selected report's message line
// in the report language, q or esc quits.
type ReportModel struct {
	reports  []workout.Report
	failures []string
	lang     language.Tag
	table    table.Model
	detail   string
	width    int
	quitting bool
}

// NewReportModel creates a model over reports. failures are shown below the
// table as one line each. lang selects the message template of the detail
// line.
func NewReportModel(reports []workout.Report, failures []string, lang language.Tag) *ReportModel {
	height := min(len(reports)+1, reportDefaultHeight)
	return &ReportModel{
		reports:  reports,
		failures: failures,
		lang:     lang,
		table:    NewReportTable(reports, height),
	}
}

// SetWidth sets the width that the detail and failure lines wrap at.
// Zero disables wrapping.
func (m *ReportModel) SetWidth(width int) {
	m.width = max(width, 0)
}

// Init implements tea.Model.
func (m *ReportModel) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m *ReportModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.SetWidth(msg.Width)
		if h := msg.Height - reportChromeRows - len(m.failures); h > 0 {
			m.table.SetHeight(h)
		}
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			m.quitting = true
			return m, tea.Quit
		case "enter":
			if i := m.table.Cursor(); i >= 0 && i < len(m.reports) {
				m.detail = m.reports[i].MessageFor(m.lang)
			}
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View implements tea.Model.
func (m *ReportModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString(HeaderStyle.Render(fmt.Sprintf("WORKOUT REPORTS (%d)", len(m.reports))))
	b.WriteString("\n")
	b.WriteString(m.table.View())
	b.WriteString("\n")

	if m.detail != "" {
		b.WriteString(m.wrap(ValueStyle).Render(m.detail))
		b.WriteString("\n")
	}
	if len(m.failures) == 0 && len(m.reports) > 0 {
		b.WriteString(OKStyle.Render(fmt.Sprintf("✓ all %d packages summarized", len(m.reports))))
		b.WriteString("\n")
	}
	for _, f := range m.failures {
		b.WriteString(m.wrap(ErrorStyle).Render("✗ " + f))
		b.WriteString("\n")
	}

	b.WriteString(HelpStyle.Render("↑/↓ move • enter details • q quit"))
	return b.String()
}

// wrap limits style to the model width once the terminal size is known.
func (m *ReportModel) wrap(style lipgloss.Style) lipgloss.Style {
	if m.width <= 0 {
		return style
	}
	return style.Width(m.width)
}

// Selected returns the report under the cursor.
func (m *ReportModel) Selected() (workout.Report, bool) {
	i := m.table.Cursor()
	if i < 0 || i >= len(m.reports) {
		return workout.Report{}, false
	}
	return m.reports[i], true
}

// RunReportView runs the interactive view until the user quits. Lines wrap
// at the stdout width until the first resize event arrives.
func RunReportView(reports []workout.Report, failures []string, lang language.Tag, opts ...tea.ProgramOption) error {
	m := NewReportModel(reports, failures, lang)
	m.SetWidth(TerminalWidth())
	p := tea.NewProgram(m, opts...)
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("running report view: %w", err)
	}
	return nil
}
