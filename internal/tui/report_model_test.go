package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"

	"github.com/rshade/fitreport/internal/workout"
)

func sampleReports(t *testing.T) []workout.Report {
	t.Helper()
	inputs := []struct {
		tag  string
		args []float64
	}{
		{"SWM", []float64{720, 1, 80, 25, 40}},
		{"RUN", []float64{15000, 1, 75}},
		{"WLK", []float64{9000, 1, 75, 180}},
	}
	reports := make([]workout.Report, 0, len(inputs))
	for _, in := range inputs {
		r, err := workout.CreateRecordAndReport(in.tag, in.args)
		require.NoError(t, err)
		reports = append(reports, r)
	}
	return reports
}

func TestReportRow(t *testing.T) {
	reports := sampleReports(t)
	assert.Equal(t,
		[]string{"2", "Running", "1.000", "9.750", "9.750", "797.805"},
		ReportRow(1, reports[1]))
	assert.Len(t, ReportHeaders(), len(ReportRow(0, reports[0])))
}

func TestRenderReportTable(t *testing.T) {
	out := RenderReportTable(sampleReports(t))
	for _, want := range []string{"Kind", "Calories", "Swimming", "SportsWalking", "797.805", "0.994"} {
		assert.Contains(t, out, want)
	}
}

func TestReportModel_Navigation(t *testing.T) {
	m := NewReportModel(sampleReports(t), nil, language.English)
	assert.Nil(t, m.Init())

	sel, ok := m.Selected()
	require.True(t, ok)
	assert.Equal(t, workout.KindSwimming, sel.Kind)

	_, _ = m.Update(tea.KeyMsg{Type: tea.KeyDown})
	sel, ok = m.Selected()
	require.True(t, ok)
	assert.Equal(t, workout.KindRunning, sel.Kind)

	_, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	assert.Contains(t, m.View(), "Training type: Running;")
}

func TestReportModel_Quit(t *testing.T) {
	for _, key := range []tea.KeyMsg{
		{Type: tea.KeyRunes, Runes: []rune("q")},
		{Type: tea.KeyEsc},
		{Type: tea.KeyCtrlC},
	} {
		t.Run(key.String(), func(t *testing.T) {
			m := NewReportModel(sampleReports(t), nil, language.English)
			_, cmd := m.Update(key)
			require.NotNil(t, cmd)
			assert.IsType(t, tea.QuitMsg{}, cmd())
			assert.Empty(t, m.View())
		})
	}
}

func TestReportModel_View(t *testing.T) {
	m := NewReportModel(sampleReports(t), []string{"in.txt:4 (XYZ): unrecognized workout kind"}, language.English)
	_, _ = m.Update(tea.WindowSizeMsg{Width: 100, Height: 30})

	view := m.View()
	assert.Contains(t, view, "WORKOUT REPORTS (3)")
	assert.Contains(t, view, "Swimming")
	assert.Contains(t, view, "in.txt:4 (XYZ)")
	assert.Contains(t, view, "q quit")
	assert.NotContains(t, view, "all 3 packages summarized")
}

func TestReportModel_DetailLanguage(t *testing.T) {
	tests := []struct {
		name string
		lang language.Tag
		want string
	}{
		{"english", language.English, "Training type: Swimming; Duration: 1.000 h.;"},
		{"russian", language.Russian, "Тип тренировки: Swimming; Длительность: 1.000 ч.;"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewReportModel(sampleReports(t), nil, tt.lang)
			_, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
			assert.Contains(t, m.View(), tt.want)
		})
	}
}

func TestReportModel_AllSummarized(t *testing.T) {
	m := NewReportModel(sampleReports(t), nil, language.English)
	assert.Contains(t, m.View(), "✓ all 3 packages summarized")
}

func TestReportModel_WrapsToWidth(t *testing.T) {
	failure := "in.txt:4 (XYZ): " + strings.Repeat("unrecognized workout kind ", 4)
	m := NewReportModel(sampleReports(t), []string{failure}, language.English)

	_, _ = m.Update(tea.WindowSizeMsg{Width: 40, Height: 30})
	_, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})

	view := m.View()
	start := strings.Index(view, "Training type:")
	require.GreaterOrEqual(t, start, 0)
	for _, line := range strings.Split(view[start:], "\n") {
		assert.LessOrEqual(t, lipgloss.Width(line), 40, line)
	}

	// Zero width turns wrapping off.
	m.SetWidth(0)
	assert.Contains(t, m.View(), strings.TrimSpace(failure))
}

func TestTerminalWidth(t *testing.T) {
	assert.Positive(t, TerminalWidth())
}

func TestReportModel_Empty(t *testing.T) {
	m := NewReportModel(nil, nil, language.English)
	_, ok := m.Selected()
	assert.False(t, ok)
	_, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	assert.Contains(t, m.View(), "WORKOUT REPORTS (0)")
}
