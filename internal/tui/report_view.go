package tui

import (
	"strconv"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"
	lgtable "github.com/charmbracelet/lipgloss/table"

	"github.com/rshade/fitreport/internal/workout"
)

// ReportHeaders are the column titles shared by every tabular view.
func ReportHeaders() []string {
	return []string{"#", "Kind", "Duration (h)", "Distance (km)", "Speed (km/h)", "Calories"}
}

// ReportRow converts a report to display cells; i is zero-based.
func ReportRow(i int, r workout.Report) []string {
	return []string{
		strconv.Itoa(i + 1),
		r.KindName,
		workout.FormatValue(r.DurationHours),
		workout.FormatValue(r.DistanceKm),
		workout.FormatValue(r.MeanSpeedKmh),
		workout.FormatValue(r.CaloriesKcal),
	}
}

// RenderReportTable renders reports as a bordered lipgloss table.
func RenderReportTable(reports []workout.Report) string {
	rows := make([][]string, len(reports))
	for i, r := range reports {
		rows[i] = ReportRow(i, r)
	}

	t := lgtable.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(ColorMuted)).
		Headers(ReportHeaders()...).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == lgtable.HeaderRow {
				return HeaderStyle.Padding(0, 1)
			}
			if col == 0 {
				return LabelStyle.Padding(0, 1)
			}
			return TableCellStyle
		})

	return t.Render()
}

// NewReportTable builds the bubbles table used by the interactive view.
func NewReportTable(reports []workout.Report, height int) table.Model {
	headers := ReportHeaders()
	widths := []int{4, 15, 13, 14, 13, 12} //nolint:mnd // Column widths.
	columns := make([]table.Column, len(headers))
	for i, h := range headers {
		columns[i] = table.Column{Title: h, Width: widths[i]}
	}

	rows := make([]table.Row, len(reports))
	for i, r := range reports {
		rows[i] = table.Row(ReportRow(i, r))
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithFocused(true),
		table.WithHeight(height),
	)

	s := table.DefaultStyles()
	s.Header = TableHeaderStyle
	s.Selected = TableSelectedStyle
	t.SetStyles(s)

	return t
}
