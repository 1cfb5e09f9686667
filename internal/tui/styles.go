// Package tui renders workout reports for terminals: a lipgloss-styled
// table for one-shot output and a bubbletea table view for --interactive.
package tui

import (
	"os"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"
)

// Palette (ANSI 256).
const (
	ColorAccent = lipgloss.Color("39")
	ColorMuted  = lipgloss.Color("240")
	ColorError  = lipgloss.Color("196")
	ColorOK     = lipgloss.Color("42")
)

const defaultTerminalWidth = 80

//nolint:gochecknoglobals // Shared read-only styles.
var (
	HeaderStyle = lipgloss.NewStyle().Bold(true).Foreground(ColorAccent)
	LabelStyle  = lipgloss.NewStyle().Foreground(ColorMuted)
	ValueStyle  = lipgloss.NewStyle().Bold(true)
	ErrorStyle  = lipgloss.NewStyle().Foreground(ColorError)
	OKStyle     = lipgloss.NewStyle().Foreground(ColorOK)

	TableHeaderStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(ColorAccent).
				BorderStyle(lipgloss.NormalBorder()).
				BorderBottom(true).
				BorderForeground(ColorMuted)
	TableSelectedStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("229")).
				Background(lipgloss.Color("57"))
	TableCellStyle = lipgloss.NewStyle().Padding(0, 1)
	HelpStyle      = lipgloss.NewStyle().Foreground(ColorMuted)
)

// TerminalWidth returns the stdout width, or 80 when it cannot be read.
func TerminalWidth() int {
	w, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || w <= 0 {
		return defaultTerminalWidth
	}
	return w
}
