package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-match3/internal/core"
)

// Theme contains the lipgloss styles of the menu and scoreboard screens.
type Theme struct {
	Accent lipgloss.Color

	Title       lipgloss.Style
	ItemNormal  lipgloss.Style
	ItemActive  lipgloss.Style
	Description lipgloss.Style
	Value       lipgloss.Style
	Controls    lipgloss.Style
	Border      lipgloss.Style
	Empty       lipgloss.Style
}

// NewTheme builds a theme around an accent color.
func NewTheme(accent core.Color) Theme {
	ac, ok := PaletteColor(accent)
	if !ok {
		ac = lipgloss.Color("229")
	}

	return Theme{
		Accent:      ac,
		Title:       lipgloss.NewStyle().Foreground(ac).Bold(true),
		ItemNormal:  lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		ItemActive:  lipgloss.NewStyle().Foreground(ac).Bold(true),
		Description: lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		Value:       lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Bold(true),
		Controls:    lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		Border: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ac).
			Padding(0, 2),
		Empty: lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Italic(true).
			Padding(2, 4),
	}
}
