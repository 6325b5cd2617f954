package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-match3/internal/core"
)

// palette maps core.Color to ANSI 256-color codes.
var palette = map[core.Color]lipgloss.Color{
	core.ColorRed:           lipgloss.Color("1"),
	core.ColorGreen:         lipgloss.Color("2"),
	core.ColorYellow:        lipgloss.Color("3"),
	core.ColorBlue:          lipgloss.Color("4"),
	core.ColorMagenta:       lipgloss.Color("5"),
	core.ColorCyan:          lipgloss.Color("6"),
	core.ColorWhite:         lipgloss.Color("7"),
	core.ColorBrightRed:     lipgloss.Color("9"),
	core.ColorBrightGreen:   lipgloss.Color("10"),
	core.ColorBrightYellow:  lipgloss.Color("11"),
	core.ColorBrightBlue:    lipgloss.Color("12"),
	core.ColorBrightMagenta: lipgloss.Color("13"),
	core.ColorBrightCyan:    lipgloss.Color("14"),
	core.ColorBrightWhite:   lipgloss.Color("15"),
	core.ColorOrange:        lipgloss.Color("208"),
	core.ColorGray:          lipgloss.Color("245"),
	core.ColorDarkGray:      lipgloss.Color("238"),
	core.ColorBlack:         lipgloss.Color("16"),
}

// cellStyle is the part of a cell that affects styling.
type cellStyle struct {
	fg, bg core.Color
	bold   bool
}

func styleOf(c core.Cell) cellStyle {
	return cellStyle{fg: c.Fg, bg: c.Bg, bold: c.Bold}
}

// lipgloss builds the style for a cell. ColorDefault leaves the terminal
// color unchanged.
func (cs cellStyle) lipgloss() lipgloss.Style {
	style := lipgloss.NewStyle()
	if c, ok := palette[cs.fg]; ok {
		style = style.Foreground(c)
	}
	if c, ok := palette[cs.bg]; ok {
		style = style.Background(c)
	}
	if cs.bold {
		style = style.Bold(true)
	}
	return style
}

// PaletteColor returns the terminal color for c, and false for ColorDefault.
func PaletteColor(c core.Color) (lipgloss.Color, bool) {
	lc, ok := palette[c]
	return lc, ok
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same style to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	styles := make(map[cellStyle]lipgloss.Style)
	for y, h := 0, s.Height(); y < h; y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			start := styleOf(s.GetCell(x, y))

			var run strings.Builder
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if styleOf(cell) != start {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			if start == (cellStyle{}) {
				sb.WriteString(run.String())
				continue
			}
			style, ok := styles[start]
			if !ok {
				style = start.lipgloss()
				styles[start] = style
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}
