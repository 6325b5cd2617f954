package match3

import (
	"fmt"

	platformcore "github.com/vovakirdan/tui-match3/internal/core"
	"github.com/vovakirdan/tui-match3/internal/games/match3/core"
)

const (
	cellW        = 2  // Each token is a glyph plus a gap
	sidebarW     = 20 // HUD column to the right of the board
	sidebarGap   = 2
	headerHeight = 2
	flashPeriod  = 4 // Ticks per clear flash frame
)

// layout holds screen positions computed from the board and screen size.
type layout struct {
	frame   platformcore.Rect // Box around the board
	boardX  int               // Screen column of cell (0, 0)
	boardY  int               // Screen row of cell (0, 0)
	sidebar platformcore.Rect
}

var kindColors = map[core.Kind]platformcore.Color{
	core.KindRed:    platformcore.ColorBrightRed,
	core.KindGreen:  platformcore.ColorBrightGreen,
	core.KindBlue:   platformcore.ColorBrightBlue,
	core.KindYellow: platformcore.ColorBrightYellow,
	core.KindPurple: platformcore.ColorBrightMagenta,
	core.KindOrange: platformcore.ColorOrange,
	core.KindCyan:   platformcore.ColorBrightCyan,
	core.KindWhite:  platformcore.ColorBrightWhite,
}

var kindGlyphs = map[core.Kind]rune{
	core.KindRed:    '●',
	core.KindGreen:  '◆',
	core.KindBlue:   '■',
	core.KindYellow: '▲',
	core.KindPurple: '♥',
	core.KindOrange: '★',
	core.KindCyan:   '♣',
	core.KindWhite:  '♠',
}

// KindColor returns the screen color of a token kind.
func KindColor(k core.Kind) platformcore.Color {
	if c, ok := kindColors[k]; ok {
		return c
	}
	return platformcore.ColorDarkGray
}

// KindGlyph returns the rune drawn for a token kind.
func KindGlyph(k core.Kind) rune {
	if r, ok := kindGlyphs[k]; ok {
		return r
	}
	return '·'
}

// calculateLayout centers the board and sidebar on the screen.
func (g *Game) calculateLayout() {
	n := g.engine.Grid().Size()
	frameW := n*cellW + 3
	frameH := n + 2
	totalW := frameW + sidebarGap + sidebarW
	totalH := headerHeight + frameH

	g.tooSmall = g.screenW < totalW || g.screenH < totalH

	x := (g.screenW - totalW) / 2
	y := (g.screenH-totalH)/2 + headerHeight
	if x < 0 {
		x = 0
	}
	if y < headerHeight {
		y = headerHeight
	}

	g.layout = layout{
		frame:   platformcore.NewRect(x, y, frameW, frameH),
		boardX:  x + 2,
		boardY:  y + 1,
		sidebar: platformcore.NewRect(x+frameW+sidebarGap, y, sidebarW, frameH),
	}
}

// cellAt maps a screen position to a board cell.
func (g *Game) cellAt(x, y int) (core.Pos, bool) {
	if g.engine == nil {
		return core.Pos{}, false
	}
	n := g.engine.Grid().Size()
	area := platformcore.NewRect(g.layout.boardX, g.layout.boardY, n*cellW, n)
	if !area.Contains(x, y) {
		return core.Pos{}, false
	}
	return core.P(y-g.layout.boardY, (x-g.layout.boardX)/cellW), true
}

// cellScreenPos returns the screen position of a cell's glyph.
func (g *Game) cellScreenPos(p core.Pos) (int, int) {
	return g.layout.boardX + p.Col*cellW, g.layout.boardY + p.Row
}

// Render draws the game state to the screen.
func (g *Game) Render(dst *platformcore.Screen) {
	dst.Clear()

	if g.tooSmall {
		g.renderTooSmall(dst)
		return
	}
	if g.engine == nil {
		return
	}

	g.renderHeader(dst)
	dst.DrawBox(g.layout.frame, g.accent)
	g.renderBoard(dst)
	g.renderSidebar(dst)

	switch {
	case g.paused:
		g.renderOverlay(dst, "PAUSED", "Press P to resume")
	case g.gameOver:
		g.renderOverlay(dst, "OUT OF MOVES", fmt.Sprintf("Score: %d", g.score), "Press R to restart")
	}
}

// renderTooSmall shows a "window too small" message.
func (g *Game) renderTooSmall(dst *platformcore.Screen) {
	y := dst.Height() / 2
	dst.DrawTextCentered(y, "Window too small", platformcore.ColorDefault)
	dst.DrawTextCentered(y+1, "Please resize terminal", platformcore.ColorGray)
}

func (g *Game) renderHeader(dst *platformcore.Screen) {
	y := g.layout.frame.Y - headerHeight
	dst.DrawTextColored(g.layout.frame.X, y, g.Title(), g.accent)
}

// renderBoard draws every token with cursor, selection, hint and clear
// highlights.
func (g *Game) renderBoard(dst *platformcore.Screen) {
	snap := g.engine.Snapshot()

	clearing := make(map[core.Pos]bool, len(snap.Clearing))
	for _, p := range snap.Clearing {
		clearing[p] = true
	}
	flashOn := (g.tick/flashPeriod)%2 == 0

	for r, row := range snap.Rows {
		for c, k := range row {
			p := core.P(r, c)
			x, y := g.cellScreenPos(p)

			cell := platformcore.Cell{
				Rune: KindGlyph(k),
				Fg:   KindColor(k),
			}
			if clearing[p] {
				cell.Bold = true
				if flashOn {
					cell.Rune = '✱'
					cell.Fg = platformcore.ColorBrightWhite
				}
			}
			if g.hintTicks > 0 && (p == g.hint.A || p == g.hint.B) {
				cell.Bg = g.accent
				cell.Fg = platformcore.ColorBlack
			}
			if snap.HasSelection && p == snap.Selected {
				cell.Bg = platformcore.ColorGray
				cell.Bold = true
			}
			if p == g.cursor {
				cell.Bg = platformcore.ColorDarkGray
				cell.Bold = true
				dst.SetCell(x-1, y, platformcore.Cell{Rune: '[', Fg: g.accent, Bold: true})
				dst.SetCell(x+1, y, platformcore.Cell{Rune: ']', Fg: g.accent, Bold: true})
			}
			dst.SetCell(x, y, cell)
		}
	}
}

func (g *Game) renderSidebar(dst *platformcore.Screen) {
	x := g.layout.sidebar.X
	y := g.layout.sidebar.Y

	lines := []string{
		fmt.Sprintf("Score:   %d", g.score),
	}
	if g.mode == ModeClassic {
		lines = append(lines, fmt.Sprintf("Moves:   %d", g.movesLeft))
	} else {
		lines = append(lines, fmt.Sprintf("Moves:   %d", g.movesUsed))
	}
	lines = append(lines,
		fmt.Sprintf("Cleared: %d", g.cleared),
		fmt.Sprintf("Best x:  %d", g.maxCombo),
		fmt.Sprintf("Kinds:   %d", g.engine.Kinds()),
	)
	for i, line := range lines {
		dst.DrawText(x, y+i, line)
	}

	y += len(lines) + 1
	if g.combo > 1 {
		dst.DrawTextColored(x, y, fmt.Sprintf("COMBO x%d!", g.combo), g.accent)
	} else if g.engine.IsLocked() {
		dst.DrawTextColored(x, y, g.engine.Phase().String()+"...", platformcore.ColorGray)
	}

	help := []string{"arrows: move", "enter: select", "click: select"}
	if g.cfg.Rules.Hints {
		help = append(help, "h: hint")
	}
	help = append(help, "p: pause", "esc: menu")
	hy := g.layout.sidebar.Bottom() - len(help)
	for i, line := range help {
		dst.DrawTextColored(x, hy+i, line, platformcore.ColorDarkGray)
	}
}

// renderOverlay draws a centered box over the board.
func (g *Game) renderOverlay(dst *platformcore.Screen, lines ...string) {
	maxLen := 0
	for _, line := range lines {
		maxLen = max(maxLen, len(line))
	}
	box := g.layout.frame.CenterIn(maxLen+4, len(lines)+2)

	for y := box.Y; y < box.Bottom(); y++ {
		for x := box.X; x < box.Right(); x++ {
			dst.Set(x, y, ' ')
		}
	}
	dst.DrawBox(box, g.accent)
	for i, line := range lines {
		dst.DrawText(box.X+(box.W-len(line))/2, box.Y+1+i, line)
	}
}
