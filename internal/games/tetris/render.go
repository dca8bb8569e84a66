package tetris

import (
	"fmt"

	"github.com/vovakirdan/tui-tetris/internal/core"
)

// Each grid cell is drawn two characters wide so blocks look square.
const (
	cellW      = 2
	wellW      = GridWidth * cellW
	wellH      = Height + 1 // Visible rows plus the floor
	panelW     = 18
	hudHeight  = 2
	panelGap   = 2
	minScreenW = wellW + panelGap + panelW
	minScreenH = hudHeight + wellH
)

// cellColors maps grid markers to screen colors.
var cellColors = map[Cell]core.Color{
	CellI:        core.ColorCyan,
	CellL1:       core.ColorOrange,
	CellL2:       core.ColorBlue,
	CellS1:       core.ColorGreen,
	CellS2:       core.ColorRed,
	CellO:        core.ColorYellow,
	CellT:        core.ColorMagenta,
	CellSentinel: core.ColorGray,
	CellTerminal: core.ColorRed,
}

// CellColor returns the color a cell is drawn with.
func CellColor(c Cell) core.Color {
	if col, ok := cellColors[c]; ok {
		return col
	}
	return core.ColorDefault
}

// Color returns the color of the kind's blocks.
func (k PieceKind) Color() core.Color {
	return CellColor(k.Cell())
}

// cellGlyph returns the two runes drawn for a cell.
func cellGlyph(c Cell) (rune, rune) {
	switch {
	case c == CellEmpty:
		return ' ', '·'
	case c == CellSentinel:
		return '▓', '▓'
	case c == CellTerminal:
		return '▒', '▒'
	default:
		return '█', '█'
	}
}

// Render draws the well, the side panel and any overlay.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if dst.Width() < minScreenW || dst.Height() < minScreenH {
		dst.DrawTextCentered(dst.Height()/2-1, "Window too small")
		dst.DrawTextCentered(dst.Height()/2, fmt.Sprintf("need %dx%d", minScreenW, minScreenH))
		return
	}

	g.renderHUD(dst)

	offX := (dst.Width() - minScreenW) / 2
	offY := hudHeight
	g.renderWell(dst, offX, offY)
	g.renderPanel(dst, offX+wellW+panelGap, offY)

	switch {
	case g.gameOver:
		g.renderOverlay(dst, "Game Over", "Press R to restart")
	case g.paused:
		g.renderOverlay(dst, "Paused", "Press P to continue")
	}
}

// renderHUD draws the top status bar.
func (g *Game) renderHUD(dst *core.Screen) {
	hud := fmt.Sprintf(" TETRIS | Pieces: %d | Lines: %d", g.locked, g.cleared)
	dst.DrawText(0, 0, hud)
	for x := range dst.Width() {
		dst.Set(x, 1, '─')
	}
}

// renderWell draws the visible rows with their walls and the floor.
func (g *Game) renderWell(dst *core.Screen, offX, offY int) {
	for row := range wellH {
		y := VisibleTop + row
		for x := range GridWidth {
			c := g.board.At(x, y)
			left, right := cellGlyph(c)
			col := CellColor(c)
			if c == CellEmpty {
				col = core.ColorGray
			}
			sx := offX + x*cellW
			dst.SetColored(sx, offY+row, left, col)
			dst.SetColored(sx+1, offY+row, right, col)
		}
	}
}

// renderPanel draws session counters and controls beside the well.
func (g *Game) renderPanel(dst *core.Screen, x, y int) {
	dst.DrawBox(core.NewRect(x, y, panelW, 8), core.ColorGray)
	dst.DrawText(x+2, y+1, fmt.Sprintf("Pieces %6d", g.locked))
	dst.DrawText(x+2, y+2, fmt.Sprintf("Lines  %6d", g.cleared))
	dst.DrawText(x+2, y+3, fmt.Sprintf("Tick   %6d", g.tick))
	if !g.gameOver {
		dst.DrawTextColored(x+2, y+5, "Falling: "+g.piece.Kind.String(), g.piece.Kind.Color())
	}

	controls := []string{
		"←/→  move",
		"↓    soft drop",
		"↑    rotate",
		"spc  hard drop",
		"p    pause",
		"q    quit",
	}
	for i, line := range controls {
		dst.DrawText(x+1, y+9+i, line)
	}
}

// renderOverlay draws a centered two-line message box.
func (g *Game) renderOverlay(dst *core.Screen, line1, line2 string) {
	boxW := max(len(line1), len(line2)) + 4
	boxH := 5
	box := core.NewRect((dst.Width()-boxW)/2, (dst.Height()-boxH)/2, boxW, boxH)

	for y := box.Y; y < box.Bottom(); y++ {
		for x := box.X; x < box.Right(); x++ {
			dst.Set(x, y, ' ')
		}
	}
	dst.DrawBox(box, core.ColorWhite)
	dst.DrawTextCentered(box.Y+1, line1)
	dst.DrawTextCentered(box.Y+3, line2)
}
