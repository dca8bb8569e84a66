package tetris

import (
	"strings"

	"github.com/vovakirdan/tui-tetris/internal/core"
)

// Well dimensions. The allocated grid adds a one-cell wall on the left and
// right, a one-cell floor, and hidden rows above the visible field.
const (
	Width      = 10 // Visible columns
	Height     = 20 // Visible rows
	HiddenRows = 3  // Spawn clearance above the visible field

	GridWidth  = Width + 2
	GridHeight = Height + 2 + HiddenRows

	FloorRow   = GridHeight - 1    // Sentinel row
	VisibleTop = FloorRow - Height // First visible row
	RightWall  = GridWidth - 1     // Sentinel column; the left wall is column 0
)

// Cell is the content of one grid position.
// Values 1 through 7 coincide with the PieceKind that left them.
type Cell uint8

const (
	CellEmpty Cell = iota
	CellI
	CellL1
	CellL2
	CellS1
	CellS2
	CellO
	CellT
	CellSentinel
	CellTerminal // Locked material after game over
)

// IsColor reports whether c is one of the seven piece markers.
func (c Cell) IsColor() bool {
	return c >= CellI && c <= CellT
}

// Rune is the single-character form used by String and the sim command.
func (c Cell) Rune() rune {
	switch {
	case c == CellEmpty:
		return '.'
	case c == CellSentinel:
		return '#'
	case c == CellTerminal:
		return 'X'
	case c.IsColor():
		return rune("ILJSZOT"[c-CellI])
	default:
		return '?'
	}
}

// Grid is a read-only copy of the visible field, indexed [row][column].
type Grid [Height][Width]Cell

// TickKind classifies the outcome of one gravity step.
type TickKind int

const (
	TickContinuing TickKind = iota // The piece fell one row
	TickSpawned                    // The piece locked and a new one appeared
	TickGameOver                   // The piece locked and the spawn was blocked
)

// String returns a short name for logging.
func (k TickKind) String() string {
	switch k {
	case TickContinuing:
		return "continuing"
	case TickSpawned:
		return "spawned"
	case TickGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// TickResult is returned by StepGravity. Piece is the piece now falling and
// is the zero Piece on game over. Cleared counts rows removed by the lock.
type TickResult struct {
	Kind    TickKind
	Piece   Piece
	Cleared int
}

// Board owns the bordered grid. It has no locking: callers serialize access.
type Board struct {
	cells [GridHeight][GridWidth]Cell
}

// NewBoard returns an initialized board.
func NewBoard() *Board {
	b := &Board{}
	b.Initialize()
	return b
}

// Initialize walls off the left, right and bottom edges and empties the rest.
func (b *Board) Initialize() {
	for y := range GridHeight {
		for x := range GridWidth {
			if isBorder(x, y) {
				b.cells[y][x] = CellSentinel
			} else {
				b.cells[y][x] = CellEmpty
			}
		}
	}
}

func isBorder(x, y int) bool {
	return x == 0 || x == RightWall || y == FloorRow
}

func inGrid(p core.Point) bool {
	return p.X >= 0 && p.X < GridWidth && p.Y >= 0 && p.Y < GridHeight
}

// At returns the cell at grid coordinates (x, y).
// Positions outside the grid read as Sentinel.
func (b *Board) At(x, y int) Cell {
	if !inGrid(core.Point{X: x, Y: y}) {
		return CellSentinel
	}
	return b.cells[y][x]
}

// CanPlace reports whether all four cells of p are empty.
func (b *Board) CanPlace(p Piece) bool {
	for _, c := range p.Cells() {
		if !inGrid(c) || b.cells[c.Y][c.X] != CellEmpty {
			return false
		}
	}
	return true
}

// Commit writes p's marker into its four cells. It does not check legality;
// call it only for a piece CanPlace accepted or one already on the board.
func (b *Board) Commit(p Piece) {
	marker := p.Kind.Cell()
	for _, c := range p.Cells() {
		b.cells[c.Y][c.X] = marker
	}
}

// Clear empties the four cells of p at its current rotation.
// Wall and floor cells are never overwritten.
func (b *Board) Clear(p Piece) {
	for _, c := range p.Cells() {
		if !inGrid(c) || isBorder(c.X, c.Y) {
			continue
		}
		b.cells[c.Y][c.X] = CellEmpty
	}
}

// place commits p only if every cell is free.
func (b *Board) place(p Piece) bool {
	if !b.CanPlace(p) {
		return false
	}
	b.Commit(p)
	return true
}

// relocate lifts current off the board and tries to put candidate down.
// On failure current is restored and the board is unchanged.
func (b *Board) relocate(current, candidate Piece) (Piece, bool) {
	b.Clear(current)
	if b.place(candidate) {
		return candidate, true
	}
	b.Commit(current)
	return current, false
}

// TryMove shifts p by (dx, dy). It returns the moved piece and true, or p
// and false when the target is blocked.
func (b *Board) TryMove(p Piece, dx, dy int) (Piece, bool) {
	return b.relocate(p, p.Moved(dx, dy))
}

// TryRotate turns p one step in place.
func (b *Board) TryRotate(p Piece) (Piece, bool) {
	return b.relocate(p, p.Rotated())
}

// Drop moves p down until it rests and reports how many rows it fell.
// The piece is not locked; the next gravity step does that.
func (b *Board) Drop(p Piece) (Piece, int) {
	rows := 0
	for {
		next, ok := b.TryMove(p, 0, 1)
		if !ok {
			return p, rows
		}
		p = next
		rows++
	}
}

// Spawn places the first piece of a session. It returns false when the
// spawn cells are occupied.
func (b *Board) Spawn(p Piece) bool {
	return b.place(p)
}

// StepGravity moves p down one row. When it cannot move, p locks where it
// is, full rows are compacted and the next piece from src is spawned.
func (b *Board) StepGravity(p Piece, src PieceSource) TickResult {
	if next, ok := b.TryMove(p, 0, 1); ok {
		return TickResult{Kind: TickContinuing, Piece: next}
	}

	b.Commit(p)
	cleared := b.CompactLines()

	next := src.Next()
	if !b.place(next) {
		return TickResult{Kind: TickGameOver, Cleared: cleared}
	}
	return TickResult{Kind: TickSpawned, Piece: next, Cleared: cleared}
}

// CompactLines removes every full row and returns how many were removed.
// Rows are scanned from the bottom up; after a removal the same row index is
// checked again because the row above has just dropped into it.
func (b *Board) CompactLines() int {
	removed := 0
	for y := FloorRow - 1; y > 0; {
		if b.rowFull(y) {
			b.removeRow(y)
			removed++
			continue
		}
		y--
	}
	return removed
}

func (b *Board) rowFull(y int) bool {
	for x := 1; x < RightWall; x++ {
		if b.cells[y][x] == CellEmpty {
			return false
		}
	}
	return true
}

// removeRow shifts the interior of every row above y down by one and
// empties row 0. Wall columns are left alone.
func (b *Board) removeRow(y int) {
	for j := y; j > 0; j-- {
		copy(b.cells[j][1:RightWall], b.cells[j-1][1:RightWall])
	}
	for x := 1; x < RightWall; x++ {
		b.cells[0][x] = CellEmpty
	}
}

// MarkGameOver recolors all locked material to the terminal marker.
// It does not stop the game; the driver stops issuing commands.
func (b *Board) MarkGameOver() {
	for y := 0; y < FloorRow; y++ {
		for x := 1; x < RightWall; x++ {
			if b.cells[y][x].IsColor() {
				b.cells[y][x] = CellTerminal
			}
		}
	}
}

// View returns a copy of the visible field.
func (b *Board) View() Grid {
	var g Grid
	for row := range Height {
		copy(g[row][:], b.cells[VisibleTop+row][1:RightWall])
	}
	return g
}

// Occupied counts non-empty interior cells, hidden rows included.
func (b *Board) Occupied() int {
	n := 0
	for y := 0; y < FloorRow; y++ {
		for x := 1; x < RightWall; x++ {
			if b.cells[y][x] != CellEmpty {
				n++
			}
		}
	}
	return n
}

// String renders the visible field with its walls and floor, one line per row.
func (b *Board) String() string {
	var sb strings.Builder
	sb.Grow((GridWidth + 1) * (Height + 1))
	for y := VisibleTop; y < GridHeight; y++ {
		if y > VisibleTop {
			sb.WriteByte('\n')
		}
		for x := range GridWidth {
			sb.WriteRune(b.cells[y][x].Rune())
		}
	}
	return sb.String()
}
