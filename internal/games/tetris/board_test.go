package tetris

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-tetris/internal/core"
)

// queue is a PieceSource that replays a fixed list.
type queue struct {
	pieces []Piece
	next   int
}

func (q *queue) Next() Piece {
	p := q.pieces[q.next%len(q.pieces)]
	q.next++
	return p
}

// fillRow writes marker into the given interior columns of row y.
func fillRow(b *Board, y int, cols []int, marker Cell) {
	for _, x := range cols {
		b.cells[y][x] = marker
	}
}

func interiorCols(skip ...int) []int {
	var cols []int
	for x := 1; x < RightWall; x++ {
		if !containsInt(skip, x) {
			cols = append(cols, x)
		}
	}
	return cols
}

func containsInt(s []int, v int) bool {
	for _, x := range s {
		if x == v {
			return true
		}
	}
	return false
}

func assertBorderIntact(t *testing.T, b *Board) {
	t.Helper()
	for y := range GridHeight {
		require.Equal(t, CellSentinel, b.At(0, y), "left wall at row %d", y)
		require.Equal(t, CellSentinel, b.At(RightWall, y), "right wall at row %d", y)
	}
	for x := range GridWidth {
		require.Equal(t, CellSentinel, b.At(x, FloorRow), "floor at column %d", x)
	}
}

func TestBoardDimensions(t *testing.T) {
	assert.Equal(t, 12, GridWidth)
	assert.Equal(t, 25, GridHeight)
	assert.Equal(t, 24, FloorRow)
	assert.Equal(t, 4, VisibleTop)
	assert.Equal(t, 11, RightWall)
}

func TestInitialize(t *testing.T) {
	b := NewBoard()
	assertBorderIntact(t, b)
	assert.Equal(t, 0, b.Occupied())

	for y := 0; y < FloorRow; y++ {
		for x := 1; x < RightWall; x++ {
			require.Equal(t, CellEmpty, b.At(x, y))
		}
	}

	// Re-initializing wipes locked material.
	b.Commit(Piece{Anchor: core.Point{X: 5, Y: 10}, Kind: KindO})
	b.Initialize()
	assert.Equal(t, 0, b.Occupied())
	assertBorderIntact(t, b)
}

func TestAtOutsideGrid(t *testing.T) {
	b := NewBoard()
	assert.Equal(t, CellSentinel, b.At(-1, 5))
	assert.Equal(t, CellSentinel, b.At(GridWidth, 5))
	assert.Equal(t, CellSentinel, b.At(5, -1))
	assert.Equal(t, CellSentinel, b.At(5, GridHeight))
}

func TestCanPlace(t *testing.T) {
	b := NewBoard()
	p := Piece{Anchor: core.Point{X: 5, Y: 10}, Kind: KindT}
	assert.True(t, b.CanPlace(p))

	// Any one occupied cell blocks the whole piece.
	b.cells[10][6] = CellI
	assert.False(t, b.CanPlace(p))

	// Walls and floor block.
	assert.False(t, b.CanPlace(Piece{Anchor: core.Point{X: 1, Y: 10}, Kind: KindT}))
	assert.False(t, b.CanPlace(Piece{Anchor: core.Point{X: 5, Y: 22}, Kind: KindI}))
}

func TestCommitAndClear(t *testing.T) {
	b := NewBoard()
	p := Piece{Anchor: core.Point{X: 4, Y: 10}, Kind: KindS1, Rotation: 1}

	b.Commit(p)
	for _, c := range p.Cells() {
		assert.Equal(t, CellS1, b.At(c.X, c.Y))
	}
	assert.Equal(t, 4, b.Occupied())

	b.Clear(p)
	assert.Equal(t, 0, b.Occupied())
}

func TestClearKeepsBorder(t *testing.T) {
	b := NewBoard()
	// Horizontal I straddling the left wall.
	b.Clear(Piece{Anchor: core.Point{X: 1, Y: 10}, Kind: KindI, Rotation: 1})
	// Vertical I reaching through the floor and below the grid.
	b.Clear(Piece{Anchor: core.Point{X: 5, Y: FloorRow}, Kind: KindI})
	assertBorderIntact(t, b)
}

func TestTryMove(t *testing.T) {
	b := NewBoard()
	p := Piece{Anchor: core.Point{X: 5, Y: 10}, Kind: KindO}
	require.True(t, b.Spawn(p))

	moved, ok := b.TryMove(p, 1, 0)
	require.True(t, ok)
	assert.Equal(t, core.Point{X: 6, Y: 10}, moved.Anchor)
	assert.Equal(t, CellEmpty, b.At(5, 10), "old cells are cleared")
	assert.Equal(t, CellO, b.At(7, 11))
	assert.Equal(t, 4, b.Occupied())
}

func TestTryMoveBlockedIsAtomic(t *testing.T) {
	b := NewBoard()
	p := Piece{Anchor: core.Point{X: 5, Y: 10}, Kind: KindO}
	require.True(t, b.Spawn(p))
	// An obstacle under only one of the two target columns.
	b.cells[12][6] = CellT

	before := b.cells
	got, ok := b.TryMove(p, 0, 1)
	assert.False(t, ok)
	assert.Equal(t, p, got)
	assert.Equal(t, before, b.cells, "a rejected move leaves the grid unchanged")
}

func TestTryMoveIntoWall(t *testing.T) {
	b := NewBoard()
	p := Piece{Anchor: core.Point{X: 1, Y: 10}, Kind: KindO}
	require.True(t, b.Spawn(p))

	got, ok := b.TryMove(p, -1, 0)
	assert.False(t, ok)
	assert.Equal(t, p, got)
	assertBorderIntact(t, b)
}

func TestScenarioDropToBottom(t *testing.T) {
	b := NewBoard()
	p := Piece{Anchor: testSpawn, Kind: KindI}
	require.True(t, b.Spawn(p))

	for {
		next, ok := b.TryMove(p, 0, 1)
		if !ok {
			break
		}
		p = next
	}

	// Vertical I: anchor plus one above and two below.
	assert.Equal(t, core.Point{X: 5, Y: FloorRow - 3}, p.Anchor)
	for y := FloorRow - 4; y < FloorRow; y++ {
		assert.Equal(t, CellI, b.At(5, y), "row %d", y)
	}

	view := b.View()
	assert.Equal(t, CellI, view[Height-1][4], "bottom visible row holds the piece")
	assert.Equal(t, 4, b.Occupied())
}

func TestDrop(t *testing.T) {
	b := NewBoard()
	p := Piece{Anchor: testSpawn, Kind: KindO}
	require.True(t, b.Spawn(p))

	landed, rows := b.Drop(p)
	assert.Equal(t, FloorRow-2, landed.Anchor.Y)
	assert.Equal(t, FloorRow-2-testSpawn.Y, rows)
	assert.Equal(t, 4, b.Occupied())
}

func TestScenarioRotateAgainstRightWall(t *testing.T) {
	b := NewBoard()
	// Vertical I flush against the right wall; the horizontal target
	// would reach columns 11 and 12.
	p := Piece{Anchor: core.Point{X: Width, Y: 10}, Kind: KindI}
	require.True(t, b.Spawn(p))

	before := b.cells
	got, ok := b.TryRotate(p)
	assert.False(t, ok)
	assert.Equal(t, p, got)
	assert.Equal(t, before, b.cells)
	assertBorderIntact(t, b)
}

func TestTryRotate(t *testing.T) {
	b := NewBoard()
	p := Piece{Anchor: core.Point{X: 5, Y: 10}, Kind: KindI}
	require.True(t, b.Spawn(p))

	got, ok := b.TryRotate(p)
	require.True(t, ok)
	assert.Equal(t, 1, got.Rotation)
	for x := 4; x <= 7; x++ {
		assert.Equal(t, CellI, b.At(x, 10))
	}
	assert.Equal(t, CellEmpty, b.At(5, 9))
	assert.Equal(t, 4, b.Occupied())

	// One more turn brings the I back to vertical.
	got, ok = b.TryRotate(got)
	require.True(t, ok)
	assert.Equal(t, p.Cells(), got.Cells())
}

func TestScenarioCompactOneRow(t *testing.T) {
	b := NewBoard()
	full := VisibleTop + 18
	partial := VisibleTop + 17

	fillRow(b, full, interiorCols(), CellO)
	fillRow(b, partial, interiorCols(3), CellT)
	fillRow(b, FloorRow-1, []int{1, 2, 3}, CellI)
	require.Equal(t, 22, full)
	occupied := b.Occupied()

	assert.Equal(t, 1, b.CompactLines())
	assert.Equal(t, occupied-Width, b.Occupied())

	for x := 1; x < RightWall; x++ {
		want := CellT
		if x == 3 {
			want = CellEmpty
		}
		assert.Equal(t, want, b.At(x, full), "shifted row, column %d", x)
		assert.Equal(t, CellEmpty, b.At(x, partial), "row above is empty, column %d", x)
	}
	assert.Equal(t, CellI, b.At(1, FloorRow-1), "rows below are untouched")
	assertBorderIntact(t, b)
}

func TestCompactAdjacentRowsRescans(t *testing.T) {
	b := NewBoard()
	fillRow(b, FloorRow-1, interiorCols(), CellS1)
	fillRow(b, FloorRow-2, interiorCols(), CellS2)
	fillRow(b, FloorRow-3, []int{2, 4}, CellL1)
	fillRow(b, FloorRow-5, interiorCols(), CellL2)
	fillRow(b, FloorRow-6, []int{9}, CellO)

	assert.Equal(t, 3, b.CompactLines())
	assert.Equal(t, 3, b.Occupied())
	assert.Equal(t, CellL1, b.At(2, FloorRow-1))
	assert.Equal(t, CellL1, b.At(4, FloorRow-1))
	assert.Equal(t, CellO, b.At(9, FloorRow-3))
	assertBorderIntact(t, b)
}

func TestCompactTopRowRefills(t *testing.T) {
	b := NewBoard()
	fillRow(b, 0, []int{4}, CellT)
	fillRow(b, 1, interiorCols(), CellI)

	assert.Equal(t, 1, b.CompactLines())
	assert.Equal(t, CellT, b.At(4, 1))
	assert.Equal(t, CellEmpty, b.At(4, 0))
}

func TestCompactNothingToDo(t *testing.T) {
	b := NewBoard()
	fillRow(b, FloorRow-1, interiorCols(7), CellO)
	before := b.cells
	assert.Equal(t, 0, b.CompactLines())
	assert.Equal(t, before, b.cells)
}

func TestStepGravityFalls(t *testing.T) {
	b := NewBoard()
	p := Piece{Anchor: testSpawn, Kind: KindT}
	require.True(t, b.Spawn(p))

	res := b.StepGravity(p, &queue{pieces: []Piece{p}})
	assert.Equal(t, TickContinuing, res.Kind)
	assert.Equal(t, testSpawn.Y+1, res.Piece.Anchor.Y)
}

func TestStepGravityLocksAndSpawns(t *testing.T) {
	b := NewBoard()
	p := Piece{Anchor: testSpawn, Kind: KindO}
	require.True(t, b.Spawn(p))
	p, _ = b.Drop(p)

	next := Piece{Anchor: testSpawn, Kind: KindL2, Rotation: 2}
	res := b.StepGravity(p, &queue{pieces: []Piece{next}})
	assert.Equal(t, TickSpawned, res.Kind)
	assert.Equal(t, next, res.Piece)
	assert.Equal(t, 0, res.Cleared)
	assert.Equal(t, 8, b.Occupied())
}

func TestStepGravityClearsRows(t *testing.T) {
	b := NewBoard()
	// Leave a two-wide gap for an O piece in the bottom two rows.
	fillRow(b, FloorRow-1, interiorCols(5, 6), CellI)
	fillRow(b, FloorRow-2, interiorCols(5, 6), CellI)

	p := Piece{Anchor: core.Point{X: 5, Y: FloorRow - 2}, Kind: KindO}
	require.True(t, b.Spawn(p))

	res := b.StepGravity(p, &queue{pieces: []Piece{{Anchor: testSpawn, Kind: KindO}}})
	assert.Equal(t, TickSpawned, res.Kind)
	assert.Equal(t, 2, res.Cleared)
	assert.Equal(t, 4, b.Occupied(), "only the new piece remains")
}

func TestGameOverDetection(t *testing.T) {
	b := NewBoard()
	p := Piece{Anchor: core.Point{X: 1, Y: FloorRow - 2}, Kind: KindO}
	require.True(t, b.Spawn(p))
	// Block the spawn anchor.
	b.cells[testSpawn.Y][testSpawn.X] = CellS2

	res := b.StepGravity(p, &queue{pieces: []Piece{{Anchor: testSpawn, Kind: KindT}}})
	assert.Equal(t, TickGameOver, res.Kind)
	assert.Equal(t, Piece{}, res.Piece)
	assert.Equal(t, CellO, b.At(1, FloorRow-1), "the last piece stays locked")
	assert.Equal(t, CellEmpty, b.At(testSpawn.X+1, testSpawn.Y), "the blocked piece is not written")
}

func TestMarkGameOver(t *testing.T) {
	b := NewBoard()
	b.Commit(Piece{Anchor: core.Point{X: 3, Y: 20}, Kind: KindT})
	b.Commit(Piece{Anchor: core.Point{X: 7, Y: 21}, Kind: KindI})

	b.MarkGameOver()
	assert.Equal(t, 8, b.Occupied())
	for y := 0; y < FloorRow; y++ {
		for x := 1; x < RightWall; x++ {
			c := b.At(x, y)
			assert.True(t, c == CellEmpty || c == CellTerminal, "cell (%d,%d) = %v", x, y, c)
		}
	}
	assertBorderIntact(t, b)
}

func TestViewIsCopy(t *testing.T) {
	b := NewBoard()
	b.Commit(Piece{Anchor: core.Point{X: 1, Y: VisibleTop + 1}, Kind: KindO})

	view := b.View()
	assert.Equal(t, CellO, view[1][0])
	assert.Equal(t, CellO, view[2][1])

	view[0][0] = CellT
	assert.Equal(t, CellEmpty, b.At(1, VisibleTop))
}

func TestBoardString(t *testing.T) {
	b := NewBoard()
	b.Commit(Piece{Anchor: core.Point{X: 1, Y: FloorRow - 2}, Kind: KindO})

	lines := strings.Split(b.String(), "\n")
	require.Len(t, lines, Height+1)
	assert.Equal(t, "#..........#", lines[0])
	assert.Equal(t, "#OO........#", lines[Height-1])
	assert.Equal(t, "############", lines[Height])
}

func TestCellRune(t *testing.T) {
	assert.Equal(t, '.', CellEmpty.Rune())
	assert.Equal(t, '#', CellSentinel.Rune())
	assert.Equal(t, 'X', CellTerminal.Rune())
	assert.Equal(t, 'I', CellI.Rune())
	assert.Equal(t, 'T', CellT.Rune())
	assert.Equal(t, '?', Cell(200).Rune())
}

func TestTickKindString(t *testing.T) {
	assert.Equal(t, "continuing", TickContinuing.String())
	assert.Equal(t, "spawned", TickSpawned.String())
	assert.Equal(t, "game_over", TickGameOver.String())
}
