package tetris

import "github.com/vovakirdan/tui-tetris/internal/core"

// PieceKind identifies one of the seven tetrominoes, or the empty piece.
type PieceKind uint8

const (
	KindEmpty PieceKind = iota
	KindI
	KindL1
	KindL2
	KindS1
	KindS2
	KindO
	KindT
)

// kindCount is the number of playable kinds (KindEmpty excluded).
const kindCount = 7

// Shape is the catalog entry for one kind: how many distinct orientations
// it has and the three cells around the anchor at rotation 0.
type Shape struct {
	Rotations int
	Offsets   [3]core.Point
}

// catalog is indexed by PieceKind. It is never written after initialization.
var catalog = [...]Shape{
	KindEmpty: {Rotations: 1, Offsets: [3]core.Point{{X: 0, Y: 0}, {X: 0, Y: 0}, {X: 0, Y: 0}}},
	KindI:     {Rotations: 2, Offsets: [3]core.Point{{X: 0, Y: -1}, {X: 0, Y: 1}, {X: 0, Y: 2}}},
	KindL1:    {Rotations: 4, Offsets: [3]core.Point{{X: 0, Y: -1}, {X: 0, Y: 1}, {X: 1, Y: 1}}},
	KindL2:    {Rotations: 4, Offsets: [3]core.Point{{X: 0, Y: -1}, {X: 0, Y: 1}, {X: -1, Y: 1}}},
	KindS1:    {Rotations: 2, Offsets: [3]core.Point{{X: 0, Y: -1}, {X: 1, Y: 0}, {X: 1, Y: 1}}},
	KindS2:    {Rotations: 2, Offsets: [3]core.Point{{X: 0, Y: -1}, {X: -1, Y: 0}, {X: -1, Y: 1}}},
	KindO:     {Rotations: 1, Offsets: [3]core.Point{{X: 0, Y: 1}, {X: 1, Y: 0}, {X: 1, Y: 1}}},
	KindT:     {Rotations: 4, Offsets: [3]core.Point{{X: 0, Y: -1}, {X: 1, Y: 0}, {X: -1, Y: 0}}},
}

// Kinds returns the seven playable kinds in catalog order.
func Kinds() []PieceKind {
	return []PieceKind{KindI, KindL1, KindL2, KindS1, KindS2, KindO, KindT}
}

// ShapeOf returns the catalog entry for k. Unknown kinds map to the empty piece.
func ShapeOf(k PieceKind) Shape {
	if int(k) >= len(catalog) {
		return catalog[KindEmpty]
	}
	return catalog[k]
}

// OffsetsAt returns the three offsets for the given rotation counter.
// The counter is reduced modulo Rotations, then each base offset is turned
// 90° that many times.
func (s Shape) OffsetsAt(rotation int) [3]core.Point {
	r := core.Mod(rotation, s.Rotations)
	out := s.Offsets
	for i := range out {
		for range r {
			out[i] = rotate90(out[i])
		}
	}
	return out
}

// rotate90 maps (dx, dy) to (dy, -dx).
func rotate90(p core.Point) core.Point {
	return core.Point{X: p.Y, Y: -p.X}
}

// Cell returns the grid marker a locked piece of this kind leaves behind.
func (k PieceKind) Cell() Cell {
	if k == KindEmpty || int(k) >= len(catalog) {
		return CellEmpty
	}
	return Cell(k)
}

// String returns the conventional short name of the kind.
func (k PieceKind) String() string {
	switch k {
	case KindEmpty:
		return "Empty"
	case KindI:
		return "I"
	case KindL1:
		return "L1"
	case KindL2:
		return "L2"
	case KindS1:
		return "S1"
	case KindS2:
		return "S2"
	case KindO:
		return "O"
	case KindT:
		return "T"
	default:
		return "Unknown"
	}
}
