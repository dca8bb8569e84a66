package tetris

import (
	"math/rand"

	"github.com/vovakirdan/tui-tetris/internal/core"
)

// Piece is the falling piece: an anchor cell in grid coordinates, a kind and
// a rotation counter. The counter is never normalized; only OffsetsAt reduces it.
type Piece struct {
	Anchor   core.Point
	Kind     PieceKind
	Rotation int
}

// Cells returns the four grid cells the piece covers, anchor first.
func (p Piece) Cells() [4]core.Point {
	offsets := ShapeOf(p.Kind).OffsetsAt(p.Rotation)
	return [4]core.Point{
		p.Anchor,
		p.Anchor.Add(offsets[0]),
		p.Anchor.Add(offsets[1]),
		p.Anchor.Add(offsets[2]),
	}
}

// Moved returns a copy shifted by (dx, dy).
func (p Piece) Moved(dx, dy int) Piece {
	p.Anchor = p.Anchor.Add(core.Point{X: dx, Y: dy})
	return p
}

// Rotated returns a copy turned one step.
func (p Piece) Rotated() Piece {
	p.Rotation++
	return p
}

// PieceSource supplies the next piece to spawn.
type PieceSource interface {
	Next() Piece
}

// Generator draws random pieces at a fixed spawn anchor.
// Two generators built from the same seed produce identical sequences.
type Generator struct {
	rng   *rand.Rand
	spawn core.Point
}

// NewGenerator creates a generator that draws from src.
func NewGenerator(src rand.Source, spawn core.Point) *Generator {
	return &Generator{
		rng:   rand.New(src),
		spawn: spawn,
	}
}

// NewSeededGenerator creates a generator with its own seeded source.
func NewSeededGenerator(seed int64, spawn core.Point) *Generator {
	return NewGenerator(rand.NewSource(seed), spawn)
}

// Next draws a kind uniformly from the seven playable kinds, then a
// rotation uniformly from [0, 4).
func (g *Generator) Next() Piece {
	kind := KindI + PieceKind(g.rng.Intn(kindCount))
	rotation := g.rng.Intn(4)
	return Piece{
		Anchor:   g.spawn,
		Kind:     kind,
		Rotation: rotation,
	}
}

// Spawn returns the configured spawn anchor.
func (g *Generator) Spawn() core.Point {
	return g.spawn
}

// discardingSource draws one piece and throws it away before every kept
// draw, matching the random stream of the original lock path.
type discardingSource struct {
	src PieceSource
}

func (d discardingSource) Next() Piece {
	d.src.Next()
	return d.src.Next()
}

// LockSource returns the source used after a lock. With discard set it
// wastes one draw per spawn.
func LockSource(src PieceSource, discard bool) PieceSource {
	if discard {
		return discardingSource{src: src}
	}
	return src
}
