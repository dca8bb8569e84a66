// Package tetris implements a falling-block puzzle on a bordered 10×20 well.
//
// Board, Piece, Generator and the shape catalog form a synchronous core with
// no timers or I/O. Game adapts that core to the terminal host: it drains one
// input frame per tick onto the board and applies gravity on a fixed frame
// cadence.
package tetris

import (
	"math/rand"

	"github.com/vovakirdan/tui-tetris/internal/config"
	"github.com/vovakirdan/tui-tetris/internal/core"
	"github.com/vovakirdan/tui-tetris/internal/registry"
)

// ID is the registry identifier of the game.
const ID = "tetris"

// activeConfig is the configuration used by the registry factory.
var activeConfig = config.DefaultTetrisConfig()

// SetConfig sets the configuration for games created through the registry.
func SetConfig(cfg config.TetrisConfig) {
	activeConfig = cfg
}

func init() {
	registry.Register(registry.GameInfo{
		ID:      ID,
		Title:   "Tetris",
		Summary: "Stack falling tetrominoes and clear full rows",
	}, func() registry.Game {
		return New()
	})
}

// Game drives one tetris session.
type Game struct {
	cfg     config.TetrisConfig
	rng     *rand.Rand // Seeds restarts
	board   *Board
	gen     *Generator
	lockSrc PieceSource
	piece   Piece

	tick    uint64
	frame   int // Frames since the last gravity step
	locked  int // Pieces locked this session
	cleared int // Rows removed this session

	gameOver bool
	paused   bool

	screenW int
	screenH int
}

// New creates a game using the configuration set by SetConfig.
func New() *Game {
	return NewWithConfig(activeConfig)
}

// NewWithConfig creates a game with an explicit configuration.
func NewWithConfig(cfg config.TetrisConfig) *Game {
	return &Game{cfg: cfg}
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return ID
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Tetris"
}

// Reset starts a new session on an empty well.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.rng = rand.New(rand.NewSource(cfg.Seed))
	g.screenW = cfg.ScreenW
	g.screenH = cfg.ScreenH
	g.tick = 0
	g.frame = 0
	g.locked = 0
	g.cleared = 0
	g.gameOver = false
	g.paused = false

	spawn := core.Point{
		X: core.Clamp(g.cfg.Spawn.X, config.SpawnMinX, config.SpawnMaxX),
		Y: core.Clamp(g.cfg.Spawn.Y, config.SpawnMinY, config.SpawnMaxY),
	}
	g.gen = NewSeededGenerator(g.rng.Int63(), spawn)
	g.lockSrc = LockSource(g.gen, g.cfg.Generator.DiscardDraw)

	g.board = NewBoard()
	g.piece = g.gen.Next()
	g.board.Spawn(g.piece)
}

// Step advances the session by one host frame.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.tick++

	if in.Has(core.ActionRestart) && g.gameOver {
		g.Reset(core.RuntimeConfig{
			Seed:    g.rng.Int63(),
			ScreenW: g.screenW,
			ScreenH: g.screenH,
		})
		return core.StepResult{State: g.State()}
	}

	if g.gameOver {
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	var events []core.Event
	if g.applyCommands(in) {
		// Hard drop locks immediately and restarts the gravity cadence.
		g.frame = 0
		events = g.gravity()
		return core.StepResult{State: g.State(), Events: events}
	}

	every := max(1, g.cfg.Timing.GravityEvery)
	g.frame++
	if g.frame >= every {
		g.frame = 0
		events = g.gravity()
	}

	return core.StepResult{State: g.State(), Events: events}
}

// applyCommands runs the frame's movement commands against the board in a
// fixed order. It reports whether a hard drop was requested.
func (g *Game) applyCommands(in core.InputFrame) bool {
	if in.Has(core.ActionRotate) {
		g.piece, _ = g.board.TryRotate(g.piece)
	}
	if in.Has(core.ActionLeft) {
		g.piece, _ = g.board.TryMove(g.piece, -1, 0)
	}
	if in.Has(core.ActionRight) {
		g.piece, _ = g.board.TryMove(g.piece, 1, 0)
	}
	if in.Has(core.ActionDown) {
		g.piece, _ = g.board.TryMove(g.piece, 0, 1)
	}
	if in.Has(core.ActionDrop) {
		g.piece, _ = g.board.Drop(g.piece)
		return true
	}
	return false
}

// gravity performs one gravity step and translates the outcome into events.
func (g *Game) gravity() []core.Event {
	res := g.board.StepGravity(g.piece, g.lockSrc)
	if res.Kind == TickContinuing {
		g.piece = res.Piece
		return nil
	}

	g.locked++
	g.cleared += res.Cleared
	events := []core.Event{{Kind: core.EventLocked, Value: g.locked}}
	if res.Cleared > 0 {
		events = append(events, core.Event{Kind: core.EventLinesCleared, Value: res.Cleared})
	}

	if res.Kind == TickGameOver {
		g.piece = res.Piece
		g.gameOver = true
		g.board.MarkGameOver()
		return append(events, core.Event{Kind: core.EventGameOver, Value: g.locked})
	}

	g.piece = res.Piece
	return events
}

// State returns the current game state. There is no scoring.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    0,
		GameOver: g.gameOver,
		Paused:   g.paused,
	}
}

// Board exposes the session's board for read-only inspection.
func (g *Game) Board() *Board {
	return g.board
}

// Piece returns the falling piece.
func (g *Game) Piece() Piece {
	return g.piece
}
