// Package config provides YAML-based game configuration loading with
// environment overrides for the tetris host.
package config

import (
	"errors"
	"fmt"
)

// TetrisConfig contains all tunable parameters of a tetris session.
// None of them change grid semantics; they control cadence and spawning.
type TetrisConfig struct {
	Timing    TetrisTiming    `yaml:"timing"`
	Input     TetrisInput     `yaml:"input"`
	Spawn     TetrisSpawn     `yaml:"spawn"`
	Generator TetrisGenerator `yaml:"generator"`
}

// TetrisTiming defines the host frame period and gravity cadence.
type TetrisTiming struct {
	FrameMS      int `yaml:"frame_ms" env:"TETRIS_FRAME_MS"`           // Host frame period in milliseconds
	GravityEvery int `yaml:"gravity_every" env:"TETRIS_GRAVITY_EVERY"` // Frames between gravity steps
}

// TetrisInput defines key-repeat cadences, all in frames.
type TetrisInput struct {
	MoveRepeatFrames   int `yaml:"move_repeat_frames" env:"TETRIS_MOVE_REPEAT_FRAMES"`
	RotateRepeatFrames int `yaml:"rotate_repeat_frames" env:"TETRIS_ROTATE_REPEAT_FRAMES"`
	// ReleaseFrames is how long a key stays down without a new event for it.
	// Terminals report presses only, so a second event inside this window
	// marks the key held and silence past it means release. It must exceed
	// the terminal's autorepeat interval.
	ReleaseFrames int `yaml:"release_frames" env:"TETRIS_RELEASE_FRAMES"`
}

// TetrisSpawn is the anchor cell where new pieces appear, in grid coordinates
// (column 0 and row 0 are the top-left of the bordered grid).
type TetrisSpawn struct {
	X int `yaml:"x" env:"TETRIS_SPAWN_X"`
	Y int `yaml:"y" env:"TETRIS_SPAWN_Y"`
}

// TetrisGenerator controls how the next piece is drawn.
type TetrisGenerator struct {
	// DiscardDraw makes every lock draw twice and keep the second piece,
	// reproducing the random stream of the original game.
	DiscardDraw bool `yaml:"discard_draw" env:"TETRIS_DISCARD_DRAW"`
}

// TickRate returns the host frame rate implied by FrameMS.
func (c TetrisConfig) TickRate() int {
	if c.Timing.FrameMS <= 0 {
		return 0
	}
	return max(1, 1000/c.Timing.FrameMS)
}

// Validate reports every invalid field at once.
func (c TetrisConfig) Validate() error {
	var errs []error

	if c.Timing.FrameMS <= 0 {
		errs = append(errs, fmt.Errorf("timing.frame_ms must be positive, got %d", c.Timing.FrameMS))
	}
	if c.Timing.GravityEvery <= 0 {
		errs = append(errs, fmt.Errorf("timing.gravity_every must be positive, got %d", c.Timing.GravityEvery))
	}
	if c.Input.MoveRepeatFrames <= 0 {
		errs = append(errs, fmt.Errorf("input.move_repeat_frames must be positive, got %d", c.Input.MoveRepeatFrames))
	}
	if c.Input.RotateRepeatFrames <= 0 {
		errs = append(errs, fmt.Errorf("input.rotate_repeat_frames must be positive, got %d", c.Input.RotateRepeatFrames))
	}
	if c.Input.ReleaseFrames < 0 {
		errs = append(errs, fmt.Errorf("input.release_frames must not be negative, got %d", c.Input.ReleaseFrames))
	}
	if c.Spawn.X < SpawnMinX || c.Spawn.X > SpawnMaxX {
		errs = append(errs, fmt.Errorf("spawn.x must be within [%d, %d], got %d", SpawnMinX, SpawnMaxX, c.Spawn.X))
	}
	if c.Spawn.Y < SpawnMinY || c.Spawn.Y > SpawnMaxY {
		errs = append(errs, fmt.Errorf("spawn.y must be within [%d, %d], got %d", SpawnMinY, SpawnMaxY, c.Spawn.Y))
	}

	if len(errs) > 0 {
		return fmt.Errorf("config: invalid tetris config: %w", errors.Join(errs...))
	}
	return nil
}

// Spawn bounds. A spawn anchor sits in the hidden rows above the visible
// field, far enough from the walls that every rotation of every piece fits
// between them. Row 0 stays free: pieces reach one row above the anchor and
// compaction never shifts row 0 down.
const (
	SpawnMinX = 2
	SpawnMaxX = 8
	SpawnMinY = 2
	SpawnMaxY = 3
)
