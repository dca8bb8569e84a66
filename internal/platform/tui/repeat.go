package tui

import (
	"github.com/vovakirdan/tui-tetris/internal/config"
	"github.com/vovakirdan/tui-tetris/internal/core"
)

// Repeater turns key presses into a per-frame command stream. Terminals
// report presses only, so holding a key shows up as a stream of autorepeat
// events. A first press fires once; a second event for the same key within
// the release window marks it held, and from then on it fires at its cadence.
// The key counts as released when another key arrives or when no event for
// it has been seen for the release window.
type Repeater struct {
	moveEvery   int
	rotateEvery int
	release     int

	last   core.Action // Most recent repeatable key, held or not
	held   bool
	frames int // Frames since the key became held
	idle   int // Frames since the last event for the key
}

// NewRepeater creates a repeater with the cadences from cfg.
func NewRepeater(cfg config.TetrisInput) *Repeater {
	return &Repeater{
		moveEvery:   max(1, cfg.MoveRepeatFrames),
		rotateEvery: max(1, cfg.RotateRepeatFrames),
		release:     max(1, cfg.ReleaseFrames),
	}
}

// repeats reports whether a held key re-fires a.
func repeats(a core.Action) bool {
	switch a {
	case core.ActionLeft, core.ActionRight, core.ActionDown, core.ActionRotate:
		return true
	}
	return false
}

func (r *Repeater) cadence() int {
	if r.last == core.ActionRotate {
		return r.rotateEvery
	}
	return r.moveEvery
}

// Press records a key event. It returns true when the action should fire in
// the current frame. A repeat event for the last key only marks it held;
// the repeater decides when it fires again.
func (r *Repeater) Press(a core.Action) bool {
	if !repeats(a) {
		r.Release()
		return true
	}
	if a == r.last {
		if !r.held {
			r.held = true
			r.frames = 0
		}
		r.idle = 0
		return false
	}
	r.last = a
	r.held = false
	r.frames = 0
	r.idle = 0
	return true
}

// Release stops the current repeat.
func (r *Repeater) Release() {
	r.last = core.ActionNone
	r.held = false
	r.frames = 0
	r.idle = 0
}

// Held returns the action being repeated, or ActionNone.
func (r *Repeater) Held() core.Action {
	if !r.held {
		return core.ActionNone
	}
	return r.last
}

// Tick advances one frame and adds the held action to in when it is due.
func (r *Repeater) Tick(in *core.InputFrame) {
	if r.last == core.ActionNone {
		return
	}

	r.idle++
	if r.idle > r.release {
		r.Release()
		return
	}
	if !r.held {
		return
	}

	r.frames++
	if r.frames%r.cadence() == 0 {
		in.Set(r.last)
	}
}
