package tui

import (
	"testing"

	"github.com/vovakirdan/tui-tetris/internal/config"
	"github.com/vovakirdan/tui-tetris/internal/core"
)

func newTestRepeater() *Repeater {
	return NewRepeater(config.TetrisInput{
		MoveRepeatFrames:   1,
		RotateRepeatFrames: 5,
		ReleaseFrames:      3,
	})
}

// hold presses action twice, the way a terminal reports a held key.
func hold(r *Repeater, action core.Action) {
	r.Press(action)
	r.Press(action)
}

// countFires ticks r for n frames, keeping the key alive with an autorepeat
// event every `every` frames, and returns how often action fired.
func countFires(r *Repeater, action core.Action, n, every int) int {
	fires := 0
	for i := 1; i <= n; i++ {
		if every > 0 && i%every == 0 {
			r.Press(action)
		}
		in := core.NewInputFrame()
		r.Tick(&in)
		if in.Has(action) {
			fires++
		}
	}
	return fires
}

func TestRepeaterFirstPressFires(t *testing.T) {
	r := newTestRepeater()
	if !r.Press(core.ActionLeft) {
		t.Fatal("first press should fire")
	}
	if r.Held() != core.ActionNone {
		t.Errorf("Held = %v after one press, want None", r.Held())
	}
}

func TestRepeaterTapFiresOnce(t *testing.T) {
	for _, action := range []core.Action{core.ActionLeft, core.ActionRotate} {
		r := newTestRepeater()
		if !r.Press(action) {
			t.Fatalf("%v: press should fire", action)
		}
		if got := countFires(r, action, 20, 0); got != 0 {
			t.Errorf("%v: tap re-fired %d times, want 0", action, got)
		}
	}
}

func TestRepeaterTapsAfterReleaseFireOnce(t *testing.T) {
	r := newTestRepeater()
	fires := 0
	for range 3 {
		if r.Press(core.ActionLeft) {
			fires++
		}
		fires += countFires(r, core.ActionLeft, 10, 0)
	}
	if fires != 3 {
		t.Errorf("three separate taps fired %d times, want 3", fires)
	}
}

func TestRepeaterAutorepeatDoesNotDoubleFire(t *testing.T) {
	r := newTestRepeater()
	r.Press(core.ActionLeft)
	if r.Press(core.ActionLeft) {
		t.Error("repeated event for the held key should not fire directly")
	}
	if r.Held() != core.ActionLeft {
		t.Errorf("Held = %v after autorepeat, want Left", r.Held())
	}
}

func TestRepeaterMoveCadence(t *testing.T) {
	r := newTestRepeater()
	hold(r, core.ActionRight)

	if got := countFires(r, core.ActionRight, 10, 2); got != 10 {
		t.Errorf("move fired %d times in 10 frames, want 10", got)
	}
}

func TestRepeaterRotateCadence(t *testing.T) {
	r := newTestRepeater()
	hold(r, core.ActionRotate)

	if got := countFires(r, core.ActionRotate, 20, 2); got != 4 {
		t.Errorf("rotate fired %d times in 20 frames, want 4", got)
	}
}

func TestRepeaterReleaseOnSilence(t *testing.T) {
	r := newTestRepeater()
	hold(r, core.ActionDown)

	fires := countFires(r, core.ActionDown, 30, 0)
	if fires != 3 {
		t.Errorf("fired %d times before release, want 3", fires)
	}
	if r.Held() != core.ActionNone {
		t.Errorf("Held = %v after silence, want None", r.Held())
	}
}

func TestRepeaterOtherKeyReleases(t *testing.T) {
	r := newTestRepeater()
	hold(r, core.ActionLeft)

	if !r.Press(core.ActionRight) {
		t.Error("switching keys should fire the new key")
	}
	if r.Held() != core.ActionNone {
		t.Errorf("Held = %v after switching, want None until Right repeats", r.Held())
	}
	r.Press(core.ActionRight)
	if r.Held() != core.ActionRight {
		t.Errorf("Held = %v, want Right", r.Held())
	}

	if !r.Press(core.ActionDrop) {
		t.Error("non-repeating actions always fire")
	}
	if r.Held() != core.ActionNone {
		t.Errorf("Held = %v after drop, want None", r.Held())
	}
}

func TestRepeaterIdleTickIsNoop(t *testing.T) {
	r := newTestRepeater()
	in := core.NewInputFrame()
	r.Tick(&in)
	if !in.Empty() {
		t.Error("idle repeater should not add actions")
	}
}

func TestRepeaterClampsCadence(t *testing.T) {
	r := NewRepeater(config.TetrisInput{})
	hold(r, core.ActionLeft)
	in := core.NewInputFrame()
	r.Tick(&in)
	if !in.Has(core.ActionLeft) {
		t.Error("zero cadences should behave as every frame")
	}
}
