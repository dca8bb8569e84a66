package config

import (
	_ "embed"
)

//go:embed defaults/tetris.yaml
var defaultTetrisYAML []byte

// DefaultTetrisConfig returns the built-in configuration: a 40ms frame,
// gravity every 5th frame, rotation repeating 5× slower than movement,
// spawning at column 5 of the last hidden row.
func DefaultTetrisConfig() TetrisConfig {
	return TetrisConfig{
		Timing: TetrisTiming{
			FrameMS:      40,
			GravityEvery: 5,
		},
		Input: TetrisInput{
			MoveRepeatFrames:   1,
			RotateRepeatFrames: 5,
			ReleaseFrames:      3,
		},
		Spawn: TetrisSpawn{
			X: 5,
			Y: 3,
		},
		Generator: TetrisGenerator{
			DiscardDraw: false,
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultTetrisYAML
}
