package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-tetris/internal/config"
	"github.com/vovakirdan/tui-tetris/internal/core"
	"github.com/vovakirdan/tui-tetris/internal/games/tetris"
	"github.com/vovakirdan/tui-tetris/internal/platform/tui"
	"github.com/vovakirdan/tui-tetris/internal/registry"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a game",
	Long: `Start a game of tetris.

Controls:
  Left/Right, A/D  - Move
  Down, S          - Soft drop
  Up, W            - Rotate
  Space            - Hard drop
  P/Esc            - Pause
  R                - Restart (after game over)
  Q/Ctrl+C         - Quit

Examples:
  tetris play
  tetris play --seed 42
  tetris play --config ./my-tetris.yaml`,
	Args: cobra.NoArgs,
	RunE: func(_ *cobra.Command, _ []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		return playGame(tetris.ID, cfg)
	},
}

// terminalSize returns the size of stdout, or 80x24 when it is not a terminal.
func terminalSize() (int, int) {
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		return w, h
	}
	return 80, 24
}

// playGame runs gameID in the terminal until the user quits.
func playGame(gameID string, cfg config.TetrisConfig) error {
	logger, closeLog, err := newLogger(flagLogFile, flagLogLevel)
	if err != nil {
		return err
	}
	defer closeLog() //nolint:errcheck // Best-effort close on exit

	tetris.SetConfig(cfg)
	game, err := registry.Create(gameID)
	if err != nil {
		return err
	}

	width, height := terminalSize()
	opts := tui.Options{
		Runtime: core.RuntimeConfig{
			ScreenW:  width,
			ScreenH:  height,
			TickRate: tickRate(cfg),
			Seed:     flagSeed,
		},
		Input:  cfg.Input,
		Logger: logger,
	}

	if err := tui.Run(game, opts); err != nil {
		return fmt.Errorf("run game: %w", err)
	}
	return nil
}
