package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-tetris/internal/platform/tui"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start menu with a settings view",
	Long: `Show the start menu. Enter starts the selected game, Tab shows the
effective configuration after files and TETRIS_* variables are applied.
When a game ends you return to the menu.`,
	Args: cobra.NoArgs,
	RunE: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	for {
		width, _ := terminalSize()
		gameID, err := tui.RunMenu(cfg, width)
		if err != nil {
			return err
		}
		if gameID == "" {
			return nil
		}
		if err := playGame(gameID, cfg); err != nil {
			return err
		}
	}
}
