// tetris plays a falling-block puzzle in the terminal.
//
// Usage:
//
//	tetris play              - Play a game
//	tetris menu              - Start menu with a settings view
//	tetris list              - List registered games
//	tetris sim               - Run a seeded headless game and print the well
//	tetris config            - Print the default configuration
//
// Global flags:
//
//	--fps <rate>        - Override the frame rate (default: from frame_ms)
//	--seed <value>      - Set RNG seed for reproducible games
//	--config <path>     - Path to a tetris.yaml file
//	--log-file <path>   - Write logs to a file
//	--log-level <lvl>   - debug, info, warn or error
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-tetris/internal/config"
	_ "github.com/vovakirdan/tui-tetris/internal/games/tetris"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagConfig   string
	flagLogFile  string
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "tetris",
	Short: "Tetris in your terminal",
	Long: `A falling-block puzzle on a 10x20 well.

Available commands:
  play     - Start a game
  menu     - Start menu with a settings view
  list     - Show registered games
  sim      - Run a headless seeded game
  config   - Print the default configuration

Examples:
  tetris play
  tetris play --seed 42 --log-file /tmp/tetris.log
  tetris sim --seed 7 --frames 2000
  tetris config > ~/.tetris/configs/tetris.yaml`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		return applyHostEnv(cmd)
	},
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 0, "Frame rate (0 = derive from timing.frame_ms)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to a custom tetris.yaml")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(simCmd)
	rootCmd.AddCommand(configCmd)
}

// applyHostEnv fills global flags the user did not set from TETRIS_* variables.
func applyHostEnv(cmd *cobra.Command) error {
	env, err := config.LoadHostEnv()
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if !flags.Changed("log-file") && env.LogFile != "" {
		flagLogFile = env.LogFile
	}
	if !flags.Changed("log-level") && env.LogLevel != "" {
		flagLogLevel = env.LogLevel
	}
	if !flags.Changed("seed") && env.Seed != 0 {
		flagSeed = env.Seed
	}
	return nil
}

// loadConfig loads the game configuration honoring --config.
func loadConfig() (config.TetrisConfig, error) {
	cfg, err := config.LoadTetris(flagConfig)
	if err != nil {
		return cfg, fmt.Errorf("load config: %w", err)
	}
	return cfg, nil
}

// tickRate picks the frame rate: --fps wins over the configured frame period.
func tickRate(cfg config.TetrisConfig) int {
	if flagFPS > 0 {
		return flagFPS
	}
	return cfg.TickRate()
}
