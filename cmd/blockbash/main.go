// blockbash is a brick-breaker game for the terminal, a desktop window or SSH.
//
// Usage:
//
//	blockbash [play]         - Play in the terminal
//	blockbash window         - Play in a 600x500 window
//	blockbash serve          - Start SSH server for remote play
//	blockbash scores         - Show the score history
//	blockbash config         - Print the default configuration
//
// Global flags:
//
//	--config <path>     - Config file (default: search ~/.blockbash, ./configs)
//	--seed <value>      - RNG seed for reproducible block layouts
//	--log-level <lvl>   - debug, info, warn or error
package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/block-bash/internal/config"
	"github.com/vovakirdan/block-bash/internal/core"
	"github.com/vovakirdan/block-bash/internal/game"
)

var (
	// Global flags
	flagConfig   string
	flagSeed     int64
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "blockbash",
	Short: "Block Bash - break every block, keep the ball alive",
	Long: `Block Bash is a brick-breaker game. Move the paddle, bounce the ball
into the blocks and clear 100 points to reach the next level.

Available commands:
  play     - Play in the terminal (default)
  window   - Play in a desktop window
  serve    - Start SSH server for remote play
  scores   - View the score history
  config   - Print the default configuration

Examples:
  blockbash
  blockbash window
  blockbash serve --port 2222
  blockbash scores --interactive`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runPlay,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config YAML")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "Log level: debug, info, warn, error (overrides config)")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(windowCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(configCmd)
}

// loadConfig reads the config selected by --config and applies flag overrides.
func loadConfig() (config.Config, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return cfg, err
	}
	if flagLogLevel != "" {
		cfg.Log.Level = flagLogLevel
	}
	return cfg, nil
}

// newLogger builds the process logger. With toFile set, output goes to the
// configured log file so it does not fight a full-screen TUI for the terminal.
func newLogger(cfg config.LogConfig, toFile bool) (*log.Logger, func(), error) {
	level, err := log.ParseLevel(cfg.Level)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid log level %q: %w", cfg.Level, err)
	}

	var w io.Writer = os.Stderr
	closeFn := func() {}

	if toFile {
		if cfg.File == "" {
			w = io.Discard
		} else {
			path := config.ExpandPath(cfg.File)
			if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
				return nil, nil, fmt.Errorf("cannot create log directory: %w", err)
			}
			f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
			if err != nil {
				return nil, nil, fmt.Errorf("cannot open log file: %w", err)
			}
			w = f
			closeFn = func() { _ = f.Close() }
		}
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "blockbash",
		Level:           level,
	})
	return logger, closeFn, nil
}

// seed returns the --seed value, or a time-based one when it is unset.
func seed() int64 {
	if flagSeed != 0 {
		return flagSeed
	}
	return time.Now().UnixNano()
}

func runtimeConfig(cfg config.Config, width, height int) core.RuntimeConfig {
	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: cfg.Window.TickRate,
		Seed:     seed(),
	}
}

func sprites(cfg config.SpritesConfig) game.Sprites {
	return game.Sprites{
		PaddleW: cfg.Paddle.Width,
		PaddleH: cfg.Paddle.Height,
		BallW:   cfg.Ball.Width,
		BallH:   cfg.Ball.Height,
	}
}
