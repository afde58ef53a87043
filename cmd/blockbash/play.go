package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/block-bash/internal/audio"
	"github.com/vovakirdan/block-bash/internal/config"
	"github.com/vovakirdan/block-bash/internal/game"
	"github.com/vovakirdan/block-bash/internal/platform/tui"
	"github.com/vovakirdan/block-bash/internal/storage"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the terminal",
	Long: `Start a game in the terminal.

Controls:
  Left/A     - Move paddle left
  Right/D    - Move paddle right
  R          - Restart (after game over)
  Ctrl+S     - Save a text screenshot
  Q/Ctrl+C   - Quit

Examples:
  blockbash play
  blockbash play --seed 42
  blockbash play --config ./my-blockbash.yaml`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func runPlay(_ *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	logger, closeLog, err := newLogger(cfg.Log, true)
	if err != nil {
		return err
	}
	defer closeLog()

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	stores := openStores(cfg.Storage, logger)
	defer stores.Close()

	scores := storage.NewHighScoreStore(stores.backend, logger)

	sounds, closeAudio := audio.Open(cfg.Audio, logger)
	defer closeAudio()

	rt := runtimeConfig(cfg, width, height)
	session := game.New(rt,
		game.WithSprites(sprites(cfg.Sprites)),
		game.WithHighScore(scores.LoadHighScore()),
		game.WithHighScores(scores),
		game.WithSounds(sounds),
	)
	logger.Info("game started", "seed", rt.Seed, "tick_rate", rt.TickRate, "backend", cfg.Storage.Backend)

	opts := tui.Options{
		History:   stores.history(),
		Logger:    logger,
		HoldTicks: cfg.Input.HoldTicks,
	}
	if dir := config.UserDir(); dir != "" {
		opts.ScreenshotDir = filepath.Join(dir, "screenshots")
	}

	if err := tui.Run(session, rt, opts); err != nil {
		return fmt.Errorf("running game: %w", err)
	}
	return nil
}
