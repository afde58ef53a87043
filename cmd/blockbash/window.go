package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/block-bash/internal/audio"
	"github.com/vovakirdan/block-bash/internal/game"
	"github.com/vovakirdan/block-bash/internal/platform/gui"
	"github.com/vovakirdan/block-bash/internal/storage"
)

var windowCmd = &cobra.Command{
	Use:   "window",
	Short: "Play in a desktop window",
	Long: `Open a 600x500 window and play there.

Controls:
  Left/A     - Move paddle left
  Right/D    - Move paddle right
  R          - Restart (after game over)
  Q/Esc      - Quit`,
	Args: cobra.NoArgs,
	RunE: runWindow,
}

func runWindow(_ *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	logger, closeLog, err := newLogger(cfg.Log, false)
	if err != nil {
		return err
	}
	defer closeLog()

	stores := openStores(cfg.Storage, logger)
	defer stores.Close()

	scores := storage.NewHighScoreStore(stores.backend, logger)

	sounds, closeAudio := audio.Open(cfg.Audio, logger)
	defer closeAudio()

	rt := runtimeConfig(cfg, game.WindowWidth, game.WindowHeight)
	session := game.New(rt,
		game.WithSprites(sprites(cfg.Sprites)),
		game.WithHighScore(scores.LoadHighScore()),
		game.WithHighScores(scores),
		game.WithSounds(sounds),
	)
	logger.Info("window opened", "seed", rt.Seed, "tick_rate", rt.TickRate)

	return gui.Run(session, rt.TickRate, gui.Options{
		History: stores.history(),
		Logger:  logger,
	})
}
