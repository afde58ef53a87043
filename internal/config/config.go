// Package config provides YAML-based configuration loading for Block Bash.
package config

import (
	"errors"
	"fmt"
)

// Config contains all configuration for the game and its collaborators.
type Config struct {
	Window  WindowConfig  `yaml:"window"`
	Sprites SpritesConfig `yaml:"sprites"`
	Input   InputConfig   `yaml:"input"`
	Audio   AudioConfig   `yaml:"audio"`
	Storage StorageConfig `yaml:"storage"`
	Log     LogConfig     `yaml:"log"`
}

// WindowConfig defines the tick loop parameters.
type WindowConfig struct {
	TickRate int `yaml:"tick_rate"`
}

// SpritesConfig defines entity sizes in world units.
type SpritesConfig struct {
	Paddle SizeConfig `yaml:"paddle"`
	Ball   SizeConfig `yaml:"ball"`
}

// SizeConfig is a width and height pair.
type SizeConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// InputConfig defines terminal input behavior.
type InputConfig struct {
	HoldTicks int `yaml:"hold_ticks"`
}

// AudioConfig defines sound output. Volumes are linear gains in [0, 1].
type AudioConfig struct {
	Enabled        bool    `yaml:"enabled"`
	MasterVolume   float64 `yaml:"master_volume"`
	HitVolume      float64 `yaml:"hit_volume"`
	GameOverVolume float64 `yaml:"game_over_volume"`
	Music          bool    `yaml:"music"`
	MusicVolume    float64 `yaml:"music_volume"`
}

// Storage backends.
const (
	BackendSQLite = "sqlite"
	BackendFile   = "file"
)

// StorageConfig selects where the high score lives.
type StorageConfig struct {
	Backend  string `yaml:"backend"`
	DBPath   string `yaml:"db_path"`
	FilePath string `yaml:"file_path"`
}

// LogConfig defines logging output.
type LogConfig struct {
	Level string `yaml:"level"`
	File  string `yaml:"file"`
}

// Default returns the hardcoded configuration, used when the embedded YAML
// cannot be parsed.
func Default() Config {
	return Config{
		Window: WindowConfig{TickRate: 80},
		Sprites: SpritesConfig{
			Paddle: SizeConfig{Width: 80, Height: 20},
			Ball:   SizeConfig{Width: 12, Height: 12},
		},
		Input: InputConfig{HoldTicks: 8},
		Audio: AudioConfig{
			Enabled:        true,
			MasterVolume:   0.8,
			HitVolume:      0.6,
			GameOverVolume: 0.8,
			Music:          true,
			MusicVolume:    0.3,
		},
		Storage: StorageConfig{
			Backend:  BackendSQLite,
			DBPath:   "~/.blockbash/scores.db",
			FilePath: "highscore.txt",
		},
		Log: LogConfig{
			Level: "info",
			File:  "~/.blockbash/blockbash.log",
		},
	}
}

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("invalid config")

// Validate checks that all values are usable.
func (c Config) Validate() error {
	var errs []error
	check := func(ok bool, format string, args ...any) {
		if !ok {
			errs = append(errs, fmt.Errorf("%w: %s", ErrInvalid, fmt.Sprintf(format, args...)))
		}
	}

	check(c.Window.TickRate > 0, "window.tick_rate must be positive, got %d", c.Window.TickRate)
	check(c.Sprites.Paddle.Width > 0 && c.Sprites.Paddle.Height > 0,
		"sprites.paddle must have positive size, got %gx%g", c.Sprites.Paddle.Width, c.Sprites.Paddle.Height)
	check(c.Sprites.Paddle.Width < 600, "sprites.paddle.width must be narrower than the window, got %g", c.Sprites.Paddle.Width)
	check(c.Sprites.Ball.Width > 0 && c.Sprites.Ball.Height > 0,
		"sprites.ball must have positive size, got %gx%g", c.Sprites.Ball.Width, c.Sprites.Ball.Height)
	check(c.Input.HoldTicks > 0, "input.hold_ticks must be positive, got %d", c.Input.HoldTicks)

	volumes := []struct {
		name  string
		value float64
	}{
		{"master_volume", c.Audio.MasterVolume},
		{"hit_volume", c.Audio.HitVolume},
		{"game_over_volume", c.Audio.GameOverVolume},
		{"music_volume", c.Audio.MusicVolume},
	}
	for _, v := range volumes {
		check(v.value >= 0 && v.value <= 1, "audio.%s must be within [0, 1], got %g", v.name, v.value)
	}

	switch c.Storage.Backend {
	case BackendSQLite:
		check(c.Storage.DBPath != "", "storage.db_path is required for the sqlite backend")
	case BackendFile:
		check(c.Storage.FilePath != "", "storage.file_path is required for the file backend")
	default:
		check(false, "storage.backend must be %q or %q, got %q", BackendSQLite, BackendFile, c.Storage.Backend)
	}

	switch c.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		check(false, "log.level must be debug, info, warn or error, got %q", c.Log.Level)
	}

	return errors.Join(errs...)
}
