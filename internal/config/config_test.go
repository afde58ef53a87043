package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// isolate points HOME and the working directory at empty temp dirs.
func isolate(t *testing.T) (home, work string) {
	t.Helper()
	home = t.TempDir()
	work = t.TempDir()
	t.Setenv("HOME", home)
	t.Chdir(work)
	return home, work
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
}

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	assert.Equal(t, Default(), baseConfig())
	assert.NoError(t, Default().Validate())
	assert.NotEmpty(t, GetDefaultYAML())
}

func TestLoadFallsBackToDefaults(t *testing.T) {
	isolate(t)

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadCustomPathOverlaysDefaults(t *testing.T) {
	isolate(t)
	path := filepath.Join(t.TempDir(), "custom.yaml")
	writeFile(t, path, "window:\n  tick_rate: 60\nstorage:\n  backend: file\n")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 60, cfg.Window.TickRate)
	assert.Equal(t, BackendFile, cfg.Storage.Backend)
	assert.Equal(t, 80.0, cfg.Sprites.Paddle.Width, "unset keys keep their defaults")
	assert.Equal(t, "highscore.txt", cfg.Storage.FilePath)
}

func TestLoadCustomPathErrors(t *testing.T) {
	isolate(t)

	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err, "missing file")

	bad := filepath.Join(t.TempDir(), "bad.yaml")
	writeFile(t, bad, "window: [unterminated\n")
	_, err = Load(bad)
	assert.Error(t, err, "malformed YAML")

	invalid := filepath.Join(t.TempDir(), "invalid.yaml")
	writeFile(t, invalid, "window:\n  tick_rate: 0\n")
	_, err = Load(invalid)
	assert.ErrorIs(t, err, ErrInvalid)
}

func TestLoadSearchOrder(t *testing.T) {
	home, work := isolate(t)
	writeFile(t, filepath.Join(work, "configs", FileName), "window:\n  tick_rate: 50\n")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, 50, cfg.Window.TickRate, "local config")

	writeFile(t, filepath.Join(home, ".blockbash", "config.yaml"), "window:\n  tick_rate: 40\n")
	cfg, err = Load("")
	require.NoError(t, err)
	assert.Equal(t, 40, cfg.Window.TickRate, "user config wins")
}

func TestLoadSkipsBrokenSearchFiles(t *testing.T) {
	home, work := isolate(t)
	writeFile(t, filepath.Join(home, ".blockbash", "config.yaml"), "window: [unterminated\n")
	writeFile(t, filepath.Join(work, "configs", FileName), "input:\n  hold_ticks: 3\n")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, 3, cfg.Input.HoldTicks)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{"defaults", func(*Config) {}, ""},
		{"zero tick rate", func(c *Config) { c.Window.TickRate = 0 }, "tick_rate"},
		{"negative paddle", func(c *Config) { c.Sprites.Paddle.Width = -1 }, "sprites.paddle"},
		{"paddle wider than window", func(c *Config) { c.Sprites.Paddle.Width = 600 }, "narrower"},
		{"zero ball", func(c *Config) { c.Sprites.Ball.Height = 0 }, "sprites.ball"},
		{"zero hold", func(c *Config) { c.Input.HoldTicks = 0 }, "hold_ticks"},
		{"loud master", func(c *Config) { c.Audio.MasterVolume = 1.5 }, "master_volume"},
		{"negative music", func(c *Config) { c.Audio.MusicVolume = -0.1 }, "music_volume"},
		{"unknown backend", func(c *Config) { c.Storage.Backend = "redis" }, "storage.backend"},
		{"sqlite without path", func(c *Config) { c.Storage.DBPath = "" }, "db_path"},
		{"file without path", func(c *Config) {
			c.Storage.Backend = BackendFile
			c.Storage.FilePath = ""
		}, "file_path"},
		{"bad log level", func(c *Config) { c.Log.Level = "trace" }, "log.level"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalid)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestValidateReportsVolumesInOrder(t *testing.T) {
	cfg := Default()
	cfg.Audio.MasterVolume = 2
	cfg.Audio.HitVolume = 2
	cfg.Audio.GameOverVolume = 2
	cfg.Audio.MusicVolume = 2

	want := "invalid config: audio.master_volume must be within [0, 1], got 2\n" +
		"invalid config: audio.hit_volume must be within [0, 1], got 2\n" +
		"invalid config: audio.game_over_volume must be within [0, 1], got 2\n" +
		"invalid config: audio.music_volume must be within [0, 1], got 2"

	for range 20 {
		err := cfg.Validate()
		require.Error(t, err)
		assert.Equal(t, want, err.Error())
	}
}

func TestExpandPath(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	tests := []struct {
		in   string
		want string
	}{
		{"~/.blockbash/scores.db", filepath.Join(home, ".blockbash", "scores.db")},
		{"~", home},
		{"highscore.txt", "highscore.txt"},
		{"/tmp/x.db", "/tmp/x.db"},
		{"~user/x", "~user/x"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ExpandPath(tt.in), "ExpandPath(%q)", tt.in)
	}
}
