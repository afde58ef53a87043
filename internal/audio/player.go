// Package audio plays Block Bash sound effects and background music.
// All sounds are synthesized at runtime; no asset files are needed.
package audio

import (
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/vovakirdan/block-bash/internal/config"
	"github.com/vovakirdan/block-bash/internal/game"
)

// Player mixes game sounds onto the speaker. Play calls never block and are
// no-ops until Init succeeds.
type Player struct {
	mu          sync.Mutex
	cfg         config.AudioConfig
	mixer       *beep.Mixer
	music       *beep.Ctrl
	initialized bool

	// lock and unlock guard the mixer while the speaker goroutine reads it.
	lock, unlock func()
}

var _ game.Sounds = (*Player)(nil)

// NewPlayer creates a player for the given settings.
func NewPlayer(cfg config.AudioConfig) *Player {
	return &Player{
		cfg:    cfg,
		mixer:  &beep.Mixer{},
		lock:   speaker.Lock,
		unlock: speaker.Unlock,
	}
}

// Init opens the audio device and starts the mixer.
func (p *Player) Init() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.initialized {
		return nil
	}

	if err := speaker.Init(sampleRate, sampleRate.N(100*time.Millisecond)); err != nil {
		return err
	}

	speaker.Play(p.mixer)
	p.initialized = true
	return nil
}

// PlayHit plays the block hit blip.
func (p *Player) PlayHit() {
	p.play(HitSound(p.cfg, sampleRate))
}

// PlayGameOver plays the game over phrase.
func (p *Player) PlayGameOver() {
	p.play(GameOverSound(p.cfg, sampleRate))
}

func (p *Player) play(s beep.Streamer) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}
	p.lock()
	p.mixer.Add(s)
	p.unlock()
}

// StartMusic starts the background loop if music is enabled and not already playing.
func (p *Player) StartMusic() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized || !p.cfg.Music {
		return
	}

	p.lock()
	defer p.unlock()
	if p.music != nil {
		p.music.Paused = false
		return
	}
	p.music = &beep.Ctrl{Streamer: MusicLoop(p.cfg, sampleRate)}
	p.mixer.Add(p.music)
}

// StopMusic pauses the background loop.
func (p *Player) StopMusic() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.music == nil {
		return
	}
	p.lock()
	p.music.Paused = true
	p.unlock()
}

// Close silences everything and releases the audio device.
func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}

	p.lock()
	p.mixer.Clear()
	p.unlock()
	p.music = nil
	speaker.Close()
	p.initialized = false
}

// Open returns the sound sink for the game. It falls back to silence when
// audio is disabled or the device cannot be opened. The returned close
// function is always safe to call.
func Open(cfg config.AudioConfig, logger *log.Logger) (game.Sounds, func()) {
	if !cfg.Enabled {
		return game.NopSounds{}, func() {}
	}

	if logger == nil {
		logger = log.Default()
	}

	p := NewPlayer(cfg)
	if err := p.Init(); err != nil {
		logger.Warn("audio unavailable, continuing without sound", "err", err)
		return game.NopSounds{}, func() {}
	}
	p.StartMusic()
	return p, p.Close
}
