package audio

import (
	"time"

	"github.com/gopxl/beep"

	"github.com/vovakirdan/block-bash/internal/config"
)

const sampleRate = beep.SampleRate(44100)

// Sound lengths.
const (
	hitNoteDuration      = 40 * time.Millisecond
	gameOverNoteDuration = 180 * time.Millisecond
	musicNoteDuration    = 220 * time.Millisecond
)

// Note frequencies in Hz.
var (
	hitNotes      = []float64{660, 990}
	gameOverNotes = []float64{392, 330, 262, 196}
	// A minor arpeggio, two bars.
	musicNotes = []float64{220, 261.63, 329.63, 440, 329.63, 261.63, 196, 246.94}
)

// HitSound is the short blip played when a block breaks.
func HitSound(cfg config.AudioConfig, rate beep.SampleRate) beep.Streamer {
	return newVolume(melody(hitNotes, hitNoteDuration, WaveSquare, rate), cfg.HitVolume*cfg.MasterVolume)
}

// GameOverSound is the falling phrase played when the ball is lost.
func GameOverSound(cfg config.AudioConfig, rate beep.SampleRate) beep.Streamer {
	return newVolume(melody(gameOverNotes, gameOverNoteDuration, WaveTriangle, rate), cfg.GameOverVolume*cfg.MasterVolume)
}

// MusicLoop is the endless background tune.
func MusicLoop(cfg config.AudioConfig, rate beep.SampleRate) beep.Streamer {
	i := 0
	tune := beep.Iterate(func() beep.Streamer {
		f := musicNotes[i%len(musicNotes)]
		i++
		return note(f, musicNoteDuration, WaveSine, rate)
	})
	return newVolume(tune, cfg.MusicVolume*cfg.MasterVolume)
}

func melody(freqs []float64, d time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	notes := make([]beep.Streamer, len(freqs))
	for i, f := range freqs {
		notes[i] = note(f, d, wave, rate)
	}
	return beep.Seq(notes...)
}
