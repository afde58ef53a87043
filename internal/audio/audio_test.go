package audio

import (
	"testing"
	"time"

	"github.com/gopxl/beep"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/block-bash/internal/config"
)

const testRate = beep.SampleRate(8000)

// drain streams s to the end, failing if it runs longer than limit samples.
func drain(t *testing.T, s beep.Streamer, limit int) [][2]float64 {
	t.Helper()
	var out [][2]float64
	buf := make([][2]float64, 256)
	for {
		n, ok := s.Stream(buf)
		out = append(out, buf[:n]...)
		if !ok {
			return out
		}
		require.LessOrEqual(t, len(out), limit, "stream did not end")
	}
}

func assertBounded(t *testing.T, samples [][2]float64) {
	t.Helper()
	for i, s := range samples {
		for ch := range 2 {
			require.InDelta(t, 0, s[ch], 1, "sample %d out of range: %v", i, s)
		}
	}
}

func TestOscillatorLength(t *testing.T) {
	for _, wave := range []WaveType{WaveSine, WaveSquare, WaveTriangle} {
		osc := NewOscillator(440, 100*time.Millisecond, wave, testRate)
		samples := drain(t, osc, 10000)
		assert.Len(t, samples, testRate.N(100*time.Millisecond))
		assertBounded(t, samples)
		assert.NoError(t, osc.Err())
	}
}

func TestSquareWaveValues(t *testing.T) {
	samples := drain(t, NewOscillator(220, 20*time.Millisecond, WaveSquare, testRate), 1000)
	for _, s := range samples {
		assert.Contains(t, []float64{-1, 1}, s[0])
	}
}

func TestEnvelopeFades(t *testing.T) {
	d := 100 * time.Millisecond
	osc := NewOscillator(0, d, WaveSquare, testRate) // constant 1.0
	env := NewEnvelope(osc, d, 10*time.Millisecond, 10*time.Millisecond, testRate)

	samples := drain(t, env, 10000)
	require.Len(t, samples, testRate.N(d))

	assert.Equal(t, 0.0, samples[0][0], "attack starts silent")
	assert.Equal(t, 1.0, samples[len(samples)/2][0], "sustain at full level")
	assert.Less(t, samples[len(samples)-1][0], 0.05, "release ends near silence")
}

func TestEffectsAreFiniteAndBounded(t *testing.T) {
	cfg := config.Default().Audio
	limit := testRate.N(2 * time.Second)

	hit := drain(t, HitSound(cfg, testRate), limit)
	assert.Len(t, hit, len(hitNotes)*testRate.N(hitNoteDuration))
	assertBounded(t, hit)

	over := drain(t, GameOverSound(cfg, testRate), limit)
	assert.Len(t, over, len(gameOverNotes)*testRate.N(gameOverNoteDuration))
	assertBounded(t, over)
}

func TestZeroVolumeIsSilent(t *testing.T) {
	cfg := config.Default().Audio
	cfg.HitVolume = 0

	for _, s := range drain(t, HitSound(cfg, testRate), 10000) {
		assert.Equal(t, [2]float64{0, 0}, s)
	}
}

func TestMusicLoopKeepsPlaying(t *testing.T) {
	music := MusicLoop(config.Default().Audio, testRate)

	// Three full passes over the tune.
	total := 3 * len(musicNotes) * testRate.N(musicNoteDuration)
	buf := make([][2]float64, 512)
	streamed := 0
	for streamed < total {
		n, ok := music.Stream(buf)
		require.True(t, ok)
		require.Positive(t, n)
		streamed += n
	}
}

func TestPlayerWithoutDevice(t *testing.T) {
	p := NewPlayer(config.Default().Audio)

	// Nothing was initialized, so these must be silent no-ops.
	p.PlayHit()
	p.PlayGameOver()
	p.StartMusic()
	p.StopMusic()
	p.Close()

	assert.Equal(t, 0, p.mixer.Len())
}

func TestPlayerMixesSounds(t *testing.T) {
	p := NewPlayer(config.Default().Audio)
	p.lock, p.unlock = func() {}, func() {}
	p.initialized = true

	p.PlayHit()
	p.PlayGameOver()
	assert.Equal(t, 2, p.mixer.Len())

	p.StartMusic()
	require.NotNil(t, p.music)
	assert.Equal(t, 3, p.mixer.Len())

	p.StartMusic()
	assert.Equal(t, 3, p.mixer.Len(), "music is only added once")

	p.StopMusic()
	assert.True(t, p.music.Paused)
	p.StartMusic()
	assert.False(t, p.music.Paused)
}

func TestPlayerMusicDisabled(t *testing.T) {
	cfg := config.Default().Audio
	cfg.Music = false
	p := NewPlayer(cfg)
	p.lock, p.unlock = func() {}, func() {}
	p.initialized = true

	p.StartMusic()
	assert.Nil(t, p.music)
	assert.Equal(t, 0, p.mixer.Len())
}

func TestOpenDisabled(t *testing.T) {
	cfg := config.Default().Audio
	cfg.Enabled = false

	snd, closeFn := Open(cfg, nil)
	require.NotNil(t, snd)
	snd.PlayHit()
	snd.PlayGameOver()
	closeFn()
}
