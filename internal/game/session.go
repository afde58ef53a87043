package game

import (
	"math/rand/v2"

	"github.com/vovakirdan/block-bash/internal/core"
)

// State is the session's top-level mode.
type State int

const (
	StatePlaying State = iota
	StateGameOver
)

// String returns the state name.
func (s State) String() string {
	switch s {
	case StatePlaying:
		return "Playing"
	case StateGameOver:
		return "GameOver"
	default:
		return "Unknown"
	}
}

// Sounds receives fire-and-forget sound cues from the session.
type Sounds interface {
	PlayHit()
	PlayGameOver()
}

// NopSounds is a Sounds that plays nothing.
type NopSounds struct{}

func (NopSounds) PlayHit()      {}
func (NopSounds) PlayGameOver() {}

// HighScores persists the best score. Implementations handle their own
// failures; the session never sees an error.
type HighScores interface {
	SaveHighScore(score int)
}

type nopHighScores struct{}

func (nopHighScores) SaveHighScore(int) {}

// Sprites holds the entity sizes in world units.
type Sprites struct {
	PaddleW, PaddleH float64
	BallW, BallH     float64
}

// DefaultSprites returns the sizes used when nothing is configured.
func DefaultSprites() Sprites {
	return Sprites{
		PaddleW: DefaultPaddleWidth,
		PaddleH: DefaultPaddleHeight,
		BallW:   DefaultBallSize,
		BallH:   DefaultBallSize,
	}
}

// Option configures a Session.
type Option func(*Session)

// WithSprites overrides the paddle and ball sizes.
func WithSprites(sp Sprites) Option {
	return func(s *Session) {
		s.sprites = sp
	}
}

// WithHighScore seeds the session with a previously persisted high score.
func WithHighScore(score int) Option {
	return func(s *Session) {
		s.highScore = max(score, 0)
	}
}

// WithSounds sets the audio collaborator.
func WithSounds(snd Sounds) Option {
	return func(s *Session) {
		if snd != nil {
			s.sounds = snd
		}
	}
}

// WithHighScores sets the persistence collaborator.
func WithHighScores(hs HighScores) Option {
	return func(s *Session) {
		if hs != nil {
			s.scores = hs
		}
	}
}

// Session runs one game of Block Bash. It is the only writer of score, level,
// high score and state, and is driven one tick at a time by a platform loop.
type Session struct {
	runtime core.RuntimeConfig
	sprites Sprites
	rng     *rand.Rand

	paddle *Paddle
	ball   *Ball
	blocks []*Block

	score     int
	level     int
	highScore int
	state     State
	tickCount uint64

	sounds Sounds
	scores HighScores
}

// New creates a session in the playing state.
func New(runtime core.RuntimeConfig, opts ...Option) *Session {
	s := &Session{
		runtime: runtime,
		sprites: DefaultSprites(),
		sounds:  NopSounds{},
		scores:  nopHighScores{},
	}
	for _, opt := range opts {
		opt(s)
	}
	s.rng = newRNG(runtime.Seed)
	s.paddle = NewPaddle(s.sprites.PaddleW, s.sprites.PaddleH)
	s.ball = NewBall(s.sprites.BallW, s.sprites.BallH)
	s.Restart()
	return s
}

// Restart begins a new game. The high score carries over.
func (s *Session) Restart() {
	s.score = 0
	s.level = 1
	s.blocks = GenerateGrid(InitialRows, GridCols, s.rng)
	s.ball.Reset()
	s.paddle.Reset()
	s.state = StatePlaying
}

// Step advances the session by one tick.
func (s *Session) Step(in core.InputFrame) core.StepResult {
	s.tickCount++

	if s.state == StateGameOver {
		s.scores.SaveHighScore(s.highScore)
		if in.Has(core.ActionRestart) {
			s.Restart()
		}
		return core.StepResult{State: s.State()}
	}

	if in.Has(core.ActionLeft) {
		s.paddle.MoveLeft()
	}
	if in.Has(core.ActionRight) {
		s.paddle.MoveRight()
	}
	s.ball.Advance()

	out := Collide(s.ball, s.paddle, s.blocks)
	// The floor is checked before blocks, so a block hit on the losing
	// tick scores but does not reach the high score.
	if out.ExitedBottom {
		s.endGame()
	}

	s.blocks = Compact(s.blocks)
	if out.BlockHit {
		s.score += PointsPerBlock
		s.sounds.PlayHit()
	}
	s.checkLevelUp()

	return core.StepResult{
		State: s.State(),
		Hit:   out.BlockHit,
		Lost:  out.ExitedBottom,
	}
}

// checkLevelUp advances the level when the score crosses a 100-point boundary.
func (s *Session) checkLevelUp() {
	expected := ExpectedLevel(s.score)
	if expected <= s.level {
		return
	}
	s.level = expected
	s.blocks = GenerateGrid(RowsForLevel(s.level), GridCols, s.rng)
	s.ball.Scale(LevelSpeedFactor)
}

// endGame moves the session to game over and records the high score.
func (s *Session) endGame() {
	s.state = StateGameOver
	s.sounds.PlayGameOver()
	s.highScore = max(s.highScore, s.score)
	s.scores.SaveHighScore(s.highScore)
}

// State returns the status summary used by platform loops.
func (s *Session) State() core.GameState {
	return core.GameState{
		Score:     s.score,
		HighScore: s.highScore,
		Level:     s.level,
		GameOver:  s.state == StateGameOver,
	}
}

// Mode returns the current state machine mode.
func (s *Session) Mode() State {
	return s.state
}

// Paddle returns the paddle. Callers must treat it as read-only.
func (s *Session) Paddle() *Paddle { return s.paddle }

// Ball returns the ball. Callers must treat it as read-only.
func (s *Session) Ball() *Ball { return s.ball }

// Blocks returns the active blocks. Callers must treat them as read-only.
func (s *Session) Blocks() []*Block { return s.blocks }
