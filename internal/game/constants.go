// Package game implements Block Bash, a single-player breakout game.
//
// The simulation runs in a fixed 600x500 world. Each tick the session moves the
// paddle, advances the ball, resolves collisions in a fixed order and applies the
// scoring and level rules. Rendering, audio and persistence are collaborators that
// the session reaches only through the interfaces in this package.
package game

// World dimensions in logical units, shared with the render collaborators.
const (
	WindowWidth  = 600
	WindowHeight = 500
)

// Paddle rules.
const (
	PaddleStep   = 7
	PaddleStartX = WindowWidth/2 - 40
	PaddleStartY = WindowHeight - 40
)

// Ball rules.
const (
	BallStartX = WindowWidth / 2
	BallStartY = WindowHeight / 2
	InitialVX  = 3.0
	InitialVY  = -3.0
)

// Block grid layout.
const (
	BlockWidth    = 40
	BlockHeight   = 20
	BlockPitchX   = 45
	BlockPitchY   = 25
	GridOriginX   = 50
	GridOriginY   = 50
	GridCols      = 10
	BaseRows      = 3 // rows = BaseRows + level
	InitialRows   = BaseRows + 1
	BlockVariants = 5
)

// Scoring and progression.
const (
	PointsPerBlock   = 10
	PointsPerLevel   = 100
	LevelSpeedFactor = 1.1
)

// Default sprite sizes, used when no configuration overrides them.
const (
	DefaultPaddleWidth  = 80
	DefaultPaddleHeight = 20
	DefaultBallSize     = 12
)
