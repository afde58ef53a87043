package game

import "math/rand/v2"

// ExpectedLevel returns the level a score belongs to: one level per 100 points.
func ExpectedLevel(score int) int {
	return score/PointsPerLevel + 1
}

// RowsForLevel returns the number of block rows generated for a level.
func RowsForLevel(level int) int {
	return BaseRows + level
}

// GenerateGrid builds a fresh rows x cols grid in row-major order.
// Block (r, c) sits at (GridOriginX + c*BlockPitchX, GridOriginY + r*BlockPitchY).
// Variants are drawn from rng and only affect how a block looks.
func GenerateGrid(rows, cols int, rng *rand.Rand) []*Block {
	blocks := make([]*Block, 0, rows*cols)
	for r := range rows {
		for c := range cols {
			blocks = append(blocks, &Block{
				X:       float64(GridOriginX + c*BlockPitchX),
				Y:       float64(GridOriginY + r*BlockPitchY),
				Variant: rng.IntN(BlockVariants),
			})
		}
	}
	return blocks
}

// newRNG returns a deterministic generator for the given seed.
func newRNG(seed int64) *rand.Rand {
	s := uint64(seed) //#nosec G115 -- seed bits reinterpreted
	return rand.New(rand.NewPCG(s, s^0x9e3779b97f4a7c15))
}
