package game

import (
	"math/rand"
	"time"

	"puyoterm/types"
)

// RandomSource deals pairs drawn from the basic colors.
type RandomSource struct {
	rng *rand.Rand
}

// NewRandomSource returns a seeded pair source. A zero seed seeds from the
// clock.
func NewRandomSource(seed int64) *RandomSource {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &RandomSource{rng: rand.New(rand.NewSource(seed))}
}

// NextPair implements board.PairSource.
func (s *RandomSource) NextPair() types.Pair {
	return types.Pair{
		Center: types.BasicColors[s.rng.Intn(len(types.BasicColors))],
		Sub:    types.BasicColors[s.rng.Intn(len(types.BasicColors))],
	}
}
