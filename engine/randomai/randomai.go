// Package randomai implements an AI that picks uniformly among legal moves.
package randomai

import (
	"math/rand"
	"time"

	"puyoterm/engine"
	"puyoterm/types"
)

// AI draws a uniformly random legal move.
type AI struct {
	rng *rand.Rand
}

// New returns a random AI. A zero seed seeds from the clock.
func New(seed int64) *AI {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &AI{rng: rand.New(rand.NewSource(seed))}
}

func (a *AI) Name() string { return "RANDOM AI" }

// Decide returns a random legal move, or engine.ErrNoLegalPlacement if there
// is none.
func (a *AI) Decide(ctx engine.Context) (types.Move, error) {
	moves := engine.ValidMoves(ctx.Board)
	if len(moves) == 0 {
		return types.Move{}, engine.ErrNoLegalPlacement
	}
	return moves[a.rng.Intn(len(moves))], nil
}
