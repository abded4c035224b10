// Package rulebase implements an exhaustive three-ply lookahead AI.
//
// Every legal placement of the active piece is expanded with every legal
// placement of the two queued pairs. Each ply drops the piece on a private
// copy of the board, applies gravity and resolves a single chain pass. The
// third ply's pass is scored by Evaluate, and the first-ply move leading to
// the best leaf is returned.
package rulebase

import (
	"math"

	"puyoterm/board"
	"puyoterm/engine"
	"puyoterm/types"
)

// Heuristic weights.
const (
	ChainWeight = 10000
	EraseWeight = 100
	GroupWeight = 10
)

// plyDepth is the chain depth each simulated pass starts from.
const plyDepth = 1

// AI searches three plies using the active piece and both queued pairs.
type AI struct{}

// New returns a rule-based AI.
func New() *AI {
	return &AI{}
}

func (a *AI) Name() string { return "INIT RULE BASE AI" }

// Decide returns the first-ply move of the best three-ply line.
func (a *AI) Decide(ctx engine.Context) (types.Move, error) {
	res, err := Search(ctx.Board)
	if err != nil {
		return types.Move{}, err
	}
	return res.Move, nil
}

// Result is the outcome of a search.
type Result struct {
	Move types.Move

	// Score is the best leaf value, or math.MinInt32 if no line reached
	// the third ply.
	Score int

	// Leaves is the number of third-ply boards evaluated.
	Leaves int
}

// Evaluate scores one resolved chain pass.
func Evaluate(info types.ChainInfo) int {
	score := 0
	if info.ChainCount > 1 {
		score += ChainWeight * info.ChainCount
	}
	score += EraseWeight * info.TotalErased
	for _, size := range info.GroupSizes {
		if size >= board.EraseThreshold {
			score += GroupWeight * size
		}
	}
	return score
}

// Search runs the full lookahead on v. Ties keep the earliest first-ply move
// in enumeration order. If no line reaches the third ply the first legal
// move is returned.
func Search(v engine.View) (Result, error) {
	moves := engine.ValidMoves(v)
	if len(moves) == 0 {
		return Result{}, engine.ErrNoLegalPlacement
	}
	active := v.Active()
	next := v.Next()
	first := types.Pair{Center: active.Center, Sub: active.Sub}

	res := Result{Move: moves[0], Score: math.MinInt32}
	root := v.Clone()
	for _, m1 := range moves {
		b1, _ := place(root, first, m1)
		for _, m2 := range engine.ValidMoves(b1) {
			b2, _ := place(b1, next[0], m2)
			for _, m3 := range engine.ValidMoves(b2) {
				_, info := place(b2, next[1], m3)
				res.Leaves++
				if s := Evaluate(info); s > res.Score {
					res.Score = s
					res.Move = m1
				}
			}
		}
	}
	return res, nil
}

// place returns a copy of b with p dropped at m and one chain pass resolved.
func place(b *board.Board, p types.Pair, m types.Move) (*board.Board, types.ChainInfo) {
	c := b.Clone()
	c.SetActive(p.Center, p.Sub, m.TargetX, 0, m.Rotation)
	c.Drop()
	c.ApplyGravity()
	return c, c.EraseChains(plyDepth)
}
