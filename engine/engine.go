// Package engine defines the interface for move-planning AIs.
package engine

import (
	"errors"

	"puyoterm/board"
	"puyoterm/types"
)

// ErrNoLegalPlacement is returned by Decide when the incoming piece fits
// nowhere on the field. Drivers treat it as the end of the game.
var ErrNoLegalPlacement = errors.New("engine: no legal placement")

// View is the read-only board an AI is allowed to see.
type View interface {
	Height() int
	Width() int
	Cell(x, y int) types.Cell
	Heights() []int

	// Active returns the piece about to be placed.
	Active() types.Piece

	// Next returns the two queued pairs, soonest first.
	Next() [2]types.Pair

	Score() int

	// CanPlace reports whether the active piece may be introduced at
	// column x with rotation rot.
	CanPlace(x int, rot types.Rotation) bool

	// Clone returns a private deep copy for simulation.
	Clone() *board.Board
}

// Context is what the driver hands to an AI each turn.
type Context struct {
	Board View
}

// AI decides where the active piece goes.
type AI interface {
	// Decide returns the move for the active piece of ctx.Board.
	// The board is never mutated.
	Decide(ctx Context) (types.Move, error)

	// Name returns the label shown in mode selection.
	Name() string
}

// Rotations lists every rotation in enumeration order.
var Rotations = [...]types.Rotation{types.Up, types.Right, types.Down, types.Left}

// ValidMoves returns every placement the legality oracle accepts, column by
// column and rotation within column.
func ValidMoves(v View) []types.Move {
	moves := make([]types.Move, 0, v.Width()*len(Rotations))
	for x := 0; x < v.Width(); x++ {
		for _, rot := range Rotations {
			if v.CanPlace(x, rot) {
				moves = append(moves, types.Move{TargetX: x, Rotation: rot})
			}
		}
	}
	return moves
}
