package engine

import (
	"testing"

	"puyoterm/board"
	"puyoterm/types"
)

// Compile-time check that the board satisfies the view.
var _ View = (*board.Board)(nil)

func TestValidMovesEmptyField(t *testing.T) {
	moves := ValidMoves(board.NewDefault())
	if len(moves) != 22 {
		t.Fatalf("got %d moves, want 22", len(moves))
	}
	want := []types.Move{
		{TargetX: 0, Rotation: types.Up},
		{TargetX: 0, Rotation: types.Right},
		{TargetX: 0, Rotation: types.Down},
		{TargetX: 1, Rotation: types.Up},
	}
	for i, m := range want {
		if moves[i] != m {
			t.Errorf("moves[%d] = %v, want %v", i, moves[i], m)
		}
	}
	last := moves[len(moves)-1]
	if last != (types.Move{TargetX: 5, Rotation: types.Left}) {
		t.Errorf("last move = %v, want column 5 left", last)
	}
}

func TestValidMovesOrderIsColumnMajor(t *testing.T) {
	moves := ValidMoves(board.New(10, 8))
	for i := 1; i < len(moves); i++ {
		a, b := moves[i-1], moves[i]
		if a.TargetX > b.TargetX || (a.TargetX == b.TargetX && a.Rotation >= b.Rotation) {
			t.Fatalf("moves out of order at %d: %v then %v", i, a, b)
		}
	}
	if len(moves) != 8*4-2 {
		t.Fatalf("got %d moves on an 8-wide field, want 30", len(moves))
	}
}

func TestValidMovesFullField(t *testing.T) {
	b := board.NewDefault()
	for x := 0; x < b.Width(); x++ {
		for y := 0; y < b.Height(); y++ {
			b.SetCell(x, y, types.Garbage)
		}
	}
	if moves := ValidMoves(b); len(moves) != 0 {
		t.Fatalf("got %d moves on a full field, want none", len(moves))
	}
}
