package board_test

import (
	"testing"

	"puyoterm/board"
	"puyoterm/notation"
	"puyoterm/types"
)

func TestDropOrientations(t *testing.T) {
	tests := []struct {
		name       string
		x          int
		rot        types.Rotation
		wantCenter types.Point
		wantSub    types.Point
	}{
		{"sub up", 2, types.Up, types.Point{X: 2, Y: 13}, types.Point{X: 2, Y: 12}},
		{"sub down", 2, types.Down, types.Point{X: 2, Y: 12}, types.Point{X: 2, Y: 13}},
		{"sub right", 2, types.Right, types.Point{X: 2, Y: 13}, types.Point{X: 3, Y: 13}},
		{"sub left", 2, types.Left, types.Point{X: 2, Y: 13}, types.Point{X: 1, Y: 13}},
	}
	for _, tt := range tests {
		b := board.NewDefault()
		b.SetActive(types.Red, types.Green, tt.x, 0, tt.rot)
		if !b.Drop() {
			t.Errorf("%s: Drop() = false", tt.name)
			continue
		}
		if got := b.Cell(tt.wantCenter.X, tt.wantCenter.Y); got != types.Red {
			t.Errorf("%s: center cell at %+v = %v, want red", tt.name, tt.wantCenter, got)
		}
		if got := b.Cell(tt.wantSub.X, tt.wantSub.Y); got != types.Green {
			t.Errorf("%s: sub cell at %+v = %v, want green", tt.name, tt.wantSub, got)
		}
	}
}

func TestDropOnUnevenStack(t *testing.T) {
	b := parse(t, `
...B..
...B..
`)
	b.SetActive(types.Red, types.Green, 2, 0, types.Right)
	if !b.Drop() {
		t.Fatal("Drop() = false")
	}
	want := parse(t, `
...G..
...B..
..RB..
`)
	if got := notation.Format(b); got != notation.Format(want) {
		t.Fatalf("got\n%s\nwant\n%s", got, notation.Format(want))
	}
}

func fillColumn(b *board.Board, x int) {
	for y := 0; y < b.Height(); y++ {
		c := types.Red
		if y%2 == 1 {
			c = types.Blue
		}
		b.SetCell(x, y, c)
	}
}

func TestDropIntoFullColumnIsRolledBack(t *testing.T) {
	tests := []struct {
		name string
		full int
		x    int
		rot  types.Rotation
	}{
		{"center column full", 2, 2, types.Up},
		{"sub column full, center lands first", 3, 2, types.Right},
		{"center column full, sub lands first", 2, 2, types.Down},
		{"sub column full to the left", 1, 2, types.Left},
	}
	for _, tt := range tests {
		b := board.NewDefault()
		fillColumn(b, tt.full)
		before := notation.Format(b)
		b.SetActive(types.Yellow, types.Green, tt.x, 0, tt.rot)
		if b.Drop() {
			t.Errorf("%s: Drop() = true, want false", tt.name)
		}
		if after := notation.Format(b); after != before {
			t.Errorf("%s: grid changed after aborted drop:\n%s", tt.name, after)
		}
	}
}

func TestGhostMatchesDrop(t *testing.T) {
	b := parse(t, `
..G...
..RB..
.RRB..
`)
	for _, rot := range []types.Rotation{types.Up, types.Right, types.Down, types.Left} {
		c := b.Clone()
		c.SetActive(types.Yellow, types.Purple, 2, 0, rot)
		before := notation.Format(c)
		center, sub := c.Ghost()
		if after := notation.Format(c); after != before {
			t.Fatalf("%v: Ghost modified the grid", rot)
		}
		if !c.Drop() {
			t.Fatalf("%v: Drop() = false", rot)
		}
		if got := c.Cell(center.X, center.Y); got != types.Yellow {
			t.Errorf("%v: ghost center %+v holds %v after drop", rot, center, got)
		}
		if got := c.Cell(sub.X, sub.Y); got != types.Purple {
			t.Errorf("%v: ghost sub %+v holds %v after drop", rot, sub, got)
		}
	}
}
