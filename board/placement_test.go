package board_test

import (
	"reflect"
	"testing"

	"puyoterm/board"
	"puyoterm/types"
)

func TestCanPlaceEmptyField(t *testing.T) {
	b := board.NewDefault()
	legal := 0
	for x := 0; x < b.Width(); x++ {
		for r := types.Up; r <= types.Left; r++ {
			if b.CanPlace(x, r) {
				legal++
			}
		}
	}
	if legal != 22 {
		t.Fatalf("legal placements = %d, want 22", legal)
	}
	if b.CanPlace(0, types.Left) || b.CanPlace(5, types.Right) {
		t.Fatal("placement with the sub outside the field was accepted")
	}
}

func TestCanPlaceHeights(t *testing.T) {
	tests := []struct {
		name    string
		heights []int
		x       int
		rot     types.Rotation
		want    bool
	}{
		{"spawn column at the death line", []int{0, 0, 12, 0, 0, 0}, 2, types.Up, true},
		{"sub below center adds one", []int{0, 0, 12, 0, 0, 0}, 2, types.Down, false},
		{"column over the death line", []int{0, 0, 0, 0, 13, 0}, 4, types.Up, false},
		{"path crosses a 13 stack", []int{0, 13, 0, 0, 0, 0}, 0, types.Up, false},
		{"12 stack with nothing to climb", []int{0, 12, 0, 0, 0, 0}, 0, types.Up, false},
		{"12 stack climbed via an 11 step", []int{0, 12, 11, 0, 0, 0}, 0, types.Up, true},
		{"both spawn neighbours above 11", []int{0, 12, 0, 12, 0, 0}, 0, types.Up, true},
		{"right side climbs leftwards", []int{0, 0, 0, 0, 12, 0}, 5, types.Up, false},
		{"right side finds an 11 step", []int{0, 0, 0, 11, 12, 0}, 5, types.Up, true},
		{"horizontal right shifts the path", []int{0, 0, 0, 12, 0, 0}, 2, types.Right, false},
		{"vertical at spawn ignores neighbours", []int{0, 0, 0, 12, 0, 0}, 2, types.Up, true},
		{"horizontal left shifts the path", []int{0, 12, 0, 0, 0, 0}, 2, types.Left, false},
		{"column out of range", []int{0, 0, 0, 0, 0, 0}, 6, types.Up, false},
		{"other widths skip path checks", []int{0, 13, 0, 0, 0, 0, 0}, 0, types.Up, true},
		{"other widths keep the sub in bounds", []int{0, 0, 0, 0, 0, 0, 0}, 6, types.Right, false},
	}
	for _, tt := range tests {
		if got := board.CanPlace(tt.heights, tt.x, tt.rot); got != tt.want {
			t.Errorf("%s: CanPlace(%v, %d, %v) = %v, want %v", tt.name, tt.heights, tt.x, tt.rot, got, tt.want)
		}
	}
}

func TestHeights(t *testing.T) {
	b := parse(t, `
R.....
R...O.
R..BO.
`)
	b.SetCell(5, 0, types.Green)
	want := []int{3, 0, 0, 1, 2, 14}
	if got := b.Heights(); !reflect.DeepEqual(got, want) {
		t.Fatalf("Heights() = %v, want %v", got, want)
	}
}

func stackColumn(b *board.Board, x, height int) {
	for y := b.Height() - height; y < b.Height(); y++ {
		b.SetCell(x, y, types.Garbage)
	}
}

func TestDeathLineFollowsFieldHeight(t *testing.T) {
	tests := []struct {
		height int
		want   int
	}{
		{4, 2},
		{8, 6},
		{13, 11},
		{14, 12},
		{20, 12},
	}
	for _, tt := range tests {
		if got := board.New(tt.height, 6).DeathLine(); got != tt.want {
			t.Errorf("DeathLine() on %d rows = %d, want %d", tt.height, got, tt.want)
		}
	}
}

func TestCanPlaceShortField(t *testing.T) {
	b := board.New(8, 6)
	stackColumn(b, 2, 6)
	if !b.CanPlace(2, types.Up) {
		t.Fatal("spawn column at the death line was rejected")
	}
	stackColumn(b, 2, 7)
	if b.CanPlace(2, types.Up) {
		t.Fatal("spawn column above the death line of an 8-row field was accepted")
	}

	tall := board.NewDefault()
	stackColumn(tall, 2, 7)
	if !tall.CanPlace(2, types.Up) {
		t.Fatal("7-high spawn column rejected on a standard field")
	}
}
