package board_test

import (
	"reflect"
	"testing"

	"puyoterm/notation"
	"puyoterm/types"
)

func TestEraseSingleVerticalGroup(t *testing.T) {
	b := parse(t, `
R.....
R.....
R.....
R.....
`)
	info := b.EraseChains(0)
	if !info.Erased || info.ChainCount != 1 {
		t.Fatalf("got %v, want an erasing pass at depth 1", info)
	}
	if info.TotalErased != 4 || !reflect.DeepEqual(info.GroupSizes, []int{4}) {
		t.Fatalf("got %v, want one group of 4", info)
	}
	if info.Colors.Len() != 1 || !info.Colors.Has(types.Red) {
		t.Fatalf("colors = %v, want {red}", info.Colors.Cells())
	}
	if got := b.AddScore(info); got != 40 {
		t.Fatalf("points = %d, want 40", got)
	}
	if b.Score() != 40 {
		t.Fatalf("score = %d, want 40", b.Score())
	}
	for y := 10; y < 14; y++ {
		if b.Cell(0, y) != types.Empty {
			t.Fatalf("cell (0, %d) not erased", y)
		}
	}
}

func TestEraseTwoGroupsOnePass(t *testing.T) {
	b := parse(t, `
R.....
R.....
RG....
RGGGG.
`)
	info := b.EraseChains(0)
	if info.ChainCount != 1 || info.TotalErased != 9 {
		t.Fatalf("got %v, want depth 1 with 9 erased", info)
	}
	if !reflect.DeepEqual(info.GroupSizes, []int{4, 5}) {
		t.Fatalf("group sizes = %v, want [4 5] in scan order", info.GroupSizes)
	}
	if info.Colors.Len() != 2 {
		t.Fatalf("colors = %v, want two", info.Colors.Cells())
	}
	if got := b.AddScore(info); got != 450 {
		t.Fatalf("points = %d, want 450", got)
	}
}

func TestEraseDuplicateColorsCollapse(t *testing.T) {
	b := parse(t, `
RRRR..
......
RRRR..
`)
	info := b.EraseChains(2)
	if info.ChainCount != 3 {
		t.Fatalf("chain count = %d, want 3", info.ChainCount)
	}
	if len(info.GroupSizes) != 2 || info.Colors.Len() != 1 {
		t.Fatalf("got %v, want two groups of one color", info)
	}
}

func TestEraseNothingLeavesGridUntouched(t *testing.T) {
	b := parse(t, `
RGB...
RGB...
RGBY..
GROYYP
`)
	before := notation.Format(b)
	info := b.EraseChains(3)
	if info.Erased {
		t.Fatalf("got %v, want no erase", info)
	}
	if info.ChainCount != 3 || info.TotalErased != 0 || len(info.GroupSizes) != 0 {
		t.Fatalf("got %v, want depth unchanged and nothing counted", info)
	}
	if after := notation.Format(b); after != before {
		t.Fatalf("grid changed:\n%s", after)
	}
}

func TestGarbageIsSweptButNeverConnects(t *testing.T) {
	b := parse(t, `
O....O
R.....
R.....
R.....
RO...O
`)
	info := b.EraseChains(0)
	if info.TotalErased != 4 {
		t.Fatalf("total erased = %d, want 4", info.TotalErased)
	}
	want := parse(t, `
.....O
......
......
......
.....O
`)
	if got := notation.Format(b); got != notation.Format(want) {
		t.Fatalf("got\n%s\nwant\n%s", got, notation.Format(want))
	}

	b = parse(t, `
RROROR
`)
	if info := b.EraseChains(0); info.Erased {
		t.Fatalf("garbage joined groups across it: %v", info)
	}
}

func TestGarbageSharedBetweenGroups(t *testing.T) {
	b := parse(t, `
GG....
GGOBBB
...B..
`)
	info := b.EraseChains(0)
	if info.TotalErased != 8 {
		t.Fatalf("total erased = %d, want 8", info.TotalErased)
	}
	if got := b.Cell(2, 12); got != types.Empty {
		t.Fatalf("shared garbage = %v, want swept", got)
	}
}

func TestGarbageSweptByLaterGroup(t *testing.T) {
	b := parse(t, `
.GOBBB
...B..
`)
	info := b.EraseChains(0)
	if info.TotalErased != 4 {
		t.Fatalf("total erased = %d, want 4", info.TotalErased)
	}
	if got := b.Cell(2, 12); got != types.Empty {
		t.Fatalf("garbage next to the blue group = %v, want swept", got)
	}
	if got := b.Cell(1, 12); got != types.Green {
		t.Fatalf("lone green = %v, want untouched", got)
	}
}

func TestGroupsBelowThresholdSurvive(t *testing.T) {
	b := parse(t, `
.Y....
RYY...
RRRB..
`)
	b.EraseChains(0)
	want := parse(t, `
.Y....
.YY...
...B..
`)
	if got := notation.Format(b); got != notation.Format(want) {
		t.Fatalf("got\n%s\nwant\n%s", got, notation.Format(want))
	}
}

func TestApplyGravity(t *testing.T) {
	b := parse(t, `
R..B..
......
G..O..
......
`)
	b.ApplyGravity()
	want := parse(t, `
R..B..
G..O..
`)
	if got := notation.Format(b); got != notation.Format(want) {
		t.Fatalf("got\n%s\nwant\n%s", got, notation.Format(want))
	}

	once := notation.Format(b)
	b.ApplyGravity()
	if twice := notation.Format(b); twice != once {
		t.Fatalf("gravity is not idempotent:\n%s", twice)
	}
}

func TestApplyGravityMovesTopRow(t *testing.T) {
	b := parse(t, "")
	b.SetCell(4, 0, types.Purple)
	b.ApplyGravity()
	if b.Cell(4, 0) != types.Empty || b.Cell(4, 13) != types.Purple {
		t.Fatal("cell in row 0 did not fall to the floor")
	}
}

func TestChainAfterGravity(t *testing.T) {
	b := parse(t, `
B.....
R.....
RB....
RB....
RB....
`)
	depth := 0
	total := 0
	for {
		info := b.EraseChains(depth)
		if !info.Erased {
			break
		}
		depth = info.ChainCount
		total += b.AddScore(info)
		b.ApplyGravity()
	}
	// Pass 1 erases red (40); the top blue falls beside the three blues and
	// pass 2 erases four blues at depth 2: 4 * 8 * 10 = 320.
	if depth != 2 {
		t.Fatalf("chain depth = %d, want 2", depth)
	}
	if total != 360 || b.Score() != 360 {
		t.Fatalf("score = %d (total %d), want 360", b.Score(), total)
	}
}
