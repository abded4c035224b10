package board

import "puyoterm/types"

const (
	// DeathHeight is the tallest column a piece may still be introduced into
	// on a field of standard height or taller.
	DeathHeight = 12

	standardWidth = 6
)

// reachChecks lists, per column, the columns a piece crosses on its way from
// the spawn column. Index 2 is the spawn column itself.
var reachChecks = [standardWidth][]int{
	{1, 0},
	{1},
	{},
	{3},
	{3, 4},
	{3, 4, 5},
}

// climbChecks lists, per blocking column at height 12, the columns scanned
// for a height-11 step the piece can climb over.
var climbChecks = [standardWidth][]int{
	{1, 2, 3, 4, 5},
	{2, 3, 4, 5},
	{},
	{2, 1, 0},
	{3, 2, 1, 0},
	{4, 3, 2, 1, 0},
}

// Heights returns the stack height of every column, counted from the floor.
func (b *Board) Heights() []int {
	heights := make([]int, b.width)
	for x := 0; x < b.width; x++ {
		for y := 0; y < b.height; y++ {
			if b.grid[y*b.width+x] != types.Empty {
				heights[x] = b.height - y
				break
			}
		}
	}
	return heights
}

// DeathLine returns the death height of this board. Fields shorter than the
// standard 14 rows lower it so that two rows stay free above it.
func (b *Board) DeathLine() int {
	if d := b.height - 2; d < DeathHeight {
		return d
	}
	return DeathHeight
}

// CanPlace reports whether the active piece may be introduced at column x
// with rotation rot.
func (b *Board) CanPlace(x int, rot types.Rotation) bool {
	return canPlace(b.Heights(), x, rot, b.DeathLine())
}

// CanPlace decides from column heights alone whether a piece may be
// introduced at column x with rotation rot. It applies the death-line rule
// and, on a standard six-column field, rejects placements whose path from the
// spawn column is blocked by a 12-high stack that cannot be climbed via an
// 11-high neighbour.
func CanPlace(heights []int, x int, rot types.Rotation) bool {
	return canPlace(heights, x, rot, DeathHeight)
}

func canPlace(heights []int, x int, rot types.Rotation, death int) bool {
	width := len(heights)
	if x < 0 || x >= width {
		return false
	}
	rot &= 3

	h := heights[x]
	if rot == types.Down {
		h++
	}
	if h > death {
		return false
	}

	dx, _ := rot.Offset()
	childX := x + dx
	if childX < 0 || childX >= width {
		return false
	}
	if width != standardWidth {
		return true
	}

	checkX := x
	if rot == types.Right && x >= SpawnX {
		checkX++
	} else if rot == types.Left && x <= SpawnX {
		checkX--
	}

	blocker := -1
	for _, c := range reachChecks[checkX] {
		if heights[c] > death {
			return false
		}
		if heights[c] == death && blocker == -1 {
			blocker = c
		}
	}
	if blocker == -1 {
		return true
	}
	if heights[1] > death-1 && heights[3] > death-1 {
		return true
	}
	for _, c := range climbChecks[blocker] {
		if heights[c] > death-1 {
			break
		}
		if heights[c] == death-1 {
			return true
		}
	}
	return false
}
