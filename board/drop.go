package board

import "puyoterm/types"

// landing returns the row a cell dropped into column x comes to rest in, and
// whether that row is free. The scan always starts from row 0; it stops at
// the first occupied cell below, and the floor reads as types.Wall.
func (b *Board) landing(grid []types.Cell, x int) (int, bool) {
	for y := 0; ; y++ {
		if b.cellIn(grid, x, y+1) != types.Empty {
			return y, b.cellIn(grid, x, y) == types.Empty
		}
	}
}

// settle drops both cells of the active piece into grid. When the sub hangs
// below the center it lands first, otherwise the center does; the second cell
// lands on top of the first. Either both cells are written or neither is.
func (b *Board) settle(grid []types.Cell) (center, sub types.Point, ok bool) {
	p := b.active
	sp := p.SubPos()

	type faller struct {
		x    int
		cell types.Cell
		pos  *types.Point
	}
	first := faller{p.X, p.Center, &center}
	second := faller{sp.X, p.Sub, &sub}
	if p.Rot == types.Down {
		first, second = second, first
	}

	y1, ok1 := b.landing(grid, first.x)
	*first.pos = types.Point{X: first.x, Y: y1}
	if ok1 {
		b.setIn(grid, first.x, y1, first.cell)
	}

	y2, ok2 := b.landing(grid, second.x)
	*second.pos = types.Point{X: second.x, Y: y2}
	if !ok1 || !ok2 {
		if ok1 {
			b.setIn(grid, first.x, y1, types.Empty)
		}
		return center, sub, false
	}
	b.setIn(grid, second.x, y2, second.cell)
	return center, sub, true
}

// Drop lands the active piece in the grid. It reports false, leaving the grid
// untouched, when either cell has no free row to land in.
func (b *Board) Drop() bool {
	_, _, ok := b.settle(b.grid)
	return ok
}

// Ghost returns where Drop would put the center and sub cells without
// modifying the board.
func (b *Board) Ghost() (center, sub types.Point) {
	scratch := make([]types.Cell, len(b.grid))
	copy(scratch, b.grid)
	center, sub, _ = b.settle(scratch)
	return center, sub
}
