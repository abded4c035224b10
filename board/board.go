// Package board implements the puyo field: grid, active piece, next queue and score.
//
// Coordinates are (x, y) with row 0 at the top. Reads outside the grid return
// types.Wall and writes outside the grid are dropped, so edge handling in the
// movement and drop code needs no explicit bounds branches.
package board

import "puyoterm/types"

const (
	DefaultHeight = 14
	DefaultWidth  = 6

	SpawnX = 2
	SpawnY = -1
)

// PairSource supplies the pair appended to the next queue on Advance.
type PairSource interface {
	NextPair() types.Pair
}

// Board owns the grid, the active piece, the two queued pairs and the score.
// The zero value is not usable; call New or NewDefault.
type Board struct {
	height, width int
	grid          []types.Cell
	active        types.Piece
	next          [2]types.Pair
	score         int
	chainSize     int
}

// New creates an empty board of the given size.
func New(height, width int) *Board {
	return &Board{
		height: height,
		width:  width,
		grid:   make([]types.Cell, height*width),
		active: types.Piece{X: SpawnX, Y: SpawnY, Rot: types.Up},
	}
}

// NewDefault creates an empty 14x6 board.
func NewDefault() *Board {
	return New(DefaultHeight, DefaultWidth)
}

// Clone returns an independent deep copy.
func (b *Board) Clone() *Board {
	c := *b
	c.grid = make([]types.Cell, len(b.grid))
	copy(c.grid, b.grid)
	return &c
}

func (b *Board) Height() int { return b.height }
func (b *Board) Width() int  { return b.width }

func (b *Board) inBounds(x, y int) bool {
	return x >= 0 && x < b.width && y >= 0 && y < b.height
}

// Cell returns the cell at (x, y), or types.Wall outside the grid.
func (b *Board) Cell(x, y int) types.Cell {
	return b.cellIn(b.grid, x, y)
}

// SetCell stores c at (x, y). Out-of-bounds writes are ignored.
func (b *Board) SetCell(x, y int, c types.Cell) {
	b.setIn(b.grid, x, y, c)
}

func (b *Board) cellIn(grid []types.Cell, x, y int) types.Cell {
	if !b.inBounds(x, y) {
		return types.Wall
	}
	return grid[y*b.width+x]
}

func (b *Board) setIn(grid []types.Cell, x, y int, c types.Cell) {
	if b.inBounds(x, y) {
		grid[y*b.width+x] = c
	}
}

// SetNext replaces both queued pairs.
func (b *Board) SetNext(first, second types.Pair) {
	b.next = [2]types.Pair{first, second}
}

// Next returns the two queued pairs, soonest first.
func (b *Board) Next() [2]types.Pair {
	return b.next
}

// Advance spawns queue[0] as the active piece, shifts queue[1] forward and
// fills the freed slot from src.
func (b *Board) Advance(src PairSource) {
	b.Spawn(b.next[0].Center, b.next[0].Sub)
	b.next[0] = b.next[1]
	b.next[1] = src.NextPair()
}

// Score returns the accumulated score.
func (b *Board) Score() int {
	return b.score
}

// ChainSize returns the chain length shown for the turn in progress.
func (b *Board) ChainSize() int {
	return b.chainSize
}

// SetChainSize updates the displayed chain length.
func (b *Board) SetChainSize(n int) {
	b.chainSize = n
}
