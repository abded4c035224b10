// Package types contains shared data structures for puyoterm.
package types

import (
	"fmt"
	"strings"
)

// Cell is the content of one field square.
// Wall is never stored in a grid; it is only returned for out-of-bounds reads.
type Cell uint8

const (
	Empty Cell = iota
	Wall
	Red
	Green
	Yellow
	Blue
	Purple
	Garbage
)

// BasicColors are the colors random pairs are drawn from.
var BasicColors = []Cell{Red, Green, Yellow, Blue}

// IsColor reports whether c can form an erasable group.
func (c Cell) IsColor() bool {
	return c >= Red && c <= Purple
}

// String returns the lowercase name of the cell.
func (c Cell) String() string {
	switch c {
	case Empty:
		return "empty"
	case Wall:
		return "wall"
	case Red:
		return "red"
	case Green:
		return "green"
	case Yellow:
		return "yellow"
	case Blue:
		return "blue"
	case Purple:
		return "purple"
	case Garbage:
		return "garbage"
	default:
		return "unknown"
	}
}

// ColorSet is a set of cells stored as a bit mask.
type ColorSet uint16

// Add returns the set with c included.
func (s ColorSet) Add(c Cell) ColorSet {
	return s | 1<<c
}

// Has reports whether c is in the set.
func (s ColorSet) Has(c Cell) bool {
	return s&(1<<c) != 0
}

// Len returns the number of distinct cells in the set.
func (s ColorSet) Len() int {
	n := 0
	for v := s; v != 0; v &= v - 1 {
		n++
	}
	return n
}

// Cells returns the members in ascending order.
func (s ColorSet) Cells() []Cell {
	var out []Cell
	for c := Empty; c <= Garbage; c++ {
		if s.Has(c) {
			out = append(out, c)
		}
	}
	return out
}

// Pair is a queued piece: center color and sub color.
type Pair struct {
	Center Cell
	Sub    Cell
}

// Point is a field coordinate, row 0 at the top.
type Point struct {
	X int
	Y int
}

// Rotation is the orientation of the sub cell around the center.
type Rotation uint8

const (
	Up Rotation = iota
	Right
	Down
	Left
)

// Offset returns the sub cell offset relative to the center.
func (r Rotation) Offset() (dx, dy int) {
	switch r & 3 {
	case Right:
		return 1, 0
	case Down:
		return 0, 1
	case Left:
		return -1, 0
	default:
		return 0, -1
	}
}

// Clockwise returns the next rotation state.
func (r Rotation) Clockwise() Rotation {
	return (r + 1) & 3
}

// CounterClockwise returns the previous rotation state.
func (r Rotation) CounterClockwise() Rotation {
	return (r + 3) & 3
}

// Horizontal reports whether the sub cell sits beside the center.
func (r Rotation) Horizontal() bool {
	return r&1 == 1
}

func (r Rotation) String() string {
	switch r & 3 {
	case Right:
		return "right"
	case Down:
		return "down"
	case Left:
		return "left"
	default:
		return "up"
	}
}

// Piece is the falling two-cell unit. The sub offset is derived from Rot.
type Piece struct {
	X      int
	Y      int
	Rot    Rotation
	Center Cell
	Sub    Cell
}

// Dx returns the horizontal sub offset.
func (p Piece) Dx() int {
	dx, _ := p.Rot.Offset()
	return dx
}

// Dy returns the vertical sub offset.
func (p Piece) Dy() int {
	_, dy := p.Rot.Offset()
	return dy
}

// SubPos returns the sub cell coordinate.
func (p Piece) SubPos() Point {
	dx, dy := p.Rot.Offset()
	return Point{X: p.X + dx, Y: p.Y + dy}
}

// Move is a placement decision for the current active piece.
type Move struct {
	TargetX  int
	Rotation Rotation
}

func (m Move) String() string {
	return fmt.Sprintf("<Move target_x=%d rotation=%d>", m.TargetX, m.Rotation)
}

// ChainInfo is the result of one elimination pass.
type ChainInfo struct {
	ChainCount  int
	GroupSizes  []int
	Colors      ColorSet
	TotalErased int
	Erased      bool
}

func (c ChainInfo) String() string {
	var colors, sizes strings.Builder
	for _, cell := range c.Colors.Cells() {
		fmt.Fprintf(&colors, "%d,", cell)
	}
	for _, g := range c.GroupSizes {
		fmt.Fprintf(&sizes, "%d,", g)
	}
	return fmt.Sprintf("<ChainInfo chain_count=%d group_sizes=[%s] colors={%s} total_erased=%d erased=%t>",
		c.ChainCount, sizes.String(), colors.String(), c.TotalErased, c.Erased)
}
