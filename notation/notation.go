// Package notation reads and writes plain-text field diagrams.
//
// A diagram is one line per row, top row first, one character per column:
//
//	.  empty
//	R  red      G  green    Y  yellow
//	B  blue     P  purple   O  garbage
//
// Diagrams with fewer lines than the field height fill the bottom rows, so a
// test fixture only spells out the part of the stack it cares about. Blank
// lines and surrounding whitespace are ignored.
package notation

import (
	"fmt"
	"strings"

	"puyoterm/board"
	"puyoterm/types"
)

// ParseError reports a malformed diagram.
type ParseError struct {
	Line int
	Msg  string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("notation: line %d: %s", e.Line, e.Msg)
}

// CellRune returns the diagram character for c.
func CellRune(c types.Cell) rune {
	switch c {
	case types.Red:
		return 'R'
	case types.Green:
		return 'G'
	case types.Yellow:
		return 'Y'
	case types.Blue:
		return 'B'
	case types.Purple:
		return 'P'
	case types.Garbage:
		return 'O'
	case types.Wall:
		return '#'
	default:
		return '.'
	}
}

// ParseCell returns the cell for a diagram character.
func ParseCell(r rune) (types.Cell, bool) {
	switch r {
	case '.':
		return types.Empty, true
	case 'R', 'r':
		return types.Red, true
	case 'G', 'g':
		return types.Green, true
	case 'Y', 'y':
		return types.Yellow, true
	case 'B', 'b':
		return types.Blue, true
	case 'P', 'p':
		return types.Purple, true
	case 'O', 'o':
		return types.Garbage, true
	default:
		return types.Empty, false
	}
}

// Parse builds a board of the given size from a diagram.
func Parse(diagram string, height, width int) (*board.Board, error) {
	var rows []string
	for _, line := range strings.Split(diagram, "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			rows = append(rows, line)
		}
	}
	if len(rows) > height {
		return nil, &ParseError{Line: 1, Msg: fmt.Sprintf("%d rows do not fit a field of height %d", len(rows), height)}
	}

	b := board.New(height, width)
	top := height - len(rows)
	for i, row := range rows {
		runes := []rune(row)
		if len(runes) != width {
			return nil, &ParseError{Line: i + 1, Msg: fmt.Sprintf("got %d columns, want %d", len(runes), width)}
		}
		for x, r := range runes {
			c, ok := ParseCell(r)
			if !ok {
				return nil, &ParseError{Line: i + 1, Msg: fmt.Sprintf("unknown cell %q", r)}
			}
			b.SetCell(x, top+i, c)
		}
	}
	return b, nil
}

// MustParse is like Parse but panics on error. Intended for fixtures.
func MustParse(diagram string, height, width int) *board.Board {
	b, err := Parse(diagram, height, width)
	if err != nil {
		panic(err)
	}
	return b
}

// Format renders every row of the board's grid.
func Format(b *board.Board) string {
	var sb strings.Builder
	for y := 0; y < b.Height(); y++ {
		for x := 0; x < b.Width(); x++ {
			sb.WriteRune(CellRune(b.Cell(x, y)))
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

// FormatPair renders a queued pair as center then sub, e.g. "RG".
func FormatPair(p types.Pair) string {
	return string([]rune{CellRune(p.Center), CellRune(p.Sub)})
}
