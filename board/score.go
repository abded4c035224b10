package board

import "puyoterm/types"

var chainBonuses = [...]int{
	0, 8, 16, 32, 64, 96, 128, 160,
	192, 224, 256, 288, 320, 352, 384, 416, 448, 480, 512,
}

var colorBonuses = [...]int{0, 0, 3, 6, 12, 24}

// ChainBonus returns the bonus for a 1-indexed chain depth.
func ChainBonus(depth int) int {
	switch {
	case depth <= 0:
		return 0
	case depth > len(chainBonuses):
		return chainBonuses[len(chainBonuses)-1]
	default:
		return chainBonuses[depth-1]
	}
}

// LinkBonus returns the bonus for one erased group of the given size.
func LinkBonus(size int) int {
	switch {
	case size < 5:
		return 0
	case size <= 10:
		return size - 3
	default:
		return 10
	}
}

// ColorBonus returns the bonus for the number of distinct colors erased in a
// pass. Counts past the table yield 0.
func ColorBonus(colors int) int {
	if colors < 0 || colors >= len(colorBonuses) {
		return 0
	}
	return colorBonuses[colors]
}

// Points returns the score earned by one pass.
func Points(info types.ChainInfo) int {
	bonus := ChainBonus(info.ChainCount) + ColorBonus(info.Colors.Len())
	for _, size := range info.GroupSizes {
		bonus += LinkBonus(size)
	}
	if bonus == 0 {
		bonus = 1
	}
	return info.TotalErased * bonus * 10
}

// AddScore adds the points for info to the running score and returns them.
func (b *Board) AddScore(info types.ChainInfo) int {
	p := Points(info)
	b.score += p
	return p
}
