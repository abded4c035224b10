package board

import "puyoterm/types"

// EraseThreshold is the minimum group size that is erased.
const EraseThreshold = 4

var neighbors = [4][2]int{{1, 0}, {0, 1}, {-1, 0}, {0, -1}}

// EraseChains runs one elimination pass. The grid is scanned row by row from
// the top; every 4-connected same-color group of EraseThreshold or more cells
// is erased along with the garbage cells touching it. depth is the running
// chain depth; the returned ChainCount is depth+1 if anything was erased.
func (b *Board) EraseChains(depth int) types.ChainInfo {
	var info types.ChainInfo

	visited := make([]bool, len(b.grid))
	// swept[i] holds the group number that last collected garbage cell i, so a
	// garbage cell is listed once per group but stays available to later groups.
	swept := make([]int, len(b.grid))
	group := 0

	var stack, connected, garbage []int
	for y := 0; y < b.height; y++ {
		for x := 0; x < b.width; x++ {
			start := y*b.width + x
			target := b.grid[start]
			if visited[start] || target == types.Empty || target == types.Garbage {
				continue
			}

			group++
			connected, garbage = connected[:0], garbage[:0]
			stack = append(stack[:0], start)
			visited[start] = true

			for len(stack) > 0 {
				i := stack[len(stack)-1]
				stack = stack[:len(stack)-1]
				connected = append(connected, i)
				cx, cy := i%b.width, i/b.width

				for _, d := range neighbors {
					nx, ny := cx+d[0], cy+d[1]
					if !b.inBounds(nx, ny) {
						continue
					}
					n := ny*b.width + nx
					switch b.grid[n] {
					case target:
						if !visited[n] {
							visited[n] = true
							stack = append(stack, n)
						}
					case types.Garbage:
						if swept[n] != group {
							swept[n] = group
							garbage = append(garbage, n)
						}
					}
				}
			}

			if len(connected) < EraseThreshold {
				continue
			}
			for _, i := range connected {
				b.grid[i] = types.Empty
			}
			for _, i := range garbage {
				b.grid[i] = types.Empty
			}
			info.GroupSizes = append(info.GroupSizes, len(connected))
			info.Colors = info.Colors.Add(target)
			info.TotalErased += len(connected)
			info.Erased = true
		}
	}

	info.ChainCount = depth
	if info.Erased {
		info.ChainCount++
	}
	return info
}

// ApplyGravity compacts every column downward, keeping the vertical order of
// its cells and leaving the vacated cells empty.
func (b *Board) ApplyGravity() {
	for x := 0; x < b.width; x++ {
		write := b.height - 1
		for y := b.height - 1; y >= 0; y-- {
			c := b.grid[y*b.width+x]
			if c == types.Empty {
				continue
			}
			if write != y {
				b.grid[write*b.width+x] = c
				b.grid[y*b.width+x] = types.Empty
			}
			write--
		}
	}
}
