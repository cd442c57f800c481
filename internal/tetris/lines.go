package tetris

// ClearThreshold is the number of occupied cells that makes a row clear.
// It is one short of a full row, so a row with a single gap still clears.
const ClearThreshold = 7

// ClearLines removes qualifying rows one at a time, always taking the topmost
// one first, and returns how many were removed. Rows above a cleared row
// shift down by one and row 0 becomes empty.
func ClearLines(g *Grid) int {
	cleared := 0
	for {
		row := firstClearable(g)
		if row < 0 {
			return cleared
		}
		collapse(g, row)
		cleared++
	}
}

// firstClearable returns the index of the topmost qualifying row, or -1.
func firstClearable(g *Grid) int {
	for y := range g {
		if g.RowCount(y) >= ClearThreshold {
			return y
		}
	}
	return -1
}

// collapse overwrites row r with the row above it, repeating up to the top.
func collapse(g *Grid, r int) {
	for y := r - 1; y >= 0; y-- {
		g[y+1] = g[y]
	}
	g[0] = [Width]bool{}
}
