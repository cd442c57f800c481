package tetris

// Field dimensions.
const (
	Width  = 8
	Height = 32
)

// Grid is the settled playing field. Row 0 is the top.
type Grid [Height][Width]bool

// At reports whether (x, y) is occupied. Out-of-range cells read as empty.
func (g *Grid) At(x, y int) bool {
	if x < 0 || x >= Width || y < 0 || y >= Height {
		return false
	}
	return g[y][x]
}

// RowCount returns the number of occupied cells in row y.
func (g *Grid) RowCount(y int) int {
	n := 0
	for _, filled := range g[y] {
		if filled {
			n++
		}
	}
	return n
}

// Count returns the number of occupied cells in the whole grid.
func (g *Grid) Count() int {
	n := 0
	for y := range g {
		n += g.RowCount(y)
	}
	return n
}

// Merge writes every occupied cell of p into the grid. Cells outside the grid
// are dropped.
func (g *Grid) Merge(p Piece) {
	for _, c := range p.Cells() {
		if c.X < 0 || c.X >= Width || c.Y < 0 || c.Y >= Height {
			continue
		}
		g[c.Y][c.X] = true
	}
}
