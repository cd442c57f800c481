package tetris

// Fits reports whether every occupied cell of p lies inside the field and over
// an empty grid cell. Cells above the top edge are allowed so a piece can hang
// partly off screen.
func Fits(p Piece, g *Grid) bool {
	for _, c := range p.Cells() {
		if c.X < 0 || c.X >= Width || c.Y >= Height {
			return false
		}
		if c.Y >= 0 && g[c.Y][c.X] {
			return false
		}
	}
	return true
}

// ReachedBottom reports whether p cannot fall any further: moving it one row
// down would push a cell past the last row or onto a settled cell.
func ReachedBottom(p Piece, g *Grid) bool {
	for _, c := range p.Cells() {
		below := c.Y + 1
		if below >= Height {
			return true
		}
		if g.At(c.X, below) {
			return true
		}
	}
	return false
}

// clipsTop reports whether any cell of p sits in the two topmost rows.
func clipsTop(p Piece) bool {
	for _, c := range p.Cells() {
		if c.Y <= 1 {
			return true
		}
	}
	return false
}
