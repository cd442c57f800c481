package tetris

// Point is a signed grid coordinate. Pieces may sit partly outside the grid
// while a move is being validated, so both axes can go negative.
type Point struct {
	X, Y int
}

// Piece is the currently falling block. Shape is a fixed 4x4 box; only the
// top-left Size x Size square is meaningful.
type Piece struct {
	Kind  Kind
	Shape [4][4]bool
	Size  int
	Pos   Point // grid position of Shape[0][0]
}

// Cells returns the grid coordinates of every occupied cell.
func (p Piece) Cells() []Point {
	cells := make([]Point, 0, 4)
	for row := 0; row < p.Size; row++ {
		for col := 0; col < p.Size; col++ {
			if p.Shape[row][col] {
				cells = append(cells, Point{X: p.Pos.X + col, Y: p.Pos.Y + row})
			}
		}
	}
	return cells
}

// CellCount returns the number of occupied cells.
func (p Piece) CellCount() int {
	n := 0
	for row := 0; row < p.Size; row++ {
		for col := 0; col < p.Size; col++ {
			if p.Shape[row][col] {
				n++
			}
		}
	}
	return n
}

// Translated returns a copy moved by (dx, dy).
func (p Piece) Translated(dx, dy int) Piece {
	p.Pos.X += dx
	p.Pos.Y += dy
	return p
}

// Rotated returns a copy turned a quarter clockwise inside its Size x Size
// square. Position and size are kept; no validation happens here.
func (p Piece) Rotated() Piece {
	out := p
	out.Shape = [4][4]bool{}
	n := p.Size
	for row := 0; row < n; row++ {
		for col := 0; col < n; col++ {
			out.Shape[col][n-1-row] = p.Shape[row][col]
		}
	}
	return out
}

// Fall returns the piece moved one row down. Gravity is never bounds
// checked: the orchestrator only calls it after ReachedBottom said no.
func Fall(p Piece) Piece {
	return p.Translated(0, 1)
}
