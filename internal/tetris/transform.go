package tetris

// Direction is the way the next drift step will try to go.
type Direction int

const (
	DirLeft Direction = iota
	DirRight
)

// Opposite returns the other direction.
func (d Direction) Opposite() Direction {
	if d == DirLeft {
		return DirRight
	}
	return DirLeft
}

// Delta returns the column offset of one step in this direction.
func (d Direction) Delta() int {
	if d == DirLeft {
		return -1
	}
	return 1
}

func (d Direction) String() string {
	if d == DirLeft {
		return "left"
	}
	return "right"
}

// Rotate turns p a quarter clockwise if the result fits, otherwise it returns
// p unchanged. There is no wall kick.
func Rotate(p Piece, g *Grid) Piece {
	rotated := p.Rotated()
	if !Fits(rotated, g) {
		return p
	}
	return rotated
}

// Drift advances the ping-pong motion by one step. The piece moves one column
// in dir; when that is blocked it bounces one column the other way and the
// direction flips. A piece wedged on both sides stays where it is.
func Drift(p Piece, dir Direction, g *Grid) (Piece, Direction) {
	moved := p.Translated(dir.Delta(), 0)
	if Fits(moved, g) {
		return moved, dir
	}

	dir = dir.Opposite()
	bounced := moved.Translated(2*dir.Delta(), 0)
	if Fits(bounced, g) {
		return bounced, dir
	}
	return p, dir
}
