// Package tetris implements the rules engine of a tiny falling-block game
// played on an 8x32 field. It has no dependencies on rendering, timing or
// input devices: callers drive it with Run (the periodic tick) and the two
// button handlers RotateBlock and MoveBlock.
package tetris

// Kind identifies one of the seven tetromino shapes.
type Kind int

// Shape kinds, in the order the spawner maps random draws onto them.
const (
	KindSquare Kind = iota
	KindL
	KindJ
	KindZ
	KindS
	KindT
	KindI
)

// KindCount is the number of shapes in the catalog.
const KindCount = 7

// String returns a short name for the kind.
func (k Kind) String() string {
	switch k {
	case KindSquare:
		return "O"
	case KindL:
		return "L"
	case KindJ:
		return "J"
	case KindZ:
		return "Z"
	case KindS:
		return "S"
	case KindT:
		return "T"
	case KindI:
		return "I"
	default:
		return "?"
	}
}

// shapeDef is a catalog entry. Rows are written top to bottom, '#' marks an
// occupied cell.
type shapeDef struct {
	rows  []string
	size  int
	spawn Point
}

// Pieces spawn horizontally centred on the 8 wide field; the I piece starts one
// row lower because its occupied row is the second one.
var catalog = [KindCount]shapeDef{
	KindSquare: {rows: []string{"##", "##"}, size: 2, spawn: Point{X: Width / 2, Y: 1}},
	KindL:      {rows: []string{"..#", "###"}, size: 3, spawn: Point{X: Width / 2, Y: 1}},
	KindJ:      {rows: []string{"#..", "###"}, size: 3, spawn: Point{X: Width / 2, Y: 1}},
	KindZ:      {rows: []string{"##.", ".##"}, size: 3, spawn: Point{X: Width / 2, Y: 1}},
	KindS:      {rows: []string{".##", "##."}, size: 3, spawn: Point{X: Width / 2, Y: 1}},
	KindT:      {rows: []string{".#.", "###"}, size: 3, spawn: Point{X: Width / 2, Y: 1}},
	KindI:      {rows: []string{"....", "####"}, size: 4, spawn: Point{X: Width / 2, Y: 2}},
}

// NewPiece builds a fresh piece of the given kind at its spawn position.
// Unknown kinds fall back to the I piece, matching the spawner's catch-all.
func NewPiece(k Kind) Piece {
	if k < 0 || k >= KindCount {
		k = KindI
	}
	def := catalog[k]

	p := Piece{
		Kind: k,
		Size: def.size,
		Pos:  def.spawn,
	}
	for row, line := range def.rows {
		for col, ch := range line {
			p.Shape[row][col] = ch == '#'
		}
	}
	return p
}
