package tetris

import (
	"math/rand"
	"testing"
)

func TestCatalogSpawn(t *testing.T) {
	tests := []struct {
		kind  Kind
		size  int
		spawn Point
	}{
		{KindSquare, 2, Point{4, 1}},
		{KindL, 3, Point{4, 1}},
		{KindJ, 3, Point{4, 1}},
		{KindZ, 3, Point{4, 1}},
		{KindS, 3, Point{4, 1}},
		{KindT, 3, Point{4, 1}},
		{KindI, 4, Point{4, 2}},
	}

	for _, tc := range tests {
		t.Run(tc.kind.String(), func(t *testing.T) {
			p := NewPiece(tc.kind)
			if p.Size != tc.size {
				t.Errorf("Size = %d, expected %d", p.Size, tc.size)
			}
			if p.Pos != tc.spawn {
				t.Errorf("Pos = %v, expected %v", p.Pos, tc.spawn)
			}
			if p.CellCount() != 4 {
				t.Errorf("CellCount() = %d, expected 4", p.CellCount())
			}

			var empty Grid
			if !Fits(p, &empty) {
				t.Error("spawned piece should fit on an empty grid")
			}
			for _, c := range p.Cells() {
				if c.Y < 0 {
					t.Errorf("spawned cell %v is above the visible field", c)
				}
			}
		})
	}
}

func TestRotationPreservesCellCount(t *testing.T) {
	for k := Kind(0); k < KindCount; k++ {
		p := NewPiece(k)
		for i := 0; i < 4; i++ {
			rotated := p.Rotated()
			if rotated.CellCount() != p.CellCount() {
				t.Errorf("%s rotation %d: CellCount() = %d, expected %d", k, i, rotated.CellCount(), p.CellCount())
			}
			if rotated.Pos != p.Pos || rotated.Size != p.Size {
				t.Errorf("%s rotation %d changed position or size", k, i)
			}
			p = rotated
		}
	}
}

func TestRotationStaysInSubSquare(t *testing.T) {
	for k := Kind(0); k < KindCount; k++ {
		p := NewPiece(k)
		for i := 0; i < 4; i++ {
			p = p.Rotated()
			for row := 0; row < 4; row++ {
				for col := 0; col < 4; col++ {
					if (row >= p.Size || col >= p.Size) && p.Shape[row][col] {
						t.Fatalf("%s rotation %d: cell (%d,%d) outside %dx%d square", k, i, row, col, p.Size, p.Size)
					}
				}
			}
		}
	}
}

func TestRotateDirection(t *testing.T) {
	// T pointing up turns to point right.
	p := NewPiece(KindT)
	r := p.Rotated()

	want := [4][4]bool{
		{false, true, false, false},
		{false, true, true, false},
		{false, true, false, false},
	}
	if r.Shape != want {
		t.Errorf("Rotated T = %v, expected %v", r.Shape, want)
	}
}

func TestSquareRotatesBackAfterFourTurns(t *testing.T) {
	var g Grid
	p := NewPiece(KindSquare)
	original := p

	for i := 0; i < 4; i++ {
		p = Rotate(p, &g)
	}
	if p.Shape != original.Shape {
		t.Errorf("Square after four rotations = %v, expected %v", p.Shape, original.Shape)
	}
}

func TestEveryShapeRotatesBackAfterFourTurns(t *testing.T) {
	var g Grid
	for k := Kind(0); k < KindCount; k++ {
		p := NewPiece(k).Translated(-2, 10)
		original := p
		for i := 0; i < 4; i++ {
			p = Rotate(p, &g)
		}
		if p != original {
			t.Errorf("%s after four rotations = %+v, expected %+v", k, p, original)
		}
	}
}

func TestRotateRejectedIsIdentity(t *testing.T) {
	var g Grid
	p := NewPiece(KindI) // row of four at y=3, x=4..7
	// A vertical I would occupy column 6, rows 2..5.
	g[5][6] = true

	got := Rotate(p, &g)
	if got != p {
		t.Errorf("Rotate() = %+v, expected unchanged %+v", got, p)
	}
}

func TestFits(t *testing.T) {
	var g Grid
	g[20][3] = true

	tests := []struct {
		name     string
		piece    Piece
		expected bool
	}{
		{"spawn position", NewPiece(KindT), true},
		{"left wall", NewPiece(KindT).Translated(-5, 0), false},
		{"right wall", NewPiece(KindT).Translated(2, 0), false},
		{"touching right wall", NewPiece(KindT).Translated(1, 0), true},
		{"floor", NewPiece(KindT).Translated(0, 30), false},
		{"resting on floor", NewPiece(KindT).Translated(0, 29), true},
		{"above the top", NewPiece(KindT).Translated(0, -3), true},
		{"overlapping settled cell", NewPiece(KindSquare).Translated(-1, 19), false},
		{"next to settled cell", NewPiece(KindSquare).Translated(0, 19), true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := Fits(tc.piece, &g); got != tc.expected {
				t.Errorf("Fits() = %v, expected %v (cells %v)", got, tc.expected, tc.piece.Cells())
			}
		})
	}
}

func TestReachedBottom(t *testing.T) {
	var g Grid
	g[10][4] = true

	tests := []struct {
		name     string
		piece    Piece
		expected bool
	}{
		{"fresh spawn", NewPiece(KindSquare), false},
		{"on the floor", NewPiece(KindSquare).Translated(0, 29), true},
		{"one above floor", NewPiece(KindSquare).Translated(0, 28), false},
		{"on settled cell", NewPiece(KindSquare).Translated(0, 7), true},
		{"beside settled cell", NewPiece(KindSquare).Translated(1, 7), false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := ReachedBottom(tc.piece, &g); got != tc.expected {
				t.Errorf("ReachedBottom() = %v, expected %v", got, tc.expected)
			}
		})
	}
}

func TestDriftBouncesOffWalls(t *testing.T) {
	var g Grid
	p := NewPiece(KindSquare) // x=4..5
	dir := DirLeft

	wantX := []int{3, 2, 1, 0, 1, 2, 3, 4, 5, 6, 5}
	wantDir := []Direction{
		DirLeft, DirLeft, DirLeft, DirLeft,
		DirRight, DirRight, DirRight, DirRight, DirRight, DirRight,
		DirLeft,
	}

	for i := range wantX {
		p, dir = Drift(p, dir, &g)
		if p.Pos.X != wantX[i] || dir != wantDir[i] {
			t.Fatalf("step %d: X=%d dir=%s, expected X=%d dir=%s", i, p.Pos.X, dir, wantX[i], wantDir[i])
		}
	}
}

func TestDriftBouncesOffSettledCells(t *testing.T) {
	var g Grid
	g[1][3] = true
	p := NewPiece(KindSquare) // x=4..5, y=1..2

	p, dir := Drift(p, DirLeft, &g)
	if p.Pos.X != 5 || dir != DirRight {
		t.Errorf("Drift() = X %d dir %s, expected X 5 dir right", p.Pos.X, dir)
	}
}

func TestDriftWedged(t *testing.T) {
	var g Grid
	g[1][3] = true
	g[1][6] = true
	p := NewPiece(KindSquare)

	got, dir := Drift(p, DirLeft, &g)
	if got != p {
		t.Errorf("wedged piece moved to %v", got.Pos)
	}
	if dir != DirRight {
		t.Errorf("direction = %s, expected right", dir)
	}
}

func TestDriftContainment(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	var g Grid
	for k := Kind(0); k < KindCount; k++ {
		p := NewPiece(k)
		dir := DirLeft
		for i := 0; i < 200; i++ {
			if rng.Intn(3) == 0 {
				p = Rotate(p, &g)
			}
			p, dir = Drift(p, dir, &g)
			for _, c := range p.Cells() {
				if c.X < 0 || c.X >= Width {
					t.Fatalf("%s step %d: cell %v outside the field", k, i, c)
				}
			}
		}
	}
}

func TestClearLinesSevenOfEight(t *testing.T) {
	var g Grid
	for x := 0; x < 7; x++ {
		g[31][x] = true
	}
	g[30][2] = true

	if n := ClearLines(&g); n != 1 {
		t.Fatalf("ClearLines() = %d, expected 1", n)
	}
	if !g[31][2] || g.RowCount(31) != 1 {
		t.Errorf("row above the cleared row should have moved down, got %v", g[31])
	}
	if g.Count() != 1 {
		t.Errorf("Count() = %d, expected 1", g.Count())
	}
}

func TestClearLinesSixIsNotEnough(t *testing.T) {
	var g Grid
	for x := 0; x < 6; x++ {
		g[31][x] = true
	}
	if n := ClearLines(&g); n != 0 {
		t.Errorf("ClearLines() = %d, expected 0", n)
	}
	if g.RowCount(31) != 6 {
		t.Errorf("row should be untouched, got %d cells", g.RowCount(31))
	}
}

func TestClearLinesCompaction(t *testing.T) {
	var g Grid
	// Marker rows above and below the row being cleared.
	g[0][0] = true
	g[10][1] = true
	g[11][2] = true
	for x := 0; x < Width; x++ {
		g[12][x] = true
	}
	g[20][5] = true
	g[31][6] = true

	if n := ClearLines(&g); n != 1 {
		t.Fatalf("ClearLines() = %d, expected 1", n)
	}

	if g.RowCount(0) != 0 {
		t.Error("row 0 should be empty after a clear")
	}
	// Rows above shifted down by one.
	if !g[1][0] || !g[11][1] || !g[12][2] {
		t.Error("rows above the cleared row should shift down by one")
	}
	// Rows below untouched.
	if !g[20][5] || !g[31][6] {
		t.Error("rows below the cleared row should not move")
	}
	if g.Count() != 5 {
		t.Errorf("Count() = %d, expected 5", g.Count())
	}
}

func TestClearLinesCascade(t *testing.T) {
	var g Grid
	for _, y := range []int{29, 30, 31} {
		for x := 0; x < Width; x++ {
			g[y][x] = true
		}
	}
	g[28][0] = true

	if n := ClearLines(&g); n != 3 {
		t.Fatalf("ClearLines() = %d, expected 3", n)
	}
	if !g[31][0] || g.Count() != 1 {
		t.Errorf("only the marker should remain, at the bottom; got %d cells", g.Count())
	}
}

func TestClearLinesTopRow(t *testing.T) {
	var g Grid
	for x := 0; x < Width; x++ {
		g[0][x] = true
	}
	if n := ClearLines(&g); n != 1 {
		t.Fatalf("ClearLines() = %d, expected 1", n)
	}
	if g.Count() != 0 {
		t.Errorf("Count() = %d, expected 0", g.Count())
	}
}

func TestMerge(t *testing.T) {
	var g Grid
	p := NewPiece(KindT).Translated(0, -2) // top row sits above the field

	g.Merge(p)
	if g.Count() != 3 {
		t.Errorf("Count() = %d, expected 3 (off-field cell dropped)", g.Count())
	}
}
