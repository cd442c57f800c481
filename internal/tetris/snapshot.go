package tetris

import (
	"fmt"
	"strings"
)

// Snapshot is a read-only copy of everything a renderer or a test needs.
type Snapshot struct {
	Tick      uint64
	Grid      Grid
	Block     Piece
	HasBlock  bool
	Score     uint32
	Ended     bool
	Pieces    int
	Cooldown  int
	Direction Direction
}

// Snapshot captures the current state.
func (t *Tetris) Snapshot() Snapshot {
	block, ok := t.Block()
	return Snapshot{
		Tick:      t.ticks,
		Grid:      t.grid,
		Block:     block,
		HasBlock:  ok,
		Score:     t.score,
		Ended:     t.ended,
		Pieces:    t.pieces,
		Cooldown:  t.cooldown,
		Direction: t.direction,
	}
}

// Occupied reports whether (x, y) is filled by the grid or the falling piece.
func (s Snapshot) Occupied(x, y int) bool {
	if s.Grid.At(x, y) {
		return true
	}
	if !s.HasBlock {
		return false
	}
	for _, c := range s.Block.Cells() {
		if c.X == x && c.Y == y {
			return true
		}
	}
	return false
}

// DebugState returns the field as text, '#' for settled cells and '@' for the
// falling piece.
func (s Snapshot) DebugState() string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("Tick: %d, Score: %d, Pieces: %d, Ended: %v\n", s.Tick, s.Score, s.Pieces, s.Ended))

	falling := make(map[Point]bool)
	if s.HasBlock {
		for _, c := range s.Block.Cells() {
			falling[c] = true
		}
	}
	for y := 0; y < Height; y++ {
		for x := 0; x < Width; x++ {
			switch {
			case falling[Point{X: x, Y: y}]:
				b.WriteByte('@')
			case s.Grid[y][x]:
				b.WriteByte('#')
			default:
				b.WriteByte('.')
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}
