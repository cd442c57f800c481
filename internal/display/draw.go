package display

import (
	"strconv"

	"github.com/vovakirdan/microtris/internal/tetris"
)

// Layout of the sideways panel. The top 32 pixel rows hold the score box, the
// playfield starts below it with every cell drawn as a 2x2 block.
const (
	fieldOffset = 32
	cellPx      = 2
	panelMid    = PanelWidth / 2
	scoreTop    = 11
)

// Game-over screen text rows.
var gameOverRows = []struct {
	top  int
	text string
}{
	{9, "GAME"},
	{19, "OVER"},
	{39, "PTS"},
}

const gameOverScoreTop = 49

// Draw renders snap onto fb, clearing it first.
func Draw(fb *Framebuffer, snap tetris.Snapshot) {
	fb.Clear()
	score := strconv.FormatUint(uint64(snap.Score), 10)

	if snap.Ended {
		for _, row := range gameOverRows {
			fb.Text(panelMid, row.top, row.text, AlignCenter)
		}
		fb.Text(panelMid, gameOverScoreTop, score, AlignCenter)
		return
	}

	fb.StrokeRect(0, 0, PanelWidth, fieldOffset)
	fb.Text(panelMid, scoreTop, score, AlignCenter)

	if snap.HasBlock {
		for _, c := range snap.Block.Cells() {
			drawCell(fb, c.X, c.Y)
		}
	}
	for y := 0; y < tetris.Height; y++ {
		for x := 0; x < tetris.Width; x++ {
			if snap.Grid[y][x] {
				drawCell(fb, x, y)
			}
		}
	}
}

// drawCell lights the block for field cell (x, y). Row 0 overlaps the bottom
// edge of the score box by one pixel, as on the hardware.
func drawCell(fb *Framebuffer, x, y int) {
	fb.FillRect(x*cellPx, y*cellPx-1+fieldOffset, cellPx, cellPx)
}

// Render is a convenience that draws snap on a fresh panel-sized framebuffer.
func Render(snap tetris.Snapshot) *Framebuffer {
	fb := NewPanel()
	Draw(fb, snap)
	return fb
}
