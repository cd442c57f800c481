// Package display renders game snapshots onto a monochrome framebuffer laid
// out like a 96x16 OLED mounted sideways, and converts that
// framebuffer to text for terminals.
package display

import "strings"

// Panel dimensions of the sideways OLED, in pixels.
const (
	PanelWidth  = 16
	PanelHeight = 96
)

// Framebuffer is a 1-bit pixel buffer. Pixel (0, 0) is the top-left corner.
type Framebuffer struct {
	w, h int
	px   []bool
}

// NewFramebuffer allocates a blank framebuffer.
func NewFramebuffer(w, h int) *Framebuffer {
	return &Framebuffer{w: w, h: h, px: make([]bool, w*h)}
}

// NewPanel allocates a framebuffer the size of the OLED.
func NewPanel() *Framebuffer {
	return NewFramebuffer(PanelWidth, PanelHeight)
}

// Width returns the width in pixels.
func (f *Framebuffer) Width() int { return f.w }

// Height returns the height in pixels.
func (f *Framebuffer) Height() int { return f.h }

// Clear switches every pixel off.
func (f *Framebuffer) Clear() {
	for i := range f.px {
		f.px[i] = false
	}
}

// Set switches a pixel on or off. Out-of-range pixels are ignored, the way
// the panel driver clips drawing.
func (f *Framebuffer) Set(x, y int, on bool) {
	if x < 0 || x >= f.w || y < 0 || y >= f.h {
		return
	}
	f.px[y*f.w+x] = on
}

// At reports whether a pixel is lit. Out-of-range pixels read as off.
func (f *Framebuffer) At(x, y int) bool {
	if x < 0 || x >= f.w || y < 0 || y >= f.h {
		return false
	}
	return f.px[y*f.w+x]
}

// FillRect lights a w x h block with its top-left corner at (x, y).
func (f *Framebuffer) FillRect(x, y, w, h int) {
	for py := y; py < y+h; py++ {
		for px := x; px < x+w; px++ {
			f.Set(px, py, true)
		}
	}
}

// StrokeRect lights the one pixel outline of a w x h rectangle.
func (f *Framebuffer) StrokeRect(x, y, w, h int) {
	if w <= 0 || h <= 0 {
		return
	}
	f.FillRect(x, y, w, 1)
	f.FillRect(x, y+h-1, w, 1)
	f.FillRect(x, y, 1, h)
	f.FillRect(x+w-1, y, 1, h)
}

// Count returns the number of lit pixels.
func (f *Framebuffer) Count() int {
	n := 0
	for _, on := range f.px {
		if on {
			n++
		}
	}
	return n
}

// Lines renders the framebuffer with half-block runes, two pixel rows per
// text row.
func (f *Framebuffer) Lines() []string {
	lines := make([]string, 0, (f.h+1)/2)
	var sb strings.Builder
	for y := 0; y < f.h; y += 2 {
		sb.Reset()
		for x := 0; x < f.w; x++ {
			top, bottom := f.At(x, y), f.At(x, y+1)
			switch {
			case top && bottom:
				sb.WriteRune('█')
			case top:
				sb.WriteRune('▀')
			case bottom:
				sb.WriteRune('▄')
			default:
				sb.WriteRune(' ')
			}
		}
		lines = append(lines, sb.String())
	}
	return lines
}

// brailleDots maps a pixel offset inside a 2x4 braille cell to its dot bit.
var brailleDots = [4][2]rune{
	{0x01, 0x08},
	{0x02, 0x10},
	{0x04, 0x20},
	{0x40, 0x80},
}

// Braille renders the framebuffer with braille patterns, 2x4 pixels per
// rune. It is four times denser than Lines and fits short terminals.
func (f *Framebuffer) Braille() []string {
	lines := make([]string, 0, (f.h+3)/4)
	var sb strings.Builder
	for y := 0; y < f.h; y += 4 {
		sb.Reset()
		for x := 0; x < f.w; x += 2 {
			var bits rune
			for dy := 0; dy < 4; dy++ {
				for dx := 0; dx < 2; dx++ {
					if f.At(x+dx, y+dy) {
						bits |= brailleDots[dy][dx]
					}
				}
			}
			if bits == 0 {
				sb.WriteRune(' ')
				continue
			}
			sb.WriteRune(0x2800 + bits)
		}
		lines = append(lines, sb.String())
	}
	return lines
}

// String joins Lines with newlines.
func (f *Framebuffer) String() string {
	return strings.Join(f.Lines(), "\n")
}
