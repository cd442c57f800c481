package display

import "strings"

// Glyph metrics of the built-in font.
const (
	glyphW   = 3
	glyphH   = 5
	advanceX = glyphW + 1
)

// Align selects how Text positions a string relative to x.
type Align int

const (
	AlignLeft Align = iota
	AlignCenter
	AlignRight
)

// font covers digits and the letters the screens use. Unknown runes draw as
// blanks.
var font = map[rune][glyphH]string{
	'0': {"###", "#.#", "#.#", "#.#", "###"},
	'1': {".#.", "##.", ".#.", ".#.", "###"},
	'2': {"###", "..#", "###", "#..", "###"},
	'3': {"###", "..#", ".##", "..#", "###"},
	'4': {"#.#", "#.#", "###", "..#", "..#"},
	'5': {"###", "#..", "###", "..#", "###"},
	'6': {"###", "#..", "###", "#.#", "###"},
	'7': {"###", "..#", ".#.", ".#.", ".#."},
	'8': {"###", "#.#", "###", "#.#", "###"},
	'9': {"###", "#.#", "###", "..#", "###"},
	'A': {".#.", "#.#", "###", "#.#", "#.#"},
	'E': {"###", "#..", "##.", "#..", "###"},
	'G': {"###", "#..", "#.#", "#.#", "###"},
	'M': {"#.#", "###", "###", "#.#", "#.#"},
	'O': {"###", "#.#", "#.#", "#.#", "###"},
	'P': {"##.", "#.#", "##.", "#..", "#.."},
	'R': {"##.", "#.#", "##.", "#.#", "#.#"},
	'S': {".##", "#..", ".#.", "..#", "##."},
	'T': {"###", ".#.", ".#.", ".#.", ".#."},
	'V': {"#.#", "#.#", "#.#", "#.#", ".#."},
}

// TextWidth returns the width in pixels of s drawn with the built-in font.
func TextWidth(s string) int {
	n := len([]rune(s))
	if n == 0 {
		return 0
	}
	return n*advanceX - 1
}

// Text draws s with its top edge at y. Letters are upper-cased first.
func (f *Framebuffer) Text(x, y int, s string, align Align) {
	s = strings.ToUpper(s)
	switch align {
	case AlignCenter:
		x -= TextWidth(s) / 2
	case AlignRight:
		x -= TextWidth(s)
	}

	for _, r := range s {
		f.glyph(x, y, r)
		x += advanceX
	}
}

func (f *Framebuffer) glyph(x, y int, r rune) {
	rows, ok := font[r]
	if !ok {
		return
	}
	for gy, row := range rows {
		for gx, ch := range row {
			if ch == '#' {
				f.Set(x+gx, y+gy, true)
			}
		}
	}
}
