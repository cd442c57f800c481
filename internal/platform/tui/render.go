package tui

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/microtris/internal/core"
	"github.com/vovakirdan/microtris/internal/display"
	"github.com/vovakirdan/microtris/internal/tetris"
)

// Layout constants
const (
	sideWidth  = 20
	sideHeight = 13

	// Terminal rows needed for the half-block renderer: panel, border, gap
	// and help line.
	fullHeight = display.PanelHeight/2 + 4
)

// Smallest terminal the braille layout fits in.
const (
	MinWidth  = display.PanelWidth/2 + 2 + 2 + sideWidth
	MinHeight = display.PanelHeight/4 + 2 + 1
)

// Compact reports whether a terminal of the given height needs the braille
// renderer.
func Compact(height int) bool {
	return height < fullHeight
}

var (
	boardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240"))
	sideStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("229"))
	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))
)

// panelInfo is what the side panel shows next to the board.
type panelInfo struct {
	Score  int
	Best   int
	Games  int
	Seed   int64
	Status string
}

// renderView lays the panel image out next to the side panel and puts the
// help line underneath.
func renderView(fb *display.Framebuffer, snap tetris.Snapshot, info panelInfo, compact bool, helpView string) string {
	lines := fb.Lines()
	if compact {
		lines = fb.Braille()
	}

	board := boardStyle.Render(strings.Join(lines, "\n"))
	side := sideStyle.Render(sidePanel(snap, info).String())

	var b strings.Builder
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, board, "  ", side))
	b.WriteString("\n")
	b.WriteString(helpStyle.Render(helpView))
	return b.String()
}

// sidePanel draws the score box into a character buffer.
func sidePanel(snap tetris.Snapshot, info panelInfo) *core.Screen {
	s := core.NewScreen(sideWidth, sideHeight)
	s.DrawBox(s.Bounds())
	s.DrawTextCentered(1, 1, sideWidth-2, "MICROTRIS")

	inner := sideWidth - 4
	s.DrawLines(2, 3, []string{
		infoRow("score", fmt.Sprint(info.Score), inner),
		infoRow("best", fmt.Sprint(info.Best), inner),
		infoRow("games", fmt.Sprint(info.Games), inner),
		infoRow("seed", fmt.Sprint(info.Seed), inner),
	})

	if snap.Ended {
		s.DrawTextCentered(1, 8, sideWidth-2, "GAME OVER")
		s.DrawTextCentered(1, 9, sideWidth-2, "press a button")
	} else {
		s.DrawTextCentered(1, 8, sideWidth-2, "playing")
	}
	if info.Status != "" {
		s.DrawTextCentered(1, 11, sideWidth-2, info.Status)
	}
	return s
}

// infoRow puts label on the left and value on the right of a width-wide row.
// Values that do not fit keep their last digits behind an ellipsis.
func infoRow(label, value string, width int) string {
	room := width - len(label) - 1
	if len(value) > room {
		value = "…" + value[len(value)-(room-1):]
	}
	pad := width - len(label) - utf8.RuneCountInString(value)
	return label + strings.Repeat(" ", pad) + value
}
