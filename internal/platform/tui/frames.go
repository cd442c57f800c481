// Package tui provides the Bubble Tea front end for microtris. The console
// keeps its own timer goroutine; frames reach the model through a channel
// that a listen command drains.
package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/microtris/internal/console"
	"github.com/vovakirdan/microtris/internal/tetris"
)

// FrameMsg carries a snapshot rendered by the console.
type FrameMsg tetris.Snapshot

// GameOverMsg reports a finished game and whether saving it worked.
type GameOverMsg struct {
	Result console.Result
	Saved  bool
	Err    error
}

// latestFrame returns a console renderer that keeps only the newest snapshot
// in ch. It never blocks, so it is safe to call with the console lock held.
func latestFrame(ch chan tetris.Snapshot) func(tetris.Snapshot) {
	return func(s tetris.Snapshot) {
		select {
		case <-ch:
		default:
		}
		select {
		case ch <- s:
		default:
		}
	}
}

// listen waits for the next frame or game result.
func listen(frames <-chan tetris.Snapshot, results <-chan GameOverMsg) tea.Cmd {
	return func() tea.Msg {
		select {
		case s := <-frames:
			return FrameMsg(s)
		case r := <-results:
			return r
		}
	}
}
