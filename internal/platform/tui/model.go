package tui

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/microtris/internal/config"
	"github.com/vovakirdan/microtris/internal/console"
	"github.com/vovakirdan/microtris/internal/core"
	"github.com/vovakirdan/microtris/internal/display"
	"github.com/vovakirdan/microtris/internal/storage"
	"github.com/vovakirdan/microtris/internal/tetris"
)

// Options configures the terminal front end.
type Options struct {
	Config  config.Config
	Store   *storage.Store // nil disables score saving
	Logger  *log.Logger
	Compact bool // start with the braille renderer
}

// Model is the Bubble Tea model driving one console.
type Model struct {
	console *console.Console
	keys    KeyMap
	help    help.Model
	logger  *log.Logger
	cancel  context.CancelFunc

	frames  <-chan tetris.Snapshot
	results <-chan GameOverMsg

	fb      *display.Framebuffer
	snap    tetris.Snapshot
	compact bool
	best    int
	status  string
	width   int
	height  int

	quitting bool
}

// newModel wires a model to an existing console and its channels.
func newModel(con *console.Console, opts Options, frames <-chan tetris.Snapshot, results <-chan GameOverMsg, cancel context.CancelFunc) Model {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(os.Stderr)
	}

	best := 0
	if opts.Store != nil {
		if high, err := opts.Store.HighScore(); err == nil {
			best = high
		} else {
			logger.Warn("could not read high score", "error", err)
		}
	}

	h := help.New()
	h.ShowAll = false

	return Model{
		console: con,
		keys:    NewKeyMap(opts.Config.Keys),
		help:    h,
		logger:  logger,
		cancel:  cancel,
		frames:  frames,
		results: results,
		fb:      display.NewPanel(),
		snap:    con.Snapshot(),
		compact: opts.Compact,
		best:    best,
	}
}

// Init starts listening for frames.
func (m Model) Init() tea.Cmd {
	return listen(m.frames, m.results)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.compact = Compact(msg.Height)
		m.help.Width = msg.Width
		return m, nil

	case FrameMsg:
		m.snap = tetris.Snapshot(msg)
		return m, listen(m.frames, m.results)

	case GameOverMsg:
		m.handleGameOver(msg)
		return m, listen(m.frames, m.results)
	}

	return m, nil
}

// handleKey processes keyboard input. Button keys go straight to the
// console, the same way the hardware buttons interrupt the timer. The board
// is only updated from the frames the console renders, so a press shows up
// in order with the ticks around it.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Screenshot):
		m.saveScreenshot()
		return m, nil
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	}

	switch a := m.keys.Action(msg); a {
	case core.ActionQuit:
		m.quitting = true
		if m.cancel != nil {
			m.cancel()
		}
		return m, tea.Quit
	case core.ActionRotate, core.ActionStep:
		if m.snap.Ended {
			m.status = ""
		}
		m.console.Handle(a)
	}
	return m, nil
}

func (m *Model) handleGameOver(msg GameOverMsg) {
	score := int(msg.Result.Score)
	if score > m.best {
		m.best = score
	}
	switch {
	case msg.Err != nil:
		m.status = "score not saved"
	case msg.Saved:
		m.status = "score saved"
	default:
		m.status = ""
	}
}

// saveScreenshot writes the current panel as text.
func (m *Model) saveScreenshot() {
	display.Draw(m.fb, m.snap)

	dir, err := config.ExpandHome("~/.microtris/screenshots")
	if err != nil {
		m.logger.Warn("screenshot failed", "error", err)
		return
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("screenshot failed", "error", err)
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("microtris_%s.txt", timestamp))
	if err := os.WriteFile(path, []byte(m.fb.String()+"\n"), 0o600); err != nil {
		m.logger.Warn("screenshot failed", "error", err)
		return
	}
	m.status = "screenshot saved"
	m.logger.Info("screenshot saved", "path", path)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	display.Draw(m.fb, m.snap)
	return renderView(m.fb, m.snap, m.panelInfo(), m.compact, m.help.View(m.keys))
}

func (m Model) panelInfo() panelInfo {
	st := m.console.Stats()
	best := m.best
	if int(st.Best) > best {
		best = int(st.Best)
	}
	return panelInfo{
		Score:  int(m.snap.Score),
		Best:   best,
		Games:  st.Games,
		Seed:   m.console.Seed(),
		Status: m.status,
	}
}

// Run starts the console timer and the Bubble Tea program, and blocks until
// the player quits.
func Run(opts Options) error {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(os.Stderr)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	frames := make(chan tetris.Snapshot, 1)
	results := make(chan GameOverMsg, 4)

	con := console.New(
		console.Config{Seed: opts.Config.Seed, TickRate: opts.Config.TickRate},
		console.WithRenderer(latestFrame(frames)),
		console.WithLogger(logger),
		console.WithGameOver(func(r console.Result) {
			msg := saveResult(opts.Store, logger, r)
			select {
			case results <- msg:
			case <-ctx.Done():
			}
		}),
	)

	model := newModel(con, opts, frames, results, cancel)

	go func() {
		if err := con.Run(ctx); err != nil && err != context.Canceled {
			logger.Error("console stopped", "error", err)
		}
	}()

	p := tea.NewProgram(model, tea.WithAltScreen())
	_, err := p.Run()
	return err
}

// saveResult stores a finished game. Saving is best effort; the game goes on
// whatever happens here.
func saveResult(store *storage.Store, logger *log.Logger, r console.Result) GameOverMsg {
	msg := GameOverMsg{Result: r}
	if store == nil {
		return msg
	}

	_, err := store.SaveScore(storage.Result{
		RunID:  r.RunID,
		Score:  int(r.Score),
		Lines:  r.Lines,
		Pieces: r.Pieces,
		Ticks:  r.Ticks,
		Seed:   r.Seed,
	})
	if err != nil {
		logger.Error("could not save score", "error", err)
		msg.Err = err
		return msg
	}
	msg.Saved = true
	logger.Info("score saved", "score", r.Score, "run", r.RunID)
	return msg
}
