package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/microtris/internal/config"
	"github.com/vovakirdan/microtris/internal/core"
)

// KeyMap binds terminal keys to the console buttons and front-end commands.
type KeyMap struct {
	Rotate     key.Binding
	Step       key.Binding
	Quit       key.Binding
	Screenshot key.Binding
	Help       key.Binding
}

// NewKeyMap builds the bindings from the configured key lists.
func NewKeyMap(cfg config.KeyConfig) KeyMap {
	return KeyMap{
		Rotate: key.NewBinding(
			key.WithKeys(cfg.Rotate...),
			key.WithHelp(helpKeys(cfg.Rotate), "rotate"),
		),
		Step: key.NewBinding(
			key.WithKeys(cfg.Step...),
			key.WithHelp(helpKeys(cfg.Step), "step"),
		),
		Quit: key.NewBinding(
			key.WithKeys(cfg.Quit...),
			key.WithHelp(helpKeys(cfg.Quit), "quit"),
		),
		Screenshot: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "screenshot"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "more"),
		),
	}
}

// helpKeys shows at most the first two keys of a binding.
func helpKeys(keys []string) string {
	if len(keys) > 2 {
		keys = keys[:2]
	}
	return strings.Join(keys, "/")
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Rotate, k.Step, k.Quit, k.Help}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Rotate, k.Step},
		{k.Screenshot, k.Quit, k.Help},
	}
}

// Action translates a key message to a console action. Keys that are not
// bound to a button or to quitting map to ActionNone.
func (k KeyMap) Action(msg tea.KeyMsg) core.Action {
	switch {
	case key.Matches(msg, k.Quit):
		return core.ActionQuit
	case key.Matches(msg, k.Rotate):
		return core.ActionRotate
	case key.Matches(msg, k.Step):
		return core.ActionStep
	}
	return core.ActionNone
}
