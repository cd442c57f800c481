package core

// Action is a semantic input, decoupled from the key or button that produced it.
type Action int

const (
	ActionNone   Action = iota
	ActionRotate        // First button: turn the falling piece
	ActionStep          // Second button: advance the drift oscillation
	ActionQuit          // Leave the front end
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionRotate:
		return "Rotate"
	case ActionStep:
		return "Step"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// ParseAction maps a name as written in scripts and config files to an action.
// Single letters are accepted as shorthands ("r", "s", "q").
func ParseAction(name string) (Action, bool) {
	switch name {
	case "rotate", "r":
		return ActionRotate, true
	case "step", "s":
		return ActionStep, true
	case "quit", "q":
		return ActionQuit, true
	}
	return ActionNone, false
}

// InputFrame holds the actions triggered between two ticks, in the order they
// arrived. Button presses are discrete events, so repeats are kept.
type InputFrame struct {
	Actions []Action
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{}
}

// Set records an action for this frame.
func (f *InputFrame) Set(a Action) {
	if a == ActionNone {
		return
	}
	f.Actions = append(f.Actions, a)
}

// Has returns true if the given action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	for _, got := range f.Actions {
		if got == a {
			return true
		}
	}
	return false
}

// Clear resets the frame for the next tick.
func (f *InputFrame) Clear() {
	f.Actions = f.Actions[:0]
}
