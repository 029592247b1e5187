package core

// Action represents a semantic game action, abstracted from physical key presses.
// The three movement actions carry the key names the simulation is written
// against (ArrowLeft, ArrowRight, ArrowUp).
type Action int

const (
	ActionNone    Action = iota
	ActionLeft           // Left arrow, A - run left
	ActionRight          // Right arrow, D - run right
	ActionUp             // Up arrow, W, Space - jump
	ActionPause          // P, Escape - pause/unpause game
	ActionRestart        // R key - restart after the run ends
	ActionQuit           // Q, Ctrl+C - exit
)

// String returns the key name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionLeft:
		return "ArrowLeft"
	case ActionRight:
		return "ArrowRight"
	case ActionUp:
		return "ArrowUp"
	case ActionPause:
		return "Pause"
	case ActionRestart:
		return "Restart"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// InputFrame is a snapshot of the actions held during one simulation tick.
// It is sampled at call time; there is no event queue behind it.
type InputFrame struct {
	// Actions maps action types to their held state.
	Actions map[Action]bool
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
	}
}

// Keys builds a frame with the given actions held.
func Keys(actions ...Action) InputFrame {
	f := NewInputFrame()
	for _, a := range actions {
		f.Set(a)
	}
	return f
}

// Set marks an action as held for this frame.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// Has returns true if the given action is held this frame.
func (f InputFrame) Has(a Action) bool {
	if f.Actions == nil {
		return false
	}
	return f.Actions[a]
}

// Clear resets all actions for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
}

// Clone creates a copy of this input frame.
func (f InputFrame) Clone() InputFrame {
	clone := NewInputFrame()
	for k, v := range f.Actions {
		clone.Actions[k] = v
	}
	return clone
}
