package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-platformer/internal/core"
)

// KeyMap defines the key bindings for play.
type KeyMap struct {
	Left    key.Binding
	Right   key.Binding
	Jump    key.Binding
	Pause   key.Binding
	Restart key.Binding
	Quit    key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Left, k.Right, k.Jump, k.Pause, k.Restart, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Left, k.Right, k.Jump},
		{k.Pause, k.Restart, k.Quit},
	}
}

// DefaultKeyMap returns default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Left: key.NewBinding(
			key.WithKeys("left", "a", "h"),
			key.WithHelp("←/a", "left"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "d", "l"),
			key.WithHelp("→/d", "right"),
		),
		Jump: key.NewBinding(
			key.WithKeys("up", "w", "k", " "),
			key.WithHelp("↑/space", "jump"),
		),
		Pause: key.NewBinding(
			key.WithKeys("p", "esc"),
			key.WithHelp("p", "pause"),
		),
		Restart: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "restart"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// Action translates a key message to a game action.
// Returns ActionNone for unbound keys.
func (k KeyMap) Action(msg tea.KeyMsg) core.Action {
	switch {
	case key.Matches(msg, k.Quit):
		return core.ActionQuit
	case key.Matches(msg, k.Left):
		return core.ActionLeft
	case key.Matches(msg, k.Right):
		return core.ActionRight
	case key.Matches(msg, k.Jump):
		return core.ActionUp
	case key.Matches(msg, k.Pause):
		return core.ActionPause
	case key.Matches(msg, k.Restart):
		return core.ActionRestart
	}
	return core.ActionNone
}

// HeldKeys turns key presses into per-tick held state. Terminals report
// presses (and auto-repeat) but never releases, so a movement key counts as
// held until hold has passed since its last press. Pause and restart are
// pulses delivered to exactly one frame.
type HeldKeys struct {
	hold   time.Duration
	last   map[core.Action]time.Time
	pulses map[core.Action]bool
}

// NewHeldKeys creates an empty key state with the given hold window.
func NewHeldKeys(hold time.Duration) *HeldKeys {
	return &HeldKeys{
		hold:   hold,
		last:   make(map[core.Action]time.Time),
		pulses: make(map[core.Action]bool),
	}
}

// Press records a key press at now. Pressing one horizontal direction
// releases the other.
func (h *HeldKeys) Press(a core.Action, now time.Time) {
	switch a {
	case core.ActionNone, core.ActionQuit:
		return
	case core.ActionLeft:
		delete(h.last, core.ActionRight)
		h.last[a] = now
	case core.ActionRight:
		delete(h.last, core.ActionLeft)
		h.last[a] = now
	case core.ActionUp:
		h.last[a] = now
	default:
		h.pulses[a] = true
	}
}

// Frame returns the input for a tick at now and consumes pending pulses.
func (h *HeldKeys) Frame(now time.Time) core.InputFrame {
	f := core.NewInputFrame()
	for a, t := range h.last {
		if now.Sub(t) < h.hold {
			f.Set(a)
		} else {
			delete(h.last, a)
		}
	}
	for a := range h.pulses {
		f.Set(a)
		delete(h.pulses, a)
	}
	return f
}

// Release forgets every held key and pending pulse.
func (h *HeldKeys) Release() {
	clear(h.last)
	clear(h.pulses)
}
