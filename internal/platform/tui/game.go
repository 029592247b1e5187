package tui

import "github.com/vovakirdan/tui-platformer/internal/core"

// Game is what the terminal loop drives. Implementations hold pure
// simulation logic with no Bubble Tea dependency; the platform handles
// input mapping, timing and drawing.
type Game interface {
	// ID returns a stable identifier used in logs.
	ID() string

	// Title returns a human-readable name.
	Title() string

	// Reset starts a fresh run. Called once at start and again on restart.
	Reset(cfg core.RuntimeConfig)

	// Step advances the simulation by one fixed tick.
	Step(in core.InputFrame) core.StepResult

	// Render draws the current frame into the screen buffer.
	Render(dst *core.Screen)

	// State returns the current game state.
	State() core.GameState
}
