package platformer

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/vovakirdan/tui-platformer/internal/config"
	"github.com/vovakirdan/tui-platformer/internal/core"
)

// Game drives one level for the platform layer. It owns the current
// immutable State and swaps it for a new one every tick; everything that is
// not simulation (pause, run timer, scrolling) lives here.
type Game struct {
	name    string
	level   *Level
	cfg     config.PlatformerConfig
	runtime core.RuntimeConfig
	state   *State
	view    Viewport
	paused  bool
	elapsed float64 // Simulated seconds in the current run
	ticks   int     // Simulated ticks in the current run
	coins   int     // Coins present when the run started
}

// New parses plan with the default legend and prepares a game for it.
// Call Reset before the first Step.
func New(name, plan string, cfg config.PlatformerConfig) (*Game, error) {
	level, err := ParseLevel(plan, DefaultLegend(cfg.Hazards))
	if err != nil {
		return nil, fmt.Errorf("level %s: %w", name, err)
	}
	return &Game{name: name, level: level, cfg: cfg}, nil
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "platformer"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Platformer"
}

// LevelName returns the name the level was loaded under.
func (g *Game) LevelName() string {
	return g.name
}

// Level returns the parsed level.
func (g *Game) Level() *Level {
	return g.level
}

// Reset starts a fresh run of the level. The seed drives the coin phases.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime
	rng := rand.New(rand.NewSource(runtime.Seed))
	g.state = Start(g.level, g.cfg.Physics, rng)
	g.view = Viewport{}
	g.paused = false
	g.elapsed = 0
	g.ticks = 0
	g.coins = g.state.Count(KindCoin)
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.state.Status().Terminal() {
		return core.StepResult{State: g.State()}
	}

	// Handle pause toggle
	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	dt := g.frameTime()
	g.state = g.state.Update(dt, in)
	g.elapsed += dt
	g.ticks++

	return core.StepResult{
		State: g.State(),
		Ended: g.state.Status().Terminal(),
	}
}

// frameTime returns the seconds simulated per tick, capped by MaxStep.
func (g *Game) frameTime() float64 {
	rate := g.runtime.TickRate
	if rate <= 0 {
		rate = core.DefaultConfig().TickRate
	}
	dt := 1 / float64(rate)
	if dt > g.cfg.Physics.MaxStep {
		dt = g.cfg.Physics.MaxStep
	}
	return dt
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	status := g.state.Status()
	return core.GameState{
		Score:    g.coins - g.state.Count(KindCoin),
		GameOver: status.Terminal(),
		Won:      status == StatusWon,
		Paused:   g.paused,
	}
}

// Snapshot returns the current immutable simulation state.
func (g *Game) Snapshot() *State {
	return g.state
}

// Elapsed returns the simulated play time of the current run.
func (g *Game) Elapsed() time.Duration {
	return time.Duration(g.elapsed * float64(time.Second))
}

// Ticks returns the number of simulated ticks in the current run.
func (g *Game) Ticks() int {
	return g.ticks
}
