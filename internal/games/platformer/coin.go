package platformer

import (
	"math"

	"github.com/vovakirdan/tui-platformer/internal/core"
)

var coinSize = core.V(0.6, 0.6)

// Coin is a collectible that bobs up and down around a fixed anchor.
// Its position is derived from basePos and the wobble phase.
type Coin struct {
	id      ActorID
	basePos core.Vec
	wobble  float64 // Phase, radians
	dist    float64 // Amplitude, level units
}

// NewCoin places a coin centered in the plan cell at cell.
func NewCoin(id ActorID, cell core.Vec, wobble, dist float64) Coin {
	return Coin{
		id:      id,
		basePos: cell.Plus(core.V(0.2, 0.1)),
		wobble:  wobble,
		dist:    dist,
	}
}

func (c Coin) ID() ActorID     { return c.id }
func (c Coin) Kind() ActorKind { return KindCoin }
func (c Coin) Size() core.Vec  { return coinSize }

// Pos returns the wobbling position used for drawing and overlap tests.
func (c Coin) Pos() core.Vec {
	return c.basePos.Plus(core.V(0, math.Sin(c.wobble)*c.dist))
}

// BasePos returns the anchor the coin oscillates around.
func (c Coin) BasePos() core.Vec { return c.basePos }

// Wobble returns the current phase.
func (c Coin) Wobble() float64 { return c.wobble }

// Update advances the wobble phase.
func (c Coin) Update(dt float64, s *State, _ core.InputFrame) Actor {
	c.wobble += dt * s.Physics().WobbleSpeed
	return c
}

// Collide removes the coin. Taking the last coin wins the run.
func (c Coin) Collide(s *State) *State {
	filtered := s.without(c.id)
	status := s.Status()
	if !containsKind(filtered, KindCoin) {
		status = StatusWon
	}
	return s.with(filtered, status)
}

func containsKind(actors []Actor, kind ActorKind) bool {
	for _, a := range actors {
		if a.Kind() == kind {
			return true
		}
	}
	return false
}
