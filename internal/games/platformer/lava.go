package platformer

import (
	"github.com/vovakirdan/tui-platformer/internal/core"
)

var lavaSize = core.V(1, 1)

// Lava is a moving hazard. Bouncing lava reverses when it hits a wall;
// dripping lava jumps back to where it spawned and falls again.
type Lava struct {
	id    ActorID
	pos   core.Vec
	speed core.Vec
	reset core.Vec
	drip  bool
}

// NewLava places moving lava on the plan cell at cell.
func NewLava(id ActorID, cell, speed core.Vec, drip bool) Lava {
	return Lava{id: id, pos: cell, speed: speed, reset: cell, drip: drip}
}

func (l Lava) ID() ActorID     { return l.id }
func (l Lava) Kind() ActorKind { return KindLava }
func (l Lava) Pos() core.Vec   { return l.pos }
func (l Lava) Size() core.Vec  { return lavaSize }

// Speed returns the current velocity.
func (l Lava) Speed() core.Vec { return l.speed }

// Dripping reports whether the lava restarts from its spawn on impact.
func (l Lava) Dripping() bool { return l.drip }

// Update moves the lava unless the move would enter a wall.
func (l Lava) Update(dt float64, s *State, _ core.InputFrame) Actor {
	next := l.pos.Plus(l.speed.Times(dt))
	switch {
	case !s.Level().Touches(next, lavaSize, TileWall):
		l.pos = next
	case l.drip:
		l.pos = l.reset
	default:
		l.speed = l.speed.Times(-1)
	}
	return l
}

// Collide ends the run.
func (l Lava) Collide(s *State) *State {
	return s.with(s.actors, StatusLost)
}
