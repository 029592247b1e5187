package platformer

import (
	"github.com/vovakirdan/tui-platformer/internal/core"
)

var playerSize = core.V(0.8, 1.5)

// Player is the actor steered by input. It has no collision handler: it is
// the subject of every overlap, never the object.
type Player struct {
	id    ActorID
	pos   core.Vec
	speed core.Vec
}

// NewPlayer places a player on the plan cell at cell. The player is taller
// than one cell, so it starts half a unit above the cell to stand on the
// floor below.
func NewPlayer(id ActorID, cell core.Vec) Player {
	return Player{id: id, pos: cell.Plus(core.V(0, -0.5))}
}

func (p Player) ID() ActorID     { return p.id }
func (p Player) Kind() ActorKind { return KindPlayer }
func (p Player) Pos() core.Vec   { return p.pos }
func (p Player) Size() core.Vec  { return playerSize }

// Speed returns the velocity computed by the last update.
func (p Player) Speed() core.Vec { return p.speed }

// Update moves the player one axis at a time. A move into a wall is dropped
// for that axis only. Horizontal speed comes straight from the held keys;
// vertical speed integrates gravity, and a blocked vertical move either
// starts a jump (up held while falling or resting) or zeroes the speed.
func (p Player) Update(dt float64, s *State, keys core.InputFrame) Actor {
	ph := s.Physics()
	level := s.Level()

	xSpeed := 0.0
	if keys.Has(core.ActionLeft) {
		xSpeed -= ph.PlayerXSpeed
	}
	if keys.Has(core.ActionRight) {
		xSpeed += ph.PlayerXSpeed
	}

	pos := p.pos
	movedX := pos.Plus(core.V(xSpeed*dt, 0))
	if !level.Touches(movedX, playerSize, TileWall) {
		pos = movedX
	}

	ySpeed := p.speed.Y + dt*ph.Gravity
	movedY := pos.Plus(core.V(0, ySpeed*dt))
	switch {
	case !level.Touches(movedY, playerSize, TileWall):
		pos = movedY
	case keys.Has(core.ActionUp) && ySpeed >= 0:
		ySpeed = -ph.JumpSpeed
	default:
		ySpeed = 0
	}

	return Player{id: p.id, pos: pos, speed: core.V(xSpeed, ySpeed)}
}
