package platformer

import (
	"fmt"
	"math/rand"

	"github.com/vovakirdan/tui-platformer/internal/config"
	"github.com/vovakirdan/tui-platformer/internal/core"
)

// Status is the outcome of a run.
type Status string

const (
	StatusPlaying Status = "playing"
	StatusWon     Status = "won"
	StatusLost    Status = "lost"
)

// Terminal reports whether no further transition can leave this status.
func (s Status) Terminal() bool {
	return s != StatusPlaying
}

// State is an immutable snapshot of a run. Update returns a new State and
// leaves the receiver untouched, so a renderer may keep reading an old
// snapshot while the next one is computed.
type State struct {
	level   *Level
	actors  []Actor
	status  Status
	physics config.Physics
}

// Start creates the initial state of a level. Actors are materialized from
// the level's spawns in plan order; rng seeds the coin wobble phases
// (nil means a fixed seed of 0).
func Start(level *Level, physics config.Physics, rng *rand.Rand) *State {
	if rng == nil {
		rng = rand.New(rand.NewSource(0))
	}
	spawns := level.StartActors()
	actors := make([]Actor, len(spawns))
	for i, sp := range spawns {
		actors[i] = spawnActor(ActorID(i), sp, physics.WobbleDist, rng)
	}
	return &State{
		level:   level,
		actors:  actors,
		status:  StatusPlaying,
		physics: physics,
	}
}

// Level returns the shared level.
func (s *State) Level() *Level { return s.level }

// Status returns the run status.
func (s *State) Status() Status { return s.status }

// Physics returns the motion constants the state was started with.
func (s *State) Physics() config.Physics { return s.physics }

// Actors returns the live actors in spawn order.
func (s *State) Actors() []Actor {
	out := make([]Actor, len(s.actors))
	copy(out, s.actors)
	return out
}

// Player returns the player actor.
func (s *State) Player() Player {
	for _, a := range s.actors {
		if p, ok := a.(Player); ok {
			return p
		}
	}
	panic(fmt.Errorf("%w: state has no player", ErrInvariant))
}

// Count returns the number of live actors of a kind.
func (s *State) Count(kind ActorKind) int {
	n := 0
	for _, a := range s.actors {
		if a.Kind() == kind {
			n++
		}
	}
	return n
}

// Update advances the run by dt seconds with the given keys held.
//
// A terminal state is returned as is. Otherwise every actor is updated
// against the current snapshot; if the player then touches a lava tile the
// run is lost. Failing that, each non-player actor overlapping the player
// collides, in spawn order, each collision seeing the result of the one
// before. When outcomes conflict the last collision wins.
func (s *State) Update(dt float64, keys core.InputFrame) *State {
	if s.status.Terminal() {
		return s
	}

	actors := make([]Actor, len(s.actors))
	for i, a := range s.actors {
		actors[i] = a.Update(dt, s, keys)
	}
	next := s.with(actors, s.status)

	player := next.Player()
	if s.level.Touches(player.Pos(), player.Size(), TileLava) {
		return s.with(actors, StatusLost)
	}

	for _, a := range actors {
		if a.ID() == player.ID() || !Overlap(a, player) {
			continue
		}
		c, ok := a.(Collider)
		if !ok {
			panic(fmt.Errorf("%w: %s actor %d overlaps the player without a collision handler",
				ErrInvariant, a.Kind(), a.ID()))
		}
		next = c.Collide(next)
	}
	return next
}

// with returns a copy of s holding actors and status.
func (s *State) with(actors []Actor, status Status) *State {
	return &State{
		level:   s.level,
		actors:  actors,
		status:  status,
		physics: s.physics,
	}
}

// without returns the live actors minus the one with the given ID.
func (s *State) without(id ActorID) []Actor {
	out := make([]Actor, 0, len(s.actors))
	for _, a := range s.actors {
		if a.ID() != id {
			out = append(out, a)
		}
	}
	return out
}
