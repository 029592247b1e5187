package platformer

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/vovakirdan/tui-platformer/internal/core"
)

// ActorID identifies an actor for the whole run. It is the actor's index in
// the level's spawn list and survives every update.
type ActorID int

// Actor is a dynamic entity. Implementations are immutable values: Update
// returns a new actor and never touches the receiver.
type Actor interface {
	ID() ActorID
	Kind() ActorKind
	Pos() core.Vec
	Size() core.Vec

	// Update advances the actor by dt seconds. s is the state at the start
	// of the frame; every actor sees the same snapshot.
	Update(dt float64, s *State, keys core.InputFrame) Actor
}

// Collider is implemented by actors that react to overlapping the player.
type Collider interface {
	Actor
	Collide(s *State) *State
}

// BoxOf returns the actor's bounding box.
func BoxOf(a Actor) core.Box {
	return core.Box{Pos: a.Pos(), Size: a.Size()}
}

// Overlap reports whether two actors' bounding boxes share any area.
func Overlap(a, b Actor) bool {
	return BoxOf(a).Overlaps(BoxOf(b))
}

// spawnActor materializes a level spawn. rng seeds the coin wobble phase.
func spawnActor(id ActorID, sp Spawn, wobbleDist float64, rng *rand.Rand) Actor {
	switch sp.Kind {
	case KindPlayer:
		return NewPlayer(id, sp.Pos)
	case KindCoin:
		return NewCoin(id, sp.Pos, rng.Float64()*2*math.Pi, wobbleDist)
	case KindLava:
		return NewLava(id, sp.Pos, sp.Speed, sp.Drip)
	default:
		panic(fmt.Errorf("%w: spawn %q has kind %s", ErrInvariant, sp.Glyph, sp.Kind))
	}
}
