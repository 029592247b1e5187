package platformer

import (
	"github.com/vovakirdan/tui-platformer/internal/config"
	"github.com/vovakirdan/tui-platformer/internal/core"
)

// Tile is the static classification of one level cell.
type Tile uint8

const (
	TileEmpty Tile = iota
	TileWall
	TileLava // Static lava occupying a whole cell
)

// String returns the tile name.
func (t Tile) String() string {
	switch t {
	case TileEmpty:
		return "empty"
	case TileWall:
		return "wall"
	case TileLava:
		return "lava"
	default:
		return "unknown"
	}
}

// ActorKind identifies an actor variant.
type ActorKind uint8

const (
	KindNone ActorKind = iota // Glyph maps to a tile, not an actor
	KindPlayer
	KindCoin
	KindLava // Moving lava
)

// String returns the actor kind name.
func (k ActorKind) String() string {
	switch k {
	case KindNone:
		return "none"
	case KindPlayer:
		return "player"
	case KindCoin:
		return "coin"
	case KindLava:
		return "lava"
	default:
		return "unknown"
	}
}

// Glyph is what one plan character means.
type Glyph struct {
	Tile  Tile      // Cell contents; always TileEmpty under an actor
	Actor ActorKind // KindNone for pure tiles
	Speed core.Vec  // Initial velocity of moving lava
	Drip  bool      // Moving lava restarts from its spawn instead of bouncing
}

// Legend maps plan characters to their meaning. It is built once and never
// modified; the zero Legend recognizes nothing.
type Legend struct {
	glyphs map[rune]Glyph
}

// NewLegend copies entries into a read-only legend.
func NewLegend(entries map[rune]Glyph) Legend {
	glyphs := make(map[rune]Glyph, len(entries))
	for r, g := range entries {
		if g.Actor != KindNone {
			g.Tile = TileEmpty
		}
		glyphs[r] = g
	}
	return Legend{glyphs: glyphs}
}

// DefaultLegend returns the standard character table with moving lava
// speeds taken from the hazard config.
//
//	'.' empty   '#' wall   '+' static lava
//	'@' player  'o' coin
//	'=' lava bouncing horizontally
//	'|' lava bouncing vertically
//	'v' dripping lava
func DefaultLegend(h config.Hazards) Legend {
	return NewLegend(map[rune]Glyph{
		'.': {Tile: TileEmpty},
		'#': {Tile: TileWall},
		'+': {Tile: TileLava},
		'@': {Actor: KindPlayer},
		'o': {Actor: KindCoin},
		'=': {Actor: KindLava, Speed: core.V(h.HorizontalSpeed, 0)},
		'|': {Actor: KindLava, Speed: core.V(0, h.VerticalSpeed)},
		'v': {Actor: KindLava, Speed: core.V(0, h.DripSpeed), Drip: true},
	})
}

// Lookup returns the meaning of r.
func (l Legend) Lookup(r rune) (Glyph, bool) {
	g, ok := l.glyphs[r]
	return g, ok
}
