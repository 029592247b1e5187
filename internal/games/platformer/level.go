// Package platformer implements a tile-based platformer: a level grid, three
// actor variants (player, coin, moving lava) and an immutable per-frame
// state transition. The package is pure logic; rendering goes through
// core.Screen and input arrives as core.InputFrame.
package platformer

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/tui-platformer/internal/core"
)

// Spawn describes an actor placed by the level plan. Spawns are turned into
// live actors once, by Start.
type Spawn struct {
	Kind  ActorKind
	Glyph rune
	Pos   core.Vec // Top-left of the plan cell
	Speed core.Vec
	Drip  bool
}

// Level is the static world: a rectangular tile grid plus the initial actor
// placement. It is never modified after ParseLevel returns.
type Level struct {
	width       int
	height      int
	rows        [][]Tile // [y][x]
	startActors []Spawn
}

// ParseLevel builds a level from a textual plan. The plan is trimmed and
// split into rows on newlines; every row must have the same number of
// characters and every character must be known to the legend.
// Exactly one player is required.
func ParseLevel(plan string, legend Legend) (*Level, error) {
	plan = strings.TrimSpace(plan)
	if plan == "" {
		return nil, ErrEmptyPlan
	}

	lines := strings.Split(plan, "\n")
	level := &Level{
		height: len(lines),
		rows:   make([][]Tile, len(lines)),
	}

	players := 0
	for y, line := range lines {
		chars := []rune(strings.TrimSuffix(line, "\r"))
		if y == 0 {
			level.width = len(chars)
		} else if len(chars) != level.width {
			return nil, &ParseError{
				Line: y + 1,
				Err:  fmt.Errorf("%w (%d, expected %d)", ErrRaggedRow, len(chars), level.width),
			}
		}

		row := make([]Tile, len(chars))
		for x, ch := range chars {
			glyph, ok := legend.Lookup(ch)
			if !ok {
				return nil, &ParseError{Line: y + 1, Column: x + 1, Glyph: ch, Err: ErrUnknownGlyph}
			}
			if glyph.Actor == KindNone {
				row[x] = glyph.Tile
				continue
			}

			if glyph.Actor == KindPlayer {
				players++
			}
			row[x] = TileEmpty
			level.startActors = append(level.startActors, Spawn{
				Kind:  glyph.Actor,
				Glyph: ch,
				Pos:   core.V(float64(x), float64(y)),
				Speed: glyph.Speed,
				Drip:  glyph.Drip,
			})
		}
		level.rows[y] = row
	}

	switch {
	case players == 0:
		return nil, ErrNoPlayer
	case players > 1:
		return nil, fmt.Errorf("%w (found %d)", ErrManyPlayers, players)
	}

	return level, nil
}

// Width returns the number of columns.
func (l *Level) Width() int {
	return l.width
}

// Height returns the number of rows.
func (l *Level) Height() int {
	return l.height
}

// Tile returns the tile at (x, y). Cells outside the grid are walls.
func (l *Level) Tile(x, y int) Tile {
	if x < 0 || x >= l.width || y < 0 || y >= l.height {
		return TileWall
	}
	return l.rows[y][x]
}

// StartActors returns a copy of the actor placements in plan order
// (row by row, left to right).
func (l *Level) StartActors() []Spawn {
	out := make([]Spawn, len(l.startActors))
	copy(out, l.startActors)
	return out
}

// Census counts the spawns of each actor kind.
func (l *Level) Census() map[ActorKind]int {
	counts := make(map[ActorKind]int)
	for _, s := range l.startActors {
		counts[s.Kind]++
	}
	return counts
}

// Touches reports whether the box [pos, pos+size) overlaps any cell of the
// given tile kind. Cells outside the grid count as walls, which makes the
// level boundary solid.
func (l *Level) Touches(pos, size core.Vec, tile Tile) bool {
	x0, y0, x1, y1 := core.Box{Pos: pos, Size: size}.Cells()
	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			if l.Tile(x, y) == tile {
				return true
			}
		}
	}
	return false
}
