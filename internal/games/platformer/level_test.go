package platformer

import (
	"errors"
	"testing"

	"github.com/vovakirdan/tui-platformer/internal/config"
	"github.com/vovakirdan/tui-platformer/internal/core"
)

func defaultLegend() Legend {
	return DefaultLegend(config.DefaultPlatformerConfig().Hazards)
}

// mustParse parses a plan with the default legend or fails the test.
func mustParse(t *testing.T, plan string) *Level {
	t.Helper()
	level, err := ParseLevel(plan, defaultLegend())
	if err != nil {
		t.Fatalf("ParseLevel() failed: %v", err)
	}
	return level
}

func TestParseDefaultPlan(t *testing.T) {
	level := mustParse(t, DefaultPlan)

	if level.Width() != 22 || level.Height() != 9 {
		t.Fatalf("dimensions = %dx%d, expected 22x9", level.Width(), level.Height())
	}

	tiles := []struct {
		x, y int
		want Tile
	}{
		{2, 1, TileWall},
		{7, 6, TileLava},
		{0, 0, TileEmpty},
		{4, 4, TileEmpty},  // under the player spawn
		{17, 2, TileEmpty}, // under moving lava
		{12, 3, TileEmpty}, // under a coin
	}
	for _, tc := range tiles {
		if got := level.Tile(tc.x, tc.y); got != tc.want {
			t.Errorf("Tile(%d, %d) = %s, expected %s", tc.x, tc.y, got, tc.want)
		}
	}

	spawns := level.StartActors()
	expected := []struct {
		kind  ActorKind
		glyph rune
		pos   core.Vec
	}{
		{KindLava, '=', core.V(17, 2)},
		{KindCoin, 'o', core.V(12, 3)},
		{KindCoin, 'o', core.V(14, 3)},
		{KindPlayer, '@', core.V(4, 4)},
	}
	if len(spawns) != len(expected) {
		t.Fatalf("got %d spawns, expected %d", len(spawns), len(expected))
	}
	for i, want := range expected {
		got := spawns[i]
		if got.Kind != want.kind || got.Glyph != want.glyph || got.Pos != want.pos {
			t.Errorf("spawn %d = %+v, expected %s %q at %v", i, got, want.kind, want.glyph, want.pos)
		}
	}
	if spawns[0].Speed != core.V(2, 0) || spawns[0].Drip {
		t.Errorf("'=' should bounce horizontally, got %+v", spawns[0])
	}

	census := level.Census()
	if census[KindPlayer] != 1 || census[KindCoin] != 2 || census[KindLava] != 1 {
		t.Errorf("Census() = %v", census)
	}
}

func TestParseHazardVariants(t *testing.T) {
	level := mustParse(t, "=|v\n@..")
	spawns := level.StartActors()

	tests := []struct {
		speed core.Vec
		drip  bool
	}{
		{core.V(2, 0), false},
		{core.V(0, 2), false},
		{core.V(0, 3), true},
	}
	for i, tc := range tests {
		if spawns[i].Speed != tc.speed || spawns[i].Drip != tc.drip {
			t.Errorf("spawn %q = speed %v drip %v, expected %v %v",
				spawns[i].Glyph, spawns[i].Speed, spawns[i].Drip, tc.speed, tc.drip)
		}
	}
}

func TestParseLevelTrimsAndAcceptsCRLF(t *testing.T) {
	level := mustParse(t, "\n\n  ...\r\n.@.\r\n###\n\n")
	if level.Width() != 3 || level.Height() != 3 {
		t.Errorf("dimensions = %dx%d, expected 3x3", level.Width(), level.Height())
	}
}

func TestParseLevelErrors(t *testing.T) {
	tests := []struct {
		name     string
		plan     string
		wantErr  error
		wantLine int
		wantCol  int
	}{
		{"empty", "  \n\t\n", ErrEmptyPlan, 0, 0},
		{"ragged row", "...\n.@\n...", ErrRaggedRow, 2, 0},
		{"unknown glyph", "...\n.@.\n.x.", ErrUnknownGlyph, 3, 2},
		{"interior space", ".@. .", ErrUnknownGlyph, 1, 4},
		{"no player", "...\n###", ErrNoPlayer, 0, 0},
		{"two players", "@.@\n###", ErrManyPlayers, 0, 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			level, err := ParseLevel(tc.plan, defaultLegend())
			if err == nil {
				t.Fatalf("expected error, got level %dx%d", level.Width(), level.Height())
			}
			if !errors.Is(err, tc.wantErr) {
				t.Errorf("error = %v, expected %v", err, tc.wantErr)
			}

			var perr *ParseError
			if tc.wantLine == 0 {
				if errors.As(err, &perr) {
					t.Errorf("did not expect a located error, got %v", perr)
				}
				return
			}
			if !errors.As(err, &perr) {
				t.Fatalf("expected *ParseError, got %T", err)
			}
			if perr.Line != tc.wantLine || perr.Column != tc.wantCol {
				t.Errorf("location = %d:%d, expected %d:%d", perr.Line, perr.Column, tc.wantLine, tc.wantCol)
			}
		})
	}
}

func TestParseLevelCustomLegend(t *testing.T) {
	legend := NewLegend(map[rune]Glyph{
		' ': {Tile: TileEmpty},
		'X': {Tile: TileWall},
		'P': {Actor: KindPlayer, Tile: TileWall}, // actor cells are always empty
	})
	level, err := ParseLevel("X P\nXXX", legend)
	if err != nil {
		t.Fatalf("ParseLevel() failed: %v", err)
	}
	if level.Tile(2, 0) != TileEmpty {
		t.Errorf("actor cell should be empty, got %s", level.Tile(2, 0))
	}
	if _, err := ParseLevel("X P\n...", legend); !errors.Is(err, ErrUnknownGlyph) {
		t.Errorf("characters outside the legend should be rejected, got %v", err)
	}
}

func TestTouches(t *testing.T) {
	level := mustParse(t, `
.....
.#...
..@+.
.....`)

	tests := []struct {
		name      string
		pos, size core.Vec
		tile      Tile
		expected  bool
	}{
		{"wall cell exact", core.V(1, 1), core.V(1, 1), TileWall, true},
		{"box ending on wall edge", core.V(0, 1), core.V(1, 1), TileWall, false},
		{"fractional box into wall", core.V(0.5, 0.5), core.V(0.6, 0.6), TileWall, true},
		{"lava tile", core.V(2.9, 2), core.V(0.2, 0.5), TileLava, true},
		{"lava asked as wall", core.V(3, 2), core.V(1, 1), TileWall, false},
		{"empty region", core.V(2, 3), core.V(2, 1), TileEmpty, true},
		{"no lava in empty region", core.V(2, 3), core.V(2, 1), TileLava, false},
		{"crossing right edge", core.V(4.5, 0), core.V(1, 1), TileWall, true},
		{"crossing top edge", core.V(0, -0.1), core.V(1, 1), TileWall, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := level.Touches(tc.pos, tc.size, tc.tile); got != tc.expected {
				t.Errorf("Touches(%v, %v, %s) = %v, expected %v", tc.pos, tc.size, tc.tile, got, tc.expected)
			}
		})
	}
}

func TestTouchesOutsideIsWall(t *testing.T) {
	level := mustParse(t, "...\n.@.\n...")

	outside := []core.Vec{
		core.V(-5, 1), core.V(10, 1), core.V(1, -3), core.V(1, 7), core.V(-2, -2),
	}
	for _, pos := range outside {
		if !level.Touches(pos, core.V(1, 1), TileWall) {
			t.Errorf("box at %v should touch the boundary wall", pos)
		}
		for _, tile := range []Tile{TileEmpty, TileLava} {
			if level.Touches(pos, core.V(1, 1), tile) {
				t.Errorf("box at %v should only see wall, matched %s", pos, tile)
			}
		}
	}

	if level.Tile(-1, 0) != TileWall || level.Tile(0, 3) != TileWall {
		t.Error("Tile() outside the grid should be wall")
	}
}

func TestStartActorsIsACopy(t *testing.T) {
	level := mustParse(t, ".@o\n###")
	spawns := level.StartActors()
	spawns[0].Pos = core.V(99, 99)

	if level.StartActors()[0].Pos == core.V(99, 99) {
		t.Error("StartActors() should not expose the level's slice")
	}
}
