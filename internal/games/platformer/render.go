package platformer

import (
	"fmt"
	"math"

	"github.com/vovakirdan/tui-platformer/internal/core"
)

// Visual characters for rendering
const (
	WallChar      = '█'
	LavaTileChar  = '▒'
	LavaActorChar = '▓'
	CoinChar      = 'o'
	PlayerChar    = '@'
)

// hudRows is the number of screen rows above the playfield.
const hudRows = 1

// Render draws the current game state to the screen: a HUD line, then the
// part of the level around the player.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	cw, ch := g.cfg.View.CellWidth, g.cfg.View.CellHeight
	viewW := dst.Width()
	viewH := dst.Height() - hudRows

	// Scroll to keep the player's center inside the margins
	player := g.state.Player()
	center := player.Pos().Plus(player.Size().Times(0.5))
	g.view = g.view.Follow(
		center.X*float64(cw), center.Y*float64(ch),
		viewW, viewH,
		g.level.Width()*cw, g.level.Height()*ch,
		g.cfg.View.Margin,
	)

	g.drawBackground(dst, cw, ch)
	g.drawActors(dst, cw, ch)
	g.drawHUD(dst)

	switch {
	case g.paused:
		drawCenteredMessage(dst, "PAUSED", "Press P to resume")
	case g.state.Status() == StatusWon:
		drawCenteredMessage(dst, "LEVEL CLEAR", fmt.Sprintf("Time: %.1fs  |  Press R to play again", g.elapsed))
	case g.state.Status() == StatusLost:
		drawCenteredMessage(dst, "YOU DIED", "Press R to restart")
	}
}

// drawBackground renders the static tiles visible in the viewport.
func (g *Game) drawBackground(dst *core.Screen, cw, ch int) {
	for y := 0; y < g.level.Height(); y++ {
		for x := 0; x < g.level.Width(); x++ {
			var r rune
			var color core.Color
			switch g.level.Tile(x, y) {
			case TileWall:
				r, color = WallChar, core.ColorWhite
			case TileLava:
				r, color = LavaTileChar, core.ColorRed
			default:
				continue
			}
			dst.DrawRect(g.toScreen(core.V(float64(x), float64(y)), core.V(1, 1), cw, ch), r, color)
		}
	}
}

// drawActors renders every live actor at pos*scale sized size*scale.
func (g *Game) drawActors(dst *core.Screen, cw, ch int) {
	for _, a := range g.state.Actors() {
		r, color := actorLook(a.Kind(), g.state.Status())
		dst.DrawRect(g.toScreen(a.Pos(), a.Size(), cw, ch), r, color)
	}
}

func actorLook(kind ActorKind, status Status) (rune, core.Color) {
	switch kind {
	case KindPlayer:
		switch status {
		case StatusWon:
			return PlayerChar, core.ColorBrightGreen
		case StatusLost:
			return PlayerChar, core.ColorBrightRed
		}
		return PlayerChar, core.ColorCyan
	case KindCoin:
		return CoinChar, core.ColorBrightYellow
	case KindLava:
		return LavaActorChar, core.ColorOrange
	default:
		return '?', core.ColorDefault
	}
}

// toScreen converts a box in level units to a screen rectangle of at least
// one cell, shifted by the viewport and the HUD.
func (g *Game) toScreen(pos, size core.Vec, cw, ch int) core.Rect {
	x := int(math.Floor(pos.X * float64(cw)))
	y := int(math.Floor(pos.Y * float64(ch)))
	w := core.Max(1, int(math.Round(size.X*float64(cw))))
	h := core.Max(1, int(math.Round(size.Y*float64(ch))))
	return core.NewRect(x-g.view.Left, y-g.view.Top+hudRows, w, h)
}

// drawHUD renders the status line.
func (g *Game) drawHUD(dst *core.Screen) {
	left := fmt.Sprintf(" %s  Coins: %d/%d  Time: %.1fs ",
		g.name, g.coins-g.state.Count(KindCoin), g.coins, g.elapsed)
	dst.DrawText(0, 0, left)

	status := fmt.Sprintf(" %s ", g.state.Status())
	color := core.ColorGray
	switch g.state.Status() {
	case StatusWon:
		color = core.ColorBrightGreen
	case StatusLost:
		color = core.ColorBrightRed
	}
	dst.DrawTextColored(dst.Width()-len(status)-1, 0, status, color)
}

// drawCenteredMessage draws a message box in the center of the screen.
func drawCenteredMessage(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	boxW := core.Max(len(title), len(subtitle)) + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	dst.DrawRect(core.NewRect(boxX, boxY, boxW, boxH), ' ', core.ColorDefault)
	dst.DrawBox(core.NewRect(boxX, boxY, boxW, boxH))

	dst.DrawText(boxX+(boxW-len(title))/2, boxY+1, title)
	dst.DrawText(boxX+(boxW-len(subtitle))/2, boxY+3, subtitle)
}
