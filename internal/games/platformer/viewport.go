package platformer

import "math"

// Viewport is the visible window onto the level, in screen cells.
type Viewport struct {
	Left, Top int
}

// Follow scrolls the viewport so that the point (cx, cy) stays at least
// margin*width columns and margin*height rows away from the edges, then
// clamps it to the world extent. A world smaller than the view is pinned
// to the top-left.
func (v Viewport) Follow(cx, cy float64, width, height, worldW, worldH int, margin float64) Viewport {
	v.Left = follow(v.Left, cx, width, worldW, margin)
	v.Top = follow(v.Top, cy, height, worldH, margin)
	return v
}

func follow(start int, center float64, size, world int, margin float64) int {
	m := float64(size) * margin
	lo := float64(start)
	hi := lo + float64(size)

	switch {
	case center < lo+m:
		lo = center - m
	case center > hi-m:
		lo = center + m - float64(size)
	}

	maxStart := world - size
	if maxStart < 0 {
		maxStart = 0
	}
	pos := int(math.Floor(lo))
	if pos < 0 {
		return 0
	}
	if pos > maxStart {
		return maxStart
	}
	return pos
}
