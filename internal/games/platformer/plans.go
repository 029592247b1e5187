package platformer

import (
	"fmt"
	"os"
)

// DefaultPlanName labels the built-in level.
const DefaultPlanName = "basics"

// DefaultPlan is the built-in level: a short walk past static lava, two
// coins on a ledge and one horizontally bouncing lava block.
const DefaultPlan = `
......................
..#................#..
..#..............=.#..
..#.........o.o....#..
..#.@......#####...#..
..#####............#..
......#++++++++++++#..
......##############..
......................`

// LoadPlan reads a level plan from a text file.
func LoadPlan(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read level %s: %w", path, err)
	}
	return string(data), nil
}
