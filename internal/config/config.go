// Package config provides YAML-based configuration loading and difficulty
// presets for the platformer.
package config

// PlatformerConfig contains all tunable constants of the platformer.
type PlatformerConfig struct {
	Physics Physics `yaml:"physics"`
	Hazards Hazards `yaml:"hazards"`
	View    View    `yaml:"view"`
	Input   Input   `yaml:"input"`
}

// Physics defines the actor motion constants, in level units and seconds.
type Physics struct {
	PlayerXSpeed float64 `yaml:"player_x_speed"` // Horizontal run speed
	Gravity      float64 `yaml:"gravity"`        // Downward acceleration
	JumpSpeed    float64 `yaml:"jump_speed"`     // Upward speed applied on jump
	WobbleSpeed  float64 `yaml:"wobble_speed"`   // Coin phase advance per second
	WobbleDist   float64 `yaml:"wobble_dist"`    // Coin vertical wobble amplitude
	MaxStep      float64 `yaml:"max_step"`       // Upper bound on one frame's elapsed time
}

// Hazards defines the initial speeds of moving lava.
type Hazards struct {
	HorizontalSpeed float64 `yaml:"horizontal_speed"` // '=' bounces left and right
	VerticalSpeed   float64 `yaml:"vertical_speed"`   // '|' bounces up and down
	DripSpeed       float64 `yaml:"drip_speed"`       // 'v' falls and restarts from its spawn
}

// View defines how level units map onto terminal cells.
type View struct {
	CellWidth  int     `yaml:"cell_width"`  // Columns per level unit
	CellHeight int     `yaml:"cell_height"` // Rows per level unit
	Margin     float64 `yaml:"margin"`      // Fraction of the viewport kept around the player
}

// Input defines how terminal key presses become held keys.
type Input struct {
	HoldMS int `yaml:"hold_ms"` // A key stays held this long after its last press or repeat
}
