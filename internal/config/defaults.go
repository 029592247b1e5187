package config

import (
	_ "embed"
)

//go:embed defaults/platformer.yaml
var defaultPlatformerYAML []byte

// DefaultPlatformerConfig returns the default platformer configuration.
func DefaultPlatformerConfig() PlatformerConfig {
	return PlatformerConfig{
		Physics: Physics{
			PlayerXSpeed: 7,
			Gravity:      30,
			JumpSpeed:    17,
			WobbleSpeed:  8,
			WobbleDist:   0.07,
			MaxStep:      0.1,
		},
		Hazards: Hazards{
			HorizontalSpeed: 2,
			VerticalSpeed:   2,
			DripSpeed:       3,
		},
		View: View{
			CellWidth:  2, // Terminal cells are roughly twice as tall as wide
			CellHeight: 1,
			Margin:     0.3333,
		},
		Input: Input{
			HoldMS: 180,
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultPlatformerYAML
}
