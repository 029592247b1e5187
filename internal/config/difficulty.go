package config

import "fmt"

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// ParsePreset converts a CLI value into a preset. Empty means "use the config as is".
func ParsePreset(s string) (DifficultyPreset, error) {
	switch DifficultyPreset(s) {
	case "", DifficultyEasy, DifficultyNormal, DifficultyHard:
		return DifficultyPreset(s), nil
	default:
		return "", fmt.Errorf("unknown difficulty %q (want easy, normal or hard)", s)
	}
}

// HazardScaleForPreset returns the hazard speed multiplier for a preset.
func HazardScaleForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.75
	case DifficultyHard:
		return 1.5
	default:
		return 1.0
	}
}

// ApplyPlatformerPreset modifies the config based on a difficulty preset.
// Only moving lava is affected; player physics stay as configured.
func ApplyPlatformerPreset(cfg *PlatformerConfig, preset DifficultyPreset) {
	scale := HazardScaleForPreset(preset)
	cfg.Hazards.HorizontalSpeed *= scale
	cfg.Hazards.VerticalSpeed *= scale
	cfg.Hazards.DripSpeed *= scale
}
