package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config sources reported by LoadPlatformer.
const (
	SourceEmbedded = "embedded"
	SourceBuiltin  = "builtin"
)

// LoadPlatformer loads the platformer configuration and reports where it came from.
// Search order: customPath -> ~/.platformer/configs/platformer.yaml -> ./configs/platformer.yaml -> embedded default.
// Keys missing from a file keep their default values.
func LoadPlatformer(customPath string) (PlatformerConfig, string, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return PlatformerConfig{}, "", fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := parse(data)
		if err != nil {
			return PlatformerConfig{}, "", fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, customPath, nil
	}

	// Try user config directory, then local configs directory
	candidates := []string{userConfigPath("platformer.yaml"), filepath.Join("configs", "platformer.yaml")}
	for _, path := range candidates {
		if path == "" {
			continue
		}
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		if cfg, err := parse(data); err == nil {
			return cfg, path, nil
		}
	}

	// Use embedded default YAML
	cfg, err := parse(defaultPlatformerYAML)
	if err != nil {
		return DefaultPlatformerConfig(), SourceBuiltin, nil // Fallback to hardcoded if embed fails
	}
	return cfg, SourceEmbedded, nil
}

// parse decodes YAML over the defaults and validates the result.
func parse(data []byte) (PlatformerConfig, error) {
	cfg := DefaultPlatformerConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return PlatformerConfig{}, err
	}
	if err := cfg.Validate(); err != nil {
		return PlatformerConfig{}, err
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".platformer", "configs", filename)
}

// Validate rejects values the simulation cannot run with.
func (c PlatformerConfig) Validate() error {
	var errs []error
	positive := []struct {
		name string
		val  float64
	}{
		{"physics.player_x_speed", c.Physics.PlayerXSpeed},
		{"physics.gravity", c.Physics.Gravity},
		{"physics.jump_speed", c.Physics.JumpSpeed},
		{"physics.max_step", c.Physics.MaxStep},
		{"view.cell_width", float64(c.View.CellWidth)},
		{"view.cell_height", float64(c.View.CellHeight)},
		{"input.hold_ms", float64(c.Input.HoldMS)},
	}
	for _, p := range positive {
		if p.val <= 0 {
			errs = append(errs, fmt.Errorf("%s must be positive, got %v", p.name, p.val))
		}
	}

	nonNegative := []struct {
		name string
		val  float64
	}{
		{"physics.wobble_speed", c.Physics.WobbleSpeed},
		{"physics.wobble_dist", c.Physics.WobbleDist},
		{"hazards.horizontal_speed", c.Hazards.HorizontalSpeed},
		{"hazards.vertical_speed", c.Hazards.VerticalSpeed},
		{"hazards.drip_speed", c.Hazards.DripSpeed},
	}
	for _, p := range nonNegative {
		if p.val < 0 {
			errs = append(errs, fmt.Errorf("%s must not be negative, got %v", p.name, p.val))
		}
	}

	if c.View.Margin < 0 || c.View.Margin >= 0.5 {
		errs = append(errs, fmt.Errorf("view.margin must be in [0, 0.5), got %v", c.View.Margin))
	}

	return errors.Join(errs...)
}

// Marshal renders the configuration as YAML.
func (c PlatformerConfig) Marshal() ([]byte, error) {
	return yaml.Marshal(c)
}
