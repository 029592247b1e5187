package main

import (
	"github.com/vovakirdan/tui-platformer/internal/config"
)

// loadSettings resolves the game configuration from the config search path
// and applies a difficulty preset on top.
func loadSettings(configPath, difficulty string) (config.PlatformerConfig, string, error) {
	preset, err := config.ParsePreset(difficulty)
	if err != nil {
		return config.PlatformerConfig{}, "", err
	}

	cfg, source, err := config.LoadPlatformer(configPath)
	if err != nil {
		return config.PlatformerConfig{}, "", err
	}
	config.ApplyPlatformerPreset(&cfg, preset)
	return cfg, source, nil
}
