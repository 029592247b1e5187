package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"
)

func TestEmbeddedDefaultsMatchBuiltin(t *testing.T) {
	cfg, err := parse(DefaultYAML())
	if err != nil {
		t.Fatalf("embedded YAML failed to parse: %v", err)
	}
	if cfg != DefaultPlatformerConfig() {
		t.Errorf("embedded YAML = %+v, expected %+v", cfg, DefaultPlatformerConfig())
	}
}

func TestLoadPlatformerCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	data := []byte("physics:\n  gravity: 12.5\nview:\n  cell_width: 3\n")
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, source, err := LoadPlatformer(path)
	if err != nil {
		t.Fatalf("LoadPlatformer() failed: %v", err)
	}
	if source != path {
		t.Errorf("source = %q, expected %q", source, path)
	}
	if cfg.Physics.Gravity != 12.5 {
		t.Errorf("gravity = %v, expected 12.5", cfg.Physics.Gravity)
	}
	if cfg.View.CellWidth != 3 {
		t.Errorf("cell_width = %d, expected 3", cfg.View.CellWidth)
	}
	// Unset keys keep defaults
	if cfg.Physics.JumpSpeed != DefaultPlatformerConfig().Physics.JumpSpeed {
		t.Errorf("jump_speed = %v, expected default", cfg.Physics.JumpSpeed)
	}
}

func TestLoadPlatformerErrors(t *testing.T) {
	dir := t.TempDir()

	tests := []struct {
		name    string
		content string
		wantErr string
	}{
		{"bad yaml", "physics: [", "failed to parse"},
		{"negative gravity", "physics:\n  gravity: -1\n", "physics.gravity must be positive"},
		{"margin too wide", "view:\n  margin: 0.6\n", "view.margin"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			path := filepath.Join(dir, strings.ReplaceAll(tc.name, " ", "_")+".yaml")
			if err := os.WriteFile(path, []byte(tc.content), 0o600); err != nil {
				t.Fatal(err)
			}
			_, _, err := LoadPlatformer(path)
			if err == nil {
				t.Fatal("expected error, got nil")
			}
			if !strings.Contains(err.Error(), tc.wantErr) {
				t.Errorf("error = %q, expected it to mention %q", err, tc.wantErr)
			}
		})
	}

	if _, _, err := LoadPlatformer(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("missing custom file should be an error")
	}
}

func TestApplyPlatformerPreset(t *testing.T) {
	tests := []struct {
		preset DifficultyPreset
		drip   float64
	}{
		{DifficultyEasy, 2.25},
		{DifficultyNormal, 3},
		{DifficultyHard, 4.5},
		{"", 3},
	}

	for _, tc := range tests {
		cfg := DefaultPlatformerConfig()
		ApplyPlatformerPreset(&cfg, tc.preset)
		if cfg.Hazards.DripSpeed != tc.drip {
			t.Errorf("preset %q: drip speed = %v, expected %v", tc.preset, cfg.Hazards.DripSpeed, tc.drip)
		}
		if cfg.Physics != DefaultPlatformerConfig().Physics {
			t.Errorf("preset %q should not touch player physics", tc.preset)
		}
	}
}

func TestParsePreset(t *testing.T) {
	for _, s := range []string{"", "easy", "normal", "hard"} {
		if _, err := ParsePreset(s); err != nil {
			t.Errorf("ParsePreset(%q) failed: %v", s, err)
		}
	}
	if _, err := ParsePreset("fixed"); err == nil {
		t.Error("ParsePreset(fixed) should fail")
	}
}

func TestMarshalRoundTripsThroughParse(t *testing.T) {
	cfg := DefaultPlatformerConfig()
	cfg.Physics.Gravity = 20

	data, err := cfg.Marshal()
	if err != nil {
		t.Fatalf("Marshal() failed: %v", err)
	}
	var raw map[string]any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		t.Fatalf("Marshal() produced invalid YAML: %v", err)
	}
	for _, section := range []string{"physics", "hazards", "view", "input"} {
		if _, ok := raw[section]; !ok {
			t.Errorf("marshaled config missing section %q", section)
		}
	}
}
