package config

import (
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Launch.AngleDeg != 45 {
		t.Errorf("expected default angle 45, got %f", cfg.Launch.AngleDeg)
	}
	if !cfg.Launch.AirResistance {
		t.Error("air resistance should default on")
	}
	if cfg.Physics.Dt <= 0 {
		t.Error("dt should be positive")
	}
	if cfg.FPS <= 0 {
		t.Error("fps should be positive")
	}
}

func TestParseFloatOr(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		def      float64
		expected float64
	}{
		{"valid", "3.5", 0, 3.5},
		{"negative", "-12", 0, -12},
		{"integer", "7", 0, 7},
		{"empty falls back", "", 0, 0},
		{"garbage falls back", "abc", 1.5, 1.5},
		{"trailing dot ok", "4.", 0, 4},
		{"lone minus falls back", "-", 9, 9},
		{"double dot falls back", "1.2.3", 2, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ParseFloatOr(tt.input, tt.def); got != tt.expected {
				t.Errorf("ParseFloatOr(%q, %f) = %f, want %f", tt.input, tt.def, got, tt.expected)
			}
		})
	}
}

func TestGetPreset(t *testing.T) {
	preset := GetPreset("classic")
	if preset == nil {
		t.Fatal("expected preset, got nil")
	}
	if preset.AngleDeg != 45 {
		t.Errorf("expected angle 45, got %f", preset.AngleDeg)
	}

	if GetPreset("nonexistent") != nil {
		t.Error("expected nil for nonexistent preset")
	}
}

func TestListPresets(t *testing.T) {
	names := ListPresets()
	if len(names) == 0 {
		t.Fatal("expected presets")
	}
	for i := 1; i < len(names); i++ {
		if names[i] < names[i-1] {
			t.Error("preset names not sorted")
		}
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "trajlab.yaml")

	cfg := DefaultConfig()
	cfg.Launch.Speed = 42.5
	cfg.Launch.AirResistance = false
	cfg.Physics.Gravity = 1.62 // moon

	if err := Save(path, cfg); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}

	if loaded.Launch.Speed != 42.5 {
		t.Errorf("expected speed 42.5, got %f", loaded.Launch.Speed)
	}
	if loaded.Launch.AirResistance {
		t.Error("expected air resistance off")
	}
	if loaded.Physics.Gravity != 1.62 {
		t.Errorf("expected gravity 1.62, got %f", loaded.Physics.Gravity)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load("/nonexistent/trajlab.yaml"); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestParamsConversion(t *testing.T) {
	l := LaunchConfig{AngleDeg: 30, Speed: 10, Mass: 2, Height: 5, AirResistance: true}
	p := l.Params()
	if p.AngleDeg != 30 || p.Speed != 10 || p.Mass != 2 || p.Height != 5 || !p.AirResistance {
		t.Errorf("conversion mismatch: %+v", p)
	}
}
