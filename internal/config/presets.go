package config

import "sort"

// Presets are named launch setups selectable from the CLI.
var Presets = map[string]LaunchConfig{
	"classic": {
		AngleDeg: 45, Speed: 25, Mass: 1, Height: 0, AirResistance: true,
	},
	"vacuum": {
		AngleDeg: 45, Speed: 25, Mass: 1, Height: 0, AirResistance: false,
	},
	"lob": {
		AngleDeg: 75, Speed: 15, Mass: 0.5, Height: 0, AirResistance: true,
	},
	"mortar": {
		AngleDeg: 80, Speed: 60, Mass: 5, Height: 0, AirResistance: true,
	},
	"flat": {
		AngleDeg: 10, Speed: 50, Mass: 1, Height: 2, AirResistance: true,
	},
	"bowling-ball": {
		AngleDeg: 40, Speed: 30, Mass: 7.26, Height: 1.5, AirResistance: true,
	},
	"cliff-drop": {
		AngleDeg: 0, Speed: 12, Mass: 1, Height: 40, AirResistance: true,
	},
}

// GetPreset returns the named preset, or nil when unknown.
func GetPreset(name string) *LaunchConfig {
	preset, ok := Presets[name]
	if !ok {
		return nil
	}
	return &preset
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
