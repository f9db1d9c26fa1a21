package config

import "sort"

// Presets are complete render setups keyed by name. The classic preset
// reproduces the textbook full-set view; the others frame well known
// zoom targets.
var Presets = map[string]*Config{
	"classic": {
		MaxIterations: 1024, EscapeRadius: 1000,
		CenterRe: -0.75, CenterIm: 0, Width: 3.5,
		ImageWidth: 2048, ImageHeight: 2048,
		Smooth: true, Palette: "plasma", PaletteSize: 256,
		Supersample: 1, TileSize: 64, Output: "classic.png",
	},
	"misiurewicz": {
		MaxIterations: 1024, EscapeRadius: 1000,
		CenterRe: -0.7435, CenterIm: 0.1314, Width: 0.002,
		ImageWidth: 2048, ImageHeight: 2048,
		Smooth: true, Palette: "plasma", PaletteSize: 256,
		Supersample: 2, TileSize: 64, Output: "misiurewicz.png",
	},
	"seahorse": {
		MaxIterations: 2048, EscapeRadius: 1000,
		CenterRe: -0.75, CenterIm: 0.1, Width: 0.1,
		ImageWidth: 1920, ImageHeight: 1080,
		Smooth: true, Palette: "ocean", PaletteSize: 256,
		Supersample: 2, TileSize: 64, Output: "seahorse.png",
	},
	"elephant": {
		MaxIterations: 2048, EscapeRadius: 1000,
		CenterRe: -1.8, CenterIm: -0.06, Width: 0.1,
		ImageWidth: 1920, ImageHeight: 1080,
		Smooth: true, Palette: "fire", PaletteSize: 256,
		Supersample: 2, TileSize: 64, Output: "elephant.png",
	},
	"minibrot": {
		MaxIterations: 4096, EscapeRadius: 1000,
		CenterRe: -1.74825, CenterIm: -0.02275, Width: 0.0015,
		ImageWidth: 1600, ImageHeight: 1600,
		Smooth: true, Palette: "gray", PaletteSize: 512,
		Supersample: 2, TileSize: 64, Output: "minibrot.png",
	},
}

// GetPreset returns a copy of the named preset, or nil when the name is
// unknown. Copies keep callers from mutating the shared table.
func GetPreset(name string) *Config {
	preset, ok := Presets[name]
	if !ok {
		return nil
	}
	cfg := *preset
	return &cfg
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
