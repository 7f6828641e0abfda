// Package sketches holds the built-in generative sketches and a registry
// for looking them up by name.
package sketches

import (
	"maps"
	"slices"

	"github.com/gogpu/sketch"
)

var registry = map[string]*sketch.Sketch{}

func register(s *sketch.Sketch) {
	if _, dup := registry[s.Name]; dup {
		panic("sketches: duplicate sketch name " + s.Name)
	}
	registry[s.Name] = s
}

func init() {
	register(Letters)
	register(Stars)
	register(Arrows)
	register(Confetti)
}

// Lookup returns the sketch registered under name.
func Lookup(name string) (*sketch.Sketch, bool) {
	s, ok := registry[name]
	return s, ok
}

// Names returns the registered sketch names, sorted.
func Names() []string {
	return slices.Sorted(maps.Keys(registry))
}

// defaultPalette is used by palette-driven sketches when the run
// configuration does not supply one.
var defaultPalette = []sketch.Color{
	sketch.Hex("#264653"),
	sketch.Hex("#2a9d8f"),
	sketch.Hex("#e9c46a"),
	sketch.Hex("#f4a261"),
	sketch.Hex("#e76f51"),
}

func palette(p sketch.Params) []sketch.Color {
	if len(p.Palette) > 0 {
		return p.Palette
	}
	return defaultPalette
}
