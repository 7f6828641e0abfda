package sketch

import (
	"fmt"
	"io"
	"time"
)

// Params are the knobs a sketch run is parameterized by. Zero fields are
// filled in from the sketch's defaults, so callers only set what they
// want to override.
type Params struct {
	Width      int
	Height     int
	Iterations int
	Seed       int64
	Background Color
	Palette    []Color
}

// Sketch is a named generative drawing routine together with its default
// parameters. Draw renders to a raster canvas; SVG, when non-nil,
// renders a vector variant to a writer.
type Sketch struct {
	Name     string
	Defaults Params

	Draw func(*Canvas, *Rand, Params) error
	SVG  func(io.Writer, *Rand, Params) error
}

// params merges zero-valued overrides with the sketch defaults.
func (s *Sketch) params(p Params) Params {
	d := s.Defaults
	if p.Width <= 0 {
		p.Width = d.Width
	}
	if p.Height <= 0 {
		p.Height = d.Height
	}
	if p.Iterations <= 0 {
		p.Iterations = d.Iterations
	}
	if p.Seed == 0 {
		p.Seed = d.Seed
	}
	if p.Background == (Color{}) {
		p.Background = d.Background
	}
	if len(p.Palette) == 0 {
		p.Palette = d.Palette
	}
	// A still-zero seed is resolved here, not in NewRand, so the seed
	// that gets logged is the one that actually drove the run and can
	// be replayed.
	if p.Seed == 0 {
		p.Seed = time.Now().UnixNano()
	}
	return p
}

// SupportsSVG reports whether the sketch has a vector renderer.
func (s *Sketch) SupportsSVG() bool {
	return s.SVG != nil
}

// Render runs the sketch and returns the finished canvas. The caller
// decides what to do with it (SavePNG, EncodePNG, Image).
func (s *Sketch) Render(p Params) (*Canvas, error) {
	if s.Draw == nil {
		return nil, fmt.Errorf("sketch: %q has no raster renderer", s.Name)
	}
	p = s.params(p)

	c, err := New(p.Width, p.Height)
	if err != nil {
		return nil, err
	}
	Logger().Info("rendering sketch",
		"name", s.Name,
		"size", fmt.Sprintf("%dx%d", p.Width, p.Height),
		"seed", p.Seed,
		"iterations", p.Iterations)

	if p.Background != (Color{}) {
		c.SetBackground(p.Background)
	}
	if err := s.Draw(c, NewRand(p.Seed), p); err != nil {
		return nil, fmt.Errorf("sketch: rendering %q: %w", s.Name, err)
	}
	if err := c.Err(); err != nil {
		return nil, fmt.Errorf("sketch: rendering %q: %w", s.Name, err)
	}
	return c, nil
}

// RenderSVG runs the sketch's vector renderer, writing SVG to w.
func (s *Sketch) RenderSVG(w io.Writer, p Params) error {
	if s.SVG == nil {
		return fmt.Errorf("sketch: %q has no SVG renderer", s.Name)
	}
	p = s.params(p)
	if p.Width <= 0 || p.Height <= 0 {
		return fmt.Errorf("sketch: invalid canvas size %dx%d", p.Width, p.Height)
	}
	Logger().Info("rendering sketch as SVG",
		"name", s.Name,
		"size", fmt.Sprintf("%dx%d", p.Width, p.Height),
		"seed", p.Seed)
	if err := s.SVG(w, NewRand(p.Seed), p); err != nil {
		return fmt.Errorf("sketch: rendering %q: %w", s.Name, err)
	}
	return nil
}
