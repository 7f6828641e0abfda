package sketches

import (
	"bytes"
	"strings"
	"testing"

	"github.com/gogpu/sketch"
)

func TestRegistry(t *testing.T) {
	names := Names()
	want := []string{"arrows", "confetti", "letters", "stars"}
	if len(names) != len(want) {
		t.Fatalf("Names() = %v, want %v", names, want)
	}
	for i, n := range want {
		if names[i] != n {
			t.Errorf("Names()[%d] = %q, want %q", i, names[i], n)
		}
	}

	for _, n := range names {
		s, ok := Lookup(n)
		if !ok || s == nil {
			t.Errorf("Lookup(%q) failed", n)
			continue
		}
		if s.Name != n {
			t.Errorf("sketch registered under %q reports name %q", n, s.Name)
		}
	}

	if _, ok := Lookup("nope"); ok {
		t.Error("Lookup of unknown name succeeded")
	}
}

func TestBuiltinsRender(t *testing.T) {
	// Small canvases and few iterations keep this fast while still
	// running every sketch end to end through the raster pipeline.
	for _, name := range Names() {
		t.Run(name, func(t *testing.T) {
			s, _ := Lookup(name)
			c, err := s.Render(sketch.Params{
				Width:      120,
				Height:     120,
				Iterations: 8,
				Seed:       1,
			})
			if err != nil {
				t.Fatalf("Render: %v", err)
			}
			if c.Width() != 120 || c.Height() != 120 {
				t.Errorf("canvas size %dx%d", c.Width(), c.Height())
			}

			var buf bytes.Buffer
			if err := c.EncodePNG(&buf); err != nil {
				t.Fatalf("EncodePNG: %v", err)
			}
			if buf.Len() == 0 {
				t.Error("empty PNG output")
			}
		})
	}
}

func TestConfettiSVG(t *testing.T) {
	s, _ := Lookup("confetti")
	if !s.SupportsSVG() {
		t.Fatal("confetti lost its SVG renderer")
	}

	var buf bytes.Buffer
	err := s.RenderSVG(&buf, sketch.Params{Width: 200, Height: 150, Iterations: 10, Seed: 3})
	if err != nil {
		t.Fatal(err)
	}

	out := buf.String()
	for _, want := range []string{"<svg", "</svg>", "<rect", "transform="} {
		if !strings.Contains(out, want) {
			t.Errorf("SVG output missing %q", want)
		}
	}
}

func TestConfettiSVGDeterministic(t *testing.T) {
	s, _ := Lookup("confetti")
	p := sketch.Params{Width: 200, Height: 150, Iterations: 10, Seed: 5}

	var a, b bytes.Buffer
	if err := s.RenderSVG(&a, p); err != nil {
		t.Fatal(err)
	}
	if err := s.RenderSVG(&b, p); err != nil {
		t.Fatal(err)
	}
	if a.String() != b.String() {
		t.Error("same seed produced different SVG output")
	}
}

func TestOnlyConfettiHasSVG(t *testing.T) {
	for _, name := range Names() {
		s, _ := Lookup(name)
		if got, want := s.SupportsSVG(), name == "confetti"; got != want {
			t.Errorf("%s.SupportsSVG() = %v, want %v", name, got, want)
		}
	}
}
