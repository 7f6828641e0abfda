package sketches

import "github.com/gogpu/sketch"

// Letters scatters large translucent glyphs across the canvas. Each
// iteration runs in its own transform context: a random fill, a random
// position, a random rotation, and a random uniform scale, then a single
// random uppercase letter. Because the context is scoped, every glyph
// starts from a clean slate.
var Letters = &sketch.Sketch{
	Name: "letters",
	Defaults: sketch.Params{
		Width:      800,
		Height:     800,
		Iterations: 120,
		Background: sketch.Hex("#fdfdfb"),
	},
	Draw: drawLetters,
}

var letterGlyphs = []rune("ABCDEFGHIJKLMNOPQRSTUVWXYZ")

func drawLetters(c *sketch.Canvas, rng *sketch.Rand, p sketch.Params) error {
	c.SetFontSize(180)
	w := float64(p.Width)
	h := float64(p.Height)

	for i := 0; i < p.Iterations; i++ {
		c.With(func() {
			c.SetFill(rng.ColorAlpha(0.35, 0.9))
			c.Translate(rng.Uniform(0, w), rng.Uniform(0, h))
			c.Rotate(rng.Uniform(0, 360))
			s := rng.Uniform(0.3, 1.6)
			c.Scale(s, s)
			g := sketch.Choice(rng, letterGlyphs)
			c.DrawText(string(g), 0, 0)
		})
	}
	return c.Err()
}
