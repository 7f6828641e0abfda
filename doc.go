// Package sketch is a small generative-art scripting layer on top of the
// gg drawing library.
//
// It borrows its vocabulary from classic desktop sketching environments:
// a Canvas with a current fill, stroke, and font; an accumulated affine
// transform mutated by Translate, Rotate, Scale, and Skew; and a state
// stack so a block of drawing can run inside Push/Pop (or With) without
// leaking its transforms to later primitives.
//
// Two details matter for generative work and are modeled explicitly:
//
//   - Transform modes. In Center mode (the default) rotation and scaling
//     apply about the center of each primitive's own bounds, so a glyph
//     spins in place wherever it lands. In Corner mode they apply about
//     the canvas origin, so successive transforms compound spatially --
//     the classic "forgot to pop" drift that accumulating sketches rely on.
//
//   - Rotation units. Rotate reads its argument in the current unit:
//     Degrees (default), Radians, or Percent of a full turn.
//
// Rasterization, font shaping, and the transform pipeline all belong to
// github.com/gogpu/gg; this package only composes its public API.
//
//	c, _ := sketch.New(800, 800)
//	c.SetBackground(sketch.Hex("#fdfdfb"))
//	rng := sketch.NewRand(42)
//	for i := 0; i < 100; i++ {
//		c.With(func() {
//			c.SetFill(rng.ColorAlpha(0.4, 0.9))
//			c.Translate(rng.Uniform(0, 800), rng.Uniform(0, 800))
//			c.Rotate(rng.Uniform(0, 360))
//			s := rng.Uniform(0.5, 1.5)
//			c.Scale(s, s)
//			c.DrawText("A", 0, 0)
//		})
//	}
//	err := c.SavePNG("letters.png")
package sketch
