package sketches

import "github.com/gogpu/sketch"

// Stars is an accumulating spiral of stars. It switches the canvas to
// corner mode and deliberately never opens a transform context inside
// the loop, so every iteration's translate/rotate/scale compounds onto
// the previous one and the stars drift, turn, and shrink their way
// across the canvas.
var Stars = &sketch.Sketch{
	Name: "stars",
	Defaults: sketch.Params{
		Width:      900,
		Height:     900,
		Iterations: 160,
		Background: sketch.Hex("#101018"),
	},
	Draw: drawStars,
}

func drawStars(c *sketch.Canvas, rng *sketch.Rand, p sketch.Params) error {
	c.SetTransformMode(sketch.Corner)
	c.Translate(float64(p.Width)/2, float64(p.Height)/2)

	for i := 0; i < p.Iterations; i++ {
		// No Push/Pop here: the drift is the piece.
		c.SetFill(sketch.HSVA(rng.Uniform(0, 360), 0.65, 0.95, rng.Uniform(0.25, 0.7)))
		c.Translate(rng.Uniform(-40, 40), rng.Uniform(-40, 40))
		c.Rotate(rng.Uniform(5, 25))
		s := rng.Uniform(0.955, 0.995)
		c.Scale(s, s)
		c.DrawStar(0, 0, rng.Between(5, 9), rng.Uniform(60, 150), 0)
	}
	return c.Err()
}
