package sketches

import "github.com/gogpu/sketch"

// Arrows lays out a loose grid of arrows with jittered rotation and
// palette fills, mixing the straight and bent outlines.
var Arrows = &sketch.Sketch{
	Name: "arrows",
	Defaults: sketch.Params{
		Width:      800,
		Height:     800,
		Iterations: 1, // unused; the grid is derived from the canvas size
		Background: sketch.Hex("#f4f1ea"),
	},
	Draw: drawArrows,
}

func drawArrows(c *sketch.Canvas, rng *sketch.Rand, p sketch.Params) error {
	const cell = 100.0
	pal := palette(p)

	for y := cell / 2; y < float64(p.Height); y += cell {
		for x := cell / 2; x < float64(p.Width); x += cell {
			c.With(func() {
				c.SetFill(rng.From(pal))
				c.Translate(x+rng.Uniform(-10, 10), y+rng.Uniform(-10, 10))
				c.Rotate(rng.Uniform(0, 360))
				style := sketch.ArrowNormal
				if rng.Chance(0.3) {
					style = sketch.ArrowFortyFive
				}
				c.DrawArrow(0, 0, rng.Uniform(40, 80), style)
			})
		}
	}
	return c.Err()
}
