package sketches

import (
	"fmt"
	"io"

	svg "github.com/ajstarks/svgo"
	"github.com/gogpu/gg"

	"github.com/gogpu/sketch"
)

// Confetti scatters translucent rectangles, ovals, polygons, and stars
// with palette colors. It exercises every primitive and is the one
// built-in sketch with a vector renderer, since its shapes map directly
// onto SVG elements.
var Confetti = &sketch.Sketch{
	Name: "confetti",
	Defaults: sketch.Params{
		Width:      800,
		Height:     600,
		Iterations: 250,
		Background: sketch.Hex("#ffffff"),
	},
	Draw: drawConfetti,
	SVG:  drawConfettiSVG,
}

func drawConfetti(c *sketch.Canvas, rng *sketch.Rand, p sketch.Params) error {
	pal := palette(p)
	w := float64(p.Width)
	h := float64(p.Height)

	for i := 0; i < p.Iterations; i++ {
		c.With(func() {
			c.SetFill(rng.From(pal).WithAlpha(rng.Uniform(0.3, 0.9)))
			c.Translate(rng.Uniform(0, w), rng.Uniform(0, h))
			c.Rotate(rng.Uniform(0, 360))

			size := rng.Uniform(8, 36)
			switch rng.Between(0, 3) {
			case 0:
				c.DrawRect(-size/2, -size/2, size, size)
			case 1:
				c.DrawOval(-size/2, -size/2, size, size)
			case 2:
				c.DrawPolygon(rng.Between(3, 6), 0, 0, size/2, 0)
			default:
				c.DrawStar(0, 0, rng.Between(5, 7), size/2, 0)
			}
		})
	}
	return c.Err()
}

// drawConfettiSVG is the vector twin of drawConfetti. Scoped transforms
// become <g transform="..."> groups; shape picks and parameters use the
// same random stream, so PNG and SVG output of one seed match.
func drawConfettiSVG(w io.Writer, rng *sketch.Rand, p sketch.Params) error {
	canvas := svg.New(w)
	canvas.Start(p.Width, p.Height)
	canvas.Rect(0, 0, p.Width, p.Height, fillStyle(p.Background, 1))

	pal := palette(p)
	fw := float64(p.Width)
	fh := float64(p.Height)

	for i := 0; i < p.Iterations; i++ {
		col := rng.From(pal)
		alpha := rng.Uniform(0.3, 0.9)
		x := rng.Uniform(0, fw)
		y := rng.Uniform(0, fh)
		angle := rng.Uniform(0, 360)
		style := fillStyle(col, alpha)

		canvas.Gtransform(fmt.Sprintf("translate(%.2f,%.2f) rotate(%.2f)", x, y, angle))
		size := rng.Uniform(8, 36)
		switch rng.Between(0, 3) {
		case 0:
			canvas.Rect(round(-size/2), round(-size/2), round(size), round(size), style)
		case 1:
			canvas.Circle(0, 0, round(size/2), style)
		case 2:
			xs, ys := polygonInts(sketch.PolygonPoints(rng.Between(3, 6), 0, 0, size/2, 0))
			canvas.Polygon(xs, ys, style)
		default:
			xs, ys := polygonInts(sketch.StarPoints(0, 0, rng.Between(5, 7), size/2, 0))
			canvas.Polygon(xs, ys, style)
		}
		canvas.Gend()
	}

	canvas.End()
	return nil
}

func fillStyle(c sketch.Color, alpha float64) string {
	r, g, b, _ := c.Bytes()
	return fmt.Sprintf("fill:rgb(%d,%d,%d);fill-opacity:%.2f", r, g, b, alpha)
}

func round(v float64) int {
	if v < 0 {
		return int(v - 0.5)
	}
	return int(v + 0.5)
}

func polygonInts(pts []gg.Point) (xs, ys []int) {
	xs = make([]int, len(pts))
	ys = make([]int, len(pts))
	for i, p := range pts {
		xs[i] = round(p.X)
		ys[i] = round(p.Y)
	}
	return xs, ys
}
