package sketch

import (
	"math"

	"github.com/gogpu/gg"
)

// ArrowStyle selects the arrow outline drawn by DrawArrow.
type ArrowStyle int

const (
	// ArrowNormal is a straight arrow pointing right at (x, y).
	ArrowNormal ArrowStyle = iota

	// ArrowFortyFive is a bent arrow pointing up and to the right.
	ArrowFortyFive
)

// RegularizedInner returns the inner star radius that makes the star's
// edges collinear across points, given the outer radius. For very low
// point counts the formula goes negative; callers wanting a visually
// plain star should use points >= 5.
func RegularizedInner(points int, outer float64) float64 {
	p := float64(points)
	return outer * math.Cos(Tau/p) / math.Cos(math.Pi/p)
}

// StarPoints returns the outline of a star centered at (x, y), starting
// at the top point and alternating between outer and inner radii.
// The outline has 2*points vertices. An inner radius <= 0 selects the
// regularized default.
func StarPoints(x, y float64, points int, outer, inner float64) []gg.Point {
	if inner <= 0 {
		inner = RegularizedInner(points, outer)
	}
	pts := make([]gg.Point, 0, 2*points)
	pts = append(pts, gg.Pt(x, y-outer))
	for i := 1; i < 2*points; i++ {
		angle := float64(i) * math.Pi / float64(points)
		r := outer
		if i%2 == 1 {
			r = inner
		}
		pts = append(pts, gg.Pt(x+r*math.Sin(angle), y-r*math.Cos(angle)))
	}
	return pts
}

// PolygonPoints returns the n vertices of a regular polygon centered at
// (x, y) with circumradius r, rotated by rotation radians.
func PolygonPoints(n int, x, y, r, rotation float64) []gg.Point {
	step := Tau / float64(n)
	pts := make([]gg.Point, 0, n)
	for i := 0; i < n; i++ {
		a := rotation + step*float64(i)
		pts = append(pts, gg.Pt(x+r*math.Cos(a), y+r*math.Sin(a)))
	}
	return pts
}

// ArrowPoints returns the outline of an arrow whose tip sits at (x, y).
func ArrowPoints(x, y, width float64, style ArrowStyle) []gg.Point {
	if style == ArrowFortyFive {
		head := 0.3
		tail := 1 + head
		return []gg.Point{
			gg.Pt(x, y),
			gg.Pt(x, y+width*(1-head)),
			gg.Pt(x-width*head, y+width),
			gg.Pt(x-width*head, y+width*tail*0.4),
			gg.Pt(x-width*tail*0.6, y+width),
			gg.Pt(x-width, y+width*tail*0.6),
			gg.Pt(x-width*tail*0.4, y+width*head),
			gg.Pt(x-width, y+width*head),
			gg.Pt(x-width*(1-head), y),
		}
	}
	head := width * 0.4
	tail := width * 0.2
	return []gg.Point{
		gg.Pt(x, y),
		gg.Pt(x-head, y+head),
		gg.Pt(x-head, y+tail),
		gg.Pt(x-width, y+tail),
		gg.Pt(x-width, y-tail),
		gg.Pt(x-head, y-tail),
		gg.Pt(x-head, y-head),
	}
}

// boundsOf returns the axis-aligned bounds of a point outline.
func boundsOf(pts []gg.Point) Region {
	if len(pts) == 0 {
		return Region{}
	}
	minX, minY := pts[0].X, pts[0].Y
	maxX, maxY := minX, minY
	for _, p := range pts[1:] {
		minX = math.Min(minX, p.X)
		minY = math.Min(minY, p.Y)
		maxX = math.Max(maxX, p.X)
		maxY = math.Max(maxY, p.Y)
	}
	return Region{X: minX, Y: minY, W: maxX - minX, H: maxY - minY}
}
