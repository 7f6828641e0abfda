package sketch

import (
	"errors"
	"fmt"
	"image"
	"io"
	"math"

	"github.com/gogpu/gg"
	"github.com/gogpu/gg/text"
)

// state is the full graphics state saved and restored by Push/Pop.
type state struct {
	transform Transform
	tmode     TransformMode
	unit      RotationUnit

	fill      Color
	hasFill   bool
	stroke    Color
	hasStroke bool
	lineWidth float64

	font     *text.FontSource
	fontSize float64
}

// Canvas is the drawing surface a sketch paints on. It wraps a gg context
// and layers the sketching state on top: current fill and stroke, current
// font, an accumulated transform with its mode and rotation unit, and a
// stack of saved states.
//
// Render errors are sticky: after the first failure every later drawing
// call is a no-op, and the error surfaces from Err, SavePNG, and
// EncodePNG. Sketches stay free of per-call error plumbing without
// silently losing failures.
type Canvas struct {
	dc    *gg.Context
	cur   state
	stack []state
	err   error
}

// New creates a canvas of the given pixel size with default state:
// Center transform mode, Degrees, opaque black fill, no stroke, and the
// embedded default font at 24 points.
func New(width, height int) (*Canvas, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("sketch: invalid canvas size %dx%d", width, height)
	}
	return &Canvas{
		dc: gg.NewContext(width, height),
		cur: state{
			transform: NewTransform(),
			fill:      RGB(0, 0, 0),
			hasFill:   true,
			lineWidth: 1,
			fontSize:  24,
		},
	}, nil
}

// Width returns the canvas width in pixels.
func (c *Canvas) Width() int { return c.dc.Width() }

// Height returns the canvas height in pixels.
func (c *Canvas) Height() int { return c.dc.Height() }

// Err returns the first render error, or nil.
func (c *Canvas) Err() error { return c.err }

// fail records the first error and disables further drawing.
func (c *Canvas) fail(err error) {
	if c.err != nil {
		return
	}
	c.err = err
	Logger().Warn("canvas disabled after render error", "error", err)
}

// SetBackground fills the entire canvas, ignoring the current transform.
func (c *Canvas) SetBackground(col Color) {
	if c.err != nil {
		return
	}
	c.dc.ClearWithColor(gg.RGBA(col))
}

// SetFill sets the fill color for subsequent primitives.
func (c *Canvas) SetFill(col Color) {
	c.cur.fill = col
	c.cur.hasFill = true
}

// NoFill disables filling; primitives are stroke-only until SetFill.
func (c *Canvas) NoFill() {
	c.cur.hasFill = false
}

// SetStroke sets the stroke color for subsequent primitives.
func (c *Canvas) SetStroke(col Color) {
	c.cur.stroke = col
	c.cur.hasStroke = true
}

// NoStroke disables stroking.
func (c *Canvas) NoStroke() {
	c.cur.hasStroke = false
}

// SetStrokeWidth sets the stroke width in canvas units.
func (c *Canvas) SetStrokeWidth(w float64) {
	c.cur.lineWidth = w
}

// SetFont sets the font source used by DrawText.
func (c *Canvas) SetFont(src *text.FontSource) {
	c.cur.font = src
}

// SetFontSize sets the text size in points.
func (c *Canvas) SetFontSize(points float64) {
	c.cur.fontSize = points
}

// SetTransformMode selects Center or Corner mode for later primitives.
func (c *Canvas) SetTransformMode(m TransformMode) {
	c.cur.tmode = m
}

// SetRotationUnit selects how Rotate and Skew read their arguments.
func (c *Canvas) SetRotationUnit(u RotationUnit) {
	c.cur.unit = u
}

// Transform returns the accumulated transform.
func (c *Canvas) Transform() Transform {
	return c.cur.transform
}

// Translate composes a translation onto the current transform.
func (c *Canvas) Translate(x, y float64) {
	c.cur.transform = c.cur.transform.Translate(x, y)
}

// Rotate composes a rotation onto the current transform. The amount is
// read in the current rotation unit (degrees by default).
func (c *Canvas) Rotate(amount float64) {
	c.cur.transform = c.cur.transform.Rotate(c.cur.unit.Radians(amount))
}

// Scale composes a scaling onto the current transform.
func (c *Canvas) Scale(x, y float64) {
	c.cur.transform = c.cur.transform.Scale(x, y)
}

// Skew composes a shear onto the current transform. The amounts are
// angles, read in the current rotation unit.
func (c *Canvas) Skew(x, y float64) {
	c.cur.transform = c.cur.transform.Skew(c.cur.unit.Radians(x), c.cur.unit.Radians(y))
}

// ResetTransform discards the accumulated transform.
func (c *Canvas) ResetTransform() {
	c.cur.transform = NewTransform()
}

// Push saves the full graphics state: transform, modes, fill, stroke,
// and font.
func (c *Canvas) Push() {
	c.stack = append(c.stack, c.cur)
}

// Pop restores the most recently pushed state. Popping an empty stack is
// recorded as an error rather than panicking.
func (c *Canvas) Pop() {
	if len(c.stack) == 0 {
		c.fail(errors.New("sketch: pop on empty state stack"))
		return
	}
	c.cur = c.stack[len(c.stack)-1]
	c.stack = c.stack[:len(c.stack)-1]
}

// With runs fn between a Push/Pop pair, so transform and style changes
// made inside fn do not leak out. This is the scoped transform context
// most sketches loop over.
func (c *Canvas) With(fn func()) {
	c.Push()
	fn()
	c.Pop()
}

// logDraw emits per-primitive diagnostics. The nop default logger makes
// this free when debug logging is off.
func (c *Canvas) logDraw(op string, r Region) {
	Logger().Debug("draw",
		"op", op,
		"x", r.X, "y", r.Y, "w", r.W, "h", r.H,
		"mode", c.cur.tmode)
}

// concat installs the effective transform for a primitive with the given
// untransformed bounds, honoring the transform mode.
func (c *Canvas) concat(r Region) {
	t := c.cur.transform
	if c.cur.tmode == Center {
		t = t.About(r.Center())
	}
	c.dc.SetTransform(t.Matrix())
}

// restore resets the gg context transform after a primitive is painted.
func (c *Canvas) restore() {
	c.dc.Identity()
}

// outline appends a closed polygon to the current gg path. The context
// transform must already be installed.
func (c *Canvas) outline(pts []gg.Point) {
	for i, p := range pts {
		if i == 0 {
			c.dc.MoveTo(p.X, p.Y)
		} else {
			c.dc.LineTo(p.X, p.Y)
		}
	}
	c.dc.ClosePath()
}

// paint fills and/or strokes the current gg path with the current style,
// then clears it.
func (c *Canvas) paint() {
	if c.cur.hasFill {
		c.dc.SetColor(c.cur.fill)
		if c.cur.hasStroke {
			if err := c.dc.FillPreserve(); err != nil {
				c.fail(err)
				return
			}
		} else if err := c.dc.Fill(); err != nil {
			c.fail(err)
			return
		}
	}
	if c.cur.hasStroke {
		c.dc.SetColor(c.cur.stroke)
		c.dc.SetLineWidth(c.cur.lineWidth)
		if err := c.dc.Stroke(); err != nil {
			c.fail(err)
			return
		}
	}
	c.dc.ClearPath()
}

// DrawRect draws a rectangle with its top-left corner at (x, y).
func (c *Canvas) DrawRect(x, y, w, h float64) {
	if c.err != nil {
		return
	}
	r := Region{X: x, Y: y, W: w, H: h}
	c.logDraw("rect", r)
	c.concat(r)
	c.dc.DrawRectangle(x, y, w, h)
	c.paint()
	c.restore()
}

// DrawOval draws an ellipse inscribed in the rectangle (x, y, w, h).
func (c *Canvas) DrawOval(x, y, w, h float64) {
	if c.err != nil {
		return
	}
	r := Region{X: x, Y: y, W: w, H: h}
	c.logDraw("oval", r)
	c.concat(r)
	c.dc.DrawEllipse(x+w/2, y+h/2, w/2, h/2)
	c.paint()
	c.restore()
}

// DrawLine draws a line between two points using the stroke color, or
// the fill color when no stroke is set.
func (c *Canvas) DrawLine(x1, y1, x2, y2 float64) {
	if c.err != nil {
		return
	}
	r := Region{
		X: math.Min(x1, x2),
		Y: math.Min(y1, y2),
		W: math.Abs(x2 - x1),
		H: math.Abs(y2 - y1),
	}
	c.logDraw("line", r)
	c.concat(r)
	c.dc.DrawLine(x1, y1, x2, y2)
	col := c.cur.stroke
	if !c.cur.hasStroke {
		col = c.cur.fill
	}
	c.dc.SetColor(col)
	c.dc.SetLineWidth(c.cur.lineWidth)
	if err := c.dc.Stroke(); err != nil {
		c.fail(err)
	}
	c.restore()
}

// DrawPolygon draws a regular polygon with n sides centered at (x, y)
// with circumradius r, rotated by rotation (in the current unit).
func (c *Canvas) DrawPolygon(n int, x, y, r, rotation float64) {
	if c.err != nil {
		return
	}
	if n < 3 {
		c.fail(fmt.Errorf("sketch: polygon needs at least 3 sides, got %d", n))
		return
	}
	pts := PolygonPoints(n, x, y, r, c.cur.unit.Radians(rotation))
	reg := Region{X: x - r, Y: y - r, W: 2 * r, H: 2 * r}
	c.logDraw("polygon", reg)
	c.concat(reg)
	c.outline(pts)
	c.paint()
	c.restore()
}

// DrawStar draws a star centered at (x, y) with the given number of
// points and outer radius. An inner radius <= 0 selects the regularized
// default (edges collinear across points).
func (c *Canvas) DrawStar(x, y float64, points int, outer, inner float64) {
	if c.err != nil {
		return
	}
	if points < 3 {
		c.fail(fmt.Errorf("sketch: star needs at least 3 points, got %d", points))
		return
	}
	if outer <= 0 {
		c.fail(fmt.Errorf("sketch: star outer radius must be positive, got %v", outer))
		return
	}
	pts := StarPoints(x, y, points, outer, inner)
	reg := Region{X: x - outer, Y: y - outer, W: 2 * outer, H: 2 * outer}
	c.logDraw("star", reg)
	c.concat(reg)
	c.outline(pts)
	c.paint()
	c.restore()
}

// DrawArrow draws an arrow with its tip at (x, y).
func (c *Canvas) DrawArrow(x, y, width float64, style ArrowStyle) {
	if c.err != nil {
		return
	}
	if width <= 0 {
		c.fail(fmt.Errorf("sketch: arrow width must be positive, got %v", width))
		return
	}
	pts := ArrowPoints(x, y, width, style)
	reg := boundsOf(pts)
	c.logDraw("arrow", reg)
	c.concat(reg)
	c.outline(pts)
	c.paint()
	c.restore()
}

// face returns the current font face, falling back to the embedded
// default source when none has been set.
func (c *Canvas) face() (text.Face, error) {
	src := c.cur.font
	if src == nil {
		var err error
		src, err = DefaultFont()
		if err != nil {
			return nil, fmt.Errorf("sketch: loading default font: %w", err)
		}
	}
	return src.Face(c.cur.fontSize), nil
}

// DrawText draws s with its baseline origin at (x, y) using the current
// fill color and font.
func (c *Canvas) DrawText(s string, x, y float64) {
	if c.err != nil || s == "" {
		return
	}
	face, err := c.face()
	if err != nil {
		c.fail(err)
		return
	}
	c.dc.SetFont(face)
	w, h := c.dc.MeasureString(s)
	r := Region{X: x, Y: y - h, W: w, H: h}
	c.logDraw("text", r)
	c.concat(r)
	c.dc.SetColor(c.cur.fill)
	c.dc.DrawString(s, x, y)
	c.restore()
}

// TextWidth returns the horizontal advance of s in the current font.
func (c *Canvas) TextWidth(s string) float64 {
	face, err := c.face()
	if err != nil {
		c.fail(err)
		return 0
	}
	c.dc.SetFont(face)
	w, _ := c.dc.MeasureString(s)
	return w
}

// Image returns the rendered image.
func (c *Canvas) Image() image.Image {
	return c.dc.Image()
}

// SavePNG writes the canvas to a PNG file. A sticky render error is
// returned instead of writing a partial image.
func (c *Canvas) SavePNG(path string) error {
	if c.err != nil {
		return c.err
	}
	return c.dc.SavePNG(path)
}

// EncodePNG writes the canvas as PNG to w.
func (c *Canvas) EncodePNG(w io.Writer) error {
	if c.err != nil {
		return c.err
	}
	return c.dc.EncodePNG(w)
}
