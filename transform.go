package sketch

import (
	"math"

	"github.com/gogpu/gg"
)

// TransformMode selects the origin that rotation, scaling, and skewing
// apply about when a primitive is drawn.
type TransformMode int

const (
	// Center applies rotation and scaling about the center of each
	// primitive's untransformed bounds. This is the default and what
	// most sketches want: objects spin and grow in place.
	Center TransformMode = iota

	// Corner applies transforms about the canvas origin, so successive
	// transform calls compound spatially across primitives.
	Corner
)

func (m TransformMode) String() string {
	switch m {
	case Center:
		return "center"
	case Corner:
		return "corner"
	default:
		return "unknown"
	}
}

// RotationUnit selects how Rotate and Skew interpret their arguments.
type RotationUnit int

const (
	Degrees RotationUnit = iota // default
	Radians
	Percent // 1.0 is a full turn
)

func (u RotationUnit) String() string {
	switch u {
	case Degrees:
		return "degrees"
	case Radians:
		return "radians"
	case Percent:
		return "percent"
	default:
		return "unknown"
	}
}

// Scale factors for expressing sizes in physical units at 72 dpi.
const (
	Inch = 72.0
	Cm   = 28.3465
	Mm   = 2.8346
	Tau  = 2 * math.Pi
)

// Radians converts an amount in this unit to radians.
func (u RotationUnit) Radians(amount float64) float64 {
	switch u {
	case Radians:
		return amount
	case Percent:
		return amount * Tau
	default:
		return amount * math.Pi / 180
	}
}

// Transform is an accumulated affine transformation. The zero value is
// NOT usable; start from NewTransform.
//
// Mutators compose the way canvas APIs do: the most recent call applies
// first to drawn geometry, so Translate then Rotate positions a local,
// rotated coordinate frame.
type Transform struct {
	m gg.Matrix
}

// NewTransform returns the identity transform.
func NewTransform() Transform {
	return Transform{m: gg.Identity()}
}

// Translate composes a translation onto the transform.
func (t Transform) Translate(x, y float64) Transform {
	t.m = t.m.Multiply(gg.Translate(x, y))
	return t
}

// Rotate composes a rotation (radians) onto the transform.
func (t Transform) Rotate(radians float64) Transform {
	t.m = t.m.Multiply(gg.Rotate(radians))
	return t
}

// Scale composes a scaling onto the transform.
func (t Transform) Scale(x, y float64) Transform {
	t.m = t.m.Multiply(gg.Scale(x, y))
	return t
}

// Skew composes a shear onto the transform. The arguments are angles in
// radians; the horizontal skew slants vertical lines, the vertical skew
// slants horizontal ones.
func (t Transform) Skew(x, y float64) Transform {
	t.m = t.m.Multiply(gg.Shear(math.Tan(x), math.Tan(y)))
	return t
}

// Apply transforms a point.
func (t Transform) Apply(x, y float64) (float64, float64) {
	p := t.m.TransformPoint(gg.Pt(x, y))
	return p.X, p.Y
}

// Matrix returns the underlying gg matrix.
func (t Transform) Matrix() gg.Matrix {
	return t.m
}

// About returns the transform conjugated about (cx, cy): translate the
// point to the origin, apply the transform, translate back. This is how
// Center mode turns an origin-relative transform into an in-place one.
func (t Transform) About(cx, cy float64) Transform {
	m := gg.Translate(cx, cy).Multiply(t.m).Multiply(gg.Translate(-cx, -cy))
	return Transform{m: m}
}

// IsIdentity reports whether the transform is the identity.
func (t Transform) IsIdentity() bool {
	return t.m.IsIdentity()
}

// Region is an axis-aligned rectangle used for primitive bounds.
type Region struct {
	X, Y, W, H float64
}

// Center returns the midpoint of the region.
func (r Region) Center() (x, y float64) {
	return r.X + r.W/2, r.Y + r.H/2
}
