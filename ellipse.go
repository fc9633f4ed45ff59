package curvefit

import "math"

// Ellipse is an ellipse represented as the image of the unit circle under an
// affine map.
type Ellipse struct {
	inner Affine
}

// NewEllipse returns the ellipse with the given center, radii and rotation.
//
// The ellipse is the result of taking the unit circle, stretching it by
// radii along the x and y axes, rotating it from the x axis by xRotation
// radians and finally translating it to center. Rotation is clockwise in a
// y-down coordinate system.
func NewEllipse(center Point, radii Vec2, xRotation float64) Ellipse {
	rx, ry := radii.Splat()
	return newEllipse(Vec2(center), rx, ry, xRotation)
}

func newEllipse(center Vec2, scaleX, scaleY, xRotation float64) Ellipse {
	// The circle is symmetric about both axes, so negative radii describe
	// the same ellipse.
	return Ellipse{
		inner: Translate(center).
			Mul(Rotate(xRotation)).
			Mul(Scale(math.Abs(scaleX), math.Abs(scaleY))),
	}
}

// Contains reports whether pt lies strictly inside the ellipse.
func (e Ellipse) Contains(pt Point) bool {
	return e.Winding(pt) != 0
}

func (e Ellipse) IsInf() bool {
	return e.inner.IsInf()
}

func (e Ellipse) IsNaN() bool {
	return e.inner.IsNaN()
}

func (e Ellipse) Winding(pt Point) int {
	// Map the point back onto the unit circle.
	inv := e.inner.Invert()
	if Vec2(pt.Transform(inv)).Hypot2() < 1.0 {
		return 1
	} else {
		return 0
	}
}

// Center returns the center of the ellipse.
func (e Ellipse) Center() Point {
	return Point(e.inner.Translation())
}

// RadiiRotation returns the two radii of the ellipse, largest first, and the
// angle of its major axis in radians.
func (e Ellipse) RadiiRotation() (Vec2, float64) {
	return e.inner.svd()
}

// PointAt returns the point of the ellipse at the eccentric angle t.
func (e Ellipse) PointAt(t float64) Point {
	sin, cos := math.Sincos(t)
	return Pt(cos, sin).Transform(e.inner)
}

// Path returns the outline of the ellipse as cubic Béziers accurate to
// within tolerance.
func (e Ellipse) Path(tolerance float64) Path {
	radii, xRotation := e.inner.svd()
	return Arc{
		Center:     e.Center(),
		Radii:      radii,
		StartAngle: 0.0,
		SweepAngle: 2 * math.Pi,
		XRotation:  xRotation,
	}.Path(tolerance)
}
