package curvefit

import "math"

// Circle is a circle given by its center and radius.
type Circle struct {
	Center Point
	Radius float64
}

// Contains reports whether pt lies strictly inside the circle.
func (c Circle) Contains(pt Point) bool {
	return c.Winding(pt) != 0
}

func (c Circle) IsInf() bool {
	return c.Center.IsInf() || math.IsInf(c.Radius, 0)
}

func (c Circle) IsNaN() bool {
	return c.Center.IsNaN() || math.IsNaN(c.Radius)
}

func (c Circle) Translate(v Vec2) Circle {
	return Circle{
		Center: c.Center.Translate(v),
		Radius: c.Radius,
	}
}

func (c Circle) Winding(pt Point) int {
	if pt.Sub(c.Center).Hypot2() < c.Radius*c.Radius {
		return 1
	} else {
		return 0
	}
}

// Distance returns the signed Euclidean distance of pt to the circle,
// negative inside.
func (c Circle) Distance(pt Point) float64 {
	return c.Center.Distance(pt) - c.Radius
}

// PointAt returns the point of the circle at the given angle, measured from
// the positive x axis towards the positive y axis.
func (c Circle) PointAt(angle float64) Point {
	return pointOnCircle(c.Center, c.Radius, angle)
}

func pointOnCircle(center Point, radius float64, angle float64) Point {
	sin, cos := math.Sincos(angle)
	return center.Translate(
		Vec2{
			X: cos * radius,
			Y: sin * radius,
		})
}
