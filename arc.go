package curvefit

import (
	"iter"
	"math"
)

// Arc is an arc of an ellipse.
type Arc struct {
	Center     Point
	Radii      Vec2
	StartAngle float64
	SweepAngle float64
	XRotation  float64
}

var _ ParametricCurve = Arc{}

// Eval returns the point of the arc at parameter t ∈ [0, 1], with the angle
// varying linearly from StartAngle to StartAngle+SweepAngle.
func (a Arc) Eval(t float64) Point {
	return a.Center.Translate(sampleEllipse(a.Radii, a.XRotation, a.StartAngle+t*a.SweepAngle))
}

func (a Arc) Start() Point { return a.Eval(0) }
func (a Arc) End() Point   { return a.Eval(1) }

// Cubics returns cubic Béziers approximating the arc to within tolerance,
// in order from start to end.
func (a Arc) Cubics(tolerance float64) iter.Seq[CubicBez] {
	return func(yield func(CubicBez) bool) {
		scaledError := max(a.Radii.X, a.Radii.Y) / tolerance
		// Number of subdivisions per full turn based on error tolerance.
		// Note: this may slightly underestimate the error for quadrants.
		nError := max(math.Pow(1.1163*scaledError, 1.0/6.0), 3.999_999)
		n := max(math.Ceil(nError*math.Abs(a.SweepAngle)*(1.0/(2.0*math.Pi))), 1)
		angleStep := a.SweepAngle / n
		armLen := math.Copysign((4.0/3.0)*math.Tan(math.Abs(0.25*angleStep)), a.SweepAngle)
		angle0 := a.StartAngle
		p0 := sampleEllipse(a.Radii, a.XRotation, angle0)

		for range int(n) {
			angle1 := angle0 + angleStep
			p1 := p0.Add(sampleEllipse(a.Radii, a.XRotation, angle0+math.Pi/2).Mul(armLen))
			p3 := sampleEllipse(a.Radii, a.XRotation, angle1)
			p2 := p3.Sub(sampleEllipse(a.Radii, a.XRotation, angle1+math.Pi/2).Mul(armLen))

			c := CubicBez{
				P0: a.Center.Translate(p0),
				P1: a.Center.Translate(p1),
				P2: a.Center.Translate(p2),
				P3: a.Center.Translate(p3),
			}
			angle0 = angle1
			p0 = p3

			if !yield(c) {
				break
			}
		}
	}
}

// Path returns the arc as a path of cubic Béziers accurate to within
// tolerance.
func (a Arc) Path(tolerance float64) Path {
	var p Path
	for c := range a.Cubics(tolerance) {
		p.Push(c.Seg())
	}
	return p
}

// sampleEllipse returns the point at angle on the origin-centered ellipse
// with the given radii, rotated by xRotation.
func sampleEllipse(radii Vec2, xRotation float64, angle float64) Vec2 {
	sin, cos := math.Sincos(angle)
	u := radii.X * cos
	v := radii.Y * sin
	return rotatePt(Vec2{u, v}, xRotation)
}

// rotatePt rotates pt about the origin by angle radians.
func rotatePt(pt Vec2, angle float64) Vec2 {
	sin, cos := math.Sincos(angle)
	return Vec2{
		X: pt.X*cos - pt.Y*sin,
		Y: pt.X*sin + pt.Y*cos,
	}
}
