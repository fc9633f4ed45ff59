package curvefit

var _ ParametricCurve = QuadBez{}

// QuadBez is a quadratic Bézier segment. The natural spline through three
// knots is a single QuadBez.
type QuadBez struct {
	P0 Point
	P1 Point
	P2 Point
}

// QuadThrough returns the quadratic Bézier from p0 to p2 whose midpoint, at
// t = 0.5, is mid.
func QuadThrough(p0, mid, p2 Point) QuadBez {
	// B(0.5) = (P0 + 2 P1 + P2) / 4, solved for P1.
	return QuadBez{
		P0: p0,
		P1: Point(Vec2(mid).Mul(2).Sub(Vec2(p0.Midpoint(p2)))),
		P2: p2,
	}
}

func (q QuadBez) Eval(t float64) Point {
	mt := 1.0 - t
	a := Vec2(q.P0).Mul(mt * mt)
	b := Vec2(q.P1).Mul(mt * 2.0)
	c := Vec2(q.P2).Mul(t)
	d := b.Add(c)
	return Point(a.Add(d.Mul(t)))
}

// Differentiate returns the derivative of the curve, which is a line whose
// points are to be read as vectors.
func (q QuadBez) Differentiate() Line {
	return Line{
		Point(q.P1.Sub(q.P0).Mul(2)),
		Point(q.P2.Sub(q.P1).Mul(2)),
	}
}

// Deriv returns the derivative of the curve with respect to t.
func (q QuadBez) Deriv(t float64) Vec2 {
	return Vec2(q.Differentiate().Eval(t))
}

func (q QuadBez) Start() Point {
	return q.P0
}

func (q QuadBez) End() Point {
	return q.P2
}

func (q QuadBez) Transform(aff Affine) QuadBez {
	return QuadBez{
		P0: q.P0.Transform(aff),
		P1: q.P1.Transform(aff),
		P2: q.P2.Transform(aff),
	}
}

func (q QuadBez) Seg() PathSegment {
	return PathSegment{Kind: QuadKind, P0: q.P0, P1: q.P1, P2: q.P2}
}
