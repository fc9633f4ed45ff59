package curvefit

import "fmt"

// NaturalSpline returns the natural cubic spline interpolating knots, in
// order, as a [Path].
//
// Two knots produce a single line and three knots a single quadratic Bézier
// passing through the middle knot at t = 0.5. With four or more knots, each
// pair of consecutive knots is joined by a cubic Bézier; the first
// derivatives at the knots are chosen so that the curve is C² and has zero
// second derivative at both ends.
func NaturalSpline(knots ...Point) (Path, error) {
	switch n := len(knots) - 1; {
	case n < 1:
		return nil, fmt.Errorf("%w: natural spline needs 2 knots, got %d", ErrInsufficientPoints, len(knots))
	case n == 1:
		return Path{Line{knots[0], knots[1]}.Seg()}, nil
	case n == 2:
		return Path{QuadThrough(knots[0], knots[1], knots[2]).Seg()}, nil
	default:
		xs := make([]float64, len(knots))
		ys := make([]float64, len(knots))
		for i, k := range knots {
			xs[i], ys[i] = k.X, k.Y
		}
		dx := naturalDerivatives(xs)
		dy := naturalDerivatives(ys)

		path := make(Path, 0, n)
		for i := range n {
			d0 := Vec(dx[i], dy[i]).Div(3)
			d1 := Vec(dx[i+1], dy[i+1]).Div(3)
			path.Push(CubicBez{
				P0: knots[i],
				P1: knots[i].Translate(d0),
				P2: knots[i+1].Translate(d1.Negate()),
				P3: knots[i+1],
			}.Seg())
		}
		return path, nil
	}
}

// naturalDerivatives returns the first derivatives, with respect to the
// per-segment parameter, of the natural cubic spline through v at each knot.
//
// They solve the tridiagonal system
//
//	| 2 1       | |D0|   | 3(v1 − v0)     |
//	| 1 4 1     | |D1|   | 3(v2 − v0)     |
//	|   ⋱ ⋱ ⋱   | |⋮ | = | ⋮              |
//	|     1 4 1 | |  |   | 3(vn − vn−2)   |
//	|       1 2 | |Dn|   | 3(vn − vn−1)   |
//
// by forward elimination and back substitution (Thomas algorithm).
func naturalDerivatives(v []float64) []float64 {
	n := len(v) - 1
	gamma := make([]float64, n+1)
	delta := make([]float64, n+1)
	d := make([]float64, n+1)

	gamma[0] = 1.0 / 2.0
	for i := 1; i < n; i++ {
		gamma[i] = 1 / (4 - gamma[i-1])
	}
	gamma[n] = 1 / (2 - gamma[n-1])

	delta[0] = 3 * (v[1] - v[0]) * gamma[0]
	for i := 1; i < n; i++ {
		delta[i] = (3*(v[i+1]-v[i-1]) - delta[i-1]) * gamma[i]
	}
	delta[n] = (3*(v[n]-v[n-1]) - delta[n-1]) * gamma[n]

	d[n] = delta[n]
	for i := n - 1; i >= 0; i-- {
		d[i] = delta[i] - gamma[i]*d[i+1]
	}
	return d
}
