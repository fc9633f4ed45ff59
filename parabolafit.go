package curvefit

import (
	"fmt"
	"math"
)

// ParabolaFit is a parabola y = a·x² + b·x + c fitted to points by least
// squares on the vertical residuals.
type ParabolaFit struct {
	A, B, C  float64
	meanDist float64
}

// FitParabola returns the parabola that best fits points.
//
// It returns [ErrInsufficientPoints] for fewer than 3 points and
// [ErrDegenerateConfiguration] when the points share fewer than 3 distinct
// abscissae.
func FitParabola(points []Point) (*ParabolaFit, error) {
	if len(points) < 3 {
		return nil, fmt.Errorf("%w: parabola fit needs 3 points, got %d", ErrInsufficientPoints, len(points))
	}

	// Work relative to the mean abscissa. The determinant of the normal
	// equations does not depend on the shift, but the singularity threshold
	// grows like x⁶.
	mx := centroid(points).X

	// Power sums; sIJ is Σ uⁱ·yʲ with u = x − mx.
	var s00, s10, s20, s30, s40, s01, s11, s21 float64
	for _, pt := range points {
		x, y := pt.X-mx, pt.Y
		x2 := x * x
		s00++
		s10 += x
		s20 += x2
		s30 += x2 * x
		s40 += x2 * x2
		s01 += y
		s11 += x * y
		s21 += x2 * y
	}

	// Normal equations, solved by Cramer's rule:
	//
	//	| s40 s30 s20 | |a|   |s21|
	//	| s30 s20 s10 | |b| = |s11|
	//	| s20 s10 s00 | |c|   |s01|
	det := det3(
		s40, s30, s20,
		s30, s20, s10,
		s20, s10, s00,
	)
	if !(math.Abs(det) > singularRatio*s40*s20*s00) {
		return nil, fmt.Errorf("%w: singular normal equations for %d points", ErrDegenerateConfiguration, len(points))
	}
	a := det3(
		s21, s30, s20,
		s11, s20, s10,
		s01, s10, s00,
	) / det
	b := det3(
		s40, s21, s20,
		s30, s11, s10,
		s20, s01, s00,
	) / det
	c := det3(
		s40, s30, s21,
		s30, s20, s11,
		s20, s10, s01,
	) / det

	// Expand a·(x − mx)² + b·(x − mx) + c.
	p := &ParabolaFit{
		A: a,
		B: b - 2*a*mx,
		C: (a*mx-b)*mx + c,
	}

	var sum float64
	for _, pt := range points {
		d := pt.Y - p.YAt(pt.X)
		sum += d * d
	}
	p.meanDist = math.Sqrt(sum / s00)
	return p, nil
}

// singularRatio is the ratio of the determinant of the normal equations to
// the product of their diagonal below which they are deemed singular.
const singularRatio = 1e-12

func det3(
	a, b, c,
	d, e, f,
	g, h, i float64,
) float64 {
	return a*(e*i-f*h) - b*(d*i-f*g) + c*(d*h-e*g)
}

// YAt returns the ordinate of the parabola at abscissa x.
func (p *ParabolaFit) YAt(x float64) float64 {
	return (p.A*x+p.B)*x + p.C
}

// DerivativeAt returns dy/dx at abscissa x.
func (p *ParabolaFit) DerivativeAt(x float64) float64 {
	return 2*p.A*x + p.B
}

// Vertex returns the extremum of the parabola. ok is false if the fit is a
// straight line.
func (p *ParabolaFit) Vertex() (pt Point, ok bool) {
	if p.A == 0 {
		return Point{}, false
	}
	x := -p.B / (2 * p.A)
	return Pt(x, p.YAt(x)), true
}

// MeanDistance returns the root mean square vertical distance of the fitted
// points to the parabola.
func (p *ParabolaFit) MeanDistance() float64 { return p.meanDist }

func (p *ParabolaFit) String() string {
	return fmt.Sprintf("ParabolaFit{y=%g·x²%+g·x%+g dist=%g}", p.A, p.B, p.C, p.meanDist)
}
