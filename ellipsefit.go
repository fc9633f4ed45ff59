package curvefit

import (
	"fmt"
	"math"
	"sync"

	"honnef.co/go/curvefit/internal/linalg"
)

// EllipseFit is an ellipse A·x² + B·xy + C·y² + D·x + E·y + F = 0 fitted to
// points by direct least squares, with 4AC − B² = 1.
type EllipseFit struct {
	// Coefficients relative to origin.
	origin Point
	coeffs [6]float64

	meanDist   float64
	negligible float64

	charOnce sync.Once
	chars    EllipseCharacteristics
	charErr  error
}

// EllipseCharacteristics describes a fitted ellipse geometrically.
type EllipseCharacteristics struct {
	Center Point
	// Angle of the major axis from the positive x axis towards the positive
	// y axis, in (−π/2, π/2].
	Angle float64
	// Half-lengths of the major and minor axes.
	Major float64
	Minor float64
}

// FitEllipse returns the ellipse that best fits points in the algebraic
// least squares sense, using the numerically stable formulation of the
// direct least squares method by Halíř and Flusser. Unlike general conic
// fitting, the result is always an ellipse.
//
// It returns [ErrInsufficientPoints] for fewer than 6 points and
// [ErrDegenerateConfiguration] when the points do not determine an ellipse.
func FitEllipse(points []Point, opts ...Option) (*EllipseFit, error) {
	if len(points) < 6 {
		return nil, fmt.Errorf("%w: ellipse fit needs 6 points, got %d", ErrInsufficientPoints, len(points))
	}
	o := applyOptions(opts)
	m := centroid(points)

	// Design matrix split into its quadratic and linear parts.
	d1 := linalg.New(len(points), 3)
	d2 := linalg.New(len(points), 3)
	for i, pt := range points {
		x, y := pt.X-m.X, pt.Y-m.Y
		d1.Set(i, 0, x*x)
		d1.Set(i, 1, x*y)
		d1.Set(i, 2, y*y)
		d2.Set(i, 0, x)
		d2.Set(i, 1, y)
		d2.Set(i, 2, 1)
	}
	s1 := d1.TMul(d1)
	s2 := d1.TMul(d2)
	s3 := d2.TMul(d2)

	s3inv, err := s3.Inverse()
	if err != nil {
		Logger().Debug("ellipse fit: singular linear scatter", "points", len(points), "err", err)
		return nil, fmt.Errorf("%w: %w", ErrDegenerateConfiguration, err)
	}
	// A2 = T·A1
	t := s3inv.Mul(s2.T()).Scale(-1)
	reduced := s1.Add(s2.Mul(t))

	// Inverse of the constraint matrix of 4AC − B² for A1 = [A B C].
	c1inv := linalg.FromRows(
		[]float64{0, 0, 0.5},
		[]float64{0, -1, 0},
		[]float64{0.5, 0, 0},
	)
	pairs, err := c1inv.Mul(reduced).Eigen()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDegenerateConfiguration, err)
	}

	var (
		a1     []float64
		lambda float64
	)
	for _, p := range pairs {
		v := p.Vector
		cond := 4*v[0]*v[2] - v[1]*v[1]
		if !(cond > 0) {
			continue
		}
		if a1 != nil {
			Logger().Debug("ellipse fit: extra elliptic solution ignored", "eigenvalue", p.Value)
			continue
		}
		k := 1 / math.Sqrt(cond)
		a1 = []float64{v[0] * k, v[1] * k, v[2] * k}
		lambda = p.Value
	}
	if a1 == nil {
		Logger().Debug("ellipse fit: no elliptic eigenvector", "eigenpairs", len(pairs))
		return nil, fmt.Errorf("%w: no elliptic solution among %d real eigenvectors", ErrDegenerateConfiguration, len(pairs))
	}
	a2 := t.Mul(linalg.FromRows(a1[0:1], a1[1:2], a1[2:3])).Col(0)

	fit := &EllipseFit{
		origin:     m,
		coeffs:     [6]float64{a1[0], a1[1], a1[2], a2[0], a2[1], a2[2]},
		negligible: o.negligible,
	}

	var sum float64
	for _, pt := range points {
		r := fit.centered(pt.Sub(m))
		sum += r * r
	}
	n := float64(len(points))
	fit.meanDist = math.Sqrt(sum / n)
	if byLambda := math.Sqrt(math.Abs(lambda) / n); math.Abs(byLambda-fit.meanDist) > 1e-6*(1+fit.meanDist) {
		Logger().Debug("ellipse fit: residual disagrees with eigenvalue",
			"residual", fit.meanDist, "eigenvalue", byLambda)
	}
	return fit, nil
}

// centered evaluates the conic at v, relative to the centroid.
func (fit *EllipseFit) centered(v Vec2) float64 {
	a, b, c, d, e, f := fit.coeffs[0], fit.coeffs[1], fit.coeffs[2], fit.coeffs[3], fit.coeffs[4], fit.coeffs[5]
	x, y := v.X, v.Y
	return a*x*x + b*x*y + c*y*y + d*x + e*y + f
}

// Coefficients returns the coefficients of A·x² + B·xy + C·y² + D·x + E·y +
// F = 0, normalized so that 4AC − B² = 1.
func (fit *EllipseFit) Coefficients() (a, b, c, d, e, f float64) {
	a, b, c = fit.coeffs[0], fit.coeffs[1], fit.coeffs[2]
	dc, ec, fc := fit.coeffs[3], fit.coeffs[4], fit.coeffs[5]
	mx, my := fit.origin.X, fit.origin.Y
	d = dc - 2*a*mx - b*my
	e = ec - b*mx - 2*c*my
	f = a*mx*mx + b*mx*my + c*my*my - dc*mx - ec*my + fc
	return a, b, c, d, e, f
}

// DistanceOf returns the algebraic distance of pt to the ellipse, the value
// of the left-hand side of its equation.
func (fit *EllipseFit) DistanceOf(pt Point) float64 {
	return fit.centered(pt.Sub(fit.origin))
}

// MeanDistance returns the root mean square algebraic distance of the fitted
// points to the ellipse.
func (fit *EllipseFit) MeanDistance() float64 { return fit.meanDist }

// Characteristics returns the center, orientation and axes of the ellipse.
// They are computed on first use.
func (fit *EllipseFit) Characteristics() (EllipseCharacteristics, error) {
	fit.charOnce.Do(func() {
		fit.chars, fit.charErr = fit.characteristics()
	})
	return fit.chars, fit.charErr
}

func (fit *EllipseFit) characteristics() (EllipseCharacteristics, error) {
	a, b, c, d, e, _ := fit.coeffs[0], fit.coeffs[1], fit.coeffs[2], fit.coeffs[3], fit.coeffs[4], fit.coeffs[5]

	// The center is where both partial derivatives vanish.
	den := b*b - 4*a*c
	if !(den < 0) {
		return EllipseCharacteristics{}, fmt.Errorf("%w: conic is not an ellipse (B²−4AC=%g)", ErrDegenerateConfiguration, den)
	}
	center := Vec((2*c*d-b*e)/den, (2*a*e-b*d)/den)

	// Relative to the center the equation reads A·x² + B·xy + C·y² = 1
	// once divided by minus its constant term.
	k := -fit.centered(center)
	a, b, c = a/k, b/k, c/k
	if !(a > 0) || !(c > 0) {
		return EllipseCharacteristics{}, fmt.Errorf("%w: imaginary ellipse", ErrDegenerateConfiguration)
	}

	var ch EllipseCharacteristics
	ch.Center = fit.origin.Translate(center)
	if math.Abs(b) < fit.negligible*max(math.Abs(a), math.Abs(c)) {
		if a <= c {
			ch.Angle = 0
			ch.Major, ch.Minor = 1/math.Sqrt(a), 1/math.Sqrt(c)
		} else {
			ch.Angle = math.Pi / 2
			ch.Major, ch.Minor = 1/math.Sqrt(c), 1/math.Sqrt(a)
		}
		return ch, nil
	}

	// Rotating by θ removes the cross term. θ is only known modulo π/2,
	// so the axis with the smaller coefficient is picked as the major one.
	r := (c - a) / b
	th := math.Atan(r - math.Sqrt(r*r+1))
	sin, cos := math.Sincos(th)
	p := a*cos*cos + b*sin*cos + c*sin*sin
	q := a*sin*sin - b*sin*cos + c*cos*cos
	if !(p > 0) || !(q > 0) {
		return EllipseCharacteristics{}, fmt.Errorf("%w: imaginary ellipse", ErrDegenerateConfiguration)
	}
	if p <= q {
		ch.Angle = th
		ch.Major, ch.Minor = 1/math.Sqrt(p), 1/math.Sqrt(q)
	} else {
		ch.Angle = th + math.Pi/2
		if ch.Angle > math.Pi/2 {
			ch.Angle -= math.Pi
		}
		ch.Major, ch.Minor = 1/math.Sqrt(q), 1/math.Sqrt(p)
	}
	return ch, nil
}

// Shape returns the fitted ellipse as an [Ellipse].
func (fit *EllipseFit) Shape() (Ellipse, error) {
	ch, err := fit.Characteristics()
	if err != nil {
		return Ellipse{}, err
	}
	e := NewEllipse(ch.Center, Vec(ch.Major, ch.Minor), ch.Angle)
	if e.IsNaN() || e.IsInf() {
		return Ellipse{}, fmt.Errorf("%w: ellipse axes %g and %g are not finite", ErrDegenerateConfiguration, ch.Major, ch.Minor)
	}
	return e, nil
}

func (fit *EllipseFit) String() string {
	ch, err := fit.Characteristics()
	if err != nil {
		a, b, c, d, e, f := fit.Coefficients()
		return fmt.Sprintf("EllipseFit{%g %g %g %g %g %g dist=%g}", a, b, c, d, e, f, fit.meanDist)
	}
	return fmt.Sprintf("EllipseFit{center=%v angle=%g major=%g minor=%g dist=%g}",
		ch.Center, ch.Angle, ch.Major, ch.Minor, fit.meanDist)
}
