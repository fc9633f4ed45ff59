package curvefit

import (
	"fmt"
	"math"
	"slices"
	"sync"

	"honnef.co/go/curvefit/internal/linalg"
)

// CircleFit is a circle fitted to points, possibly delimited to the arc the
// points lie on.
//
// Angles are measured with atan2 in the coordinate system of the points. For
// image coordinates, where y grows downwards, angles therefore increase
// clockwise as seen on screen.
type CircleFit struct {
	Circle

	meanDist float64

	hasArc      bool
	start, stop float64
	ccw         int

	curveOnce sync.Once
	curve     CubicBez
	curveOK   bool
}

// FitCircle returns the circle that best fits points in the algebraic least
// squares sense, minimizing Σ(x² + y² + D·x + E·y + F)².
//
// Unless [WithOrderedPoints] is given, the arc covered by the points is
// delimited by looking for an angular sector around the center that contains
// no point. When every sector holds a point, the points are taken to cover
// the full circle and the fit has no arc; this is not an error.
//
// It returns [ErrInsufficientPoints] for fewer than 3 points and
// [ErrDegenerateConfiguration] when the points do not determine a circle,
// for instance when they are collinear.
func FitCircle(points []Point, opts ...Option) (*CircleFit, error) {
	if len(points) < 3 {
		return nil, fmt.Errorf("%w: circle fit needs 3 points, got %d", ErrInsufficientPoints, len(points))
	}
	o := applyOptions(opts)
	circle, err := fitCircle(points)
	if err != nil {
		return nil, err
	}
	c := &CircleFit{Circle: circle}
	c.meanDist = c.DistanceTo(points)
	if o.ordered {
		c.setArcThrough(points[0], points[len(points)/2], points[len(points)-1])
	} else {
		c.detectArc(points, o.sectors)
	}
	return c, nil
}

// FitCircleThrough returns the circle passing exactly through left, middle
// and right. The other points only contribute to the mean distance and to
// the delimitation of the arc; they should include the three defining
// points. If points is empty, the defining points are used.
func FitCircleThrough(left, middle, right Point, points []Point, opts ...Option) (*CircleFit, error) {
	o := applyOptions(opts)
	circle, err := circleThrough(left, middle, right)
	if err != nil {
		return nil, err
	}
	if len(points) == 0 {
		points = []Point{left, middle, right}
	}
	c := &CircleFit{Circle: circle}
	c.meanDist = c.DistanceTo(points)
	if o.ordered {
		c.setArcThrough(left, middle, right)
	} else {
		c.detectArc(points, o.sectors)
	}
	return c, nil
}

// CircleThrough returns the circle passing exactly through first, middle and
// last, with the arc running from first to last by way of middle.
func CircleThrough(first, middle, last Point) (*CircleFit, error) {
	circle, err := circleThrough(first, middle, last)
	if err != nil {
		return nil, err
	}
	c := &CircleFit{Circle: circle}
	c.setArcThrough(first, middle, last)
	return c, nil
}

func fitCircle(points []Point) (Circle, error) {
	// Work relative to the centroid; pixel coordinates squared would
	// otherwise dominate the scatter matrix.
	m := centroid(points)
	design := linalg.New(len(points), 4)
	for i, pt := range points {
		x, y := pt.X-m.X, pt.Y-m.Y
		design.Set(i, 0, x*x+y*y)
		design.Set(i, 1, x)
		design.Set(i, 2, y)
		design.Set(i, 3, 1)
	}
	scatter := design.TMul(design)

	// With V = [1 D E F], minimize V'·S·V subject to V0 = 1. The gradient
	// of the Lagrangian vanishes for 2·S·V = λ·[1 0 0 0]'. Moving the known
	// first column to the right-hand side leaves a square system in
	// [D E F λ].
	sys := linalg.New(4, 4)
	rhs := linalg.New(4, 1)
	for i := range 4 {
		for j := 1; j < 4; j++ {
			sys.Set(i, j-1, scatter.At(i, j))
		}
		rhs.Set(i, 0, -scatter.At(i, 0))
	}
	sys.Set(0, 3, -0.5)

	sol, err := sys.Solve(rhs)
	if err != nil {
		Logger().Debug("circle fit: singular system", "points", len(points), "err", err)
		return Circle{}, fmt.Errorf("%w: %w", ErrDegenerateConfiguration, err)
	}
	d, e, f := sol.At(0, 0), sol.At(1, 0), sol.At(2, 0)
	center := Pt(-d/2, -e/2)
	r2 := Vec2(center).Hypot2() - f
	if !(r2 >= 0) {
		return Circle{}, fmt.Errorf("%w: no real circle (D=%g E=%g F=%g)", ErrDegenerateConfiguration, d, e, f)
	}
	c := Circle{Center: center, Radius: math.Sqrt(r2)}.Translate(Vec2(m))
	if c.IsInf() || c.IsNaN() {
		return Circle{}, fmt.Errorf("%w: circle %v is not finite", ErrDegenerateConfiguration, c)
	}
	return c, nil
}

func circleThrough(p0, p1, p2 Point) (Circle, error) {
	center, err := Intersection(Bisector(p0, p1), Bisector(p1, p2))
	if err != nil {
		return Circle{}, err
	}
	c := Circle{
		Center: center,
		Radius: center.Distance(p2),
	}
	if c.IsInf() || c.IsNaN() {
		return Circle{}, fmt.Errorf("%w: circle through %v, %v and %v is not finite", ErrDegenerateConfiguration, p0, p1, p2)
	}
	return c, nil
}

// setArcThrough delimits the arc going from first to last by way of middle.
func (c *CircleFit) setArcThrough(first, middle, last Point) {
	c.start = first.Sub(c.Center).Angle()
	c.stop = last.Sub(c.Center).Angle()
	if middle.Sub(first).Cross(last.Sub(first)) < 0 {
		c.ccw = 1
	} else {
		c.ccw = -1
	}
	c.hasArc = true
}

// detectArc delimits the arc covered by points, using the first of sectors
// equal sectors around the center that contains none of them.
func (c *CircleFit) detectArc(points []Point, sectors int) {
	size := 2 * math.Pi / float64(sectors)
	counts := make([]int, sectors)
	angles := make([]float64, len(points))
	for i, pt := range points {
		// In [0, 2π]
		a := math.Pi + pt.Sub(c.Center).Angle()
		angles[i] = a
		// Exactly 2π lies on the seam and belongs to no sector.
		if k := int(a / size); k < sectors {
			counts[k]++
		}
	}

	gap := slices.Index(counts, 0)
	if gap < 0 {
		Logger().Debug("circle fit: no empty sector, not an arc",
			"center", c.Center, "radius", c.Radius, "sectors", sectors)
		return
	}

	// Measure angles from the lower bound of the gap, so that the arc
	// does not wrap around.
	bottom := float64(gap) * size
	start, stop := 2*math.Pi, 0.0
	for _, a := range angles {
		a -= bottom
		if a < 0 {
			a += 2 * math.Pi
		}
		start = min(start, a)
		stop = max(stop, a)
	}
	start += bottom - math.Pi
	stop += bottom - math.Pi
	if stop < start {
		stop += 2 * math.Pi
	}

	c.start, c.stop = start, stop
	c.ccw = -1
	c.hasArc = true
}

// MeanDistance returns the root mean square Euclidean distance of the
// fitted points to the circle.
func (c *CircleFit) MeanDistance() float64 { return c.meanDist }

// DistanceTo returns the root mean square Euclidean distance of points to
// the circle.
func (c *CircleFit) DistanceTo(points []Point) float64 {
	if len(points) == 0 {
		return math.NaN()
	}
	var sum float64
	for _, pt := range points {
		d := c.Circle.Distance(pt)
		sum += d * d
	}
	return math.Sqrt(sum / float64(len(points)))
}

// HasArc reports whether the fit is delimited to an arc.
func (c *CircleFit) HasArc() bool { return c.hasArc }

// Angles returns the angles of the start and the stop of the arc. ok is
// false if the fit has no arc.
func (c *CircleFit) Angles() (start, stop float64, ok bool) {
	return c.start, c.stop, c.hasArc
}

// CCW returns 1 if the arc runs counter-clockwise as seen in image
// coordinates, that is with decreasing angles, −1 if it runs clockwise and
// 0 if the fit has no arc.
func (c *CircleFit) CCW() int { return c.ccw }

// Reverse returns the same fit with the arc running the other way.
func (c *CircleFit) Reverse() *CircleFit {
	return &CircleFit{
		Circle:   c.Circle,
		meanDist: c.meanDist,
		hasArc:   c.hasArc,
		start:    c.stop,
		stop:     c.start,
		ccw:      -c.ccw,
	}
}

// ArcAngle returns the positive angle covered by the arc, in [0, 2π). It is
// 0 if the fit has no arc.
func (c *CircleFit) ArcAngle() float64 {
	if !c.hasArc {
		return 0
	}
	arc := c.stop - c.start
	if c.ccw == 1 {
		arc = -arc
	}
	arc = math.Mod(arc, 2*math.Pi)
	if arc < 0 {
		arc += 2 * math.Pi
	}
	return arc
}

// MidAngle returns the angle of the middle of the arc, in (−π, π].
func (c *CircleFit) MidAngle() float64 {
	half := c.ArcAngle() / 2
	mid := c.start + half
	if c.ccw == 1 {
		mid = c.start - half
	}
	for mid <= -math.Pi {
		mid += 2 * math.Pi
	}
	for mid > math.Pi {
		mid -= 2 * math.Pi
	}
	return mid
}

// Curve returns the cubic Bézier approximating the arc, running from left to
// right. ok is false if the fit has no arc or the arc is empty.
//
// The curve is computed on first use.
func (c *CircleFit) Curve() (curve CubicBez, ok bool) {
	c.curveOnce.Do(c.computeCurve)
	return c.curve, c.curveOK
}

func (c *CircleFit) computeCurve() {
	if !c.hasArc {
		return
	}
	span := c.ArcAngle()
	if !(span > 0) {
		return
	}

	// Unit arc centered on the positive x axis, from +span/2 to −span/2.
	y0, x0 := math.Sincos(span / 2)
	x1 := (4 - x0) / 3
	y1 := (1 - x0) * (3 - x0) / (3 * y0)
	unit := CubicBez{
		P0: Pt(x0, y0),
		P1: Pt(x1, y1),
		P2: Pt(x1, -y1),
		P3: Pt(x0, -y0),
	}

	op := Translate(Vec2(c.Center)).
		Mul(Scale(c.Radius, c.Radius)).
		Mul(Rotate(c.MidAngle()))
	curve := unit.Transform(op)
	if curve.P0.X > curve.P3.X {
		curve = curve.Reverse()
	}
	c.curve, c.curveOK = curve, true
}

// Arc returns the fitted arc, running from its start angle to its stop
// angle. Unlike [CircleFit.Curve], it can be flattened into as many cubic
// Béziers as a given accuracy needs. ok is false if the fit has no arc.
func (c *CircleFit) Arc() (arc Arc, ok bool) {
	if !c.hasArc {
		return Arc{}, false
	}
	sweep := c.ArcAngle()
	if c.ccw == 1 {
		sweep = -sweep
	}
	return Arc{
		Center:     c.Center,
		Radii:      Vec(c.Radius, c.Radius),
		StartAngle: c.start,
		SweepAngle: sweep,
	}, true
}

// MiddlePoint returns the point half-way along the Bézier arc.
func (c *CircleFit) MiddlePoint() (Point, bool) {
	curve, ok := c.Curve()
	if !ok {
		return Point{}, false
	}
	return curve.Eval(0.5), true
}

// Above reports whether the arc bulges upwards in image coordinates, that
// is whether its middle lies above the chord joining its ends, like /‾\.
func (c *CircleFit) Above() bool {
	curve, ok := c.Curve()
	if !ok {
		return false
	}
	chord := curve.P3.Sub(curve.P0)
	return chord.Cross(curve.Eval(0.5).Sub(curve.P0)) < 0
}

func (c *CircleFit) String() string {
	s := fmt.Sprintf("CircleFit{center=%v radius=%g dist=%g", c.Center, c.Radius, c.meanDist)
	if c.hasArc {
		s += fmt.Sprintf(" ccw=%d degrees=(%.0f, %.0f)", c.ccw, c.start*180/math.Pi, c.stop*180/math.Pi)
	}
	return s + "}"
}
