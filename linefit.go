package curvefit

import (
	"fmt"
	"math"
)

// invertEpsilon is the magnitude under which a normalized line coefficient
// is treated as zero by the inverse queries.
const invertEpsilon = 1e-12

// LineSums are the sufficient statistics of a least-squares line: the number
// of points and the sums of their coordinates, squared coordinates and
// coordinate products.
type LineSums struct {
	N  int
	X  float64
	Y  float64
	X2 float64
	Y2 float64
	XY float64
}

// Add returns the statistics of the union of both point sets.
func (s LineSums) Add(o LineSums) LineSums {
	return LineSums{
		N:  s.N + o.N,
		X:  s.X + o.X,
		Y:  s.Y + o.Y,
		X2: s.X2 + o.X2,
		Y2: s.Y2 + o.Y2,
		XY: s.XY + o.XY,
	}
}

// Swap returns the statistics of the same points with x and y exchanged.
func (s LineSums) Swap() LineSums {
	return LineSums{
		N:  s.N,
		X:  s.Y,
		Y:  s.X,
		X2: s.Y2,
		Y2: s.X2,
		XY: s.XY,
	}
}

type lineState uint8

const (
	// lineStale means the coefficients must be recomputed from the sums.
	lineStale lineState = iota
	// lineFresh means the snapshot matches the sums.
	lineFresh
)

// lineSnapshot holds the coefficients derived from a given set of sums.
type lineSnapshot struct {
	a, b, c    float64
	horizontal bool
	meanDist   float64
	err        error
}

// LineFit is an incremental least-squares line a·x + b·y + c = 0, with
// a² + b² = 1.
//
// Points are accumulated into running sums; the coefficients are derived
// from the sums on the first query after a change and kept until the next
// change. The line is fitted as a function of whichever coordinate spreads
// the points more, so that both nearly horizontal and nearly vertical point
// sets are fitted without ill-conditioned divisions.
//
// The zero value is an empty fit ready to use. A LineFit must not be
// modified concurrently; concurrent queries are safe once a query has been
// made after the last modification.
type LineFit struct {
	sums  LineSums
	state lineState
	snap  lineSnapshot
}

// NewLineFit returns a line fitted to points.
func NewLineFit(points ...Point) *LineFit {
	l := &LineFit{}
	l.IncludePoints(points...)
	return l
}

// IncludePoint adds the point (x, y) to the fit.
func (l *LineFit) IncludePoint(x, y float64) {
	l.sums.N++
	l.sums.X += x
	l.sums.Y += y
	l.sums.X2 += x * x
	l.sums.Y2 += y * y
	l.sums.XY += x * y
	l.state = lineStale
}

// IncludePoints adds points to the fit.
func (l *LineFit) IncludePoints(points ...Point) {
	for _, pt := range points {
		l.IncludePoint(pt.X, pt.Y)
	}
}

// IncludeLine merges the points of o into l. The result is the same as if
// every point of o had been included in l.
func (l *LineFit) IncludeLine(o *LineFit) {
	l.sums = l.sums.Add(o.sums)
	l.state = lineStale
}

// Reset removes all points from the fit.
func (l *LineFit) Reset() {
	*l = LineFit{}
}

// Count returns the number of points included so far.
func (l *LineFit) Count() int { return l.sums.N }

// Sums returns the sufficient statistics of the fit.
func (l *LineFit) Sums() LineSums { return l.sums }

// SwappedCoordinates returns a new fit of the same points with x and y
// exchanged.
func (l *LineFit) SwappedCoordinates() *LineFit {
	return &LineFit{sums: l.sums.Swap()}
}

func (l *LineFit) snapshot() lineSnapshot {
	if l.state == lineFresh {
		return l.snap
	}
	l.snap = computeLine(l.sums)
	l.state = lineFresh
	return l.snap
}

func computeLine(s LineSums) lineSnapshot {
	if s.N < 2 {
		return lineSnapshot{err: fmt.Errorf("%w: %d point(s) included", ErrUndefinedLine, s.N)}
	}
	n := float64(s.N)
	hDen := n*s.X2 - s.X*s.X
	vDen := n*s.Y2 - s.Y*s.Y

	var snap lineSnapshot
	if math.Abs(hDen) >= math.Abs(vDen) {
		// y = f(x)
		snap.horizontal = true
		snap.a = (n*s.XY - s.X*s.Y) / hDen
		snap.b = -1
		snap.c = (s.Y*s.X2 - s.X*s.XY) / hDen
	} else {
		// x = f(y)
		snap.a = -1
		snap.b = (n*s.XY - s.X*s.Y) / vDen
		snap.c = (s.X*s.Y2 - s.Y*s.XY) / vDen
	}

	norm := math.Hypot(snap.a, snap.b)
	snap.a /= norm
	snap.b /= norm
	snap.c /= norm
	if math.IsNaN(snap.a) || math.IsNaN(snap.b) || math.IsNaN(snap.c) {
		return lineSnapshot{err: fmt.Errorf("%w: all %d points coincide", ErrUndefinedLine, s.N)}
	}

	a, b, c := snap.a, snap.b, snap.c
	sq := a*a*s.X2 + b*b*s.Y2 + n*c*c +
		2*a*b*s.XY + 2*a*c*s.X + 2*b*c*s.Y
	snap.meanDist = math.Sqrt(max(0, sq/n))
	return snap
}

// Coefficients returns the normalized coefficients of a·x + b·y + c = 0.
func (l *LineFit) Coefficients() (a, b, c float64, err error) {
	snap := l.snapshot()
	return snap.a, snap.b, snap.c, snap.err
}

// DistanceOf returns the signed distance of (x, y) to the line.
func (l *LineFit) DistanceOf(x, y float64) (float64, error) {
	snap := l.snapshot()
	if snap.err != nil {
		return 0, snap.err
	}
	return snap.a*x + snap.b*y + snap.c, nil
}

// Slope returns dy/dx. It is infinite for a vertical line.
func (l *LineFit) Slope() (float64, error) {
	snap := l.snapshot()
	if snap.err != nil {
		return 0, snap.err
	}
	return -snap.a / snap.b, nil
}

// InvertedSlope returns dx/dy. It is infinite for a horizontal line.
func (l *LineFit) InvertedSlope() (float64, error) {
	snap := l.snapshot()
	if snap.err != nil {
		return 0, snap.err
	}
	return -snap.b / snap.a, nil
}

// IsHorizontal reports whether the line was fitted as a function of x,
// that is whether it is closer to horizontal than to vertical.
func (l *LineFit) IsHorizontal() (bool, error) {
	snap := l.snapshot()
	return snap.horizontal, snap.err
}

// IsVertical reports whether the line was fitted as a function of y.
func (l *LineFit) IsVertical() (bool, error) {
	snap := l.snapshot()
	return !snap.horizontal, snap.err
}

// XAtY returns the abscissa of the line at ordinate y.
func (l *LineFit) XAtY(y float64) (float64, error) {
	snap := l.snapshot()
	if snap.err != nil {
		return 0, snap.err
	}
	if math.Abs(snap.a) < invertEpsilon {
		return 0, fmt.Errorf("%w: x of horizontal line at y=%g", ErrNonInvertible, y)
	}
	return -(snap.b*y + snap.c) / snap.a, nil
}

// YAtX returns the ordinate of the line at abscissa x.
func (l *LineFit) YAtX(x float64) (float64, error) {
	snap := l.snapshot()
	if snap.err != nil {
		return 0, snap.err
	}
	if math.Abs(snap.b) < invertEpsilon {
		return 0, fmt.Errorf("%w: y of vertical line at x=%g", ErrNonInvertible, x)
	}
	return -(snap.a*x + snap.c) / snap.b, nil
}

// MeanDistance returns the root mean square distance of the included points
// to the line, or NaN if the line is undefined.
func (l *LineFit) MeanDistance() float64 {
	snap := l.snapshot()
	if snap.err != nil {
		return math.NaN()
	}
	return snap.meanDist
}

// Line returns the segment of the fitted line between the projections of p
// and q onto it.
func (l *LineFit) Line(p, q Point) (Line, error) {
	snap := l.snapshot()
	if snap.err != nil {
		return Line{}, snap.err
	}
	n := Vec(snap.a, snap.b)
	project := func(pt Point) Point {
		return pt.Translate(n.Mul(-(snap.a*pt.X + snap.b*pt.Y + snap.c)))
	}
	return Line{project(p), project(q)}, nil
}

func (l *LineFit) String() string {
	a, b, c, err := l.Coefficients()
	if err != nil {
		return fmt.Sprintf("LineFit{n=%d undefined}", l.sums.N)
	}
	return fmt.Sprintf("LineFit{n=%d %g·x%+g·y%+g=0 dist=%g}", l.sums.N, a, b, c, l.MeanDistance())
}
