package curvefit

import (
	"fmt"
	"math"
)

// Bisector returns the perpendicular bisector of the segment from p to q, as
// a unit-parameter segment that starts at the midpoint of p and q.
//
// The bisector of two identical points is degenerate: both of its ends are
// the same point and it crosses no other line.
func Bisector(p, q Point) Line {
	mid := p.Midpoint(q)
	return Line{
		P0: mid,
		P1: mid.Translate(q.Sub(p).Perp()),
	}
}

// parallelEpsilon is the sine of the angle below which two lines are treated
// as parallel.
const parallelEpsilon = 1e-9

// Intersection returns the point where the infinite lines supporting l1 and
// l2 cross. Parallel, nearly parallel or degenerate lines yield
// [ErrDegenerateConfiguration].
func Intersection(l1, l2 Line) (Point, error) {
	ab := l1.P1.Sub(l1.P0)
	cd := l2.P1.Sub(l2.P0)
	if !(math.Abs(ab.Cross(cd)) > parallelEpsilon*ab.Hypot()*cd.Hypot()) {
		return Point{}, fmt.Errorf("%w: lines %v and %v are parallel", ErrDegenerateConfiguration, l1, l2)
	}
	pt, ok := l1.CrossingPoint(l2)
	if !ok || pt.IsNaN() || pt.IsInf() {
		return Point{}, fmt.Errorf("%w: lines %v and %v do not cross", ErrDegenerateConfiguration, l1, l2)
	}
	return pt, nil
}
