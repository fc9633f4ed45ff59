package curvefit

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func diff(t *testing.T, want, got any, opts ...cmp.Option) {
	t.Helper()
	if d := cmp.Diff(want, got, opts...); d != "" {
		t.Error(d)
	}
}

func assertNear(t *testing.T, p0 Point, p1 Point, epsilon float64) {
	t.Helper()
	if d := p1.Sub(p0).Hypot(); d > epsilon {
		t.Fatalf("got %s, expected %s", p0, p1)
	}
}

func assertClose(t *testing.T, got, want, epsilon float64) {
	t.Helper()
	if d := math.Abs(got - want); !(d <= epsilon) {
		t.Fatalf("got %g, expected %g (|Δ| = %g > %g)", got, want, d, epsilon)
	}
}

// onEllipse returns n points evenly spaced in eccentric angle on the
// ellipse with the given center, radii and rotation.
func onEllipse(center Point, radii Vec2, rotation float64, n int) []Point {
	e := NewEllipse(center, radii, rotation)
	pts := make([]Point, n)
	for i := range pts {
		pts[i] = e.PointAt(2 * math.Pi * float64(i) / float64(n))
	}
	return pts
}

// onCircle returns n points evenly spaced on the arc of the circle from
// angle start to angle stop, both included.
func onCircle(center Point, radius, start, stop float64, n int) []Point {
	c := Circle{center, radius}
	pts := make([]Point, n)
	for i := range pts {
		pts[i] = c.PointAt(start + (stop-start)*float64(i)/float64(n-1))
	}
	return pts
}
