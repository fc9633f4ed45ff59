package curvefit

import (
	"math"
	"testing"
)

func TestLineCrossingPoint(t *testing.T) {
	hLine := Line{Pt(0.0, 0.0), Pt(100.0, 0.0)}
	vLine := Line{Pt(10.0, -10.0), Pt(10.0, 10.0)}
	p, ok := hLine.CrossingPoint(vLine)
	if !ok {
		t.Fatal("lines should cross")
	}
	assertNear(t, p, Pt(10, 0), 1e-9)

	// Infinite lines cross even outside of the segments.
	vLine = Line{Pt(-10.0, 10.0), Pt(-10.0, 20.0)}
	p, ok = hLine.CrossingPoint(vLine)
	if !ok {
		t.Fatal("lines should cross")
	}
	assertNear(t, p, Pt(-10, 0), 1e-9)

	if _, ok := hLine.CrossingPoint(Line{Pt(0, 1), Pt(5, 1)}); ok {
		t.Error("parallel lines should not cross")
	}
}

func TestLineEval(t *testing.T) {
	l := Line{Pt(1, 1), Pt(3, 5)}
	assertNear(t, l.Eval(0.5), Pt(2, 3), 1e-12)
	if got := l.Deriv(0.3); got != Vec(2, 4) {
		t.Errorf("got %v, want ⟨2, 4⟩", got)
	}
	if got := l.Length(); math.Abs(got-math.Sqrt(20)) > 1e-12 {
		t.Errorf("got length %g", got)
	}
}
