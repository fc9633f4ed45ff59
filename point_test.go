package curvefit

import (
	"math"
	"testing"
)

func TestPointCoord(t *testing.T) {
	p := Pt(3, -2)
	if got := p.Coord(XAxis); got != 3 {
		t.Errorf("got x = %g, want 3", got)
	}
	if got := p.Coord(YAxis); got != -2 {
		t.Errorf("got y = %g, want -2", got)
	}
	if got := Vec(1, 2).Coord(YAxis); got != 2 {
		t.Errorf("got %g, want 2", got)
	}
	if XAxis.Other() != YAxis || YAxis.Other() != XAxis {
		t.Error("Other should swap axes")
	}
}

func TestCentroid(t *testing.T) {
	pts := []Point{Pt(0, 0), Pt(4, 0), Pt(4, 2), Pt(0, 2)}
	assertNear(t, centroid(pts), Pt(2, 1), 1e-12)
}

func TestVecPerp(t *testing.T) {
	v := Vec(3, 4)
	p := v.Perp()
	if d := v.Dot(p); d != 0 {
		t.Errorf("perpendicular vector has dot product %g", d)
	}
	if c := v.Cross(p); c != v.Hypot2() {
		t.Errorf("got cross product %g, want %g", c, v.Hypot2())
	}
	if a := VecFromAngle(math.Pi / 2).Sub(Vec(1, 0).Perp()).Hypot(); a > 1e-12 {
		t.Errorf("Perp should rotate by a quarter turn, off by %g", a)
	}
}

func TestPointDistance(t *testing.T) {
	if d := Pt(1, 1).Distance(Pt(4, 5)); d != 5 {
		t.Errorf("got %g, want 5", d)
	}
	assertNear(t, Pt(0, 0).Midpoint(Pt(2, 4)), Pt(1, 2), 0)
	assertNear(t, Pt(0, 0).Lerp(Pt(2, 4), 0.25), Pt(0.5, 1), 1e-12)
}
