package curvefit

import (
	"math"
	"testing"
)

func TestCircleWinding(t *testing.T) {
	center := Pt(5, 5)
	c := Circle{center, 5}
	if w := c.Winding(center); w != 1 {
		t.Errorf("got winding number %d, expected 1", w)
	}
	if c.Contains(Pt(10.5, 5)) {
		t.Error("point outside of the circle is contained")
	}

	cNegRadius := Circle{center, -5}
	if w := cNegRadius.Winding(center); w != 1 {
		t.Errorf("got winding number %d, expected 1", w)
	}
}

func TestCircleFinite(t *testing.T) {
	c := Circle{Pt(1, 2), 3}.Translate(Vec(-1, 1))
	assertNear(t, c.Center, Pt(0, 3), 1e-12)
	if c.IsInf() || c.IsNaN() {
		t.Errorf("%v is not finite", c)
	}
	if !(Circle{Pt(math.Inf(1), 0), 1}).IsInf() {
		t.Error("circle with an infinite center is finite")
	}
	if !(Circle{Pt(0, 0), math.NaN()}).IsNaN() {
		t.Error("circle with a NaN radius is not NaN")
	}
}

func TestCirclePointAt(t *testing.T) {
	c := Circle{Pt(1, 2), 3}
	assertNear(t, c.PointAt(0), Pt(4, 2), 1e-12)
	assertNear(t, c.PointAt(math.Pi/2), Pt(1, 5), 1e-12)
	assertClose(t, c.Distance(Pt(1, 7)), 2, 1e-12)
	assertClose(t, c.Distance(Pt(1, 2)), -3, 1e-12)
}
