package curvefit

import "testing"

func TestQuadThrough(t *testing.T) {
	q := QuadThrough(Pt(0, 0), Pt(1, 1), Pt(2, 0))
	diff(t, QuadBez{Pt(0, 0), Pt(1, 2), Pt(2, 0)}, q)
	assertNear(t, q.Eval(0.5), Pt(1, 1), 0)

	q = QuadThrough(Pt(-3, 7), Pt(2, -1), Pt(4, 4))
	assertNear(t, q.Eval(0.5), Pt(2, -1), 1e-12)
}

func TestQuadBezDeriv(t *testing.T) {
	q := QuadBez{Pt(0.0, 0.0), Pt(0.0, 0.5), Pt(1.0, 1.0)}
	const n = 10
	const delta = 1e-6
	for i := range n + 1 {
		ts := float64(i) / float64(n)
		p := q.Eval(ts)
		p1 := q.Eval(ts + delta)
		dApprox := p1.Sub(p).Mul(1.0 / delta)
		if l := q.Deriv(ts).Sub(dApprox).Hypot(); l >= delta*2 {
			t.Errorf("got difference of %g, want at most %g", l, delta*2)
		}
	}
}
