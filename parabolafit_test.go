package curvefit

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFitParabolaExact(t *testing.T) {
	f := func(x float64) float64 { return 2*x*x - 3*x + 1 }
	var pts []Point
	for x := -2.0; x <= 3; x += 0.5 {
		pts = append(pts, Pt(x, f(x)))
	}
	p, err := FitParabola(pts)
	require.NoError(t, err)
	assertClose(t, p.A, 2, 1e-9)
	assertClose(t, p.B, -3, 1e-9)
	assertClose(t, p.C, 1, 1e-9)
	assertClose(t, p.MeanDistance(), 0, 1e-9)

	assertClose(t, p.YAt(10), f(10), 1e-6)
	assertClose(t, p.DerivativeAt(1), 1, 1e-9)
	v, ok := p.Vertex()
	require.True(t, ok)
	assertNear(t, v, Pt(0.75, -0.125), 1e-9)
}

func TestFitParabolaResidual(t *testing.T) {
	// Symmetric points one unit above and below y = x².
	pts := []Point{Pt(-1, 2), Pt(-1, 0), Pt(0, 1), Pt(0, -1), Pt(1, 2), Pt(1, 0)}
	p, err := FitParabola(pts)
	require.NoError(t, err)
	assertClose(t, p.A, 1, 1e-12)
	assertClose(t, p.B, 0, 1e-12)
	assertClose(t, p.C, 0, 1e-12)
	assertClose(t, p.MeanDistance(), 1, 1e-12)
}

func TestFitParabolaErrors(t *testing.T) {
	_, err := FitParabola([]Point{Pt(0, 0), Pt(1, 1)})
	require.ErrorIs(t, err, ErrInsufficientPoints)

	_, err = FitParabola([]Point{Pt(1, 0), Pt(1, 1), Pt(1, 2)})
	require.ErrorIs(t, err, ErrDegenerateConfiguration)

	_, err = FitParabola([]Point{Pt(0, 0), Pt(1, 1), Pt(0, 2), Pt(1, 3)})
	require.ErrorIs(t, err, ErrDegenerateConfiguration)

	_, err = FitParabola([]Point{Pt(0, 0), Pt(0, 1), Pt(0, 2)})
	require.ErrorIs(t, err, ErrDegenerateConfiguration)
}

func TestParabolaVertexOfLine(t *testing.T) {
	p := &ParabolaFit{A: 0, B: 2, C: 1}
	if _, ok := p.Vertex(); ok {
		t.Error("a line has no vertex")
	}
	if d := p.DerivativeAt(math.Pi); d != 2 {
		t.Errorf("got derivative %g, want 2", d)
	}
}

func TestFitParabolaPixelCoordinates(t *testing.T) {
	// Power sums of raw abscissae around 1000 are huge compared to the
	// spread of the points.
	f := func(x float64) float64 { return 0.5*x*x - 1003*x + 2e5 }
	var pts []Point
	for x := 1000.0; x <= 1020; x++ {
		pts = append(pts, Pt(x, f(x)))
	}
	p, err := FitParabola(pts)
	require.NoError(t, err)
	assertClose(t, p.A, 0.5, 1e-9)
	assertClose(t, p.YAt(1010), f(1010), 1e-4)
	assertClose(t, p.DerivativeAt(1003), 0, 1e-6)
	assertClose(t, p.MeanDistance(), 0, 1e-4)

	g := func(x float64) float64 { return 0.002*x*x - 5*x + 3000 }
	pts = pts[:0]
	for x := 1000.0; x <= 2000; x += 50 {
		pts = append(pts, Pt(x, g(x)))
	}
	p, err = FitParabola(pts)
	require.NoError(t, err)
	assertClose(t, p.A, 0.002, 1e-12)
	assertClose(t, p.B, -5, 1e-8)
	assertClose(t, p.C, 3000, 1e-5)
	v, ok := p.Vertex()
	require.True(t, ok)
	assertNear(t, v, Pt(1250, g(1250)), 1e-5)
}
