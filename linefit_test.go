package curvefit

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/require"
)

func TestLineFitNormalized(t *testing.T) {
	for _, pts := range [][]Point{
		{Pt(0, 0), Pt(1, 2)},
		{Pt(3, 1), Pt(4, 7), Pt(2, 2), Pt(8, 5)},
		{Pt(100, 50), Pt(101, 90), Pt(99, 130)},
		{Pt(-5, 2), Pt(5, 2.5)},
	} {
		l := NewLineFit(pts...)
		a, b, _, err := l.Coefficients()
		require.NoError(t, err)
		assertClose(t, a*a+b*b, 1, 1e-9)
	}
}

func TestLineFitCollinear(t *testing.T) {
	l := NewLineFit(Pt(0, 0), Pt(1, 1), Pt(2, 2), Pt(3, 3))
	a, b, c, err := l.Coefficients()
	require.NoError(t, err)
	if a < 0 {
		a, b, c = -a, -b, -c
	}
	diff(t, []float64{math.Sqrt2 / 2, -math.Sqrt2 / 2, 0}, []float64{a, b, c}, cmpopts.EquateApprox(0, 1e-8))
	assertClose(t, l.MeanDistance(), 0, 1e-9)

	slope, err := l.Slope()
	require.NoError(t, err)
	assertClose(t, slope, 1, 1e-12)
	y, err := l.YAtX(10)
	require.NoError(t, err)
	assertClose(t, y, 10, 1e-9)
}

func TestLineFitMeanDistance(t *testing.T) {
	// Points alternately 1 above and below y = 2.
	l := NewLineFit(Pt(0, 1), Pt(1, 3), Pt(2, 1), Pt(3, 3))
	horizontal, err := l.IsHorizontal()
	require.NoError(t, err)
	if !horizontal {
		t.Fatal("line should be horizontal")
	}
	// Least squares over y = 2 + s·(x − 1.5): the residuals are not all 1,
	// compare against a direct summation instead.
	var sum float64
	for _, p := range []Point{Pt(0, 1), Pt(1, 3), Pt(2, 1), Pt(3, 3)} {
		d, err := l.DistanceOf(p.X, p.Y)
		require.NoError(t, err)
		sum += d * d
	}
	assertClose(t, l.MeanDistance(), math.Sqrt(sum/4), 1e-9)
}

func TestLineFitMerge(t *testing.T) {
	pts := []Point{Pt(0, 0.1), Pt(1, 1.2), Pt(2, 1.9), Pt(3, 3.2), Pt(4, 3.9), Pt(5, 5.1), Pt(6, 5.8)}
	all := NewLineFit(pts...)
	for k := 1; k < len(pts); k++ {
		left := NewLineFit(pts[:k]...)
		right := NewLineFit(pts[k:]...)
		left.IncludeLine(right)

		a0, b0, c0, err := all.Coefficients()
		require.NoError(t, err)
		a1, b1, c1, err := left.Coefficients()
		require.NoError(t, err)
		diff(t, []float64{a0, b0, c0}, []float64{a1, b1, c1}, cmpopts.EquateApprox(0, 1e-9))
		if left.Count() != len(pts) {
			t.Errorf("got %d points, want %d", left.Count(), len(pts))
		}
	}
}

func TestLineFitIncremental(t *testing.T) {
	var l LineFit
	_, _, _, err := l.Coefficients()
	require.ErrorIs(t, err, ErrUndefinedLine)
	if !math.IsNaN(l.MeanDistance()) {
		t.Error("mean distance of an undefined line should be NaN")
	}

	l.IncludePoint(0, 0)
	_, err = l.Slope()
	require.ErrorIs(t, err, ErrUndefinedLine)

	l.IncludePoint(2, 1)
	slope, err := l.Slope()
	require.NoError(t, err)
	assertClose(t, slope, 0.5, 1e-12)

	// A new point invalidates the cached coefficients.
	l.IncludePoint(4, 3)
	slope, err = l.Slope()
	require.NoError(t, err)
	assertClose(t, slope, 0.75, 1e-12)

	l.Reset()
	if l.Count() != 0 {
		t.Errorf("got %d points after reset", l.Count())
	}
	_, _, _, err = l.Coefficients()
	require.ErrorIs(t, err, ErrUndefinedLine)
}

func TestLineFitCoincidentPoints(t *testing.T) {
	l := NewLineFit(Pt(1, 1), Pt(1, 1), Pt(1, 1))
	_, _, _, err := l.Coefficients()
	require.ErrorIs(t, err, ErrUndefinedLine)
}

func TestLineFitHorizontal(t *testing.T) {
	l := NewLineFit(Pt(0, 0), Pt(1, 0), Pt(2, 0))
	_, err := l.XAtY(0)
	require.ErrorIs(t, err, ErrNonInvertible)

	y, err := l.YAtX(5)
	require.NoError(t, err)
	assertClose(t, y, 0, 1e-12)
	if v, _ := l.IsVertical(); v {
		t.Error("horizontal line reported as vertical")
	}
}

func TestLineFitVertical(t *testing.T) {
	l := NewLineFit(Pt(3, 0), Pt(3, 1), Pt(3, 2), Pt(3, 5))
	vertical, err := l.IsVertical()
	require.NoError(t, err)
	if !vertical {
		t.Fatal("line should be vertical")
	}
	_, err = l.YAtX(3)
	require.ErrorIs(t, err, ErrNonInvertible)

	x, err := l.XAtY(100)
	require.NoError(t, err)
	assertClose(t, x, 3, 1e-12)
	inv, err := l.InvertedSlope()
	require.NoError(t, err)
	assertClose(t, inv, 0, 1e-12)
	assertClose(t, l.MeanDistance(), 0, 1e-9)
}

func TestLineFitSwappedCoordinates(t *testing.T) {
	pts := []Point{Pt(0, 1), Pt(1, 3), Pt(2, 5.5), Pt(3, 7)}
	l := NewLineFit(pts...)
	s := l.SwappedCoordinates()

	var swapped []Point
	for _, p := range pts {
		swapped = append(swapped, Pt(p.Y, p.X))
	}
	diff(t, NewLineFit(swapped...).Sums(), s.Sums())

	for _, x := range []float64{-1, 0.5, 4} {
		y, err := l.YAtX(x)
		require.NoError(t, err)
		x2, err := s.YAtX(y)
		require.NoError(t, err)
		assertClose(t, x2, x, 1e-9)
	}
}

func TestLineFitLine(t *testing.T) {
	l := NewLineFit(Pt(0, 1), Pt(4, 1))
	seg, err := l.Line(Pt(0, 5), Pt(4, -3))
	require.NoError(t, err)
	assertNear(t, seg.P0, Pt(0, 1), 1e-12)
	assertNear(t, seg.P1, Pt(4, 1), 1e-12)
}
