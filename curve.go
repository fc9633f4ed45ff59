package curvefit

// ParametricCurve describes a curve parametrized by a scalar t ∈ [0, 1].
type ParametricCurve interface {
	// Eval evaluates the curve at parameter t.
	Eval(t float64) Point
	Start() Point
	End() Point
}

// Fit is implemented by every fitted model. MeanDistance reports how well the
// model describes the points it was fitted to; lower is better, and zero
// means every point lies exactly on the model.
//
// The metric is the Euclidean distance for lines and circles, the vertical
// residual for parabolas, and the algebraic distance for ellipses. Values
// are therefore only comparable within one family of curves.
type Fit interface {
	MeanDistance() float64
}

var (
	_ Fit = (*LineFit)(nil)
	_ Fit = (*CircleFit)(nil)
	_ Fit = (*EllipseFit)(nil)
	_ Fit = (*ParabolaFit)(nil)
)

// Axis selects one of the two coordinates of the plane.
type Axis int

const (
	// XAxis selects abscissae.
	XAxis Axis = iota
	// YAxis selects ordinates.
	YAxis
)

// Other returns the axis that is not a.
func (a Axis) Other() Axis {
	if a == XAxis {
		return YAxis
	}
	return XAxis
}

func (a Axis) String() string {
	switch a {
	case XAxis:
		return "x"
	case YAxis:
		return "y"
	default:
		return "invalid axis"
	}
}
