package curvefit

import "fmt"

type PathSegmentKind int

const (
	// A line segment.
	LineKind PathSegmentKind = iota + 1
	// A quadratic Bézier segment.
	QuadKind
	// A cubic Bézier segment.
	CubicKind
)

func (k PathSegmentKind) String() string {
	switch k {
	case LineKind:
		return "Line"
	case QuadKind:
		return "Quad"
	case CubicKind:
		return "Cubic"
	default:
		return "InvalidSegment"
	}
}

// PathSegment represents a segment of a [Path]. It is a tagged union of
// [Line], [QuadBez] and [CubicBez]; Kind selects which of the points are
// meaningful.
type PathSegment struct {
	// A struct rather than an interface keeps segments allocation free and
	// lets Line, QuadBez and CubicBez keep their own concrete methods.

	Kind PathSegmentKind
	P0   Point
	P1   Point
	P2   Point
	P3   Point
}

var _ ParametricCurve = PathSegment{}

func (seg PathSegment) String() string {
	switch seg.Kind {
	case LineKind:
		return fmt.Sprintf("Line(%s, %s)", seg.P0, seg.P1)
	case QuadKind:
		return fmt.Sprintf("Quad(%s, %s, %s)", seg.P0, seg.P1, seg.P2)
	case CubicKind:
		return fmt.Sprintf("Cubic(%s, %s, %s, %s)", seg.P0, seg.P1, seg.P2, seg.P3)
	default:
		return "InvalidSegment"
	}
}

// Line returns the line represented by this segment. This is only valid when
// Kind == LineKind.
func (seg PathSegment) Line() Line { return Line{seg.P0, seg.P1} }

// Quad returns the quadratic Bézier represented by this segment. This is only
// valid when Kind == QuadKind.
func (seg PathSegment) Quad() QuadBez { return QuadBez{seg.P0, seg.P1, seg.P2} }

// Cubic returns the cubic Bézier represented by this segment. This is only
// valid when Kind == CubicKind.
func (seg PathSegment) Cubic() CubicBez { return CubicBez{seg.P0, seg.P1, seg.P2, seg.P3} }

func (seg PathSegment) Eval(t float64) Point {
	switch seg.Kind {
	case LineKind:
		return seg.Line().Eval(t)
	case QuadKind:
		return seg.Quad().Eval(t)
	case CubicKind:
		return seg.Cubic().Eval(t)
	default:
		return Point{}
	}
}

// Deriv returns the derivative of the segment with respect to t.
func (seg PathSegment) Deriv(t float64) Vec2 {
	switch seg.Kind {
	case LineKind:
		return seg.Line().Deriv(t)
	case QuadKind:
		return seg.Quad().Deriv(t)
	case CubicKind:
		return seg.Cubic().Deriv(t)
	default:
		return Vec2{}
	}
}

func (seg PathSegment) Start() Point {
	return seg.P0
}

func (seg PathSegment) End() Point {
	switch seg.Kind {
	case LineKind:
		return seg.P1
	case QuadKind:
		return seg.P2
	case CubicKind:
		return seg.P3
	default:
		return Point{}
	}
}

func (seg PathSegment) Transform(aff Affine) PathSegment {
	return PathSegment{
		Kind: seg.Kind,
		P0:   seg.P0.Transform(aff),
		P1:   seg.P1.Transform(aff),
		P2:   seg.P2.Transform(aff),
		P3:   seg.P3.Transform(aff),
	}
}

// Covers reports whether coord lies between the segment's end points along
// axis, bounds included.
func (seg PathSegment) Covers(axis Axis, coord float64) bool {
	s := seg.Start().Coord(axis)
	e := seg.End().Coord(axis)
	return min(s, e) <= coord && coord <= max(s, e)
}

// paramAt maps coord to a curve parameter by linear interpolation between
// the segment's end points along axis. It also returns the span of the
// segment along that axis.
func (seg PathSegment) paramAt(axis Axis, coord float64) (t, span float64) {
	s := seg.Start().Coord(axis)
	span = seg.End().Coord(axis) - s
	if span == 0 {
		return 0, 0
	}
	return (coord - s) / span, span
}
