package curvefit

import (
	"fmt"
	"iter"
	"slices"
)

// Path is a sequence of segments chained start to end. It is built by
// [NaturalSpline], but any chain of segments can be queried the same way.
//
// The coordinate queries ValueAt and DerivativeAt assume the path is a
// function of the queried axis: along that axis, segments do not overlap
// except at shared end points. Within a segment, the parameter t is taken
// to vary linearly with the queried coordinate, which is exact for lines
// and for splines whose knots are evenly spaced along the axis.
type Path []PathSegment

// Push appends a segment to the path.
func (p *Path) Push(seg PathSegment) {
	*p = append(*p, seg)
}

// Segments returns an iterator over the path's segments.
func (p Path) Segments() iter.Seq[PathSegment] { return slices.Values(p) }

// Start returns the start point of the first segment.
func (p Path) Start() Point {
	if len(p) == 0 {
		return Point{}
	}
	return p[0].Start()
}

// End returns the end point of the last segment.
func (p Path) End() Point {
	if len(p) == 0 {
		return Point{}
	}
	return p[len(p)-1].End()
}

// Domain returns the range of coordinates along axis spanned by the path's
// end points.
func (p Path) Domain(axis Axis) (lo, hi float64) {
	s, e := p.Start().Coord(axis), p.End().Coord(axis)
	return min(s, e), max(s, e)
}

// SegmentAt returns the index of the first segment covering coord along
// axis.
func (p Path) SegmentAt(axis Axis, coord float64) (int, error) {
	for i, seg := range p {
		if seg.Covers(axis, coord) {
			return i, nil
		}
	}
	lo, hi := p.Domain(axis)
	return -1, fmt.Errorf("%w: %s=%g not in [%g, %g]", ErrOutOfRange, axis, coord, lo, hi)
}

// ValueAt returns the coordinate along the other axis of the point of the
// path whose coordinate along axis is coord.
func (p Path) ValueAt(axis Axis, coord float64) (float64, error) {
	i, err := p.SegmentAt(axis, coord)
	if err != nil {
		return 0, err
	}
	seg := p[i]
	t, _ := seg.paramAt(axis, coord)
	return seg.Eval(t).Coord(axis.Other()), nil
}

// DerivativeAt returns the derivative of the other coordinate with respect to
// the coordinate along axis, at coord.
func (p Path) DerivativeAt(axis Axis, coord float64) (float64, error) {
	i, err := p.SegmentAt(axis, coord)
	if err != nil {
		return 0, err
	}
	seg := p[i]
	t, span := seg.paramAt(axis, coord)
	if span == 0 {
		return 0, fmt.Errorf("%w: segment %d is orthogonal to the %s axis", ErrNonInvertible, i, axis)
	}
	return seg.Deriv(t).Coord(axis.Other()) / span, nil
}

// YAtX returns the ordinate of the path at abscissa x.
func (p Path) YAtX(x float64) (float64, error) {
	return p.ValueAt(XAxis, x)
}

// XAtY returns the abscissa of the path at ordinate y.
func (p Path) XAtY(y float64) (float64, error) {
	return p.ValueAt(YAxis, y)
}
