// Package curvefit fits simple geometric models to 2D point clouds, such as
// the pixels of a scanned or rasterized drawing, and expresses the results
// as Bézier curves.
//
// # Features
//
// We provide the following fitters:
//
//   - Incremental least squares lines, accumulated point by point (see [LineFit])
//   - Circles fitted algebraically to any number of points, or through three
//     points, with detection of the arc the points cover (see [FitCircle],
//     [FitCircleThrough] and [CircleThrough])
//   - Ellipses fitted by direct least squares, with their center, axes and
//     orientation (see [FitEllipse])
//   - Parabolas y = a·x² + b·x + c (see [FitParabola])
//   - Natural cubic splines through ordered knots (see [NaturalSpline])
//
// Every fitted model implements [Fit] and reports how well it describes its
// points through MeanDistance.
//
// # Coordinates
//
// Points are expected in image coordinates, with y growing downwards. Angles
// are measured with atan2 and thus increase clockwise as seen on screen. A
// fitted arc that runs counter-clockwise on screen, that is with decreasing
// angles, has a [CircleFit.CCW] of 1.
//
// # Curves and paths
//
// Fitted arcs are approximated by a single cubic Bézier ([CircleFit.Curve])
// or by as many as a tolerance requires ([Arc.Cubics]). Splines are returned
// as a [Path], a chain of [PathSegment] values that can be queried as a
// function of either coordinate with [Path.YAtX] and [Path.XAtY].
//
// # Errors
//
// Fitters return errors wrapping one of [ErrInsufficientPoints],
// [ErrUndefinedLine], [ErrNonInvertible], [ErrDegenerateConfiguration] and
// [ErrOutOfRange]; use [errors.Is] to tell them apart. A circle fit for which
// no arc can be delimited is not an error.
//
// # Logging
//
// The fitters log diagnostics at debug level through [log/slog]. Nothing is
// logged unless a logger is installed with [SetLogger].
//
// # Literature
//
// This package makes use of the following ideas:
//   - [Numerically stable direct least squares fitting of ellipses] by Halíř and Flusser
//   - [Approximate a circle with cubic Bézier curves] by Spencer Mortensen
//   - [A Primer on Bézier Curves]
//
// [Numerically stable direct least squares fitting of ellipses]: https://autotrace.sourceforge.net/WSCG98.pdf
// [Approximate a circle with cubic Bézier curves]: https://spencermortensen.com/articles/bezier-circle/
// [A Primer on Bézier Curves]: https://pomax.github.io/bezierinfo/
package curvefit
