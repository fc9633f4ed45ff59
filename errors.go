package curvefit

import "errors"

var (
	// ErrInsufficientPoints is returned when fewer points are supplied than
	// a fitter requires: 2 for lines and splines, 3 for circles and
	// parabolas, 6 for ellipses.
	ErrInsufficientPoints = errors.New("curvefit: insufficient points")

	// ErrUndefinedLine is returned when the coefficients of a [LineFit] are
	// queried before two distinct points have been included.
	ErrUndefinedLine = errors.New("curvefit: undefined line")

	// ErrNonInvertible is returned by inverse queries that have no
	// solution, such as the abscissa of a horizontal line at a given
	// ordinate, or the slope of a path segment that is orthogonal to the
	// queried axis.
	ErrNonInvertible = errors.New("curvefit: not invertible")

	// ErrDegenerateConfiguration is returned when the points do not
	// determine a unique curve, for instance collinear points handed to the
	// circle fitter.
	ErrDegenerateConfiguration = errors.New("curvefit: degenerate configuration")

	// ErrOutOfRange is returned when a path is queried outside of the
	// coordinate domain covered by its segments.
	ErrOutOfRange = errors.New("curvefit: coordinate out of range")
)
