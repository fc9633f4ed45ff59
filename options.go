package curvefit

// DefaultSectors is the number of angular sectors scanned for an empty
// sector when delimiting the arc of a fitted circle.
const DefaultSectors = 8

// DefaultNegligible is the relative magnitude below which the cross term of
// a fitted ellipse is treated as zero.
const DefaultNegligible = 1e-10

// Option configures a circle or ellipse fit.
//
// Example:
//
//	c, err := curvefit.FitCircle(points, curvefit.WithSectors(12))
type Option func(*options)

type options struct {
	sectors    int
	negligible float64
	ordered    bool
}

func defaultOptions() options {
	return options{
		sectors:    DefaultSectors,
		negligible: DefaultNegligible,
	}
}

func applyOptions(opts []Option) options {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// WithSectors sets the number of equal sectors the full turn is divided into
// when looking for the gap that delimits an arc. More sectors detect wider
// arcs but need denser points. Values below 2 select [DefaultSectors].
func WithSectors(n int) Option {
	return func(o *options) {
		if n < 2 {
			n = DefaultSectors
		}
		o.sectors = n
	}
}

// WithNegligible sets the relative threshold under which the xy coefficient
// of a fitted ellipse is considered zero, making the ellipse axis-aligned.
// Non-positive values select [DefaultNegligible].
func WithNegligible(eps float64) Option {
	return func(o *options) {
		if !(eps > 0) {
			eps = DefaultNegligible
		}
		o.negligible = eps
	}
}

// WithOrderedPoints declares that the points handed to [FitCircle] are
// ordered along the arc. The arc then runs from the first point, through the
// middle one, to the last, instead of being delimited by an empty sector.
func WithOrderedPoints() Option {
	return func(o *options) {
		o.ordered = true
	}
}
