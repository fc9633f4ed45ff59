package curvefit

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestOptions(t *testing.T) {
	o := applyOptions(nil)
	diff(t, defaultOptions(), o, cmp.AllowUnexported(options{}))

	o = applyOptions([]Option{WithSectors(16), WithNegligible(1e-6), WithOrderedPoints()})
	if o.sectors != 16 || o.negligible != 1e-6 || !o.ordered {
		t.Errorf("options not applied: %+v", o)
	}

	o = applyOptions([]Option{WithSectors(1), WithNegligible(-1)})
	if o.sectors != DefaultSectors || o.negligible != DefaultNegligible {
		t.Errorf("invalid values should select the defaults, got %+v", o)
	}
}

func TestLogger(t *testing.T) {
	if Logger() == nil {
		t.Fatal("default logger is nil")
	}
	if Logger().Enabled(context.Background(), slog.LevelError) {
		t.Error("default logger should be silent")
	}

	l := slog.New(slog.NewTextHandler(io.Discard, nil))
	SetLogger(l)
	t.Cleanup(func() { SetLogger(nil) })
	if Logger() != l {
		t.Error("SetLogger did not install the logger")
	}
	SetLogger(nil)
	if Logger().Enabled(context.Background(), slog.LevelError) {
		t.Error("SetLogger(nil) should restore the silent logger")
	}
}
