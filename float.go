package bon

import (
	"math"
	"strconv"

	"github.com/brimdata/bon/bonerr"
)

// Float is a finite float64.  The zero Float is 0.0.  A Float can only be
// constructed through NewFloat (or MustFloat) so a NaN or infinity never
// reaches the codec.
type Float struct {
	f float64
}

func (Float) bonValue() {}

// NewFloat returns f as a Float or a bonerr.NotANumber error if f is NaN or
// infinite.
func NewFloat(f float64) (Float, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return Float{}, bonerr.E(bonerr.NotANumber, "float %v is not finite", f)
	}
	return Float{f}, nil
}

// MustFloat is like NewFloat but panics on a non-finite input.
func MustFloat(f float64) Float {
	v, err := NewFloat(f)
	if err != nil {
		panic(err)
	}
	return v
}

func (f Float) Float64() float64 {
	return f.f
}

// String formats f so that integral values keep a decimal point and remain
// distinguishable from an Int.
func (f Float) String() string {
	if f.f == math.Trunc(f.f) && math.Abs(f.f) < 1e21 {
		return strconv.FormatFloat(f.f, 'f', 1, 64)
	}
	return strconv.FormatFloat(f.f, 'g', -1, 64)
}
