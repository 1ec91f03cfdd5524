package dist

import (
	"fmt"
	"math"
)

// UniformInt is the discrete uniform distribution on the integers in
// [lo, hi).
//
// PDF is the probability mass function. Variates are integers returned as
// float64, use DrawInt to get them as int64.
type UniformInt struct {
	lo, hi int64
}

var _ Distribution = UniformInt{}

// NewUniformInt creates a discrete uniform distribution on [lo, hi).
func NewUniformInt(lo, hi int64) (UniformInt, error) {
	if hi <= lo {
		return UniformInt{}, &DomainError{
			Dist:   "uniform_int",
			Param:  "hi",
			Value:  float64(hi),
			Reason: fmt.Sprintf("must be larger than lo %d", lo),
		}
	}
	return UniformInt{lo: lo, hi: hi}, nil
}

// Name returns "uniform_int".
func (UniformInt) Name() string { return "uniform_int" }

func (d UniformInt) String() string {
	return fmt.Sprintf("uniform_int(lo=%d, hi=%d)", d.lo, d.hi)
}

// Discrete reports that PDF is a probability mass function.
func (UniformInt) Discrete() bool { return true }

// DrawInt returns one variate.
func (d UniformInt) DrawInt(src Source) int64 {
	return src.UniformInt(d.lo, d.hi)
}

// Draw implements Distribution.
func (d UniformInt) Draw(src Source) float64 {
	return float64(d.DrawInt(src))
}

func (d UniformInt) count() float64 {
	return float64(uint64(d.hi) - uint64(d.lo))
}

// PDF implements Distribution.
func (d UniformInt) PDF(x float64) float64 {
	if x != math.Floor(x) || x < float64(d.lo) || x > float64(d.hi-1) {
		return 0
	}
	return 1 / d.count()
}

// CDF implements Distribution.
func (d UniformInt) CDF(x float64) float64 {
	switch {
	case x < float64(d.lo):
		return 0
	case x >= float64(d.hi-1):
		return 1
	}
	return (math.Floor(x) - float64(d.lo) + 1) / d.count()
}

// CompCDF implements Distribution.
func (d UniformInt) CompCDF(x float64) float64 {
	switch {
	case x < float64(d.lo):
		return 1
	case x >= float64(d.hi-1):
		return 0
	}
	return (float64(d.hi-1) - math.Floor(x)) / d.count()
}

// Mean implements Distribution.
func (d UniformInt) Mean() float64 {
	return 0.5 * (float64(d.lo) + float64(d.hi-1))
}

// Variance implements Distribution.
func (d UniformInt) Variance() float64 {
	n := d.count()
	return (n*n - 1) / 12
}

// Min implements Distribution.
func (d UniformInt) Min() float64 { return float64(d.lo) }

// Max implements Distribution.
func (d UniformInt) Max() float64 { return float64(d.hi - 1) }
