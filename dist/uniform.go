package dist

import (
	"fmt"
	"math"
)

// Uniform is the continuous uniform distribution on [min, max].
//
// Draw is a quantile flip-flop, so variates close to either bound keep the
// precision of HalfU relative to the width.
type Uniform struct {
	min, max float64
	width    float64
}

var (
	_ Distribution = Uniform{}
	_ Quantiler    = Uniform{}
)

// NewUniform creates a uniform distribution on [min, max].
func NewUniform(min, max float64) (Uniform, error) {
	if err := checkFinite("uniform", "min", min); err != nil {
		return Uniform{}, err
	}
	if err := checkFinite("uniform", "max", max); err != nil {
		return Uniform{}, err
	}
	width := max - min
	if !(width > 0) || math.IsInf(width, 1) {
		return Uniform{}, &DomainError{
			Dist:   "uniform",
			Param:  "max",
			Value:  max,
			Reason: fmt.Sprintf("must be larger than min %v by a finite amount", min),
		}
	}
	return Uniform{min: min, max: max, width: width}, nil
}

// Name returns "uniform".
func (Uniform) Name() string { return "uniform" }

func (d Uniform) String() string {
	return fmt.Sprintf("uniform(min=%g, max=%g)", d.min, d.max)
}

// Draw implements Distribution.
func (d Uniform) Draw(src Source) float64 {
	return flipFlop(d, src)
}

// PDF implements Distribution.
func (d Uniform) PDF(x float64) float64 {
	if x < d.min || x > d.max {
		return 0
	}
	return 1 / d.width
}

// CDF implements Distribution.
func (d Uniform) CDF(x float64) float64 {
	switch {
	case x <= d.min:
		return 0
	case x >= d.max:
		return 1
	}
	return (x - d.min) / d.width
}

// CompCDF implements Distribution.
func (d Uniform) CompCDF(x float64) float64 {
	switch {
	case x <= d.min:
		return 1
	case x >= d.max:
		return 0
	}
	return (d.max - x) / d.width
}

// QSmall implements Quantiler.
//
// CDF(QSmall(u)) matches u to a relative error of about
// epsilon*|min|/(width*u), which is exact only when min is 0.
func (d Uniform) QSmall(u float64) float64 {
	if !validU(u) {
		return math.NaN()
	}
	return d.min + d.width*u
}

// QLarge implements Quantiler.
//
// CompCDF(QLarge(u)) matches u to a relative error of about
// epsilon*|max|/(width*u), which is exact only when max is 0.
func (d Uniform) QLarge(u float64) float64 {
	if !validU(u) {
		return math.NaN()
	}
	return d.max - d.width*u
}

// Mean implements Distribution.
func (d Uniform) Mean() float64 { return d.min + 0.5*d.width }

// Variance implements Distribution.
func (d Uniform) Variance() float64 { return d.width * d.width / 12 }

// Min implements Distribution.
func (d Uniform) Min() float64 { return d.min }

// Max implements Distribution.
func (d Uniform) Max() float64 { return d.max }
