package dist

import (
	"fmt"
	"math"
)

// Exponential is the exponential distribution with mean mu.
type Exponential struct {
	mu float64
}

var (
	_ Distribution = Exponential{}
	_ Quantiler    = Exponential{}
)

// NewExponential creates an exponential distribution with mean mu, the
// reciprocal of its rate.
func NewExponential(mu float64) (Exponential, error) {
	if err := checkPositive("exponential", "mu", mu); err != nil {
		return Exponential{}, err
	}
	return Exponential{mu: mu}, nil
}

// Mu returns the mean.
func (d Exponential) Mu() float64 { return d.mu }

// Name returns "exponential".
func (Exponential) Name() string { return "exponential" }

func (d Exponential) String() string {
	return fmt.Sprintf("exponential(mu=%g)", d.mu)
}

// Draw implements Distribution.
func (d Exponential) Draw(src Source) float64 {
	return flipFlop(d, src)
}

// PDF implements Distribution.
func (d Exponential) PDF(x float64) float64 {
	if x < 0 {
		return 0
	}
	return math.Exp(-x/d.mu) / d.mu
}

// CDF implements Distribution.
func (d Exponential) CDF(x float64) float64 {
	if x <= 0 {
		return 0
	}
	return -math.Expm1(-x / d.mu)
}

// CompCDF implements Distribution.
func (d Exponential) CompCDF(x float64) float64 {
	if x <= 0 {
		return 1
	}
	return math.Exp(-x / d.mu)
}

// QSmall implements Quantiler.
func (d Exponential) QSmall(u float64) float64 {
	if !validU(u) {
		return math.NaN()
	}
	return -d.mu * math.Log1p(-u)
}

// QLarge implements Quantiler.
func (d Exponential) QLarge(u float64) float64 {
	if !validU(u) {
		return math.NaN()
	}
	return -d.mu * math.Log(u)
}

// Mean implements Distribution.
func (d Exponential) Mean() float64 { return d.mu }

// Variance implements Distribution.
func (d Exponential) Variance() float64 { return d.mu * d.mu }

// Min implements Distribution.
func (Exponential) Min() float64 { return 0 }

// Max implements Distribution.
func (Exponential) Max() float64 { return math.Inf(1) }
