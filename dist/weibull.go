package dist

import (
	"fmt"
	"math"
)

// Weibull is the Weibull distribution with scale lambda and shape k.
type Weibull struct {
	lambda, k float64
	kRecip    float64
}

var (
	_ Distribution = Weibull{}
	_ Quantiler    = Weibull{}
)

// NewWeibull creates a Weibull distribution.
func NewWeibull(lambda, k float64) (Weibull, error) {
	if err := checkPositive("weibull", "lambda", lambda); err != nil {
		return Weibull{}, err
	}
	if err := checkPositive("weibull", "k", k); err != nil {
		return Weibull{}, err
	}
	return Weibull{lambda: lambda, k: k, kRecip: 1 / k}, nil
}

// Lambda returns the scale.
func (d Weibull) Lambda() float64 { return d.lambda }

// K returns the shape.
func (d Weibull) K() float64 { return d.k }

// Name returns "weibull".
func (Weibull) Name() string { return "weibull" }

func (d Weibull) String() string {
	return fmt.Sprintf("weibull(lambda=%g, k=%g)", d.lambda, d.k)
}

// Draw implements Distribution.
func (d Weibull) Draw(src Source) float64 {
	return flipFlop(d, src)
}

// PDF implements Distribution.
func (d Weibull) PDF(x float64) float64 {
	switch {
	case x < 0 || math.IsInf(x, 1):
		return 0
	case x == 0:
		switch {
		case d.k < 1:
			return math.Inf(1)
		case d.k == 1:
			return 1 / d.lambda
		default:
			return 0
		}
	}
	// In log space, so an overflowing (x/lambda)^k gives 0 and not Inf*0.
	logT := math.Log(x / d.lambda)
	return math.Exp(math.Log(d.k) - math.Log(x) + d.k*logT - math.Exp(d.k*logT))
}

// CDF implements Distribution.
func (d Weibull) CDF(x float64) float64 {
	if x <= 0 {
		return 0
	}
	return -math.Expm1(-math.Pow(x/d.lambda, d.k))
}

// CompCDF implements Distribution.
func (d Weibull) CompCDF(x float64) float64 {
	if x <= 0 {
		return 1
	}
	return math.Exp(-math.Pow(x/d.lambda, d.k))
}

// QSmall implements Quantiler.
func (d Weibull) QSmall(u float64) float64 {
	if !validU(u) {
		return math.NaN()
	}
	return d.lambda * math.Pow(-math.Log1p(-u), d.kRecip)
}

// QLarge implements Quantiler.
func (d Weibull) QLarge(u float64) float64 {
	if !validU(u) {
		return math.NaN()
	}
	return d.lambda * math.Pow(-math.Log(u), d.kRecip)
}

// Mean implements Distribution.
func (d Weibull) Mean() float64 {
	return d.lambda * math.Gamma(1+d.kRecip)
}

// Variance implements Distribution.
func (d Weibull) Variance() float64 {
	g1 := math.Gamma(1 + d.kRecip)
	return d.lambda * d.lambda * (math.Gamma(1+2*d.kRecip) - g1*g1)
}

// Min implements Distribution.
func (Weibull) Min() float64 { return 0 }

// Max implements Distribution.
func (Weibull) Max() float64 { return math.Inf(1) }
