package dist

import (
	"fmt"
	"math"
)

// Pareto is the Pareto (type I) distribution with scale xm and shape alpha.
//
// Its quantile function is singular only at u == 1, so Draw takes a single
// U01 and needs no flip-flop: xm * U01^(-1/alpha).
type Pareto struct {
	xm, alpha float64
}

var (
	_ Distribution = Pareto{}
	_ Quantiler    = Pareto{}
)

// NewPareto creates a Pareto distribution with support [xm, +Inf).
func NewPareto(xm, alpha float64) (Pareto, error) {
	if err := checkPositive("pareto", "xm", xm); err != nil {
		return Pareto{}, err
	}
	if err := checkPositive("pareto", "alpha", alpha); err != nil {
		return Pareto{}, err
	}
	return Pareto{xm: xm, alpha: alpha}, nil
}

// Xm returns the scale, which is also the minimum.
func (d Pareto) Xm() float64 { return d.xm }

// Alpha returns the shape.
func (d Pareto) Alpha() float64 { return d.alpha }

// Name returns "pareto".
func (Pareto) Name() string { return "pareto" }

func (d Pareto) String() string {
	return fmt.Sprintf("pareto(xm=%g, alpha=%g)", d.xm, d.alpha)
}

// Draw implements Distribution.
func (d Pareto) Draw(src Source) float64 {
	return d.xm * math.Pow(src.U01(), -1/d.alpha)
}

// PDF implements Distribution.
func (d Pareto) PDF(x float64) float64 {
	if x < d.xm {
		return 0
	}
	return d.alpha / x * math.Pow(d.xm/x, d.alpha)
}

// CDF implements Distribution.
func (d Pareto) CDF(x float64) float64 {
	if x <= d.xm {
		return 0
	}
	return -math.Expm1(-d.alpha * math.Log(x/d.xm))
}

// CompCDF implements Distribution.
func (d Pareto) CompCDF(x float64) float64 {
	if x <= d.xm {
		return 1
	}
	return math.Pow(d.xm/x, d.alpha)
}

// QSmall implements Quantiler.
//
// Its variates lie next to xm, so CDF(QSmall(u)) only matches u to a
// relative error of about alpha*epsilon/u.
func (d Pareto) QSmall(u float64) float64 {
	if !validU(u) {
		return math.NaN()
	}
	return d.xm * math.Exp(-math.Log1p(-u)/d.alpha)
}

// QLarge implements Quantiler.
func (d Pareto) QLarge(u float64) float64 {
	if !validU(u) {
		return math.NaN()
	}
	return d.xm * math.Pow(u, -1/d.alpha)
}

// Mean implements Distribution, it is +Inf for alpha <= 1.
func (d Pareto) Mean() float64 {
	if d.alpha <= 1 {
		return math.Inf(1)
	}
	return d.alpha * d.xm / (d.alpha - 1)
}

// Variance implements Distribution, it is +Inf for alpha <= 2.
func (d Pareto) Variance() float64 {
	if d.alpha <= 2 {
		return math.Inf(1)
	}
	am1 := d.alpha - 1
	return d.xm * d.xm * d.alpha / (am1 * am1 * (d.alpha - 2))
}

// Min implements Distribution.
func (d Pareto) Min() float64 { return d.xm }

// Max implements Distribution.
func (Pareto) Max() float64 { return math.Inf(1) }
