package dist

import (
	"math"
)

// Source is the random engine a distribution draws from.
//
// *engine.Engine and *engine.Locked implement it.
type Source interface {
	// U01 returns a quasi-uniform variate in (0, 1].
	U01() float64
	// HalfU returns a quasi-uniform variate in (0, 0.5].
	HalfU() float64
	// Bool returns the result of a fair coin flip.
	Bool() bool
	// ApplyRandomSign flips the sign of x with probability one half.
	ApplyRandomSign(x float64) float64
	// UniformInt returns an unbiased integer in [lo, hi).
	UniformInt(lo, hi int64) int64
}

// Distribution is a univariate probability distribution.
//
// Every distribution in this package is an immutable value, safe for
// concurrent use as long as each goroutine draws from its own Source.
type Distribution interface {
	// Draw returns one variate.
	//
	// The source is only used for the duration of the call.
	Draw(src Source) float64

	// PDF returns the probability density at x.
	// For discrete distributions it's the probability mass.
	PDF(x float64) float64

	// CDF returns P(X <= x).
	CDF(x float64) float64

	// CompCDF returns P(X > x), computed without cancellation so it keeps
	// full relative precision in the upper tail.
	CompCDF(x float64) float64

	// Mean returns the expected value, +Inf when it diverges.
	Mean() float64

	// Variance returns the variance, +Inf when it diverges.
	Variance() float64

	// Min returns the lower bound of the support.
	Min() float64

	// Max returns the upper bound of the support.
	Max() float64
}

// Quantiler is implemented by distributions with an invertible CDF.
//
// QSmall and QLarge are the two halves of the quantile function, each
// precise where the other is not. For u in (0, 1]:
//
//	CDF(QSmall(u)) == u
//	CompCDF(QLarge(u)) == u
//
// Both return NaN for u outside (0, 1].
//
// The equalities hold to a few ulps of u except next to a finite, non-zero
// bound of the support, where the quantile cannot resolve steps finer than
// the float64 spacing at the bound. There the relative error grows like
// epsilon/u, see Pareto.QSmall and Uniform.
type Quantiler interface {
	QSmall(u float64) float64
	QLarge(u float64) float64
}

// Sample draws n variates from d.
func Sample(d Distribution, n int, src Source) []float64 {
	sample := make([]float64, n)
	for i := range sample {
		sample[i] = d.Draw(src)
	}
	return sample
}

// Quantile returns the u quantile of d.
//
// It uses QSmall below the median and QLarge above it. It returns a
// *DomainError when u is not in (0, 1) or d does not implement Quantiler.
func Quantile(d Distribution, u float64) (float64, error) {
	q, ok := d.(Quantiler)
	if !ok {
		return math.NaN(), &DomainError{
			Dist:   name(d),
			Reason: "has no quantile function",
		}
	}
	if !(u > 0 && u < 1) {
		return math.NaN(), &DomainError{
			Dist:   name(d),
			Param:  "u",
			Value:  u,
			Reason: "must be in (0, 1)",
		}
	}
	if u <= 0.5 {
		return q.QSmall(u), nil
	}
	return q.QLarge(1 - u), nil
}

// flipFlop draws from q by evaluating QSmall or QLarge, picked by a fair
// coin, at a half uniform variate.
//
// Unlike evaluating the quantile function at a uniform variate, both tails
// are sampled with the full precision of HalfU.
func flipFlop(q Quantiler, src Source) float64 {
	hu := src.HalfU()
	if src.Bool() {
		return q.QSmall(hu)
	}
	return q.QLarge(hu)
}

func validU(u float64) bool {
	return u > 0 && u <= 1
}

// logit returns log(u / (1-u)) without cancellation for small u.
func logit(u float64) float64 {
	return math.Log(u) - math.Log1p(-u)
}

func name(d Distribution) string {
	if n, ok := d.(interface{ Name() string }); ok {
		return n.Name()
	}
	return "distribution"
}
