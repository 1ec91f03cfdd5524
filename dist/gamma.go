package dist

import (
	"fmt"
	"math"
)

// Gamma is the gamma distribution with shape k and scale theta.
//
// It has no closed form quantile function. Draw uses the Marsaglia-Tsang
// rejection method on top of StandardNormal, and shapes below 1 are boosted
// to k+1 and scaled down by U01^(1/k).
type Gamma struct {
	k, theta float64

	// Marsaglia-Tsang constants for the boosted shape.
	d, c  float64
	boost bool
}

var _ Distribution = Gamma{}

// NewGamma creates a gamma distribution.
func NewGamma(k, theta float64) (Gamma, error) {
	if err := checkPositive("gamma", "k", k); err != nil {
		return Gamma{}, err
	}
	if err := checkPositive("gamma", "theta", theta); err != nil {
		return Gamma{}, err
	}
	g := Gamma{k: k, theta: theta}
	shape := k
	if k < 1 {
		g.boost = true
		shape = k + 1
	}
	g.d = shape - 1.0/3
	g.c = 1 / math.Sqrt(9*g.d)
	return g, nil
}

// K returns the shape.
func (d Gamma) K() float64 { return d.k }

// Theta returns the scale.
func (d Gamma) Theta() float64 { return d.theta }

// Name returns "gamma".
func (Gamma) Name() string { return "gamma" }

func (d Gamma) String() string {
	return fmt.Sprintf("gamma(k=%g, theta=%g)", d.k, d.theta)
}

// Draw implements Distribution.
func (d Gamma) Draw(src Source) float64 {
	var x float64
	for {
		z := StandardNormal{}.Draw(src)
		v := 1 + d.c*z
		if v <= 0 {
			continue
		}
		v = v * v * v
		if math.Log(src.U01()) < 0.5*z*z+d.d-d.d*v+d.d*math.Log(v) {
			x = d.d * v
			break
		}
	}
	if d.boost {
		x *= math.Pow(src.U01(), 1/d.k)
	}
	return x * d.theta
}

// PDF implements Distribution.
func (d Gamma) PDF(x float64) float64 {
	switch {
	case x < 0 || math.IsInf(x, 1):
		return 0
	case x == 0:
		switch {
		case d.k < 1:
			return math.Inf(1)
		case d.k == 1:
			return 1 / d.theta
		default:
			return 0
		}
	}
	t := x / d.theta
	lg, _ := math.Lgamma(d.k)
	return math.Exp((d.k-1)*math.Log(t)-t-lg) / d.theta
}

// CDF implements Distribution.
func (d Gamma) CDF(x float64) float64 {
	p, _ := incompleteGamma(d.k, x/d.theta)
	return p
}

// CompCDF implements Distribution.
func (d Gamma) CompCDF(x float64) float64 {
	_, q := incompleteGamma(d.k, x/d.theta)
	return q
}

// Mean implements Distribution.
func (d Gamma) Mean() float64 { return d.k * d.theta }

// Variance implements Distribution.
func (d Gamma) Variance() float64 { return d.k * d.theta * d.theta }

// Min implements Distribution.
func (Gamma) Min() float64 { return 0 }

// Max implements Distribution.
func (Gamma) Max() float64 { return math.Inf(1) }
