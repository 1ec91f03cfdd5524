package dist

import (
	"fmt"
	"math"
)

// Logistic is the logistic distribution with location mu and scale s.
type Logistic struct {
	mu, s float64
}

var (
	_ Distribution = Logistic{}
	_ Quantiler    = Logistic{}
)

// NewLogistic creates a logistic distribution.
func NewLogistic(mu, s float64) (Logistic, error) {
	if err := checkFinite("logistic", "mu", mu); err != nil {
		return Logistic{}, err
	}
	if err := checkPositive("logistic", "s", s); err != nil {
		return Logistic{}, err
	}
	return Logistic{mu: mu, s: s}, nil
}

// Mu returns the location, which is also the mean.
func (d Logistic) Mu() float64 { return d.mu }

// S returns the scale.
func (d Logistic) S() float64 { return d.s }

// Name returns "logistic".
func (Logistic) Name() string { return "logistic" }

func (d Logistic) String() string {
	return fmt.Sprintf("logistic(mu=%g, s=%g)", d.mu, d.s)
}

// Draw implements Distribution.
func (d Logistic) Draw(src Source) float64 {
	return flipFlop(d, src)
}

// PDF implements Distribution.
func (d Logistic) PDF(x float64) float64 {
	// Symmetric, so exp(-|z|) never overflows.
	e := math.Exp(-math.Abs((x - d.mu) / d.s))
	onePlus := 1 + e
	return e / (d.s * onePlus * onePlus)
}

// CDF implements Distribution.
func (d Logistic) CDF(x float64) float64 {
	return 1 / (1 + math.Exp(-(x-d.mu)/d.s))
}

// CompCDF implements Distribution.
func (d Logistic) CompCDF(x float64) float64 {
	return 1 / (1 + math.Exp((x-d.mu)/d.s))
}

// QSmall implements Quantiler.
func (d Logistic) QSmall(u float64) float64 {
	if !validU(u) {
		return math.NaN()
	}
	return d.mu + d.s*logit(u)
}

// QLarge implements Quantiler.
func (d Logistic) QLarge(u float64) float64 {
	if !validU(u) {
		return math.NaN()
	}
	return d.mu - d.s*logit(u)
}

// Mean implements Distribution.
func (d Logistic) Mean() float64 { return d.mu }

// Variance implements Distribution.
func (d Logistic) Variance() float64 {
	return d.s * d.s * math.Pi * math.Pi / 3
}

// Min implements Distribution.
func (Logistic) Min() float64 { return math.Inf(-1) }

// Max implements Distribution.
func (Logistic) Max() float64 { return math.Inf(1) }

// LogLogistic is the log-logistic (Fisk) distribution with scale alpha and
// shape beta, the distribution of exp(X) for a logistic X.
type LogLogistic struct {
	alpha, beta float64
}

var (
	_ Distribution = LogLogistic{}
	_ Quantiler    = LogLogistic{}
)

// NewLogLogistic creates a log-logistic distribution.
func NewLogLogistic(alpha, beta float64) (LogLogistic, error) {
	if err := checkPositive("log_logistic", "alpha", alpha); err != nil {
		return LogLogistic{}, err
	}
	if err := checkPositive("log_logistic", "beta", beta); err != nil {
		return LogLogistic{}, err
	}
	return LogLogistic{alpha: alpha, beta: beta}, nil
}

// Alpha returns the scale, which is also the median.
func (d LogLogistic) Alpha() float64 { return d.alpha }

// Beta returns the shape.
func (d LogLogistic) Beta() float64 { return d.beta }

// Name returns "log_logistic".
func (LogLogistic) Name() string { return "log_logistic" }

func (d LogLogistic) String() string {
	return fmt.Sprintf("log_logistic(alpha=%g, beta=%g)", d.alpha, d.beta)
}

// Draw implements Distribution.
func (d LogLogistic) Draw(src Source) float64 {
	return flipFlop(d, src)
}

// odds returns (x/alpha)^beta, the odds CDF/CompCDF at x > 0.
func (d LogLogistic) odds(x float64) float64 {
	return math.Pow(x/d.alpha, d.beta)
}

// PDF implements Distribution.
func (d LogLogistic) PDF(x float64) float64 {
	switch {
	case x < 0:
		return 0
	case x == 0:
		switch {
		case d.beta < 1:
			return math.Inf(1)
		case d.beta == 1:
			return 1 / d.alpha
		default:
			return 0
		}
	}
	y := d.odds(x)
	return d.beta / x / ((1 + y) * (1 + 1/y))
}

// CDF implements Distribution.
func (d LogLogistic) CDF(x float64) float64 {
	if x <= 0 {
		return 0
	}
	return 1 / (1 + 1/d.odds(x))
}

// CompCDF implements Distribution.
func (d LogLogistic) CompCDF(x float64) float64 {
	if x <= 0 {
		return 1
	}
	return 1 / (1 + d.odds(x))
}

// QSmall implements Quantiler.
func (d LogLogistic) QSmall(u float64) float64 {
	if !validU(u) {
		return math.NaN()
	}
	return d.alpha * math.Exp(logit(u)/d.beta)
}

// QLarge implements Quantiler.
func (d LogLogistic) QLarge(u float64) float64 {
	if !validU(u) {
		return math.NaN()
	}
	return d.alpha * math.Exp(-logit(u)/d.beta)
}

// Mean implements Distribution, it is +Inf for beta <= 1.
func (d LogLogistic) Mean() float64 {
	if d.beta <= 1 {
		return math.Inf(1)
	}
	b := math.Pi / d.beta
	return d.alpha * b / math.Sin(b)
}

// Variance implements Distribution, it is +Inf for beta <= 2.
func (d LogLogistic) Variance() float64 {
	if d.beta <= 2 {
		return math.Inf(1)
	}
	b := math.Pi / d.beta
	sb := math.Sin(b)
	return d.alpha * d.alpha * (2*b/math.Sin(2*b) - b*b/(sb*sb))
}

// Min implements Distribution.
func (LogLogistic) Min() float64 { return 0 }

// Max implements Distribution.
func (LogLogistic) Max() float64 { return math.Inf(1) }
