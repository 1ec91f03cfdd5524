package dist_test

import (
	"errors"
	"math"
	"sort"
	"testing"

	"github.com/pqrand/pqrand.go/dist"
	"github.com/pqrand/pqrand.go/engine"
	"github.com/pqrand/pqrand.go/entropy"
)

var (
	_ dist.Source = (*engine.Engine)(nil)
	_ dist.Source = (*engine.Locked)(nil)
)

func must[T dist.Distribution](d T, err error) dist.Distribution {
	if err != nil {
		panic(err)
	}
	return d
}

func newEngine(t testing.TB, seed uint64) *engine.Engine {
	t.Helper()
	e, err := engine.New(engine.WithEntropy(entropy.NewSplitMix64(seed)))
	if err != nil {
		t.Fatal(err)
	}
	return e
}

type testDist struct {
	label string
	d     dist.Distribution

	// boundedLow and boundedHigh mark a finite support bound other than 0,
	// where float64 spacing limits how close a quantile can get to it.
	boundedLow, boundedHigh bool

	// varTol is the relative tolerance of the sample variance of 10^6
	// draws, about 6 standard deviations.
	varTol float64
}

func continuous() []testDist {
	return []testDist{
		{label: "uniform", d: must(dist.NewUniform(-1, 100)), boundedLow: true, boundedHigh: true, varTol: 0.01},
		{label: "standard_normal", d: dist.StandardNormal{}, varTol: 0.01},
		{label: "normal", d: must(dist.NewNormal(-1, math.Pi)), varTol: 0.01},
		{label: "log_normal", d: must(dist.NewLogNormal(1, 0.5)), varTol: 0.02},
		{label: "exponential", d: must(dist.NewExponential(0.1)), varTol: 0.02},
		{label: "pareto", d: must(dist.NewPareto(1, 6)), boundedLow: true, varTol: 0.05},
		{label: "weibull", d: must(dist.NewWeibull(0.1, 1.2)), varTol: 0.02},
		{label: "logistic", d: must(dist.NewLogistic(10, 3)), varTol: 0.02},
		{label: "log_logistic", d: must(dist.NewLogLogistic(math.Pi, 8)), varTol: 0.02},
		{label: "gamma", d: must(dist.NewGamma(10, math.Pi)), varTol: 0.02},
		{label: "gamma-small-shape", d: must(dist.NewGamma(0.5, 2)), varTol: 0.03},
	}
}

// probes returns points across the support of d: quantiles when d has a
// quantile function, multiples of the standard deviation around the mean
// otherwise.
func probes(d dist.Distribution) []float64 {
	var xs []float64
	if q, ok := d.(dist.Quantiler); ok {
		for _, u := range []float64{1e-300, 1e-100, 1e-10, 1e-3, 0.1, 0.5} {
			xs = append(xs, q.QSmall(u), q.QLarge(u))
		}
		return xs
	}
	mean, sd := d.Mean(), math.Sqrt(d.Variance())
	for _, k := range []float64{-3, -1, -0.5, 0, 0.5, 1, 3, 10, 30} {
		if x := mean + k*sd; x > d.Min() {
			xs = append(xs, x)
		}
	}
	return xs
}

func TestCDFComplement(t *testing.T) {
	for _, c := range continuous() {
		t.Run(c.label, func(t *testing.T) {
			for _, x := range probes(c.d) {
				if diff := math.Abs(c.d.CDF(x) + c.d.CompCDF(x) - 1); diff > 1e-12 {
					t.Errorf("|CDF(%v) + CompCDF(%v) - 1| = %v", x, x, diff)
				}
			}
			if got := c.d.CDF(math.Inf(-1)); got != 0 {
				t.Errorf("CDF(-Inf) = %v, want 0", got)
			}
			if got := c.d.CDF(math.Inf(1)); got != 1 {
				t.Errorf("CDF(+Inf) = %v, want 1", got)
			}
			if got := c.d.CompCDF(math.Inf(1)); got != 0 {
				t.Errorf("CompCDF(+Inf) = %v, want 0", got)
			}
			for _, x := range []float64{math.Inf(-1), -1e300, 1e300, math.Inf(1)} {
				if got := c.d.PDF(x); got != 0 {
					t.Errorf("PDF(%v) = %v, want 0", x, got)
				}
			}
		})
	}
}

func TestQuantileRoundTrip(t *testing.T) {
	for _, c := range continuous() {
		q, ok := c.d.(dist.Quantiler)
		if !ok {
			continue
		}
		t.Run(c.label, func(t *testing.T) {
			for _, u := range []float64{1e-10, 1e-6, 1e-3} {
				x := q.QSmall(u)
				if err := roundTripError(c.d, c.d.CDF(x), u, x, c.boundedLow); err > 1e-9 {
					t.Errorf("CDF(QSmall(%v)) = %v, relative error %v", u, c.d.CDF(x), err)
				}
				y := q.QLarge(u)
				if err := roundTripError(c.d, c.d.CompCDF(y), u, y, c.boundedHigh); err > 1e-9 {
					t.Errorf("CompCDF(QLarge(%v)) = %v, relative error %v", u, c.d.CompCDF(y), err)
				}
			}
		})
	}
}

// roundTripError returns |p/u - 1|. Next to a bound, the error of rounding
// x to a float64 is subtracted first.
func roundTripError(d dist.Distribution, p, u, x float64, bounded bool) float64 {
	diff := math.Abs(p - u)
	if bounded {
		ulp := math.Nextafter(math.Abs(x), math.Inf(1)) - math.Abs(x)
		diff = math.Max(0, diff-4*d.PDF(x)*ulp)
	}
	return diff / u
}

func TestQuantileNaN(t *testing.T) {
	for _, c := range continuous() {
		q, ok := c.d.(dist.Quantiler)
		if !ok {
			continue
		}
		for _, u := range []float64{0, -0.5, 1.5, math.NaN()} {
			if x := q.QSmall(u); !math.IsNaN(x) {
				t.Errorf("%s: QSmall(%v) = %v, want NaN", c.label, u, x)
			}
			if x := q.QLarge(u); !math.IsNaN(x) {
				t.Errorf("%s: QLarge(%v) = %v, want NaN", c.label, u, x)
			}
		}
	}
}

func TestQuantile(t *testing.T) {
	d := must(dist.NewNormal(3, 2))
	for _, c := range []struct {
		u    float64
		want float64
	}{
		{0.5, 3},
		{0.975, 3 + 2*1.959963984540054},
		{0.025, 3 - 2*1.959963984540054},
	} {
		got, err := dist.Quantile(d, c.u)
		if err != nil {
			t.Fatal(err)
		}
		if math.Abs(got-c.want) > 1e-12 {
			t.Errorf("Quantile(%v) = %v, want %v", c.u, got, c.want)
		}
	}

	for _, u := range []float64{0, 1, -1, math.NaN()} {
		_, err := dist.Quantile(d, u)
		var de *dist.DomainError
		if !errors.As(err, &de) {
			t.Errorf("Quantile(%v) error = %v, want *DomainError", u, err)
		}
	}

	_, err := dist.Quantile(must(dist.NewGamma(2, 1)), 0.5)
	var de *dist.DomainError
	if !errors.As(err, &de) {
		t.Errorf("Quantile(gamma) error = %v, want *DomainError", err)
	}
}

func TestMoments(t *testing.T) {
	const n = 1000000
	if testing.Short() {
		t.Skip("skipping 10^6 draws per distribution in short mode")
	}
	for i, c := range continuous() {
		t.Run(c.label, func(t *testing.T) {
			e := newEngine(t, uint64(100+i))
			sample := dist.Sample(c.d, n, e)
			if len(sample) != n {
				t.Fatalf("Sample returned %d variates, want %d", len(sample), n)
			}

			var sum float64
			for _, x := range sample {
				if x < c.d.Min() || x > c.d.Max() || math.IsNaN(x) {
					t.Fatalf("variate %v outside [%v, %v]", x, c.d.Min(), c.d.Max())
				}
				sum += x
			}
			mean := sum / n
			var ss float64
			for _, x := range sample {
				ss += (x - mean) * (x - mean)
			}
			variance := ss / (n - 1)

			if tol := 6 * math.Sqrt(c.d.Variance()/n); math.Abs(mean-c.d.Mean()) > tol {
				t.Errorf("sample mean = %v, want %v +/- %v", mean, c.d.Mean(), tol)
			}
			if rel := math.Abs(variance/c.d.Variance() - 1); rel > c.varTol {
				t.Errorf("sample variance = %v, want %v (relative error %v > %v)", variance, c.d.Variance(), rel, c.varTol)
			}
		})
	}
}

func TestStandardNormalGoodnessOfFit(t *testing.T) {
	const (
		n     = 1000000
		edges = 30
	)
	if testing.Short() {
		t.Skip("skipping 10^6 draws in short mode")
	}
	e := newEngine(t, 200)
	var d dist.StandardNormal
	sample := dist.Sample(d, n, e)
	sort.Float64s(sample)

	// Random bin edges, drawn from the same engine.
	bounds := make([]float64, edges)
	for i := range bounds {
		bounds[i] = -4 + 8*e.U01()
	}
	sort.Float64s(bounds)

	for i := 1; i < len(bounds); i++ {
		lo, hi := bounds[i-1], bounds[i]
		count := float64(sort.SearchFloat64s(sample, hi) - sort.SearchFloat64s(sample, lo))
		expected := n * (d.CDF(hi) - d.CDF(lo))
		if expected < 10 {
			continue
		}
		if dev := (count - expected) / math.Sqrt(expected); math.Abs(dev) > 4 {
			t.Errorf("bin [%v, %v): %v variates, expected %v (%.2f sigma)", lo, hi, count, expected, dev)
		}
	}
}

func TestPair(t *testing.T) {
	const n = 200000
	e := newEngine(t, 300)
	var sx, sy, sxx, syy, sxy float64
	for i := 0; i < n; i++ {
		x, y := dist.StandardNormal{}.Pair(e)
		sx += x
		sy += y
		sxx += x * x
		syy += y * y
		sxy += x * y
	}
	tol := 6 / math.Sqrt(n)
	for _, c := range []struct {
		label string
		got   float64
		want  float64
		tol   float64
	}{
		{"mean x", sx / n, 0, tol},
		{"mean y", sy / n, 0, tol},
		{"variance x", sxx / n, 1, tol * math.Sqrt2},
		{"variance y", syy / n, 1, tol * math.Sqrt2},
		{"covariance", sxy / n, 0, tol},
	} {
		if math.Abs(c.got-c.want) > c.tol {
			t.Errorf("%s = %v, want %v +/- %v", c.label, c.got, c.want, c.tol)
		}
	}

	t.Run("shifted", func(t *testing.T) {
		nd := must(dist.NewNormal(5, 2)).(dist.Normal)
		ref := newEngine(t, 301)
		e := newEngine(t, 301)
		x, y := nd.Pair(e)
		zx, zy := dist.StandardNormal{}.Pair(ref)
		if math.Abs(x-(5+2*zx)) > 1e-14 || math.Abs(y-(5+2*zy)) > 1e-14 {
			t.Errorf("Normal.Pair = (%v, %v), want (%v, %v)", x, y, 5+2*zx, 5+2*zy)
		}
	})
}

func TestDrawDeterministic(t *testing.T) {
	for _, c := range continuous() {
		a := dist.Sample(c.d, 100, newEngine(t, 400))
		b := dist.Sample(c.d, 100, newEngine(t, 400))
		for i := range a {
			if a[i] != b[i] {
				t.Errorf("%s: draw %d differs between identical engines: %v != %v", c.label, i, a[i], b[i])
				break
			}
		}
	}
}

func TestUniformInt(t *testing.T) {
	d, err := dist.NewUniformInt(-2, 3)
	if err != nil {
		t.Fatal(err)
	}
	if got := d.Mean(); got != 0 {
		t.Errorf("Mean() = %v, want 0", got)
	}
	if got := d.Variance(); got != 2 {
		t.Errorf("Variance() = %v, want 2", got)
	}
	for _, c := range []struct {
		x             float64
		pmf, cdf, ccd float64
	}{
		{-3, 0, 0, 1},
		{-2, 0.2, 0.2, 0.8},
		{-1.5, 0, 0.2, 0.8},
		{0, 0.2, 0.6, 0.4},
		{2, 0.2, 1, 0},
		{3, 0, 1, 0},
	} {
		if got := d.PDF(c.x); math.Abs(got-c.pmf) > 1e-15 {
			t.Errorf("PDF(%v) = %v, want %v", c.x, got, c.pmf)
		}
		if got := d.CDF(c.x); math.Abs(got-c.cdf) > 1e-15 {
			t.Errorf("CDF(%v) = %v, want %v", c.x, got, c.cdf)
		}
		if got := d.CompCDF(c.x); math.Abs(got-c.ccd) > 1e-15 {
			t.Errorf("CompCDF(%v) = %v, want %v", c.x, got, c.ccd)
		}
	}

	e := newEngine(t, 500)
	for i := 0; i < 1000; i++ {
		v := d.DrawInt(e)
		if v < -2 || v >= 3 {
			t.Fatalf("DrawInt() = %d, want in [-2, 3)", v)
		}
	}

	if _, err := dist.NewUniformInt(3, 3); err == nil {
		t.Error("NewUniformInt(3, 3) should fail")
	}
}

func TestConstructorErrors(t *testing.T) {
	inf, nan := math.Inf(1), math.NaN()
	for _, c := range []struct {
		label string
		err   error
	}{
		{"uniform-reversed", second(dist.NewUniform(1, 1))},
		{"uniform-inf", second(dist.NewUniform(0, inf))},
		{"uniform-overflow", second(dist.NewUniform(-math.MaxFloat64, math.MaxFloat64))},
		{"normal-sigma", second(dist.NewNormal(0, 0))},
		{"normal-mu", second(dist.NewNormal(nan, 1))},
		{"log_normal-sigma", second(dist.NewLogNormal(0, -1))},
		{"exponential", second(dist.NewExponential(0))},
		{"pareto-xm", second(dist.NewPareto(-1, 1))},
		{"pareto-alpha", second(dist.NewPareto(1, inf))},
		{"weibull", second(dist.NewWeibull(1, 0))},
		{"logistic", second(dist.NewLogistic(0, nan))},
		{"log_logistic", second(dist.NewLogLogistic(0, 1))},
		{"gamma", second(dist.NewGamma(-2, 1))},
	} {
		t.Run(c.label, func(t *testing.T) {
			var de *dist.DomainError
			if !errors.As(c.err, &de) {
				t.Errorf("error = %v, want *DomainError", c.err)
			}
		})
	}
}

func second[T any](_ T, err error) error {
	return err
}

func TestHeavyTailMoments(t *testing.T) {
	for _, c := range []struct {
		label       string
		d           dist.Distribution
		meanInf     bool
		varianceInf bool
	}{
		{"pareto-1", must(dist.NewPareto(1, 1)), true, true},
		{"pareto-2", must(dist.NewPareto(1, 2)), false, true},
		{"log_logistic-1", must(dist.NewLogLogistic(1, 1)), true, true},
		{"log_logistic-2", must(dist.NewLogLogistic(1, 2)), false, true},
	} {
		if got := math.IsInf(c.d.Mean(), 1); got != c.meanInf {
			t.Errorf("%s: Mean() = %v", c.label, c.d.Mean())
		}
		if got := math.IsInf(c.d.Variance(), 1); got != c.varianceInf {
			t.Errorf("%s: Variance() = %v", c.label, c.d.Variance())
		}
	}
}

func TestWeibullPDFMatchesCDF(t *testing.T) {
	d := must(dist.NewWeibull(0.1, 1.2))
	for _, x := range []float64{1e-4, 0.01, 0.1, 0.3} {
		h := 1e-6 * x
		want := (d.CDF(x+h) - d.CDF(x-h)) / (2 * h)
		if got := d.PDF(x); math.Abs(got/want-1) > 1e-5 {
			t.Errorf("PDF(%v) = %v, CDF derivative = %v", x, got, want)
		}
	}
}

func TestQuantileNearBound(t *testing.T) {
	const eps = 0x1p-52
	pareto, err := dist.NewPareto(1, 3)
	if err != nil {
		t.Fatal(err)
	}
	unit, err := dist.NewUniform(0, 1)
	if err != nil {
		t.Fatal(err)
	}
	for _, u := range []float64{1e-10, 1e-6, 1e-3} {
		if err := math.Abs(pareto.CDF(pareto.QSmall(u))/u - 1); err > 16*3*eps/u {
			t.Errorf("pareto: CDF(QSmall(%v)) relative error %v", u, err)
		}
		if err := math.Abs(unit.CompCDF(unit.QLarge(u))/u - 1); err > 4*eps/u {
			t.Errorf("uniform: CompCDF(QLarge(%v)) relative error %v", u, err)
		}
		// The zero bound is exact.
		if got := unit.CDF(unit.QSmall(u)); got != u {
			t.Errorf("uniform: CDF(QSmall(%v)) = %v", u, got)
		}
	}
}
