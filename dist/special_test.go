package dist

import (
	"math"
	"testing"
)

func TestNdtri(t *testing.T) {
	for _, c := range []struct {
		p, want float64
	}{
		{0.5, 0},
		{0.975, 1.959963984540054},
		{0.025, -1.959963984540054},
		{1e-10, -6.361340902404056},
		{1e-300, -37.0470962993612},
		{0, math.Inf(-1)},
		{1, math.Inf(1)},
	} {
		got := ndtri(c.p)
		if got != c.want && math.Abs(got-c.want) > 1e-14*math.Abs(c.want) {
			t.Errorf("ndtri(%v) = %v, want %v", c.p, got, c.want)
		}
	}
	for _, p := range []float64{-1, 2, math.NaN()} {
		if got := ndtri(p); !math.IsNaN(got) {
			t.Errorf("ndtri(%v) = %v, want NaN", p, got)
		}
	}
}

func TestNdtriInvertsCDF(t *testing.T) {
	var d StandardNormal
	for p := 1e-300; p < 0.5; p *= 3.7 {
		if got := d.CDF(ndtri(p)); math.Abs(got/p-1) > 1e-11 {
			t.Errorf("CDF(ndtri(%v)) = %v", p, got)
		}
	}
}

func TestIncompleteGamma(t *testing.T) {
	for _, c := range []struct {
		a, x float64
		p, q float64
	}{
		// Q(1, x) = exp(-x).
		{1, 0.5, -math.Expm1(-0.5), math.Exp(-0.5)},
		{1, 30, -math.Expm1(-30), math.Exp(-30)},
		// P(1/2, x) = erf(sqrt(x)).
		{0.5, 0.5, math.Erf(math.Sqrt(0.5)), math.Erfc(math.Sqrt(0.5))},
		{0.5, 11, math.Erf(math.Sqrt(11)), math.Erfc(math.Sqrt(11))},
		// Q(2, x) = (1+x) exp(-x).
		{2, 0.1, 1 - 1.1*math.Exp(-0.1), 1.1 * math.Exp(-0.1)},
		{2, 50, 1 - 51*math.Exp(-50), 51 * math.Exp(-50)},
	} {
		p, q := incompleteGamma(c.a, c.x)
		if math.Abs(p/c.p-1) > 1e-12 {
			t.Errorf("P(%v, %v) = %v, want %v", c.a, c.x, p, c.p)
		}
		if math.Abs(q/c.q-1) > 1e-12 {
			t.Errorf("Q(%v, %v) = %v, want %v", c.a, c.x, q, c.q)
		}
	}

	if p, q := incompleteGamma(3, 0); p != 0 || q != 1 {
		t.Errorf("incompleteGamma(3, 0) = %v, %v", p, q)
	}
	if p, q := incompleteGamma(3, math.Inf(1)); p != 1 || q != 0 {
		t.Errorf("incompleteGamma(3, +Inf) = %v, %v", p, q)
	}
}

func TestHorner(t *testing.T) {
	// 1 + 2x + 3x^2 at 2
	if got := horner([]float64{1, 2, 3}, 2); got != 17 {
		t.Errorf("horner = %v, want 17", got)
	}
}
