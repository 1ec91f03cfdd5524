package dist

import (
	"math"
)

// AS241 coefficients, lowest degree first.
var (
	ndtriCentralNum = [8]float64{
		3.3871328727963666080e+0, 1.3314166789178437745e+2,
		1.9715909503065514427e+3, 1.3731693765509461125e+4,
		4.5921953931549871457e+4, 6.7265770927008700853e+4,
		3.3430575583588128105e+4, 2.5090809287301226727e+3,
	}
	ndtriCentralDen = [8]float64{
		1.0, 4.2313330701600911252e+1,
		6.8718700749205790830e+2, 5.3941960214247511077e+3,
		2.1213794301586595867e+4, 3.9307895800092710610e+4,
		2.8729085735721942674e+4, 5.2264952788528545610e+3,
	}
	ndtriNearNum = [8]float64{
		1.42343711074968357734e+0, 4.63033784615654529590e+0,
		5.76949722146069140550e+0, 3.64784832476320460504e+0,
		1.27045825245236838258e+0, 2.41780725177450611770e-1,
		2.27238449892691845833e-2, 7.74545014278341407640e-4,
	}
	ndtriNearDen = [8]float64{
		1.0, 2.05319162663775882187e+0,
		1.67638483018380384940e+0, 6.89767334985100004550e-1,
		1.48103976427480074590e-1, 1.51986665636164571966e-2,
		5.47593808499534494600e-4, 1.05075007164441684324e-9,
	}
	ndtriFarNum = [8]float64{
		6.65790464350110377720e+0, 5.46378491116411436990e+0,
		1.78482653991729133580e+0, 2.96560571828504891230e-1,
		2.65321895265761230930e-2, 1.24266094738807843860e-3,
		2.71155556874348757815e-5, 2.01033439929228813265e-7,
	}
	ndtriFarDen = [8]float64{
		1.0, 5.99832206555887937690e-1,
		1.36929880922735805310e-1, 1.48753612908506148525e-2,
		7.86869131145613259100e-4, 1.84631831751005468180e-5,
		1.42151175831644588870e-7, 2.04426310338993978564e-15,
	}
)

// horner evaluates the polynomial with coefficients c, lowest degree first.
func horner(c []float64, x float64) float64 {
	var v float64
	for i := len(c) - 1; i >= 0; i-- {
		v = v*x + c[i]
	}
	return v
}

// ndtri returns the p quantile of the standard normal distribution using
// Wichura's algorithm AS241 (PPND16), accurate to about 1e-16.
//
// Unlike -math.Erfcinv(2p)*Sqrt2 it keeps full relative precision for p close
// to 0, which is where QSmall evaluates it.
func ndtri(p float64) float64 {
	q := p - 0.5
	if math.Abs(q) <= 0.425 {
		r := 0.180625 - q*q
		return q * horner(ndtriCentralNum[:], r) / horner(ndtriCentralDen[:], r)
	}

	r := p
	if q > 0 {
		r = 1 - p
	}
	if r <= 0 {
		if r == 0 {
			return math.Copysign(math.Inf(1), q)
		}
		return math.NaN()
	}
	r = math.Sqrt(-math.Log(r))

	var x float64
	if r <= 5 {
		r -= 1.6
		x = horner(ndtriNearNum[:], r) / horner(ndtriNearDen[:], r)
	} else {
		r -= 5
		x = horner(ndtriFarNum[:], r) / horner(ndtriFarDen[:], r)
	}
	if q < 0 {
		return -x
	}
	return x
}

const (
	gammaEpsilon = 0x1p-53
	gammaTiny    = 0x1p-1000
	gammaMaxIter = 100000
)

// incompleteGamma returns the regularized lower and upper incomplete gamma
// functions P(a, x) and Q(a, x) = 1 - P(a, x).
//
// The smaller of the two is computed directly, with the series below a+1
// and with a continued fraction above it, so it keeps full relative
// precision in both tails.
func incompleteGamma(a, x float64) (p, q float64) {
	switch {
	case x <= 0:
		return 0, 1
	case math.IsInf(x, 1):
		return 1, 0
	case x < a+1:
		p = gammaSeries(a, x)
		return p, 1 - p
	default:
		q = gammaContinuedFraction(a, x)
		return 1 - q, q
	}
}

// gammaPrefactor returns x^a e^-x / Gamma(a).
func gammaPrefactor(a, x float64) float64 {
	lg, _ := math.Lgamma(a)
	return math.Exp(a*math.Log(x) - x - lg)
}

func gammaSeries(a, x float64) float64 {
	ap := a
	term := 1 / a
	sum := term
	for i := 0; i < gammaMaxIter; i++ {
		ap++
		term *= x / ap
		sum += term
		if math.Abs(term) < math.Abs(sum)*gammaEpsilon {
			break
		}
	}
	return sum * gammaPrefactor(a, x)
}

// gammaContinuedFraction evaluates Q(a, x) with the modified Lentz method.
func gammaContinuedFraction(a, x float64) float64 {
	b := x + 1 - a
	c := 1 / gammaTiny
	d := 1 / b
	h := d
	for i := 1; i < gammaMaxIter; i++ {
		an := -float64(i) * (float64(i) - a)
		b += 2
		d = an*d + b
		if math.Abs(d) < gammaTiny {
			d = gammaTiny
		}
		c = b + an/c
		if math.Abs(c) < gammaTiny {
			c = gammaTiny
		}
		d = 1 / d
		delta := d * c
		h *= delta
		if math.Abs(delta-1) < gammaEpsilon {
			break
		}
	}
	return h * gammaPrefactor(a, x)
}
