package validate

import (
	"math"
)

// Gauss-Kronrod 7-15 rule on [-1, 1]. Kronrod nodes are listed from the
// outermost to the center, the odd ones (1, 3, 5, 7) are the Gauss nodes.
var (
	kronrodNodes = [8]float64{
		0.991455371120812639206854697526329,
		0.949107912342758524526189684047851,
		0.864864423359769072789712788640926,
		0.741531185599394439863864773280788,
		0.586087235467691130294144845693013,
		0.405845151377397166906606412076961,
		0.207784955007898467600689403773245,
		0,
	}
	kronrodWeights = [8]float64{
		0.022935322010529224963732008058970,
		0.063092092629978553290700663189204,
		0.104790010322250183839876322541518,
		0.140653259715525918745189590510238,
		0.169004726639267902826583426598550,
		0.190350578064785409913256402421014,
		0.204432940075298892414161999234649,
		0.209482141084727828012999174891714,
	}
	gaussWeights = [4]float64{
		0.129484966168869693270611432679082,
		0.279705391489276667901467771423780,
		0.381830050505118944950369775488975,
		0.417959183673469387755102040816327,
	}
)

const (
	quadRelTol   = 1e-12
	quadMaxDepth = 50
)

// gk15 applies the Gauss-Kronrod 7-15 rule to f on [a, b] and returns the
// Kronrod estimate and the difference to the Gauss estimate.
func gk15(f func(float64) float64, a, b float64) (value, errEst float64) {
	center := 0.5 * (a + b)
	half := 0.5 * (b - a)

	fc := f(center)
	kronrod := fc * kronrodWeights[7]
	gauss := fc * gaussWeights[3]
	for i := 0; i < 7; i++ {
		dx := half * kronrodNodes[i]
		pair := f(center-dx) + f(center+dx)
		kronrod += kronrodWeights[i] * pair
		if i%2 == 1 {
			gauss += gaussWeights[i/2] * pair
		}
	}
	return kronrod * half, math.Abs((kronrod - gauss) * half)
}

// integrate returns the integral of f on [a, b] and an estimate of its
// absolute error.
//
// Intervals are bisected until the error estimate of each is below
// quadRelTol times the first estimate of the whole integral, so only the
// intervals where f is hard to integrate, like next to a singularity, are
// refined. converged is false when some interval still missed its tolerance
// at quadMaxDepth, or could not be split further.
func integrate(f func(float64) float64, a, b float64) (value, errEst float64, converged bool) {
	whole, err := gk15(f, a, b)
	return adapt(f, a, b, whole, err, quadRelTol*math.Abs(whole), 0)
}

func adapt(f func(float64) float64, a, b, whole, err, tol float64, depth int) (float64, float64, bool) {
	if err <= tol {
		return whole, err, true
	}
	mid := 0.5 * (a + b)
	if depth >= quadMaxDepth || mid <= a || mid >= b {
		return whole, err, false
	}
	left, leftErr := gk15(f, a, mid)
	right, rightErr := gk15(f, mid, b)
	left, leftErr, leftOK := adapt(f, a, mid, left, leftErr, tol, depth+1)
	right, rightErr, rightOK := adapt(f, mid, b, right, rightErr, tol, depth+1)
	return left + right, leftErr + rightErr, leftOK && rightOK
}
