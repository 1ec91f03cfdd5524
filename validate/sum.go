package validate

// pairwiseSum returns the sum of xs, adding neighbors in a binary tree so
// the rounding error grows with log(len(xs)) instead of len(xs).
//
// xs is not modified.
func pairwiseSum(xs []float64) float64 {
	const base = 8
	if len(xs) <= base {
		var s float64
		for _, x := range xs {
			s += x
		}
		return s
	}
	mid := len(xs) / 2
	return pairwiseSum(xs[:mid]) + pairwiseSum(xs[mid:])
}
