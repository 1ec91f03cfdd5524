package validate

import (
	"errors"
	"fmt"
	"math"
	"sort"

	"github.com/pqrand/pqrand.go/dist"
	"github.com/pqrand/pqrand.go/log"
)

// Default options.
const (
	DefaultSampleSize = 1000000
	DefaultBins       = 32
)

// Options configures Run.
type Options struct {
	// SampleSize is the number of variates drawn, defaults to
	// DefaultSampleSize. Must be at least 16 when set.
	SampleSize int `yaml:"sampleSize" toml:"sampleSize"`

	// Bins is the number of random sample indices used as bin edges,
	// defaults to DefaultBins. Every pair of edges forms a bin, so the
	// number of bins tested grows with the square of Bins.
	Bins int `yaml:"bins" toml:"bins"`
}

func (o Options) withDefaults() (Options, error) {
	if o.SampleSize == 0 {
		o.SampleSize = DefaultSampleSize
	}
	if o.Bins == 0 {
		o.Bins = DefaultBins
	}
	if o.SampleSize < 16 {
		return o, fmt.Errorf("validate: sample size %d is too small", o.SampleSize)
	}
	if o.Bins < 0 {
		return o, fmt.Errorf("validate: invalid number of bins %d", o.Bins)
	}
	return o, nil
}

// Deviations summarizes a set of deviations.
type Deviations struct {
	N             int
	Min, Max, RMS float64
}

func summarize(devs []float64) Deviations {
	if len(devs) == 0 {
		return Deviations{}
	}
	d := Deviations{
		N:   len(devs),
		Min: math.Inf(1),
		Max: math.Inf(-1),
	}
	squares := make([]float64, len(devs))
	for i, v := range devs {
		d.Min = math.Min(d.Min, v)
		d.Max = math.Max(d.Max, v)
		squares[i] = v * v
	}
	d.RMS = math.Sqrt(pairwiseSum(squares) / float64(len(devs)))
	return d
}

// MaxAbs returns the largest absolute deviation.
func (d Deviations) MaxAbs() float64 {
	return math.Max(math.Abs(d.Min), math.Abs(d.Max))
}

// Report is the result of validating a distribution against a sample.
type Report struct {
	// Dist describes the distribution.
	Dist       string
	SampleSize int

	// Bins are the deviations between the number of variates in random bins
	// and the number expected from the integrated PDF, in units of the
	// Poisson error of the count.
	Bins Deviations

	// MeanDeviation is the difference between the sample mean and Mean, in
	// units of its standard error. NaN when the variance diverges.
	MeanDeviation float64

	// VarianceDeviation is the relative difference between the sample
	// variance and Variance, in units of its standard error for a normal
	// sample. Heavy tailed distributions have a larger spread. NaN when the
	// variance diverges.
	VarianceDeviation float64

	// The CDF and CompCDF at the smallest and largest variates, each of
	// order 1/SampleSize.
	CDFSmallest, OneMinusCDFLargest         float64
	CompCDFLargest, OneMinusCompCDFSmallest float64

	// CDFvsPDF and CompCDFvsPDF are the absolute differences between the
	// integrated PDF and the CDF (or CompCDF) difference across every bin.
	CDFvsPDF, CompCDFvsPDF Deviations

	// QuadratureError is the largest error estimate of the integrated PDF
	// over the bins, and UnconvergedBins the number of bins whose integral
	// missed its tolerance, for example next to a singular PDF. The CDF
	// checks of those bins are only as good as the integral.
	QuadratureError float64
	UnconvergedBins int

	// HasQuantile reports whether the distribution is a dist.Quantiler,
	// and the round trip deviations below are set.
	HasQuantile bool

	// QSmallRoundTrip holds CDF(QSmall(u))/u - 1 and QLargeRoundTrip
	// CompCDF(QLarge(u))/u - 1, for sqrt(SampleSize) half uniform u.
	QSmallRoundTrip, QLargeRoundTrip Deviations

	// Discrete reports that the PDF is a probability mass function, so the
	// bin and integration checks were skipped.
	Discrete bool
}

// Run draws a sample from d with src and compares it to the PDF, CDF,
// CompCDF and moments of d.
func Run(d dist.Distribution, opts Options, src dist.Source) (Report, error) {
	opts, err := opts.withDefaults()
	if err != nil {
		return Report{}, err
	}
	if src == nil {
		return Report{}, errors.New("validate: nil source")
	}

	n := opts.SampleSize
	r := Report{
		Dist:       describe(d),
		SampleSize: n,
	}
	log.Debugw("validate: drawing sample", "dist", r.Dist, "size", n)

	sample := dist.Sample(d, n, src)
	r.moments(d, sample)

	sort.Float64s(sample)
	r.CDFSmallest = d.CDF(sample[0])
	r.OneMinusCDFLargest = 1 - d.CDF(sample[n-1])
	r.CompCDFLargest = d.CompCDF(sample[n-1])
	r.OneMinusCompCDFSmallest = 1 - d.CompCDF(sample[0])

	if discrete, ok := d.(interface{ Discrete() bool }); ok && discrete.Discrete() {
		r.Discrete = true
	} else {
		r.bins(d, sample, opts.Bins, src)
	}

	if q, ok := d.(dist.Quantiler); ok {
		r.HasQuantile = true
		r.roundTrip(d, q, int(math.Sqrt(float64(n))), src)
	}
	return r, nil
}

func describe(d dist.Distribution) string {
	if s, ok := d.(fmt.Stringer); ok {
		return s.String()
	}
	return fmt.Sprintf("%T", d)
}

func (r *Report) moments(d dist.Distribution, sample []float64) {
	n := float64(len(sample))
	mean := pairwiseSum(sample) / n

	squares := make([]float64, len(sample))
	for i, x := range sample {
		squares[i] = (x - mean) * (x - mean)
	}
	variance := pairwiseSum(squares) / (n - 1)

	wantVar := d.Variance()
	if math.IsInf(wantVar, 0) || wantVar <= 0 {
		r.MeanDeviation = math.NaN()
		r.VarianceDeviation = math.NaN()
		return
	}
	r.MeanDeviation = (mean - d.Mean()) / math.Sqrt(wantVar/n)
	r.VarianceDeviation = (variance/wantVar - 1) * math.Sqrt(n/2)
}

// bins compares the sample with the integrated PDF over random bins.
//
// Edges are variates at random indices of the sorted sample, plus the
// smallest and largest ones. Every pair of edges i < j forms a bin holding
// exactly j-i-1 variates.
func (r *Report) bins(d dist.Distribution, sample []float64, bins int, src dist.Source) {
	n := len(sample)
	indices := map[int]bool{0: true, n - 1: true}
	for i := 0; i < bins; i++ {
		indices[int(src.UniformInt(0, int64(n)))] = true
	}
	edges := make([]int, 0, len(indices))
	for i := range indices {
		edges = append(edges, i)
	}
	sort.Ints(edges)

	var poisson, cdf, compCDF []float64
	for a, i := range edges {
		for _, j := range edges[a+1:] {
			count := j - i - 1
			lo, hi := sample[i], sample[j]
			if count < 1 || !(hi > lo) {
				continue
			}
			weight, errEst, converged := integrate(d.PDF, lo, hi)
			r.QuadratureError = math.Max(r.QuadratureError, errEst)
			if !converged {
				r.UnconvergedBins++
			}
			poisson = append(poisson, (weight*float64(n)/float64(count)-1)*math.Sqrt(float64(count)))
			cdf = append(cdf, weight-(d.CDF(hi)-d.CDF(lo)))
			compCDF = append(compCDF, weight-(d.CompCDF(lo)-d.CompCDF(hi)))
		}
	}
	if r.UnconvergedBins > 0 {
		log.Debugw(
			"validate: PDF integral did not converge",
			"dist", r.Dist,
			"bins", r.UnconvergedBins,
			"maxError", r.QuadratureError,
		)
	}
	r.Bins = summarize(poisson)
	r.CDFvsPDF = summarize(cdf)
	r.CompCDFvsPDF = summarize(compCDF)
}

func (r *Report) roundTrip(d dist.Distribution, q dist.Quantiler, m int, src dist.Source) {
	small := make([]float64, m)
	large := make([]float64, m)
	for i := 0; i < m; i++ {
		u := src.HalfU()
		small[i] = d.CDF(q.QSmall(u))/u - 1
		large[i] = d.CompCDF(q.QLarge(u))/u - 1
	}
	r.QSmallRoundTrip = summarize(small)
	r.QLargeRoundTrip = summarize(large)
}
