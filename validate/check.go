package validate

import (
	"fmt"
	"math"

	"github.com/pqrand/pqrand.go/errorsbp"
)

// Thresholds are the limits Report.Check enforces. A zero threshold disables
// its check.
type Thresholds struct {
	// MaxBinDeviation limits the absolute bin deviations, in Poisson units.
	MaxBinDeviation float64 `yaml:"maxBinDeviation" toml:"maxBinDeviation"`

	// MaxMeanDeviation limits the absolute mean deviation, in standard
	// errors.
	MaxMeanDeviation float64 `yaml:"maxMeanDeviation" toml:"maxMeanDeviation"`

	// MaxVarianceDeviation limits the absolute variance deviation.
	MaxVarianceDeviation float64 `yaml:"maxVarianceDeviation" toml:"maxVarianceDeviation"`

	// MaxExtreme limits the CDF and CompCDF at the sample extremes, in
	// units of 1/SampleSize.
	MaxExtreme float64 `yaml:"maxExtreme" toml:"maxExtreme"`

	// MaxCDFError limits the absolute difference between the integrated PDF
	// and the CDF and CompCDF differences.
	MaxCDFError float64 `yaml:"maxCDFError" toml:"maxCDFError"`

	// MaxRoundTrip limits the relative quantile round trip errors.
	MaxRoundTrip float64 `yaml:"maxRoundTrip" toml:"maxRoundTrip"`
}

// DefaultThresholds are loose enough for a correct distribution to pass
// with overwhelming probability at the default options.
var DefaultThresholds = Thresholds{
	MaxBinDeviation:      6,
	MaxMeanDeviation:     6,
	MaxVarianceDeviation: 30,
	MaxExtreme:           25,
	MaxCDFError:          1e-9,
	MaxRoundTrip:         1e-9,
}

// Check returns an error for every check of the report that exceeds its
// threshold, compiled into an errorsbp.Batch, or nil when all pass.
//
// Moment checks are skipped for distributions with a diverging variance.
func (r Report) Check(t Thresholds) error {
	var batch errorsbp.Batch
	add := func(check string, value, limit float64) {
		if limit > 0 && math.Abs(value) > limit {
			batch.AddPrefix(r.Dist, fmt.Errorf("%s %.3g exceeds %.3g", check, value, limit))
		}
	}

	if !r.Discrete {
		add("bin deviation", r.Bins.MaxAbs(), t.MaxBinDeviation)
		add("CDF vs integrated PDF", r.CDFvsPDF.MaxAbs(), t.MaxCDFError)
		add("CompCDF vs integrated PDF", r.CompCDFvsPDF.MaxAbs(), t.MaxCDFError)
	}
	if !math.IsNaN(r.MeanDeviation) {
		add("mean deviation", r.MeanDeviation, t.MaxMeanDeviation)
		add("variance deviation", r.VarianceDeviation, t.MaxVarianceDeviation)
	}

	n := float64(r.SampleSize)
	add("1 - CDF(largest)", n*r.OneMinusCDFLargest, t.MaxExtreme)
	add("CompCDF(largest)", n*r.CompCDFLargest, t.MaxExtreme)
	if !r.Discrete {
		// The smallest variate of a discrete sample sits on an atom, whose
		// mass is not of order 1/n.
		add("CDF(smallest)", n*r.CDFSmallest, t.MaxExtreme)
		add("1 - CompCDF(smallest)", n*r.OneMinusCompCDFSmallest, t.MaxExtreme)
	}

	if r.HasQuantile {
		add("QSmall round trip", r.QSmallRoundTrip.MaxAbs(), t.MaxRoundTrip)
		add("QLarge round trip", r.QLargeRoundTrip.MaxAbs(), t.MaxRoundTrip)
	}
	return batch.Compile()
}
