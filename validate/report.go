package validate

import (
	"fmt"
	"math"
	"strings"
)

func banner(sb *strings.Builder, text string, char byte) {
	line := strings.Repeat(string(char), len(text))
	fmt.Fprintf(sb, "%s\n%s\n%s\n\n", line, text, line)
}

func (d Deviations) format(verb string) string {
	return fmt.Sprintf("min (%"+verb+"), max (%"+verb+"), rms (%"+verb+")", d.Min, d.Max, d.RMS)
}

// String renders the report as human readable text.
func (r Report) String() string {
	var sb strings.Builder
	banner(&sb, "Validation Report: "+r.Dist, '#')

	if !r.Discrete {
		banner(&sb, "Verify that the sample matches the PDF", '=')
		sb.WriteString("Bin a random sample with random bin edges, assume Poissonian counting errors,\n")
		sb.WriteString("then compare empirical counts to the expected count from numerical integration of the PDF.\n\n")
		fmt.Fprintf(&sb, "    random sample size: %d\n", r.SampleSize)
		fmt.Fprintf(&sb, "    number of random bins: %d\n\n", r.Bins.N)
		sb.WriteString("    random bin count deviations (in units of Poissonian error bars):\n")
		fmt.Fprintf(&sb, "        %s\n\n", r.Bins.format(".2f"))
		sb.WriteString(strings.Repeat("-", 80) + "\n\n")
	}

	sb.WriteString("Difference of sample mean/variance versus theory (in units of their standard error)\n\n")
	if math.IsNaN(r.MeanDeviation) {
		sb.WriteString("    skipped, the variance diverges\n\n")
	} else {
		fmt.Fprintf(&sb, "    mean: %.2f    variance: %.2f\n\n", r.MeanDeviation, r.VarianceDeviation)
	}

	banner(&sb, "Verify that the CDF matches the PDF", '=')
	fmt.Fprintf(&sb, "Plugging the smallest/largest variates into the CDF and CompCDF should return Order(%.3e)\n\n", 2/float64(r.SampleSize))
	fmt.Fprintf(&sb, "    CDF(smallest):    %.1e,    1 - CDF(largest):      %.1e\n", r.CDFSmallest, r.OneMinusCDFLargest)
	fmt.Fprintf(&sb, "    CompCDF(largest): %.1e,    1 - CompCDF(smallest): %.1e\n", r.CompCDFLargest, r.OneMinusCompCDFSmallest)
	if !r.Discrete {
		sb.WriteString("\n" + strings.Repeat("-", 80) + "\n\n")
		sb.WriteString("Using the same random bins as the PDF test, compare the integrated PDF\n")
		sb.WriteString("to the difference in CDF across each bin.\n\n")
		sb.WriteString("    CDF vs. PDF absolute difference:\n")
		fmt.Fprintf(&sb, "        %s\n\n", r.CDFvsPDF.format(".2e"))
		sb.WriteString("    CompCDF vs. PDF absolute difference:\n")
		fmt.Fprintf(&sb, "        %s\n\n", r.CompCDFvsPDF.format(".2e"))
		fmt.Fprintf(&sb, "    largest quadrature error estimate: %.2e", r.QuadratureError)
		if r.UnconvergedBins > 0 {
			fmt.Fprintf(&sb, " (%d bins did not converge)", r.UnconvergedBins)
		}
		sb.WriteString("\n\n")
	} else {
		sb.WriteString("\n")
	}

	if r.HasQuantile {
		banner(&sb, "Verify that the CDF reverses the quantile function (the two are self-consistent).", '=')
		sb.WriteString("    CDF reverses QSmall:\n")
		fmt.Fprintf(&sb, "        %s\n\n", r.QSmallRoundTrip.format(".2e"))
		sb.WriteString("    CompCDF reverses QLarge:\n")
		fmt.Fprintf(&sb, "        %s\n\n", r.QLargeRoundTrip.format(".2e"))
	}
	return sb.String()
}
