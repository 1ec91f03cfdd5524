// Package validate checks distributions statistically against samples drawn
// from an engine.
//
// Run draws a sample and measures:
//
//   - how well counts in random bins match the integrated PDF;
//   - how far the sample mean and variance are from Mean and Variance;
//   - the CDF and CompCDF of the sample extremes;
//   - whether the CDF differences across the bins match the integrated PDF;
//   - whether the CDF undoes the quantile functions of a dist.Quantiler.
//
// The Report can be printed, or checked against Thresholds:
//
//	report, err := validate.Run(d, validate.Options{}, e)
//	if err != nil {
//	  return err
//	}
//	fmt.Print(report)
//	return report.Check(validate.DefaultThresholds)
package validate
