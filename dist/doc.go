// Package dist implements probability distributions sampled through their
// quantile functions.
//
// Every distribution draws from a Source, usually an *engine.Engine, for the
// duration of a single call and never retains it. Distributions with a
// closed form quantile function implement Quantiler, and their Draw uses a
// quantile flip-flop: a half uniform variate is fed to either QSmall or
// QLarge, picked by a coin flip, so both tails are sampled with the full
// precision of the engine instead of the lower one only.
//
// Besides sampling, each distribution exposes its PDF, CDF, CompCDF and
// moments, which is what package validate checks samples against.
//
// A minimal example:
//
//	e, err := engine.New()
//	if err != nil {
//	  log.Fatal(err)
//	}
//	d, err := dist.NewWeibull(0.1, 1.2)
//	if err != nil {
//	  log.Fatal(err)
//	}
//	sample := dist.Sample(d, 1000, e)
package dist
