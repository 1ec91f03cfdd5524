// Package pqrand provides a batteries-included starting point for
// applications sampling from pqrand distributions.
//
// It parses a config file, initializes the logger, creates the engines, and
// builds the named distributions:
//
//	setup, err := pqrand.New(configbp.ConfigPath)
//	if err != nil {
//	  return err
//	}
//	latency, _ := setup.Distribution("latency")
//	x := latency.Draw(setup.Engine(0))
//
// For the engine and the distributions themselves, please refer to the
// documentation of the subdirectories.
package pqrand
