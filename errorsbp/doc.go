// Package errorsbp provides Batch, which compiles multiple errors into one,
// and PrefixError.
//
// An example, checking every distribution of a config:
//
//	func buildAll(configs map[string]dist.Config) error {
//	  var batch errorsbp.Batch
//	  for name, cfg := range configs {
//	    _, err := cfg.Build()
//	    // nil errors are skipped
//	    batch.AddPrefix(name, err)
//	  }
//	  // nil when every config is valid, the error itself when only one failed.
//	  return batch.Compile()
//	}
package errorsbp
