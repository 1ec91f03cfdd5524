// Package engine provides the random engine behind pqrand distributions.
//
// An Engine draws from a xorshift1024* generator (see package xorshift) and
// turns its words into the variates quantile sampling needs:
//
//   - U01 and HalfU, quasi-uniform variates in (0, 1] and (0, 0.5] with a
//     full 53-bit mantissa all the way down to 2^-64 and beyond;
//   - USuper, HalfUSuper and UEven, variates on an even 2^-53 grid;
//   - Bool, an ideal coin flip using 62 bits of every word;
//   - UniformInt, unbiased integers in a half open range.
//
// Engines are seeded from OS entropy, from a state string, from a state file
// or from another engine. The state of an engine can be written back to a
// file at any time, so every run can be reproduced:
//
//	e, err := engine.New()
//	if err != nil {
//	  log.Fatal(err)
//	}
//	if err := e.WriteState("seed.txt"); err != nil {
//	  log.Fatal(err)
//	}
//
// For parallel work create one engine per goroutine with Parallel. Engines
// have no internal locking, wrap one with NewLocked to share it.
package engine
