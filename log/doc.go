// Package log provides a wrapped zap logger used by the pqrand packages.
//
// The global logger starts as a nop logger, so the library is silent until
// the embedding program calls one of the Init functions:
//
//	log.InitLogger(log.InfoLevel)
//
// Library code logs the few events a user would want to audit: seeding from
// the entropy fallback, draws from an engine that was never seeded,
// state files read and written, and configuration loading.
package log
