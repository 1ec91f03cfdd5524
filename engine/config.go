package engine

import (
	"errors"
)

// Config is the configuration of the engines of an application.
//
// At most one of SeedFile and State can be set. When neither is set the
// engines are seeded from entropy.
//
// Can be deserialized from YAML or TOML, and every field can be overridden
// by the environment variable named in its env tag.
//
// Example:
//
//	engine:
//	  seedFile: /var/lib/myapp/seed.txt
//	  auditFile: /var/log/myapp/state.txt
//	  parallel: 4
type Config struct {
	// SeedFile is the path of a state file to seed the first engine from.
	SeedFile string `yaml:"seedFile" toml:"seedFile" env:"PQRAND_SEED_FILE"`

	// State is a state string to seed the first engine from.
	State string `yaml:"state" toml:"state" env:"PQRAND_STATE"`

	// AuditFile, if set, is where the state of the first engine is written
	// right after seeding, so the run can be reproduced.
	AuditFile string `yaml:"auditFile" toml:"auditFile" env:"PQRAND_AUDIT_FILE"`

	// Parallel is the number of engines to create, defaults to 1.
	Parallel int `yaml:"parallel" toml:"parallel" env:"PQRAND_PARALLEL"`
}

// Seeder returns the Seeder described by the config.
func (c Config) Seeder() (Seeder, error) {
	switch {
	case c.SeedFile != "" && c.State != "":
		return nil, errors.New("engine: seedFile and state are mutually exclusive")
	case c.SeedFile != "":
		return FromFile(c.SeedFile), nil
	case c.State != "":
		return FromString(c.State), nil
	default:
		return FromEntropy(), nil
	}
}

// NewFromConfig creates the engines described by cfg, see Parallel.
func NewFromConfig(cfg Config, opts ...Option) ([]*Engine, error) {
	seed, err := cfg.Seeder()
	if err != nil {
		return nil, err
	}
	n := cfg.Parallel
	if n == 0 {
		n = 1
	}
	engines, err := Parallel(n, seed, opts...)
	if err != nil {
		return nil, err
	}
	if cfg.AuditFile != "" {
		// The first engine still holds the seed state, Parallel from the
		// audited state reproduces every engine.
		if err := engines[0].WriteState(cfg.AuditFile); err != nil {
			return nil, err
		}
	}
	return engines, nil
}
