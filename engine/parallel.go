package engine

import (
	"errors"
	"fmt"
)

// Seeder seeds a single engine.
//
// Parallel calls it once, on the first engine, and derives the others by
// jumping.
type Seeder func(*Engine) error

// FromString returns a Seeder that seeds from a state string.
func FromString(state string) Seeder {
	return func(e *Engine) error {
		return e.SeedFromString(state)
	}
}

// FromFile returns a Seeder that seeds from the state file at path.
func FromFile(path string) Seeder {
	return func(e *Engine) error {
		return e.SeedFromFile(path)
	}
}

// FromEntropy returns a Seeder that seeds from the engine's entropy reader.
func FromEntropy() Seeder {
	return func(e *Engine) error {
		return e.Seed()
	}
}

// FromEngine returns a Seeder that copies the state of other.
//
// other is left as is, so its stream is the one of the first engine seeded
// from it. Discard other afterwards, or use ParallelFrom, which moves it past
// every engine it creates.
func FromEngine(other *Engine) Seeder {
	return func(e *Engine) error {
		return e.SeedFromEngine(other)
	}
}

// Parallel creates n engines for n independent goroutines.
//
// The first engine is seeded by seed (a nil seed means FromEntropy) and every
// other engine is a copy of the one before it, jumped once. The streams are
// therefore 2^512 words apart and never overlap in practice.
//
// opts apply to every engine. Each engine must stay owned by a single
// goroutine; Parallel itself is not a source of synchronization.
func Parallel(n int, seed Seeder, opts ...Option) ([]*Engine, error) {
	if n <= 0 {
		return nil, fmt.Errorf("engine: Parallel needs a positive number of engines, got %d", n)
	}
	if seed == nil {
		seed = FromEntropy()
	}

	first := NewUnseeded(opts...)
	if err := seed(first); err != nil {
		return nil, err
	}
	if !first.seeded {
		return nil, errors.New("engine: Parallel seeder returned without seeding the engine")
	}

	engines := make([]*Engine, n)
	engines[0] = first
	for i := 1; i < n; i++ {
		e := NewUnseeded(opts...)
		if err := e.SeedFromEngine(engines[i-1]); err != nil {
			return nil, err
		}
		e.Jump()
		engines[i] = e
	}
	return engines, nil
}

// ParallelFrom is Parallel seeded with FromEngine(other).
//
// On success other is jumped n times, so it continues on the stream right
// after the last engine and overlaps none of them.
func ParallelFrom(n int, other *Engine, opts ...Option) ([]*Engine, error) {
	engines, err := Parallel(n, FromEngine(other), opts...)
	if err != nil {
		return nil, err
	}
	other.JumpN(n)
	return engines, nil
}
