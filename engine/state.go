package engine

import (
	"encoding"
	"errors"
	"fmt"
	"math/bits"
	"strconv"
	"strings"

	"github.com/pqrand/pqrand.go/xorshift"
)

var (
	_ encoding.TextMarshaler   = (*Engine)(nil)
	_ encoding.TextUnmarshaler = (*Engine)(nil)
)

// AppendState appends the canonical state string of the engine to b.
//
// The state string is a single line of unsigned decimal words:
//
//	s0 s1 ... s15 16 p bitCache cacheMask
//
// s0 to s15 and p are the generator state (see package xorshift), bitCache
// and cacheMask the state of Bool. It is portable across platforms and
// processes.
func (e *Engine) AppendState(b []byte) []byte {
	b = e.gen.AppendText(b)
	b = append(b, ' ')
	b = strconv.AppendUint(b, e.bitCache, 10)
	b = append(b, ' ')
	return strconv.AppendUint(b, e.cacheMask, 10)
}

// State returns the canonical state string of the engine.
//
// Two engines with the same state string produce the same stream.
// State does not advance the engine, so calling it twice without drawing in
// between returns the same string.
func (e *Engine) State() string {
	return string(e.AppendState(nil))
}

// MarshalText implements encoding.TextMarshaler with the state string.
func (e *Engine) MarshalText() ([]byte, error) {
	return e.AppendState(nil), nil
}

// UnmarshalText implements encoding.TextUnmarshaler, see SeedFromString.
func (e *Engine) UnmarshalText(text []byte) error {
	return e.SeedFromString(string(text))
}

// SeedFromString seeds the engine from a state string.
//
// Besides the full form written by State, two shorter forms are accepted:
//
//	s0 s1 ... s15 16 p
//	s0 s1 ... s15 16
//
// A missing p defaults to 0 and a missing bit cache to an empty one.
// Hand made seeds should use the shortest form.
// Any whitespace, including newlines, separates words.
//
// On error, which is always a *ParseError, the engine is left unchanged.
func (e *Engine) SeedFromString(s string) error {
	err := e.seedFromString(s)
	recordSeed(sourceString, err)
	return err
}

func (e *Engine) seedFromString(s string) error {
	var gen xorshift.Generator
	rest, err := gen.Consume(strings.Fields(s))
	if err != nil {
		return &ParseError{Input: s, Err: err}
	}
	if gen.IsZero() {
		return &ParseError{Input: s, Err: errors.New("all zero state is a fixed point of the generator")}
	}

	bitCache, cacheMask := uint64(0), replenishBitCache
	switch len(rest) {
	case 0:
	case 1:
		return &ParseError{Input: s, Err: errors.New("bit cache stored without its mask")}
	case 2:
		if bitCache, err = strconv.ParseUint(rest[0], 10, 64); err != nil {
			return &ParseError{Input: s, Err: fmt.Errorf("bit cache: %w", err)}
		}
		if cacheMask, err = strconv.ParseUint(rest[1], 10, 64); err != nil {
			return &ParseError{Input: s, Err: fmt.Errorf("cache mask: %w", err)}
		}
		if bits.OnesCount64(cacheMask) != 1 || cacheMask < replenishBitCache {
			return &ParseError{Input: s, Err: fmt.Errorf("cache mask %d is not a single bit >= %d", cacheMask, replenishBitCache)}
		}
	default:
		return &ParseError{Input: s, Err: fmt.Errorf("%d unexpected trailing word(s) starting at %q", len(rest)-2, rest[2])}
	}

	e.gen = gen
	e.bitCache = bitCache
	e.cacheMask = cacheMask
	e.seeded = true
	return nil
}

// StateJumpVec returns n state strings, each one Jump apart.
//
// The first string is the current state of the engine. The engine ends
// jumped n times, in a state not in the returned slice, so it can keep being
// used without colliding with any of them. Reseeding from the first string
// and calling StateJumpVec again reproduces the same slice.
//
// The strings are the easiest way to hand independent streams to workers
// in other processes; in-process callers should prefer Parallel.
func (e *Engine) StateJumpVec(n int) []string {
	states := make([]string, 0, n)
	for i := 0; i < n; i++ {
		states = append(states, e.State())
		e.Jump()
	}
	return states
}
