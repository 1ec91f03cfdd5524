package xorshift

import (
	"encoding"
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var (
	_ encoding.TextMarshaler   = (*Generator)(nil)
	_ encoding.TextUnmarshaler = (*Generator)(nil)
)

// ErrMalformed is wrapped by every error returned by UnmarshalText.
var ErrMalformed = errors.New("xorshift: malformed state")

// AppendText appends the state of the generator in its text form:
//
//	s0 s1 ... s15 16 p
//
// Words are unsigned decimal integers separated by a single space.
func (g *Generator) AppendText(b []byte) []byte {
	for _, w := range g.s {
		b = strconv.AppendUint(b, w, 10)
		b = append(b, ' ')
	}
	b = strconv.AppendInt(b, StateSize, 10)
	b = append(b, ' ')
	return strconv.AppendInt(b, int64(g.p), 10)
}

// MarshalText implements encoding.TextMarshaler.
func (g *Generator) MarshalText() ([]byte, error) {
	return g.AppendText(nil), nil
}

// String returns the text form of the state.
func (g *Generator) String() string {
	return string(g.AppendText(nil))
}

// UnmarshalText implements encoding.TextUnmarshaler.
//
// Two forms are accepted, the full form written by MarshalText and the
// minimal form without p:
//
//	s0 s1 ... s15 16 p
//	s0 s1 ... s15 16
//
// When p is missing it defaults to 0. Any whitespace separates tokens.
// On error the generator is left unchanged.
func (g *Generator) UnmarshalText(text []byte) error {
	fields := strings.Fields(string(text))
	var parsed Generator
	rest, err := parsed.Consume(fields)
	if err != nil {
		return err
	}
	if len(rest) > 0 {
		return fmt.Errorf("%w: %d unexpected trailing token(s) starting at %q", ErrMalformed, len(rest), rest[0])
	}
	*g = parsed
	return nil
}

// Consume parses the generator state from the head of fields and returns the
// unparsed tail.
//
// The optional p token is consumed when present, so callers that append
// their own tokens after the generator state must always write p.
// On error the generator is left unchanged.
func (g *Generator) Consume(fields []string) ([]string, error) {
	var state [StateSize]uint64
	if len(fields) < StateSize {
		return nil, fmt.Errorf("%w: not enough words to fill state, got %d, want %d", ErrMalformed, len(fields), StateSize)
	}
	for i := range state {
		w, err := strconv.ParseUint(fields[i], 10, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: word %d: %v", ErrMalformed, i, err)
		}
		state[i] = w
	}
	fields = fields[StateSize:]

	if len(fields) == 0 {
		return nil, fmt.Errorf("%w: state size not supplied", ErrMalformed)
	}
	if size, err := strconv.ParseUint(fields[0], 10, 64); err != nil || size != StateSize {
		return nil, fmt.Errorf("%w: wrong state size %q, want %d", ErrMalformed, fields[0], StateSize)
	}
	fields = fields[1:]

	p := 0
	if len(fields) > 0 {
		v, err := strconv.ParseUint(fields[0], 10, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: index p: %v", ErrMalformed, err)
		}
		if v >= StateSize {
			return nil, fmt.Errorf("%w: index p %d out of range [0, %d)", ErrMalformed, v, StateSize)
		}
		p = int(v)
		fields = fields[1:]
	}

	g.s = state
	g.p = p
	return fields, nil
}
