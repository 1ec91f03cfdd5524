package engine

import (
	"errors"
	"fmt"
)

// ErrUnseeded is wrapped by StateError.
var ErrUnseeded = errors.New("engine: not seeded")

// ParseError is returned when a state string is malformed.
type ParseError struct {
	// Input is the state string that failed to parse.
	Input string

	// Err describes what is wrong with Input.
	Err error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("engine: cannot parse state %q: %v", abbreviate(e.Input), e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// IOError is returned when a state file cannot be read or written.
type IOError struct {
	// Op is either "read" or "write".
	Op   string
	Path string
	Err  error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("engine: %s state file %q: %v", e.Op, e.Path, e.Err)
}

func (e *IOError) Unwrap() error {
	return e.Err
}

// StateError is returned when an operation needs a seeded engine.
type StateError struct {
	Op string
}

func (e *StateError) Error() string {
	return fmt.Sprintf("engine: %s requires a seeded engine", e.Op)
}

func (e *StateError) Unwrap() error {
	return ErrUnseeded
}

func abbreviate(s string) string {
	const max = 64
	if len(s) <= max {
		return s
	}
	return s[:max] + "..."
}
