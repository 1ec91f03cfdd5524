package errorsbp

import (
	"errors"
)

// PrefixError labels err with the item it is about, as in
// "latency: dist: normal: invalid sigma -1".
//
// A nil err stays nil and an empty prefix returns err as is. The prefix is
// used literally, never as a format string, so config keys and other user
// input are safe to pass.
func PrefixError(prefix string, err error) error {
	switch {
	case err == nil:
		return nil
	case prefix == "":
		return err
	}
	return &PrefixedError{prefix: prefix, err: err}
}

// PrefixedError is an error labeled by PrefixError.
type PrefixedError struct {
	prefix string
	err    error
}

func (e *PrefixedError) Error() string {
	return e.prefix + ": " + e.err.Error()
}

func (e *PrefixedError) Unwrap() error {
	return e.err
}

// Prefix returns the label of the error.
func (e *PrefixedError) Prefix() string {
	return e.prefix
}

// Path returns the labels of e and of every PrefixedError down its chain of
// single wrapped errors, outermost first. Labels of a Batch below are not
// included since they differ between its errors.
func (e *PrefixedError) Path() []string {
	var path []string
	var err error = e
	for err != nil {
		if p, ok := err.(*PrefixedError); ok {
			path = append(path, p.prefix)
		}
		err = errors.Unwrap(err)
	}
	return path
}

