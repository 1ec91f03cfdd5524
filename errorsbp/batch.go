package errorsbp

import (
	"errors"
	"strconv"
	"strings"
)

var (
	_ error = Batch{}
	_ error = (*Batch)(nil)
)

// Batch is an error that holds multiple errors.
//
// The zero value is an empty batch, ready to use.
// Batch is not safe for concurrent use.
type Batch struct {
	errs []error
}

func (b Batch) Error() string {
	var sb strings.Builder
	sb.WriteString(strconv.Itoa(len(b.errs)))
	sb.WriteString(" error(s)")
	for i, err := range b.errs {
		if i == 0 {
			sb.WriteString(": ")
		} else {
			sb.WriteString("; ")
		}
		sb.WriteString(err.Error())
	}
	return sb.String()
}

// Unwrap returns the errors in the batch, so errors.Is and errors.As match
// any of them.
func (b Batch) Unwrap() []error {
	return b.errs
}

// Len returns the number of errors in the batch.
func (b Batch) Len() int {
	return len(b.errs)
}

// Errors returns a copy of the errors in the batch.
func (b Batch) Errors() []error {
	return append([]error(nil), b.errs...)
}

// Add adds errors to the batch, skipping nil ones.
//
// A Batch (or *Batch) is flattened: its errors are added instead of itself.
func (b *Batch) Add(errs ...error) {
	b.AddPrefix("", errs...)
}

// AddPrefix is Add with every added error wrapped by PrefixError.
//
// It's the way to report which item of a collection failed, for example
// which named distribution of a config failed to build.
func (b *Batch) AddPrefix(prefix string, errs ...error) {
	for _, err := range errs {
		var children []error
		switch v := err.(type) {
		case nil:
			continue
		case Batch:
			children = v.errs
		case *Batch:
			if v == nil {
				continue
			}
			children = v.errs
		default:
			b.errs = append(b.errs, PrefixError(prefix, err))
			continue
		}
		for _, child := range children {
			b.errs = append(b.errs, PrefixError(prefix, child))
		}
	}
}

// Compile returns nil for an empty batch, the only error of a batch of one,
// and the batch itself otherwise.
func (b Batch) Compile() error {
	switch len(b.errs) {
	case 0:
		return nil
	case 1:
		return b.errs[0]
	default:
		return b
	}
}

// BatchSize returns the number of errors in err.
//
// It's Len for a Batch or *Batch, found through errors.As, 1 for any other
// non-nil error and 0 for nil. It's mostly useful in tests.
func BatchSize(err error) int {
	if err == nil {
		return 0
	}
	var b Batch
	if errors.As(err, &b) {
		return b.Len()
	}
	var pb *Batch
	if errors.As(err, &pb) && pb != nil {
		return pb.Len()
	}
	return 1
}
