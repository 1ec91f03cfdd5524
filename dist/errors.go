package dist

import (
	"fmt"
	"math"
	"strings"
)

// DomainError is returned for parameters or arguments outside the domain of
// a distribution.
type DomainError struct {
	// Dist is the name of the distribution, or the kind from a Config.
	Dist string

	// Param is the offending parameter, empty when the error is not about a
	// single parameter.
	Param string
	Value float64

	Reason string
}

func (e *DomainError) Error() string {
	var sb strings.Builder
	sb.WriteString("dist: ")
	sb.WriteString(e.Dist)
	if e.Param != "" {
		fmt.Fprintf(&sb, ": invalid %s %v", e.Param, e.Value)
	}
	sb.WriteString(": ")
	sb.WriteString(e.Reason)
	return sb.String()
}

func checkPositive(dist, param string, v float64) error {
	if !(v > 0) || math.IsInf(v, 1) {
		return &DomainError{Dist: dist, Param: param, Value: v, Reason: "must be positive and finite"}
	}
	return nil
}

func checkFinite(dist, param string, v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return &DomainError{Dist: dist, Param: param, Value: v, Reason: "must be finite"}
	}
	return nil
}
