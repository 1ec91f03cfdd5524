// Package spectest checks pqrand prometheus metrics in tests.
package spectest

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/pqrand/pqrand.go/errorsbp"
)

var (
	errPrefix         = errors.New("the prefix is not at the beginning of the metric name")
	errLength         = errors.New("metric name should have a minimum of 3 parts, like prefix_name_suffix")
	errCount          = errors.New("wrong metric count for prefix")
	errPrometheusLint = errors.New("problem with Prometheus GatherAndLint")
)

// ValidateSpec checks that every metric of prometheus.DefaultGatherer whose
// name begins with metricPrefix passes the prometheus linter and follows the
// prefix_name_suffix convention, and that there are wantMetricCount of them.
//
// Vector metrics only show up once one of their children was used.
func ValidateSpec(tb testing.TB, metricPrefix string, wantMetricCount int) {
	tb.Helper()
	if err := validateSpec(prometheus.DefaultGatherer, metricPrefix, wantMetricCount); err != nil {
		tb.Error(err)
	}
}

func validateSpec(g prometheus.Gatherer, metricPrefix string, wantMetricCount int) error {
	families, err := g.Gather()
	if err != nil {
		return err
	}

	var batch errorsbp.Batch
	var count int
	for _, m := range families {
		name := m.GetName()
		if !strings.HasPrefix(name, metricPrefix) {
			continue
		}
		count++
		batch.Add(validatePromLint(g, name))
		batch.Add(validateName(name, metricPrefix))
	}
	if count != wantMetricCount {
		batch.Add(fmt.Errorf("%w: got %d, want %d", errCount, count, wantMetricCount))
	}
	return batch.Compile()
}

// validateName checks that the metric name has at least 3 parts separated by
// "_" and begins with the prefix.
//
// The parts are <namespace>_<metric>_<suffix> as described in Prometheus
// naming conventions: https://prometheus.io/docs/practices/naming
func validateName(name, prefix string) error {
	const metricPartSeparator = "_"
	var batch errorsbp.Batch
	if parts := strings.Split(name, metricPartSeparator); len(parts) < 3 {
		batch.Add(fmt.Errorf("%w: got %d, want >= 3", errLength, len(parts)))
	}
	if !strings.HasPrefix(name, strings.TrimSuffix(prefix, metricPartSeparator)+metricPartSeparator) {
		batch.Add(fmt.Errorf("%w: got %s, want prefix %s", errPrefix, name, prefix+metricPartSeparator))
	}
	return batch.Compile()
}

func validatePromLint(g prometheus.Gatherer, name string) error {
	problems, err := testutil.GatherAndLint(g, name)
	if err != nil {
		return err
	}
	var batch errorsbp.Batch
	for _, p := range problems {
		batch.Add(fmt.Errorf("%w: metric %s, problem %s", errPrometheusLint, name, p.Text))
	}
	return batch.Compile()
}

// CounterDelta remembers the value of a counter so tests can check how much
// it moved.
type CounterDelta struct {
	tb      testing.TB
	name    string
	counter prometheus.Counter
	initial float64
}

// NewCounterDelta records the current value of counter.
func NewCounterDelta(tb testing.TB, name string, counter prometheus.Counter) *CounterDelta {
	return &CounterDelta{
		tb:      tb,
		name:    name,
		counter: counter,
		initial: testutil.ToFloat64(counter),
	}
}

// Check fails the test unless the counter moved by exactly delta since
// NewCounterDelta.
func (c *CounterDelta) Check(delta float64) {
	c.tb.Helper()
	if got := testutil.ToFloat64(c.counter) - c.initial; got != delta {
		c.tb.Errorf("%s delta: got %v, want %v", c.name, got, delta)
	}
}
