package engine

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Exported for tests.
var (
	JumpsCounter    = jumpsCounter
	UnseededCounter = unseededCounter
)

func SeedsCounterForTest(source string) prometheus.Counter {
	return seedsCounter.With(prometheus.Labels{sourceLabel: source})
}

func SeedFailuresCounterForTest(source string) prometheus.Counter {
	return seedFailuresCounter.With(prometheus.Labels{sourceLabel: source})
}
