package limitopen

import (
	"github.com/prometheus/client_golang/prometheus"
)

// SoftLimitCounterForTest exposes the soft limit counter for a file base name.
func SoftLimitCounterForTest(base string) prometheus.Counter {
	return softLimitCounter.With(prometheus.Labels{pathLabel: base})
}
