package engine

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/pqrand/pqrand.go/internal/prometheusbpint"
)

const (
	promSubsystem = "engine"

	sourceLabel = "source"

	sourceEntropy = "entropy"
	sourceString  = "string"
	sourceFile    = "file"
	sourceEngine  = "engine"
)

var (
	sourceLabels = []string{
		sourceLabel,
	}

	seedsCounter = promauto.With(prometheusbpint.GlobalRegistry).NewCounterVec(prometheus.CounterOpts{
		Namespace: prometheusbpint.Namespace,
		Subsystem: promSubsystem,
		Name:      "seeds_total",
		Help:      "Total number of successful engine seedings by seed source",
	}, sourceLabels)

	seedFailuresCounter = promauto.With(prometheusbpint.GlobalRegistry).NewCounterVec(prometheus.CounterOpts{
		Namespace: prometheusbpint.Namespace,
		Subsystem: promSubsystem,
		Name:      "seed_failures_total",
		Help:      "Total number of failed engine seedings by seed source",
	}, sourceLabels)

	jumpsCounter = promauto.With(prometheusbpint.GlobalRegistry).NewCounter(prometheus.CounterOpts{
		Namespace: prometheusbpint.Namespace,
		Subsystem: promSubsystem,
		Name:      "jumps_total",
		Help:      "Total number of 2^512 step jumps performed by engines",
	})

	unseededCounter = promauto.With(prometheusbpint.GlobalRegistry).NewCounter(prometheus.CounterOpts{
		Namespace: prometheusbpint.Namespace,
		Subsystem: promSubsystem,
		Name:      "unseeded_draws_total",
		Help:      "Total number of engines drawn from before being seeded",
	})
)

func recordSeed(source string, err error) {
	labels := prometheus.Labels{sourceLabel: source}
	if err != nil {
		seedFailuresCounter.With(labels).Inc()
		return
	}
	seedsCounter.With(labels).Inc()
}
