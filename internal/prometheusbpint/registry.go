// Package prometheusbpint holds the registerer every pqrand metric goes to.
package prometheusbpint

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Namespace prefixes every metric name registered by pqrand packages.
const Namespace = "pqrand"

// GlobalRegistry should be used to register all metrics from pqrand packages.
//
// It wraps prometheus.DefaultRegisterer so the metrics show up on the default
// /metrics handler of the embedding program without further wiring.
var GlobalRegistry prometheus.Registerer = prometheus.DefaultRegisterer
