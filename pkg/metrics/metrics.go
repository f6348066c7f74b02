// Package metrics exposes prometheus counters for catalogue operations.
package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	once sync.Once

	operations *prometheus.CounterVec
)

func setup() {
	operations = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "colophon",
		Subsystem: "catalogue",
		Name:      "operations_total",
		Help:      "Catalogue operations by entity, operation and outcome.",
	}, []string{"entity", "operation", "outcome"})
}

// RecordOperation counts one operation outcome. outcome is "ok" or "error".
func RecordOperation(entity, operation string, err error) {
	once.Do(setup)
	outcome := "ok"
	if err != nil {
		outcome = "error"
	}
	operations.WithLabelValues(entity, operation, outcome).Inc()
}
