// Package metrics defines the Prometheus metrics exposed by the triage
// service. The host application decides how to serve them.
package metrics

import "github.com/prometheus/client_golang/prometheus"

var (
	ClassificationsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "lostfound",
			Name:      "urgency_classifications_total",
			Help:      "Urgency classifications served, by mode and tier",
		},
		[]string{"mode", "tier"}, // mode: "model" / "disabled"
	)

	ModelLoadsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "lostfound",
			Name:      "urgency_model_loads_total",
			Help:      "Model pair load attempts, by outcome",
		},
		[]string{"status"}, // "ok" / "error"
	)
)

var registered bool

// Register registers the triage metrics. Must be called once from main;
// no init() magic.
func Register() {
	if registered {
		return
	}
	prometheus.MustRegister(ClassificationsTotal)
	prometheus.MustRegister(ModelLoadsTotal)
	registered = true
}
