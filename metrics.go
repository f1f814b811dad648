package saturnlog

import "github.com/prometheus/client_golang/prometheus"

// driverMetrics groups the Prometheus collectors a Driver reports
// through. This is purely observational (spec.md §5 has no notion of
// metrics); a Driver built without WithMetrics behaves identically.
type driverMetrics struct {
	steps      prometheus.Counter
	models     prometheus.Counter
	pruned     prometheus.Counter
	stackDepth prometheus.Gauge
}

// NewMetrics registers saturnlog's driver counters/gauges against reg
// and returns a driverMetrics ready to pass to WithMetrics. Registering
// against a fresh prometheus.NewRegistry() per Driver avoids collisions
// when running many drivers (e.g. one per test) in the same process.
func NewMetrics(reg prometheus.Registerer) *driverMetrics {
	m := &driverMetrics{
		steps: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "saturnlog_steps_total",
			Help: "Total number of Step invocations across all explored databases.",
		}),
		models: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "saturnlog_models_total",
			Help: "Total number of saturated models collected.",
		}),
		pruned: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "saturnlog_pruned_total",
			Help: "Total number of databases pruned as inconsistent.",
		}),
		stackDepth: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "saturnlog_stack_depth",
			Help: "Current depth of the driver's DFS stack.",
		}),
	}
	reg.MustRegister(m.steps, m.models, m.pruned, m.stackDepth)
	return m
}
