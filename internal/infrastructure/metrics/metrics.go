package metrics

import (
	"sync"

	"bengkel_service/internal/usecase/interfaces"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics exposes Prometheus collectors for the job lifecycle.
type Metrics struct {
	operations      *prometheus.CounterVec
	numberConflicts *prometheus.CounterVec
	streamClients   prometheus.Gauge
}

var _ interfaces.IOperationMetrics = (*Metrics)(nil)

var (
	defaultOnce    sync.Once
	defaultMetrics *Metrics
)

// New registers the collectors against registerer, or the default registerer
// (once) when nil.
func New(registerer prometheus.Registerer) *Metrics {
	if registerer == nil {
		defaultOnce.Do(func() {
			defaultMetrics = build(prometheus.DefaultRegisterer)
		})
		return defaultMetrics
	}
	return build(registerer)
}

func build(registerer prometheus.Registerer) *Metrics {
	m := &Metrics{
		operations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "bengkel",
			Subsystem: "jobs",
			Name:      "operations_total",
			Help:      "Job lifecycle operations by outcome.",
		}, []string{"operation", "outcome"}),
		numberConflicts: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "bengkel",
			Subsystem: "numbering",
			Name:      "conflicts_total",
			Help:      "Generated document numbers already claimed by another job.",
		}, []string{"family"}),
		streamClients: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "bengkel",
			Subsystem: "kpi",
			Name:      "stream_clients",
			Help:      "Open KPI live stream connections.",
		}),
	}
	registerer.MustRegister(m.operations, m.numberConflicts, m.streamClients)
	return m
}

func (m *Metrics) ObserveOperation(op, outcome string) {
	if m == nil {
		return
	}
	m.operations.WithLabelValues(op, outcome).Inc()
}

func (m *Metrics) ObserveNumberConflict(family string) {
	if m == nil {
		return
	}
	m.numberConflicts.WithLabelValues(family).Inc()
}

// StreamOpened tracks a live KPI client; call the returned func on disconnect.
func (m *Metrics) StreamOpened() func() {
	if m == nil {
		return func() {}
	}
	m.streamClients.Inc()
	return m.streamClients.Dec
}
