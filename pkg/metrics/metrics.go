// Package metrics exposes prometheus counters for registration dispatches on
// the source side and credential bindings on the destination side.
package metrics

import (
	"sync"

	"cosmossdk.io/log"
	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "credreg"

// Dispatch outcomes.
const (
	OutcomeDispatched = "dispatched"
	OutcomeRejected   = "rejected"
	OutcomeMalformed  = "malformed_response"
)

// Binding outcomes.
const (
	OutcomeCreated   = "created"
	OutcomeExisting  = "existing"
	OutcomeConflict  = "conflict"
	OutcomeInvalid   = "invalid"
	OutcomeForwarded = "forwarded"
)

// Metrics groups the registration counters. A nil *Metrics is valid and
// records nothing, so keepers built in tests can skip metrics entirely.
type Metrics struct {
	dispatches *prometheus.CounterVec
	bindings   *prometheus.CounterVec
}

var (
	defaultMetrics *Metrics
	once           sync.Once
)

// New creates the counters and registers them with reg.
func New(reg prometheus.Registerer) (*Metrics, error) {
	m := &Metrics{
		dispatches: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "dispatches_total",
				Help:      "Registration dispatches attempted by the originator, by outcome",
			},
			[]string{"outcome"},
		),
		bindings: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "bindings_total",
				Help:      "Inbound messages seen by the registrar, by outcome",
			},
			[]string{"outcome"},
		),
	}

	for _, c := range []prometheus.Collector{m.dispatches, m.bindings} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}

	return m, nil
}

// Default returns the process wide counters registered with the default
// prometheus registry (the one CometBFT serves). Registration happens once;
// if it fails the error is logged and nil is returned.
func Default(logger log.Logger) *Metrics {
	once.Do(func() {
		m, err := New(prometheus.DefaultRegisterer)
		if err != nil {
			logger.With("module", "credreg_metrics").Error("failed to register metrics", "err", err)
			return
		}
		defaultMetrics = m
	})
	return defaultMetrics
}

// Dispatch records a dispatch attempt.
func (m *Metrics) Dispatch(outcome string) {
	if m == nil {
		return
	}
	m.dispatches.WithLabelValues(outcome).Inc()
}

// Binding records an inbound message handled by the registrar.
func (m *Metrics) Binding(outcome string) {
	if m == nil {
		return
	}
	m.bindings.WithLabelValues(outcome).Inc()
}
