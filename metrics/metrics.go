// Copyright (c) 2026 Bentofolio.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

// Package metrics provides Prometheus observability for the showcase
// service: nomination and resolution counters plus the read-path latency.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds every collector the service registers. Counters are
// labelled by outcome so conflict rates are visible next to accept rates.
type Metrics struct {
	NominationsTotal     *prometheus.CounterVec
	WithdrawalsTotal     prometheus.Counter
	ResolutionsTotal     *prometheus.CounterVec
	ShowcaseReadDuration prometheus.Histogram
}

// Nomination outcome label values.
const (
	OutcomeAccepted = "accepted"
	OutcomeReplaced = "replaced"
	OutcomeConflict = "conflict"
	OutcomeRejected = "rejected"
)

// Resolution mode label values.
const (
	ModeAuto   = "auto"
	ModeManual = "manual"
	ModeClear  = "clear"
)

// New registers all showcase metrics against reg and returns the handle.
// Callers own the registry so tests can build isolated instances.
func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		NominationsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "showcase_nominations_total",
			Help: "Nomination attempts by outcome",
		}, []string{"outcome"}),
		WithdrawalsTotal: factory.NewCounter(prometheus.CounterOpts{
			Name: "showcase_withdrawals_total",
			Help: "Total nominations withdrawn by voters",
		}),
		ResolutionsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "showcase_resolutions_total",
			Help: "Winner resolution operations by mode",
		}, []string{"mode"}),
		ShowcaseReadDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "showcase_read_duration_seconds",
			Help:    "Duration of GetShowcase reads (public UI path)",
			Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1},
		}),
	}
}

// ObserveNomination records a nomination attempt outcome.
func (m *Metrics) ObserveNomination(outcome string) {
	m.NominationsTotal.WithLabelValues(outcome).Inc()
}

// ObserveResolution records a resolution operation.
func (m *Metrics) ObserveResolution(mode string) {
	m.ResolutionsTotal.WithLabelValues(mode).Inc()
}

// ObserveShowcaseRead records the duration of a read model build.
// Call with time.Now() from the start of the operation.
func (m *Metrics) ObserveShowcaseRead(start time.Time) {
	m.ShowcaseReadDuration.Observe(time.Since(start).Seconds())
}
