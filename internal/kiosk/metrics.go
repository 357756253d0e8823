package kiosk

import (
	"strconv"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/linnemanlabs/guardian/internal/triage"
)

// Metrics holds Prometheus metrics for the kiosk flow.
type Metrics struct {
	ResolvesTotal       *prometheus.CounterVec
	TransitionsTotal    *prometheus.CounterVec
	CheckInsTotal       *prometheus.CounterVec
	SessionsPrunedTotal prometheus.Counter
}

// NewMetrics registers and returns kiosk metrics on the given registerer.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		ResolvesTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "guardian_resolves_total",
			Help: "Symptom selections resolved, by tier and whether the label was in the table.",
		}, []string{"tier", "known"}),
		TransitionsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "guardian_transitions_total",
			Help: "Kiosk actions by source screen, target screen, action and whether it applied.",
		}, []string{"from", "to", "action", "applied"}),
		CheckInsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "guardian_checkins_total",
			Help: "Safety check-ins by outcome.",
		}, []string{"outcome"}),
		SessionsPrunedTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "guardian_sessions_pruned_total",
			Help: "Idle sessions removed by the sweeper.",
		}),
	}

	reg.MustRegister(
		m.ResolvesTotal,
		m.TransitionsTotal,
		m.CheckInsTotal,
		m.SessionsPrunedTotal,
	)

	return m
}

// Hooks returns Hooks that increment the corresponding metrics.
func (m *Metrics) Hooks() Hooks {
	return Hooks{
		OnResolve: func(tier triage.Tier, known bool) {
			m.ResolvesTotal.WithLabelValues(string(tier), strconv.FormatBool(known)).Inc()
		},
		OnTransition: func(from, to State, action ActionKind, applied bool) {
			m.TransitionsTotal.WithLabelValues(string(from), string(to), string(action), strconv.FormatBool(applied)).Inc()
		},
		OnCheckIn: func(outcome string) {
			m.CheckInsTotal.WithLabelValues(outcome).Inc()
		},
		OnPrune: func(n int) {
			m.SessionsPrunedTotal.Add(float64(n))
		},
	}
}
