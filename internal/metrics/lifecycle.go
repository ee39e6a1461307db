// Package metrics holds the domain counters exported on /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"

	"doctrack/internal/model"
)

// Lifecycle counts document registrations, status transitions and lookups.
// A nil *Lifecycle is valid and records nothing.
type Lifecycle struct {
	registered  *prometheus.CounterVec
	transitions *prometheus.CounterVec
	searches    *prometheus.CounterVec
}

// NewLifecycle creates the counters and registers them with reg.
func NewLifecycle(reg prometheus.Registerer) (*Lifecycle, error) {
	l := &Lifecycle{
		registered: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "documents_registered_total",
				Help: "Total number of documents registered.",
			},
			[]string{"type", "branch"},
		),
		transitions: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "document_transitions_total",
				Help: "Total number of document status changes.",
			},
			[]string{"status"},
		),
		searches: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "document_searches_total",
				Help: "Total number of point lookups by outcome.",
			},
			[]string{"result"},
		),
	}

	for _, c := range []prometheus.Collector{l.registered, l.transitions, l.searches} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}
	return l, nil
}

func (l *Lifecycle) Registered(t model.DocType, b model.Branch) {
	if l == nil {
		return
	}
	l.registered.WithLabelValues(string(t), string(b)).Inc()
}

func (l *Lifecycle) Transitioned(s model.DocStatus) {
	if l == nil {
		return
	}
	l.transitions.WithLabelValues(string(s)).Inc()
}

// Searched records a lookup outcome: "hit" or "miss".
func (l *Lifecycle) Searched(hit bool) {
	if l == nil {
		return
	}
	result := "miss"
	if hit {
		result = "hit"
	}
	l.searches.WithLabelValues(result).Inc()
}
