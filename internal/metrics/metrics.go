// Package metrics records command counters and latencies with Prometheus.
//
// The shell has no network surface, so nothing is served: the registry is
// dumped in the text exposition format when the session ends.
package metrics

import (
	"context"
	"errors"
	"fmt"

	"github.com/aretw0/vfsh/pkg/domain"
	"github.com/aretw0/vfsh/pkg/vpath"
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the collectors fed by the command hooks.
type Metrics struct {
	registry *prometheus.Registry
	commands *prometheus.CounterVec
	duration *prometheus.HistogramVec
	escapes  prometheus.Counter
}

// New registers the collectors on a fresh registry.
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		commands: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "vfsh_commands_total",
				Help: "Total number of executed commands",
			},
			[]string{"verb", "outcome"},
		),
		duration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "vfsh_command_duration_seconds",
				Help:    "Duration of command executions",
				Buckets: prometheus.ExponentialBuckets(0.0001, 4, 8),
			},
			[]string{"verb"},
		),
		escapes: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "vfsh_sandbox_escapes_total",
			Help: "Paths rejected for resolving outside the sandbox",
		}),
	}
	m.registry.MustRegister(m.commands, m.duration, m.escapes)
	return m
}

// Registry exposes the underlying registry.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// Hooks returns the callbacks that record every command.
func (m *Metrics) Hooks() domain.Hooks {
	return domain.Hooks{
		OnCommand: func(_ context.Context, e *domain.CommandEvent) {
			m.commands.WithLabelValues(e.Verb, e.Outcome).Inc()
			m.duration.WithLabelValues(e.Verb).Observe(e.Duration.Seconds())
			if errors.Is(e.Err, vpath.ErrEscape) {
				m.escapes.Inc()
			}
		},
	}
}

// WriteTextfile writes the current values to path, atomically.
func (m *Metrics) WriteTextfile(path string) error {
	if err := prometheus.WriteToTextfile(path, m.registry); err != nil {
		return fmt.Errorf("failed to write metrics: %w", err)
	}
	return nil
}
