// SPDX-License-Identifier: MIT
//
// Package metrics exposes solver runs as Prometheus collectors.
//
// A Recorder owns four collectors, registered on the Registerer passed to
// NewRecorder:
//
//	cycleratio_solves_total{oracle,outcome}     counter
//	cycleratio_solve_iterations{oracle}         histogram
//	cycleratio_solve_duration_seconds{oracle}   histogram
//	cycleratio_last_ratio{oracle}               gauge (only set when a cycle was found)
//
// outcome is one of "cycle", "acyclic" or "error".
package metrics

import (
	"errors"
	"time"

	"github.com/katalvlaran/cycleratio/parametric"
	"github.com/prometheus/client_golang/prometheus"
)

// ErrNilRegisterer indicates NewRecorder was called without a registry.
var ErrNilRegisterer = errors.New("metrics: registerer is nil")

// Outcome labels.
const (
	OutcomeCycle   = "cycle"
	OutcomeAcyclic = "acyclic"
	OutcomeError   = "error"
)

// Recorder records solver runs. The zero value is not usable; a nil
// *Recorder is, and records nothing.
type Recorder struct {
	solves     *prometheus.CounterVec
	iterations *prometheus.HistogramVec
	duration   *prometheus.HistogramVec
	lastRatio  *prometheus.GaugeVec
}

// NewRecorder creates the collectors and registers them on reg.
func NewRecorder(reg prometheus.Registerer) (*Recorder, error) {
	if reg == nil {
		return nil, ErrNilRegisterer
	}
	r := &Recorder{
		solves: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "cycleratio_solves_total",
				Help: "Minimum cycle ratio solves by oracle and outcome",
			},
			[]string{"oracle", "outcome"},
		),
		iterations: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "cycleratio_solve_iterations",
				Help:    "Negative-cycle probes per solve",
				Buckets: prometheus.ExponentialBuckets(1, 2, 12),
			},
			[]string{"oracle"},
		),
		duration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "cycleratio_solve_duration_seconds",
				Help:    "Wall time per solve in seconds",
				Buckets: prometheus.ExponentialBuckets(1e-5, 4, 12),
			},
			[]string{"oracle"},
		),
		lastRatio: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "cycleratio_last_ratio",
				Help: "Ratio of the most recent critical cycle",
			},
			[]string{"oracle"},
		),
	}
	for _, c := range []prometheus.Collector{r.solves, r.iterations, r.duration, r.lastRatio} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}

	return r, nil
}

// Observe records one solve. Iterations are only observed for successful runs.
func (r *Recorder) Observe(oracle string, res parametric.Result, err error, elapsed time.Duration) {
	if r == nil {
		return
	}
	r.duration.WithLabelValues(oracle).Observe(elapsed.Seconds())
	switch {
	case err != nil:
		r.solves.WithLabelValues(oracle, OutcomeError).Inc()
		return
	case res.HasCycle():
		r.solves.WithLabelValues(oracle, OutcomeCycle).Inc()
		r.lastRatio.WithLabelValues(oracle).Set(res.Ratio)
	default:
		r.solves.WithLabelValues(oracle, OutcomeAcyclic).Inc()
	}
	r.iterations.WithLabelValues(oracle).Observe(float64(res.Iterations))
}
