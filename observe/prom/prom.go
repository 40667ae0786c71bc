// Package prom exports repetition-run metrics to Prometheus.
package prom

import (
	"context"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/aponysus/rerun/observe"
)

// Observer counts runs and attempts and tracks how many attempts runs take.
type Observer struct {
	observe.BaseObserver

	runs           *prometheus.CounterVec
	attempts       *prometheus.CounterVec
	attemptsPerRun prometheus.Histogram
}

// NewObserver creates the metrics and registers them with reg.
func NewObserver(reg prometheus.Registerer) *Observer {
	o := &Observer{
		runs: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "rerun_runs_total",
			Help: "Completed runs by final result.",
		}, []string{"result"}),
		attempts: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "rerun_attempts_total",
			Help: "Completed attempts by outcome.",
		}, []string{"outcome"}),
		attemptsPerRun: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "rerun_attempts_per_run",
			Help:    "Attempts spent per run.",
			Buckets: prometheus.LinearBuckets(1, 1, 10),
		}),
	}
	if reg != nil {
		reg.MustRegister(o.runs, o.attempts, o.attemptsPerRun)
	}
	return o
}

func (o *Observer) OnAttempt(_ context.Context, rec observe.AttemptRecord) {
	o.attempts.WithLabelValues(rec.Outcome.String()).Inc()
}

func (o *Observer) OnSuccess(_ context.Context, rec observe.RunRecord) {
	o.runs.WithLabelValues("success").Inc()
	o.attemptsPerRun.Observe(float64(len(rec.Attempts)))
}

func (o *Observer) OnFailure(_ context.Context, rec observe.RunRecord) {
	o.runs.WithLabelValues("failure").Inc()
	o.attemptsPerRun.Observe(float64(len(rec.Attempts)))
}
