// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package prometheus provides a probe.Observer that counts sort calls in
// Prometheus metrics.
package prometheus

import (
	"github.com/prometheus/client_golang/prometheus"
	"golang.org/x/exp/sorts/probe"
)

// Options configures the metric names.
type Options struct {
	// Namespace prefixes every metric name. The default is "sorts".
	Namespace string
	// Buckets are the duration histogram buckets in seconds. The default is
	// prometheus.DefBuckets.
	Buckets []float64
}

// Observer is a probe.Observer that updates Prometheus collectors at the
// end of every sort call.
type Observer struct {
	calls    *prometheus.CounterVec
	duration *prometheus.HistogramVec
	elements *prometheus.CounterVec
	merges   *prometheus.CounterVec
}

var _ probe.Observer = (*Observer)(nil)

// NewObserver creates the collectors and registers them with reg.
// A nil opts is the same as the zero Options.
func NewObserver(reg prometheus.Registerer, opts *Options) (*Observer, error) {
	var o Options
	if opts != nil {
		o = *opts
	}
	if o.Namespace == "" {
		o.Namespace = "sorts"
	}
	if o.Buckets == nil {
		o.Buckets = prometheus.DefBuckets
	}

	obs := &Observer{
		calls: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: o.Namespace,
			Name:      "calls_total",
			Help:      "Number of sort calls.",
		}, []string{"algorithm", "outcome"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: o.Namespace,
			Name:      "duration_seconds",
			Help:      "Duration of sort calls.",
			Buckets:   o.Buckets,
		}, []string{"algorithm"}),
		elements: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: o.Namespace,
			Name:      "elements_total",
			Help:      "Number of elements sorted.",
		}, []string{"algorithm"}),
		merges: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: o.Namespace,
			Name:      "merges_total",
			Help:      "Number of run merges performed.",
		}, []string{"algorithm"}),
	}
	for _, c := range []prometheus.Collector{obs.calls, obs.duration, obs.elements, obs.merges} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}
	return obs, nil
}

func (o *Observer) Enabled(l probe.Level) bool { return l >= probe.Info }

func (o *Observer) Observe(ev *probe.Event) {
	if ev.Kind != probe.SortEnd {
		return
	}
	outcome := "ok"
	if ev.Err != nil {
		outcome = "error"
	}
	o.calls.WithLabelValues(ev.Algorithm, outcome).Inc()
	o.duration.WithLabelValues(ev.Algorithm).Observe(ev.Elapsed.Seconds())
	o.elements.WithLabelValues(ev.Algorithm).Add(float64(ev.Stats.Length))
	o.merges.WithLabelValues(ev.Algorithm).Add(float64(ev.Stats.Merges))
}
