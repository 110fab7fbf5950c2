// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package otel provides a probe.Observer that records each sort call as an
// OpenTelemetry span and in a set of OpenTelemetry metrics.
//
// Only SortEnd events are used. The span is back-dated to the start of the
// call, so no state is kept between events.
package otel

import (
	"context"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/exp/sorts/probe"
)

// InstrumentationName is the name given to the tracer and the meter.
const InstrumentationName = "golang.org/x/exp/sorts"

// Observer is a probe.Observer exporting to OpenTelemetry.
type Observer struct {
	tracer   trace.Tracer
	calls    metric.Int64Counter
	duration metric.Float64Histogram
	elements metric.Int64Counter
	merges   metric.Int64Counter
}

var _ probe.Observer = (*Observer)(nil)

// NewObserver creates the instruments from mp and the tracer from tp.
func NewObserver(tp trace.TracerProvider, mp metric.MeterProvider) (*Observer, error) {
	o := &Observer{tracer: tp.Tracer(InstrumentationName)}
	m := mp.Meter(InstrumentationName)

	var err error
	if o.calls, err = m.Int64Counter("sorts.calls",
		metric.WithDescription("Number of sort calls."),
		metric.WithUnit("{call}")); err != nil {
		return nil, err
	}
	if o.duration, err = m.Float64Histogram("sorts.duration",
		metric.WithDescription("Duration of sort calls."),
		metric.WithUnit("s")); err != nil {
		return nil, err
	}
	if o.elements, err = m.Int64Counter("sorts.elements",
		metric.WithDescription("Number of elements sorted."),
		metric.WithUnit("{element}")); err != nil {
		return nil, err
	}
	if o.merges, err = m.Int64Counter("sorts.merges",
		metric.WithDescription("Number of run merges performed."),
		metric.WithUnit("{merge}")); err != nil {
		return nil, err
	}
	return o, nil
}

func (o *Observer) Enabled(l probe.Level) bool { return l >= probe.Info }

func (o *Observer) Observe(ev *probe.Event) {
	if ev.Kind != probe.SortEnd {
		return
	}
	ctx := context.Background()
	alg := attribute.String("sort.algorithm", ev.Algorithm)
	outcome := attribute.String("sort.outcome", "ok")
	if ev.Err != nil {
		outcome = attribute.String("sort.outcome", "error")
	}

	_, span := o.tracer.Start(ctx, "sort",
		trace.WithTimestamp(ev.At.Add(-ev.Elapsed)),
		trace.WithAttributes(
			alg,
			attribute.Int("sort.length", ev.Stats.Length),
			attribute.Int("sort.runs", ev.Stats.Runs),
			attribute.Int("sort.merges", ev.Stats.Merges),
			attribute.Int("sort.gallops", ev.Stats.Gallops),
			attribute.Int("sort.partitions", ev.Stats.Partitions),
			attribute.Int("sort.heap_fallbacks", ev.Stats.HeapFallbacks),
		))
	if ev.Err != nil {
		span.RecordError(ev.Err)
		span.SetStatus(codes.Error, ev.Err.Error())
	}
	span.End(trace.WithTimestamp(ev.At))

	algOnly := metric.WithAttributes(alg)
	o.calls.Add(ctx, 1, metric.WithAttributes(alg, outcome))
	o.duration.Record(ctx, ev.Elapsed.Seconds(), algOnly)
	o.elements.Add(ctx, int64(ev.Stats.Length), algOnly)
	o.merges.Add(ctx, int64(ev.Stats.Merges), algOnly)
}
