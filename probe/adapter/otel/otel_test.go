// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package otel

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
	"golang.org/x/exp/sorts/order"
	"golang.org/x/exp/sorts/probe"
	"golang.org/x/exp/sorts/timsort"
)

func setup(t *testing.T) (*Observer, *tracetest.SpanRecorder, *sdkmetric.ManualReader) {
	t.Helper()
	sr := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(sr))
	reader := sdkmetric.NewManualReader()
	mp := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))
	o, err := NewObserver(tp, mp)
	require.NoError(t, err)
	return o, sr, reader
}

func sumOf(t *testing.T, reader *sdkmetric.ManualReader, name string) int64 {
	t.Helper()
	var rm metricdata.ResourceMetrics
	require.NoError(t, reader.Collect(context.Background(), &rm))
	var total int64
	for _, sm := range rm.ScopeMetrics {
		for _, m := range sm.Metrics {
			if m.Name != name {
				continue
			}
			sum, ok := m.Data.(metricdata.Sum[int64])
			require.True(t, ok, "%s is %T", name, m.Data)
			for _, dp := range sum.DataPoints {
				total += dp.Value
			}
		}
	}
	return total
}

func TestSortSpan(t *testing.T) {
	o, sr, reader := setup(t)

	x := make([]int, 200)
	for i := range x {
		x[i] = (i * 7) % 200
	}
	s := timsort.Sorter[int, order.Ordered[int]]{Observer: o}
	require.NoError(t, s.Sort(x))

	spans := sr.Ended()
	require.Len(t, spans, 1)
	span := spans[0]
	assert.Equal(t, "sort", span.Name())
	assert.False(t, span.EndTime().Before(span.StartTime()))
	attrs := attribute.NewSet(span.Attributes()...)
	v, ok := attrs.Value("sort.algorithm")
	require.True(t, ok)
	assert.Equal(t, "timsort", v.AsString())
	v, _ = attrs.Value("sort.length")
	assert.EqualValues(t, 200, v.AsInt64())

	assert.EqualValues(t, 1, sumOf(t, reader, "sorts.calls"))
	assert.EqualValues(t, 200, sumOf(t, reader, "sorts.elements"))
	assert.Positive(t, sumOf(t, reader, "sorts.merges"))
}

func TestErrorAndBackdating(t *testing.T) {
	o, sr, _ := setup(t)
	end := time.Date(2026, 1, 1, 0, 0, 1, 0, time.UTC)
	o.Observe(&probe.Event{Kind: probe.SortStart, Algorithm: "timsort", At: end})
	o.Observe(&probe.Event{
		Kind:      probe.SortEnd,
		Algorithm: "timsort",
		At:        end,
		Elapsed:   time.Second,
		Err:       errors.New("contract"),
	})

	spans := sr.Ended()
	require.Len(t, spans, 1)
	assert.Equal(t, end.Add(-time.Second), spans[0].StartTime())
	assert.Equal(t, end, spans[0].EndTime())
	assert.Equal(t, codes.Error, spans[0].Status().Code)
	require.Len(t, spans[0].Events(), 1)
	assert.Equal(t, "exception", spans[0].Events()[0].Name)
}
