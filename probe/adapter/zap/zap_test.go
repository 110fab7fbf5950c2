// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package zap

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	zapobserver "go.uber.org/zap/zaptest/observer"
	"golang.org/x/exp/sorts/introsort"
	"golang.org/x/exp/sorts/order"
	"golang.org/x/exp/sorts/probe"
)

func TestLevels(t *testing.T) {
	core, logs := zapobserver.New(zapcore.InfoLevel)
	o := NewObserver(zap.New(core))
	assert.False(t, o.Enabled(probe.Debug))
	assert.True(t, o.Enabled(probe.Info))

	introsort.Sorter[int, order.Ordered[int]]{Observer: o}.Sort(make([]int, 1000))

	entries := logs.All()
	require.Len(t, entries, 2)
	assert.Equal(t, "sort start", entries[0].Message)
	end := entries[1]
	assert.Equal(t, "sort end", end.Message)
	assert.Equal(t, zapcore.InfoLevel, end.Level)
	ctx := end.ContextMap()
	assert.Equal(t, "introsort", ctx["alg"])
	assert.EqualValues(t, 1000, ctx["length"])
	assert.EqualValues(t, 1, ctx["heapFallbacks"])
}

func TestDebugAndError(t *testing.T) {
	core, logs := zapobserver.New(zapcore.DebugLevel)
	o := NewObserver(zap.New(core))

	at := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	o.Observe(&probe.Event{Kind: probe.Merge, Algorithm: "timsort", At: at, Base: 4, Len1: 10, Len2: 20, MinGallop: 7})
	o.Observe(&probe.Event{Kind: probe.SortEnd, Algorithm: "timsort", At: at, Elapsed: time.Millisecond, Err: errors.New("boom")})

	entries := logs.All()
	require.Len(t, entries, 2)
	assert.Equal(t, zapcore.DebugLevel, entries[0].Level)
	assert.Equal(t, at, entries[0].Time)
	assert.EqualValues(t, 20, entries[0].ContextMap()["len2"])

	assert.Equal(t, zapcore.ErrorLevel, entries[1].Level)
	ctx := entries[1].ContextMap()
	assert.Equal(t, "boom", ctx["error"])
	assert.Equal(t, time.Millisecond, ctx["elapsed"])
}
