// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package slog provides a probe.Observer that writes events to a
// slog.Handler.
package slog

import (
	"context"

	"golang.org/x/exp/slog"
	"golang.org/x/exp/sorts/probe"
)

type observer struct {
	h slog.Handler
}

var _ probe.Observer = (*observer)(nil)

// NewObserver returns an Observer that turns each event into a slog.Record
// and passes it to h. Probe levels map directly onto slog levels.
func NewObserver(h slog.Handler) probe.Observer {
	return &observer{h: h}
}

func (o *observer) Enabled(l probe.Level) bool {
	return o.h.Enabled(context.Background(), slog.Level(l))
}

func (o *observer) Observe(ev *probe.Event) {
	r := slog.NewRecord(ev.At, slog.Level(ev.Level()), ev.Message(), 0)
	ev.Each(func(key string, value any) {
		r.AddAttrs(slog.Any(key, value))
	})
	// A handler error has nowhere to go from inside a sort.
	_ = o.h.Handle(context.Background(), r)
}
