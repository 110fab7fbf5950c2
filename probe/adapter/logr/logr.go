// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package logr provides a probe.Observer that logs events to a logr.Logger.
//
// Info events are logged at V(0) and debug events at V(DebugVerbosity).
// Events that carry an error are logged with Logger.Error.
package logr

import (
	"github.com/go-logr/logr"
	"golang.org/x/exp/sorts/probe"
)

// DebugVerbosity is the logr verbosity used for debug events.
const DebugVerbosity = 1

type observer struct {
	l logr.Logger
}

var _ probe.Observer = (*observer)(nil)

func NewObserver(l logr.Logger) probe.Observer {
	return &observer{l: l}
}

func (o *observer) Enabled(l probe.Level) bool {
	switch {
	case l >= probe.Error:
		return o.l.GetSink() != nil
	case l >= probe.Info:
		return o.l.Enabled()
	}
	return o.l.V(DebugVerbosity).Enabled()
}

func (o *observer) Observe(ev *probe.Event) {
	kv := make([]any, 0, 24)
	ev.Each(func(key string, value any) {
		if key != "error" {
			kv = append(kv, key, value)
		}
	})
	switch {
	case ev.Err != nil:
		o.l.Error(ev.Err, ev.Message(), kv...)
	case ev.Level() < probe.Info:
		o.l.V(DebugVerbosity).Info(ev.Message(), kv...)
	default:
		o.l.Info(ev.Message(), kv...)
	}
}
