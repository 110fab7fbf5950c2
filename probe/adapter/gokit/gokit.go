// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package gokit provides a probe.Observer that logs events to a go-kit
// logger.
package gokit

import (
	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"golang.org/x/exp/sorts/probe"
)

// Options configures an Observer.
type Options struct {
	// MinLevel is the lowest level logged. The zero value logs Info and
	// Error events.
	MinLevel probe.Level
}

type observer struct {
	l    log.Logger
	opts Options
}

var _ probe.Observer = (*observer)(nil)

// NewObserver returns an Observer that logs to l, tagging every record with
// a go-kit level. A nil opts is the same as the zero Options.
func NewObserver(l log.Logger, opts *Options) probe.Observer {
	o := &observer{l: l}
	if opts != nil {
		o.opts = *opts
	}
	return o
}

func (o *observer) Enabled(l probe.Level) bool { return l >= o.opts.MinLevel }

func (o *observer) Observe(ev *probe.Event) {
	kv := make([]any, 0, 28)
	kv = append(kv, "ts", ev.At, "msg", ev.Message())
	ev.Each(func(key string, value any) {
		kv = append(kv, key, value)
	})
	// go-kit reports logging errors to the caller, which cannot act on them here.
	_ = leveled(o.l, ev.Level()).Log(kv...)
}

func leveled(l log.Logger, lvl probe.Level) log.Logger {
	switch {
	case lvl < probe.Info:
		return level.Debug(l)
	case lvl < probe.Error:
		return level.Info(l)
	}
	return level.Error(l)
}
