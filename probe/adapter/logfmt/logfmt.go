// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package logfmt provides a probe.Observer that writes events to an
// io.Writer in logfmt format, one event per line.
package logfmt

import (
	"io"
	"sync"

	"github.com/go-logfmt/logfmt"
	"golang.org/x/exp/sorts/probe"
)

const TimeFormat = "2006/01/02 15:04:05"

// Options configures a Printer.
type Options struct {
	// MinLevel is the lowest level printed. The zero value prints Info and
	// Error events.
	MinLevel probe.Level

	// SuppressTime omits the time key.
	SuppressTime bool
}

// Printer is a probe.Observer that prints events. It is safe for concurrent
// use.
type Printer struct {
	opts Options

	mu  sync.Mutex
	enc *logfmt.Encoder
}

var _ probe.Observer = (*Printer)(nil)

// NewPrinter returns a Printer writing to w. A nil opts is the same as the
// zero Options.
func NewPrinter(w io.Writer, opts *Options) *Printer {
	p := &Printer{enc: logfmt.NewEncoder(w)}
	if opts != nil {
		p.opts = *opts
	}
	return p
}

func (p *Printer) Enabled(l probe.Level) bool { return l >= p.opts.MinLevel }

func (p *Printer) Observe(ev *probe.Event) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.opts.SuppressTime && !ev.At.IsZero() {
		p.enc.EncodeKeyval("time", ev.At.Format(TimeFormat))
	}
	p.enc.EncodeKeyval("level", ev.Level())
	p.enc.EncodeKeyval("msg", ev.Message())
	ev.Each(func(key string, value any) {
		p.enc.EncodeKeyval(key, value)
	})
	p.enc.EndRecord()
}
