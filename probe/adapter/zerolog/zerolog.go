// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package zerolog provides a probe.Observer that logs events to a
// zerolog.Logger.
package zerolog

import (
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/exp/sorts/probe"
)

type observer struct {
	l zerolog.Logger
}

var _ probe.Observer = (*observer)(nil)

// NewObserver returns an Observer that logs to l. The event time is written
// under zerolog.TimestampFieldName.
func NewObserver(l zerolog.Logger) probe.Observer {
	return &observer{l: l}
}

func (o *observer) Enabled(l probe.Level) bool {
	zl := convertLevel(l)
	return zl >= o.l.GetLevel() && zl >= zerolog.GlobalLevel()
}

func (o *observer) Observe(ev *probe.Event) {
	e := o.l.WithLevel(convertLevel(ev.Level()))
	if e == nil {
		return
	}
	e = e.Time(zerolog.TimestampFieldName, ev.At)
	ev.Each(func(key string, value any) {
		switch v := value.(type) {
		case int:
			e = e.Int(key, v)
		case string:
			e = e.Str(key, v)
		case time.Duration:
			e = e.Dur(key, v)
		case error:
			e = e.AnErr(key, v)
		default:
			e = e.Interface(key, v)
		}
	})
	e.Msg(ev.Message())
}

func convertLevel(l probe.Level) zerolog.Level {
	switch {
	case l < probe.Info:
		return zerolog.DebugLevel
	case l < probe.Error:
		return zerolog.InfoLevel
	}
	return zerolog.ErrorLevel
}
