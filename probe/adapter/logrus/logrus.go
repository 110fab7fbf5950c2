// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package logrus provides a probe.Observer that logs events to a
// logrus.Logger.
package logrus

import (
	"github.com/sirupsen/logrus"
	"golang.org/x/exp/sorts/probe"
)

type observer struct {
	l *logrus.Logger
}

var _ probe.Observer = (*observer)(nil)

// NewObserver returns an Observer that logs to l. If l is nil, the standard
// logrus logger is used.
func NewObserver(l *logrus.Logger) probe.Observer {
	if l == nil {
		l = logrus.StandardLogger()
	}
	return &observer{l: l}
}

func (o *observer) Enabled(l probe.Level) bool {
	return o.l.IsLevelEnabled(convertLevel(l))
}

func (o *observer) Observe(ev *probe.Event) {
	fields := make(logrus.Fields, 12)
	ev.Each(func(key string, value any) {
		if key == "error" {
			key = logrus.ErrorKey
		}
		fields[key] = value
	})
	o.l.WithFields(fields).WithTime(ev.At).Log(convertLevel(ev.Level()), ev.Message())
}

func convertLevel(l probe.Level) logrus.Level {
	switch {
	case l < probe.Info:
		return logrus.DebugLevel
	case l < probe.Error:
		return logrus.InfoLevel
	}
	return logrus.ErrorLevel
}
