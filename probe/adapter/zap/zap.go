// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package zap provides a probe.Observer that logs events to a zap.Logger.
package zap

import (
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"golang.org/x/exp/sorts/probe"
)

type observer struct {
	l *zap.Logger
}

var _ probe.Observer = (*observer)(nil)

// NewObserver returns an Observer that logs to l. Which events are built is
// decided by l's core.
func NewObserver(l *zap.Logger) probe.Observer {
	return &observer{l: l}
}

func (o *observer) Enabled(l probe.Level) bool {
	return o.l.Core().Enabled(convertLevel(l))
}

func (o *observer) Observe(ev *probe.Event) {
	ce := o.l.Check(convertLevel(ev.Level()), ev.Message())
	if ce == nil {
		return
	}
	ce.Time = ev.At
	fields := make([]zap.Field, 0, 12)
	ev.Each(func(key string, value any) {
		fields = append(fields, newField(key, value))
	})
	ce.Write(fields...)
}

func newField(key string, value any) zap.Field {
	switch v := value.(type) {
	case int:
		return zap.Int(key, v)
	case string:
		return zap.String(key, v)
	case time.Duration:
		return zap.Duration(key, v)
	case error:
		return zap.NamedError(key, v)
	}
	return zap.Any(key, value)
}

func convertLevel(l probe.Level) zapcore.Level {
	switch {
	case l < probe.Info:
		return zapcore.DebugLevel
	case l < probe.Error:
		return zapcore.InfoLevel
	}
	return zapcore.ErrorLevel
}
