// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package probe

import "sync/atomic"

// Observer receives the events of sort calls.
//
// Observe is called synchronously from the sorting goroutine and must return
// quickly. The Event is only valid for the duration of the call. An Observer
// shared between goroutines must be safe for concurrent use.
type Observer interface {
	// Enabled reports whether events of level l are wanted.
	Enabled(l Level) bool
	// Observe records ev.
	Observe(ev *Event)
}

// Multi fans events out to several observers.
type Multi []Observer

func (m Multi) Enabled(l Level) bool {
	for _, o := range m {
		if o.Enabled(l) {
			return true
		}
	}
	return false
}

func (m Multi) Observe(ev *Event) {
	l := ev.Level()
	for _, o := range m {
		if o.Enabled(l) {
			o.Observe(ev)
		}
	}
}

// Discard is an Observer that wants nothing.
var Discard Observer = discard{}

type discard struct{}

func (discard) Enabled(Level) bool { return false }
func (discard) Observe(*Event)     {}

type holder struct{ o Observer }

var defaultObserver atomic.Pointer[holder]

// SetDefault sets the observer used by the package-level sort functions.
// A nil o disables observation, which is the initial state.
func SetDefault(o Observer) {
	defaultObserver.Store(&holder{o: o})
}

// Default returns the observer set by SetDefault, or nil.
func Default() Observer {
	if h := defaultObserver.Load(); h != nil {
		return h.o
	}
	return nil
}
