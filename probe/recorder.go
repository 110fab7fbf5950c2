// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package probe

import "time"

// Recorder is the sort-side half of an Observer: it accumulates Stats for one
// call and builds events only when someone is listening.
//
// The zero Recorder, and one built from a nil Observer, records Stats and
// emits nothing.
type Recorder struct {
	Stats Stats

	obs   Observer
	alg   string
	debug bool
	start time.Time
}

// NewRecorder returns a Recorder reporting to o on behalf of algorithm alg.
func NewRecorder(o Observer, alg string) Recorder {
	if o == Discard {
		o = nil
	}
	r := Recorder{obs: o, alg: alg}
	if o != nil {
		r.debug = o.Enabled(Debug)
	}
	return r
}

// Verbose reports whether debug events will be delivered. Callers check it
// before filling in an Event so that a disabled observer costs one branch.
func (r *Recorder) Verbose() bool { return r.debug }

// Emit delivers a debug event. It is a no-op unless Verbose.
func (r *Recorder) Emit(ev Event) {
	if !r.debug {
		return
	}
	ev.Algorithm = r.alg
	ev.At = time.Now()
	r.obs.Observe(&ev)
}

// Start marks the beginning of a sort over [lo, hi).
func (r *Recorder) Start(lo, hi int) {
	r.Stats.Length = hi - lo
	if r.obs == nil {
		return
	}
	r.start = time.Now()
	if r.obs.Enabled(Info) {
		r.obs.Observe(&Event{Kind: SortStart, Algorithm: r.alg, At: r.start, Lo: lo, Hi: hi})
	}
}

// End marks the end of the sort call with its outcome.
func (r *Recorder) End(err error) {
	if r.obs == nil {
		return
	}
	ev := Event{Kind: SortEnd, Algorithm: r.alg, At: time.Now(), Stats: r.Stats, Err: err}
	ev.Elapsed = ev.At.Sub(r.start)
	if r.obs.Enabled(ev.Level()) {
		r.obs.Observe(&ev)
	}
}
