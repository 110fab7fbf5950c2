// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package probetest provides an Observer that keeps events in memory.
package probetest

import (
	"sync"

	"golang.org/x/exp/sorts/probe"
)

// Capture is a probe.Observer that records copies of the events it is given.
type Capture struct {
	MinLevel probe.Level

	mu  sync.Mutex
	got []probe.Event
}

var _ probe.Observer = (*Capture)(nil)

// New returns a Capture that accepts every level.
func New() *Capture {
	return &Capture{MinLevel: probe.Debug}
}

func (c *Capture) Enabled(l probe.Level) bool { return l >= c.MinLevel }

func (c *Capture) Observe(ev *probe.Event) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.got = append(c.got, *ev)
}

// Events returns a copy of the events captured so far.
func (c *Capture) Events() []probe.Event {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]probe.Event(nil), c.got...)
}

// Kinds returns the kinds of the captured events, in order.
func (c *Capture) Kinds() []probe.Kind {
	c.mu.Lock()
	defer c.mu.Unlock()
	kinds := make([]probe.Kind, len(c.got))
	for i := range c.got {
		kinds[i] = c.got[i].Kind
	}
	return kinds
}

// Count returns the number of captured events of kind k.
func (c *Capture) Count(k probe.Kind) int {
	c.mu.Lock()
	defer c.mu.Unlock()
	n := 0
	for i := range c.got {
		if c.got[i].Kind == k {
			n++
		}
	}
	return n
}

// Last returns the most recent event of kind k.
func (c *Capture) Last(k probe.Kind) (probe.Event, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i := len(c.got) - 1; i >= 0; i-- {
		if c.got[i].Kind == k {
			return c.got[i], true
		}
	}
	return probe.Event{}, false
}

func (c *Capture) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.got = c.got[:0]
}
