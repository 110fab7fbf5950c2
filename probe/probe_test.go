// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package probe_test

import (
	"errors"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"golang.org/x/exp/sorts/probe"
	"golang.org/x/exp/sorts/probe/probetest"
)

func TestRecorderNilObserver(t *testing.T) {
	r := probe.NewRecorder(nil, "test")
	if r.Verbose() {
		t.Error("nil observer reported verbose")
	}
	r.Start(0, 10)
	r.Stats.Merges++
	r.Emit(probe.Event{Kind: probe.Merge})
	r.End(nil)
	if r.Stats.Length != 10 || r.Stats.Merges != 1 {
		t.Errorf("stats not kept without observer: %+v", r.Stats)
	}
}

func TestRecorderLevels(t *testing.T) {
	c := probetest.New()
	c.MinLevel = probe.Info
	r := probe.NewRecorder(c, "test")
	if r.Verbose() {
		t.Error("info-level observer reported verbose")
	}
	r.Start(2, 7)
	r.Emit(probe.Event{Kind: probe.Merge})
	r.End(nil)
	want := []probe.Kind{probe.SortStart, probe.SortEnd}
	if diff := cmp.Diff(want, c.Kinds()); diff != "" {
		t.Errorf("kinds mismatch (-want +got):\n%s", diff)
	}
	end, _ := c.Last(probe.SortEnd)
	if end.Algorithm != "test" || end.Stats.Length != 5 || end.Elapsed < 0 {
		t.Errorf("unexpected end event %+v", end)
	}
}

func TestRecorderDebug(t *testing.T) {
	c := probetest.New()
	r := probe.NewRecorder(c, "test")
	if !r.Verbose() {
		t.Fatal("debug-level observer not verbose")
	}
	r.Emit(probe.Event{Kind: probe.Merge, Base: 3, Len1: 4, Len2: 5})
	ev, ok := c.Last(probe.Merge)
	if !ok || ev.Algorithm != "test" || ev.At.IsZero() || ev.Len2 != 5 {
		t.Errorf("unexpected merge event %+v", ev)
	}
}

func TestEventLevelAndFields(t *testing.T) {
	boom := errors.New("boom")
	ev := &probe.Event{Kind: probe.SortEnd, Algorithm: "timsort", Elapsed: time.Second, Err: boom}
	if ev.Level() != probe.Error {
		t.Errorf("Level = %v, want ERROR", ev.Level())
	}
	got := map[string]any{}
	ev.Each(func(k string, v any) { got[k] = v })
	if got["alg"] != "timsort" || got["elapsed"] != time.Second || got["error"] != boom {
		t.Errorf("unexpected fields %v", got)
	}
	if (&probe.Event{Kind: probe.RunFound}).Level() != probe.Debug {
		t.Error("run events should be debug")
	}
}

func TestMulti(t *testing.T) {
	all, info := probetest.New(), probetest.New()
	info.MinLevel = probe.Info
	m := probe.Multi{all, info}
	if !m.Enabled(probe.Debug) {
		t.Error("Multi should be enabled when any member is")
	}
	m.Observe(&probe.Event{Kind: probe.Merge})
	m.Observe(&probe.Event{Kind: probe.SortEnd})
	if len(all.Events()) != 2 || len(info.Events()) != 1 {
		t.Errorf("fan-out mismatch: all=%d info=%d", len(all.Events()), len(info.Events()))
	}
}

func TestDefault(t *testing.T) {
	defer probe.SetDefault(probe.Default())
	c := probetest.New()
	probe.SetDefault(c)
	if probe.Default() != c {
		t.Error("Default did not return the observer set")
	}
	probe.SetDefault(nil)
	if probe.Default() != nil {
		t.Error("Default not cleared")
	}
}

func TestDiscard(t *testing.T) {
	if probe.Discard.Enabled(probe.Error) {
		t.Error("Discard enabled")
	}
	r := probe.NewRecorder(probe.Discard, "test")
	if r.Verbose() {
		t.Error("Discard recorder verbose")
	}
	r.Start(0, 4)
	r.End(nil)
	if r.Stats.Length != 4 {
		t.Errorf("Length = %d", r.Stats.Length)
	}
}
