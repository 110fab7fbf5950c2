// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package logfmt

import (
	"bytes"
	"errors"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"golang.org/x/exp/sorts/probe"
)

func TestPrinter(t *testing.T) {
	at := time.Date(2026, 10, 17, 9, 30, 0, 0, time.UTC)
	for _, test := range []struct {
		name string
		opts *Options
		ev   probe.Event
		want string
	}{{
		name: "start",
		ev:   probe.Event{Kind: probe.SortStart, Algorithm: "timsort", At: at, Lo: 0, Hi: 100},
		want: `time="2026/10/17 09:30:00" level=INFO msg="sort start" alg=timsort lo=0 hi=100` + "\n",
	}, {
		name: "merge",
		opts: &Options{MinLevel: probe.Debug, SuppressTime: true},
		ev:   probe.Event{Kind: probe.Merge, Algorithm: "timsort", At: at, Base: 64, Len1: 32, Len2: 40, MinGallop: 5},
		want: `level=DEBUG msg=merge alg=timsort base=64 len1=32 len2=40 minGallop=5` + "\n",
	}, {
		name: "error",
		opts: &Options{SuppressTime: true},
		ev: probe.Event{
			Kind:      probe.SortEnd,
			Algorithm: "timsort",
			Elapsed:   1500 * time.Microsecond,
			Stats:     probe.Stats{Length: 100, Runs: 4, Merges: 3},
			Err:       errors.New("timsort: comparison method violates its contract"),
		},
		want: `level=ERROR msg="sort end" alg=timsort length=100 elapsed=1.5ms runs=4 merges=3 gallops=0 maxStack=0 partitions=0 heapFallbacks=0 scratch=0 error="timsort: comparison method violates its contract"` + "\n",
	}} {
		t.Run(test.name, func(t *testing.T) {
			var buf bytes.Buffer
			p := NewPrinter(&buf, test.opts)
			if !p.Enabled(test.ev.Level()) {
				t.Fatalf("level %v not enabled", test.ev.Level())
			}
			p.Observe(&test.ev)
			if diff := cmp.Diff(test.want, buf.String()); diff != "" {
				t.Errorf("mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestDefaultLevel(t *testing.T) {
	p := NewPrinter(&bytes.Buffer{}, nil)
	if p.Enabled(probe.Debug) {
		t.Error("debug enabled by default")
	}
	if !p.Enabled(probe.Error) {
		t.Error("error disabled by default")
	}
}
