// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package probe

import (
	"fmt"
	"time"
)

// Kind identifies the point in a sort call that produced an Event.
type Kind int

const (
	unknownKind Kind = iota

	SortStart
	RunFound
	Merge
	HeapFallback
	SortEnd
)

func (k Kind) String() string {
	switch k {
	case SortStart:
		return "sort start"
	case RunFound:
		return "run found"
	case Merge:
		return "merge"
	case HeapFallback:
		return "heap fallback"
	case SortEnd:
		return "sort end"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Level is the severity of an Event. The values match the slog levels.
type Level int

const (
	Debug Level = -4
	Info  Level = 0
	Error Level = 8
)

func (l Level) String() string {
	switch l {
	case Debug:
		return "DEBUG"
	case Info:
		return "INFO"
	case Error:
		return "ERROR"
	}
	return fmt.Sprintf("Level(%d)", int(l))
}

// Stats summarises the work done by one sort call.
type Stats struct {
	Length        int // elements in the sorted range
	Runs          int // runs pushed on the merge stack
	Merges        int // merges performed
	Gallops       int // switches into galloping mode
	MaxStack      int // deepest pending-run stack
	Partitions    int // quicksort partitions
	HeapFallbacks int // depth budget exhaustions
	Scratch       int // largest scratch buffer held, in elements
}

// Event describes one point of a sort call. Fields that do not apply to the
// Kind are zero.
type Event struct {
	Kind      Kind
	Algorithm string
	At        time.Time

	Lo, Hi    int // range being sorted
	Base      int // first element of a run or merge
	Len1      int // run length, or length of the left merge run
	Len2      int // length of the right merge run
	MinGallop int
	Depth     int // remaining depth budget

	Elapsed time.Duration // SortEnd only
	Stats   Stats         // SortEnd only
	Err     error         // SortEnd only
}

// Level returns the severity of ev.
func (ev *Event) Level() Level {
	switch {
	case ev.Err != nil:
		return Error
	case ev.Kind == SortStart || ev.Kind == SortEnd:
		return Info
	}
	return Debug
}

// Message is the short human readable text for ev.
func (ev *Event) Message() string { return ev.Kind.String() }

// Each calls f for every field relevant to the Kind of ev, in a fixed order.
// Values are int, time.Duration, string or error.
func (ev *Event) Each(f func(key string, value any)) {
	f("alg", ev.Algorithm)
	switch ev.Kind {
	case SortStart:
		f("lo", ev.Lo)
		f("hi", ev.Hi)
	case RunFound:
		f("base", ev.Base)
		f("len", ev.Len1)
	case Merge:
		f("base", ev.Base)
		f("len1", ev.Len1)
		f("len2", ev.Len2)
		f("minGallop", ev.MinGallop)
	case HeapFallback:
		f("lo", ev.Lo)
		f("hi", ev.Hi)
		f("depth", ev.Depth)
	case SortEnd:
		f("length", ev.Stats.Length)
		f("elapsed", ev.Elapsed)
		f("runs", ev.Stats.Runs)
		f("merges", ev.Stats.Merges)
		f("gallops", ev.Stats.Gallops)
		f("maxStack", ev.Stats.MaxStack)
		f("partitions", ev.Stats.Partitions)
		f("heapFallbacks", ev.Stats.HeapFallbacks)
		f("scratch", ev.Stats.Scratch)
		if ev.Err != nil {
			f("error", ev.Err)
		}
	}
}
