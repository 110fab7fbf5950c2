// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package probe reports what a sort call did to an Observer.
//
// The sort algorithms never log. Instead they build an Event at a handful of
// points (start, each natural run, each merge, a heap-sort fallback and the
// end of the call) and hand it to an Observer, which decides how to record
// it. Adapters for common logging, metrics and tracing libraries live under
// probe/adapter.
//
// When no Observer is configured nothing is built and no clock is read.
// Debug events are only built when the Observer reports Debug as enabled.
package probe
