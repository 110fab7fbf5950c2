// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package index

// Ref is a position within a backing store.
//
// Refs are only meaningful relative to other Refs obtained from the same
// Indexer. They carry no ownership and are never stored beyond one sort call.
type Ref int

// Add returns the reference n positions after r. n may be negative.
func (r Ref) Add(n int) Ref { return r + Ref(n) }

// Sub returns the reference n positions before r.
func (r Ref) Sub(n int) Ref { return r - Ref(n) }

// Dif returns the signed distance from o to r, so that o.Add(r.Dif(o)) == r.
func (r Ref) Dif(o Ref) int { return int(r - o) }

// Less reports whether r is positioned before o.
func (r Ref) Less(o Ref) bool { return r < o }

// Mid returns the reference halfway between r and hi, rounded towards r.
func (r Ref) Mid(hi Ref) Ref { return r + Ref(int(uint(hi-r)>>1)) }
