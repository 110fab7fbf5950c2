// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package index

// Slice is the contiguous Indexer. Refs are offsets from the first element
// of the slice.
//
// Slice relies on Go's slice bounds checks; an out-of-range Ref panics
// rather than touching memory outside the slice.
type Slice[E any] []E

func (s Slice[E]) Ref0() Ref { return 0 }

func (s Slice[E]) Get(r Ref) E { return s[r] }

func (s Slice[E]) Set(r Ref, v E) { s[r] = v }

func (s Slice[E]) Swap(a, b Ref) { s[a], s[b] = s[b], s[a] }

// Copy uses the built-in copy, which has memmove semantics for overlapping
// blocks of the same slice.
func (s Slice[E]) Copy(src, dst Ref, n int) {
	if src == dst || n <= 0 {
		return
	}
	copy(s[dst:dst.Add(n)], s[src:src.Add(n)])
}

func (s Slice[E]) Reverse(lo, hi Ref) {
	for i, j := int(lo), int(hi)-1; i < j; i, j = i+1, j-1 {
		s[i], s[j] = s[j], s[i]
	}
}

func (s Slice[E]) Export(src Ref, buf []E) { copy(buf, s[src:src.Add(len(buf))]) }

func (s Slice[E]) Import(dst Ref, buf []E) { copy(s[dst:dst.Add(len(buf))], buf) }
