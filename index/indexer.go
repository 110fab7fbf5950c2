// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package index

// Indexer is a view over one backing store of E.
//
// Ranges are half-open. Implementations may assume every Ref passed to them
// lies within the store; the sort algorithms only ever pass such Refs.
type Indexer[E any] interface {
	// Ref0 returns the reference to the first element of the store.
	Ref0() Ref
	// Get returns the element at r.
	Get(r Ref) E
	// Set stores v at r.
	Set(r Ref, v E)
	// Swap exchanges the elements at a and b.
	Swap(a, b Ref)
	// Copy moves n elements starting at src to the block starting at dst.
	// The blocks may overlap; the result is the same as copying through a
	// temporary. Copy is a no-op when src == dst or n <= 0.
	Copy(src, dst Ref, n int)
	// Reverse reverses the elements of [lo, hi) in place.
	Reverse(lo, hi Ref)
	// Export copies len(buf) elements starting at src into buf.
	Export(src Ref, buf []E)
	// Import copies all of buf into the store starting at dst.
	Import(dst Ref, buf []E)
}

var (
	_ Indexer[int] = Slice[int](nil)
	_ Indexer[int] = List[int]{}
)
