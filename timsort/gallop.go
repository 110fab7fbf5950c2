// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package timsort

import (
	"golang.org/x/exp/sorts/index"
	"golang.org/x/exp/sorts/order"
)

// gallopLeft locates the position at which to insert key into the sorted
// range [base, base+n), returning the leftmost such offset k:
//
//	ix[base+k-1] < key <= ix[base+k]
//
// The search starts at base+hint, 0 <= hint < n, and probes outwards in
// exponentially growing steps before finishing with a binary search.
func gallopLeft[E any, I index.Indexer[E], L order.LessThan[E]](key E, ix I, base index.Ref, n, hint int, lt L) int {
	lastOfs, ofs := 0, 1
	if lt.Lt(ix.Get(base.Add(hint)), key) {
		// ix[base+hint] < key: gallop right until ix[base+hint+lastOfs] < key <= ix[base+hint+ofs].
		maxOfs := n - hint
		for ofs < maxOfs && lt.Lt(ix.Get(base.Add(hint+ofs)), key) {
			lastOfs = ofs
			ofs = ofs<<1 + 1
			if ofs <= 0 {
				ofs = maxOfs
			}
		}
		ofs = min(ofs, maxOfs)
		lastOfs += hint
		ofs += hint
	} else {
		// key <= ix[base+hint]: gallop left until ix[base+hint-ofs] < key <= ix[base+hint-lastOfs].
		maxOfs := hint + 1
		for ofs < maxOfs && !lt.Lt(ix.Get(base.Add(hint-ofs)), key) {
			lastOfs = ofs
			ofs = ofs<<1 + 1
			if ofs <= 0 {
				ofs = maxOfs
			}
		}
		ofs = min(ofs, maxOfs)
		lastOfs, ofs = hint-ofs, hint-lastOfs
	}

	// ix[base+lastOfs] < key <= ix[base+ofs].
	lastOfs++
	for lastOfs < ofs {
		m := lastOfs + int(uint(ofs-lastOfs)>>1)
		if lt.Lt(ix.Get(base.Add(m)), key) {
			lastOfs = m + 1
		} else {
			ofs = m
		}
	}
	return ofs
}

// gallopRight is like gallopLeft, except that when the range holds elements
// equal to key it returns the offset just past the rightmost of them:
//
//	ix[base+k-1] <= key < ix[base+k]
func gallopRight[E any, I index.Indexer[E], L order.LessThan[E]](key E, ix I, base index.Ref, n, hint int, lt L) int {
	lastOfs, ofs := 0, 1
	if lt.Lt(key, ix.Get(base.Add(hint))) {
		// key < ix[base+hint]: gallop left until ix[base+hint-ofs] <= key < ix[base+hint-lastOfs].
		maxOfs := hint + 1
		for ofs < maxOfs && lt.Lt(key, ix.Get(base.Add(hint-ofs))) {
			lastOfs = ofs
			ofs = ofs<<1 + 1
			if ofs <= 0 {
				ofs = maxOfs
			}
		}
		ofs = min(ofs, maxOfs)
		lastOfs, ofs = hint-ofs, hint-lastOfs
	} else {
		// ix[base+hint] <= key: gallop right until ix[base+hint+lastOfs] <= key < ix[base+hint+ofs].
		maxOfs := n - hint
		for ofs < maxOfs && !lt.Lt(key, ix.Get(base.Add(hint+ofs))) {
			lastOfs = ofs
			ofs = ofs<<1 + 1
			if ofs <= 0 {
				ofs = maxOfs
			}
		}
		ofs = min(ofs, maxOfs)
		lastOfs += hint
		ofs += hint
	}

	// ix[base+lastOfs] <= key < ix[base+ofs].
	lastOfs++
	for lastOfs < ofs {
		m := lastOfs + int(uint(ofs-lastOfs)>>1)
		if lt.Lt(key, ix.Get(base.Add(m))) {
			ofs = m
		} else {
			lastOfs = m + 1
		}
	}
	return ofs
}
