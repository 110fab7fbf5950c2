// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package introsort implements an in-place, unstable introspective sort,
// and the heap sort it falls back to.
//
// Quicksort partitions around a median-of-three pivot until either the
// partition is shorter than 16 elements, which is finished by insertion
// sort, or the recursion depth budget of 2*(floor(log2 n)+1) runs out,
// in which case the partition is heap sorted. The worst case is therefore
// O(n log n) and no extra memory beyond the recursion is used.
//
// Equal elements may be reordered. A comparator that is not a strict weak
// order yields some permutation of the input; the sort always terminates.
package introsort
