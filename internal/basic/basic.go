// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package basic holds the small-range sorting kernels shared by the TimSort
// and IntroSort implementations.
package basic

import (
	"golang.org/x/exp/sorts/index"
	"golang.org/x/exp/sorts/order"
)

// Kernel binds an Indexer and an order for the duration of one sort call.
// Its methods are the building blocks both algorithms are assembled from.
type Kernel[E any, I index.Indexer[E], L order.LessThan[E]] struct {
	Ix I
	Lt L
}

// Sort2 orders the elements at a and b, swapping only if the first is
// strictly greater, so equal elements keep their positions.
func (k Kernel[E, I, L]) Sort2(a, b index.Ref) {
	if k.Lt.Lt(k.Ix.Get(b), k.Ix.Get(a)) {
		k.Ix.Swap(a, b)
	}
}

// Sort3 orders the elements at a, b and c with three compare-exchanges.
// The network only exchanges neighbours in a-b-c order, so it is stable when
// a, b and c are consecutive.
func (k Kernel[E, I, L]) Sort3(a, b, c index.Ref) {
	k.Sort2(a, b)
	k.Sort2(b, c)
	k.Sort2(a, b)
}

// InsertionSort sorts [lo, hi) by linear insertion.
func (k Kernel[E, I, L]) InsertionSort(lo, hi index.Ref) {
	ix, lt := k.Ix, k.Lt
	for i := lo.Add(1); i < hi; i++ {
		t := ix.Get(i)
		j := i
		for ; j > lo && lt.Lt(t, ix.Get(j-1)); j-- {
			ix.Set(j, ix.Get(j-1))
		}
		if j != i {
			ix.Set(j, t)
		}
	}
}

// BinarySort sorts [lo, hi) by binary insertion, assuming [lo, start) is
// already sorted. It makes O(n log n) comparisons and O(n^2) moves, and is
// stable: an element is inserted after every element equal to it.
func (k Kernel[E, I, L]) BinarySort(lo, hi, start index.Ref) {
	ix, lt := k.Ix, k.Lt
	if start == lo {
		start++
	}
	for ; start < hi; start++ {
		pivot := ix.Get(start)

		// pivot >= all in [lo, left) and pivot < all in [right, start).
		left, right := lo, start
		for left < right {
			mid := left.Mid(right)
			if lt.Lt(pivot, ix.Get(mid)) {
				right = mid
			} else {
				left = mid + 1
			}
		}

		switch n := start.Dif(left); n {
		case 0:
			continue
		case 1:
			ix.Set(left+1, ix.Get(left))
		case 2:
			ix.Set(left+2, ix.Get(left+1))
			ix.Set(left+1, ix.Get(left))
		default:
			ix.Copy(left, left+1, n)
		}
		ix.Set(left, pivot)
	}
}

// CountRunAndMakeAscending returns the length of the run starting at lo,
// which must be below hi, reversing it in place if it is descending.
//
// A run is either non-decreasing or strictly decreasing. Descending runs must
// be strict so that reversing one cannot reorder equal elements.
func (k Kernel[E, I, L]) CountRunAndMakeAscending(lo, hi index.Ref) int {
	ix, lt := k.Ix, k.Lt
	runHi := lo + 1
	if runHi == hi {
		return 1
	}

	if lt.Lt(ix.Get(runHi), ix.Get(lo)) {
		runHi++
		for runHi < hi && lt.Lt(ix.Get(runHi), ix.Get(runHi-1)) {
			runHi++
		}
		ix.Reverse(lo, runHi)
	} else {
		runHi++
		for runHi < hi && !lt.Lt(ix.Get(runHi), ix.Get(runHi-1)) {
			runHi++
		}
	}
	return runHi.Dif(lo)
}
