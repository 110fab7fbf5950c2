// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package introsort

import (
	"math/bits"

	"golang.org/x/exp/sorts/index"
	"golang.org/x/exp/sorts/internal/basic"
	"golang.org/x/exp/sorts/order"
	"golang.org/x/exp/sorts/probe"
)

// Partitions shorter than this are insertion sorted.
const minQuickSort = 16

type sorter[E any, I index.Indexer[E], L order.LessThan[E]] struct {
	basic.Kernel[E, I, L]
	rec *probe.Recorder
}

// depthBudget returns the number of partitioning levels allowed for n
// elements before falling back to heap sort.
func depthBudget(n int) int {
	return bits.Len(uint(n)) << 1
}

func (s *sorter[E, I, L]) introSort(lo, hi index.Ref, depth int) {
	switch n := hi.Dif(lo); {
	case n < 2:
		return
	case n == 2:
		s.Sort2(lo, lo+1)
		return
	case n == 3:
		s.Sort3(lo, lo+1, lo+2)
		return
	case n < minQuickSort:
		s.InsertionSort(lo, hi)
		return
	}

	if depth <= 0 {
		s.rec.Stats.HeapFallbacks++
		if s.rec.Verbose() {
			s.rec.Emit(probe.Event{Kind: probe.HeapFallback, Lo: int(lo), Hi: int(hi), Depth: depth})
		}
		s.heapSort(lo, hi)
		return
	}

	mid := s.partition(lo, hi)
	s.introSort(lo, mid, depth-1)
	s.introSort(mid+1, hi, depth-1)
}

// partition places the median of the first, middle and last elements of
// [lo, hi) at its final position p and returns p, with every element of
// [lo, p) less than it and every element of (p, hi) not less than it.
func (s *sorter[E, I, L]) partition(lo, hi index.Ref) index.Ref {
	ix, lt := s.Ix, s.Lt
	s.rec.Stats.Partitions++

	mid := lo.Mid(hi)
	s.Sort3(lo, mid, hi-1)

	// The last element is already not less than the pivot; park the pivot
	// just before it and scan the rest.
	hi -= 2
	ix.Swap(mid, hi)
	p := ix.Get(hi)
	for i := lo; i < hi; i++ {
		if lt.Lt(ix.Get(i), p) {
			ix.Swap(i, lo)
			lo++
		}
	}
	ix.Swap(lo, hi)
	return lo
}

// heapSort sorts [lo, hi) with a max-heap rooted at lo.
func (s *sorter[E, I, L]) heapSort(lo, hi index.Ref) {
	n := hi.Dif(lo)
	for pos := n/2 - 1; pos >= 0; pos-- {
		s.heapDown(lo, pos, n)
	}
	for end := n - 1; end > 0; end-- {
		s.Ix.Swap(lo, lo.Add(end))
		s.heapDown(lo, 0, end)
	}
}

// heapDown sifts the element at pos down the heap of n elements that starts
// at first.
func (s *sorter[E, I, L]) heapDown(first index.Ref, pos, n int) {
	ix, lt := s.Ix, s.Lt
	curr := ix.Get(first.Add(pos))
	kid, last := pos*2+1, n-1
	for kid < last {
		if lt.Lt(ix.Get(first.Add(kid)), ix.Get(first.Add(kid+1))) {
			kid++
		}
		if !lt.Lt(curr, ix.Get(first.Add(kid))) {
			break
		}
		ix.Set(first.Add(pos), ix.Get(first.Add(kid)))
		pos, kid = kid, kid*2+1
	}
	if kid == last && lt.Lt(curr, ix.Get(first.Add(kid))) {
		ix.Set(first.Add(pos), ix.Get(first.Add(kid)))
		pos = kid
	}
	ix.Set(first.Add(pos), curr)
}
