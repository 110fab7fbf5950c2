// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package introsort

import (
	"golang.org/x/exp/constraints"
	"golang.org/x/exp/sorts/index"
	"golang.org/x/exp/sorts/internal/basic"
	"golang.org/x/exp/sorts/order"
	"golang.org/x/exp/sorts/probe"
)

// Names identifying the algorithms in probe events.
const (
	Name          = "introsort"
	HeapName      = "heapsort"
	InsertionName = "insertionsort"
)

// Sort sorts x in ascending order. Floating-point NaNs are ordered before
// other values.
func Sort[E constraints.Ordered](x []E) {
	SortBy(x, order.Ordered[E]{})
}

// SortFunc sorts x in ascending order as determined by less.
func SortFunc[E any](x []E, less func(a, b E) bool) {
	SortBy(x, order.Func[E](less))
}

// SortCompare sorts x in ascending order as determined by the three-way
// comparison cmp.
func SortCompare[E any](x []E, cmp func(a, b E) int) {
	SortBy(x, order.Compare[E](cmp))
}

// SortComparer sorts x in the order defined by c.
func SortComparer[E any](x []E, c order.Comparer[E]) {
	SortBy(x, order.ByComparer[E, order.Comparer[E]]{C: c})
}

// SortBy sorts x in the order defined by lt.
func SortBy[E any, L order.LessThan[E]](x []E, lt L) {
	Sorter[E, L]{Less: lt}.Sort(x)
}

// SortNatural sorts x using the element type's own Less method.
func SortNatural[E order.Lesser[E]](x []E) {
	SortBy(x, order.Natural[E]{})
}

// SortDefault sorts x using the ordering chosen by order.Default. If E has no
// ordering, x is left untouched and the error wraps order.ErrNoOrdering.
func SortDefault[E any](x []E) error {
	lt, err := order.Default[E]()
	if err != nil {
		return err
	}
	SortBy(x, lt)
	return nil
}

// SortRange sorts the length elements of x starting at start.
func SortRange[E constraints.Ordered](x []E, start, length int) error {
	return SortRangeBy(x, start, length, order.Ordered[E]{})
}

// SortRangeFunc is like SortRange but orders elements with less.
func SortRangeFunc[E any](x []E, start, length int, less func(a, b E) bool) error {
	return SortRangeBy(x, start, length, order.Func[E](less))
}

// SortRangeBy is like SortRange but orders elements with lt.
func SortRangeBy[E any, L order.LessThan[E]](x []E, start, length int, lt L) error {
	return Sorter[E, L]{Less: lt}.SortRange(x, start, length)
}

// SortList sorts the length elements of c starting at start.
func SortList[E any, L order.LessThan[E]](c index.Collection[E], start, length int, lt L) error {
	return Sorter[E, L]{Less: lt}.SortList(c, start, length)
}

// HeapSort sorts x in ascending order with heap sort.
func HeapSort[E constraints.Ordered](x []E) {
	HeapSortBy(x, order.Ordered[E]{})
}

// HeapSortFunc sorts x with heap sort as determined by less.
func HeapSortFunc[E any](x []E, less func(a, b E) bool) {
	HeapSortBy(x, order.Func[E](less))
}

// HeapSortBy sorts x with heap sort in the order defined by lt.
func HeapSortBy[E any, L order.LessThan[E]](x []E, lt L) {
	Sorter[E, L]{Less: lt, Heap: true}.Sort(x)
}

// InsertionSort sorts x in ascending order with linear insertion. It is
// stable and quadratic, and suits short or nearly sorted input.
func InsertionSort[E constraints.Ordered](x []E) {
	InsertionSortBy(x, order.Ordered[E]{})
}

// InsertionSortFunc sorts x with insertion sort as determined by less.
func InsertionSortFunc[E any](x []E, less func(a, b E) bool) {
	InsertionSortBy(x, order.Func[E](less))
}

// InsertionSortBy sorts x with insertion sort in the order defined by lt.
func InsertionSortBy[E any, L order.LessThan[E]](x []E, lt L) {
	Sorter[E, L]{Less: lt, Insertion: true}.Sort(x)
}

// A Sorter sorts with a fixed ordering and reports to an Observer.
type Sorter[E any, L order.LessThan[E]] struct {
	Less L

	// Observer receives the events of each call. If nil, probe.Default
	// is used.
	Observer probe.Observer

	// Heap selects plain heap sort instead of introsort.
	Heap bool

	// Insertion selects insertion sort. Heap takes precedence.
	Insertion bool
}

func (s Sorter[E, L]) name() string {
	switch {
	case s.Heap:
		return HeapName
	case s.Insertion:
		return InsertionName
	}
	return Name
}

func (s Sorter[E, L]) observer() probe.Observer {
	if s.Observer != nil {
		return s.Observer
	}
	return probe.Default()
}

// Sort sorts x.
func (s Sorter[E, L]) Sort(x []E) {
	observeSort[E](index.Slice[E](x), 0, index.Ref(len(x)), s)
}

// SortRange sorts x[start:start+length]. It returns an error wrapping
// index.ErrOutOfRange, without touching x, if the range does not lie
// within x.
func (s Sorter[E, L]) SortRange(x []E, start, length int) error {
	if err := index.CheckRange(len(x), start, length); err != nil {
		return err
	}
	observeSort[E](index.Slice[E](x), index.Ref(start), index.Ref(start+length), s)
	return nil
}

// SortList sorts the length elements of c starting at start. Collections
// backed by a slice are sorted through it directly.
func (s Sorter[E, L]) SortList(c index.Collection[E], start, length int) error {
	if err := index.CheckRange(c.Len(), start, length); err != nil {
		return err
	}
	lo, hi := index.Ref(start), index.Ref(start+length)
	if x, ok := index.AsSlice(c); ok {
		observeSort[E](index.Slice[E](x), lo, hi, s)
	} else {
		observeSort[E](index.NewList(c), lo, hi, s)
	}
	return nil
}

func observeSort[E any, I index.Indexer[E], L order.LessThan[E]](ix I, lo, hi index.Ref, cfg Sorter[E, L]) {
	rec := probe.NewRecorder(cfg.observer(), cfg.name())
	rec.Start(int(lo), int(hi))

	s := sorter[E, I, L]{Kernel: basic.Kernel[E, I, L]{Ix: ix, Lt: cfg.Less}, rec: &rec}
	switch {
	case cfg.Heap:
		s.heapSort(lo, hi)
	case cfg.Insertion:
		s.InsertionSort(lo, hi)
	default:
		s.introSort(lo, hi, depthBudget(hi.Dif(lo)))
	}
	rec.End(nil)
}
