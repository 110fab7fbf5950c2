// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package timsort

import (
	"golang.org/x/exp/constraints"
	"golang.org/x/exp/sorts/index"
	"golang.org/x/exp/sorts/internal/basic"
	"golang.org/x/exp/sorts/order"
	"golang.org/x/exp/sorts/probe"
)

// Name identifies this algorithm in probe events.
const Name = "timsort"

// Sort sorts x in ascending order. Floating-point NaNs are ordered before
// other values.
func Sort[E constraints.Ordered](x []E) {
	// An ordered type always yields a strict weak order, so this cannot fail.
	_ = SortBy(x, order.Ordered[E]{})
}

// SortFunc sorts x in ascending order as determined by less, which must
// describe a strict weak ordering.
func SortFunc[E any](x []E, less func(a, b E) bool) error {
	return SortBy(x, order.Func[E](less))
}

// SortCompare sorts x in ascending order as determined by cmp, which returns
// a negative number when a < b, a positive number when a > b and zero when
// a == b.
func SortCompare[E any](x []E, cmp func(a, b E) int) error {
	return SortBy(x, order.Compare[E](cmp))
}

// SortComparer sorts x in the order defined by c.
func SortComparer[E any](x []E, c order.Comparer[E]) error {
	return SortBy(x, order.ByComparer[E, order.Comparer[E]]{C: c})
}

// SortBy sorts x in the order defined by lt.
func SortBy[E any, L order.LessThan[E]](x []E, lt L) error {
	return Sorter[E, L]{Less: lt}.Sort(x)
}

// SortNatural sorts x using the element type's own Less method.
func SortNatural[E order.Lesser[E]](x []E) error {
	return SortBy(x, order.Natural[E]{})
}

// SortDefault sorts x using the ordering chosen by order.Default. If E has no
// ordering, x is left untouched and the error wraps order.ErrNoOrdering.
func SortDefault[E any](x []E) error {
	lt, err := order.Default[E]()
	if err != nil {
		return err
	}
	return SortBy(x, lt)
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

// A Sorter sorts with a fixed ordering and reports to an Observer.
// If Observer is nil, the process default from probe.Default is used.
type Sorter[E any, L order.LessThan[E]] struct {
	Less     L
	Observer probe.Observer
}

func (s Sorter[E, L]) observer() probe.Observer {
	if s.Observer != nil {
		return s.Observer
	}
	return probe.Default()
}

// Sort sorts x.
func (s Sorter[E, L]) Sort(x []E) error {
	return observeSort[E](index.Slice[E](x), 0, index.Ref(len(x)), s.Less, s.observer())
}

// SortRange sorts x[start:start+length]. It returns an error wrapping
// index.ErrOutOfRange, without touching x, if the range does not lie
// within x.
func (s Sorter[E, L]) SortRange(x []E, start, length int) error {
	if err := index.CheckRange(len(x), start, length); err != nil {
		return err
	}
	return observeSort[E](index.Slice[E](x), index.Ref(start), index.Ref(start+length), s.Less, s.observer())
}

// SortList sorts the length elements of c starting at start. Collections
// backed by a slice are sorted through it directly.
func (s Sorter[E, L]) SortList(c index.Collection[E], start, length int) error {
	if err := index.CheckRange(c.Len(), start, length); err != nil {
		return err
	}
	lo, hi := index.Ref(start), index.Ref(start+length)
	if x, ok := index.AsSlice(c); ok {
		return observeSort[E](index.Slice[E](x), lo, hi, s.Less, s.observer())
	}
	return observeSort[E](index.NewList(c), lo, hi, s.Less, s.observer())
}

func observeSort[E any, I index.Indexer[E], L order.LessThan[E]](ix I, lo, hi index.Ref, lt L, obs probe.Observer) error {
	rec := probe.NewRecorder(obs, Name)
	rec.Start(int(lo), int(hi))
	err := timSort[E](ix, lo, hi, lt, &rec)
	rec.End(err)
	return err
}

// timSort sorts [lo, hi) of ix.
func timSort[E any, I index.Indexer[E], L order.LessThan[E]](ix I, lo, hi index.Ref, lt L, rec *probe.Recorder) error {
	k := basic.Kernel[E, I, L]{Ix: ix, Lt: lt}
	width := hi.Dif(lo)
	if width < 2 {
		return nil
	}

	// Small ranges need no merging.
	if width < minMerge {
		switch width {
		case 2:
			k.Sort2(lo, lo+1)
		case 3:
			k.Sort3(lo, lo+1, lo+2)
		default:
			initRunLen := k.CountRunAndMakeAscending(lo, hi)
			k.BinarySort(lo, hi, lo.Add(initRunLen))
		}
		rec.Stats.Runs = 1
		return nil
	}

	m := newMerger(k, width, rec)
	defer m.release()

	minRun := minRunLength(width)
	for remaining := width; remaining != 0; {
		runLen := k.CountRunAndMakeAscending(lo, hi)

		// Extend short runs to min(minRun, remaining).
		if runLen < minRun {
			force := min(remaining, minRun)
			k.BinarySort(lo, lo.Add(force), lo.Add(runLen))
			runLen = force
		}

		m.pushRun(lo, runLen)
		if err := m.mergeCollapse(); err != nil {
			return err
		}

		lo = lo.Add(runLen)
		remaining -= runLen
	}

	return m.mergeForceCollapse()
}
