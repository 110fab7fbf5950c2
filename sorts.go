// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sorts

import (
	"fmt"
	"strings"

	"golang.org/x/exp/constraints"
	"golang.org/x/exp/sorts/index"
	"golang.org/x/exp/sorts/introsort"
	"golang.org/x/exp/sorts/order"
	"golang.org/x/exp/sorts/probe"
	"golang.org/x/exp/sorts/timsort"
	"golang.org/x/xerrors"
)

// An Algorithm selects how a sort call orders its input.
type Algorithm int

const (
	Stable    Algorithm = iota // TimSort
	Unstable                   // introsort
	Heap                       // heap sort
	Insertion                  // insertion sort, stable and quadratic
)

// ErrUnknownAlgorithm is returned for an Algorithm value outside the
// defined constants.
var ErrUnknownAlgorithm = xerrors.New("unknown algorithm")

func (a Algorithm) String() string {
	switch a {
	case Stable:
		return "stable"
	case Unstable:
		return "unstable"
	case Heap:
		return "heap"
	case Insertion:
		return "insertion"
	}
	return fmt.Sprintf("Algorithm(%d)", int(a))
}

// ParseAlgorithm returns the Algorithm named s, as returned by String, or by
// the name of the underlying algorithm ("timsort", "introsort",
// "heapsort", "insertionsort"). Case is ignored.
func ParseAlgorithm(s string) (Algorithm, error) {
	switch strings.ToLower(s) {
	case "stable", timsort.Name:
		return Stable, nil
	case "unstable", introsort.Name:
		return Unstable, nil
	case "heap", introsort.HeapName:
		return Heap, nil
	case "insertion", introsort.InsertionName:
		return Insertion, nil
	}
	return 0, xerrors.Errorf("sorts: parsing %q: %w", s, ErrUnknownAlgorithm)
}

func (a Algorithm) valid() error {
	if a < Stable || a > Insertion {
		return xerrors.Errorf("sorts: %v: %w", a, ErrUnknownAlgorithm)
	}
	return nil
}

// Sort sorts x in ascending order using alg.
func Sort[E constraints.Ordered](alg Algorithm, x []E) error {
	return SortBy(alg, x, order.Ordered[E]{})
}

// SortFunc sorts x using alg, as determined by less.
func SortFunc[E any](alg Algorithm, x []E, less func(a, b E) bool) error {
	return SortBy(alg, x, order.Func[E](less))
}

// SortCompare sorts x using alg, as determined by the three-way comparison
// cmp.
func SortCompare[E any](alg Algorithm, x []E, cmp func(a, b E) int) error {
	return SortBy(alg, x, order.Compare[E](cmp))
}

// SortComparer sorts x using alg in the order defined by c.
func SortComparer[E any](alg Algorithm, x []E, c order.Comparer[E]) error {
	return SortBy(alg, x, order.ByComparer[E, order.Comparer[E]]{C: c})
}

// SortBy sorts x using alg in the order defined by lt.
func SortBy[E any, L order.LessThan[E]](alg Algorithm, x []E, lt L) error {
	return Sorter[E, L]{Algorithm: alg, Less: lt}.Sort(x)
}

// SortNatural sorts x using alg and the element type's own Less method.
func SortNatural[E order.Lesser[E]](alg Algorithm, x []E) error {
	return SortBy(alg, x, order.Natural[E]{})
}

// SortDefault sorts x using alg and the ordering chosen by order.Default.
func SortDefault[E any](alg Algorithm, x []E) error {
	if err := alg.valid(); err != nil {
		return err
	}
	lt, err := order.Default[E]()
	if err != nil {
		return err
	}
	return SortBy(alg, x, lt)
}

// SortRange sorts the length elements of x starting at start using alg.
func SortRange[E constraints.Ordered](alg Algorithm, x []E, start, length int) error {
	return SortRangeBy(alg, x, start, length, order.Ordered[E]{})
}

// SortRangeFunc is like SortRange but orders elements with less.
func SortRangeFunc[E any](alg Algorithm, x []E, start, length int, less func(a, b E) bool) error {
	return SortRangeBy(alg, x, start, length, order.Func[E](less))
}

// SortRangeBy is like SortRange but orders elements with lt.
func SortRangeBy[E any, L order.LessThan[E]](alg Algorithm, x []E, start, length int, lt L) error {
	return Sorter[E, L]{Algorithm: alg, Less: lt}.SortRange(x, start, length)
}

// SortList sorts the length elements of c starting at start using alg.
func SortList[E any, L order.LessThan[E]](alg Algorithm, c index.Collection[E], start, length int, lt L) error {
	return Sorter[E, L]{Algorithm: alg, Less: lt}.SortList(c, start, length)
}

// A Sorter holds the algorithm, ordering and observer for a series of sort
// calls. The zero Algorithm is Stable.
type Sorter[E any, L order.LessThan[E]] struct {
	Algorithm Algorithm
	Less      L
	Observer  probe.Observer // if nil, probe.Default()
}

func (s Sorter[E, L]) stable() timsort.Sorter[E, L] {
	return timsort.Sorter[E, L]{Less: s.Less, Observer: s.Observer}
}

func (s Sorter[E, L]) unstable() introsort.Sorter[E, L] {
	return introsort.Sorter[E, L]{
		Less:      s.Less,
		Observer:  s.Observer,
		Heap:      s.Algorithm == Heap,
		Insertion: s.Algorithm == Insertion,
	}
}

// Sort sorts x.
func (s Sorter[E, L]) Sort(x []E) error {
	if err := s.Algorithm.valid(); err != nil {
		return err
	}
	if s.Algorithm == Stable {
		return s.stable().Sort(x)
	}
	s.unstable().Sort(x)
	return nil
}

// SortRange sorts x[start:start+length].
func (s Sorter[E, L]) SortRange(x []E, start, length int) error {
	if err := s.Algorithm.valid(); err != nil {
		return err
	}
	if s.Algorithm == Stable {
		return s.stable().SortRange(x, start, length)
	}
	return s.unstable().SortRange(x, start, length)
}

// SortList sorts the length elements of c starting at start.
func (s Sorter[E, L]) SortList(c index.Collection[E], start, length int) error {
	if err := s.Algorithm.valid(); err != nil {
		return err
	}
	if s.Algorithm == Stable {
		return s.stable().SortList(c, start, length)
	}
	return s.unstable().SortList(c, start, length)
}
