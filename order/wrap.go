// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package order

// Lesser is implemented by types that order themselves with a Less method.
type Lesser[E any] interface {
	Less(other E) bool
}

// Comparable is implemented by types that order themselves with a three-way
// Compare method, such as time.Time.
type Comparable[E any] interface {
	Compare(other E) int
}

// Natural uses the element type's own Less method.
type Natural[E Lesser[E]] struct{}

func (Natural[E]) Lt(a, b E) bool { return a.Less(b) }

// Comparing uses the element type's own Compare method.
type Comparing[E Comparable[E]] struct{}

func (Comparing[E]) Lt(a, b E) bool { return a.Compare(b) < 0 }

// Func adapts a less-than predicate.
type Func[E any] func(a, b E) bool

func (f Func[E]) Lt(a, b E) bool { return f(a, b) }

// Compare adapts a three-way comparison function returning a negative
// number, zero or a positive number when a is less than, equal to or greater
// than b.
type Compare[E any] func(a, b E) int

func (f Compare[E]) Lt(a, b E) bool { return f(a, b) < 0 }

// Comparer is a comparator object.
type Comparer[E any] interface {
	Compare(a, b E) int
}

// ByComparer adapts a Comparer. C is kept as a type parameter so a concrete
// comparator is called directly.
type ByComparer[E any, C Comparer[E]] struct {
	C C
}

func (c ByComparer[E, C]) Lt(a, b E) bool { return c.C.Compare(a, b) < 0 }
