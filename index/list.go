// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package index

// Collection is an arbitrary indexable sequence.
type Collection[E any] interface {
	Len() int
	At(i int) E
	SetAt(i int, v E)
}

// Contiguous is implemented by collections backed by a single slice.
// Slice must return the live backing storage, of length Len(), not a copy.
type Contiguous[E any] interface {
	Slice() []E
}

// AsSlice returns the backing slice of c when c exposes one through
// Contiguous and the slice agrees with c.Len(). Otherwise it reports false
// and the caller must go through List.
func AsSlice[E any](c Collection[E]) ([]E, bool) {
	cs, ok := c.(Contiguous[E])
	if !ok {
		return nil, false
	}
	s := cs.Slice()
	if len(s) != c.Len() {
		return nil, false
	}
	return s, true
}

// List is the generic Indexer over a Collection. Refs are collection indexes.
type List[E any] struct {
	c Collection[E]
}

// NewList returns an Indexer over c.
func NewList[E any](c Collection[E]) List[E] {
	return List[E]{c: c}
}

func (l List[E]) Ref0() Ref { return 0 }

func (l List[E]) Get(r Ref) E { return l.c.At(int(r)) }

func (l List[E]) Set(r Ref, v E) { l.c.SetAt(int(r), v) }

func (l List[E]) Swap(a, b Ref) {
	t := l.c.At(int(a))
	l.c.SetAt(int(a), l.c.At(int(b)))
	l.c.SetAt(int(b), t)
}

func (l List[E]) Copy(src, dst Ref, n int) {
	if src == dst || n <= 0 {
		return
	}
	s, d := int(src), int(dst)
	if s > d {
		for end := s + n; s < end; s, d = s+1, d+1 {
			l.c.SetAt(d, l.c.At(s))
		}
		return
	}
	// Overlap with dst after src: copy from the top down.
	for i := n - 1; i >= 0; i-- {
		l.c.SetAt(d+i, l.c.At(s+i))
	}
}

func (l List[E]) Reverse(lo, hi Ref) {
	for i, j := int(lo), int(hi)-1; i < j; i, j = i+1, j-1 {
		t := l.c.At(i)
		l.c.SetAt(i, l.c.At(j))
		l.c.SetAt(j, t)
	}
}

func (l List[E]) Export(src Ref, buf []E) {
	for i := range buf {
		buf[i] = l.c.At(int(src) + i)
	}
}

func (l List[E]) Import(dst Ref, buf []E) {
	for i, v := range buf {
		l.c.SetAt(int(dst)+i, v)
	}
}

// Values is a Collection over a plain slice. It also implements Contiguous.
type Values[E any] []E

func (v Values[E]) Len() int         { return len(v) }
func (v Values[E]) At(i int) E       { return v[i] }
func (v Values[E]) SetAt(i int, e E) { v[i] = e }
func (v Values[E]) Slice() []E       { return v }
