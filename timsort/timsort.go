// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package timsort

import (
	"math/bits"

	"golang.org/x/exp/sorts/index"
	"golang.org/x/exp/sorts/internal/basic"
	"golang.org/x/exp/sorts/internal/scratch"
	"golang.org/x/exp/sorts/order"
	"golang.org/x/exp/sorts/probe"
	"golang.org/x/xerrors"
)

const (
	// Ranges shorter than minMerge are sorted by binary insertion alone.
	// minMerge must be a power of two.
	minMerge = 32

	// Initial threshold of consecutive wins before a merge starts galloping.
	initialMinGallop = 7

	// Scratch elements allocated up front, unless the range is small.
	initialScratch = 256
)

type run struct {
	base index.Ref
	len  int
}

// merger holds the state of one sort call.
type merger[E any, I index.Indexer[E], L order.LessThan[E]] struct {
	basic.Kernel[E, I, L]

	width     int
	minGallop int
	tmp       []E
	runs      []run
	rec       *probe.Recorder
}

func newMerger[E any, I index.Indexer[E], L order.LessThan[E]](k basic.Kernel[E, I, L], width int, rec *probe.Recorder) *merger[E, I, L] {
	m := &merger[E, I, L]{
		Kernel:    k,
		width:     width,
		minGallop: initialMinGallop,
		rec:       rec,
	}

	tmpLen := initialScratch
	if width < 2*initialScratch {
		tmpLen = width >> 1
	}
	m.tmp = scratch.Get[E](tmpLen)
	m.rec.Stats.Scratch = tmpLen

	// Upper bounds on the stack depth for the given width, with the current
	// collapse rules. The slice still grows if a bound is ever wrong.
	var stackLen int
	switch {
	case width < 120:
		stackLen = 5
	case width < 1542:
		stackLen = 10
	case width < 119151:
		stackLen = 24
	default:
		stackLen = 49
	}
	m.runs = make([]run, 0, stackLen)
	return m
}

// release returns the scratch buffer to the pool.
func (m *merger[E, I, L]) release() {
	scratch.Put(m.tmp)
	m.tmp = nil
}

// minRunLength returns the minimum acceptable run length for a range of n
// elements. Natural runs shorter than this are extended with BinarySort.
//
// For n < minMerge the result is n. If n is an exact power of two the result
// is minMerge/2. Otherwise it is a k with minMerge/2 <= k <= minMerge such
// that n/k is close to, but strictly less than, a power of two.
func minRunLength(n int) int {
	r := 0 // becomes 1 if any bit is shifted off
	for n >= minMerge {
		r |= n & 1
		n >>= 1
	}
	return n + r
}

func (m *merger[E, I, L]) pushRun(base index.Ref, n int) {
	m.runs = append(m.runs, run{base: base, len: n})
	m.rec.Stats.Runs++
	m.rec.Stats.MaxStack = max(m.rec.Stats.MaxStack, len(m.runs))
	if m.rec.Verbose() {
		m.rec.Emit(probe.Event{Kind: probe.RunFound, Base: int(base), Len1: n})
	}
}

// mergeCollapse merges adjacent runs until the stack invariants hold again:
//
//  1. runs[i-3].len > runs[i-2].len + runs[i-1].len
//  2. runs[i-2].len > runs[i-1].len
//
// The first rule is checked one level deeper than it appears to need,
// which keeps it true for the whole stack and not just its top.
func (m *merger[E, I, L]) mergeCollapse() error {
	for len(m.runs) > 1 {
		r := m.runs
		n := len(r) - 2
		if n > 0 && r[n-1].len <= r[n].len+r[n+1].len || n > 1 && r[n-2].len <= r[n].len+r[n-1].len {
			if r[n-1].len < r[n+1].len {
				n--
			}
		} else if r[n].len > r[n+1].len {
			break
		}
		if err := m.mergeAt(n); err != nil {
			return err
		}
	}
	return nil
}

// mergeForceCollapse merges all runs on the stack until one remains.
func (m *merger[E, I, L]) mergeForceCollapse() error {
	for len(m.runs) > 1 {
		n := len(m.runs) - 2
		if n > 0 && m.runs[n-1].len < m.runs[n+1].len {
			n--
		}
		if err := m.mergeAt(n); err != nil {
			return err
		}
	}
	return nil
}

// mergeAt merges the runs at stack positions i and i+1. i must be the
// second or third run from the top.
func (m *merger[E, I, L]) mergeAt(i int) error {
	r := m.runs
	base1, len1 := r[i].base, r[i].len
	base2, len2 := r[i+1].base, r[i+1].len

	r[i].len = len1 + len2
	if i == len(r)-3 {
		r[i+1] = r[i+2]
	}
	m.runs = r[:len(r)-1]
	m.rec.Stats.Merges++

	if m.rec.Verbose() {
		defer func(base, len1, len2 int) {
			m.rec.Emit(probe.Event{Kind: probe.Merge, Base: base, Len1: len1, Len2: len2, MinGallop: m.minGallop})
		}(int(base1), len1, len2)
	}

	// Elements of run1 not above the first element of run2 are already in place.
	k := gallopRight(m.Ix.Get(base2), m.Ix, base1, len1, 0, m.Lt)
	base1 = base1.Add(k)
	len1 -= k
	if len1 == 0 {
		return nil
	}

	// Likewise elements of run2 not below the last element of run1.
	len2 = gallopLeft(m.Ix.Get(base1.Add(len1-1)), m.Ix, base2, len2, len2-1, m.Lt)
	if len2 == 0 {
		return nil
	}

	if len1 <= len2 {
		return m.mergeLo(base1, len1, base2, len2)
	}
	return m.mergeHi(base1, len1, base2, len2)
}

// ensureCapacity returns a scratch buffer of at least minCap elements,
// growing the current one to the next power of two if needed.
func (m *merger[E, I, L]) ensureCapacity(minCap int) []E {
	if len(m.tmp) < minCap {
		newSize := 1 << bits.Len(uint(minCap))
		newSize = max(min(newSize, m.width>>1), minCap)
		scratch.Put(m.tmp)
		m.tmp = scratch.Get[E](newSize)
		m.rec.Stats.Scratch = max(m.rec.Stats.Scratch, newSize)
	}
	return m.tmp
}

func contractError(base index.Ref) error {
	return xerrors.Errorf("timsort: merging runs at %d: %w", int(base), order.ErrContract)
}

// mergeLo merges two adjacent runs in place, stably. The first element of
// run1 must be greater than the first element of run2, and the last element
// of run1 greater than every element of run2. It should be called only when
// len1 <= len2, since it copies run1 into scratch space.
func (m *merger[E, I, L]) mergeLo(base1 index.Ref, len1 int, base2 index.Ref, len2 int) error {
	ix, lt := m.Ix, m.Lt
	tmp := m.ensureCapacity(len1)
	ix.Export(base1, tmp[:len1])
	ts := index.Slice[E](tmp)

	cursor1 := 0     // in tmp
	cursor2 := base2 // in ix
	dest := base1    // in ix

	ix.Set(dest, ix.Get(cursor2))
	dest++
	cursor2++
	if len2--; len2 == 0 {
		ix.Import(dest, tmp[cursor1:cursor1+len1])
		return nil
	}
	if len1 == 1 {
		ix.Copy(cursor2, dest, len2)
		ix.Set(dest.Add(len2), tmp[cursor1])
		return nil
	}

	minGallop := m.minGallop
outer:
	for {
		count1 := 0 // times in a row run1 won
		count2 := 0 // times in a row run2 won

		// One element at a time until one run starts winning consistently.
		for {
			if lt.Lt(ix.Get(cursor2), tmp[cursor1]) {
				ix.Set(dest, ix.Get(cursor2))
				dest++
				cursor2++
				count2++
				count1 = 0
				if len2--; len2 == 0 {
					break outer
				}
			} else {
				ix.Set(dest, tmp[cursor1])
				dest++
				cursor1++
				count1++
				count2 = 0
				if len1--; len1 == 1 {
					break outer
				}
			}
			if count1|count2 >= minGallop {
				break
			}
		}

		// Gallop until neither run wins consistently any more.
		m.rec.Stats.Gallops++
		for {
			count1 = gallopRight(ix.Get(cursor2), ts, index.Ref(cursor1), len1, 0, lt)
			if count1 != 0 {
				ix.Import(dest, tmp[cursor1:cursor1+count1])
				dest = dest.Add(count1)
				cursor1 += count1
				len1 -= count1
				if len1 <= 1 { // len1 == 0 is a contract violation
					break outer
				}
			}
			ix.Set(dest, ix.Get(cursor2))
			dest++
			cursor2++
			if len2--; len2 == 0 {
				break outer
			}

			count2 = gallopLeft(tmp[cursor1], ix, cursor2, len2, 0, lt)
			if count2 != 0 {
				ix.Copy(cursor2, dest, count2)
				dest = dest.Add(count2)
				cursor2 = cursor2.Add(count2)
				len2 -= count2
				if len2 == 0 {
					break outer
				}
			}
			ix.Set(dest, tmp[cursor1])
			dest++
			cursor1++
			if len1--; len1 == 1 {
				break outer
			}
			minGallop--
			if count1 < initialMinGallop && count2 < initialMinGallop {
				break
			}
		}
		// Penalize leaving gallop mode.
		minGallop = max(minGallop, 0) + 2
	}
	m.minGallop = max(minGallop, 1)

	switch len1 {
	case 1:
		ix.Copy(cursor2, dest, len2)
		ix.Set(dest.Add(len2), tmp[cursor1])
	case 0:
		return contractError(base1)
	default:
		ix.Import(dest, tmp[cursor1:cursor1+len1])
	}
	return nil
}

// mergeHi is like mergeLo, except that it should be called only when
// len1 >= len2, and it merges from the top down, copying run2 into scratch
// space.
func (m *merger[E, I, L]) mergeHi(base1 index.Ref, len1 int, base2 index.Ref, len2 int) error {
	ix, lt := m.Ix, m.Lt
	tmp := m.ensureCapacity(len2)
	ix.Export(base2, tmp[:len2])
	ts := index.Slice[E](tmp)

	cursor1 := base1.Add(len1 - 1) // in ix
	cursor2 := len2 - 1            // in tmp
	dest := base2.Add(len2 - 1)    // in ix

	ix.Set(dest, ix.Get(cursor1))
	dest--
	cursor1--
	if len1--; len1 == 0 {
		ix.Import(dest.Sub(len2-1), tmp[:len2])
		return nil
	}
	if len2 == 1 {
		dest = dest.Sub(len1)
		cursor1 = cursor1.Sub(len1)
		ix.Copy(cursor1+1, dest+1, len1)
		ix.Set(dest, tmp[cursor2])
		return nil
	}

	minGallop := m.minGallop
outer:
	for {
		count1 := 0 // times in a row run1 won
		count2 := 0 // times in a row run2 won

		for {
			if lt.Lt(tmp[cursor2], ix.Get(cursor1)) {
				ix.Set(dest, ix.Get(cursor1))
				dest--
				cursor1--
				count1++
				count2 = 0
				if len1--; len1 == 0 {
					break outer
				}
			} else {
				ix.Set(dest, tmp[cursor2])
				dest--
				cursor2--
				count2++
				count1 = 0
				if len2--; len2 == 1 {
					break outer
				}
			}
			if count1|count2 >= minGallop {
				break
			}
		}

		m.rec.Stats.Gallops++
		for {
			count1 = len1 - gallopRight(tmp[cursor2], ix, base1, len1, len1-1, lt)
			if count1 != 0 {
				dest = dest.Sub(count1)
				cursor1 = cursor1.Sub(count1)
				len1 -= count1
				ix.Copy(cursor1+1, dest+1, count1)
				if len1 == 0 {
					break outer
				}
			}
			ix.Set(dest, tmp[cursor2])
			dest--
			cursor2--
			if len2--; len2 == 1 {
				break outer
			}

			count2 = len2 - gallopLeft(ix.Get(cursor1), ts, 0, len2, len2-1, lt)
			if count2 != 0 {
				dest = dest.Sub(count2)
				cursor2 -= count2
				len2 -= count2
				ix.Import(dest+1, tmp[cursor2+1:cursor2+1+count2])
				if len2 <= 1 { // len2 == 0 is a contract violation
					break outer
				}
			}
			ix.Set(dest, ix.Get(cursor1))
			dest--
			cursor1--
			if len1--; len1 == 0 {
				break outer
			}
			minGallop--
			if count1 < initialMinGallop && count2 < initialMinGallop {
				break
			}
		}
		minGallop = max(minGallop, 0) + 2
	}
	m.minGallop = max(minGallop, 1)

	switch len2 {
	case 1:
		dest = dest.Sub(len1)
		cursor1 = cursor1.Sub(len1)
		ix.Copy(cursor1+1, dest+1, len1)
		ix.Set(dest, tmp[cursor2])
	case 0:
		return contractError(base1)
	default:
		ix.Import(dest.Sub(len2-1), tmp[:len2])
	}
	return nil
}
