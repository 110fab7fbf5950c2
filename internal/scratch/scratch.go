// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package scratch hands out the temporary buffers used by merges.
//
// Buffers of at least minPooledBytes are drawn from per-type, per-size-class
// pools and cleared before they are returned, so a pooled buffer never keeps
// the caller's elements alive. Smaller buffers are plain allocations.
package scratch

import (
	"math/bits"
	"reflect"
	"sync"
	"unsafe"
)

const minPooledBytes = 1024

type poolKey struct {
	typ   reflect.Type
	class int
}

var pools sync.Map // poolKey -> *sync.Pool of *[]E

func pooled[E any](n int) bool {
	var zero E
	return n > 0 && uintptr(n)*unsafe.Sizeof(zero) >= minPooledBytes
}

// class returns the size class of n, the exponent of the smallest power of
// two not below n.
func class(n int) int { return bits.Len(uint(n - 1)) }

func poolFor[E any](c int) *sync.Pool {
	key := poolKey{typ: reflect.TypeOf((*E)(nil)).Elem(), class: c}
	if p, ok := pools.Load(key); ok {
		return p.(*sync.Pool)
	}
	p, _ := pools.LoadOrStore(key, &sync.Pool{
		New: func() any {
			s := make([]E, 1<<c)
			return &s
		},
	})
	return p.(*sync.Pool)
}

// Get returns a buffer of length n. Its capacity may be larger.
func Get[E any](n int) []E {
	if n <= 0 {
		return nil
	}
	if !pooled[E](n) {
		return make([]E, n)
	}
	s := poolFor[E](class(n)).Get().(*[]E)
	return (*s)[:n]
}

// Put releases a buffer obtained from Get. buf must not be used afterwards.
func Put[E any](buf []E) {
	c := cap(buf)
	if !pooled[E](c) || c&(c-1) != 0 {
		return
	}
	buf = buf[:c]
	clear(buf)
	poolFor[E](class(c)).Put(&buf)
}
