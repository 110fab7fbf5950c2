// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package order

import (
	"time"

	"golang.org/x/xerrors"
)

// ErrNoOrdering is returned, wrapped, by Default when E has no order the
// package knows how to use.
var ErrNoOrdering = xerrors.New("no ordering available")

// Default returns the order used when the caller supplies no comparator.
//
// Built-in types use their native fast path. Otherwise a type with a Less
// method uses it, and failing that a type with a Compare method uses that.
// Any other type yields ErrNoOrdering; there is no silent fallback to a
// slower generic comparison.
//
// The returned LessThan is an interface value, so every comparison is an
// indirect call. Callers that know E statically should prefer Ordered,
// Natural or Comparing directly.
func Default[E any]() (LessThan[E], error) {
	var zero E
	if lt, ok := native(zero).(LessThan[E]); ok {
		return lt, nil
	}
	if _, ok := any(zero).(Lesser[E]); ok {
		return dynLesser[E]{}, nil
	}
	if _, ok := any(zero).(Comparable[E]); ok {
		return dynComparable[E]{}, nil
	}
	return nil, xerrors.Errorf("order: %T: %w", zero, ErrNoOrdering)
}

// IsNative reports whether Default would pick a native fast path for E.
func IsNative[E any]() bool {
	var zero E
	return native(zero) != nil
}

// native maps a built-in type to its fast path. The result, when non-nil,
// implements LessThan of the dynamic type of v.
func native(v any) any {
	switch v.(type) {
	case bool:
		return Bool{}
	case int:
		return Ordered[int]{}
	case int8:
		return Ordered[int8]{}
	case int16:
		return Ordered[int16]{}
	case int32:
		return Ordered[int32]{}
	case int64:
		return Ordered[int64]{}
	case uint:
		return Ordered[uint]{}
	case uint8:
		return Ordered[uint8]{}
	case uint16:
		return Ordered[uint16]{}
	case uint32:
		return Ordered[uint32]{}
	case uint64:
		return Ordered[uint64]{}
	case uintptr:
		return Ordered[uintptr]{}
	case float32:
		return Ordered[float32]{}
	case float64:
		return Ordered[float64]{}
	case string:
		return Ordered[string]{}
	case time.Duration:
		return Ordered[time.Duration]{}
	case time.Time:
		return Time{}
	case []byte:
		return Bytes{}
	case [16]byte:
		return UUID{}
	}
	return nil
}

type dynLesser[E any] struct{}

func (dynLesser[E]) Lt(a, b E) bool { return any(a).(Lesser[E]).Less(b) }

type dynComparable[E any] struct{}

func (dynComparable[E]) Lt(a, b E) bool { return any(a).(Comparable[E]).Compare(b) < 0 }
