// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package order

import (
	"bytes"
	"time"

	"golang.org/x/exp/constraints"
)

// Ordered orders any type supporting the < operator.
// For floating-point types a NaN sorts before every other value, and NaNs
// are equivalent to each other, so Ordered is a strict weak order even in
// their presence.
type Ordered[E constraints.Ordered] struct{}

func (Ordered[E]) Lt(a, b E) bool {
	return a < b || (isNaN(a) && !isNaN(b))
}

// isNaN reports whether x is a NaN without requiring a math import.
// The comparison is constant false for every non-float instantiation.
func isNaN[E constraints.Ordered](x E) bool {
	return x != x
}

// Bool orders false before true.
type Bool struct{}

func (Bool) Lt(a, b bool) bool { return !a && b }

// Time orders instants chronologically.
type Time struct{}

func (Time) Lt(a, b time.Time) bool { return a.Before(b) }

// Bytes orders byte slices lexicographically.
type Bytes struct{}

func (Bytes) Lt(a, b []byte) bool { return bytes.Compare(a, b) < 0 }

// UUID orders 16-byte identifiers lexicographically.
type UUID struct{}

func (UUID) Lt(a, b [16]byte) bool { return bytes.Compare(a[:], b[:]) < 0 }
