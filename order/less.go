// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package order

import "golang.org/x/xerrors"

// LessThan is a strict weak order over E.
//
// Lt must be irreflexive, asymmetric and transitive, and incomparability
// (neither Lt(a, b) nor Lt(b, a)) must be transitive. Implementations are
// expected to be pure for the duration of a sort call.
type LessThan[E any] interface {
	Lt(a, b E) bool
}

// ErrContract is returned, wrapped, when a sort observes a state that is only
// reachable if the LessThan in use is not a strict weak order. Detection is
// best effort: an inconsistent order may also go unnoticed and leave the data
// in some unspecified permutation.
var ErrContract = xerrors.New("comparison method violates its general contract")

// Gt reports whether a sorts after b.
func Gt[E any, L LessThan[E]](lt L, a, b E) bool { return lt.Lt(b, a) }

// Le reports whether a does not sort after b.
func Le[E any, L LessThan[E]](lt L, a, b E) bool { return !lt.Lt(b, a) }

// Ge reports whether a does not sort before b.
func Ge[E any, L LessThan[E]](lt L, a, b E) bool { return !lt.Lt(a, b) }

// IsSorted reports whether x is sorted in non-decreasing order under lt.
func IsSorted[E any, L LessThan[E]](x []E, lt L) bool {
	for i := len(x) - 1; i > 0; i-- {
		if lt.Lt(x[i], x[i-1]) {
			return false
		}
	}
	return true
}

// Reversed inverts the order of L.
type Reversed[E any, L LessThan[E]] struct {
	Less L
}

func (r Reversed[E, L]) Lt(a, b E) bool { return r.Less.Lt(b, a) }
