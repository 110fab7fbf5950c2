// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package order defines the single ordering capability consumed by the sort
// algorithms, LessThan, and the ways of obtaining one.
//
// Every relation other than "less than" is derived from Lt by swapping or
// negating its arguments (see Gt, Le and Ge), so an algorithm can never see
// two orderings that disagree with each other.
//
// Three families of LessThan are provided:
//
//   - native fast paths that compare built-in types directly: Ordered, Bool,
//     Time, Bytes and UUID;
//   - the element type's own order: Natural for types with a Less method and
//     Comparing for types with a Compare method;
//   - wrapped comparators supplied by the caller: Func (a less-than
//     predicate), Compare (a three-way function) and ByComparer (a comparator
//     object).
//
// Default selects one of these for an arbitrary type when the caller supplies
// no comparator, and fails with ErrNoOrdering when none applies.
package order
