// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package timsort implements a stable, adaptive merge sort.
//
// The input is scanned once for natural runs. Short runs are extended to a
// minimum length with binary insertion sort and pushed on a stack of pending
// runs, which is merged whenever its top three lengths stop shrinking fast
// enough. Merges gallop when one side keeps winning, so partially ordered
// data sorts in close to linear time.
//
// Equal elements keep their relative order. The sort needs at most n/2
// elements of scratch space, taken from an internal pool.
//
// A comparator that is not a strict weak order cannot cause an out of range
// access; when the merge detects the inconsistency it stops and returns an
// error wrapping order.ErrContract, leaving the data permuted but otherwise
// intact.
package timsort
