// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package index provides the positional abstraction the sort algorithms in
// golang.org/x/exp/sorts are written against.
//
// A Ref is a position within one backing store. An Indexer is a view bound to
// one backing store for the duration of a single sort call: it reads and
// writes single elements, swaps pairs, copies possibly overlapping ranges,
// reverses ranges and moves blocks to and from a plain scratch slice.
//
// Two indexers are provided. Slice is the contiguous form and is used
// whenever the caller's data is a Go slice. List adapts any Collection and is
// used when contiguous access is unavailable. AsSlice is the boundary between
// the two: it hands back the backing slice of a collection that has one, so
// the faster form can be chosen without changing results.
//
// Indexers do not own their data and perform no locking. The caller must
// guarantee exclusive access to the backing store while a sort runs.
package index
