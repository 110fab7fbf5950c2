// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package sorts sorts slices and indexable collections in place with a
// choice of algorithm.
//
// Stable selects TimSort (package timsort), which keeps equal elements in
// their original order and runs in close to linear time on partially sorted
// input. Unstable selects introsort (package introsort), which needs no
// scratch memory. Heap selects plain heap sort.
//
// Every algorithm accepts the same orderings: the natural order of built-in
// types, a type's own Less or Compare method, a less-than function, a
// three-way comparison function or a comparator object. See package order.
//
// Progress and statistics of each call can be reported to a probe.Observer;
// see package probe and its adapters.
package sorts
