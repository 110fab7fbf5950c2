// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package basic

import (
	"math/rand"
	"testing"

	"github.com/google/go-cmp/cmp"
	"golang.org/x/exp/sorts/index"
	"golang.org/x/exp/sorts/order"
)

type pair struct{ key, seq int }

type byKey struct{}

func (byKey) Lt(a, b pair) bool { return a.key < b.key }

func ints(x []int) Kernel[int, index.Slice[int], order.Ordered[int]] {
	return Kernel[int, index.Slice[int], order.Ordered[int]]{Ix: x}
}

func pairs(x []pair) Kernel[pair, index.Slice[pair], byKey] {
	return Kernel[pair, index.Slice[pair], byKey]{Ix: x}
}

func TestSort3AllPermutations(t *testing.T) {
	perms := [][]int{{1, 2, 3}, {1, 3, 2}, {2, 1, 3}, {2, 3, 1}, {3, 1, 2}, {3, 2, 1}}
	for _, p := range perms {
		x := append([]int(nil), p...)
		ints(x).Sort3(0, 1, 2)
		if diff := cmp.Diff([]int{1, 2, 3}, x); diff != "" {
			t.Errorf("Sort3(%v) mismatch (-want +got):\n%s", p, diff)
		}
	}
}

func TestSort3Stable(t *testing.T) {
	x := []pair{{1, 0}, {1, 1}, {0, 2}}
	pairs(x).Sort3(0, 1, 2)
	want := []pair{{0, 2}, {1, 0}, {1, 1}}
	if diff := cmp.Diff(want, x, cmp.AllowUnexported(pair{})); diff != "" {
		t.Errorf("Sort3 not stable (-want +got):\n%s", diff)
	}
}

func TestInsertionSort(t *testing.T) {
	r := rand.New(rand.NewSource(1))
	for n := 0; n < 40; n++ {
		x := r.Perm(n)
		ints(x).InsertionSort(0, index.Ref(n))
		if !order.IsSorted(x, order.Ordered[int]{}) {
			t.Errorf("InsertionSort(n=%d) = %v", n, x)
		}
	}
}

func TestBinarySortStable(t *testing.T) {
	r := rand.New(rand.NewSource(2))
	x := make([]pair, 200)
	for i := range x {
		x[i] = pair{r.Intn(10), i}
	}
	pairs(x).BinarySort(0, index.Ref(len(x)), 0)
	for i := 1; i < len(x); i++ {
		if x[i].key < x[i-1].key || (x[i].key == x[i-1].key && x[i].seq < x[i-1].seq) {
			t.Fatalf("BinarySort out of order or unstable at %d: %v %v", i, x[i-1], x[i])
		}
	}
}

func TestBinarySortPrefix(t *testing.T) {
	x := []int{1, 4, 7, 3, 0, 9, 4}
	ints(x).BinarySort(0, 7, 3)
	if diff := cmp.Diff([]int{0, 1, 3, 4, 4, 7, 9}, x); diff != "" {
		t.Errorf("BinarySort mismatch (-want +got):\n%s", diff)
	}
}

func TestCountRunAndMakeAscending(t *testing.T) {
	tests := []struct {
		in, out []int
		n       int
	}{
		{[]int{5}, []int{5}, 1},
		{[]int{1, 2, 2, 3, 1}, []int{1, 2, 2, 3, 1}, 4},
		{[]int{5, 4, 3, 9}, []int{3, 4, 5, 9}, 3},
		{[]int{5, 4, 4, 3}, []int{4, 5, 4, 3}, 2},
		{[]int{3, 2, 1, 0}, []int{0, 1, 2, 3}, 4},
	}
	for _, tt := range tests {
		x := append([]int(nil), tt.in...)
		n := ints(x).CountRunAndMakeAscending(0, index.Ref(len(x)))
		if n != tt.n {
			t.Errorf("CountRun(%v) = %d, want %d", tt.in, n, tt.n)
		}
		if diff := cmp.Diff(tt.out, x); diff != "" {
			t.Errorf("CountRun(%v) data mismatch (-want +got):\n%s", tt.in, diff)
		}
	}
}

func TestDescendingRunStaysStable(t *testing.T) {
	// Equal neighbours end a descending run, so reversal never swaps them.
	x := []pair{{3, 0}, {2, 1}, {2, 2}, {1, 3}}
	n := pairs(x).CountRunAndMakeAscending(0, 4)
	if n != 2 {
		t.Fatalf("run length = %d, want 2", n)
	}
	want := []pair{{2, 1}, {3, 0}, {2, 2}, {1, 3}}
	if diff := cmp.Diff(want, x, cmp.AllowUnexported(pair{})); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
}
