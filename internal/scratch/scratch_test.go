// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scratch

import "testing"

func TestGetLength(t *testing.T) {
	for _, n := range []int{0, 1, 7, 127, 128, 129, 1000, 4096} {
		buf := Get[int64](n)
		if len(buf) != n {
			t.Errorf("Get(%d) returned length %d", n, len(buf))
		}
		Put(buf)
	}
}

func TestPooledClass(t *testing.T) {
	if pooled[int64](127) {
		t.Error("127 int64s (1016 bytes) should not be pooled")
	}
	if !pooled[int64](128) {
		t.Error("128 int64s (1024 bytes) should be pooled")
	}
	buf := Get[int64](300)
	if cap(buf) != 512 {
		t.Errorf("cap(Get(300)) = %d, want 512", cap(buf))
	}
}

func TestPutClears(t *testing.T) {
	buf := Get[*int](500)
	x := 1
	for i := range buf {
		buf[i] = &x
	}
	Put(buf)
	// sync.Pool may or may not hand the same buffer back; when it does, it
	// must have been cleared.
	again := Get[*int](500)
	for i, p := range again[:cap(again)] {
		if p != nil {
			t.Fatalf("element %d survived Put", i)
		}
	}
	Put(again)
}

func TestClass(t *testing.T) {
	for n, want := range map[int]int{1: 0, 2: 1, 3: 2, 4: 2, 5: 3, 256: 8, 257: 9} {
		if got := class(n); got != want {
			t.Errorf("class(%d) = %d, want %d", n, got, want)
		}
	}
}
