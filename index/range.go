// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package index

import "golang.org/x/xerrors"

// ErrOutOfRange is returned, wrapped, when a sub-range does not lie within
// its sequence. No element is touched when it is returned.
var ErrOutOfRange = xerrors.New("index out of range")

// CheckRange validates the sub-range [start, start+length) of a sequence of
// n elements.
func CheckRange(n, start, length int) error {
	switch {
	case start < 0:
		return xerrors.Errorf("index: start %d is negative: %w", start, ErrOutOfRange)
	case length < 0:
		return xerrors.Errorf("index: length %d is negative: %w", length, ErrOutOfRange)
	case start > n-length:
		return xerrors.Errorf("index: range [%d:%d] exceeds length %d: %w", start, start+length, n, ErrOutOfRange)
	}
	return nil
}
