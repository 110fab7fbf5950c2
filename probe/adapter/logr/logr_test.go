// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package logr

import (
	"errors"
	"testing"

	"github.com/go-logr/logr"
	"github.com/go-logr/logr/funcr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/sorts/probe"
)

func capture(verbosity int) (logr.Logger, *[]string) {
	var lines []string
	l := funcr.New(func(prefix, args string) {
		lines = append(lines, args)
	}, funcr.Options{Verbosity: verbosity})
	return l, &lines
}

func TestVerbosity(t *testing.T) {
	l, _ := capture(0)
	o := NewObserver(l)
	assert.False(t, o.Enabled(probe.Debug))
	assert.True(t, o.Enabled(probe.Info))
	assert.True(t, o.Enabled(probe.Error))

	l, _ = capture(1)
	assert.True(t, NewObserver(l).Enabled(probe.Debug))

	assert.False(t, NewObserver(logr.Discard()).Enabled(probe.Error))
}

func TestObserve(t *testing.T) {
	l, lines := capture(1)
	o := NewObserver(l)
	o.Observe(&probe.Event{Kind: probe.RunFound, Algorithm: "timsort", Base: 32, Len1: 16})
	o.Observe(&probe.Event{Kind: probe.SortEnd, Algorithm: "timsort", Err: errors.New("contract")})

	require.Len(t, *lines, 2)
	assert.Equal(t, `"level"=1 "msg"="run found" "alg"="timsort" "base"=32 "len"=16`, (*lines)[0])
	assert.Contains(t, (*lines)[1], `"msg"="sort end" "error"="contract" "alg"="timsort"`)
}
