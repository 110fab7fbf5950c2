// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gokit

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/go-kit/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/sorts/probe"
)

func TestObserver(t *testing.T) {
	var buf bytes.Buffer
	o := NewObserver(log.NewLogfmtLogger(&buf), nil)
	assert.False(t, o.Enabled(probe.Debug))
	assert.True(t, o.Enabled(probe.Info))

	at := time.Date(2026, 5, 6, 7, 8, 9, 0, time.UTC)
	o.Observe(&probe.Event{Kind: probe.SortStart, Algorithm: "heapsort", At: at, Lo: 0, Hi: 12})
	o.Observe(&probe.Event{Kind: probe.HeapFallback, Algorithm: "introsort", At: at, Lo: 4, Hi: 40})

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, `level=info ts=2026-05-06T07:08:09Z msg="sort start" alg=heapsort lo=0 hi=12`, lines[0])
	assert.Equal(t, `level=debug ts=2026-05-06T07:08:09Z msg="heap fallback" alg=introsort lo=4 hi=40 depth=0`, lines[1])
}

func TestMinLevel(t *testing.T) {
	o := NewObserver(log.NewNopLogger(), &Options{MinLevel: probe.Debug})
	assert.True(t, o.Enabled(probe.Debug))
	o = NewObserver(log.NewNopLogger(), &Options{MinLevel: probe.Error})
	assert.False(t, o.Enabled(probe.Info))
}
