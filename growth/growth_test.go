// Copyright (C) 2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package growth

import (
	"math"
	"testing"

	"github.com/ava-labs/avalanchego/utils/logging"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestNext(t *testing.T) {
	tests := []struct {
		cur, need, want int
	}{
		{cur: 4, need: 4, want: 4}, // no growth required
		{cur: 4, need: 5, want: 8},
		{cur: 8, need: 9, want: 16},
		{cur: 4, need: 17, want: 32},
		{cur: 0, need: 1, want: DefaultCapacity},
		{cur: 0, need: 0, want: 0},
		{cur: 1, need: 2, want: 2},
		{cur: 3, need: 4, want: 6},
		{cur: math.MaxInt/2 + 1, need: math.MaxInt, want: math.MaxInt}, // saturates instead of overflowing
	}

	for _, tt := range tests {
		if got := Next(tt.cur, tt.need); got != tt.want {
			t.Errorf("Next(%d, %d) got %d; want %d", tt.cur, tt.need, got, tt.want)
		}
	}
}

func TestPolicyReallocated(t *testing.T) {
	var got []Event
	p := NewPolicy("array", WithObserver(ObserverFunc(func(e Event) {
		got = append(got, e)
	})))

	p.Reallocated(4, 8, 4)
	p.Reallocated(8, 16, 8)

	want := []Event{
		{Container: "array", From: 4, To: 8, Live: 4},
		{Container: "array", From: 8, To: 16, Live: 8},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("%T.Reallocated() events diff (-want +got):\n%s", p, diff)
	}
}

func TestPolicyTrimmed(t *testing.T) {
	core, logs := observer.New(zapcore.Level(logging.Debug))
	var events []Event
	p := NewPolicy("stack",
		WithLogger(logging.NewLogger("", logging.WrappedCore{Core: core})),
		WithObserver(ObserverFunc(func(e Event) {
			events = append(events, e)
		})),
	)

	p.Trimmed(16, 9)

	assert.Empty(t, events, "observer events after Trimmed()")
	got := logs.FilterMessage(TrimmedMsg).All()
	require.Len(t, got, 1)
	want := map[string]any{
		"container":     "stack",
		"from_capacity": int64(16),
		"to_capacity":   int64(9),
	}
	if diff := cmp.Diff(want, got[0].ContextMap()); diff != "" {
		t.Errorf("%T.Trimmed() log fields diff (-want +got):\n%s", p, diff)
	}
}

func TestNilPolicy(t *testing.T) {
	var p *Policy
	assert.NotPanics(t, func() { p.Reallocated(0, 4, 0) }, "nil Policy.Reallocated()")
	assert.NotPanics(t, func() { p.Trimmed(4, 0) }, "nil Policy.Trimmed()")
	assert.Equal(t, logging.NoLog{}, p.Logger(), "nil Policy.Logger()")
}

func TestNilLoggerOption(t *testing.T) {
	p := NewPolicy("queue", WithLogger(nil))
	require.NotNil(t, p.Logger())
	assert.NotPanics(t, func() { p.Reallocated(4, 8, 4) })
}

func TestRealloc(t *testing.T) {
	live := []int{1, 2, 3}
	got := Realloc(live, 8)
	require.Len(t, got, 8)
	if diff := cmp.Diff([]int{1, 2, 3, 0, 0, 0, 0, 0}, got); diff != "" {
		t.Errorf("Realloc() diff (-want +got):\n%s", diff)
	}

	got[0] = 42
	assert.Equal(t, 1, live[0], "Realloc() MUST NOT share storage")

	assert.Panics(t, func() { Realloc(live, 2) }, "Realloc() to fewer slots than live")
}
