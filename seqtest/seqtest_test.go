// Copyright (C) 2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package seqtest

import (
	"testing"

	"github.com/ava-labs/avalanchego/utils/logging"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/ava-labs/linear/growth"
)

func TestMain(m *testing.M) {
	NoLeak(m)
}

func TestLogRecorder(t *testing.T) {
	rec := NewLogRecorder(logging.Debug)
	rec.Verbo("dropped")
	rec.Debug("kept", zap.Int("n", 1))
	rec.With(zap.String("container", "queue")).Info("also kept")

	require.Len(t, rec.Entries(), 2)
	assert.Len(t, rec.At(logging.Debug), 1)
	assert.Empty(t, rec.At(logging.Verbo))

	got := rec.Messages("also kept")
	require.Len(t, got, 1)
	want := map[string]any{"container": "queue"}
	if diff := cmp.Diff(want, got[0].ContextMap()); diff != "" {
		t.Errorf("ContextMap() diff (-want +got):\n%s", diff)
	}
}

func TestStorageLogs(t *testing.T) {
	rec := new(GrowthRecorder)
	logs := NewLogRecorder(logging.Debug)
	stack := growth.NewPolicy("stack", Options(rec, logs)...)
	queue := growth.NewPolicy("queue", Options(nil, logs)...)

	stack.Reallocated(4, 8, 4)
	queue.Reallocated(4, 8, 3)
	stack.Reallocated(8, 16, 8)
	stack.Trimmed(16, 9)

	if diff := cmp.Diff([]int{8, 16}, rec.Capacities()); diff != "" {
		t.Errorf("%T.Capacities() diff (-want +got):\n%s", rec, diff)
	}

	tests := []struct {
		container string
		want      []growth.Event
	}{
		{
			container: "stack",
			want: []growth.Event{
				{Container: "stack", From: 4, To: 8, Live: 4},
				{Container: "stack", From: 8, To: 16, Live: 8},
			},
		},
		{
			container: "queue",
			want:      []growth.Event{{Container: "queue", From: 4, To: 8, Live: 3}},
		},
		{
			container: "",
			want: []growth.Event{
				{Container: "stack", From: 4, To: 8, Live: 4},
				{Container: "queue", From: 4, To: 8, Live: 3},
				{Container: "stack", From: 8, To: 16, Live: 8},
			},
		},
	}
	for _, tt := range tests {
		if diff := cmp.Diff(tt.want, logs.Reallocations(tt.container)); diff != "" {
			t.Errorf("%T.Reallocations(%q) diff (-want +got):\n%s", logs, tt.container, diff)
		}
	}

	assert.Equal(t, []Trim{{Container: "stack", From: 16, To: 9}}, logs.Trims(""), "Trims()")
	assert.Empty(t, logs.Trims("queue"), "Trims(queue)")
}

func TestTBLogger(t *testing.T) {
	log := NewTBLogger(t, logging.Debug)
	log.Debug("written to test output", zap.Int("n", 1))
	log.Info("also written")
}
