// Copyright (C) 2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ava-labs/linear/arraylist"
	"github.com/ava-labs/linear/growth"
	"github.com/ava-labs/linear/queue"
	"github.com/ava-labs/linear/seqtest"
)

func TestMain(m *testing.M) {
	seqtest.NoLeak(m)
}

func TestGrowthObserver(t *testing.T) {
	reg := prometheus.NewRegistry()
	o, err := NewGrowthObserver(reg)
	require.NoError(t, err)

	q := queue.New[int](growth.WithObserver(o))
	for i := range 9 {
		q.Enqueue(i) // 4 -> 8 -> 16
	}
	l := arraylist.New[int](growth.WithObserver(o))
	for i := range 5 {
		l.Add(i) // 4 -> 8
	}

	for _, tt := range []struct {
		container                  string
		reallocs, copied, capacity float64
	}{
		{container: "queue", reallocs: 2, copied: 4 + 8, capacity: 16},
		{container: "array", reallocs: 1, copied: 4, capacity: 8},
	} {
		t.Run(tt.container, func(t *testing.T) {
			assert.Equal(t, tt.reallocs, testutil.ToFloat64(o.reallocations.WithLabelValues(tt.container)), "reallocations")
			assert.Equal(t, tt.copied, testutil.ToFloat64(o.copied.WithLabelValues(tt.container)), "copied elements")
			assert.Equal(t, tt.capacity, testutil.ToFloat64(o.capacity.WithLabelValues(tt.container)), "capacity")
		})
	}

	n, err := testutil.GatherAndCount(reg)
	require.NoError(t, err)
	assert.Equal(t, 6, n, "labelled series across all metrics")
}

func TestDuplicateRegistration(t *testing.T) {
	reg := prometheus.NewRegistry()
	_, err := NewGrowthObserver(reg)
	require.NoError(t, err)
	_, err = NewGrowthObserver(reg)
	require.Error(t, err, "registering twice with the same Registerer")
}
