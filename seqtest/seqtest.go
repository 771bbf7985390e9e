// Copyright (C) 2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package seqtest provides testing helpers for the containers in this module.
package seqtest

import (
	"testing"

	"go.uber.org/goleak"

	"github.com/ava-labs/linear/growth"
)

// NoLeak calls [goleak.VerifyTestMain] with [goleak.IgnoreCurrent]. None of
// the containers start goroutines, so any leak is a bug in the test itself.
func NoLeak(m *testing.M) {
	goleak.VerifyTestMain(m, goleak.IgnoreCurrent())
}

// A GrowthRecorder is a [growth.Observer] that stores every [growth.Event].
type GrowthRecorder struct {
	Events []growth.Event
}

var _ growth.Observer = (*GrowthRecorder)(nil)

// ObserveGrowth records `e`.
func (r *GrowthRecorder) ObserveGrowth(e growth.Event) {
	r.Events = append(r.Events, e)
}

// Capacities returns the post-reallocation capacity of every recorded event, in
// order.
func (r *GrowthRecorder) Capacities() []int {
	out := make([]int, len(r.Events))
	for i, e := range r.Events {
		out[i] = e.To
	}
	return out
}

// Options returns [growth.Option]s wiring both `r` and `log` into a container.
// Either MAY be nil.
func Options(r *GrowthRecorder, log *LogRecorder) []growth.Option {
	var opts []growth.Option
	if r != nil {
		opts = append(opts, growth.WithObserver(r))
	}
	if log != nil {
		opts = append(opts, growth.WithLogger(log))
	}
	return opts
}
