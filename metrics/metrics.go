// Copyright (C) 2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package metrics exports container growth as Prometheus metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/ava-labs/linear/growth"
)

const (
	namespace = "linear"
	subsystem = "growth"
	label     = "container"
)

// A GrowthObserver is a [growth.Observer] that records every reallocation in
// Prometheus collectors, labelled by container kind.
type GrowthObserver struct {
	reallocations *prometheus.CounterVec
	copied        *prometheus.CounterVec
	capacity      *prometheus.GaugeVec
}

var _ growth.Observer = (*GrowthObserver)(nil)

// NewGrowthObserver constructs a [GrowthObserver] and registers its collectors
// with `reg`.
func NewGrowthObserver(reg prometheus.Registerer) (*GrowthObserver, error) {
	o := &GrowthObserver{
		reallocations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "reallocations_total",
			Help:      "Number of times container storage was reallocated.",
		}, []string{label}),
		copied: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "copied_elements_total",
			Help:      "Number of live elements copied into reallocated storage.",
		}, []string{label}),
		capacity: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "capacity",
			Help:      "Capacity after the most recent reallocation.",
		}, []string{label}),
	}
	for _, c := range []prometheus.Collector{
		o.reallocations,
		o.copied,
		o.capacity,
	} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}
	return o, nil
}

// ObserveGrowth updates all collectors from `e`.
func (o *GrowthObserver) ObserveGrowth(e growth.Event) {
	o.reallocations.WithLabelValues(e.Container).Inc()
	o.copied.WithLabelValues(e.Container).Add(float64(e.Live))
	o.capacity.WithLabelValues(e.Container).Set(float64(e.To))
}
