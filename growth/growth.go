// Copyright (C) 2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package growth implements the amortised-doubling storage policy shared by
// the slice-backed containers.
//
// The policy only decides capacities and reports reallocations; each container
// remains responsible for copying its own live window, since a linear
// container and a circular one lay their elements out differently.
package growth

import (
	"github.com/ava-labs/avalanchego/utils/logging"
	"go.uber.org/zap"

	"github.com/ava-labs/linear/intmath"
)

// DefaultCapacity is the capacity of a container constructed without an
// explicit one, and the first capacity of a container grown from zero.
const DefaultCapacity = 4

// Next returns the capacity to which storage of capacity `cur` MUST grow to
// hold `need` elements. It doubles `cur` (or starts at [DefaultCapacity] if
// `cur` is zero) until the result is at least `need`. If `cur >= need` it is
// returned unchanged.
func Next(cur, need int) int {
	c := cur
	if c >= need {
		return c
	}
	if c <= 0 {
		c = DefaultCapacity
	}
	for c < need {
		d, err := intmath.Double(c)
		if err != nil {
			return need
		}
		c = d
	}
	return c
}

// Messages logged by a [Policy], at DEBUG.
const (
	ReallocatedMsg = "Reallocated container storage"
	TrimmedMsg     = "Trimmed container storage"
)

// An Event describes a single reallocation of a container's storage.
type Event struct {
	// Container labels the kind of container, e.g. "queue".
	Container string
	// From and To are the capacities before and after reallocation.
	From, To int
	// Live is the number of elements copied into the new storage.
	Live int
}

// An Observer is notified of every reallocation performed under a [Policy].
type Observer interface {
	ObserveGrowth(Event)
}

// ObserverFunc adapts a function to an [Observer].
type ObserverFunc func(Event)

// ObserveGrowth calls `f(e)`.
func (f ObserverFunc) ObserveGrowth(e Event) { f(e) }

// An Option configures a [Policy].
type Option func(*Policy)

// WithLogger sets the logger to which reallocations are reported at DEBUG.
func WithLogger(l logging.Logger) Option {
	return func(p *Policy) {
		p.log = l
	}
}

// WithObserver adds an [Observer] of reallocations.
func WithObserver(o Observer) Option {
	return func(p *Policy) {
		p.observers = append(p.observers, o)
	}
}

// A Policy reports storage reallocations on behalf of a single container. A
// nil Policy is valid and reports nothing, which allows containers to have
// usable zero values.
type Policy struct {
	container string
	log       logging.Logger
	observers []Observer
}

// NewPolicy constructs a [Policy] for the labelled kind of container.
func NewPolicy(container string, opts ...Option) *Policy {
	p := &Policy{
		container: container,
		log:       logging.NoLog{},
	}
	for _, o := range opts {
		o(p)
	}
	if p.log == nil {
		p.log = logging.NoLog{}
	}
	return p
}

// Logger returns the Policy's logger, which is never nil.
func (p *Policy) Logger() logging.Logger {
	if p == nil {
		return logging.NoLog{}
	}
	return p.log
}

// Reallocated reports that storage was moved from capacity `from` to `to`,
// carrying `live` elements with it.
func (p *Policy) Reallocated(from, to, live int) {
	if p == nil {
		return
	}
	p.log.Debug(ReallocatedMsg,
		zap.String("container", p.container),
		zap.Int("from_capacity", from),
		zap.Int("to_capacity", to),
		zap.Int("live", live),
	)
	if len(p.observers) == 0 {
		return
	}
	e := Event{
		Container: p.container,
		From:      from,
		To:        to,
		Live:      live,
	}
	for _, o := range p.observers {
		o.ObserveGrowth(e)
	}
}

// Trimmed reports that storage was shrunk from capacity `from` to `to`. Trims
// are only logged; observers are not notified.
func (p *Policy) Trimmed(from, to int) {
	if p == nil {
		return
	}
	p.log.Debug(TrimmedMsg,
		zap.String("container", p.container),
		zap.Int("from_capacity", from),
		zap.Int("to_capacity", to),
	)
}

// Realloc returns a new slice of length `n` holding a copy of `live`. The
// caller is responsible for passing the live window in logical order.
func Realloc[T any](live []T, n int) []T {
	if n < len(live) {
		panic("reallocating to fewer slots than live elements")
	}
	b := make([]T, n)
	copy(b, live)
	return b
}
