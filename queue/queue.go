// Copyright (C) 2025-2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package queue implements a first-in, first-out queue over a growable
// circular buffer.
package queue

import (
	"iter"

	"github.com/ava-labs/avalanchego/utils"

	"github.com/ava-labs/linear/bounds"
	"github.com/ava-labs/linear/growth"
)

const label = "queue"

// A Queue is a FIFO queue with constant-time dequeuing and amortised
// constant-time enqueuing. The zero value is an empty Queue with no capacity. A
// Queue is not safe for concurrent use.
//
// Elements occupy the ring starting at `start` and wrapping around for `n`
// slots. The position of the most recently enqueued element, if any, is
// therefore `(start+n-1) mod cap`. Positions are reduced modulo capacity on
// every update so that they can never overflow, however long the Queue lives.
type Queue[T comparable] struct {
	ring   []T // len(ring) MUST == cap(ring)
	start  int // 0 <= start < len(ring), or 0 if len(ring) == 0
	n      int // 0 <= n <= len(ring)
	policy *growth.Policy
}

// New returns an empty Queue with [growth.DefaultCapacity].
func New[T comparable](opts ...growth.Option) *Queue[T] {
	return newQueue[T](growth.DefaultCapacity, opts)
}

// WithCapacity returns an empty Queue able to hold `c` elements before growing.
// It returns an [bounds.ErrInvalidArgument] error if `c` is negative.
func WithCapacity[T comparable](c int, opts ...growth.Option) (*Queue[T], error) {
	if err := bounds.CheckCapacity(c); err != nil {
		return nil, err
	}
	return newQueue[T](c, opts), nil
}

// From returns a Queue holding all elements of `seq`, the first of which is at
// the front. It returns an [bounds.ErrInvalidArgument] error if `seq` is nil.
func From[T comparable](seq iter.Seq[T], opts ...growth.Option) (*Queue[T], error) {
	if seq == nil {
		return nil, bounds.NilSource()
	}
	q := New[T](opts...)
	for x := range seq {
		q.Enqueue(x)
	}
	return q, nil
}

// FromSlice returns a Queue holding a copy of `s`, with `s[0]` at the front.
func FromSlice[T comparable](s []T, opts ...growth.Option) *Queue[T] {
	q := newQueue[T](max(len(s), growth.DefaultCapacity), opts)
	q.n = copy(q.ring, s)
	return q
}

func newQueue[T comparable](c int, opts []growth.Option) *Queue[T] {
	return &Queue[T]{
		ring:   make([]T, c),
		policy: growth.NewPolicy(label, opts...),
	}
}

// Cap returns the number of elements the Queue can hold before growing.
func (q *Queue[T]) Cap() int {
	return len(q.ring)
}

// Len returns the number of elements in the Queue.
func (q *Queue[T]) Len() int {
	return q.n
}

// IsEmpty returns whether the Queue has no elements.
func (q *Queue[T]) IsEmpty() bool {
	return q.n == 0
}

func (q *Queue[T]) mod(i int) int {
	return i % q.Cap()
}

// ringIndex returns the index in the ring of the i'th element, for `i` in
// `[0,Cap()]`. The Queue MUST have non-zero capacity.
func (q *Queue[T]) ringIndex(i int) int {
	return q.mod(q.start + i)
}

// nextRingIndex returns the index in the ring at which a new element should be
// written when enqueuing. If the Queue is at capacity, it always returns (0,
// false), and [Queue.grow] should be called.
func (q *Queue[T]) nextRingIndex() (_ int, hasCap bool) {
	if q.n == q.Cap() {
		return 0, false
	}
	return q.ringIndex(q.n), true
}

// Enqueue adds `x` to the back of the Queue. If the Queue is full, its
// capacity is doubled.
func (q *Queue[T]) Enqueue(x T) {
	for {
		if idx, hasCap := q.nextRingIndex(); hasCap {
			q.ring[idx] = x
			q.n++
			return
		}
		q.grow(growth.Next(q.Cap(), q.n+1))
	}
}

// Dequeue removes and returns the element at the front of the Queue. It
// returns an [bounds.ErrInvalidState] error if the Queue is empty.
func (q *Queue[T]) Dequeue() (T, error) {
	x, ok := q.TryDequeue()
	if !ok {
		return x, bounds.Empty(label)
	}
	return x, nil
}

// TryDequeue is equivalent to [Queue.Dequeue] except that it reports an empty
// Queue by returning false instead of an error.
func (q *Queue[T]) TryDequeue() (T, bool) {
	if q.n == 0 {
		return utils.Zero[T](), false
	}
	x := q.ring[q.start]
	q.ring[q.start] = utils.Zero[T]()
	q.start = q.ringIndex(1)
	q.n--
	return x, true
}

// Peek returns the element at the front of the Queue without removing it. It
// returns an [bounds.ErrInvalidState] error if the Queue is empty.
func (q *Queue[T]) Peek() (T, error) {
	x, ok := q.TryPeek()
	if !ok {
		return x, bounds.Empty(label)
	}
	return x, nil
}

// TryPeek is equivalent to [Queue.Peek] except that it reports an empty Queue
// by returning false instead of an error.
func (q *Queue[T]) TryPeek() (T, bool) {
	if q.n == 0 {
		return utils.Zero[T](), false
	}
	return q.ring[q.start], true
}

// Contains returns whether any element is equal to `x`.
func (q *Queue[T]) Contains(x T) bool {
	for y := range q.All() {
		if y == x {
			return true
		}
	}
	return false
}

// segments returns the live window as at most two contiguous slices of the
// ring, which together hold the elements in FIFO order.
func (q *Queue[T]) segments() (head, wrapped []T) {
	if q.n == 0 {
		return nil, nil
	}
	if end := q.start + q.n; end <= q.Cap() {
		return q.ring[q.start:end], nil
	}
	return q.ring[q.start:], q.ring[:q.ringIndex(q.n)]
}

// CopyTo copies all elements into `dst` in FIFO order, starting at `dst[at]`.
// If an error is returned then `dst` is unmodified.
func (q *Queue[T]) CopyTo(dst []T, at int) error {
	if err := bounds.CheckCopy(dst, at, q.n); err != nil {
		return err
	}
	q.copyInto(dst[at:])
	return nil
}

func (q *Queue[T]) copyInto(dst []T) {
	head, wrapped := q.segments()
	copy(dst[copy(dst, head):], wrapped)
}

// ToArray returns a newly allocated slice of exactly `Len()` elements, in FIFO
// order.
func (q *Queue[T]) ToArray() []T {
	out := make([]T, q.n)
	q.copyInto(out)
	return out
}

// Clear removes all elements without releasing storage.
func (q *Queue[T]) Clear() {
	head, wrapped := q.segments()
	clear(head)
	clear(wrapped)
	q.start = 0
	q.n = 0
}

// TrimExcess reallocates the Queue's storage to exactly `Len()` elements.
func (q *Queue[T]) TrimExcess() {
	if q.n == q.Cap() && q.start == 0 {
		return
	}
	from := q.Cap()
	q.ring = q.ToArray()
	q.start = 0
	q.policy.Trimmed(from, q.n)
}

// Grow increases the Queue's capacity, if necessary, to hold at least `n`
// elements without further reallocation. Unlike growth triggered by
// enqueuing, the new capacity is exactly `n`.
func (q *Queue[T]) Grow(n int) {
	q.grow(n)
}

// grow re-linearises the Queue into new storage of capacity `n`, if that is
// larger than the current capacity. It is O(Len()).
func (q *Queue[T]) grow(n int) {
	if n <= q.Cap() {
		return
	}
	from := q.Cap()
	b := make([]T, n)
	q.copyInto(b)

	q.ring = b
	q.start = 0
	q.policy.Reallocated(from, n, q.n)
}

// Clone returns a Queue with independent storage of the same capacity, holding
// shallow copies of the receiver's elements in the same order. The clone shares
// the receiver's [growth.Policy], so its reallocations are reported to the same
// logger and observers.
func (q *Queue[T]) Clone() *Queue[T] {
	c := &Queue[T]{
		ring:   make([]T, q.Cap()),
		n:      q.n,
		policy: q.policy,
	}
	q.copyInto(c.ring)
	return c
}

// All returns an iterator over the Queue's elements in FIFO order, without
// removing them. The Queue MUST NOT be modified during iteration.
func (q *Queue[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		head, wrapped := q.segments()
		for _, s := range [...][]T{head, wrapped} {
			for _, x := range s {
				if !yield(x) {
					return
				}
			}
		}
	}
}
