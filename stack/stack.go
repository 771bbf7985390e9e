// Copyright (C) 2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package stack implements a last-in, first-out stack over a growable array.
package stack

import (
	"iter"

	"github.com/ava-labs/avalanchego/utils"

	"github.com/ava-labs/linear/bounds"
	"github.com/ava-labs/linear/growth"
)

const label = "stack"

// A Stack is a LIFO stack with constant-time popping and amortised
// constant-time pushing. The zero value is an empty Stack with no capacity. A
// Stack is not safe for concurrent use.
//
// Methods that expose more than one element (iteration, copying) do so in pop
// order, i.e. from the top of the Stack down.
type Stack[T comparable] struct {
	items  []T // len(items) MUST == cap(items); items[n-1] is the top
	n      int
	policy *growth.Policy
}

// New returns an empty Stack with [growth.DefaultCapacity].
func New[T comparable](opts ...growth.Option) *Stack[T] {
	return newStack[T](growth.DefaultCapacity, opts)
}

// WithCapacity returns an empty Stack able to hold `c` elements before growing.
// It returns an [bounds.ErrInvalidArgument] error if `c` is negative.
func WithCapacity[T comparable](c int, opts ...growth.Option) (*Stack[T], error) {
	if err := bounds.CheckCapacity(c); err != nil {
		return nil, err
	}
	return newStack[T](c, opts), nil
}

// From returns a Stack onto which every element of `seq` has been pushed, in
// iteration order, leaving the last one on top. It returns an
// [bounds.ErrInvalidArgument] error if `seq` is nil.
func From[T comparable](seq iter.Seq[T], opts ...growth.Option) (*Stack[T], error) {
	if seq == nil {
		return nil, bounds.NilSource()
	}
	s := New[T](opts...)
	for x := range seq {
		s.Push(x)
	}
	return s, nil
}

// FromSlice is equivalent to [From] with the elements of `xs`.
func FromSlice[T comparable](xs []T, opts ...growth.Option) *Stack[T] {
	s := newStack[T](max(len(xs), growth.DefaultCapacity), opts)
	s.n = copy(s.items, xs)
	return s
}

func newStack[T comparable](c int, opts []growth.Option) *Stack[T] {
	return &Stack[T]{
		items:  make([]T, c),
		policy: growth.NewPolicy(label, opts...),
	}
}

// Len returns the number of elements in the Stack.
func (s *Stack[T]) Len() int {
	return s.n
}

// Cap returns the number of elements the Stack can hold before growing.
func (s *Stack[T]) Cap() int {
	return len(s.items)
}

// IsEmpty returns whether the Stack has no elements.
func (s *Stack[T]) IsEmpty() bool {
	return s.n == 0
}

// Push places `x` on top of the Stack.
func (s *Stack[T]) Push(x T) {
	if s.n == len(s.items) {
		from := len(s.items)
		to := growth.Next(from, s.n+1)
		s.items = growth.Realloc(s.items[:s.n], to)
		s.policy.Reallocated(from, to, s.n)
	}
	s.items[s.n] = x
	s.n++
}

// Pop removes and returns the top element. It returns an
// [bounds.ErrInvalidState] error if the Stack is empty.
func (s *Stack[T]) Pop() (T, error) {
	x, ok := s.TryPop()
	if !ok {
		return x, bounds.Empty(label)
	}
	return x, nil
}

// TryPop is equivalent to [Stack.Pop] except that it reports an empty Stack by
// returning false instead of an error.
func (s *Stack[T]) TryPop() (T, bool) {
	if s.n == 0 {
		return utils.Zero[T](), false
	}
	s.n--
	x := s.items[s.n]
	s.items[s.n] = utils.Zero[T]()
	return x, true
}

// Peek returns the top element without removing it. It returns an
// [bounds.ErrInvalidState] error if the Stack is empty.
func (s *Stack[T]) Peek() (T, error) {
	x, ok := s.TryPeek()
	if !ok {
		return x, bounds.Empty(label)
	}
	return x, nil
}

// TryPeek is equivalent to [Stack.Peek] except that it reports an empty Stack
// by returning false instead of an error.
func (s *Stack[T]) TryPeek() (T, bool) {
	if s.n == 0 {
		return utils.Zero[T](), false
	}
	return s.items[s.n-1], true
}

// Contains returns whether any element is equal to `x`.
func (s *Stack[T]) Contains(x T) bool {
	for _, y := range s.items[:s.n] {
		if y == x {
			return true
		}
	}
	return false
}

// CopyTo copies all elements into `dst` in pop order, starting at `dst[at]`.
// If an error is returned then `dst` is unmodified.
func (s *Stack[T]) CopyTo(dst []T, at int) error {
	if err := bounds.CheckCopy(dst, at, s.n); err != nil {
		return err
	}
	s.copyInto(dst[at:])
	return nil
}

func (s *Stack[T]) copyInto(dst []T) {
	for i := range s.n {
		dst[i] = s.items[s.n-1-i]
	}
}

// ToArray returns a newly allocated slice of exactly `Len()` elements, in pop
// order.
func (s *Stack[T]) ToArray() []T {
	out := make([]T, s.n)
	s.copyInto(out)
	return out
}

// Clear removes all elements without releasing storage.
func (s *Stack[T]) Clear() {
	clear(s.items[:s.n])
	s.n = 0
}

// TrimExcess reallocates the Stack's storage to exactly `Len()` elements.
func (s *Stack[T]) TrimExcess() {
	if s.n == len(s.items) {
		return
	}
	from := len(s.items)
	s.items = growth.Realloc(s.items[:s.n], s.n)
	s.policy.Trimmed(from, s.n)
}

// All returns an iterator over the Stack's elements in pop order, without
// removing them. The Stack MUST NOT be modified during iteration.
func (s *Stack[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := s.n - 1; i >= 0; i-- {
			if !yield(s.items[i]) {
				return
			}
		}
	}
}
