// Copyright (C) 2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package arraylist implements a growable, random-access array.
package arraylist

import (
	"iter"

	"github.com/ava-labs/avalanchego/utils"

	"github.com/ava-labs/linear/bounds"
	"github.com/ava-labs/linear/growth"
)

const label = "array"

// A List is a contiguous, random-access sequence with amortised constant-time
// appends. The zero value is an empty List with no capacity. A List is not safe
// for concurrent use.
type List[T comparable] struct {
	items  []T // len(items) MUST == cap(items); only items[:n] are live
	n      int // 0 <= n <= len(items)
	policy *growth.Policy
}

// New returns an empty List with [growth.DefaultCapacity].
func New[T comparable](opts ...growth.Option) *List[T] {
	return newList[T](growth.DefaultCapacity, opts)
}

// WithCapacity returns an empty List able to hold `c` elements before growing.
// It returns an [bounds.ErrInvalidArgument] error if `c` is negative.
func WithCapacity[T comparable](c int, opts ...growth.Option) (*List[T], error) {
	if err := bounds.CheckCapacity(c); err != nil {
		return nil, err
	}
	return newList[T](c, opts), nil
}

// From returns a List holding all elements of `seq`, in iteration order. It
// returns an [bounds.ErrInvalidArgument] error if `seq` is nil.
func From[T comparable](seq iter.Seq[T], opts ...growth.Option) (*List[T], error) {
	if seq == nil {
		return nil, bounds.NilSource()
	}
	l := New[T](opts...)
	for x := range seq {
		l.Add(x)
	}
	return l, nil
}

// FromSlice returns a List holding a copy of `s`.
func FromSlice[T comparable](s []T, opts ...growth.Option) *List[T] {
	l := newList[T](max(len(s), growth.DefaultCapacity), opts)
	l.n = copy(l.items, s)
	return l
}

func newList[T comparable](c int, opts []growth.Option) *List[T] {
	return &List[T]{
		items:  make([]T, c),
		policy: growth.NewPolicy(label, opts...),
	}
}

// Len returns the number of elements in the List.
func (l *List[T]) Len() int {
	return l.n
}

// Cap returns the number of elements the List can hold before growing.
func (l *List[T]) Cap() int {
	return len(l.items)
}

// IsEmpty returns whether the List has no elements.
func (l *List[T]) IsEmpty() bool {
	return l.n == 0
}

// Get returns the i'th element.
func (l *List[T]) Get(i int) (T, error) {
	if err := bounds.CheckIndex(i, l.n); err != nil {
		return utils.Zero[T](), err
	}
	return l.items[i], nil
}

// Set overwrites the i'th element.
func (l *List[T]) Set(i int, x T) error {
	if err := bounds.CheckIndex(i, l.n); err != nil {
		return err
	}
	l.items[i] = x
	return nil
}

// Add appends `x` to the List.
func (l *List[T]) Add(x T) {
	l.ensure(l.n + 1)
	l.items[l.n] = x
	l.n++
}

// AddAll appends all of `xs`, growing at most once.
func (l *List[T]) AddAll(xs ...T) {
	l.ensure(l.n + len(xs))
	l.n += copy(l.items[l.n:], xs)
}

// Insert inserts `x` at index `i`, shifting elements `[i,Len())` one slot to
// the right. Inserting at `Len()` is equivalent to [List.Add].
func (l *List[T]) Insert(i int, x T) error {
	if err := bounds.CheckInsert(i, l.n); err != nil {
		return err
	}
	l.ensure(l.n + 1)
	copy(l.items[i+1:l.n+1], l.items[i:l.n])
	l.items[i] = x
	l.n++
	return nil
}

// RemoveAt removes the i'th element, shifting elements `(i,Len())` one slot to
// the left.
func (l *List[T]) RemoveAt(i int) error {
	if err := bounds.CheckIndex(i, l.n); err != nil {
		return err
	}
	copy(l.items[i:], l.items[i+1:l.n])
	l.n--
	l.items[l.n] = utils.Zero[T]()
	return nil
}

// Remove removes the first element equal to `x`, returning whether one was
// found.
func (l *List[T]) Remove(x T) bool {
	i := l.IndexOf(x)
	if i == bounds.NotFound {
		return false
	}
	// Can't fail as `i` came from a search over the live window.
	_ = l.RemoveAt(i)
	return true
}

// IndexOf returns the index of the first element equal to `x`, or
// [bounds.NotFound].
func (l *List[T]) IndexOf(x T) int {
	return l.IndexOfFrom(x, 0)
}

// IndexOfFrom is equivalent to [List.IndexOf] except that the search begins at
// index `start`. A `start` outside of `[0,Len()]` finds nothing.
func (l *List[T]) IndexOfFrom(x T, start int) int {
	if start < 0 {
		return bounds.NotFound
	}
	for i := start; i < l.n; i++ {
		if l.items[i] == x {
			return i
		}
	}
	return bounds.NotFound
}

// Contains returns whether any element is equal to `x`.
func (l *List[T]) Contains(x T) bool {
	return l.IndexOf(x) != bounds.NotFound
}

// Clear removes all elements without releasing storage.
func (l *List[T]) Clear() {
	clear(l.items[:l.n])
	l.n = 0
}

// CopyTo copies all elements into `dst`, starting at `dst[at]`. If an error is
// returned then `dst` is unmodified.
func (l *List[T]) CopyTo(dst []T, at int) error {
	if err := bounds.CheckCopy(dst, at, l.n); err != nil {
		return err
	}
	copy(dst[at:], l.items[:l.n])
	return nil
}

// Clone returns a List with a copy of the receiver's storage, including spare
// capacity. Elements themselves are copied shallowly. The clone shares the
// receiver's [growth.Policy], so its reallocations are reported to the same
// logger and observers.
func (l *List[T]) Clone() *List[T] {
	c := &List[T]{
		items:  make([]T, len(l.items)),
		n:      l.n,
		policy: l.policy,
	}
	copy(c.items, l.items[:l.n])
	return c
}

// Grow increases the List's capacity, if necessary, to hold at least `n`
// elements without further reallocation. Unlike growth triggered by appending,
// the new capacity is exactly `n`.
func (l *List[T]) Grow(n int) {
	if n <= len(l.items) {
		return
	}
	l.realloc(n)
}

// All returns an iterator over the List's elements in index order. The List
// MUST NOT be structurally modified during iteration.
func (l *List[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, x := range l.items[:l.n] {
			if !yield(x) {
				return
			}
		}
	}
}

// ensure grows the List's storage, by doubling, to hold at least `need`
// elements.
func (l *List[T]) ensure(need int) {
	if need <= len(l.items) {
		return
	}
	l.realloc(growth.Next(len(l.items), need))
}

func (l *List[T]) realloc(c int) {
	from := len(l.items)
	l.items = growth.Realloc(l.items[:l.n], c)
	l.policy.Reallocated(from, c, l.n)
}
