// Copyright (C) 2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package linkedlist implements a doubly linked list.
package linkedlist

import (
	"iter"

	"github.com/ava-labs/avalanchego/utils"

	"github.com/ava-labs/linear/bounds"
)

// A node is owned by its predecessor (or by the List, for the head) through
// the `next` link. The `prev` link is a back-reference used only for traversal
// and relinking.
type node[T comparable] struct {
	data       T
	prev, next *node[T]
}

// A List is a doubly linked sequence with constant-time insertion and removal
// at either end. The zero value is an empty List. A List is not safe for
// concurrent use.
//
// Invariants after every method call:
//   - head == nil iff tail == nil iff n == 0
//   - head.prev == nil and tail.next == nil
//   - for all internal nodes x: x.prev.next == x and x.next.prev == x
//   - n is the number of nodes reachable from head
type List[T comparable] struct {
	head, tail *node[T]
	n          int
}

// New returns an empty List.
func New[T comparable]() *List[T] {
	return new(List[T])
}

// From returns a List holding all elements of `seq`, in iteration order. It
// returns an [bounds.ErrInvalidArgument] error if `seq` is nil.
func From[T comparable](seq iter.Seq[T]) (*List[T], error) {
	if seq == nil {
		return nil, bounds.NilSource()
	}
	l := New[T]()
	for x := range seq {
		l.AddLast(x)
	}
	return l, nil
}

// FromSlice returns a List holding the elements of `s`.
func FromSlice[T comparable](s []T) *List[T] {
	l := New[T]()
	for _, x := range s {
		l.AddLast(x)
	}
	return l
}

// Len returns the number of elements in the List.
func (l *List[T]) Len() int {
	return l.n
}

// IsEmpty returns whether the List has no elements.
func (l *List[T]) IsEmpty() bool {
	return l.n == 0
}

// First returns the first element, and false iff the List is empty.
func (l *List[T]) First() (T, bool) {
	if l.head == nil {
		return utils.Zero[T](), false
	}
	return l.head.data, true
}

// Last returns the last element, and false iff the List is empty.
func (l *List[T]) Last() (T, bool) {
	if l.tail == nil {
		return utils.Zero[T](), false
	}
	return l.tail.data, true
}

// AddFirst prepends `x`.
func (l *List[T]) AddFirst(x T) {
	nd := &node[T]{data: x, next: l.head}
	if l.head != nil {
		l.head.prev = nd
	} else {
		l.tail = nd
	}
	l.head = nd
	l.n++
}

// AddLast appends `x`.
func (l *List[T]) AddLast(x T) {
	nd := &node[T]{data: x, prev: l.tail}
	if l.tail != nil {
		l.tail.next = nd
	} else {
		l.head = nd
	}
	l.tail = nd
	l.n++
}

// Add is equivalent to [List.AddLast].
func (l *List[T]) Add(x T) {
	l.AddLast(x)
}

// Insert inserts `x` such that it becomes the i'th element. Inserting at
// `Len()` is equivalent to [List.AddLast].
func (l *List[T]) Insert(i int, x T) error {
	if err := bounds.CheckInsert(i, l.n); err != nil {
		return err
	}
	switch i {
	case 0:
		l.AddFirst(x)
	case l.n:
		l.AddLast(x)
	default:
		at := l.nodeAt(i)
		nd := &node[T]{data: x, prev: at.prev, next: at}
		// `at` isn't the head, otherwise i == 0.
		at.prev.next = nd
		at.prev = nd
		l.n++
	}
	return nil
}

// InsertAt is equivalent to [List.Insert] with its arguments reversed.
func (l *List[T]) InsertAt(x T, i int) error {
	return l.Insert(i, x)
}

// RemoveFirst removes the first element, returning false iff the List was
// empty.
func (l *List[T]) RemoveFirst() bool {
	if l.head == nil {
		return false
	}
	l.unlink(l.head)
	return true
}

// RemoveLast removes the last element, returning false iff the List was empty.
func (l *List[T]) RemoveLast() bool {
	if l.tail == nil {
		return false
	}
	l.unlink(l.tail)
	return true
}

// RemoveAt removes the i'th element.
func (l *List[T]) RemoveAt(i int) error {
	if err := bounds.CheckIndex(i, l.n); err != nil {
		return err
	}
	l.unlink(l.nodeAt(i))
	return nil
}

// Remove removes the first element equal to `x`, returning whether one was
// found.
func (l *List[T]) Remove(x T) bool {
	nd, _ := l.find(x)
	if nd == nil {
		return false
	}
	l.unlink(nd)
	return true
}

// IndexOf returns the index of the first element equal to `x`, or
// [bounds.NotFound].
func (l *List[T]) IndexOf(x T) int {
	_, i := l.find(x)
	return i
}

// Contains returns whether any element is equal to `x`.
func (l *List[T]) Contains(x T) bool {
	nd, _ := l.find(x)
	return nd != nil
}

// Get returns the i'th element. It is O(i).
func (l *List[T]) Get(i int) (T, error) {
	if err := bounds.CheckIndex(i, l.n); err != nil {
		return utils.Zero[T](), err
	}
	return l.nodeAt(i).data, nil
}

// Set overwrites the i'th element. It is O(i).
func (l *List[T]) Set(i int, x T) error {
	if err := bounds.CheckIndex(i, l.n); err != nil {
		return err
	}
	l.nodeAt(i).data = x
	return nil
}

// Clear removes all elements.
func (l *List[T]) Clear() {
	l.head = nil
	l.tail = nil
	l.n = 0
}

// CopyTo copies all elements into `dst`, starting at `dst[at]`. If an error is
// returned then `dst` is unmodified.
func (l *List[T]) CopyTo(dst []T, at int) error {
	if err := bounds.CheckCopy(dst, at, l.n); err != nil {
		return err
	}
	for nd := l.head; nd != nil; nd = nd.next {
		dst[at] = nd.data
		at++
	}
	return nil
}

// Clone returns a List with newly allocated nodes holding shallow copies of the
// receiver's elements.
func (l *List[T]) Clone() *List[T] {
	c := New[T]()
	for nd := l.head; nd != nil; nd = nd.next {
		c.AddLast(nd.data)
	}
	return c
}

// All returns an iterator over the List's elements, from first to last. The
// List MUST NOT be structurally modified during iteration.
func (l *List[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for nd := l.head; nd != nil; nd = nd.next {
			if !yield(nd.data) {
				return
			}
		}
	}
}

// Backward returns an iterator over the List's elements, from last to first.
// The List MUST NOT be structurally modified during iteration.
func (l *List[T]) Backward() iter.Seq[T] {
	return func(yield func(T) bool) {
		for nd := l.tail; nd != nil; nd = nd.prev {
			if !yield(nd.data) {
				return
			}
		}
	}
}

// nodeAt returns the i'th node, which MUST exist.
func (l *List[T]) nodeAt(i int) *node[T] {
	nd := l.head
	for range i {
		nd = nd.next
	}
	return nd
}

// find returns the first node holding `x`, and its index. If there is no such
// node, it returns (nil, [bounds.NotFound]).
func (l *List[T]) find(x T) (*node[T], int) {
	i := 0
	for nd := l.head; nd != nil; nd = nd.next {
		if nd.data == x {
			return nd, i
		}
		i++
	}
	return nil, bounds.NotFound
}

// unlink removes `nd`, which MUST be in the List, and clears its links so that
// it retains no references into the chain.
func (l *List[T]) unlink(nd *node[T]) {
	switch {
	case nd.prev == nil:
		l.head = nd.next
		if l.head != nil {
			l.head.prev = nil
		} else {
			l.tail = nil
		}
	case nd.next == nil:
		l.tail = nd.prev
		l.tail.next = nil
	default:
		nd.next.prev = nd.prev
		nd.prev.next = nd.next
	}
	nd.prev = nil
	nd.next = nil
	l.n--
}
