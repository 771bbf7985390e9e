// Copyright (C) 2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package linkedlist

import (
	"iter"

	"github.com/ava-labs/linear/bounds"
)

// NonNil is a [List] that never holds nil elements. Every method that accepts
// an element returns a [bounds.ErrDisallowedNull] error, without modifying the
// list, if the element is nil. Searching for nil is an error too, rather than
// simply finding nothing.
//
// Methods without element arguments behave exactly as on [List].
type NonNil[T comparable] struct {
	l List[T]
}

// NewNonNil returns an empty [NonNil] list.
func NewNonNil[T comparable]() *NonNil[T] {
	return new(NonNil[T])
}

// NonNilFrom returns a [NonNil] list holding all elements of `seq`. It returns
// an [bounds.ErrInvalidArgument] error if `seq` is nil, or an
// [bounds.ErrDisallowedNull] error if any element is nil.
func NonNilFrom[T comparable](seq iter.Seq[T]) (*NonNil[T], error) {
	if seq == nil {
		return nil, bounds.NilSource()
	}
	l := NewNonNil[T]()
	for x := range seq {
		if err := l.AddLast(x); err != nil {
			return nil, err
		}
	}
	return l, nil
}

func check[T any](op string, x T) error {
	if bounds.IsNil(x) {
		return bounds.DisallowedNull(op)
	}
	return nil
}

// Len is equivalent to [List.Len].
func (l *NonNil[T]) Len() int { return l.l.Len() }

// IsEmpty is equivalent to [List.IsEmpty].
func (l *NonNil[T]) IsEmpty() bool { return l.l.IsEmpty() }

// First is equivalent to [List.First].
func (l *NonNil[T]) First() (T, bool) { return l.l.First() }

// Last is equivalent to [List.Last].
func (l *NonNil[T]) Last() (T, bool) { return l.l.Last() }

// Get is equivalent to [List.Get].
func (l *NonNil[T]) Get(i int) (T, error) { return l.l.Get(i) }

// RemoveFirst is equivalent to [List.RemoveFirst].
func (l *NonNil[T]) RemoveFirst() bool { return l.l.RemoveFirst() }

// RemoveLast is equivalent to [List.RemoveLast].
func (l *NonNil[T]) RemoveLast() bool { return l.l.RemoveLast() }

// RemoveAt is equivalent to [List.RemoveAt].
func (l *NonNil[T]) RemoveAt(i int) error { return l.l.RemoveAt(i) }

// Clear is equivalent to [List.Clear].
func (l *NonNil[T]) Clear() { l.l.Clear() }

// CopyTo is equivalent to [List.CopyTo].
func (l *NonNil[T]) CopyTo(dst []T, at int) error { return l.l.CopyTo(dst, at) }

// All is equivalent to [List.All].
func (l *NonNil[T]) All() iter.Seq[T] { return l.l.All() }

// Backward is equivalent to [List.Backward].
func (l *NonNil[T]) Backward() iter.Seq[T] { return l.l.Backward() }

// AddFirst is equivalent to [List.AddFirst].
func (l *NonNil[T]) AddFirst(x T) error {
	if err := check("AddFirst", x); err != nil {
		return err
	}
	l.l.AddFirst(x)
	return nil
}

// AddLast is equivalent to [List.AddLast].
func (l *NonNil[T]) AddLast(x T) error {
	if err := check("AddLast", x); err != nil {
		return err
	}
	l.l.AddLast(x)
	return nil
}

// Add is equivalent to [NonNil.AddLast].
func (l *NonNil[T]) Add(x T) error {
	return l.AddLast(x)
}

// Insert is equivalent to [List.Insert]. Bounds are checked before nil-ness.
func (l *NonNil[T]) Insert(i int, x T) error {
	if err := bounds.CheckInsert(i, l.l.n); err != nil {
		return err
	}
	if err := check("Insert", x); err != nil {
		return err
	}
	return l.l.Insert(i, x)
}

// InsertAt is equivalent to [NonNil.Insert] with its arguments reversed.
func (l *NonNil[T]) InsertAt(x T, i int) error {
	return l.Insert(i, x)
}

// Set is equivalent to [List.Set]. Bounds are checked before nil-ness.
func (l *NonNil[T]) Set(i int, x T) error {
	if err := bounds.CheckIndex(i, l.l.n); err != nil {
		return err
	}
	if err := check("Set", x); err != nil {
		return err
	}
	return l.l.Set(i, x)
}

// Remove is equivalent to [List.Remove].
func (l *NonNil[T]) Remove(x T) (bool, error) {
	if err := check("Remove", x); err != nil {
		return false, err
	}
	return l.l.Remove(x), nil
}

// IndexOf is equivalent to [List.IndexOf].
func (l *NonNil[T]) IndexOf(x T) (int, error) {
	if err := check("IndexOf", x); err != nil {
		return bounds.NotFound, err
	}
	return l.l.IndexOf(x), nil
}

// Contains is equivalent to [List.Contains].
func (l *NonNil[T]) Contains(x T) (bool, error) {
	if err := check("Contains", x); err != nil {
		return false, err
	}
	return l.l.Contains(x), nil
}

// Clone is equivalent to [List.Clone].
func (l *NonNil[T]) Clone() *NonNil[T] {
	return &NonNil[T]{l: *l.l.Clone()}
}
