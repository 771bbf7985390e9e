// Copyright (C) 2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package bounds defines the error kinds shared by all containers, along with
// the argument checks that produce them.
//
// Every check is performed before a container mutates any state, so a
// returned error always implies that the container is unchanged.
package bounds

import (
	"reflect"

	"github.com/cockroachdb/errors"
)

// NotFound is returned by index searches that find no matching element.
const NotFound = -1

// Error kinds. Concrete errors wrap exactly one of these (possibly being marked
// as another too) and MUST be tested with [errors.Is].
var (
	ErrOutOfRange      = errors.New("index out of range")
	ErrInvalidArgument = errors.New("invalid argument")
	ErrInvalidState    = errors.New("invalid state")
	ErrDisallowedNull  = errors.New("nil value disallowed")
)

// CheckIndex returns an [ErrOutOfRange] error iff `i` is not in `[0,n)`.
func CheckIndex(i, n int) error {
	if i < 0 || i >= n {
		return errors.Wrapf(ErrOutOfRange, "index %d not in [0,%d)", i, n)
	}
	return nil
}

// CheckInsert returns an [ErrOutOfRange] error iff `i` is not in `[0,n]`, i.e.
// insertion at `n` is an append and is valid.
func CheckInsert(i, n int) error {
	if i < 0 || i > n {
		return errors.Wrapf(ErrOutOfRange, "insertion index %d not in [0,%d]", i, n)
	}
	return nil
}

// CheckCapacity returns an [ErrInvalidArgument] error iff `c` is negative.
func CheckCapacity(c int) error {
	if c < 0 {
		return errors.Wrapf(ErrInvalidArgument, "negative capacity %d", c)
	}
	return nil
}

// CheckCopy validates copying `n` elements into `dst`, starting at `dst[at]`.
// A nil destination, or one with fewer than `n` slots from `at` onwards, is an
// [ErrInvalidArgument]. An offset outside of `[0,len(dst))` is an
// [ErrOutOfRange] that is also marked as [ErrInvalidArgument].
func CheckCopy[T any](dst []T, at, n int) error {
	if dst == nil {
		return errors.Wrap(ErrInvalidArgument, "nil destination")
	}
	if at < 0 {
		return outsideDestination(at, len(dst))
	}
	if at > len(dst)-n {
		return errors.Wrapf(ErrInvalidArgument, "destination of length %d has no room for %d elements at offset %d", len(dst), n, at)
	}
	if at >= len(dst) {
		return outsideDestination(at, len(dst))
	}
	return nil
}

func outsideDestination(at, size int) error {
	err := errors.Wrapf(ErrOutOfRange, "offset %d not in destination [0,%d)", at, size)
	return errors.Mark(err, ErrInvalidArgument)
}

// Empty returns an [ErrInvalidState] error reporting that `what` is empty.
func Empty(what string) error {
	return errors.Wrapf(ErrInvalidState, "%s is empty", what)
}

// NilSource returns an [ErrInvalidArgument] error reporting an absent source
// sequence.
func NilSource() error {
	return errors.Wrap(ErrInvalidArgument, "nil source sequence")
}

// IsNil reports whether `v` is a nil interface, pointer, map, slice, channel or
// function. All other values, including the zero value of non-nillable kinds,
// are never nil.
func IsNil[T any](v T) bool {
	x := any(v)
	if x == nil {
		return true
	}
	switch r := reflect.ValueOf(x); r.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Chan, reflect.Func, reflect.Interface, reflect.UnsafePointer:
		return r.IsNil()
	default:
		return false
	}
}

// DisallowedNull returns an [ErrDisallowedNull] error for the named operation.
func DisallowedNull(op string) error {
	return errors.Wrapf(ErrDisallowedNull, "%s", op)
}
