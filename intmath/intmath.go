// Copyright (C) 2025-2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package intmath provides special-case integer arithmetic.
package intmath

import (
	"errors"

	"golang.org/x/exp/constraints"
)

// ErrOverflow is returned if a return value would have overflowed its type.
var ErrOverflow = errors.New("overflow")

// MaxOf returns the largest value representable by `T`.
func MaxOf[T constraints.Integer]() T {
	var zero T
	if ^zero < zero { // signed
		return ^(T(1) << (8*sizeOf[T]() - 1))
	}
	return ^zero
}

// sizeOf returns the size of `T` in bytes without importing unsafe.
func sizeOf[T constraints.Integer]() int {
	var x T = 1
	n := 0
	for x != 0 {
		x <<= 8
		n++
	}
	return n
}

// Double returns `2*x`, or [ErrOverflow] if the product is not representable by
// `T`. Negative values are also reported as overflow.
func Double[T constraints.Integer](x T) (T, error) {
	if x < 0 || x > MaxOf[T]()/2 {
		return 0, ErrOverflow
	}
	return 2 * x, nil
}
