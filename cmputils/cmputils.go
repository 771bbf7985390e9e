// Copyright (C) 2025-2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

//go:build !prod && !nocmpopts

// Package cmputils provides [cmp] options and utilities for their creation.
package cmputils

import (
	"iter"

	"github.com/google/go-cmp/cmp"

	"github.com/ava-labs/linear/arraylist"
	"github.com/ava-labs/linear/bounds"
	"github.com/ava-labs/linear/linkedlist"
	"github.com/ava-labs/linear/queue"
	"github.com/ava-labs/linear/stack"
)

// Containers returns a set of [cmp.Options] that compare pointers to any of
// this module's containers, holding elements of type `T`, by their elements
// alone. Capacity and growth configuration are ignored. Stacks are compared in
// pop order; all other containers front to back.
//
// A nil container is only equal to another nil container of the same type,
// whereas all empty containers are equal.
func Containers[T comparable]() cmp.Option {
	return cmp.Options{
		transformer[T, *arraylist.List[T]]("ArrayList"),
		transformer[T, *linkedlist.List[T]]("LinkedList"),
		transformer[T, *linkedlist.NonNil[T]]("NonNilList"),
		transformer[T, *queue.Queue[T]]("Queue"),
		transformer[T, *stack.Stack[T]]("Stack"),
	}
}

type container[T any] interface {
	Len() int
	All() iter.Seq[T]
}

func transformer[T any, C container[T]](name string) cmp.Option {
	return cmp.Transformer(name, func(c C) []T {
		if bounds.IsNil(c) {
			return nil
		}
		out := make([]T, 0, c.Len())
		for x := range c.All() {
			out = append(out, x)
		}
		return out
	})
}
