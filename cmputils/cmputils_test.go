// Copyright (C) 2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

//go:build !prod && !nocmpopts

package cmputils

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ava-labs/linear/arraylist"
	"github.com/ava-labs/linear/linkedlist"
	"github.com/ava-labs/linear/queue"
	"github.com/ava-labs/linear/stack"
)

func TestContainers(t *testing.T) {
	opt := Containers[int]()

	wrapped, err := queue.WithCapacity[int](3)
	require.NoError(t, err)
	for i := range 3 {
		wrapped.Enqueue(i)
	}
	_, err = wrapped.Dequeue()
	require.NoError(t, err)
	wrapped.Enqueue(3)

	big, err := arraylist.WithCapacity[int](100)
	require.NoError(t, err)
	big.AddAll(1, 2, 3)

	nonNil := linkedlist.NewNonNil[int]()
	require.NoError(t, nonNil.Add(4))

	tests := []struct {
		name string
		a, b any
		want bool
	}{
		{
			name: "queue_ignores_layout",
			a:    wrapped,
			b:    queue.FromSlice([]int{1, 2, 3}),
			want: true,
		},
		{
			name: "queue_order",
			a:    wrapped,
			b:    queue.FromSlice([]int{3, 2, 1}),
			want: false,
		},
		{
			name: "arraylist_ignores_capacity",
			a:    big,
			b:    arraylist.FromSlice([]int{1, 2, 3}),
			want: true,
		},
		{
			name: "linkedlist",
			a:    linkedlist.FromSlice([]int{1, 2}),
			b:    linkedlist.FromSlice([]int{1, 2, 3}),
			want: false,
		},
		{
			name: "nonnil",
			a:    nonNil,
			b:    linkedlist.NewNonNil[int](),
			want: false,
		},
		{
			name: "stack",
			a:    stack.FromSlice([]int{1, 2}),
			b:    new(stack.Stack[int]),
			want: false,
		},
		{
			name: "empty",
			a:    new(stack.Stack[int]),
			b:    stack.New[int](),
			want: true,
		},
		{
			name: "nil_vs_empty",
			a:    (*queue.Queue[int])(nil),
			b:    queue.New[int](),
			want: false,
		},
		{
			name: "nil",
			a:    (*queue.Queue[int])(nil),
			b:    (*queue.Queue[int])(nil),
			want: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, cmp.Equal(tt.a, tt.b, opt), "cmp.Equal(..., Containers[int]())")
		})
	}
}

func TestContainersInStructs(t *testing.T) {
	type pair struct {
		Q *queue.Queue[string]
		S *stack.Stack[string]
	}
	got := pair{
		Q: queue.FromSlice([]string{"a", "b"}),
		S: stack.FromSlice([]string{"a", "b"}),
	}
	want := pair{
		Q: queue.FromSlice([]string{"a", "b"}),
		S: stack.FromSlice([]string{"b", "a"}),
	}
	diff := cmp.Diff(want, got, Containers[string]())
	assert.NotEmpty(t, diff, "stack elements compared in pop order")

	want.S = stack.FromSlice([]string{"a", "b"})
	if diff := cmp.Diff(want, got, Containers[string]()); diff != "" {
		t.Errorf("diff (-want +got):\n%s", diff)
	}
}
