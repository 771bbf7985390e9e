// Copyright (C) 2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package linkedlist

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ava-labs/linear/bounds"
)

func TestNonNilRejectsNil(t *testing.T) {
	a, b := new(int), new(int)
	l := NewNonNil[*int]()
	require.NoError(t, l.Add(a))
	require.NoError(t, l.AddFirst(b))

	tests := map[string]func() error{
		"AddFirst": func() error { return l.AddFirst(nil) },
		"AddLast":  func() error { return l.AddLast(nil) },
		"Add":      func() error { return l.Add(nil) },
		"Insert":   func() error { return l.Insert(1, nil) },
		"InsertAt": func() error { return l.InsertAt(nil, 0) },
		"Set":      func() error { return l.Set(0, nil) },
		"Remove": func() error {
			_, err := l.Remove(nil)
			return err
		},
		"IndexOf": func() error {
			_, err := l.IndexOf(nil)
			return err
		},
		"Contains": func() error {
			_, err := l.Contains(nil)
			return err
		},
	}
	for name, fn := range tests {
		assert.ErrorIsf(t, fn(), bounds.ErrDisallowedNull, "%s(nil)", name)
	}

	require.Equal(t, 2, l.Len(), "Len() after rejected operations")
	assert.Equal(t, []*int{b, a}, slices.Collect(l.All()))
}

func TestNonNilBoundsBeforeNil(t *testing.T) {
	l := NewNonNil[*int]()
	require.ErrorIs(t, l.Insert(1, nil), bounds.ErrOutOfRange)
	require.ErrorIs(t, l.Set(0, nil), bounds.ErrOutOfRange)
}

func TestNonNilOperations(t *testing.T) {
	l, err := NonNilFrom(slices.Values([]string{"a", "b", "c"}))
	require.NoError(t, err)

	i, err := l.IndexOf("b")
	require.NoError(t, err)
	assert.Equal(t, 1, i)

	found, err := l.Remove("b")
	require.NoError(t, err)
	assert.True(t, found)

	found, err = l.Contains("b")
	require.NoError(t, err)
	assert.False(t, found)

	require.NoError(t, l.InsertAt("z", 2))
	assert.Equal(t, []string{"a", "c", "z"}, slices.Collect(l.All()))
	assert.Equal(t, []string{"z", "c", "a"}, slices.Collect(l.Backward()))

	c := l.Clone()
	require.True(t, c.RemoveFirst())
	require.True(t, c.RemoveLast())
	assert.Equal(t, 3, l.Len(), "Clone() MUST be independent")
	assert.Equal(t, 1, c.Len())
}

func TestNonNilFrom(t *testing.T) {
	_, err := NonNilFrom[*int](nil)
	require.ErrorIs(t, err, bounds.ErrInvalidArgument)

	_, err = NonNilFrom(slices.Values([]*int{new(int), nil}))
	require.ErrorIs(t, err, bounds.ErrDisallowedNull)
}
