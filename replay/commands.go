// Copyright (C) 2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package replay

import (
	"fmt"
	"strconv"

	"github.com/cockroachdb/errors"
)

type handler struct {
	kinds []Kind // empty for all kinds
	run   func(*Session, args) (string, error)
}

func all(run func(*Session, args) (string, error)) handler {
	return handler{run: run}
}

func only(run func(*Session, args) (string, error), kinds ...Kind) handler {
	return handler{kinds: kinds, run: run}
}

var commands = map[string]handler{
	// Common
	"new":      all((*Session).renew),
	"state":    all(func(s *Session, _ args) (string, error) { return s.state(), nil }),
	"len":      all(func(s *Session, _ args) (string, error) { return strconv.Itoa(s.c.Len()), nil }),
	"to-array": all(func(s *Session, _ args) (string, error) { return fmt.Sprint(s.toArray()), nil }),
	"contains": all((*Session).contains),
	"clear":    all((*Session).clearAll),
	"copy-to":  all((*Session).copyTo),
	"cap":      only((*Session).capacityOf, Array, Queue, Stack),

	// Indexed lists
	"add":       only((*Session).add, Array, List),
	"insert":    only((*Session).insert, Array, List),
	"get":       only((*Session).get, Array, List),
	"set":       only((*Session).set, Array, List),
	"remove-at": only((*Session).removeAt, Array, List),
	"remove":    only((*Session).remove, Array, List),
	"index-of":  only((*Session).indexOf, Array, List),
	"grow":      only((*Session).grow, Array, Queue),

	// Linked list ends
	"first":        only((*Session).first, List),
	"last":         only((*Session).last, List),
	"add-first":    only((*Session).addFirst, List),
	"add-last":     only((*Session).addLast, List),
	"remove-first": only((*Session).removeFirst, List),
	"remove-last":  only((*Session).removeLast, List),

	// Queue and stack
	"enqueue":     only((*Session).enqueue, Queue),
	"dequeue":     only((*Session).dequeue, Queue),
	"try-dequeue": only((*Session).tryDequeue, Queue),
	"push":        only((*Session).push, Stack),
	"pop":         only((*Session).pop, Stack),
	"try-pop":     only((*Session).tryPop, Stack),
	"peek":        only((*Session).peek, Queue, Stack),
	"try-peek":    only((*Session).tryPeek, Queue, Stack),
	"trim-excess": only((*Session).trimExcess, Queue, Stack),
}

// renew replaces the container with an empty one, optionally of a different
// kind and capacity.
func (s *Session) renew(a args) (string, error) {
	k := s.kind
	if v, ok := a.lookup("kind"); ok {
		k = Kind(v)
	}
	c, err := a.intOr("capacity", s.defaultCapacity())
	if err != nil {
		return "", err
	}
	if err := s.reset(k, c); err != nil {
		return "", err
	}
	return s.state(), nil
}

func (s *Session) defaultCapacity() int {
	if c, ok := s.capacity(); ok {
		return c
	}
	return DefaultConfig().Capacity
}

func (s *Session) contains(a args) (string, error) {
	x, err := a.value()
	if err != nil {
		return "", err
	}
	return strconv.FormatBool(s.c.Contains(x)), nil
}

func (s *Session) clearAll(args) (string, error) {
	s.c.Clear()
	return s.state(), nil
}

func (s *Session) copyTo(a args) (string, error) {
	n, err := a.int("len")
	if err != nil {
		return "", err
	}
	at, err := a.intOr("at", 0)
	if err != nil {
		return "", err
	}
	if n < 0 {
		return "", errors.Newf("negative destination length %d", n)
	}
	dst := make([]int, n)
	if err := s.c.CopyTo(dst, at); err != nil {
		return "", err
	}
	return fmt.Sprint(dst), nil
}

func (s *Session) capacityOf(args) (string, error) {
	c, _ := s.capacity()
	return strconv.Itoa(c), nil
}

func (s *Session) add(a args) (string, error) {
	xs, err := a.values()
	if err != nil {
		return "", err
	}
	switch s.kind {
	case Array:
		s.array.AddAll(xs...)
	case List:
		for _, x := range xs {
			s.list.Add(x)
		}
	}
	return s.state(), nil
}

func (s *Session) insert(a args) (string, error) {
	i, err := a.int("i")
	if err != nil {
		return "", err
	}
	x, err := a.int("v")
	if err != nil {
		return "", err
	}
	switch s.kind {
	case Array:
		err = s.array.Insert(i, x)
	case List:
		err = s.list.Insert(i, x)
	}
	if err != nil {
		return "", err
	}
	return s.state(), nil
}

func (s *Session) get(a args) (string, error) {
	i, err := a.value()
	if err != nil {
		return "", err
	}
	var x int
	switch s.kind {
	case Array:
		x, err = s.array.Get(i)
	case List:
		x, err = s.list.Get(i)
	}
	if err != nil {
		return "", err
	}
	return strconv.Itoa(x), nil
}

func (s *Session) set(a args) (string, error) {
	i, err := a.int("i")
	if err != nil {
		return "", err
	}
	x, err := a.int("v")
	if err != nil {
		return "", err
	}
	switch s.kind {
	case Array:
		err = s.array.Set(i, x)
	case List:
		err = s.list.Set(i, x)
	}
	if err != nil {
		return "", err
	}
	return s.state(), nil
}

func (s *Session) removeAt(a args) (string, error) {
	i, err := a.value()
	if err != nil {
		return "", err
	}
	switch s.kind {
	case Array:
		err = s.array.RemoveAt(i)
	case List:
		err = s.list.RemoveAt(i)
	}
	if err != nil {
		return "", err
	}
	return s.state(), nil
}

func (s *Session) remove(a args) (string, error) {
	x, err := a.value()
	if err != nil {
		return "", err
	}
	var ok bool
	switch s.kind {
	case Array:
		ok = s.array.Remove(x)
	case List:
		ok = s.list.Remove(x)
	}
	return strconv.FormatBool(ok), nil
}

func (s *Session) indexOf(a args) (string, error) {
	x, err := a.value()
	if err != nil {
		return "", err
	}
	var i int
	switch s.kind {
	case Array:
		from, err := a.intOr("from", 0)
		if err != nil {
			return "", err
		}
		i = s.array.IndexOfFrom(x, from)
	case List:
		i = s.list.IndexOf(x)
	}
	return strconv.Itoa(i), nil
}

func (s *Session) grow(a args) (string, error) {
	n, err := a.value()
	if err != nil {
		return "", err
	}
	switch s.kind {
	case Array:
		s.array.Grow(n)
	case Queue:
		s.queue.Grow(n)
	}
	return s.state(), nil
}

func (s *Session) first(args) (string, error) {
	return found(s.list.First()), nil
}

func (s *Session) last(args) (string, error) {
	return found(s.list.Last()), nil
}

func (s *Session) addFirst(a args) (string, error) {
	x, err := a.value()
	if err != nil {
		return "", err
	}
	s.list.AddFirst(x)
	return s.state(), nil
}

func (s *Session) addLast(a args) (string, error) {
	x, err := a.value()
	if err != nil {
		return "", err
	}
	s.list.AddLast(x)
	return s.state(), nil
}

func (s *Session) removeFirst(args) (string, error) {
	return strconv.FormatBool(s.list.RemoveFirst()), nil
}

func (s *Session) removeLast(args) (string, error) {
	return strconv.FormatBool(s.list.RemoveLast()), nil
}

func (s *Session) enqueue(a args) (string, error) {
	xs, err := a.values()
	if err != nil {
		return "", err
	}
	for _, x := range xs {
		s.queue.Enqueue(x)
	}
	return s.state(), nil
}

func (s *Session) dequeue(args) (string, error) {
	x, err := s.queue.Dequeue()
	if err != nil {
		return "", err
	}
	return strconv.Itoa(x), nil
}

func (s *Session) tryDequeue(args) (string, error) {
	return found(s.queue.TryDequeue()), nil
}

func (s *Session) push(a args) (string, error) {
	xs, err := a.values()
	if err != nil {
		return "", err
	}
	for _, x := range xs {
		s.stack.Push(x)
	}
	return s.state(), nil
}

func (s *Session) pop(args) (string, error) {
	x, err := s.stack.Pop()
	if err != nil {
		return "", err
	}
	return strconv.Itoa(x), nil
}

func (s *Session) tryPop(args) (string, error) {
	return found(s.stack.TryPop()), nil
}

func (s *Session) peek(args) (string, error) {
	var (
		x   int
		err error
	)
	switch s.kind {
	case Queue:
		x, err = s.queue.Peek()
	case Stack:
		x, err = s.stack.Peek()
	}
	if err != nil {
		return "", err
	}
	return strconv.Itoa(x), nil
}

func (s *Session) tryPeek(args) (string, error) {
	switch s.kind {
	case Queue:
		return found(s.queue.TryPeek()), nil
	default:
		return found(s.stack.TryPeek()), nil
	}
}

func (s *Session) trimExcess(args) (string, error) {
	switch s.kind {
	case Queue:
		s.queue.TrimExcess()
	case Stack:
		s.stack.TrimExcess()
	}
	return s.state(), nil
}
