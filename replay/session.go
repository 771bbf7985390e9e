// Copyright (C) 2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package replay drives containers from line-oriented scripts of operations.
//
// A script holds one [Command] per line, e.g.
//
//	new kind=queue capacity=4
//	enqueue 1 2 3 4 5
//	dequeue
//	state
//
// Each command prints a single line of output. Errors returned by a container
// are printed as `error: <kind>` and don't stop the script; malformed commands
// do.
package replay

import (
	"bufio"
	"fmt"
	"io"
	"iter"
	"slices"
	"strconv"

	"github.com/ava-labs/avalanchego/utils/logging"
	"github.com/cockroachdb/errors"
	"go.uber.org/zap"

	"github.com/ava-labs/linear/arraylist"
	"github.com/ava-labs/linear/bounds"
	"github.com/ava-labs/linear/growth"
	"github.com/ava-labs/linear/linkedlist"
	"github.com/ava-labs/linear/queue"
	"github.com/ava-labs/linear/stack"
)

// A Session holds a single container of `int`s.
type Session struct {
	kind Kind
	log  logging.Logger
	opts []growth.Option

	c     container // the active one of the following
	array *arraylist.List[int]
	list  *linkedlist.List[int]
	queue *queue.Queue[int]
	stack *stack.Stack[int]
}

type container interface {
	Len() int
	Clear()
	Contains(int) bool
	CopyTo([]int, int) error
	All() iter.Seq[int]
}

var (
	_ container = (*arraylist.List[int])(nil)
	_ container = (*linkedlist.List[int])(nil)
	_ container = (*queue.Queue[int])(nil)
	_ container = (*stack.Stack[int])(nil)
)

// NewSession constructs a [Session] holding an empty container as described
// by `cfg`. The logger, which MAY be nil, receives both command and growth
// logs.
func NewSession(cfg Config, log logging.Logger, opts ...growth.Option) (*Session, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if log == nil {
		log = logging.NoLog{}
	}
	s := &Session{
		log:  log,
		opts: slices.Concat(opts, []growth.Option{growth.WithLogger(log)}),
	}
	if err := s.reset(cfg.Kind, cfg.Capacity); err != nil {
		return nil, err
	}
	return s, nil
}

// Kind returns the kind of container currently held.
func (s *Session) Kind() Kind {
	return s.kind
}

func (s *Session) reset(k Kind, capacity int) error {
	next := Session{
		kind: k,
		log:  s.log,
		opts: s.opts,
	}
	var err error
	switch k {
	case Array:
		next.array, err = arraylist.WithCapacity[int](capacity, s.opts...)
		next.c = next.array
	case List:
		next.list = linkedlist.New[int]()
		next.c = next.list
	case Queue:
		next.queue, err = queue.WithCapacity[int](capacity, s.opts...)
		next.c = next.queue
	case Stack:
		next.stack, err = stack.WithCapacity[int](capacity, s.opts...)
		next.c = next.stack
	default:
		return errors.Wrapf(ErrInvalidConfig, "unknown container kind %q", k)
	}
	if err != nil {
		return err
	}
	*s = next
	return nil
}

// Exec executes a single [Command] and returns its output. Errors returned by
// the container are rendered as output, not returned.
func (s *Session) Exec(c Command) (string, error) {
	h, ok := commands[c.Name]
	if !ok {
		return "", errors.Newf("unknown command %q", c.Name)
	}
	if len(h.kinds) > 0 && !slices.Contains(h.kinds, s.kind) {
		return "", errors.Newf("%s does not support %q", s.kind, c.Name)
	}

	s.log.Debug("Executing replay command",
		zap.Stringer("kind", s.kind),
		zap.String("cmd", c.Name),
		zap.Strings("args", c.Args),
	)
	out, err := h.run(s, args(c.Args))
	if err == nil {
		return out, nil
	}
	if kind, ok := errorKind(err); ok {
		s.log.Debug("Container rejected command",
			zap.String("cmd", c.Name),
			zap.Error(err),
		)
		return "error: " + kind, nil
	}
	return "", errors.Wrapf(err, "%s", c.Name)
}

// Run executes every [Command] read from `r`, one per line, writing each
// output on its own line to `w`.
func (s *Session) Run(r io.Reader, w io.Writer) error {
	sc := bufio.NewScanner(r)
	for line := 1; sc.Scan(); line++ {
		c, ok := ParseCommand(sc.Text())
		if !ok {
			continue
		}
		out, err := s.Exec(c)
		if err != nil {
			return errors.Wrapf(err, "line %d", line)
		}
		if _, err := fmt.Fprintln(w, out); err != nil {
			return err
		}
	}
	return sc.Err()
}

// errorKind returns the human-readable kind of a container error.
func errorKind(err error) (string, bool) {
	for _, k := range []struct {
		err  error
		name string
	}{
		{bounds.ErrDisallowedNull, "disallowed null"},
		{bounds.ErrOutOfRange, "out of range"},
		{bounds.ErrInvalidArgument, "invalid argument"},
		{bounds.ErrInvalidState, "invalid state"},
	} {
		if errors.Is(err, k.err) {
			return k.name, true
		}
	}
	return "", false
}

// state renders the container's elements, in the order of [Session.toArray],
// its length and, where applicable, capacity.
func (s *Session) state() string {
	out := fmt.Sprintf("%v len=%d", s.toArray(), s.c.Len())
	if c, ok := s.capacity(); ok {
		out += " cap=" + strconv.Itoa(c)
	}
	return out
}

func (s *Session) capacity() (int, bool) {
	switch s.kind {
	case Array:
		return s.array.Cap(), true
	case Queue:
		return s.queue.Cap(), true
	case Stack:
		return s.stack.Cap(), true
	default:
		return 0, false
	}
}

func (s *Session) toArray() []int {
	switch s.kind {
	case Queue:
		return s.queue.ToArray()
	case Stack:
		return s.stack.ToArray()
	default:
		return slices.Collect(s.c.All())
	}
}

func found(x int, ok bool) string {
	return fmt.Sprintf("%d %t", x, ok)
}
