// Copyright (C) 2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package replay

import (
	"strconv"
	"strings"

	"github.com/cockroachdb/errors"
)

// A Command is a single replay instruction. Each argument is either a bare
// value or a `key=value` pair.
type Command struct {
	Name string
	Args []string
}

// ParseCommand splits `line` on whitespace. It returns false for blank lines
// and for comments, which start with `#`.
func ParseCommand(line string) (Command, bool) {
	fs := strings.Fields(line)
	if len(fs) == 0 || strings.HasPrefix(fs[0], "#") {
		return Command{}, false
	}
	return Command{Name: fs[0], Args: fs[1:]}, true
}

func (c Command) String() string {
	return strings.Join(append([]string{c.Name}, c.Args...), " ")
}

type args []string

func (a args) lookup(key string) (string, bool) {
	for _, s := range a {
		if k, v, ok := strings.Cut(s, "="); ok && k == key {
			return v, true
		}
	}
	return "", false
}

// int returns the integer value of `key=value`.
func (a args) int(key string) (int, error) {
	v, ok := a.lookup(key)
	if !ok {
		return 0, errors.Newf("missing argument %s=", key)
	}
	return parseInt(v)
}

// intOr is equivalent to [args.int] except that it returns `dflt` if `key` is
// absent.
func (a args) intOr(key string, dflt int) (int, error) {
	if _, ok := a.lookup(key); !ok {
		return dflt, nil
	}
	return a.int(key)
}

// values returns all bare arguments.
func (a args) values() ([]int, error) {
	var out []int
	for _, s := range a {
		if strings.Contains(s, "=") {
			continue
		}
		x, err := parseInt(s)
		if err != nil {
			return nil, err
		}
		out = append(out, x)
	}
	return out, nil
}

// value returns the only bare argument.
func (a args) value() (int, error) {
	vs, err := a.values()
	if err != nil {
		return 0, err
	}
	if len(vs) != 1 {
		return 0, errors.Newf("want exactly 1 value; got %d", len(vs))
	}
	return vs[0], nil
}

func parseInt(s string) (int, error) {
	x, err := strconv.Atoi(s)
	if err != nil {
		return 0, errors.Newf("bad integer %q", s)
	}
	return x, nil
}
