// Copyright (C) 2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package replay

import (
	"github.com/ava-labs/avalanchego/utils/logging"
	"github.com/cockroachdb/errors"

	"github.com/ava-labs/linear/growth"
)

// A Kind names the container driven by a [Session].
type Kind string

// Supported container kinds.
const (
	Array Kind = "array"
	List  Kind = "list"
	Queue Kind = "queue"
	Stack Kind = "stack"
)

func (k Kind) String() string {
	return string(k)
}

// Kinds returns all supported container kinds.
func Kinds() []Kind {
	return []Kind{Array, List, Queue, Stack}
}

// Config configures a [Session] and the command-line replayer.
type Config struct {
	Kind Kind `mapstructure:"kind"`
	// Capacity is the initial capacity of slice-backed containers. It is
	// ignored by [List].
	Capacity int    `mapstructure:"capacity"`
	LogLevel string `mapstructure:"log-level"`
	// Metrics enables exporting growth metrics.
	Metrics bool `mapstructure:"metrics"`
}

// DefaultConfig returns the default [Config], driving a [Queue].
func DefaultConfig() Config {
	return Config{
		Kind:     Queue,
		Capacity: growth.DefaultCapacity,
		LogLevel: logging.Info.String(),
	}
}

// ErrInvalidConfig is returned by [Config.Validate].
var ErrInvalidConfig = errors.New("invalid config")

// Validate returns an error wrapping [ErrInvalidConfig] if `c` can't be used
// to construct a [Session].
func (c Config) Validate() error {
	var ok bool
	for _, k := range Kinds() {
		ok = ok || k == c.Kind
	}
	if !ok {
		return errors.Wrapf(ErrInvalidConfig, "unknown container kind %q", c.Kind)
	}
	if c.Capacity < 0 {
		return errors.Wrapf(ErrInvalidConfig, "negative capacity %d", c.Capacity)
	}
	if _, err := c.Level(); err != nil {
		return errors.Wrapf(ErrInvalidConfig, "log level %q: %v", c.LogLevel, err)
	}
	return nil
}

// Level parses the configured log level.
func (c Config) Level() (logging.Level, error) {
	return logging.ToLevel(c.LogLevel)
}
