// Copyright (C) 2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package seqtest

import (
	"testing"

	"github.com/ava-labs/avalanchego/utils/logging"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest"
	"go.uber.org/zap/zaptest/observer"

	"github.com/ava-labs/linear/growth"
)

// A LogRecorder is a [logging.Logger] that keeps all entries at or above its
// level in memory. Besides raw entries, it decodes the storage logs written by
// a [growth.Policy].
type LogRecorder struct {
	logging.Logger
	logs *observer.ObservedLogs
}

// NewLogRecorder constructs a new [LogRecorder] at the specified level.
func NewLogRecorder(level logging.Level) *LogRecorder {
	core, logs := observer.New(zapcore.Level(level))
	return &LogRecorder{
		Logger: logging.NewLogger("", logging.WrappedCore{Core: core}),
		logs:   logs,
	}
}

// Entries returns all recorded entries in the order they were logged.
func (r *LogRecorder) Entries() []observer.LoggedEntry {
	return r.logs.All()
}

// At returns the entries recorded at exactly `lvl`.
func (r *LogRecorder) At(lvl logging.Level) []observer.LoggedEntry {
	return r.logs.FilterLevelExact(zapcore.Level(lvl)).All()
}

// Messages returns the entries logged with message `msg`.
func (r *LogRecorder) Messages(msg string) []observer.LoggedEntry {
	return r.logs.FilterMessage(msg).All()
}

// Reallocations decodes every [growth.ReallocatedMsg] entry for the named kind
// of container, or for all kinds if `container` is empty.
func (r *LogRecorder) Reallocations(container string) []growth.Event {
	var out []growth.Event
	for _, f := range r.storageLogs(growth.ReallocatedMsg, container) {
		out = append(out, growth.Event{
			Container: f.str("container"),
			From:      f.num("from_capacity"),
			To:        f.num("to_capacity"),
			Live:      f.num("live"),
		})
	}
	return out
}

// A Trim is a decoded [growth.TrimmedMsg] entry.
type Trim struct {
	Container string
	From, To  int
}

// Trims decodes every [growth.TrimmedMsg] entry for the named kind of
// container, or for all kinds if `container` is empty.
func (r *LogRecorder) Trims(container string) []Trim {
	var out []Trim
	for _, f := range r.storageLogs(growth.TrimmedMsg, container) {
		out = append(out, Trim{
			Container: f.str("container"),
			From:      f.num("from_capacity"),
			To:        f.num("to_capacity"),
		})
	}
	return out
}

type fields map[string]any

func (f fields) str(key string) string {
	s, _ := f[key].(string)
	return s
}

// num returns the value of an integer field, which a [zapcore.MapObjectEncoder]
// stores as an int64.
func (f fields) num(key string) int {
	n, _ := f[key].(int64)
	return int(n)
}

func (r *LogRecorder) storageLogs(msg, container string) []fields {
	var out []fields
	for _, e := range r.Messages(msg) {
		f := fields(e.ContextMap())
		if container == "" || f.str("container") == container {
			out = append(out, f)
		}
	}
	return out
}

// NewTBLogger constructs a logger that writes all entries at or above `level`
// to `tb`, via [zaptest]. Entries at WARN or above also mark the test as
// failed.
func NewTBLogger(tb testing.TB, level logging.Level) logging.Logger {
	core := zaptest.NewLogger(tb, zaptest.Level(zapcore.Level(level))).Core()
	core = zapcore.RegisterHooks(core, func(e zapcore.Entry) error {
		if e.Level >= zapcore.Level(logging.Warn) {
			tb.Errorf("[Log@%s] %s", logging.Level(e.Level), e.Message)
		}
		return nil
	})
	return logging.NewLogger("", logging.WrappedCore{Core: core})
}
