// Copyright (C) 2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ava-labs/linear/replay"
)

func TestRunScripts(t *testing.T) {
	dir := t.TempDir()
	write := func(name, script string) string {
		path := filepath.Join(dir, name)
		require.NoError(t, os.WriteFile(path, []byte(script), 0o600))
		return path
	}
	a := write("a.txt", "enqueue 1 2 3 4 5\n")
	b := write("b.txt", "dequeue\nstate\n")

	cfg := replay.DefaultConfig()
	cfg.Metrics = true
	var stdout, stderr bytes.Buffer
	require.NoError(t, run(cfg, []string{a, b}, strings.NewReader(""), &stdout, &stderr))

	out := stdout.String()
	assert.True(t, strings.HasPrefix(out, "[1 2 3 4 5] len=5 cap=8\n1\n[2 3 4 5] len=4 cap=8\n"), "script output:\n%s", out)
	assert.Contains(t, out, `linear_growth_reallocations_total{container="queue"} 1`)
	assert.Contains(t, out, `linear_growth_capacity{container="queue"} 8`)
	assert.Contains(t, stderr.String(), "Replaying")
}

func TestRunStdin(t *testing.T) {
	cfg := replay.DefaultConfig()
	cfg.Kind = replay.Stack
	var stdout, stderr bytes.Buffer
	require.NoError(t, run(cfg, nil, strings.NewReader("push 1 2\npop\n"), &stdout, &stderr))
	assert.Equal(t, "[2 1] len=2 cap=4\n2\n", stdout.String())
}

func TestRunFailure(t *testing.T) {
	cfg := replay.DefaultConfig()
	var stdout, stderr bytes.Buffer
	err := run(cfg, nil, strings.NewReader("enqueue 1\npush 2\n"), &stdout, &stderr)
	require.ErrorContains(t, err, "line 2")

	err = run(cfg, []string{filepath.Join(t.TempDir(), "missing")}, nil, &stdout, &stderr)
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestConfigSources(t *testing.T) {
	t.Setenv("SEQREPLAY_KIND", "list")
	t.Setenv("SEQREPLAY_LOG_LEVEL", "debug")

	cmd := newRootCmd()
	var stdout bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(new(bytes.Buffer))
	cmd.SetIn(strings.NewReader("add 1 2\nfirst\n"))
	cmd.SetArgs([]string{"--capacity", "16"})
	require.NoError(t, cmd.Execute())
	assert.Equal(t, "[1 2] len=2\n1 true\n", stdout.String())

	cfgFile := filepath.Join(t.TempDir(), "seqreplay.yaml")
	require.NoError(t, os.WriteFile(cfgFile, []byte("kind: heap\n"), 0o600))
	t.Setenv("SEQREPLAY_KIND", "")
	cmd = newRootCmd()
	cmd.SetOut(new(bytes.Buffer))
	cmd.SetErr(new(bytes.Buffer))
	cmd.SetArgs([]string{"--config", cfgFile})
	require.ErrorIs(t, cmd.Execute(), replay.ErrInvalidConfig)
}
