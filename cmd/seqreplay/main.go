// Copyright (C) 2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// The seqreplay binary runs replay scripts against a container, printing one
// line of output per command.
package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/ava-labs/avalanchego/utils/logging"
	"github.com/cockroachdb/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/ava-labs/linear/growth"
	"github.com/ava-labs/linear/metrics"
	"github.com/ava-labs/linear/replay"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

const envPrefix = "SEQREPLAY"

func newRootCmd() *cobra.Command {
	v := viper.New()
	def := replay.DefaultConfig()

	cmd := &cobra.Command{
		Use:   "seqreplay [script ...]",
		Short: "Replay container operations from scripts",
		Long: `seqreplay executes replay scripts, one command per line, against a single
container. Scripts are read from the named files in order, or from stdin if
none are named. Flags may also be set with ` + envPrefix + `_ environment
variables or a config file.`,
		Example: `  echo "enqueue 1 2 3 4 5" | seqreplay --kind queue --log-level debug
  seqreplay --kind stack --metrics script.txt`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(v)
			if err != nil {
				return err
			}
			return run(cfg, args, cmd.InOrStdin(), cmd.OutOrStdout(), cmd.ErrOrStderr())
		},
	}

	fs := cmd.Flags()
	fs.String("config", "", "Config file (yaml, json or toml)")
	fs.String("kind", string(def.Kind), fmt.Sprintf("Container kind, one of %v", replay.Kinds()))
	fs.Int("capacity", def.Capacity, "Initial capacity of slice-backed containers")
	fs.String("log-level", def.LogLevel, "Log level for stderr")
	fs.Bool("metrics", def.Metrics, "Print growth metrics after all scripts")

	if err := v.BindPFlags(fs); err != nil {
		panic(err)
	}
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	return cmd
}

func loadConfig(v *viper.Viper) (replay.Config, error) {
	if path := v.GetString("config"); path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return replay.Config{}, errors.Wrapf(err, "reading config %q", path)
		}
	}
	var cfg replay.Config
	if err := v.Unmarshal(&cfg); err != nil {
		return replay.Config{}, errors.Wrap(err, "unmarshalling config")
	}
	return cfg, cfg.Validate()
}

func newLogger(cfg replay.Config, w io.Writer) (logging.Logger, error) {
	lvl, err := cfg.Level()
	if err != nil {
		return nil, err
	}
	return logging.NewLogger("seqreplay", logging.NewWrappedCore(
		lvl, nopCloser{w}, logging.Plain.ConsoleEncoder(),
	)), nil
}

// nopCloser adapts a writer that the logger MUST NOT close, e.g. stderr.
type nopCloser struct{ io.Writer }

func (nopCloser) Close() error { return nil }

func run(cfg replay.Config, scripts []string, stdin io.Reader, stdout, stderr io.Writer) error {
	log, err := newLogger(cfg, stderr)
	if err != nil {
		return err
	}

	var (
		reg  *prometheus.Registry
		opts []growth.Option
	)
	if cfg.Metrics {
		reg = prometheus.NewRegistry()
		o, err := metrics.NewGrowthObserver(reg)
		if err != nil {
			return err
		}
		opts = append(opts, growth.WithObserver(o))
	}

	s, err := replay.NewSession(cfg, log, opts...)
	if err != nil {
		return err
	}
	log.Info("Replaying",
		zap.Stringer("kind", s.Kind()),
		zap.Int("capacity", cfg.Capacity),
		zap.Int("scripts", len(scripts)),
	)

	if len(scripts) == 0 {
		if err := s.Run(stdin, stdout); err != nil {
			return errors.Wrap(err, "stdin")
		}
	}
	for _, path := range scripts {
		if err := runFile(s, path, stdout); err != nil {
			return err
		}
	}

	if reg == nil {
		return nil
	}
	return writeMetrics(reg, stdout)
}

func runFile(s *replay.Session, path string, w io.Writer) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return errors.Wrapf(s.Run(f, w), "%s", path)
}

func writeMetrics(g prometheus.Gatherer, w io.Writer) error {
	mfs, err := g.Gather()
	if err != nil {
		return err
	}
	for _, mf := range mfs {
		if _, err := expfmt.MetricFamilyToText(w, mf); err != nil {
			return err
		}
	}
	return nil
}
