// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/neuroevo/config"
)

// rootFlags holds the persistent flags shared by every sub-command.
type rootFlags struct {
	configPath  string
	logLevel    string
	logJSON     bool
	seed        int64
	generations int
}

func newRootCmd() *cobra.Command {
	f := &rootFlags{}
	root := &cobra.Command{
		Use:           "neuroevo",
		Short:         "Train neural layer models with evolutionary search",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	pf := root.PersistentFlags()
	pf.StringVarP(&f.configPath, "config", "c", "", "YAML run file (default: built-in reference run)")
	pf.StringVar(&f.logLevel, "log-level", "info", "log level: debug, info, warn, error")
	pf.BoolVar(&f.logJSON, "log-json", false, "emit JSON log records")
	pf.Int64Var(&f.seed, "seed", 0, "override the run file's RNG seed")
	pf.IntVarP(&f.generations, "generations", "g", 0, "override the run file's generation count")

	root.AddCommand(newTrainCmd(f), newAgentsCmd(f))

	return root
}

// load resolves the run configuration: the file named by --config or
// fallback, then any overriding flags.
func (f *rootFlags) load(cmd *cobra.Command, fallback func() *config.Config) (*config.Config, error) {
	c := fallback()
	if f.configPath != "" {
		var err error
		if c, err = config.Load(f.configPath); err != nil {
			return nil, err
		}
	}
	if cmd.Flags().Changed("seed") {
		c.Seed = f.seed
	}
	if cmd.Flags().Changed("generations") {
		c.Generations = f.generations
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}

	return c, nil
}

// logger builds the run logger on w, tagged with a fresh run_id.
func (f *rootFlags) logger(w io.Writer) (*slog.Logger, error) {
	var level slog.Level
	switch strings.ToLower(f.logLevel) {
	case "debug":
		level = slog.LevelDebug
	case "info", "":
		level = slog.LevelInfo
	case "warn", "warning":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		return nil, fmt.Errorf("unknown log level %q", f.logLevel)
	}

	opts := &slog.HandlerOptions{Level: level}
	var h slog.Handler
	if f.logJSON {
		h = slog.NewJSONHandler(w, opts)
	} else {
		h = slog.NewTextHandler(w, opts)
	}

	return slog.New(h).With(slog.String("run_id", uuid.New().String())), nil
}
