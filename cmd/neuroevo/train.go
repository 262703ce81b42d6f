// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/neuroevo/config"
	"github.com/katalvlaran/neuroevo/evolve"
)

func newTrainCmd(f *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "train",
		Short: "Evolve a model against the run file's training set",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			c, err := f.load(cmd, config.Default)
			if err != nil {
				return err
			}
			log, err := f.logger(cmd.ErrOrStderr())
			if err != nil {
				return err
			}

			return runTrain(cmd, c, log)
		},
	}
}

func runTrain(cmd *cobra.Command, c *config.Config, log *slog.Logger) error {
	model, _, err := c.BuildModel()
	if err != nil {
		return err
	}
	inputs, outputs, err := c.BuildTrainingSet()
	if err != nil {
		return err
	}
	ts, err := evolve.NewTrainingSet(inputs, outputs, model, c.Population, c.LearningRate, c.EvolveOptions(log)...)
	if err != nil {
		return err
	}
	log.Info("training started",
		slog.Int("samples", ts.Len()),
		slog.Int("population", c.Population),
		slog.Float64("learning_rate", c.LearningRate),
		slog.Int("generations", c.Generations),
		slog.Int("workers", c.Workers),
	)

	opt := ts.Optimizer()
	for g := 0; g < c.Generations; g++ {
		if err := cmd.Context().Err(); err != nil {
			return err
		}
		if err := ts.NextGeneration(); err != nil {
			return err
		}
		s := opt.Stats()
		log.Info("generation", slog.Int("generation", s.Generation), slog.Float64("best_error", opt.BestError()), slog.Float64("mean_error", s.Mean))
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "generations: %d\nbest error: %g\n", opt.Generation(), opt.BestError())
	best := opt.BestModel()
	for i, in := range inputs {
		got, err := best.Run(in)
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "%v -> %v (want %v)\n", in.ToSlice(), got.ToSlice(), outputs[i].ToSlice())
	}

	return nil
}
