// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"
	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/neuroevo/config"
	"github.com/katalvlaran/neuroevo/evolve"
	"github.com/katalvlaran/neuroevo/tensor"
)

// targetAgent observes a fixed vector every tick and scores the model's
// last response by its L1 distance to a target.
type targetAgent struct {
	emit   []float64
	target []float64
	last   []float64
}

var _ evolve.Agent = (*targetAgent)(nil)

func newTargetAgent(emit, target []float64) *targetAgent {
	a := &targetAgent{emit: emit, target: target}
	a.Reset()

	return a
}

func (a *targetAgent) Reset() {
	a.last = make([]float64, len(a.target))
}

func (a *targetAgent) ProduceOutputs() (*tensor.Tensor, error) {
	return tensor.FromSlice(a.emit...)
}

func (a *targetAgent) ConsumeInputs(in *tensor.Tensor) error {
	got := in.ToSlice()
	if len(got) != len(a.target) {
		return fmt.Errorf("agent response %v does not match target %v: %w", in, a.target, evolve.ErrOutputShape)
	}
	a.last = got

	return nil
}

func (a *targetAgent) Error() float64 {
	return floats.Distance(a.last, a.target, 1)
}

func newAgentsCmd(f *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "agents",
		Short: "Evolve a model that steers target-seeking agents",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			c, err := f.load(cmd, config.DefaultAgents)
			if err != nil {
				return err
			}
			if c.Agents == nil {
				return fmt.Errorf("run file has no agents section: %w", config.ErrInvalidConfig)
			}
			log, err := f.logger(cmd.ErrOrStderr())
			if err != nil {
				return err
			}

			return runAgents(cmd, c, log)
		},
	}
}

func runAgents(cmd *cobra.Command, c *config.Config, log *slog.Logger) error {
	model, _, err := c.BuildModel()
	if err != nil {
		return err
	}
	ac := c.Agents
	agents := make([]evolve.Agent, ac.Count)
	for i := range agents {
		agents[i] = newTargetAgent(ac.Emit, ac.Target)
	}
	ao, err := evolve.NewAgentOptimizer(model, agents, ac.TicksPerRound, ac.RoundsPerGeneration, c.LearningRate, c.EvolveOptions(log)...)
	if err != nil {
		return err
	}
	log.Info("agents started",
		slog.Int("agents", ac.Count),
		slog.Int("population", ao.Optimizer().PopulationSize()),
		slog.Int("ticks_per_round", ac.TicksPerRound),
		slog.Int("rounds_per_generation", ac.RoundsPerGeneration),
		slog.Int("generations", c.Generations),
	)

	opt := ao.Optimizer()
	ticks := ac.TicksPerRound * ac.RoundsPerGeneration
	for g := 0; g < c.Generations; g++ {
		if err := cmd.Context().Err(); err != nil {
			return err
		}
		for t := 0; t < ticks; t++ {
			if err := ao.Tick(); err != nil {
				return err
			}
		}
		log.Info("generation", slog.Int("generation", g), slog.Float64("best_error", opt.BestError()))
	}

	in, err := tensor.FromSlice(ac.Emit...)
	if err != nil {
		return err
	}
	got, err := opt.BestModel().Run(in)
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "generations: %d\nbest error: %g\n%v -> %v (target %v)\n",
		opt.Generation(), opt.BestError(), ac.Emit, got.ToSlice(), ac.Target)

	return nil
}
