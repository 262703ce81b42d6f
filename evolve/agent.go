// SPDX-License-Identifier: MIT

package evolve

import (
	"fmt"
	"log/slog"

	"github.com/katalvlaran/neuroevo/layer"
	"github.com/katalvlaran/neuroevo/tensor"
)

// Agent is a stateful environment participant driven by a model.
//
// Per tick the AgentOptimizer calls, in order:
//
//	ProduceOutputs → model.Run → ConsumeInputs → Error
//
// and Reset once at construction and after every round.
type Agent interface {
	// Reset returns the agent to its initial state.
	Reset()

	// ProduceOutputs returns the agent's observation; it is fed to the model.
	ProduceOutputs() (*tensor.Tensor, error)

	// ConsumeInputs receives the model's response.
	ConsumeInputs(input *tensor.Tensor) error

	// Error scores the agent's current state; lower is better.
	Error() float64
}

// AgentOptimizer drives an Optimizer against live agents on a
// tick / round / generation schedule. During round r, agent i is paired with
// population member r·len(agents)+i, so every member interacts for a whole
// round and its error is the agent's error after the round's last tick.
type AgentOptimizer struct {
	agents              []Agent
	ticksPerRound       int
	roundsPerGeneration int

	currentTick  int
	currentRound int

	opt    *Optimizer
	logger *slog.Logger
}

// NewAgentOptimizer builds an Optimizer of size roundsPerGeneration·len(agents)
// from model and resets every agent.
//
// Errors:
//   - ErrNoAgents if agents is empty or contains nil.
//   - ErrSchedule if ticksPerRound < 1 or roundsPerGeneration < 1.
//   - any error from New.
func NewAgentOptimizer(model layer.Layer, agents []Agent, ticksPerRound, roundsPerGeneration int, learningRate float64, opts ...Option) (*AgentOptimizer, error) {
	if len(agents) == 0 {
		return nil, ErrNoAgents
	}
	for i, a := range agents {
		if a == nil {
			return nil, fmt.Errorf("NewAgentOptimizer: agent %d: %w", i, ErrNoAgents)
		}
	}
	if ticksPerRound < 1 || roundsPerGeneration < 1 {
		return nil, fmt.Errorf("NewAgentOptimizer(%d, %d): %w", ticksPerRound, roundsPerGeneration, ErrSchedule)
	}

	o := gatherOptions(opts...)
	opt, err := newOptimizer(model, roundsPerGeneration*len(agents), learningRate, o)
	if err != nil {
		return nil, err
	}

	ao := &AgentOptimizer{
		agents:              append([]Agent(nil), agents...),
		ticksPerRound:       ticksPerRound,
		roundsPerGeneration: roundsPerGeneration,
		opt:                 opt,
		logger:              o.logger,
	}
	ao.ResetAgents()

	return ao, nil
}

// Optimizer returns the underlying Optimizer.
func (ao *AgentOptimizer) Optimizer() *Optimizer {
	return ao.opt
}

// Agents returns the driven agents in index order.
func (ao *AgentOptimizer) Agents() []Agent {
	return append([]Agent(nil), ao.agents...)
}

// TicksPerRound returns the number of ticks in every round.
func (ao *AgentOptimizer) TicksPerRound() int {
	return ao.ticksPerRound
}

// RoundsPerGeneration returns the number of rounds in every generation.
func (ao *AgentOptimizer) RoundsPerGeneration() int {
	return ao.roundsPerGeneration
}

// CurrentTick returns the tick index within the current round.
func (ao *AgentOptimizer) CurrentTick() int {
	return ao.currentTick
}

// CurrentRound returns the round index within the current generation.
func (ao *AgentOptimizer) CurrentRound() int {
	return ao.currentRound
}

// ResetAgents calls Reset on every agent.
func (ao *AgentOptimizer) ResetAgents() {
	for _, a := range ao.agents {
		a.Reset()
	}
}

// Tick runs one step for every agent against its population member and
// records the agents' errors. After ticksPerRound ticks the round advances
// and all agents are reset; after roundsPerGeneration rounds the Optimizer
// advances to the next generation.
//
// Errors:
//   - any agent or model error. No population error is written and the
//     tick, round and generation counters are unchanged, but agents before
//     the failing one have already consumed a response; reset them with
//     ResetAgents before retrying if their state matters.
//   - any NextGeneration error; the tick's errors are recorded, the counters
//     and agents are left as they were before the tick.
func (ao *AgentOptimizer) Tick() error {
	base := ao.currentRound * len(ao.agents)
	errs := make([]float64, len(ao.agents))
	for i, a := range ao.agents {
		obs, err := a.ProduceOutputs()
		if err != nil {
			return fmt.Errorf("AgentOptimizer.Tick: agent %d: produce: %w", i, err)
		}
		resp, err := ao.opt.population[base+i].model.Run(obs)
		if err != nil {
			return fmt.Errorf("AgentOptimizer.Tick: agent %d: model %d: %w", i, base+i, err)
		}
		if err := a.ConsumeInputs(resp); err != nil {
			return fmt.Errorf("AgentOptimizer.Tick: agent %d: consume: %w", i, err)
		}
		errs[i] = a.Error()
	}
	for i, e := range errs {
		ao.opt.population[base+i].err = e
	}

	if ao.currentTick+1 < ao.ticksPerRound {
		ao.currentTick++
		return nil
	}

	round := ao.currentRound + 1
	if round >= ao.roundsPerGeneration {
		if err := ao.opt.NextGeneration(); err != nil {
			return fmt.Errorf("AgentOptimizer.Tick: %w", err)
		}
		round = 0
	}
	ao.logger.Debug("round complete", slog.Int("round", ao.currentRound), slog.Int("generation", ao.opt.Generation()))
	ao.currentTick, ao.currentRound = 0, round
	ao.ResetAgents()

	return nil
}
