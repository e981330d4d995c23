// Package environment outlines the interfaces and structs needed to implement
// concrete environments
package environment

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/robonotes/gonotes/spec"
	"github.com/robonotes/gonotes/timestep"
)

// RenderMode selects how an environment displays itself
type RenderMode string

const (
	// ModeHuman logs a diagnostic view of the environment and, where
	// supported, writes rendered artifacts to disk
	ModeHuman RenderMode = "human"
)

// Scorer implements the reward scheme of an environment. A Scorer is
// given the full trajectory of the episode so far and the number of
// rows filled in, and returns the reward for the latest transition
// along with a breakdown of that reward by component.
type Scorer interface {
	Score(trajectory mat.Matrix, upTo int) (float64, timestep.Info)
}

// ScorerFunc adapts a plain function to the Scorer interface
type ScorerFunc func(trajectory mat.Matrix, upTo int) (float64, timestep.Info)

// Score satisfies the Scorer interface
func (f ScorerFunc) Score(trajectory mat.Matrix, upTo int) (float64,
	timestep.Info) {
	return f(trajectory, upTo)
}

// ResetConfig holds the options accepted by a Reset call. Environments
// are free to ignore options that do not apply to them.
type ResetConfig struct {
	Seed    uint64
	HasSeed bool
	Options map[string]any
}

// ResetOption configures a single Reset call
type ResetOption func(*ResetConfig)

// WithSeed requests that the new episode be started from the given
// random seed. Deterministic environments ignore the seed.
func WithSeed(seed uint64) ResetOption {
	return func(c *ResetConfig) {
		c.Seed = seed
		c.HasSeed = true
	}
}

// WithOptions passes environment-specific reset options
func WithOptions(options map[string]any) ResetOption {
	return func(c *ResetConfig) {
		c.Options = options
	}
}

// NewResetConfig applies each ResetOption in order and returns the
// resulting configuration
func NewResetConfig(opts ...ResetOption) ResetConfig {
	var config ResetConfig
	for _, opt := range opts {
		opt(&config)
	}
	return config
}

// Environment implements a simulated environment, which includes a
// Scorer to reward the agent's actions
type Environment interface {
	Scorer
	fmt.Stringer

	// Reset resets the environment between episodes, discarding any
	// state accumulated in the current episode, and returns the first
	// timestep of the new episode
	Reset(opts ...ResetOption) timestep.TimeStep

	// Step takes one environmental transition given an action
	Step(action *mat.VecDense) (timestep.TimeStep, error)

	// Render displays the environment in the given mode
	Render(mode RenderMode) error

	ObservationSpec() spec.Environment
	ActionSpec() spec.Environment
}
