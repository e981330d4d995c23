// Package experiment implements rollouts of policies on environments
package experiment

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/robonotes/gonotes/agent"
	env "github.com/robonotes/gonotes/environment"
	"github.com/robonotes/gonotes/experiment/trackers"
	ts "github.com/robonotes/gonotes/timestep"
	"github.com/robonotes/gonotes/utils/progressbar"
)

// Rollout runs a fixed policy on an environment for a set number of
// episodes. The policy is never updated; the point of a rollout is the
// data the trackers record, plus any artifacts the environment writes
// while rendering. Each Rollout carries a unique run ID so the saved
// artifacts of different runs can be told apart.
type Rollout struct {
	env.Environment
	agent.Policy
	episodes int
	trackers []trackers.Tracker
	runID    uuid.UUID
	bar      *progressbar.ProgressBar
}

// NewRollout creates and returns a new rollout of policy p on
// environment e. The episodes parameter determines how many episodes
// are run, and the t parameter lists the trackers that record data
// during the run.
func NewRollout(e env.Environment, p agent.Policy, episodes int,
	t ...trackers.Tracker) (*Rollout, error) {
	if episodes <= 0 {
		return nil, fmt.Errorf("newrollout: episodes must be positive, "+
			"got %v", episodes)
	}

	return &Rollout{
		Environment: e,
		Policy:      p,
		episodes:    episodes,
		trackers:    t,
		runID:       uuid.New(),
	}, nil
}

// Register registers a tracker with the Rollout so that data generated
// during the run can be tracked and saved
func (r *Rollout) Register(t trackers.Tracker) {
	r.trackers = append(r.trackers, t)
}

// RunID returns the unique identity of this rollout run
func (r *Rollout) RunID() uuid.UUID {
	return r.runID
}

// WithProgressBar attaches a terminal progress bar that advances once
// per completed episode
func (r *Rollout) WithProgressBar(width int) {
	r.bar = progressbar.NewProgressBar(width, r.episodes, time.Second, true)
}

// RunEpisode runs a single episode of the rollout
func (r *Rollout) RunEpisode() error {
	step := r.Environment.Reset()
	r.track(step)

	for !step.Last() {
		action := r.Policy.SelectAction(step)

		var err error
		step, err = r.Environment.Step(action)
		if err != nil {
			return fmt.Errorf("runepisode: %w", err)
		}

		r.track(step)
	}

	return nil
}

// Run runs every episode of the rollout
func (r *Rollout) Run() error {
	if r.bar != nil {
		r.bar.Display()
		defer r.bar.Close()
	}

	for i := 0; i < r.episodes; i++ {
		if err := r.RunEpisode(); err != nil {
			return err
		}
		if r.bar != nil {
			r.bar.Increment()
		}
	}

	return nil
}

// Save saves all the data cached by the trackers to disk
func (r *Rollout) Save() error {
	for _, tracker := range r.trackers {
		if err := tracker.Save(); err != nil {
			return fmt.Errorf("save: %w", err)
		}
	}
	return nil
}

// track caches the current timestep in each tracker
func (r *Rollout) track(t ts.TimeStep) {
	for _, tracker := range r.trackers {
		tracker.Track(t)
	}
}
