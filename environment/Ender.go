package environment

import "github.com/robonotes/gonotes/timestep"

// Ender determines when an episode ends. Enders inspect each TimeStep
// an environment produces and, when the episode is over, modify the
// TimeStep in place so that it becomes the last step of the episode.
type Ender interface {
	// End returns whether the episode has ended, modifying the
	// argument TimeStep if so
	End(t *timestep.TimeStep) bool
}

// StepLimit implements the Ender interface to end episodes at specific
// timestep limits
type StepLimit struct {
	episodeSteps int
}

// NewStepLimit creates and returns a new step limit
func NewStepLimit(episodeSteps int) StepLimit {
	return StepLimit{episodeSteps}
}

// End determines whether or not the current episode should be ended,
// returning a boolean to indicate episode termination. If the episode
// should be ended End() will mark the timestep terminated, setting its
// StepType field to timestep.Last
func (s StepLimit) End(t *timestep.TimeStep) bool {
	if t.Number >= s.episodeSteps {
		t.Terminate()
		return true
	}
	return false
}
