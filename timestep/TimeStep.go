// Package timestep implements timesteps of the agent-environment interaction
package timestep

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// StepType denotes the type of step that a TimeStep can be, either the first
// environmental step, a middle step, or a last step
type StepType int

const (
	First StepType = iota
	Mid
	Last
)

func (s StepType) String() string {
	switch s {
	case First:
		return "First"
	case Last:
		return "Last"
	default:
		return "Mid"
	}
}

// Info holds the per-step reward breakdown reported by an environment,
// keyed by reward component name.
type Info map[string]float64

// Add accumulates other into i, creating missing keys at zero before
// adding. Existing values are never overwritten, only added to.
func (i Info) Add(other Info) {
	for key, value := range other {
		if _, ok := i[key]; !ok {
			i[key] = 0
		}
		i[key] += value
	}
}

// Copy returns a copy of i that shares no state with i
func (i Info) Copy() Info {
	c := make(Info, len(i))
	for key, value := range i {
		c[key] = value
	}
	return c
}

// TimeStep packages together a single timestep in an environment
type TimeStep struct {
	StepType    StepType
	Reward      float64
	Observation *mat.Dense
	Terminated  bool
	Truncated   bool
	Info        Info
	Number      int
}

// New returns the TimeStep for step number n. Step number 0 is the
// first step of an episode. The returned TimeStep is a First or Mid
// step; enders flip it to Last through Terminate or Truncate.
func New(r float64, o *mat.Dense, info Info, n int) TimeStep {
	t := Mid
	if n == 0 {
		t = First
	}
	return TimeStep{t, r, o, false, false, info, n}
}

// Terminate marks a TimeStep as the last of its episode because a
// terminal condition of the environment was reached
func (t *TimeStep) Terminate() {
	t.StepType = Last
	t.Terminated = true
}

// Truncate marks a TimeStep as the last of its episode for reasons
// outside the environment's terminal conditions, e.g. an external
// interaction limit
func (t *TimeStep) Truncate() {
	t.StepType = Last
	t.Truncated = true
}

// First returns whether a TimeStep is the first in an environment
func (t *TimeStep) First() bool {
	return t.StepType == First
}

// Mid returns whether a TimeStep is a middle step in an environment
func (t *TimeStep) Mid() bool {
	return t.StepType == Mid
}

// Last returns whether a TimeStep is the last step in an environment
func (t *TimeStep) Last() bool {
	return t.StepType == Last
}

func (t TimeStep) String() string {
	str := "TimeStep | Type: %v  |  Reward:  %.2f  |  Terminated: %v  |  " +
		"Step Number:  %v"

	return fmt.Sprintf(str, t.StepType, t.Reward, t.Terminated, t.Number)
}
