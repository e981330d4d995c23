package environment

import (
	"testing"

	"gonum.org/v1/gonum/mat"

	"github.com/robonotes/gonotes/timestep"
)

func TestStepLimit(t *testing.T) {
	limit := NewStepLimit(3)
	obs := mat.NewDense(1, 1, nil)

	for n := 0; n < 3; n++ {
		step := timestep.New(0, obs, timestep.Info{}, n)
		if limit.End(&step) {
			t.Errorf("step %v ended before the limit", n)
		}
		if step.Terminated {
			t.Errorf("step %v terminated before the limit", n)
		}
	}

	step := timestep.New(0, obs, timestep.Info{}, 3)
	if !limit.End(&step) {
		t.Error("step at the limit did not end the episode")
	}
	if !step.Terminated || !step.Last() {
		t.Error("ending the episode must mark the step terminated")
	}
	if step.Truncated {
		t.Error("a step limit terminates, never truncates")
	}
}
