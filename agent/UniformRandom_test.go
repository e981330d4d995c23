package agent_test

import (
	"testing"

	"github.com/robonotes/gonotes/agent"
	"github.com/robonotes/gonotes/environment/composer"
	ts "github.com/robonotes/gonotes/timestep"
)

func TestUniformRandomRespectsActionSpec(t *testing.T) {
	c, first, err := composer.New(4, 3, composer.NewConstant(1))
	if err != nil {
		t.Fatalf("new: %v", err)
	}

	policy := agent.NewUniformRandom(c.ActionSpec(), 42)

	var step ts.TimeStep = first
	for i := 0; i < 100; i++ {
		action := policy.SelectAction(step)

		if action.Len() != 3 {
			t.Fatalf("action has %v values, want 3", action.Len())
		}
		for j := 0; j < action.Len(); j++ {
			value := action.AtVec(j)
			if value != float64(int(value)) {
				t.Errorf("action value %v is not integral", value)
			}
			if value < float64(composer.MinAction) ||
				value > float64(composer.MaxAction) {
				t.Errorf("action value %v outside [%v, %v]", value,
					composer.MinAction, composer.MaxAction)
			}
		}
	}
}

func TestUniformRandomIsDeterministicPerSeed(t *testing.T) {
	c, first, err := composer.New(4, 2, composer.NewConstant(1))
	if err != nil {
		t.Fatalf("new: %v", err)
	}

	a := agent.NewUniformRandom(c.ActionSpec(), 7)
	b := agent.NewUniformRandom(c.ActionSpec(), 7)

	for i := 0; i < 20; i++ {
		x := a.SelectAction(first)
		y := b.SelectAction(first)
		for j := 0; j < x.Len(); j++ {
			if x.AtVec(j) != y.AtVec(j) {
				t.Fatalf("draw %v: policies with equal seeds diverged: "+
					"%v vs %v", i, x.AtVec(j), y.AtVec(j))
			}
		}
	}
}
