// Package agent defines policies for acting in environments
package agent

import (
	"gonum.org/v1/gonum/mat"

	"github.com/robonotes/gonotes/timestep"
)

// Policy determines how an agent selects actions. Given the latest
// timestep of the environment, a Policy returns the action to take
// next. Policies in this package are fixed: they never learn from the
// timesteps they see.
type Policy interface {
	SelectAction(t timestep.TimeStep) *mat.VecDense
}
