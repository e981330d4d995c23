package agent

import (
	"golang.org/x/exp/rand"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/robonotes/gonotes/spec"
	"github.com/robonotes/gonotes/timestep"
)

// UniformRandom implements a Policy that samples each action dimension
// independently from a uniform categorical distribution over the legal
// action values. The distributions sample values in (low, low+1, ...
// high) where low and high are the bounds the action specification
// declares for that dimension.
type UniformRandom struct {
	dims int
	low  []float64
	rand []distuv.Categorical
}

// NewUniformRandom returns a new UniformRandom policy acting in the
// action space described by actionSpec, seeded with seed
func NewUniformRandom(actionSpec spec.Environment,
	seed uint64) *UniformRandom {
	source := rand.NewSource(seed)
	dims := actionSpec.Shape.Len()

	low := make([]float64, dims)
	random := make([]distuv.Categorical, dims)
	for i := range random {
		low[i] = actionSpec.LowerBound.AtVec(i)
		high := actionSpec.UpperBound.AtVec(i)

		// Create the weights for the uniform categorical distribution
		weights := make([]float64, int(high-low[i])+1)
		for j := range weights {
			weights[j] = 1.0 / float64(len(weights))
		}

		random[i] = distuv.NewCategorical(weights, source)
	}

	return &UniformRandom{dims, low, random}
}

// SelectAction returns a uniformly random action vector. The timestep
// is ignored; the policy does not condition on observations.
func (u *UniformRandom) SelectAction(t timestep.TimeStep) *mat.VecDense {
	action := make([]float64, u.dims)
	for i := range action {
		action[i] = u.low[i] + u.rand[i].Rand()
	}

	return mat.NewVecDense(u.dims, action)
}
