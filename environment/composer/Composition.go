// Package composer implements a music composition environment. An
// agent composes a song by emitting one action vector per timestep,
// each holding one action code per voice. The environment accumulates
// the actions into a trajectory, scores each new row with its Scorer,
// and can render the completed composition as a MIDI file.
package composer

import (
	"fmt"
	"log"
	"path/filepath"
	"time"

	"gonum.org/v1/gonum/mat"

	env "github.com/robonotes/gonotes/environment"
	"github.com/robonotes/gonotes/midifile"
	"github.com/robonotes/gonotes/spec"
	ts "github.com/robonotes/gonotes/timestep"
	"github.com/robonotes/gonotes/utils/matutils"
)

const (
	// Legal action codes. Each action vector element is one of 35
	// pitch codes or one of 2 special codes (no event and note off),
	// as interpreted by the midifile package.
	MinAction int = midifile.CodeNoEvent
	MaxAction int = midifile.MaxPitchCode

	// DefaultNumPitches is the number of voices used when a
	// configuration does not say otherwise
	DefaultNumPitches int = 2
)

// Composition implements the composition environment. The environment
// state is a trajectory of maxLength rows, one per timestep, and
// numPitches columns, one per voice. Rows before the cursor hold the
// actions taken so far this episode; rows at and after the cursor are
// zero. Each step writes the action at the cursor, scores the
// trajectory up to and including the new row, and terminates the
// episode exactly when the trajectory is full. There is no other
// termination condition.
//
// Alongside the trajectory, the environment accumulates the total
// reward of the episode and a ledger of the reward per scorer
// component, both reset at the start of each episode.
//
// The environment is deterministic: the start state is always the
// all-zero trajectory, and transitions write the action as given.
// Action values are not validated against the action spec; validating
// them is the caller's responsibility.
type Composition struct {
	env.Scorer

	maxLength  int
	numPitches int

	trajectory     *mat.Dense
	cursor         int
	totalReward    float64
	partialRewards ts.Info

	ender     env.Ender
	sequencer midifile.Sequencer
	midiDir   string
}

// Option configures a Composition at construction time
type Option func(*Composition)

// WithMidiDir sets the directory Render and SaveMidi write MIDI files
// to. The directory must exist by the time a file is written; the
// environment never creates it. Without this option no files are
// written.
func WithMidiDir(dir string) Option {
	return func(c *Composition) {
		c.midiDir = dir
	}
}

// WithSequencer sets the Sequencer that converts the trajectory to
// MIDI events during rendering
func WithSequencer(s midifile.Sequencer) Option {
	return func(c *Composition) {
		c.sequencer = s
	}
}

// New creates and returns a new Composition along with the first
// timestep of its first episode. The maxLength parameter fixes the
// episode length in timesteps, numPitches fixes the number of voices,
// and scorer implements the reward scheme.
func New(maxLength, numPitches int, scorer env.Scorer,
	opts ...Option) (*Composition, ts.TimeStep, error) {
	if maxLength <= 0 {
		return nil, ts.TimeStep{}, &EnvError{"new", ErrNonPositiveLength}
	}
	if numPitches <= 0 {
		return nil, ts.TimeStep{}, &EnvError{"new", ErrNonPositiveVoices}
	}
	if scorer == nil {
		return nil, ts.TimeStep{}, &EnvError{"new", ErrNilScorer}
	}

	composition := &Composition{
		Scorer:     scorer,
		maxLength:  maxLength,
		numPitches: numPitches,
		ender:      env.NewStepLimit(maxLength),
		sequencer:  midifile.NewStandardSequencer(),
	}
	for _, opt := range opts {
		opt(composition)
	}

	firstStep := composition.Reset()
	return composition, firstStep, nil
}

// Reset resets the environment between episodes, discarding the
// trajectory, the accumulated reward, and the partial-reward ledger,
// and returns the first timestep of the new episode. Reset may be
// called at any time, including mid-episode.
//
// The environment is deterministic, so any seed or options given are
// accepted for interface compatibility but unused.
func (c *Composition) Reset(opts ...env.ResetOption) ts.TimeStep {
	_ = env.NewResetConfig(opts...)

	c.trajectory = mat.NewDense(c.maxLength, c.numPitches, nil)
	c.cursor = 0
	c.totalReward = 0
	c.partialRewards = make(ts.Info)

	return ts.New(0, c.trajectory, ts.Info{}, 0)
}

// Step writes the action into the trajectory row at the cursor and
// advances the cursor. The new row is scored by the Scorer, which sees
// the trajectory up to and including the just-written row, never
// beyond. The returned timestep carries the step's own reward and info
// breakdown, not the episode totals, along with the full trajectory
// buffer as the observation. The timestep is terminated exactly when
// the trajectory is full.
//
// Step returns an error if the episode already terminated or if the
// action does not have one value per voice.
func (c *Composition) Step(action *mat.VecDense) (ts.TimeStep, error) {
	if c.cursor >= c.maxLength {
		return ts.TimeStep{}, &EnvError{"step", ErrOutOfBoundsStep}
	}
	if action.Len() != c.numPitches {
		return ts.TimeStep{}, &EnvError{"step",
			fmt.Errorf("%w: got %v, want %v", ErrBadActionShape,
				action.Len(), c.numPitches)}
	}

	for j := 0; j < c.numPitches; j++ {
		c.trajectory.Set(c.cursor, j, action.AtVec(j))
	}
	c.cursor++

	reward, info := c.Score(c.trajectory, c.cursor)
	c.totalReward += reward
	c.partialRewards.Add(info)

	step := ts.New(reward, c.trajectory, info, c.cursor)
	c.ender.End(&step)

	return step, nil
}

// Render displays the current state of the composition. Only the
// human render mode is supported; any other mode is rejected with an
// error. The human mode logs the total reward, the partial-reward
// ledger, the trajectory, and its MIDI event sequence. If a MIDI
// directory was configured, Render also writes the composition there
// as a MIDI file named from the wall-clock time and the trajectory
// length.
func (c *Composition) Render(mode env.RenderMode) error {
	if mode != env.ModeHuman {
		return &EnvError{"render", fmt.Errorf("%w: %q", ErrUnsupportedMode,
			mode)}
	}

	sequence := c.sequencer.Sequence(matutils.IntRows(c.trajectory))

	log.Printf("Total reward: %v", c.totalReward)
	log.Printf("Partial rewards: %v", c.partialRewards)
	log.Printf("Current state:\n%v", matutils.Format(c.trajectory))
	log.Printf("MIDI sequence: %v", sequence)

	if c.midiDir == "" {
		return nil
	}

	name := midifile.Filename(time.Now(), c.maxLength)
	err := midifile.Write(sequence, c.numPitches, filepath.Join(c.midiDir,
		name))
	if err != nil {
		return &EnvError{"render", fmt.Errorf("%w: %w", ErrFileWrite, err)}
	}
	return nil
}

// ObservationSpec returns the observation specification of the
// environment. Observations are the full trajectory buffer, so the
// specification describes maxLength * numPitches action codes.
func (c *Composition) ObservationSpec() spec.Environment {
	return c.codesSpec(spec.Observation, c.maxLength*c.numPitches)
}

// ActionSpec returns the action specification of the environment.
// Actions are vectors of one action code per voice.
func (c *Composition) ActionSpec() spec.Environment {
	return c.codesSpec(spec.Action, c.numPitches)
}

// codesSpec returns the specification of size discrete action codes
func (c *Composition) codesSpec(t spec.SpecType, size int) spec.Environment {
	shape := mat.NewVecDense(size, nil)
	lowerBound := mat.NewVecDense(size, nil)

	upperBound := matutils.VecOnes(size)
	upperBound.ScaleVec(float64(MaxAction), upperBound)

	return spec.NewEnvironment(shape, t, lowerBound, upperBound,
		spec.Discrete)
}

// Cursor returns the number of trajectory rows filled in so far this
// episode
func (c *Composition) Cursor() int {
	return c.cursor
}

// Dims returns the number of rows and voices of the trajectory buffer
func (c *Composition) Dims() (rows, voices int) {
	return c.maxLength, c.numPitches
}

// CumulativeReward returns the total reward accumulated so far this
// episode
func (c *Composition) CumulativeReward() float64 {
	return c.totalReward
}

// PartialRewards returns a copy of the episode's reward ledger, the
// reward accumulated so far per scorer component
func (c *Composition) PartialRewards() ts.Info {
	return c.partialRewards.Copy()
}

// Trajectory returns a copy of the trajectory buffer
func (c *Composition) Trajectory() *mat.Dense {
	return mat.DenseCopyOf(c.trajectory)
}

// String returns a string representation of the environment
func (c *Composition) String() string {
	str := "Composition  |  Steps: %v/%v  |  Total Reward: %v"
	return fmt.Sprintf(str, c.cursor, c.maxLength, c.totalReward)
}
