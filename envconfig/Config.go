// Package envconfig provides configuration structs for configuring
// composition environments with default parameters and tasks.
// Environment configurations in this package are JSON serializable.
package envconfig

import (
	"encoding/json"
	"fmt"
	"os"

	env "github.com/robonotes/gonotes/environment"
	"github.com/robonotes/gonotes/environment/composer"
	ts "github.com/robonotes/gonotes/timestep"
)

// TaskName stores the names of the tasks that can be configured with
// this package
type TaskName string

// Tasks available for configuration
const (
	Constant      TaskName = "Constant"
	VoiceActivity TaskName = "VoiceActivity"
)

// Config implements a specific configuration of a composition
// environment and its task. The zero value of NumPitches selects the
// environment's default number of voices, and an empty MidiDir
// disables MIDI export.
type Config struct {
	MaxLength  int
	NumPitches int
	MidiDir    string
	Task       TaskName
	TaskWeight float64
	Seed       uint64
}

// NewConfig returns a new environment Config
func NewConfig(maxLength, numPitches int, midiDir string, task TaskName,
	taskWeight float64, seed uint64) Config {
	return Config{
		MaxLength:  maxLength,
		NumPitches: numPitches,
		MidiDir:    midiDir,
		Task:       task,
		TaskWeight: taskWeight,
		Seed:       seed,
	}
}

// FromFile loads and returns the Config stored in the JSON file at
// path
func FromFile(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("fromfile: could not read config: %w",
			err)
	}

	var config Config
	if err := json.Unmarshal(data, &config); err != nil {
		return Config{}, fmt.Errorf("fromfile: could not decode config: %w",
			err)
	}
	return config, nil
}

// Validate returns an error describing why the Config cannot create an
// environment, or nil if it can
func (c Config) Validate() error {
	if c.MaxLength <= 0 {
		return fmt.Errorf("validate: MaxLength must be positive, got %v",
			c.MaxLength)
	}
	if c.NumPitches < 0 {
		return fmt.Errorf("validate: NumPitches must be non-negative, "+
			"got %v", c.NumPitches)
	}
	switch c.Task {
	case Constant, VoiceActivity:
	default:
		return fmt.Errorf("validate: unknown task %q", c.Task)
	}
	return nil
}

// CreateScorer returns the scorer described by the Config
func (c Config) CreateScorer() (env.Scorer, error) {
	switch c.Task {
	case Constant:
		return composer.NewConstant(c.TaskWeight), nil
	case VoiceActivity:
		return composer.NewVoiceActivity(c.TaskWeight), nil
	default:
		return nil, fmt.Errorf("createscorer: unknown task %q", c.Task)
	}
}

// Create returns the environment described by the Config as well as
// the first timestep of the environment
func (c Config) Create() (*composer.Composition, ts.TimeStep, error) {
	if err := c.Validate(); err != nil {
		return nil, ts.TimeStep{}, err
	}

	scorer, err := c.CreateScorer()
	if err != nil {
		return nil, ts.TimeStep{}, err
	}

	numPitches := c.NumPitches
	if numPitches == 0 {
		numPitches = composer.DefaultNumPitches
	}

	var opts []composer.Option
	if c.MidiDir != "" {
		opts = append(opts, composer.WithMidiDir(c.MidiDir))
	}

	return composer.New(c.MaxLength, numPitches, scorer, opts...)
}
