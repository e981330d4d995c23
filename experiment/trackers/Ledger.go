package trackers

import (
	"encoding/json"
	"fmt"
	"os"

	ts "github.com/robonotes/gonotes/timestep"
)

// Ledger tracks and saves the per-component reward breakdown of each
// episode in an experiment. Every timestep's Info map is accumulated
// additively into the breakdown of the current episode, mirroring the
// partial-reward ledger the environment keeps, and the breakdown is
// cached when the episode ends. Saved data is JSON encoded, one object
// per episode keyed by reward component name.
//
// Note: An episode must finish for this Tracker to save its data.
type Ledger struct {
	current  ts.Info
	episodes []ts.Info
	filename string
}

// NewLedger creates and returns a new *Ledger Tracker which will save
// its data at the specified location filename
func NewLedger(filename string) *Ledger {
	return &Ledger{
		current:  make(ts.Info),
		filename: filename,
	}
}

// Track accumulates the reward breakdown of a timestep into the
// current episode's ledger, caching the ledger when the timestep is
// the last of its episode
func (l *Ledger) Track(step ts.TimeStep) {
	l.current.Add(step.Info)

	if step.Last() {
		l.episodes = append(l.episodes, l.current)
		l.current = make(ts.Info)
	}
}

// Episodes returns a copy of the per-episode ledgers cached so far
func (l *Ledger) Episodes() []ts.Info {
	episodes := make([]ts.Info, len(l.episodes))
	for i, episode := range l.episodes {
		episodes[i] = episode.Copy()
	}
	return episodes
}

// Save saves the data tracked by the Ledger Tracker to disk
func (l *Ledger) Save() error {
	data, err := json.MarshalIndent(l.episodes, "", "\t")
	if err != nil {
		return fmt.Errorf("save: could not encode ledger data: %w", err)
	}

	if err := os.WriteFile(l.filename, data, 0644); err != nil {
		return fmt.Errorf("save: could not write ledger data: %w", err)
	}
	return nil
}

// LoadLedger loads and returns the data saved by a Ledger Tracker
func LoadLedger(filename string) ([]ts.Info, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("loadledger: could not read data file: %w",
			err)
	}

	var episodes []ts.Info
	if err := json.Unmarshal(data, &episodes); err != nil {
		return nil, fmt.Errorf("loadledger: could not decode data: %w", err)
	}

	return episodes, nil
}
