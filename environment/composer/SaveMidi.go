package composer

import (
	"fmt"
	"log"
	"path/filepath"
	"time"

	"gonum.org/v1/gonum/mat"

	env "github.com/robonotes/gonotes/environment"
	"github.com/robonotes/gonotes/midifile"
	ts "github.com/robonotes/gonotes/timestep"
	"github.com/robonotes/gonotes/utils/matutils"
)

// Rescore recomputes the reward bookkeeping of a complete trajectory,
// scoring it row by row with increasing cursor values the way live
// Step calls would have, and returns the total reward and the
// partial-reward ledger the episode would have produced.
func Rescore(trajectory mat.Matrix, scorer env.Scorer) (float64, ts.Info) {
	rows, _ := trajectory.Dims()

	totalReward := 0.0
	partialRewards := make(ts.Info)
	for upTo := 1; upTo <= rows; upTo++ {
		reward, info := scorer.Score(trajectory, upTo)
		totalReward += reward
		partialRewards.Add(info)
	}

	return totalReward, partialRewards
}

// SaveMidi renders an arbitrary complete trajectory without a live
// environment. The trajectory is re-scored from the first row through
// its full length, calling the scorer with increasing cursor values
// the way an episode of live Step calls would, and summing the rewards
// and reward breakdowns. SaveMidi then logs the same diagnostics as
// Render and, if midiDir is non-empty, writes the trajectory there as
// a MIDI file. The directory must already exist.
//
// SaveMidi depends only on its arguments, never on instance state, so
// it can replay trajectories produced elsewhere, e.g. loaded from
// saved experiment data.
func SaveMidi(trajectory *mat.Dense, scorer env.Scorer,
	sequencer midifile.Sequencer, midiDir string) error {
	if scorer == nil {
		return &EnvError{"savemidi", ErrNilScorer}
	}
	if sequencer == nil {
		sequencer = midifile.NewStandardSequencer()
	}

	rows, voices := trajectory.Dims()
	totalReward, partialRewards := Rescore(trajectory, scorer)

	sequence := sequencer.Sequence(matutils.IntRows(trajectory))

	log.Printf("Total reward: %v", totalReward)
	log.Printf("Partial rewards: %v", partialRewards)
	log.Printf("Current state:\n%v", matutils.Format(trajectory))
	log.Printf("MIDI sequence: %v", sequence)

	if midiDir == "" {
		return nil
	}

	name := midifile.Filename(time.Now(), rows)
	err := midifile.Write(sequence, voices, filepath.Join(midiDir, name))
	if err != nil {
		return &EnvError{"savemidi", fmt.Errorf("%w: %w", ErrFileWrite, err)}
	}
	return nil
}
