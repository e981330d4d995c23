package composer

import (
	"gonum.org/v1/gonum/mat"

	"github.com/robonotes/gonotes/midifile"
	"github.com/robonotes/gonotes/timestep"
)

// Constant implements a scorer that pays a fixed reward on every step,
// regardless of the trajectory. It is mainly useful for testing
// environment bookkeeping and as a placeholder while developing real
// reward schemes.
type Constant struct {
	reward float64
}

// NewConstant creates and returns a new Constant scorer
func NewConstant(reward float64) *Constant {
	return &Constant{reward}
}

// Score returns the fixed reward of the scorer
func (c *Constant) Score(trajectory mat.Matrix, upTo int) (float64,
	timestep.Info) {
	return c.reward, timestep.Info{"constant": c.reward}
}

// VoiceActivity implements a scorer that pays for voices that are
// sounding a note on the newest trajectory row. The reward of a step
// is weight times the fraction of voices sounding after that step. A
// voice is sounding if the most recent event in its column is a pitch,
// rather than a note off or the start of the song.
type VoiceActivity struct {
	weight float64
}

// NewVoiceActivity creates and returns a new VoiceActivity scorer
func NewVoiceActivity(weight float64) *VoiceActivity {
	return &VoiceActivity{weight}
}

// Score returns the activity reward of the newest trajectory row
func (v *VoiceActivity) Score(trajectory mat.Matrix, upTo int) (float64,
	timestep.Info) {
	_, cols := trajectory.Dims()
	if upTo < 1 || cols < 1 {
		return 0, timestep.Info{"activity": 0}
	}

	sounding := 0
	for j := 0; j < cols; j++ {
		if voiceSounding(trajectory, upTo, j) {
			sounding++
		}
	}

	reward := v.weight * float64(sounding) / float64(cols)
	return reward, timestep.Info{"activity": reward}
}

// voiceSounding reports whether voice j is sounding a note after row
// upTo-1, scanning backwards for the voice's most recent event
func voiceSounding(trajectory mat.Matrix, upTo, j int) bool {
	for i := upTo - 1; i >= 0; i-- {
		code := int(trajectory.At(i, j))
		if code == midifile.CodeNoEvent {
			continue
		}
		return code >= midifile.MinPitchCode
	}
	return false
}
