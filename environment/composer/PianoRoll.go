package composer

import (
	"fmt"

	"github.com/fogleman/gg"

	"github.com/robonotes/gonotes/midifile"
)

const (
	// Piano-roll geometry, in pixels
	cellWidth  = 12
	cellHeight = 8
	rollMargin = 10
)

// A small palette of voice colours, reused modulo its length
var voiceShades = [][3]float64{
	{0.22, 0.49, 0.72},
	{0.89, 0.47, 0.20},
	{0.30, 0.69, 0.29},
	{0.84, 0.25, 0.31},
}

// SavePianoRoll draws the current trajectory as a piano-roll image and
// writes it to path as a PNG. Time runs left to right, one column per
// 16th-note step, and pitch runs bottom to top over the 35 playable
// pitch codes. Each voice is drawn in its own colour, and a sounding
// note covers every step it sustains through.
func (c *Composition) SavePianoRoll(path string) error {
	numPitches := midifile.MaxPitchCode - midifile.MinPitchCode + 1

	width := c.maxLength*cellWidth + 2*rollMargin
	height := numPitches*cellHeight + 2*rollMargin

	dc := gg.NewContext(width, height)
	dc.SetRGB(1, 1, 1)
	dc.Clear()

	// Pitch grid lines
	dc.SetRGB(0.9, 0.9, 0.9)
	dc.SetLineWidth(1.0)
	for p := 0; p <= numPitches; p++ {
		y := float64(rollMargin + p*cellHeight)
		dc.DrawLine(rollMargin, y, float64(width-rollMargin), y)
	}
	dc.Stroke()

	// sounding[v] holds the pitch code sounding in voice v, or -1
	sounding := make([]int, c.numPitches)
	for v := range sounding {
		sounding[v] = -1
	}

	for r := 0; r < c.cursor; r++ {
		for v := 0; v < c.numPitches; v++ {
			code := int(c.trajectory.At(r, v))
			switch {
			case code == midifile.CodeNoteOff:
				sounding[v] = -1
			case code >= midifile.MinPitchCode &&
				code <= midifile.MaxPitchCode:
				sounding[v] = code
			}

			if sounding[v] < 0 {
				continue
			}

			shade := voiceShades[v%len(voiceShades)]
			dc.SetRGB(shade[0], shade[1], shade[2])

			x := float64(rollMargin + r*cellWidth)
			row := midifile.MaxPitchCode - sounding[v]
			y := float64(rollMargin + row*cellHeight)
			dc.DrawRectangle(x, y, cellWidth, cellHeight)
			dc.Fill()
		}
	}

	if err := dc.SavePNG(path); err != nil {
		return &EnvError{"pianoroll", fmt.Errorf("%w: %w", ErrFileWrite, err)}
	}
	return nil
}
