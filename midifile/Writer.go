package midifile

import (
	"fmt"

	"gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/smf"
)

// Write writes a Sequence to a format-1 standard MIDI file at path.
// The file carries one meta track holding the tempo followed by one
// track per voice. The directory of path must already exist; Write
// never creates directories.
func Write(seq Sequence, numVoices int, path string) error {
	if numVoices < 1 {
		return fmt.Errorf("write: cannot write MIDI file with %v voices",
			numVoices)
	}

	s := smf.New()
	s.TimeFormat = smf.MetricTicks(TicksPerQuarter)

	var meta smf.Track
	meta.Add(0, smf.MetaTrackSequenceName("composition"))
	meta.Add(0, smf.MetaTempo(DefaultTempo))
	meta.Close(0)
	s.Add(meta)

	for v := 0; v < numVoices; v++ {
		var track smf.Track

		var lastTick uint32
		for _, event := range seq {
			if event.Voice != v {
				continue
			}

			delta := event.Tick - lastTick
			lastTick = event.Tick

			switch event.Kind {
			case NoteOn:
				track.Add(delta, midi.NoteOn(uint8(v), event.Key,
					DefaultVelocity))
			case NoteOff:
				track.Add(delta, midi.NoteOff(uint8(v), event.Key))
			}
		}

		track.Close(0)
		s.Add(track)
	}

	return s.WriteFile(path)
}
