package midifile

// Sequencer converts trajectory rows into a MIDI event sequence. The
// rows argument holds one action vector per timestep, each with one
// action code per voice.
type Sequencer interface {
	Sequence(rows [][]int) Sequence
}

// StandardSequencer implements the standard interpretation of the
// trajectory vocabulary. Per voice it tracks the sounding note across
// rows: code 0 sustains it, code 1 releases it, and a pitch code
// releases it before starting the new note. Notes still sounding after
// the final row are released at the end of the song.
type StandardSequencer struct {
	// BasePitch is the MIDI key of pitch code 2. Code k sounds key
	// BasePitch + k - 2.
	BasePitch uint8
}

// NewStandardSequencer returns a StandardSequencer rooted at the
// default base pitch
func NewStandardSequencer() StandardSequencer {
	return StandardSequencer{BasePitch: DefaultBasePitch}
}

// Key returns the MIDI key of a pitch code
func (s StandardSequencer) Key(code int) uint8 {
	return s.BasePitch + uint8(code-MinPitchCode)
}

// Sequence converts trajectory rows into note events
func (s StandardSequencer) Sequence(rows [][]int) Sequence {
	if len(rows) == 0 {
		return Sequence{}
	}

	numVoices := len(rows[0])

	// sounding[v] holds the key currently sounding in voice v, or -1
	sounding := make([]int, numVoices)
	for v := range sounding {
		sounding[v] = -1
	}

	events := make(Sequence, 0, len(rows))
	for r, row := range rows {
		tick := uint32(r) * TicksPerStep

		for v, code := range row {
			switch {
			case code == CodeNoEvent:

			case code == CodeNoteOff:
				if sounding[v] >= 0 {
					events = append(events, Event{tick, v, NoteOff,
						uint8(sounding[v])})
					sounding[v] = -1
				}

			case code >= MinPitchCode && code <= MaxPitchCode:
				if sounding[v] >= 0 {
					events = append(events, Event{tick, v, NoteOff,
						uint8(sounding[v])})
				}
				key := s.Key(code)
				events = append(events, Event{tick, v, NoteOn, key})
				sounding[v] = int(key)
			}
		}
	}

	// Release anything still sounding at the end of the song
	endTick := uint32(len(rows)) * TicksPerStep
	for v, key := range sounding {
		if key >= 0 {
			events = append(events, Event{endTick, v, NoteOff, uint8(key)})
		}
	}

	return events
}
