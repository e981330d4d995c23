// Package midifile converts composition trajectories into MIDI note
// events and writes the events to standard MIDI files. The trajectory
// encoding follows a fixed vocabulary: each trajectory cell holds an
// action code, where code 0 sustains whatever the voice is playing,
// code 1 releases the sounding note, and codes 2 through 36 start one
// of 35 pitches. Each trajectory row lasts one 16th note.
package midifile

import (
	"fmt"
	"strings"
	"time"
)

const (
	// Action codes appearing in trajectory cells
	CodeNoEvent  int = 0
	CodeNoteOff  int = 1
	MinPitchCode int = 2
	MaxPitchCode int = 36

	// DefaultBasePitch is the MIDI key of the lowest pitch code. Key 48
	// is C3, so the 35 pitch codes span C3 through B5.
	DefaultBasePitch uint8 = 48

	// Timing of the written MIDI files. One trajectory row is a 16th
	// note.
	TicksPerQuarter uint16  = 480
	TicksPerStep    uint32  = uint32(TicksPerQuarter) / 4
	DefaultTempo    float64 = 120

	// DefaultVelocity is the attack velocity of every written note
	DefaultVelocity uint8 = 100
)

// EventKind denotes the kind of a MIDI note event
type EventKind int

const (
	NoteOn EventKind = iota
	NoteOff
)

func (e EventKind) String() string {
	if e == NoteOn {
		return "NoteOn"
	}
	return "NoteOff"
}

// Event is a single note event of one voice at an absolute tick
type Event struct {
	Tick  uint32
	Voice int
	Kind  EventKind
	Key   uint8
}

func (e Event) String() string {
	return fmt.Sprintf("%v(voice %v, key %v)@%v", e.Kind, e.Voice, e.Key,
		e.Tick)
}

// Sequence is a time-ordered sequence of note events, the MIDI-level
// view of a trajectory
type Sequence []Event

func (s Sequence) String() string {
	events := make([]string, len(s))
	for i, event := range s {
		events[i] = event.String()
	}
	return "[" + strings.Join(events, ", ") + "]"
}

// Filename returns the deterministic name of an exported MIDI file,
// derived from the wall-clock time t and the number of trajectory rows
// exported
func Filename(t time.Time, rows int) string {
	return fmt.Sprintf("ts%v_ep%v.midi", t.Format("01-02-06_1504"), rows)
}
