package midifile_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/robonotes/gonotes/midifile"
)

func TestStandardSequencer(t *testing.T) {
	sequencer := midifile.NewStandardSequencer()
	step := midifile.TicksPerStep

	tests := []struct {
		name string
		rows [][]int
		want midifile.Sequence
	}{
		{
			name: "empty",
			rows: [][]int{},
			want: midifile.Sequence{},
		},
		{
			name: "note released at end of song",
			rows: [][]int{{2}},
			want: midifile.Sequence{
				{0, 0, midifile.NoteOn, 48},
				{step, 0, midifile.NoteOff, 48},
			},
		},
		{
			name: "note off with nothing sounding",
			rows: [][]int{{1}, {0}},
			want: midifile.Sequence{},
		},
		{
			name: "two voices",
			rows: [][]int{{5, 0}, {0, 0}, {7, 1}, {1, 1}},
			want: midifile.Sequence{
				{0, 0, midifile.NoteOn, 51},
				{2 * step, 0, midifile.NoteOff, 51},
				{2 * step, 0, midifile.NoteOn, 53},
				{3 * step, 0, midifile.NoteOff, 53},
			},
		},
		{
			name: "retrigger releases first",
			rows: [][]int{{2}, {3}},
			want: midifile.Sequence{
				{0, 0, midifile.NoteOn, 48},
				{step, 0, midifile.NoteOff, 48},
				{step, 0, midifile.NoteOn, 49},
				{2 * step, 0, midifile.NoteOff, 49},
			},
		},
	}

	for _, test := range tests {
		got := sequencer.Sequence(test.rows)

		if len(got) != len(test.want) {
			t.Errorf("%v: got %v events, want %v: %v", test.name, len(got),
				len(test.want), got)
			continue
		}

		for i := range got {
			if got[i] != test.want[i] {
				t.Errorf("%v: event %v: got %v, want %v", test.name, i,
					got[i], test.want[i])
			}
		}
	}
}

func TestFilename(t *testing.T) {
	stamp := time.Date(2024, time.March, 7, 15, 4, 0, 0, time.UTC)

	got := midifile.Filename(stamp, 8)
	want := "ts03-07-24_1504_ep8.midi"
	if got != want {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestWrite(t *testing.T) {
	sequencer := midifile.NewStandardSequencer()
	seq := sequencer.Sequence([][]int{{5, 0}, {0, 2}, {1, 1}})

	path := filepath.Join(t.TempDir(), "song.midi")
	if err := midifile.Write(seq, 2, path); err != nil {
		t.Fatalf("write: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read back: %v", err)
	}
	if len(data) < 4 || string(data[:4]) != "MThd" {
		t.Error("write: file does not start with an SMF header")
	}

	// Voice counts below one are rejected
	if err := midifile.Write(seq, 0, path); err == nil {
		t.Error("write: expected an error for zero voices")
	}
}
