// Package midi bridges the symbolic chord model to concrete MIDI pitches
// and standard MIDI files.
package midi

import (
	"bytes"
	"errors"
	"fmt"
	"os"

	"github.com/jsphweid/tertian/chord"
	"github.com/jsphweid/tertian/util"
	"gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/smf"
)

// sharp-spelled names for the twelve semitones above C
var cBased = [12]string{"C", "C#", "D", "D#", "E", "F", "F#", "G", "G#", "A", "A#", "B"}

// NoteNumber resolves a spelled note to its MIDI note number within the
// given octave register (middle C, C4, is 60). Out-of-range results are
// clamped to 0..127.
func NoteNumber(n chord.Note, octave int) uint8 {
	semitone := chord.C.Difference(n.Root) + int(n.Offset)
	return clamp((octave+1)*12 + semitone)
}

func clamp(num int) uint8 {
	if num < 0 {
		num = 0
	}
	return uint8(util.Min(num, 127))
}

// NoteName renders a MIDI note number as a sharp-spelled name with its
// octave, e.g. 61 -> "C#4".
func NoteName(num uint8) string {
	return fmt.Sprintf("%v%v", cBased[num%12], int(num/12)-1)
}

// ChordNotes resolves a chord's note sequence to MIDI note numbers. The
// root sits in the given octave and the structural notes stack upward
// from it by their exact semitone distances. The slash note, if present,
// sounds an octave below the root.
func ChordNotes(c chord.Chord, octave int) []uint8 {
	var res []uint8
	if c.Slash != nil {
		res = append(res, NoteNumber(*c.Slash, octave-1))
	}

	rootNum := (octave+1)*12 + chord.C.Difference(c.Root.Root) + int(c.Root.Offset)
	for i := 0; i < chord.PitchClassCount; i++ {
		class, ok := chord.PitchClassFromInt(i)
		if !ok {
			panic("pitch class slot out of range")
		}
		offset, present := c.Structure.Offset(class)
		if !present {
			continue
		}
		res = append(res, clamp(rootNum+class.ToRelativeDifference()+int(offset)))
	}
	return res
}

// PolyChordNotes resolves a polychord, the lower chord in the given octave
// and the upper chord one octave above.
func PolyChordNotes(p chord.PolyChord, octave int) []uint8 {
	res := ChordNotes(p.Lower, octave)
	return append(res, ChordNotes(p.Upper, octave+1)...)
}

// WriteChordFile renders each chord as one bar of simultaneous notes into
// a single-track SMF file at the given path.
func WriteChordFile(path string, chords []chord.Chord, octave int) error {
	clock := smf.MetricTicks(960)
	bar := clock.Ticks4th() * 4

	var track smf.Track
	for _, c := range chords {
		notes := ChordNotes(c, octave)
		for _, n := range notes {
			track.Add(0, midi.NoteOn(0, n, 100))
		}
		for i, n := range notes {
			var delta uint32
			if i == 0 {
				delta = bar
			}
			track.Add(delta, midi.NoteOff(0, n))
		}
	}
	track.Close(0)

	s := smf.New()
	s.TimeFormat = clock
	if err := s.Add(track); err != nil {
		return err
	}
	return s.WriteFile(path)
}

// ReadMidiFile parses a standard MIDI file from disk.
func ReadMidiFile(filepath string) (s *smf.SMF, e error) {
	var blank smf.SMF

	// the smf reader panics on some malformed files
	// https://github.com/gomidi/midi/issues/20
	defer func() {
		if r, ok := recover().(string); ok {
			e = errors.New(r)
		}
	}()

	dat, err := os.ReadFile(filepath)
	if err != nil {
		return &blank, fmt.Errorf("could not read midi file: %w", err)
	}

	res, err := smf.ReadFrom(bytes.NewReader(dat))
	if err != nil {
		return &blank, fmt.Errorf("could not parse midi file: %w", err)
	}
	return res, nil
}

// FileNoteNames collects the spelled name of every note-on event in a
// parsed MIDI file, in track order.
func FileNoteNames(s *smf.SMF) []string {
	var res []string
	for _, track := range s.Tracks {
		for _, event := range track {
			var channel, key, velocity uint8
			if event.Message.GetNoteOn(&channel, &key, &velocity) {
				res = append(res, NoteName(key))
			}
		}
	}
	return res
}
