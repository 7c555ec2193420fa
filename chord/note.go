// Package chord models tertian harmony as plain immutable values: spelled
// notes, relative pitch classes and the intervallic structure of a chord.
//
// Values can be built manually or from shorthand text:
//
//	root := chord.NewNote(chord.A, 1)
//	structure := chord.NewChordStructure().
//		InsertMany([]chord.ChordComponent{
//			{chord.N3, 0},
//			{chord.N5, 1},
//			{chord.N7, 0},
//			{chord.N9, 0},
//			{chord.N11, 1},
//			{chord.N13, 0},
//		})
//	chord1 := chord.NewChord(root, structure)
//
//	chord2, err := chord.FromShorthand("A#Maj13(#5,#11)")
//
// Every chord has an implicit root pitch class.
package chord

import "strings"

// NoteClass is a single note letter without accidentals.
type NoteClass uint8

const (
	A NoteClass = iota
	B
	C
	D
	E
	F
	G
)

// NoteClassCount is the total number of NoteClass values.
const NoteClassCount = 7

var noteClassNames = [NoteClassCount]string{"A", "B", "C", "D", "E", "F", "G"}

// semitones of each natural letter measured up from A
var noteClassOffsets = [NoteClassCount]int{0, 2, 3, 5, 7, 8, 10}

// NoteClassFromChar constructs a NoteClass from its letter character.
func NoteClassFromChar(input byte) (NoteClass, bool) {
	if input < 'A' || input > 'G' {
		return 0, false
	}
	return NoteClass(input - 'A'), true
}

// NoteClassFromInt constructs a NoteClass from its ordinal index.
func NoteClassFromInt(input int) (NoteClass, bool) {
	if input < 0 || input >= NoteClassCount {
		return 0, false
	}
	return NoteClass(input), true
}

func (n NoteClass) ToInt() int {
	return int(n)
}

// Difference computes the semitone distance from n up to other.
// The result is always in [0, 12).
func (n NoteClass) Difference(other NoteClass) int {
	upper := noteClassOffsets[other.ToInt()] + 12
	lower := noteClassOffsets[n.ToInt()]
	return (upper - lower) % 12
}

func (n NoteClass) String() string {
	return noteClassNames[n.ToInt()]
}

// PitchOffset counts the accidentals applied to a note or chord degree.
// Positive values are repeated sharps, negative values repeated flats.
type PitchOffset = int8

// Note is a fully spelled pitch class: a letter plus accidentals,
// independent of octave.
type Note struct {
	Root   NoteClass
	Offset PitchOffset
}

func NewNote(root NoteClass, offset PitchOffset) Note {
	return Note{Root: root, Offset: offset}
}

// GetRelative derives the note lying the given component's degree above n.
// The returned note always uses the diatonically correct letter for the
// degree, and its distance from n is always exactly the degree's natural
// semitone count plus the component's offset.
func (n Note) GetRelative(component ChordComponent) Note {
	rootVal := (n.Root.ToInt() + component.Class.ToInt()) % NoteClassCount
	rootNote, ok := NoteClassFromInt(rootVal)
	if !ok {
		panic("note letter index out of range")
	}
	relOffset := PitchOffset(component.Class.ToRelativeDifference() - n.Root.Difference(rootNote))

	return Note{
		Root:   rootNote,
		Offset: n.Offset + component.Offset + relOffset,
	}
}

// String renders the letter followed by the accidentals, "#" repeated for
// positive offsets or "b" repeated for negative ones.
func (n Note) String() string {
	var sb strings.Builder
	sb.WriteString(n.Root.String())

	accidental := byte('#')
	count := n.Offset
	if count < 0 {
		accidental = 'b'
		count = -count
	}
	for i := PitchOffset(0); i < count; i++ {
		sb.WriteByte(accidental)
	}
	return sb.String()
}
