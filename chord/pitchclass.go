package chord

// PitchClass is a scale degree relative to some root note as part of a
// chord.
type PitchClass uint8

const (
	N1 PitchClass = iota
	N2
	N3
	N4
	N5
	N6
	N7
	N9
	N11
	N13
)

// PitchClassCount is the total number of PitchClass values.
const PitchClassCount = 10

// PitchClassFromInt constructs a PitchClass from its ordinal index.
func PitchClassFromInt(input int) (PitchClass, bool) {
	if input < 0 || input >= PitchClassCount {
		return 0, false
	}
	return PitchClass(input), true
}

// Index allows PitchClass to be used as an indexable element.
func (p PitchClass) Index() int {
	return int(p)
}

// ToInt returns the letter offset an unaltered instance of this degree
// lands on, mod 7. Compound degrees share the offset of their simple
// counterparts (9th with 2nd, 11th with 4th, 13th with 6th).
func (p PitchClass) ToInt() int {
	switch p {
	case N1:
		return 0
	case N2, N9:
		return 1
	case N3:
		return 2
	case N4, N11:
		return 3
	case N5:
		return 4
	case N6, N13:
		return 5
	case N7:
		return 6
	}
	panic("unknown pitch class")
}

// ToRelativeDifference returns the number of semitones above the root the
// natural instance of this degree sits. Compound degrees add an octave.
func (p PitchClass) ToRelativeDifference() int {
	switch p {
	case N1:
		return 0
	case N2:
		return 2
	case N3:
		return 4
	case N4:
		return 5
	case N5:
		return 7
	case N6:
		return 9
	case N7:
		return 11
	case N9:
		return 14
	case N11:
		return 17
	case N13:
		return 21
	}
	panic("unknown pitch class")
}

var extendedClasses = [4]ChordComponent{
	{N7, 0}, {N9, 0}, {N11, 0}, {N13, 0},
}

// ExtendedIntervals returns the ordered chord degrees this degree
// implicitly stacks beneath it.
//
// For example a C11 chord implicitly includes the lower extensions of the
// 7th and 9th; passing N11 returns the 7th, 9th and 11th. Degrees below
// the 7th return nothing. Callers such as the shorthand parser use this to
// fill in the extensions a high extension implies; the structure itself
// never inserts them automatically.
func (p PitchClass) ExtendedIntervals() []ChordComponent {
	switch p {
	case N7:
		return extendedClasses[:1]
	case N9:
		return extendedClasses[:2]
	case N11:
		return extendedClasses[:3]
	case N13:
		return extendedClasses[:4]
	}
	return nil
}

// ChordComponent is a relative note within a chord by its intervallic
// representation. For example (N7, -1) is a flattened seventh, as found in
// a dominant seventh chord.
type ChordComponent struct {
	Class  PitchClass
	Offset PitchOffset
}
