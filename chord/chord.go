package chord

// Chord is a single chord comprised of a root note, an optional slash bass
// note and an intervallic structure.
type Chord struct {
	// Slash chord bass note, sounded before the structural notes. It does
	// not alter the structure.
	Slash *Note

	Root      Note
	Structure ChordStructure
}

// NewChord constructs a chord with no slash note.
func NewChord(root Note, structure ChordStructure) Chord {
	return Chord{Root: root, Structure: structure}
}

// NewSlashChord constructs a slash chord.
func NewSlashChord(slash Note, root Note, structure ChordStructure) Chord {
	return Chord{Slash: &slash, Root: root, Structure: structure}
}

// Iter returns a fresh cursor over the chord's notes: the slash note first
// if present, then each populated degree slot in ascending slot order,
// resolved against the root. Iteration never modifies the chord and every
// call is independent of previous ones.
func (c Chord) Iter() NoteIterator {
	return NoteIterator{chord: c}
}

// Notes collects the chord's full note sequence.
func (c Chord) Notes() []Note {
	it := c.Iter()
	var res []Note
	for {
		n, ok := it.Next()
		if !ok {
			return res
		}
		res = append(res, n)
	}
}

type iterState uint8

const (
	stateSlash iterState = iota
	stateStructure
	stateExhausted
)

// NoteIterator is a cursor over the notes of a chord. The zero slot of the
// walk is the slash note; the structure slots follow in ordinal order.
type NoteIterator struct {
	chord Chord
	state iterState
	slot  int
}

// Next returns the next note in the sequence, or false once exhausted.
func (it *NoteIterator) Next() (Note, bool) {
	for {
		switch it.state {
		case stateSlash:
			it.state = stateStructure
			if it.chord.Slash != nil {
				return *it.chord.Slash, true
			}

		case stateStructure:
			for it.slot < PitchClassCount {
				i := it.slot
				it.slot++

				if it.chord.Structure.present[i] {
					class, ok := PitchClassFromInt(i)
					if !ok {
						panic("pitch class slot out of range")
					}
					component := ChordComponent{Class: class, Offset: it.chord.Structure.offsets[i]}
					return it.chord.Root.GetRelative(component), true
				}
			}
			it.state = stateExhausted

		case stateExhausted:
			return Note{}, false
		}
	}
}

// PolyChord is an upper chord stacked atop an independently rooted lower
// chord. The two structures are never merged.
type PolyChord struct {
	Upper Chord
	Lower Chord
}

// NewPolyChord constructs a polychord from its upper and lower halves.
func NewPolyChord(upper Chord, lower Chord) PolyChord {
	return PolyChord{Upper: upper, Lower: lower}
}

// Iter returns a fresh cursor yielding the lower chord's full sequence
// followed by the upper chord's, a plain concatenation with no pitch-based
// interleaving.
func (p PolyChord) Iter() PolyNoteIterator {
	return PolyNoteIterator{lower: p.Lower.Iter(), upper: p.Upper.Iter()}
}

// Notes collects the polychord's full note sequence, lower then upper.
func (p PolyChord) Notes() []Note {
	return append(p.Lower.Notes(), p.Upper.Notes()...)
}

// PolyNoteIterator is a cursor over the notes of a polychord.
type PolyNoteIterator struct {
	lower NoteIterator
	upper NoteIterator
}

// Next returns the next note in the sequence, or false once exhausted.
func (it *PolyNoteIterator) Next() (Note, bool) {
	if n, ok := it.lower.Next(); ok {
		return n, true
	}
	return it.upper.Next()
}
