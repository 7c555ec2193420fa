package chord

// ChordStructure is the intervallic structure of a chord: a fixed table of
// ten slots, one per PitchClass, each either absent or holding an
// accidental offset. It is relative to a root note so transposition is
// very cheap.
//
// All builder methods take the structure by value and return the updated
// copy; the receiver is never changed.
type ChordStructure struct {
	present [PitchClassCount]bool
	offsets [PitchClassCount]PitchOffset
}

// NewChordStructure returns a structure with only the unison present, at
// offset zero. No operation ever removes a slot afterwards.
func NewChordStructure() ChordStructure {
	var s ChordStructure
	s.present[N1.Index()] = true
	return s
}

// StructureFromComponent returns a structure holding the single given
// component. This simplifies merging alterations into a core chord.
func StructureFromComponent(component ChordComponent) ChordStructure {
	var s ChordStructure
	s.present[component.Class.Index()] = true
	s.offsets[component.Class.Index()] = component.Offset
	return s
}

// Insert sets the slot for the component's degree, overwriting any offset
// already there.
func (s ChordStructure) Insert(component ChordComponent) ChordStructure {
	s.present[component.Class.Index()] = true
	s.offsets[component.Class.Index()] = component.Offset
	return s
}

// InsertMany inserts each component in order; a later duplicate degree in
// the same call wins.
func (s ChordStructure) InsertMany(components []ChordComponent) ChordStructure {
	for _, component := range components {
		s = s.Insert(component)
	}
	return s
}

// Merge overlays other onto s. Every slot present in other overwrites the
// corresponding slot in s; slots absent in other are left untouched.
// Merge is right-biased and not commutative.
func (s ChordStructure) Merge(other ChordStructure) ChordStructure {
	for i := 0; i < PitchClassCount; i++ {
		if other.present[i] {
			s.present[i] = true
			s.offsets[i] = other.offsets[i]
		}
	}
	return s
}

// Offset reports the stored accidental offset for the given degree, and
// whether the degree is present at all.
func (s ChordStructure) Offset(class PitchClass) (PitchOffset, bool) {
	if !s.present[class.Index()] {
		return 0, false
	}
	return s.offsets[class.Index()], true
}
