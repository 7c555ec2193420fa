package chord

import "fmt"

// SyntaxError is the single error kind reported for malformed shorthand
// text. Pos is the byte position of the offending input.
type SyntaxError struct {
	Pos int
	Msg string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("invalid shorthand at position %v: %v", e.Pos, e.Msg)
}

// FromShorthand constructs a chord from shorthand text such as "C", "Am7",
// "A#Maj13(#5,#11)" or "A/C#".
func FromShorthand(input string) (Chord, error) {
	s := scanner{input: input}
	c, err := s.parseChord()
	if err != nil {
		return Chord{}, err
	}
	if !s.done() {
		return Chord{}, s.errorf("unexpected trailing input")
	}
	return c, nil
}

// PolyChordFromShorthand constructs a polychord from shorthand text such
// as "C|Am", the upper chord written first.
func PolyChordFromShorthand(input string) (PolyChord, error) {
	s := scanner{input: input}
	upper, err := s.parseChord()
	if err != nil {
		return PolyChord{}, err
	}
	if !s.eat("|") {
		return PolyChord{}, s.errorf("expected '|' between polychord halves")
	}
	lower, err := s.parseChord()
	if err != nil {
		return PolyChord{}, err
	}
	if !s.done() {
		return PolyChord{}, s.errorf("unexpected trailing input")
	}
	return NewPolyChord(upper, lower), nil
}

type scanner struct {
	input string
	pos   int
}

func (s *scanner) done() bool {
	return s.pos >= len(s.input)
}

func (s *scanner) peek() byte {
	if s.done() {
		return 0
	}
	return s.input[s.pos]
}

func (s *scanner) eat(lit string) bool {
	if len(s.input)-s.pos < len(lit) {
		return false
	}
	if s.input[s.pos:s.pos+len(lit)] != lit {
		return false
	}
	s.pos += len(lit)
	return true
}

func (s *scanner) errorf(format string, args ...interface{}) *SyntaxError {
	return s.errorAt(s.pos, format, args...)
}

func (s *scanner) errorAt(pos int, format string, args ...interface{}) *SyntaxError {
	return &SyntaxError{Pos: pos, Msg: fmt.Sprintf(format, args...)}
}

// accidentals scans a (possibly empty) run of '#' or 'b' characters. The
// two never mix on one note.
func (s *scanner) accidentals() PitchOffset {
	var offset PitchOffset
	switch s.peek() {
	case '#':
		for s.eat("#") {
			offset++
		}
	case 'b':
		for s.eat("b") {
			offset--
		}
	}
	return offset
}

func (s *scanner) note() (Note, error) {
	class, ok := NoteClassFromChar(s.peek())
	if !ok {
		return Note{}, s.errorf("expected a note letter A-G")
	}
	s.pos++
	return NewNote(class, s.accidentals()), nil
}

func (s *scanner) number() (int, bool) {
	start := s.pos
	for !s.done() && s.peek() >= '0' && s.peek() <= '9' {
		s.pos++
	}
	if s.pos == start {
		return 0, false
	}
	n := 0
	for _, c := range []byte(s.input[start:s.pos]) {
		n = n*10 + int(c-'0')
	}
	return n, true
}

func degreeFromNumber(n int) (PitchClass, bool) {
	switch n {
	case 1:
		return N1, true
	case 2:
		return N2, true
	case 3:
		return N3, true
	case 4:
		return N4, true
	case 5:
		return N5, true
	case 6:
		return N6, true
	case 7:
		return N7, true
	case 9:
		return N9, true
	case 11:
		return N11, true
	case 13:
		return N13, true
	}
	return 0, false
}

type triadQuality uint8

const (
	qualityMajor triadQuality = iota
	qualityMinor
	qualityDim
	qualityAug
	qualitySus2
	qualitySus4
)

var triadComponents = map[triadQuality][]ChordComponent{
	qualityMajor: {{N3, 0}, {N5, 0}},
	qualityMinor: {{N3, -1}, {N5, 0}},
	qualityDim:   {{N3, -1}, {N5, -1}},
	qualityAug:   {{N3, 0}, {N5, 1}},
	qualitySus2:  {{N2, 0}, {N5, 0}},
	qualitySus4:  {{N4, 0}, {N5, 0}},
}

func (s *scanner) parseChord() (Chord, error) {
	root, err := s.note()
	if err != nil {
		return Chord{}, err
	}

	structure, err := s.quality()
	if err != nil {
		return Chord{}, err
	}

	for s.eat("add") {
		alterations, err := s.addedDegree()
		if err != nil {
			return Chord{}, err
		}
		structure = structure.Merge(alterations)
	}

	for s.eat("(") {
		alterations, err := s.alterationList()
		if err != nil {
			return Chord{}, err
		}
		structure = structure.Merge(alterations)
	}

	if s.eat("/") {
		slash, err := s.note()
		if err != nil {
			return Chord{}, err
		}
		return NewSlashChord(slash, root, structure), nil
	}

	return NewChord(root, structure), nil
}

// quality scans the chord quality keyword and extension number and builds
// the base structure they describe. A natural seventh in this model is a
// major seventh, so the Maj family leaves the seventh untouched while the
// dominant and minor families lower it.
func (s *scanner) quality() (ChordStructure, error) {
	quality := qualityMajor
	majorSeventh := false
	dominant := false

	switch {
	case s.eat("sus2"):
		quality = qualitySus2
	case s.eat("sus4"):
		quality = qualitySus4
	case s.eat("Maj"), s.eat("maj"), s.eat("M"):
		majorSeventh = true
	case s.eat("min"), s.eat("m"), s.eat("-"):
		quality = qualityMinor
	case s.eat("dim"), s.eat("o"):
		quality = qualityDim
	case s.eat("aug"), s.eat("+"):
		quality = qualityAug
	case s.eat("dom"):
		dominant = true
	}

	structure := NewChordStructure().InsertMany(triadComponents[quality])

	extStart := s.pos
	ext, hasExt := s.number()
	if !hasExt {
		if dominant {
			return ChordStructure{}, s.errorf("dom requires an extension number")
		}
		return structure, nil
	}

	switch ext {
	case 5:
		// power chord, root and fifth only
		if quality != qualityMajor || majorSeventh || dominant {
			return ChordStructure{}, s.errorAt(extStart, "'5' cannot follow a quality keyword")
		}
		return NewChordStructure().Insert(ChordComponent{N5, 0}), nil

	case 6:
		structure = structure.Insert(ChordComponent{N6, 0})
		if s.eat("/9") {
			structure = structure.Insert(ChordComponent{N9, 0})
		}
		return structure, nil

	case 7, 9, 11, 13:
		class, ok := degreeFromNumber(ext)
		if !ok {
			panic("extension number out of range")
		}
		structure = structure.InsertMany(class.ExtendedIntervals())
		switch {
		case majorSeventh:
			// natural seventh already in place
		case quality == qualityDim:
			structure = structure.Insert(ChordComponent{N7, -2})
		default:
			structure = structure.Insert(ChordComponent{N7, -1})
		}
		return structure, nil
	}

	return ChordStructure{}, s.errorAt(extStart, "unsupported extension number %v", ext)
}

// addedDegree scans the degree number after an "add" keyword. Added
// degrees never pull in implied lower extensions.
func (s *scanner) addedDegree() (ChordStructure, error) {
	start := s.pos
	num, ok := s.number()
	if !ok {
		return ChordStructure{}, s.errorf("expected a degree number after 'add'")
	}
	class, ok := degreeFromNumber(num)
	if !ok {
		return ChordStructure{}, s.errorAt(start, "no such degree %v", num)
	}
	return StructureFromComponent(ChordComponent{class, 0}), nil
}

// alterationList scans the comma-separated alterations inside a
// parenthesized group, after the opening parenthesis has been consumed.
func (s *scanner) alterationList() (ChordStructure, error) {
	var structure ChordStructure
	for {
		offset := s.accidentals()
		start := s.pos
		num, ok := s.number()
		if !ok {
			return ChordStructure{}, s.errorf("expected a degree number in alteration")
		}
		class, ok := degreeFromNumber(num)
		if !ok {
			return ChordStructure{}, s.errorAt(start, "no such degree %v", num)
		}
		structure = structure.Merge(StructureFromComponent(ChordComponent{class, offset}))

		if s.eat(",") {
			continue
		}
		if s.eat(")") {
			return structure, nil
		}
		return ChordStructure{}, s.errorf("expected ',' or ')' in alteration list")
	}
}
