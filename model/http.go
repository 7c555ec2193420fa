package model

type ResolveRequestBody struct {
	Shorthand string `json:"shorthand"`
	Octave    int    `json:"octave,omitempty"`
}

type ResolvedChord struct {
	Notes     []string `json:"notes"`
	MidiNotes []uint8  `json:"midi_notes"`
}

type ErrorResponse struct {
	Error string `json:"detail"`
}
