package constants

import "os"

func GetPort() string {
	port := os.Getenv("PORT")
	if port != "" {
		return port
	}
	return "8080"
}

// DefaultOctave is the register chords resolve into when the caller does
// not pick one. Octave 4 puts the root just above middle C.
const DefaultOctave = 4
