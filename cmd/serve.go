package cmd

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/jsphweid/tertian/chord"
	"github.com/jsphweid/tertian/constants"
	"github.com/jsphweid/tertian/midi"
	"github.com/jsphweid/tertian/model"
	"github.com/rs/cors"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(serveCmd)
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serves the chord resolver over HTTP",
	Long:  `Serves the chord resolver over HTTP.`,
	Run: func(cmd *cobra.Command, args []string) {
		serve()
	},
}

func handleResolve(w http.ResponseWriter, r *http.Request) {
	var input model.ResolveRequestBody
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(w, "Could not unmarshal request body: "+err.Error())
		return
	}

	c, err := chord.FromShorthand(input.Shorthand)
	if err != nil {
		writeError(w, err.Error())
		return
	}

	res := model.ResolvedChord{
		Notes:     noteNames(c.Notes()),
		MidiNotes: midi.ChordNotes(c, requestOctave(input)),
	}
	json.NewEncoder(w).Encode(res)
}

func handlePolyResolve(w http.ResponseWriter, r *http.Request) {
	var input model.ResolveRequestBody
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(w, "Could not unmarshal request body: "+err.Error())
		return
	}

	p, err := chord.PolyChordFromShorthand(input.Shorthand)
	if err != nil {
		writeError(w, err.Error())
		return
	}

	res := model.ResolvedChord{
		Notes:     noteNames(p.Notes()),
		MidiNotes: midi.PolyChordNotes(p, requestOctave(input)),
	}
	json.NewEncoder(w).Encode(res)
}

func requestOctave(input model.ResolveRequestBody) int {
	if input.Octave == 0 {
		return constants.DefaultOctave
	}
	return input.Octave
}

func noteNames(notes []chord.Note) []string {
	res := make([]string, 0, len(notes))
	for _, n := range notes {
		res = append(res, n.String())
	}
	return res
}

func writeError(w http.ResponseWriter, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusBadRequest)
	json.NewEncoder(w).Encode(model.ErrorResponse{Error: msg})
}

func serve() {
	router := mux.NewRouter().StrictSlash(true)
	router.HandleFunc("/resolve", handleResolve).Methods("POST")
	router.HandleFunc("/polyresolve", handlePolyResolve).Methods("POST")

	handler := cors.Default().Handler(router)
	log.Fatal(http.ListenAndServe(":"+constants.GetPort(), handler))
}
