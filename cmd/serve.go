package cmd

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"log/slog"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/rs/cors"
	"github.com/spf13/cobra"

	"github.com/steelchord/steelchord/chord"
	"github.com/steelchord/steelchord/constants"
	"github.com/steelchord/steelchord/fretboard"
	"github.com/steelchord/steelchord/model"
	"github.com/steelchord/steelchord/search"
)

var serveAddr string

func init() {
	serveCmd.Flags().StringVar(&serveAddr, "addr", ":8080", "listen address")
	rootCmd.AddCommand(serveCmd)
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serves the chord engine over HTTP",
	Long:  `Serves the chord engine over HTTP`,
	Run: func(cmd *cobra.Command, args []string) {
		serve()
	},
}

func newRouter() *mux.Router {
	router := mux.NewRouter().StrictSlash(true)
	router.HandleFunc("/position", handlePosition).Methods("POST")
	router.HandleFunc("/search", handleSearch).Methods("POST")
	router.HandleFunc("/copedent", handleCopedent).Methods("GET")
	router.HandleFunc("/chordtypes", handleChordTypes).Methods("GET")
	router.Use(requestID)
	return router
}

// requestID tags every request so log lines can be correlated.
func requestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := uuid.New().String()
		w.Header().Set("X-Request-Id", id)
		slog.Info("request", "id", id, "method", r.Method, "path", r.URL.Path)
		next.ServeHTTP(w, r)
	})
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, err error) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(model.ErrorResponse{Error: err.Error()})
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, fretboard.ErrInvalidFret),
		errors.Is(err, fretboard.ErrUnknownModifier),
		errors.Is(err, chord.ErrInvalidChord):
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}

func toChordResult(m chord.Match) model.ChordResult {
	res := model.ChordResult{
		Name:      m.Name(),
		Root:      m.Root.String(),
		Type:      m.Template.Name,
		Strings:   m.Strings,
		Notes:     make([]int, len(m.Pitches)),
		Pitches:   make([]string, len(m.Pitches)),
		Inversion: m.Inversion,
	}
	for i, p := range m.Pitches {
		res.Notes[i] = int(p)
		res.Pitches[i] = p.String()
	}
	return res
}

func toStringPitches(ps fretboard.Pitches) []model.StringPitch {
	nums := ps.Strings()
	res := make([]model.StringPitch, 0, len(nums))
	for _, s := range nums {
		res = append(res, model.StringPitch{String: s, Note: int(ps[s]), Name: ps[s].String()})
	}
	return res
}

func handlePosition(w http.ResponseWriter, r *http.Request) {
	var req model.PositionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, fmt.Errorf("bad request body: %v", err))
		return
	}

	ps, err := fretboard.Resolve(cop, req.Modifiers, req.Fret)
	if err != nil {
		writeError(w, statusFor(err), err)
		return
	}

	matches := chord.Find(ps, req.Strings...)
	res := model.PositionResponse{
		Fret:      req.Fret,
		Modifiers: req.Modifiers,
		Strings:   toStringPitches(ps),
		Chords:    make([]model.ChordResult, 0, len(matches)),
	}
	for _, m := range matches {
		res.Chords = append(res.Chords, toChordResult(m))
	}
	writeJSON(w, res)
}

func handleSearch(w http.ResponseWriter, r *http.Request) {
	var req model.SearchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, fmt.Errorf("bad request body: %v", err))
		return
	}

	results, err := search.Find(cop, search.Query{
		Root:          req.Root,
		Type:          req.Type,
		MinStrings:    req.MinStrings,
		Fret:          req.Fret,
		Dedupe:        req.Dedupe,
		Playable:      req.Playable,
		OmitRedundant: req.OmitRedundant,
	})
	if err != nil {
		writeError(w, statusFor(err), err)
		return
	}

	start := req.Start
	if start < 0 {
		start = 0
	}
	max := req.Max
	if max <= 0 {
		max = constants.DefaultMaxResults
	}

	resp := model.SearchResponse{Total: len(results), Start: start}
	page := results
	if start < len(page) {
		page = page[start:]
	} else {
		page = nil
	}
	if len(page) > max {
		page = page[:max]
	}
	resp.Results = make([]model.PositionResult, 0, len(page))
	for _, r := range page {
		resp.Results = append(resp.Results, model.PositionResult{
			Fret:      r.Fret,
			Modifiers: r.Modifiers,
			Chord:     toChordResult(r.Match),
		})
	}
	writeJSON(w, resp)
}

func handleCopedent(w http.ResponseWriter, r *http.Request) {
	res := model.CopedentResponse{
		Name:      cop.Name(),
		MaxFret:   cop.MaxFret(),
		Exclusive: cop.Exclusive(),
	}
	for s := 1; s <= cop.NumStrings(); s++ {
		p := cop.OpenPitch(s)
		res.Strings = append(res.Strings, model.StringPitch{String: s, Note: int(p), Name: p.String()})
	}
	for i := 0; i < cop.NumModifiers(); i++ {
		m := cop.ModifierAt(i)
		info := model.ModifierInfo{Name: m.Name(), Offsets: make(map[int]int)}
		for _, s := range m.Strings() {
			info.Offsets[s] = m.Offset(s)
		}
		res.Modifiers = append(res.Modifiers, info)
	}
	writeJSON(w, res)
}

func handleChordTypes(w http.ResponseWriter, r *http.Request) {
	res := make([]model.ChordType, 0)
	for _, t := range chord.Templates() {
		res = append(res, model.ChordType{Name: t.Name, Intervals: t.Intervals})
	}
	writeJSON(w, res)
}

func serve() {
	handler := cors.Default().Handler(newRouter())
	slog.Info("listening", "addr", serveAddr)
	log.Fatal(http.ListenAndServe(serveAddr, handler))
}
