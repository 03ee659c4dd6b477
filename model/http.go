package model

// StringPitch is one sounding string in a resolved position.
type StringPitch struct {
	String int    `json:"string"`
	Note   int    `json:"note"`
	Name   string `json:"name"`
}

// ChordResult is one recognized chord and the strings that sound it.
type ChordResult struct {
	Name      string   `json:"name"`
	Root      string   `json:"root"`
	Type      string   `json:"type"`
	Strings   []int    `json:"strings"`
	Notes     []int    `json:"notes"`
	Pitches   []string `json:"pitches"`
	Inversion int      `json:"inversion"`
}

// PositionRequest asks which chords sound at a fret with the given
// modifiers engaged. Strings optionally restricts matching to a subset.
type PositionRequest struct {
	Fret      int      `json:"fret"`
	Modifiers []string `json:"modifiers"`
	Strings   []int    `json:"strings,omitempty"`
}

// PositionResponse lists the resolved pitches and every chord they form.
type PositionResponse struct {
	Fret      int           `json:"fret"`
	Modifiers []string      `json:"modifiers"`
	Strings   []StringPitch `json:"strings"`
	Chords    []ChordResult `json:"chords"`
}

// SearchRequest asks where a chord can be played.
type SearchRequest struct {
	Root          string `json:"root"`
	Type          string `json:"type"`
	MinStrings    int    `json:"min_strings,omitempty"`
	Fret          *int   `json:"fret,omitempty"`
	Dedupe        bool   `json:"dedupe,omitempty"`
	Playable      bool   `json:"playable,omitempty"`
	OmitRedundant bool   `json:"omit_redundant,omitempty"`
	Start         int    `json:"start,omitempty"`
	Max           int    `json:"max,omitempty"`
}

// PositionResult is one fretboard position that produces the requested
// chord.
type PositionResult struct {
	Fret      int         `json:"fret"`
	Modifiers []string    `json:"modifiers"`
	Chord     ChordResult `json:"chord"`
}

// SearchResponse is one page of search results.
type SearchResponse struct {
	Total   int              `json:"total"`
	Start   int              `json:"start"`
	Results []PositionResult `json:"results"`
}

// ModifierInfo describes one pedal or lever.
type ModifierInfo struct {
	Name    string      `json:"name"`
	Offsets map[int]int `json:"offsets"`
}

// CopedentResponse describes the loaded copedent.
type CopedentResponse struct {
	Name      string         `json:"name"`
	MaxFret   int            `json:"max_fret"`
	Strings   []StringPitch  `json:"strings"`
	Modifiers []ModifierInfo `json:"modifiers"`
	Exclusive [][]string     `json:"exclusive,omitempty"`
}

// ChordType is one catalog entry.
type ChordType struct {
	Name      string `json:"name"`
	Intervals []int  `json:"intervals"`
}

type ErrorResponse struct {
	Error string `json:"detail"`
}
