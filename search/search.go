// Package search answers the inverse question: given a chord, which fret
// and pedal combinations produce it. The space is small (frets x 2^modifiers)
// so it is walked exhaustively.
package search

import (
	"fmt"

	"github.com/steelchord/steelchord/chord"
	"github.com/steelchord/steelchord/constants"
	"github.com/steelchord/steelchord/copedent"
	"github.com/steelchord/steelchord/fretboard"
	"github.com/steelchord/steelchord/pitch"
)

// Query names the target chord and the position filters.
type Query struct {
	Root string
	Type string
	// MinStrings drops positions sounding fewer chord strings than this;
	// 0 means constants.DefaultMinStrings.
	MinStrings int
	// Fret restricts the search to a single bar position. Nil searches the
	// whole neck.
	Fret *int
	// Dedupe keeps only the first of several modifier combinations that
	// resolve to identical pitches at one fret. Off by default: acoustically
	// identical combinations can still differ ergonomically.
	Dedupe bool
	// Playable skips combinations that violate the copedent's exclusivity
	// groups, such as two levers on the same knee.
	Playable bool
	// OmitRedundant skips positions where an engaged modifier moves none of
	// the matched strings, since the same voicing exists with less footwork.
	OmitRedundant bool
}

// Result is one playable position for the requested chord.
type Result struct {
	Fret      int
	Modifiers []string // engaged modifiers in copedent order, nil for open
	Match     chord.Match
}

// Find walks every fret and modifier combination and collects the positions
// where the requested chord sounds. Results come back ordered by fret, then
// by modifier combination (subsets enumerated in binary-counting order over
// the copedent's modifier registry).
func Find(cop *copedent.Copedent, q Query) ([]Result, error) {
	root, err := pitch.ParseClass(q.Root)
	if err != nil {
		return nil, fmt.Errorf("%w: root %q", chord.ErrInvalidChord, q.Root)
	}
	tmpl, err := chord.Lookup(q.Type)
	if err != nil {
		return nil, err
	}
	minStrings := q.MinStrings
	if minStrings == 0 {
		minStrings = constants.DefaultMinStrings
	}

	lo, hi := 0, cop.MaxFret()
	if q.Fret != nil {
		lo, hi = *q.Fret, *q.Fret
	}

	var res []Result
	for fret := lo; fret <= hi; fret++ {
		seen := make(map[string]bool)
		for mask := 0; mask < 1<<cop.NumModifiers(); mask++ {
			active := activeNames(cop, mask)
			if q.Playable && !cop.Playable(active) {
				continue
			}
			ps, err := fretboard.Resolve(cop, active, fret)
			if err != nil {
				return nil, err
			}
			if q.Dedupe {
				key := pitchSetKey(ps)
				if seen[key] {
					continue
				}
				seen[key] = true
			}
			m, ok := chord.Identify(ps, root, tmpl)
			if !ok || len(m.Strings) < minStrings {
				continue
			}
			if q.OmitRedundant && redundant(cop, active, m) {
				continue
			}
			res = append(res, Result{Fret: fret, Modifiers: active, Match: m})
		}
	}
	return res, nil
}

func activeNames(cop *copedent.Copedent, mask int) []string {
	var names []string
	for i := 0; i < cop.NumModifiers(); i++ {
		if mask&(1<<i) != 0 {
			names = append(names, cop.ModifierAt(i).Name())
		}
	}
	return names
}

// pitchSetKey fingerprints the full resolved pitch set so acoustically
// identical positions collide, e.g. "78-75-68-64-59-56-54-52-50-47".
func pitchSetKey(ps fretboard.Pitches) string {
	var res string
	for i, s := range ps.Strings() {
		if i > 0 {
			res += "-"
		}
		res += fmt.Sprintf("%v", int(ps[s]))
	}
	return res
}

// redundant reports whether some engaged modifier moves none of the matched
// strings.
func redundant(cop *copedent.Copedent, active []string, m chord.Match) bool {
	for _, name := range active {
		mod, _ := cop.Modifier(name)
		moves := false
		for _, s := range m.Strings {
			if mod.Offset(s) != 0 {
				moves = true
				break
			}
		}
		if !moves {
			return true
		}
	}
	return false
}
