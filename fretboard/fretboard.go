// Package fretboard computes the pitches a copedent actually sounds at a
// given bar position with a given set of pedals and levers engaged.
package fretboard

import (
	"errors"
	"fmt"

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"

	"github.com/steelchord/steelchord/copedent"
	"github.com/steelchord/steelchord/pitch"
)

var (
	ErrInvalidFret     = errors.New("invalid fret")
	ErrUnknownModifier = errors.New("unknown modifier")
)

// Pitches maps string number to the pitch that string sounds.
type Pitches map[int]pitch.Pitch

// Strings returns the string numbers in ascending order.
func (ps Pitches) Strings() []int {
	keys := maps.Keys(ps)
	slices.Sort(keys)
	return keys
}

// Resolve returns the pitch of every string with the bar at the given fret
// and the named modifiers engaged. The fret shifts all strings uniformly;
// each engaged modifier then adds its per-string offsets. Offsets from
// multiple modifiers acting on one string combine additively, and naming a
// modifier twice has no extra effect.
func Resolve(cop *copedent.Copedent, active []string, fret int) (Pitches, error) {
	if fret < 0 || fret > cop.MaxFret() {
		return nil, fmt.Errorf("%w: %d is outside 0..%d", ErrInvalidFret, fret, cop.MaxFret())
	}
	mods := make([]copedent.Modifier, 0, len(active))
	seen := make(map[string]bool, len(active))
	for _, name := range active {
		if seen[name] {
			continue
		}
		seen[name] = true
		m, ok := cop.Modifier(name)
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownModifier, name)
		}
		mods = append(mods, m)
	}

	ps := make(Pitches, cop.NumStrings())
	for s := 1; s <= cop.NumStrings(); s++ {
		offset := fret
		for _, m := range mods {
			offset += m.Offset(s)
		}
		ps[s] = cop.OpenPitch(s).Transpose(offset)
	}
	return ps, nil
}
