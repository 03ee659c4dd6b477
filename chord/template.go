// Package chord names chords: it holds the chord type catalog and
// recognizes which chords sound within a set of fretboard pitches.
package chord

import (
	"errors"
	"fmt"
	"strings"

	"github.com/steelchord/steelchord/pitch"
)

var ErrInvalidChord = errors.New("invalid chord")

// classMask is a pitch-class set packed into the low twelve bits.
type classMask uint16

func maskOf(intervals []int) classMask {
	var m classMask
	for _, iv := range intervals {
		m |= 1 << ((iv%12 + 12) % 12)
	}
	return m
}

// rotate moves the whole set up by n semitones, wrapping at the octave.
func (m classMask) rotate(n int) classMask {
	n = (n%12 + 12) % 12
	return (m<<n | m>>(12-n)) & 0xfff
}

func (m classMask) contains(c pitch.Class) bool {
	return m&(1<<c) != 0
}

// Template describes a chord type by the semitone intervals of its tones
// above the root. Extended tones fold into one octave: the ninth is 2, the
// eleventh 5, the thirteenth 9.
type Template struct {
	Name      string
	Intervals []int

	mask classMask
}

// Size is the number of distinct chord tones.
func (t Template) Size() int { return len(t.Intervals) }

func (t Template) classes() classMask {
	if t.mask != 0 {
		return t.mask
	}
	return maskOf(t.Intervals)
}

var templates = []Template{
	// triads
	{Name: "maj", Intervals: []int{0, 4, 7}},
	{Name: "min", Intervals: []int{0, 3, 7}},
	{Name: "dim", Intervals: []int{0, 3, 6}},
	{Name: "aug", Intervals: []int{0, 4, 8}},
	{Name: "sus2", Intervals: []int{0, 2, 7}},
	{Name: "sus4", Intervals: []int{0, 5, 7}},
	// sevenths
	{Name: "maj7", Intervals: []int{0, 4, 7, 11}},
	{Name: "7", Intervals: []int{0, 4, 7, 10}},
	{Name: "min7", Intervals: []int{0, 3, 7, 10}},
	{Name: "m7b5", Intervals: []int{0, 3, 6, 10}}, // half-diminished
	{Name: "dim7", Intervals: []int{0, 3, 6, 9}},
	// sixths
	{Name: "6", Intervals: []int{0, 4, 7, 9}},
	{Name: "min6", Intervals: []int{0, 3, 7, 9}},
	// extensions
	{Name: "9", Intervals: []int{0, 4, 7, 10, 2}},
	{Name: "maj9", Intervals: []int{0, 4, 7, 11, 2}},
	{Name: "min9", Intervals: []int{0, 3, 7, 10, 2}},
	{Name: "11", Intervals: []int{0, 4, 7, 10, 2, 5}},
	{Name: "maj11", Intervals: []int{0, 4, 7, 11, 2, 5}},
	{Name: "min11", Intervals: []int{0, 3, 7, 10, 2, 5}},
	{Name: "13", Intervals: []int{0, 4, 7, 10, 2, 5, 9}},
	{Name: "maj13", Intervals: []int{0, 4, 7, 11, 2, 5, 9}},
	{Name: "min13", Intervals: []int{0, 3, 7, 10, 2, 5, 9}},
}

var aliases = map[string]string{
	"major":      "maj",
	"minor":      "min",
	"m":          "min",
	"diminished": "dim",
	"augmented":  "aug",
	"major7":     "maj7",
	"dominant7":  "7",
	"dom7":       "7",
	"minor7":     "min7",
	"m7":         "min7",
	"min7b5":     "m7b5",
	"major6":     "6",
	"minor6":     "min6",
	"m6":         "min6",
	"dominant9":  "9",
	"major9":     "maj9",
	"minor9":     "min9",
	"m9":         "min9",
	"major11":    "maj11",
	"minor11":    "min11",
	"m11":        "min11",
	"major13":    "maj13",
	"minor13":    "min13",
	"m13":        "min13",
}

var byName = make(map[string]int, len(templates))

func init() {
	for i := range templates {
		templates[i].mask = maskOf(templates[i].Intervals)
		byName[templates[i].Name] = i
	}
}

// Lookup resolves a chord type by its canonical name ("min7") or a common
// alias ("minor7", "m7"). Matching is case-insensitive.
func Lookup(name string) (Template, error) {
	key := strings.ToLower(name)
	if canon, ok := aliases[key]; ok {
		key = canon
	}
	i, ok := byName[key]
	if !ok {
		return Template{}, fmt.Errorf("%w: unknown chord type %q", ErrInvalidChord, name)
	}
	return templates[i], nil
}

// Templates returns the full catalog in table order.
func Templates() []Template {
	res := make([]Template, len(templates))
	copy(res, templates)
	return res
}

// Names lists the canonical chord type names in table order.
func Names() []string {
	names := make([]string, len(templates))
	for i, t := range templates {
		names[i] = t.Name
	}
	return names
}
