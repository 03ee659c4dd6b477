// Package pitch models absolute pitches and pitch classes as integer
// semitone values. Pitches use MIDI numbering (C4 = 60), so pitch arithmetic
// is plain integer addition and octave/class information falls out of
// division by 12.
package pitch

import (
	"fmt"
	"strconv"
	"strings"
)

// Pitch is an absolute pitch in semitones, MIDI numbering (C4 = 60).
type Pitch int

// Class is a pitch reduced modulo 12, discarding the octave (0 = C, 11 = B).
type Class int

// noteNames spells each pitch class. Pitch class 10 is spelled Bb rather
// than A#, matching the copedent charts this tool renders.
var noteNames = [12]string{"C", "C#", "D", "D#", "E", "F", "F#", "G", "G#", "A", "Bb", "B"}

// classIndex accepts both sharp and flat spellings on input.
var classIndex = map[string]Class{
	"C": 0, "C#": 1, "Db": 1, "D": 2, "D#": 3, "Eb": 3,
	"E": 4, "F": 5, "F#": 6, "Gb": 6, "G": 7, "G#": 8,
	"Ab": 8, "A": 9, "A#": 10, "Bb": 10, "B": 11,
}

// Class reduces the pitch to its pitch class.
func (p Pitch) Class() Class {
	return Class(((int(p) % 12) + 12) % 12)
}

// Octave returns the scientific octave number (C4 = middle C = MIDI 60).
func (p Pitch) Octave() int {
	q := int(p) / 12
	if int(p)%12 < 0 {
		q--
	}
	return q - 1
}

// Transpose shifts the pitch by the given number of semitones.
func (p Pitch) Transpose(semitones int) Pitch {
	return p + Pitch(semitones)
}

// Name returns the note name without the octave, e.g. "G#".
func (p Pitch) Name() string {
	return p.Class().String()
}

// String renders the pitch with its octave, e.g. "G#4".
func (p Pitch) String() string {
	return fmt.Sprintf("%s%d", p.Name(), p.Octave())
}

func (c Class) String() string {
	return noteNames[((int(c)%12)+12)%12]
}

// ParseClass reads a note name such as "F#" or "Bb" (case-insensitive on the
// letter; the accidental must be '#' or 'b').
func ParseClass(s string) (Class, error) {
	name := strings.ToUpper(s[:min(len(s), 1)]) + s[min(len(s), 1):]
	if c, ok := classIndex[name]; ok {
		return c, nil
	}
	return 0, fmt.Errorf("unknown note name %q", s)
}

// Parse reads a note-plus-octave string such as "F#5" or "C-1".
func Parse(s string) (Pitch, error) {
	i := strings.IndexFunc(s, func(r rune) bool {
		return r == '-' || (r >= '0' && r <= '9')
	})
	if i < 1 {
		return 0, fmt.Errorf("malformed pitch %q", s)
	}
	class, err := ParseClass(s[:i])
	if err != nil {
		return 0, err
	}
	octave, err := strconv.Atoi(s[i:])
	if err != nil {
		return 0, fmt.Errorf("malformed pitch %q", s)
	}
	return Pitch((octave+1)*12) + Pitch(class), nil
}

// MustParse is Parse for trusted literals; it panics on malformed input.
func MustParse(s string) Pitch {
	p, err := Parse(s)
	if err != nil {
		panic(err.Error())
	}
	return p
}
