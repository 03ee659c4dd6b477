// Package export renders chord voicings as standard MIDI files, so a
// position found on the fretboard can be auditioned in a DAW or sequencer.
package export

import (
	"fmt"
	"io"

	"gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/smf"
	"golang.org/x/exp/slices"

	"github.com/steelchord/steelchord/pitch"
)

const ticksPerQuarter = 960

const (
	defaultVelocity = uint8(96)
	defaultDuration = uint32(4 * ticksPerQuarter) // a whole note
)

// Options controls the rendered clip.
type Options struct {
	// Strum staggers note onsets by this many ticks, lowest string first.
	// 0 plays a block chord.
	Strum uint32
	// Duration is how long the last-struck note rings, in ticks.
	// 0 means a whole note; earlier notes ring until the common release.
	Duration uint32
	// Velocity for every note. 0 means 96.
	Velocity uint8
}

// Write renders the voicing as a single-track SMF on w. Notes start lowest
// first (strummed if requested) and all release together.
func Write(w io.Writer, pitches []pitch.Pitch, opts Options) error {
	if len(pitches) == 0 {
		return fmt.Errorf("nothing to export: no pitches")
	}
	for _, p := range pitches {
		if p < 0 || p > 127 {
			return fmt.Errorf("pitch %d is outside the midi range", int(p))
		}
	}
	velocity := opts.Velocity
	if velocity == 0 {
		velocity = defaultVelocity
	}
	duration := opts.Duration
	if duration == 0 {
		duration = defaultDuration
	}

	notes := slices.Clone(pitches)
	slices.Sort(notes)

	var s smf.SMF
	s.TimeFormat = smf.MetricTicks(ticksPerQuarter)

	var track smf.Track
	for i, p := range notes {
		var delta uint32
		if i > 0 {
			delta = opts.Strum
		}
		track.Add(delta, midi.NoteOn(0, uint8(p), velocity))
	}
	for i, p := range notes {
		var delta uint32
		if i == 0 {
			delta = duration
		}
		track.Add(delta, midi.NoteOff(0, uint8(p)))
	}
	track.Close(0)
	s.Tracks = append(s.Tracks, track)

	_, err := s.WriteTo(w)
	return err
}
