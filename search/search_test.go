package search

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/exp/slices"

	"github.com/steelchord/steelchord/chord"
	"github.com/steelchord/steelchord/copedent"
	"github.com/steelchord/steelchord/fretboard"
	"github.com/steelchord/steelchord/pitch"
)

func hasCombo(res []Result, fret int, mods []string) bool {
	for _, r := range res {
		if r.Fret == fret && slices.Equal(r.Modifiers, mods) {
			return true
		}
	}
	return false
}

func TestFindGMin7(t *testing.T) {
	assert := assert.New(t)
	cop := copedent.E9()

	res, err := Find(cop, Query{Root: "G", Type: "min7", MinStrings: 4})
	assert.NoError(err)
	assert.NotEmpty(res)

	// Nothing on E9 reaches a Bb at fret 0, so the first position is at
	// fret 1 with both A and B engaged.
	assert.Equal(1, res[0].Fret)
	assert.Equal([]string{"A", "B"}, res[0].Modifiers)
	assert.Equal([]int{1, 3, 4, 5, 6, 7, 8, 10}, res[0].Match.Strings)

	g, err := pitch.ParseClass("G")
	assert.NoError(err)
	for _, r := range res {
		assert.Equal(g, r.Match.Root)
		assert.Equal("min7", r.Match.Template.Name)
		assert.GreaterOrEqual(len(r.Match.Strings), 4)
	}
	for i := 1; i < len(res); i++ {
		assert.GreaterOrEqual(res[i].Fret, res[i-1].Fret)
	}
}

func TestFindFretFilter(t *testing.T) {
	assert := assert.New(t)
	cop := copedent.E9()

	fret := 1
	res, err := Find(cop, Query{Root: "G", Type: "min7", MinStrings: 4, Fret: &fret})
	assert.NoError(err)
	assert.NotEmpty(res)
	for _, r := range res {
		assert.Equal(1, r.Fret)
	}
	assert.Equal([]string{"A", "B"}, res[0].Modifiers)

	bad := -1
	_, err = Find(cop, Query{Root: "G", Type: "min7", Fret: &bad})
	assert.ErrorIs(err, fretboard.ErrInvalidFret)

	bad = cop.MaxFret() + 1
	_, err = Find(cop, Query{Root: "G", Type: "min7", Fret: &bad})
	assert.ErrorIs(err, fretboard.ErrInvalidFret)
}

func TestFindErrors(t *testing.T) {
	assert := assert.New(t)
	cop := copedent.E9()

	_, err := Find(cop, Query{Root: "X", Type: "maj"})
	assert.ErrorIs(err, chord.ErrInvalidChord)

	_, err = Find(cop, Query{Root: "E", Type: "xyz"})
	assert.ErrorIs(err, chord.ErrInvalidChord)
}

func TestFindDedupe(t *testing.T) {
	assert := assert.New(t)
	cop := copedent.E9()
	fret := 0

	// The two left-knee levers cancel each other exactly, so engaging both
	// resolves to the open pitches.
	res, err := Find(cop, Query{Root: "E", Type: "maj", Fret: &fret})
	assert.NoError(err)
	assert.True(hasCombo(res, 0, nil))
	assert.True(hasCombo(res, 0, []string{"LKL", "LKR"}))

	res, err = Find(cop, Query{Root: "E", Type: "maj", Fret: &fret, Dedupe: true})
	assert.NoError(err)
	assert.True(hasCombo(res, 0, nil))
	assert.False(hasCombo(res, 0, []string{"LKL", "LKR"}))
}

func TestFindPlayable(t *testing.T) {
	assert := assert.New(t)
	cop := copedent.E9()
	fret := 0

	res, err := Find(cop, Query{Root: "E", Type: "maj", Fret: &fret, Playable: true})
	assert.NoError(err)
	assert.NotEmpty(res)
	for _, r := range res {
		assert.True(cop.Playable(r.Modifiers))
	}
	assert.False(hasCombo(res, 0, []string{"LKL", "LKR"}))
}

func TestFindOmitRedundant(t *testing.T) {
	assert := assert.New(t)
	cop := copedent.E9()
	fret := 0

	// RKR only moves strings 2 and 9, neither of which is part of an open
	// E maj, so the combination adds nothing over the open position.
	res, err := Find(cop, Query{Root: "E", Type: "maj", Fret: &fret})
	assert.NoError(err)
	assert.True(hasCombo(res, 0, []string{"RKR"}))

	res, err = Find(cop, Query{Root: "E", Type: "maj", Fret: &fret, OmitRedundant: true})
	assert.NoError(err)
	assert.True(hasCombo(res, 0, nil))
	assert.False(hasCombo(res, 0, []string{"RKR"}))
	// RKL raises string 1 into the chord, so it stays.
	assert.True(hasCombo(res, 0, []string{"RKL"}))
	// Cancelling knee levers both touch matched strings; only Dedupe, not
	// redundancy, removes that combination.
	assert.True(hasCombo(res, 0, []string{"LKL", "LKR"}))
}

func TestFindMinStrings(t *testing.T) {
	assert := assert.New(t)
	cop := copedent.E9()
	fret := 0

	res, err := Find(cop, Query{Root: "B", Type: "maj", Fret: &fret})
	assert.NoError(err)
	assert.True(hasCombo(res, 0, nil)) // open B maj sounds five strings

	res, err = Find(cop, Query{Root: "B", Type: "maj", Fret: &fret, MinStrings: 6})
	assert.NoError(err)
	assert.False(hasCombo(res, 0, nil))
	assert.True(hasCombo(res, 0, []string{"LKR"}))
	for _, r := range res {
		if slices.Equal(r.Modifiers, []string{"LKR"}) {
			assert.Equal([]int{1, 2, 4, 5, 7, 8, 10}, r.Match.Strings)
		}
	}
}

// Every reported position must reproduce its chord when resolved again and
// matched on exactly the reported strings.
func TestFindRoundTrip(t *testing.T) {
	assert := assert.New(t)
	cop := copedent.E9()

	res, err := Find(cop, Query{Root: "G", Type: "min7", MinStrings: 4})
	assert.NoError(err)
	assert.NotEmpty(res)

	g, _ := pitch.ParseClass("G")
	min7, err := chord.Lookup("min7")
	assert.NoError(err)

	for _, r := range res {
		ps, err := fretboard.Resolve(cop, r.Modifiers, r.Fret)
		assert.NoError(err)
		m, ok := chord.Identify(ps, g, min7, r.Match.Strings...)
		assert.True(ok)
		assert.Equal(r.Match.Strings, m.Strings)
		assert.Equal(r.Match.Pitches, m.Pitches)
	}
}
