package copedent

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"gopkg.in/yaml.v3"

	"github.com/steelchord/steelchord/pitch"
)

func TestE9Layout(t *testing.T) {
	assert := assert.New(t)
	c := E9()

	assert.Equal("E9", c.Name())
	assert.Equal(10, c.NumStrings())
	assert.Equal(24, c.MaxFret())
	assert.Equal(pitch.Pitch(78), c.OpenPitch(1))  // F#5
	assert.Equal(pitch.Pitch(64), c.OpenPitch(4))  // E4
	assert.Equal(pitch.Pitch(47), c.OpenPitch(10)) // B2

	assert.Equal([]string{"A", "B", "C", "LKL", "LKR", "RKL", "RKR"}, c.Modifiers())

	a, ok := c.Modifier("A")
	assert.True(ok)
	assert.Equal(2, a.Offset(5))
	assert.Equal(2, a.Offset(10))
	assert.Equal(0, a.Offset(1))
	assert.Equal(0, a.Offset(11))
	assert.Equal([]int{5, 10}, a.Strings())

	rkr, ok := c.Modifier("RKR")
	assert.True(ok)
	assert.Equal(-1, rkr.Offset(2))
	assert.Equal(-1, rkr.Offset(9))

	_, ok = c.Modifier("D")
	assert.False(ok)
}

func TestNewValidation(t *testing.T) {
	assert := assert.New(t)

	_, err := New(Definition{Name: "empty"})
	assert.Error(err)

	_, err = New(Definition{Name: "bad", Strings: []string{"H4"}})
	assert.Error(err)

	_, err = New(Definition{
		Name:    "dup",
		Strings: []string{"E4", "B3"},
		Modifiers: []ModifierDef{
			{Name: "A", Offsets: map[int]int{1: 2}},
			{Name: "A", Offsets: map[int]int{2: 1}},
		},
	})
	assert.Error(err)

	_, err = New(Definition{
		Name:      "range",
		Strings:   []string{"E4", "B3"},
		Modifiers: []ModifierDef{{Name: "A", Offsets: map[int]int{3: 2}}},
	})
	assert.Error(err)

	_, err = New(Definition{
		Name:      "unknown",
		Strings:   []string{"E4"},
		Exclusive: [][]string{{"LKL", "LKR"}},
	})
	assert.Error(err)

	_, err = New(Definition{Name: "neg", Strings: []string{"E4"}, MaxFret: -1})
	assert.Error(err)
}

func TestMaxFretDefault(t *testing.T) {
	assert := assert.New(t)

	c, err := New(Definition{Name: "t", Strings: []string{"E4"}})
	assert.NoError(err)
	assert.Equal(24, c.MaxFret())

	c, err = New(Definition{Name: "t", Strings: []string{"E4"}, MaxFret: 12})
	assert.NoError(err)
	assert.Equal(12, c.MaxFret())
}

func TestPlayable(t *testing.T) {
	assert := assert.New(t)
	c := E9()

	assert.True(c.Playable(nil))
	assert.True(c.Playable([]string{"A", "B", "C"}))
	assert.True(c.Playable([]string{"A", "LKL", "RKR"}))
	assert.False(c.Playable([]string{"LKL", "LKR"}))
	assert.False(c.Playable([]string{"B", "RKL", "RKR"}))
}

func TestDefinitionRoundTrip(t *testing.T) {
	assert := assert.New(t)

	def := E9().Definition()
	assert.Equal([]string{"F#5", "D#5", "G#4", "E4", "B3", "G#3", "F#3", "E3", "D3", "B2"}, def.Strings)
	assert.Equal(map[int]int{5: 2, 10: 2}, def.Modifiers[0].Offsets)

	c, err := New(def)
	assert.NoError(err)
	assert.Equal(E9().Modifiers(), c.Modifiers())
	for s := 1; s <= 10; s++ {
		assert.Equal(E9().OpenPitch(s), c.OpenPitch(s))
	}
	assert.False(c.Playable([]string{"LKL", "LKR"}))
}

func TestYAMLRoundTrip(t *testing.T) {
	assert := assert.New(t)

	def := E9().Definition()
	data, err := yaml.Marshal(def)
	assert.NoError(err)

	var back Definition
	assert.NoError(yaml.Unmarshal(data, &back))
	assert.Equal(def, back)

	c, err := New(back)
	assert.NoError(err)
	assert.Equal("E9", c.Name())
	assert.Equal(E9().Modifiers(), c.Modifiers())
	for s := 1; s <= 10; s++ {
		assert.Equal(E9().OpenPitch(s), c.OpenPitch(s))
	}
	a, ok := c.Modifier("A")
	assert.True(ok)
	assert.Equal(2, a.Offset(10))
	assert.False(c.Playable([]string{"RKL", "RKR"}))
}

// A definition written by hand, the way a non-E9 player would supply one.
func TestYAMLDocument(t *testing.T) {
	assert := assert.New(t)

	const doc = `
name: A6
maxfret: 12
strings: [E4, C#4, A3, E3]
modifiers:
  - name: P1
    offsets: {2: 1, 3: 2}
  - name: P2
    offsets:
      4: -1
exclusive:
  - [P1, P2]
`
	var def Definition
	assert.NoError(yaml.Unmarshal([]byte(doc), &def))

	c, err := New(def)
	assert.NoError(err)
	assert.Equal("A6", c.Name())
	assert.Equal(12, c.MaxFret())
	assert.Equal(4, c.NumStrings())
	assert.Equal(pitch.Pitch(61), c.OpenPitch(2)) // C#4
	assert.Equal(pitch.Pitch(52), c.OpenPitch(4)) // E3

	p1, ok := c.Modifier("P1")
	assert.True(ok)
	assert.Equal(1, p1.Offset(2))
	assert.Equal(2, p1.Offset(3))
	assert.Equal(0, p1.Offset(1))
	assert.Equal([]int{2, 3}, p1.Strings())

	p2, ok := c.Modifier("P2")
	assert.True(ok)
	assert.Equal(-1, p2.Offset(4))

	assert.True(c.Playable([]string{"P1"}))
	assert.False(c.Playable([]string{"P1", "P2"}))
}
