// Package copedent models a pedal steel guitar setup: the open-string tuning
// plus the pedals and knee levers that bend individual strings by fixed
// semitone amounts. "Copedent" (chord-pedal-arrangement) is the player's term
// for this chart. A Copedent is immutable once built, so it is safe to share
// across concurrent searches.
package copedent

import (
	"fmt"

	"golang.org/x/exp/slices"

	"github.com/steelchord/steelchord/constants"
	"github.com/steelchord/steelchord/pitch"
)

// Definition is the plain structured form of a copedent, the shape supplied
// by configuration. Strings are open pitches from string 1 (highest) down;
// modifier offsets are keyed by string number and may omit unaffected
// strings.
type Definition struct {
	Name      string        `yaml:"name"`
	MaxFret   int           `yaml:"maxfret,omitempty"`
	Strings   []string      `yaml:",flow"`
	Modifiers []ModifierDef `yaml:"modifiers"`
	// Exclusive lists groups of modifiers that cannot be engaged together
	// (e.g. the two levers on one knee).
	Exclusive [][]string `yaml:"exclusive,omitempty"`
}

// ModifierDef declares one pedal or lever: its name and the semitone change
// it applies per string number.
type ModifierDef struct {
	Name    string      `yaml:"name"`
	Offsets map[int]int `yaml:"offsets,flow"`
}

// Modifier is a validated pedal or lever with a complete per-string offset
// table. The offset table never changes after load; it represents a fixed
// mechanical linkage.
type Modifier struct {
	name    string
	offsets []int // index 0 = string 1
}

func (m Modifier) Name() string { return m.name }

// Offset returns the semitone change the modifier applies to string s
// (1-based), 0 for strings it does not touch or out-of-range numbers.
func (m Modifier) Offset(s int) int {
	if s < 1 || s > len(m.offsets) {
		return 0
	}
	return m.offsets[s-1]
}

// Strings returns the string numbers the modifier moves, ascending.
func (m Modifier) Strings() []int {
	var res []int
	for i, off := range m.offsets {
		if off != 0 {
			res = append(res, i+1)
		}
	}
	return res
}

// Copedent is the validated, immutable form of a Definition.
type Copedent struct {
	name    string
	maxFret int
	open    []pitch.Pitch // index 0 = string 1
	// modifiers keeps declaration order, which doubles as the canonical
	// enumeration order for modifier subsets.
	modifiers []Modifier
	index     map[string]int
	exclusive [][]string
}

// New validates a Definition and builds a Copedent from it. Every string
// must carry a parseable open pitch; every modifier offset must reference an
// existing string; exclusivity groups must name declared modifiers.
func New(def Definition) (*Copedent, error) {
	if len(def.Strings) == 0 {
		return nil, fmt.Errorf("copedent %q has no strings", def.Name)
	}
	maxFret := def.MaxFret
	if maxFret == 0 {
		maxFret = constants.DefaultMaxFret
	}
	if maxFret < 0 {
		return nil, fmt.Errorf("copedent %q: negative max fret %d", def.Name, maxFret)
	}

	c := &Copedent{
		name:    def.Name,
		maxFret: maxFret,
		open:    make([]pitch.Pitch, len(def.Strings)),
		index:   make(map[string]int, len(def.Modifiers)),
	}
	for i, s := range def.Strings {
		p, err := pitch.Parse(s)
		if err != nil {
			return nil, fmt.Errorf("copedent %q string %d: %v", def.Name, i+1, err)
		}
		c.open[i] = p
	}

	for _, md := range def.Modifiers {
		if md.Name == "" {
			return nil, fmt.Errorf("copedent %q has an unnamed modifier", def.Name)
		}
		if _, dup := c.index[md.Name]; dup {
			return nil, fmt.Errorf("copedent %q: duplicate modifier %q", def.Name, md.Name)
		}
		m := Modifier{name: md.Name, offsets: make([]int, len(def.Strings))}
		for s, off := range md.Offsets {
			if s < 1 || s > len(def.Strings) {
				return nil, fmt.Errorf("copedent %q: modifier %q references string %d of %d", def.Name, md.Name, s, len(def.Strings))
			}
			m.offsets[s-1] = off
		}
		c.index[md.Name] = len(c.modifiers)
		c.modifiers = append(c.modifiers, m)
	}

	for _, group := range def.Exclusive {
		for _, name := range group {
			if _, ok := c.index[name]; !ok {
				return nil, fmt.Errorf("copedent %q: exclusivity group names unknown modifier %q", def.Name, name)
			}
		}
		c.exclusive = append(c.exclusive, slices.Clone(group))
	}
	return c, nil
}

func (c *Copedent) Name() string { return c.name }

// NumStrings reports the string count; strings are numbered 1..NumStrings
// with string 1 the highest pitched.
func (c *Copedent) NumStrings() int { return len(c.open) }

// MaxFret is the highest playable fret position.
func (c *Copedent) MaxFret() int { return c.maxFret }

// OpenPitch returns the unfretted pitch of string s (1-based).
func (c *Copedent) OpenPitch(s int) pitch.Pitch { return c.open[s-1] }

// Modifier looks a pedal or lever up by name.
func (c *Copedent) Modifier(name string) (Modifier, bool) {
	i, ok := c.index[name]
	if !ok {
		return Modifier{}, false
	}
	return c.modifiers[i], true
}

// NumModifiers reports how many pedals and levers the copedent declares.
func (c *Copedent) NumModifiers() int { return len(c.modifiers) }

// ModifierAt returns the i-th modifier in declaration order.
func (c *Copedent) ModifierAt(i int) Modifier { return c.modifiers[i] }

// Modifiers lists modifier names in declaration order.
func (c *Copedent) Modifiers() []string {
	names := make([]string, len(c.modifiers))
	for i, m := range c.modifiers {
		names[i] = m.name
	}
	return names
}

// Exclusive returns the declared mutual-exclusion groups.
func (c *Copedent) Exclusive() [][]string {
	res := make([][]string, len(c.exclusive))
	for i, g := range c.exclusive {
		res[i] = slices.Clone(g)
	}
	return res
}

// Playable reports whether the given modifiers can be engaged together,
// i.e. no exclusivity group contributes more than one of them.
func (c *Copedent) Playable(active []string) bool {
	for _, group := range c.exclusive {
		n := 0
		for _, name := range active {
			if slices.Contains(group, name) {
				n++
			}
		}
		if n > 1 {
			return false
		}
	}
	return true
}

// Definition exports the copedent back to its plain configuration form.
func (c *Copedent) Definition() Definition {
	def := Definition{
		Name:    c.name,
		MaxFret: c.maxFret,
		Strings: make([]string, len(c.open)),
	}
	for i, p := range c.open {
		def.Strings[i] = p.String()
	}
	for _, m := range c.modifiers {
		md := ModifierDef{Name: m.name, Offsets: make(map[int]int)}
		for _, s := range m.Strings() {
			md.Offsets[s] = m.Offset(s)
		}
		def.Modifiers = append(def.Modifiers, md)
	}
	for _, g := range c.exclusive {
		def.Exclusive = append(def.Exclusive, slices.Clone(g))
	}
	return def
}
