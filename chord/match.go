package chord

import (
	"fmt"
	"sort"

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"

	"github.com/steelchord/steelchord/fretboard"
	"github.com/steelchord/steelchord/pitch"
)

// Match records one chord recognized among a set of sounding strings. The
// strings listed are exactly those whose pitch class is a chord tone, so
// octave doublings all appear.
type Match struct {
	Root      pitch.Class
	Template  Template
	Strings   []int         // ascending string numbers
	Pitches   []pitch.Pitch // parallel to Strings
	Inversion int           // 0 root position, 1 third in the bass, ...
}

// Name is the display name, e.g. "E maj" or "G# min7".
func (m Match) Name() string {
	return fmt.Sprintf("%v %v", m.Root, m.Template.Name)
}

// Bass returns the lowest sounding pitch of the match.
func (m Match) Bass() pitch.Pitch {
	bass := m.Pitches[0]
	for _, p := range m.Pitches[1:] {
		if p < bass {
			bass = p
		}
	}
	return bass
}

// Find lists every chord sounding among the given strings, or among the
// subset named by only. Relative chords cover identical strings (a min7 is
// always also a 6 from the third), so when several names describe the same
// string set only one survives: the larger template, then the first root
// name and template name in lexical order. Results are ordered by string
// count descending, then root name, then template name.
func Find(ps fretboard.Pitches, only ...int) []Match {
	byClass, present := classify(ps, only)
	best := make(map[string]Match)
	for c := pitch.Class(0); c < 12; c++ {
		if !present.contains(c) {
			continue
		}
		for _, t := range templates {
			sounds := t.mask.rotate(int(c))
			if present&sounds != sounds {
				continue
			}
			m := build(ps, c, t, byClass)
			key := stringSetKey(m.Strings)
			if cur, ok := best[key]; !ok || better(m, cur) {
				best[key] = m
			}
		}
	}

	res := maps.Values(best)
	sort.Slice(res, func(i, j int) bool {
		if len(res[i].Strings) != len(res[j].Strings) {
			return len(res[i].Strings) > len(res[j].Strings)
		}
		ri, rj := res[i].Root.String(), res[j].Root.String()
		if ri != rj {
			return ri < rj
		}
		return res[i].Template.Name < res[j].Template.Name
	})
	return res
}

// Identify reports whether one specific chord sounds among the given strings
// (or the subset named by only). Unlike Find it never renames a chord to a
// same-tone relative, so it answers "does G min7 sound here" directly.
func Identify(ps fretboard.Pitches, root pitch.Class, t Template, only ...int) (Match, bool) {
	byClass, present := classify(ps, only)
	sounds := t.classes().rotate(int(root))
	if present&sounds != sounds {
		return Match{}, false
	}
	return build(ps, root, t, byClass), true
}

// classify groups the considered strings by pitch class. Strings named in
// only but absent from ps are ignored.
func classify(ps fretboard.Pitches, only []int) (map[pitch.Class][]int, classMask) {
	considered := only
	if len(considered) == 0 {
		considered = ps.Strings()
	} else {
		considered = slices.Clone(considered)
		slices.Sort(considered)
		considered = slices.Compact(considered)
	}

	byClass := make(map[pitch.Class][]int)
	var present classMask
	for _, s := range considered {
		p, ok := ps[s]
		if !ok {
			continue
		}
		c := p.Class()
		byClass[c] = append(byClass[c], s)
		present |= 1 << c
	}
	return byClass, present
}

func build(ps fretboard.Pitches, root pitch.Class, t Template, byClass map[pitch.Class][]int) Match {
	sounds := t.classes().rotate(int(root))
	m := Match{Root: root, Template: t}
	for c := pitch.Class(0); c < 12; c++ {
		if sounds.contains(c) {
			m.Strings = append(m.Strings, byClass[c]...)
		}
	}
	slices.Sort(m.Strings)
	m.Pitches = make([]pitch.Pitch, len(m.Strings))
	for i, s := range m.Strings {
		m.Pitches[i] = ps[s]
	}
	m.Inversion = inversion(m)
	return m
}

// inversion finds which chord tone is in the bass: the index of the bass
// interval within the ascending interval list.
func inversion(m Match) int {
	bassInterval := int(m.Bass().Class()-m.Root+12) % 12
	ivs := slices.Clone(m.Template.Intervals)
	slices.Sort(ivs)
	return slices.Index(ivs, bassInterval)
}

// better decides which of two matches covering the same strings to keep.
func better(a, b Match) bool {
	if a.Template.Size() != b.Template.Size() {
		return a.Template.Size() > b.Template.Size()
	}
	ra, rb := a.Root.String(), b.Root.String()
	if ra != rb {
		return ra < rb
	}
	return a.Template.Name < b.Template.Name
}

// stringSetKey builds a canonical key for a sorted set of string numbers,
// e.g. "3-4-5-6-8-10".
func stringSetKey(nums []int) string {
	var res string
	for i, n := range nums {
		res += fmt.Sprintf("%v", n)
		if i < len(nums)-1 {
			res += "-"
		}
	}
	return res
}
