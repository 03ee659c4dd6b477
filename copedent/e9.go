package copedent

// E9 returns the standard Nashville E9 neck: ten strings, three floor
// pedals (A B C) and four knee levers (LKL LKR RKL RKR). The two levers on
// each knee are mutually exclusive.
func E9() *Copedent {
	c, err := New(Definition{
		Name: "E9",
		Strings: []string{
			"F#5", "D#5", "G#4", "E4", "B3", "G#3", "F#3", "E3", "D3", "B2",
		},
		Modifiers: []ModifierDef{
			{Name: "A", Offsets: map[int]int{5: 2, 10: 2}},
			{Name: "B", Offsets: map[int]int{3: 1, 6: 1}},
			{Name: "C", Offsets: map[int]int{4: 2, 5: 2}},
			{Name: "LKL", Offsets: map[int]int{4: 1, 8: 1}},
			{Name: "LKR", Offsets: map[int]int{4: -1, 8: -1}},
			{Name: "RKL", Offsets: map[int]int{1: 2, 7: 2}},
			{Name: "RKR", Offsets: map[int]int{2: -1, 9: -1}},
		},
		Exclusive: [][]string{
			{"LKL", "LKR"},
			{"RKL", "RKR"},
		},
	})
	if err != nil {
		panic(err)
	}
	return c
}
