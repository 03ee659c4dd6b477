package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/steelchord/steelchord/chord"
	"github.com/steelchord/steelchord/fretboard"
	"github.com/steelchord/steelchord/pitch"
)

var (
	chordsModifiers []string
	chordsStrings   []int
	chordsNoOctaves bool
)

func init() {
	chordsCmd.Flags().StringSliceVar(&chordsModifiers, "modifiers", nil, "engaged pedals and levers, e.g. A,B")
	chordsCmd.Flags().IntSliceVar(&chordsStrings, "strings", nil, "restrict matching to these string numbers")
	chordsCmd.Flags().BoolVar(&chordsNoOctaves, "no-octaves", false, "print note names without octaves")
	rootCmd.AddCommand(chordsCmd)
}

// note renders a pitch for display, optionally without its octave.
func note(p pitch.Pitch, noOctaves bool) string {
	if noOctaves {
		return p.Name()
	}
	return p.String()
}

var chordsCmd = &cobra.Command{
	Use:   "chords [fret]",
	Short: "Lists the chords sounding at a position",
	Long:  `Lists the chords sounding at a position`,
	Args:  cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		var fret int
		if len(args) == 1 {
			arg1, err := strconv.Atoi(args[0])
			if err != nil {
				panic(err)
			}
			fret = arg1
		}
		chords(fret)
	},
}

func chords(fret int) {
	ps, err := fretboard.Resolve(cop, chordsModifiers, fret)
	if err != nil {
		panic(err)
	}
	for _, s := range ps.Strings() {
		fmt.Printf("string %2v: %v\n", s, note(ps[s], chordsNoOctaves))
	}

	matches := chord.Find(ps, chordsStrings...)
	if len(matches) == 0 {
		fmt.Println("no chords")
		return
	}
	for _, m := range matches {
		fmt.Printf("%v: strings %v, inversion %v\n", m.Name(), m.Strings, m.Inversion)
	}
}
