package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/steelchord/steelchord/chord"
	"github.com/steelchord/steelchord/constants"
	"github.com/steelchord/steelchord/search"
)

var (
	findMinStrings    int
	findFret          int
	findDedupe        bool
	findPlayable      bool
	findOmitRedundant bool
	findStart         int
	findMax           int
	findNoOctaves     bool
)

func init() {
	findCmd.Flags().IntVar(&findMinStrings, "min-strings", constants.DefaultMinStrings, "minimum sounding strings")
	findCmd.Flags().IntVar(&findFret, "fret", 0, "search only this fret")
	findCmd.Flags().BoolVar(&findDedupe, "dedupe", false, "drop positions whose pitches repeat an earlier combination at the same fret")
	findCmd.Flags().BoolVar(&findPlayable, "playable", false, "drop combinations the exclusivity groups forbid")
	findCmd.Flags().BoolVar(&findOmitRedundant, "omit-redundant", false, "drop positions where an engaged modifier moves no chord string")
	findCmd.Flags().IntVar(&findStart, "start", 0, "skip this many results")
	findCmd.Flags().IntVar(&findMax, "max", constants.DefaultMaxResults, "print at most this many results")
	findCmd.Flags().BoolVar(&findNoOctaves, "no-octaves", false, "print note names without octaves")
	rootCmd.AddCommand(findCmd)
}

var findCmd = &cobra.Command{
	Use:   "find <root> <type>",
	Short: "Finds the positions that produce a chord",
	Long:  `Finds the positions that produce a chord`,
	Args:  cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		find(args[0], args[1], cmd.Flags().Changed("fret"))
	},
}

func find(root, chordType string, fretSet bool) {
	if _, err := chord.Lookup(chordType); err != nil {
		panic(fmt.Sprintf("%v (types: %v)", err, strings.Join(chord.Names(), " ")))
	}
	q := search.Query{
		Root:          root,
		Type:          chordType,
		MinStrings:    findMinStrings,
		Dedupe:        findDedupe,
		Playable:      findPlayable,
		OmitRedundant: findOmitRedundant,
	}
	if fretSet {
		q.Fret = &findFret
	}
	results, err := search.Find(cop, q)
	if err != nil {
		panic(err)
	}

	fmt.Printf("%v positions\n", len(results))
	if findStart < len(results) {
		results = results[findStart:]
	} else {
		results = nil
	}
	if findMax > 0 && len(results) > findMax {
		results = results[:findMax]
	}
	for _, r := range results {
		mods := "open"
		if len(r.Modifiers) > 0 {
			mods = strings.Join(r.Modifiers, "+")
		}
		notes := make([]string, len(r.Match.Pitches))
		for i, p := range r.Match.Pitches {
			notes[i] = note(p, findNoOctaves)
		}
		fmt.Printf("fret %2v  %-15v %v: strings %v  %v\n",
			r.Fret, mods, r.Match.Name(), r.Match.Strings, strings.Join(notes, " "))
	}
}
