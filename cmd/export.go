package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/steelchord/steelchord/chord"
	"github.com/steelchord/steelchord/export"
	"github.com/steelchord/steelchord/fretboard"
	"github.com/steelchord/steelchord/pitch"
	"github.com/steelchord/steelchord/search"
)

var (
	exportFret      int
	exportModifiers []string
	exportOut       string
	exportStrum     uint32
)

func init() {
	exportCmd.Flags().IntVar(&exportFret, "fret", 0, "fret position; omit to use the first position found")
	exportCmd.Flags().StringSliceVar(&exportModifiers, "modifiers", nil, "pedals and levers to engage with --fret")
	exportCmd.Flags().StringVar(&exportOut, "out", "", "output .mid path (default <root>-<type>.mid)")
	exportCmd.Flags().Uint32Var(&exportStrum, "strum", 0, "stagger note onsets by this many ticks")
	rootCmd.AddCommand(exportCmd)
}

var exportCmd = &cobra.Command{
	Use:   "export <root> <type>",
	Short: "Writes a chord voicing as a midi file",
	Long:  `Writes a chord voicing as a midi file`,
	Args:  cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		exportChord(args[0], args[1], cmd.Flags().Changed("fret"))
	},
}

func exportChord(root, chordType string, fretSet bool) {
	var m chord.Match
	if fretSet {
		rootClass, err := pitch.ParseClass(root)
		if err != nil {
			panic(err)
		}
		tmpl, err := chord.Lookup(chordType)
		if err != nil {
			panic(err)
		}
		ps, err := fretboard.Resolve(cop, exportModifiers, exportFret)
		if err != nil {
			panic(err)
		}
		found, ok := chord.Identify(ps, rootClass, tmpl)
		if !ok {
			panic(fmt.Sprintf("%v %v does not sound at fret %v with %v", rootClass, tmpl.Name, exportFret, exportModifiers))
		}
		m = found
	} else {
		results, err := search.Find(cop, search.Query{
			Root:          root,
			Type:          chordType,
			Dedupe:        true,
			Playable:      true,
			OmitRedundant: true,
		})
		if err != nil {
			panic(err)
		}
		if len(results) == 0 {
			panic("no position found for " + root + " " + chordType)
		}
		m = results[0].Match
		fmt.Printf("using fret %v with %v\n", results[0].Fret, results[0].Modifiers)
	}

	out := exportOut
	if out == "" {
		out = fmt.Sprintf("%v-%v.mid", m.Root, m.Template.Name)
	}
	f, err := os.Create(out)
	if err != nil {
		panic("Could not create output file: " + err.Error())
	}
	defer f.Close()
	if err := export.Write(f, m.Pitches, export.Options{Strum: exportStrum}); err != nil {
		panic(err)
	}
	fmt.Printf("wrote %v\n", out)
}
