package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(copedentCmd)
}

var copedentCmd = &cobra.Command{
	Use:   "copedent",
	Short: "Prints the copedent chart",
	Long:  `Prints the copedent chart`,
	Run: func(cmd *cobra.Command, args []string) {
		printCopedent()
	},
}

func printCopedent() {
	fmt.Printf("%v (frets 0..%v)\n", cop.Name(), cop.MaxFret())

	fmt.Printf("%3v %5v", "str", "open")
	for _, name := range cop.Modifiers() {
		fmt.Printf(" %4v", name)
	}
	fmt.Println()

	for s := 1; s <= cop.NumStrings(); s++ {
		fmt.Printf("%3v %5v", s, cop.OpenPitch(s))
		for i := 0; i < cop.NumModifiers(); i++ {
			if off := cop.ModifierAt(i).Offset(s); off != 0 {
				fmt.Printf(" %+4d", off)
			} else {
				fmt.Printf(" %4v", "")
			}
		}
		fmt.Println()
	}

	for _, group := range cop.Exclusive() {
		fmt.Printf("exclusive: %v\n", strings.Join(group, "/"))
	}
}
