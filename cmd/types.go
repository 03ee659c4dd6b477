package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/steelchord/steelchord/chord"
)

func init() {
	rootCmd.AddCommand(typesCmd)
}

var typesCmd = &cobra.Command{
	Use:   "types",
	Short: "Lists the known chord types",
	Long:  `Lists the known chord types`,
	Run: func(cmd *cobra.Command, args []string) {
		for _, t := range chord.Templates() {
			fmt.Printf("%-6v %v\n", t.Name, t.Intervals)
		}
	},
}
