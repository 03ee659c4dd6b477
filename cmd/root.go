package cmd

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/steelchord/steelchord/constants"
	"github.com/steelchord/steelchord/copedent"
)

// cop is the copedent every command operates on, loaded before any Run.
var cop *copedent.Copedent

var (
	copedentPath string
	debug        bool
)

var rootCmd = &cobra.Command{
	Use:   "steelchord",
	Short: "Pedal steel chord engine",
	Long: `Answers the two pedal steel questions: which chords sound at a
fret with pedals engaged, and which positions produce a wanted chord.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		initLogger(debug)
		cop = loadCopedent()
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&copedentPath, "copedent", "", "copedent definition file (yaml); default is the built-in E9")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "debug logging")
}

func initLogger(debug bool) {
	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}
	h := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})
	slog.SetDefault(slog.New(h))
}

func loadCopedent() *copedent.Copedent {
	path := copedentPath
	if path == "" {
		path = constants.GetCopedentPath()
	}
	if path == "" {
		return copedent.E9()
	}
	data, err := os.ReadFile(path)
	if err != nil {
		panic("Could not read copedent file: " + err.Error())
	}
	var def copedent.Definition
	if err := yaml.Unmarshal(data, &def); err != nil {
		panic("Could not parse copedent file: " + err.Error())
	}
	c, err := copedent.New(def)
	if err != nil {
		panic("Invalid copedent: " + err.Error())
	}
	slog.Debug("loaded copedent", "name", c.Name(), "strings", c.NumStrings(), "modifiers", c.NumModifiers())
	return c
}

func Execute() {
	cobra.CheckErr(rootCmd.Execute())
}
