package cmd

import (
	"os"

	"github.com/projectdiscovery/gologger"
	"github.com/projectdiscovery/gologger/levels"
	"github.com/spf13/cobra"

	"github.com/theakshaypant/refa"
)

var (
	// Global flags
	outputFormat string
	verbose      bool
	noColor      bool
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "refa",
	Short: "Finite-automata regular expression engine",
	Long: `Refa compiles regular expressions into finite automata and runs
them against input strings.

Patterns are compiled to an NFA by Thompson-style composition and can be
determinized into an equivalent DFA. Three execution strategies are
available: frontier-set NFA simulation, path-enumeration backtracking,
and DFA walking. Both automata can render themselves as Graphviz graphs.`,
	Version: refa.Version,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	// Global flags
	rootCmd.PersistentFlags().StringVarP(&outputFormat, "output", "o", "text", "Output format (text|json)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Verbose output")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "Disable color output")
}

func initConfig() {
	if noColor {
		os.Setenv("NO_COLOR", "1")
	}

	if verbose {
		gologger.DefaultLogger.SetMaxLevel(levels.LevelVerbose)
	}
}
