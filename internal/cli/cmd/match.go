package cmd

import (
	"os"

	"github.com/projectdiscovery/gologger"
	"github.com/spf13/cobra"

	"github.com/theakshaypant/refa"
	"github.com/theakshaypant/refa/internal/cli/output"
	"github.com/theakshaypant/refa/internal/pattern"
)

var matchEngine string

// matchCmd represents the match command
var matchCmd = &cobra.Command{
	Use:   "match <pattern> <input>...",
	Short: "Match inputs against a regex pattern",
	Long: `Match compiles a pattern to a finite automaton and runs it against
each input string.

Exit code 0 when every input matches, 1 otherwise. The engine flag picks
the execution strategy:
  - nfa:          frontier-set NFA simulation (default)
  - dfa:          subset-constructed DFA
  - backtracking: path enumeration; exponential on ambiguous patterns`,
	Example: `  # Match one input
  refa match "(a|b)*c" abbac

  # Several inputs, DFA engine
  refa match "(0|1)*1" 01 10 11 --engine=dfa

  # JSON output for scripting
  refa match "a*" aaa --output=json`,
	Args: cobra.MinimumNArgs(2),
	Run:  runMatch,
}

func init() {
	matchCmd.Flags().StringVarP(&matchEngine, "engine", "e", "nfa", "Execution engine (nfa|dfa|backtracking)")
	rootCmd.AddCommand(matchCmd)
}

func runMatch(cmd *cobra.Command, args []string) {
	pat, inputs := args[0], args[1:]

	formatter := output.NewFormatter(outputFormat, noColor)

	tree, err := pattern.NewParser().Parse(pat)
	if err != nil {
		gologger.Fatal().Msgf("could not parse pattern: %s", err)
	}

	nfa := refa.Compile(tree)
	gologger.Verbose().Msgf("compiled %q to an NFA with %d states", pat, nfa.States().Len())

	var run func(string) bool
	switch matchEngine {
	case "nfa":
		run = nfa.Run
	case "backtracking":
		run = nfa.RunBacktracking
	case "dfa":
		dfa := nfa.ToDFA()
		gologger.Verbose().Msgf("determinized to a DFA with %d transitions", len(dfa.Trans))
		run = dfa.Run
	default:
		gologger.Fatal().Msgf("unknown engine %q (want nfa, dfa or backtracking)", matchEngine)
	}

	results := make([]output.MatchResult, len(inputs))
	all := true
	for i, in := range inputs {
		matched := run(in)
		all = all && matched
		results[i] = output.MatchResult{
			Pattern: pat,
			Engine:  matchEngine,
			Input:   in,
			Matched: matched,
		}
	}

	if err := formatter.FormatMatchResults(results); err != nil {
		gologger.Fatal().Msgf("could not format output: %s", err)
	}

	if !all {
		os.Exit(1)
	}
}
