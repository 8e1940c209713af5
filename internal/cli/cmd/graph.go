package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/projectdiscovery/gologger"
	"github.com/spf13/cobra"

	"github.com/theakshaypant/refa"
	"github.com/theakshaypant/refa/internal/cli/output"
	"github.com/theakshaypant/refa/internal/pattern"
	"github.com/theakshaypant/refa/internal/patternfile"
)

var (
	graphFile   string
	graphOutDir string
	graphName   string
)

// graphCmd represents the graph command
var graphCmd = &cobra.Command{
	Use:   "graph [pattern]",
	Short: "Render NFA and DFA graphs for patterns",
	Long: `Graph compiles patterns and writes Graphviz dot renderings of both
the NFA and the subset-constructed DFA.

Patterns come either from the command line or, with --file, from a YAML
pattern file mapping names to patterns. Render the output with dot:

  dot -Tsvg graphs/bit5_nfa.dot -o bit5_nfa.svg`,
	Example: `  # Single pattern
  refa graph "(0|1)*1(0|1)(0|1)(0|1)(0|1)" --name=bit5

  # Every pattern in a file
  refa graph --file=patterns.yaml --out-dir=graphs`,
	Args: cobra.MaximumNArgs(1),
	Run:  runGraph,
}

func init() {
	graphCmd.Flags().StringVarP(&graphFile, "file", "f", "", "YAML pattern file with named patterns")
	graphCmd.Flags().StringVarP(&graphOutDir, "out-dir", "d", "graphs", "Directory for dot files")
	graphCmd.Flags().StringVarP(&graphName, "name", "n", "pattern", "Base name for single-pattern output")
	rootCmd.AddCommand(graphCmd)
}

func runGraph(cmd *cobra.Command, args []string) {
	formatter := output.NewFormatter(outputFormat, noColor)

	patterns := make(map[string]string)
	switch {
	case graphFile != "":
		cfg, err := patternfile.NewConfig(graphFile)
		if err != nil {
			gologger.Fatal().Msgf("could not load pattern file: %s", err)
		}
		patterns = cfg.Patterns
	case len(args) == 1:
		patterns[graphName] = args[0]
	default:
		gologger.Fatal().Msgf("need a pattern argument or --file")
	}

	if err := os.MkdirAll(graphOutDir, 0755); err != nil {
		gologger.Fatal().Msgf("could not create output directory: %s", err)
	}

	names := make([]string, 0, len(patterns))
	for name := range patterns {
		names = append(names, name)
	}
	sort.Strings(names)

	var results []output.GraphResult
	for _, name := range names {
		pat := patterns[name]
		tree, err := pattern.NewParser().Parse(pat)
		if err != nil {
			gologger.Fatal().Msgf("could not parse pattern %q: %s", name, err)
		}

		nfa := refa.Compile(tree)
		dfa := nfa.ToDFA()

		nfaPath := filepath.Join(graphOutDir, fmt.Sprintf("%s_nfa.dot", name))
		dfaPath := filepath.Join(graphOutDir, fmt.Sprintf("%s_dfa.dot", name))
		if err := nfa.WriteGraphviz(nfaPath); err != nil {
			gologger.Fatal().Msgf("could not write %s: %s", nfaPath, err)
		}
		if err := dfa.WriteGraphviz(dfaPath); err != nil {
			gologger.Fatal().Msgf("could not write %s: %s", dfaPath, err)
		}
		gologger.Verbose().Msgf("wrote %s and %s", nfaPath, dfaPath)

		dfaStates := stateCount(dfa)
		results = append(results, output.GraphResult{
			Name:      name,
			Pattern:   pat,
			NFAPath:   nfaPath,
			DFAPath:   dfaPath,
			NFAStates: nfa.States().Len(),
			DFAStates: dfaStates,
		})
	}

	if err := formatter.FormatGraphResults(results); err != nil {
		gologger.Fatal().Msgf("could not format output: %s", err)
	}
}

func stateCount(d *refa.DFA) int {
	states := make(map[int]bool)
	states[d.Start] = true
	for m, to := range d.Trans {
		states[m.From] = true
		states[to] = true
	}
	return len(states)
}
