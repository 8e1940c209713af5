package cmd

import (
	"github.com/projectdiscovery/gologger"
	"github.com/spf13/cobra"

	"github.com/theakshaypant/refa/internal/cli/output"
	"github.com/theakshaypant/refa/internal/patternfile"
)

// sampleCmd represents the sample command
var sampleCmd = &cobra.Command{
	Use:   "sample [path]",
	Short: "Write a sample pattern file",
	Long: `Sample writes a YAML pattern file with example patterns, ready for
use with "refa graph --file".`,
	Example: `  refa sample patterns.yaml`,
	Args:    cobra.MaximumNArgs(1),
	Run:     runSample,
}

func init() {
	rootCmd.AddCommand(sampleCmd)
}

func runSample(cmd *cobra.Command, args []string) {
	path := "patterns.yaml"
	if len(args) == 1 {
		path = args[0]
	}

	if err := patternfile.GenerateSample(path); err != nil {
		gologger.Fatal().Msgf("could not write sample file: %s", err)
	}

	output.NewFormatter(outputFormat, noColor).PrintSuccess("wrote %s", path)
}
