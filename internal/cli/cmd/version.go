package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/theakshaypant/refa"
)

// versionCmd represents the version command
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version information",
	Long:  `Display version information for the refa CLI tool.`,
	Run:   runVersion,
}

func init() {
	rootCmd.AddCommand(versionCmd)
}

func runVersion(cmd *cobra.Command, args []string) {
	fmt.Printf("refa version %s\n", refa.FullVersion())
	fmt.Printf("Finite-automata regular expression engine\n")
	fmt.Printf("\nFeatures:\n")
	fmt.Printf("  • Thompson-style NFA compilation\n")
	fmt.Printf("  • Frontier-set and backtracking simulation\n")
	fmt.Printf("  • Subset construction to DFA\n")
	fmt.Printf("  • Graphviz graph emission\n")
}
