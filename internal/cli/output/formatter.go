// Package output formats CLI results as text or JSON.
package output

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/fatih/color"
)

// Formatter handles output formatting
type Formatter struct {
	writer  io.Writer
	format  string
	noColor bool
}

// NewFormatter creates a new formatter
func NewFormatter(format string, noColor bool) *Formatter {
	if noColor {
		color.NoColor = true
	}

	return &Formatter{
		writer:  os.Stdout,
		format:  format,
		noColor: noColor,
	}
}

// MatchResult is the outcome of matching one input against a pattern.
type MatchResult struct {
	Pattern string `json:"pattern"`
	Engine  string `json:"engine"`
	Input   string `json:"input"`
	Matched bool   `json:"matched"`
}

// EngineTiming is one engine's timed verdict in a comparison run.
type EngineTiming struct {
	Engine  string        `json:"engine"`
	Matched bool          `json:"matched"`
	Elapsed time.Duration `json:"elapsed_ns"`
}

// CompareResult holds the timings of every engine on the same input.
type CompareResult struct {
	Pattern string         `json:"pattern"`
	Input   string         `json:"input"`
	Engines []EngineTiming `json:"engines"`
}

// GraphResult describes the rendering emitted for one pattern.
type GraphResult struct {
	Name      string `json:"name"`
	Pattern   string `json:"pattern"`
	NFAPath   string `json:"nfa_path"`
	DFAPath   string `json:"dfa_path"`
	NFAStates int    `json:"nfa_states"`
	DFAStates int    `json:"dfa_states"`
}

// FormatMatchResults formats the results of a match run.
func (f *Formatter) FormatMatchResults(results []MatchResult) error {
	if f.format == "json" {
		return f.writeJSON(results)
	}

	for _, r := range results {
		if r.Matched {
			fmt.Fprintf(f.writer, "%s %q\n", f.colorize("match:", color.FgGreen), r.Input)
		} else {
			fmt.Fprintf(f.writer, "%s %q\n", f.colorize("no match:", color.FgRed), r.Input)
		}
	}
	return nil
}

// FormatCompareResult formats an engine comparison.
func (f *Formatter) FormatCompareResult(result *CompareResult) error {
	if f.format == "json" {
		return f.writeJSON(result)
	}

	fmt.Fprintf(f.writer, "Pattern: %s\n", f.colorize(result.Pattern, color.FgCyan))
	fmt.Fprintf(f.writer, "Input:   %q\n\n", result.Input)
	for _, e := range result.Engines {
		verdict := f.colorize("no match", color.FgRed)
		if e.Matched {
			verdict = f.colorize("match", color.FgGreen)
		}
		fmt.Fprintf(f.writer, "  %-13s %-9s %v\n", e.Engine, verdict, e.Elapsed)
	}
	return nil
}

// FormatGraphResults formats the summary of a graph run.
func (f *Formatter) FormatGraphResults(results []GraphResult) error {
	if f.format == "json" {
		return f.writeJSON(results)
	}

	for _, r := range results {
		fmt.Fprintf(f.writer, "%s %s (%d NFA states, %d DFA states)\n",
			f.colorize("✓", color.FgGreen), r.Name, r.NFAStates, r.DFAStates)
		fmt.Fprintf(f.writer, "  %s\n  %s\n", r.NFAPath, r.DFAPath)
	}
	return nil
}

func (f *Formatter) writeJSON(v interface{}) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(f.writer, string(data))
	return err
}

// Helper functions

func (f *Formatter) colorize(text string, attr color.Attribute) string {
	if f.noColor {
		return text
	}
	return color.New(attr).Sprint(text)
}

// PrintError prints an error message
func (f *Formatter) PrintError(format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	fmt.Fprintf(os.Stderr, "%s %s\n", f.colorize("Error:", color.FgRed), msg)
}

// PrintInfo prints an info message
func (f *Formatter) PrintInfo(format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	fmt.Fprintf(f.writer, "%s %s\n", f.colorize("Info:", color.FgCyan), msg)
}

// PrintSuccess prints a success message
func (f *Formatter) PrintSuccess(format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	fmt.Fprintf(f.writer, "%s %s\n", f.colorize("✓", color.FgGreen), msg)
}
