package refa

// Automaton is the uniform surface shared by the NFA and DFA: match an input
// string, and render the state graph for Graphviz. Both automata are
// immutable after construction and safe for concurrent use.
type Automaton interface {
	// Run reports whether the automaton accepts s. Matching is rune by
	// rune with no normalization, case folding, or locale handling.
	Run(s string) bool

	// WriteGraphviz writes a dot-format rendering of the automaton to
	// path, overwriting any existing file.
	WriteGraphviz(path string) error
}

var (
	_ Automaton = (*NFA)(nil)
	_ Automaton = (*DFA)(nil)
)
