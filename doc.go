/*
Package refa implements a small regular-expression engine built on finite
automata.

A regular expression is given as a syntax tree over five operators: literal
rune, empty match, concatenation, alternation, and Kleene star. Compile
lowers the tree to a nondeterministic finite automaton (NFA) by Thompson-style
composition, and the NFA can be determinized into an equivalent DFA by the
classical subset construction. All three execution strategies answer the same
question — does the automaton accept the input string — with very different
cost profiles.

# Quick Start

	import "github.com/theakshaypant/refa"

	// (a|b)*c
	tree := refa.NewConcat(
	    refa.NewStar(refa.NewAlternate(refa.NewLiteral('a'), refa.NewLiteral('b'))),
	    refa.NewLiteral('c'),
	)

	nfa := refa.Compile(tree)
	nfa.Run("abbac")             // true, frontier-set simulation
	nfa.RunBacktracking("abbac") // true, path enumeration

	dfa := nfa.ToDFA()
	dfa.Run("abbac")             // true, O(len(input))

# Execution Strategies

  - NFA.Run tracks the set of all states the automaton could currently
    occupy. Polynomial worst case, O(n·s²) for input length n and s states.

  - NFA.RunBacktracking enumerates execution paths one at a time without
    memoization. Exponential on ambiguous patterns such as (x+)+y; retained
    as a calibration baseline.

  - DFA.Run follows at most one transition per rune. O(n), independent of
    automaton size.

# Graph Output

Both automata satisfy the Automaton interface and can render themselves in
Graphviz dot format:

	if err := nfa.WriteGraphviz("nfa.dot"); err != nil {
	    log.Fatal(err)
	}

# Character Domain

Inputs are sequences of Unicode scalar values. Matching is rune by rune with
no normalization, case folding, or locale sensitivity.

# Thread Safety

Automata are immutable after construction; independent simulations may run
concurrently on the same automaton.

The refa CLI under cmd/refa drives the library: parsing surface syntax,
matching inputs against a chosen engine, emitting graph renderings, and
comparing strategy runtimes.
*/
package refa
