package refa

import (
	"math/rand"
	"testing"
)

func pathologicalTree() *Tree {
	// xx*xx*(xx*xx*)*y — ambiguous enough to blow up path enumeration
	block := func() *Tree {
		return NewConcat(
			NewLiteral('x'),
			NewStar(NewLiteral('x')),
			NewLiteral('x'),
			NewStar(NewLiteral('x')),
		)
	}
	return NewConcat(block(), NewStar(block()), NewLiteral('y'))
}

func binaryTailTree() *Tree {
	// (0|1)*1(0|1)(0|1)(0|1)(0|1)
	bit := func() *Tree {
		return NewAlternate(NewLiteral('0'), NewLiteral('1'))
	}
	return NewConcat(
		NewStar(bit()),
		NewLiteral('1'),
		bit(), bit(), bit(), bit(),
	)
}

func TestEquivalence_Scenarios(t *testing.T) {
	cases := []struct {
		name  string
		tree  *Tree
		input string
		want  bool

		// path enumeration is exponential on the pathological pattern;
		// skip it where it would dominate the test run
		skipBacktracking bool
	}{
		{name: "literal match", tree: NewLiteral('a'), input: "a", want: true},
		{name: "literal empty", tree: NewLiteral('a'), input: "", want: false},
		{name: "literal too long", tree: NewLiteral('a'), input: "ab", want: false},

		{name: "alternation left", tree: NewAlternate(NewLiteral('a'), NewLiteral('b')), input: "a", want: true},
		{name: "alternation right", tree: NewAlternate(NewLiteral('a'), NewLiteral('b')), input: "b", want: true},
		{name: "alternation miss", tree: NewAlternate(NewLiteral('a'), NewLiteral('b')), input: "c", want: false},

		{name: "star empty", tree: NewStar(NewLiteral('a')), input: "", want: true},
		{name: "star many", tree: NewStar(NewLiteral('a')), input: "aaaa", want: true},
		{name: "star trailing junk", tree: NewStar(NewLiteral('a')), input: "aab", want: false},

		{name: "pathological short", tree: pathologicalTree(), input: "xxy", want: true},
		{name: "pathological long", tree: pathologicalTree(), input: "xxxxxxxxxy", want: true, skipBacktracking: true},
		{name: "pathological no suffix", tree: pathologicalTree(), input: "xxxxxxxxx", want: false, skipBacktracking: true},

		{name: "binary tail hit", tree: binaryTailTree(), input: "10000", want: true},
		{name: "binary tail short", tree: binaryTailTree(), input: "0000", want: false},

		{name: "concat hit", tree: NewConcat(NewLiteral('a'), NewLiteral('b')), input: "ab", want: true},
		{name: "concat partial", tree: NewConcat(NewLiteral('a'), NewLiteral('b')), input: "a", want: false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			nfa := Compile(tc.tree)
			dfa := nfa.ToDFA()

			if got := nfa.Run(tc.input); got != tc.want {
				t.Errorf("NFA Run(%q) = %v, want %v", tc.input, got, tc.want)
			}
			if got := dfa.Run(tc.input); got != tc.want {
				t.Errorf("DFA Run(%q) = %v, want %v", tc.input, got, tc.want)
			}
			if !tc.skipBacktracking {
				if got := nfa.RunBacktracking(tc.input); got != tc.want {
					t.Errorf("RunBacktracking(%q) = %v, want %v", tc.input, got, tc.want)
				}
			}
		})
	}
}

// hasEpsilonCycle reports whether any state reaches itself through one or
// more epsilon edges. Path enumeration diverges on such automata for
// non-matching input, so the random equivalence test excludes it there.
func hasEpsilonCycle(n *NFA) bool {
	for s := range n.States() {
		targets, ok := n.Trans[Edge{From: s, Label: EpsilonLabel()}]
		if !ok {
			continue
		}
		for t := range targets {
			if n.closure(t).Has(s) {
				return true
			}
		}
	}
	return false
}

// randomTree generates a bounded tree over the alphabet {a, b}.
func randomTree(rng *rand.Rand, depth int) *Tree {
	if depth == 0 {
		if rng.Intn(8) == 0 {
			return NewEmpty()
		}
		return NewLiteral(rune('a' + rng.Intn(2)))
	}

	switch rng.Intn(10) {
	case 0, 1, 2:
		return NewLiteral(rune('a' + rng.Intn(2)))
	case 3:
		return NewEmpty()
	case 4, 5, 6:
		sub := make([]*Tree, 1+rng.Intn(3))
		for i := range sub {
			sub[i] = randomTree(rng, depth-1)
		}
		return NewConcat(sub...)
	case 7, 8:
		sub := make([]*Tree, 1+rng.Intn(3))
		for i := range sub {
			sub[i] = randomTree(rng, depth-1)
		}
		return NewAlternate(sub...)
	default:
		return NewStar(randomTree(rng, depth-1))
	}
}

// allStrings returns every string over alphabet with length at most maxLen.
func allStrings(alphabet string, maxLen int) []string {
	result := []string{""}
	prev := []string{""}
	for i := 0; i < maxLen; i++ {
		var next []string
		for _, s := range prev {
			for _, c := range alphabet {
				next = append(next, s+string(c))
			}
		}
		result = append(result, next...)
		prev = next
	}
	return result
}

// For every generated tree and every bounded input, the frontier simulation
// and the DFA must return the same verdict; the backtracking simulation must
// agree too on trees whose NFA has no epsilon cycle.
func TestEquivalence_RandomTrees(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	inputs := allStrings("ab", 4)

	for i := 0; i < 60; i++ {
		tree := randomTree(rng, 3)
		nfa := Compile(tree)
		dfa := nfa.ToDFA()
		cyclic := hasEpsilonCycle(nfa)

		for _, input := range inputs {
			thompson := nfa.Run(input)
			if got := dfa.Run(input); got != thompson {
				t.Fatalf("tree %s input %q: DFA = %v, NFA = %v", tree, input, got, thompson)
			}
			if !cyclic {
				if got := nfa.RunBacktracking(input); got != thompson {
					t.Fatalf("tree %s input %q: backtracking = %v, NFA = %v", tree, input, got, thompson)
				}
			}
		}
	}
}

// Renumbering shifts every id and preserves the language.
func TestEquivalence_ShiftPreservesLanguage(t *testing.T) {
	rng := rand.New(rand.NewSource(2))
	inputs := allStrings("ab", 3)

	for i := 0; i < 20; i++ {
		tree := randomTree(rng, 2)
		offset := rng.Intn(50)

		original := Compile(tree)
		shifted := Compile(tree)
		shifted.shift(offset)

		if min := shifted.States().Sorted()[0]; min < offset {
			t.Fatalf("tree %s: shift(%d) left state %d below the offset", tree, offset, min)
		}
		for _, input := range inputs {
			if original.Run(input) != shifted.Run(input) {
				t.Fatalf("tree %s input %q: shift(%d) changed the language", tree, input, offset)
			}
		}
	}
}
