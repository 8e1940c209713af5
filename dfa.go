package refa

import (
	"sort"

	"github.com/theakshaypant/refa/internal/stateset"
)

// Move keys a DFA transition: a source state and an input rune.
type Move struct {
	From int
	Rune rune
}

// DFA is a deterministic finite automaton over integer state ids. The
// transition map is partial; a missing (state, rune) entry stands for the
// dead state and rejects immediately.
type DFA struct {
	Start  int
	Accept stateset.Set
	Trans  map[Move]int
}

// NewDFA creates a DFA from its parts.
func NewDFA(start int, accept stateset.Set, trans map[Move]int) *DFA {
	return &DFA{Start: start, Accept: accept, Trans: trans}
}

// Run walks the input one rune at a time from the start state. A missing
// transition rejects immediately; otherwise the input is accepted iff the
// final state is accepting. O(len(s)), independent of automaton size.
func (d *DFA) Run(s string) bool {
	state := d.Start
	for _, c := range s {
		next, ok := d.Trans[Move{From: state, Rune: c}]
		if !ok {
			return false
		}
		state = next
	}
	return d.Accept.Has(state)
}

// ToNFA lifts the automaton to an NFA with the same states, the same
// language, and no epsilon edges. Useful for composing a determinized
// automaton back into NFA-level operations.
func (d *DFA) ToNFA() *NFA {
	n := &NFA{
		Start:  d.Start,
		Accept: d.Accept.Clone(),
		Trans:  make(map[Edge]stateset.Set, len(d.Trans)),
	}
	for m, to := range d.Trans {
		n.Add(m.From, RuneLabel(m.Rune), to)
	}
	return n
}

// WriteGraphviz renders the automaton in Graphviz dot format at path,
// overwriting any existing file. Edges appear sorted by source state and
// rune.
func (d *DFA) WriteGraphviz(path string) error {
	keys := make([]Move, 0, len(d.Trans))
	for m := range d.Trans {
		keys = append(keys, m)
	}
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].From != keys[j].From {
			return keys[i].From < keys[j].From
		}
		return keys[i].Rune < keys[j].Rune
	})

	edges := make([]dotEdge, len(keys))
	for i, m := range keys {
		edges[i] = dotEdge{from: m.From, to: d.Trans[m], label: string(m.Rune)}
	}

	return writeDot(path, "dfa", d.Accept.Sorted(), edges)
}
