package refa

import (
	"fmt"

	"github.com/theakshaypant/refa/internal/stateset"
)

// Compile lowers a syntax tree to an NFA by structural recursion: leaves
// become fresh two-state automata, interior nodes combine their compiled
// children. Sub-automata are renumbered into disjoint id ranges before being
// glued together.
//
// Interior nodes must have at least one child; a malformed tree is a caller
// bug and panics.
func Compile(t *Tree) *NFA {
	switch t.Op {
	case OpLiteral:
		return literalNFA(t.Rune)
	case OpEmpty:
		return emptyNFA()
	case OpConcat:
		return concatNFA(compileSub(t))
	case OpAlternate:
		return alternateNFA(compileSub(t))
	case OpStar:
		return starNFA(compileSub(t)[0])
	default:
		panic(fmt.Sprintf("refa: unknown tree op %d", t.Op))
	}
}

func compileSub(t *Tree) []*NFA {
	if len(t.Sub) == 0 {
		panic(fmt.Sprintf("refa: %s node without children", t.Op))
	}
	nfas := make([]*NFA, len(t.Sub))
	for i, sub := range t.Sub {
		nfas[i] = Compile(sub)
	}
	return nfas
}

// literalNFA matches exactly the rune r.
func literalNFA(r rune) *NFA {
	n := &NFA{
		Start:  0,
		Accept: stateset.New(1),
		Trans:  make(map[Edge]stateset.Set),
	}
	n.Add(0, RuneLabel(r), 1)
	return n
}

// emptyNFA matches exactly the empty string, via an explicit epsilon edge.
func emptyNFA() *NFA {
	n := &NFA{
		Start:  0,
		Accept: stateset.New(1),
		Trans:  make(map[Edge]stateset.Set),
	}
	n.Add(0, EpsilonLabel(), 1)
	return n
}

// concatNFA folds the children left to right into an accumulator, starting
// from the default NFA. Each child is renumbered above the accumulator's
// maximum id, then spliced: edges leaving the child's start are re-rooted at
// every current accept state, all other edges copy over unchanged, and the
// child's accepts become the accumulator's. No glue states are introduced;
// this relies on the child start having no incoming edges, which holds by
// construction.
func concatNFA(nfas []*NFA) *NFA {
	acc := NewNFA()
	for _, x := range nfas {
		x.shift(acc.maxState() + 1)

		for e, targets := range x.Trans {
			if e.From == x.Start {
				for f := range acc.Accept {
					acc.addAll(f, e.Label, targets)
				}
			} else {
				acc.addAll(e.From, e.Label, targets)
			}
		}

		acc.Accept = x.Accept
	}
	return acc
}

// alternateNFA renumbers the children into disjoint ranges and joins them
// with two fresh states: a new start with epsilon edges to every child start,
// and a new accept fed by epsilon edges from every child accept. The old
// accepts stop being accepting.
func alternateNFA(nfas []*NFA) *NFA {
	max := -1
	starts := stateset.New()
	accepts := stateset.New()
	trans := make(map[Edge]stateset.Set)

	for _, x := range nfas {
		x.shift(max + 1)
		starts.Add(x.Start)
		accepts.AddAll(x.Accept)
		max = x.maxState()
		for e, targets := range x.Trans {
			trans[e] = targets
		}
	}

	start := max + 1
	accept := max + 2

	result := &NFA{Start: start, Accept: stateset.New(accept), Trans: trans}
	result.addAll(start, EpsilonLabel(), starts)
	for a := range accepts {
		result.Add(a, EpsilonLabel(), accept)
	}
	return result
}

// starNFA wraps the child with a fresh start and accept. The start bypasses
// straight to the accept (zero repetitions) or enters the child; every child
// accept loops back to the child start or exits.
func starNFA(x *NFA) *NFA {
	max := x.maxState()
	start := max + 1
	accept := max + 2

	x.Add(start, EpsilonLabel(), x.Start, accept)
	for a := range x.Accept {
		x.Add(a, EpsilonLabel(), x.Start, accept)
	}

	x.Start = start
	x.Accept = stateset.New(accept)
	return x
}

// shift renumbers the automaton by adding offset to every state id: the
// start, every accept, and both sides of every transition. The language is
// unchanged; the id range moves to [offset, offset+size). Renumbering is how
// sub-automata are kept disjoint during composition.
func (n *NFA) shift(offset int) {
	n.Start += offset
	n.Accept = n.Accept.Shift(offset)

	moved := make(map[Edge]stateset.Set, len(n.Trans))
	for e, targets := range n.Trans {
		moved[Edge{From: e.From + offset, Label: e.Label}] = targets.Shift(offset)
	}
	n.Trans = moved
}
