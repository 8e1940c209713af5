package refa

import (
	"fmt"
	"strings"
)

// Op identifies a syntax tree operator.
type Op int

const (
	// OpLiteral matches exactly one rune.
	OpLiteral Op = iota
	// OpEmpty matches the empty string.
	OpEmpty
	// OpConcat matches the concatenation of its children's languages.
	OpConcat
	// OpAlternate matches the union of its children's languages.
	OpAlternate
	// OpStar matches zero or more repetitions of its single child.
	OpStar
)

// String returns the string representation of the operator.
func (op Op) String() string {
	switch op {
	case OpLiteral:
		return "literal"
	case OpEmpty:
		return "empty"
	case OpConcat:
		return "concat"
	case OpAlternate:
		return "alternate"
	case OpStar:
		return "star"
	default:
		return "unknown"
	}
}

// Tree is a regular-expression syntax tree. Leaves (OpLiteral, OpEmpty) hold
// no children; interior nodes hold at least one. Trees are built once and not
// mutated afterwards; Compile never modifies its input.
type Tree struct {
	Op   Op
	Rune rune    // matched rune, set when Op == OpLiteral
	Sub  []*Tree // children, nil for leaves
}

// NewLiteral returns a leaf matching exactly the rune r.
func NewLiteral(r rune) *Tree {
	return &Tree{Op: OpLiteral, Rune: r}
}

// NewEmpty returns a leaf matching the empty string.
func NewEmpty() *Tree {
	return &Tree{Op: OpEmpty}
}

// NewConcat returns a node matching the concatenation of sub's languages.
func NewConcat(sub ...*Tree) *Tree {
	return &Tree{Op: OpConcat, Sub: sub}
}

// NewAlternate returns a node matching the union of sub's languages.
func NewAlternate(sub ...*Tree) *Tree {
	return &Tree{Op: OpAlternate, Sub: sub}
}

// NewStar returns a node matching zero or more repetitions of sub.
func NewStar(sub *Tree) *Tree {
	return &Tree{Op: OpStar, Sub: []*Tree{sub}}
}

// String renders the tree in a regex-like surface form, for diagnostics.
func (t *Tree) String() string {
	switch t.Op {
	case OpLiteral:
		return string(t.Rune)
	case OpEmpty:
		return "ε"
	case OpConcat:
		var b strings.Builder
		for _, s := range t.Sub {
			b.WriteString(s.String())
		}
		return b.String()
	case OpAlternate:
		parts := make([]string, len(t.Sub))
		for i, s := range t.Sub {
			parts[i] = s.String()
		}
		return "(" + strings.Join(parts, "|") + ")"
	case OpStar:
		return "(" + t.Sub[0].String() + ")*"
	default:
		return fmt.Sprintf("!%d", t.Op)
	}
}
