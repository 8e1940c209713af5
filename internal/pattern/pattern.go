// Package pattern parses regex surface syntax into refa syntax trees.
//
// The engine core consumes already-built trees; this package is the bridge
// from textual patterns. It wraps Go's regexp/syntax parser and maps the
// simplified AST onto the five core operators. Constructs the engine does
// not model — character classes beyond a small expandable size, anchors,
// any-char, word boundaries — are rejected rather than approximated.
package pattern

import (
	"errors"
	"fmt"
	"regexp/syntax"

	"github.com/theakshaypant/refa"
)

var (
	// ErrInvalidPattern indicates the pattern is syntactically invalid.
	ErrInvalidPattern = errors.New("invalid regex pattern")

	// ErrUnsupportedFeature indicates the pattern uses regex features the
	// engine does not model.
	ErrUnsupportedFeature = errors.New("unsupported regex feature")
)

// maxClassSize bounds how many runes a character class may expand to as an
// alternation of literals.
const maxClassSize = 128

// Parser wraps Go's regexp/syntax parser and lowers its AST to refa trees.
type Parser struct {
	flags syntax.Flags
}

// NewParser creates a new parser with default flags.
func NewParser() *Parser {
	return &Parser{
		flags: syntax.Perl,
	}
}

// NewParserWithFlags creates a new parser with custom syntax flags.
func NewParserWithFlags(flags syntax.Flags) *Parser {
	return &Parser{flags: flags}
}

// Parse parses a regex pattern into a refa syntax tree.
func (p *Parser) Parse(pat string) (*refa.Tree, error) {
	re, err := syntax.Parse(pat, p.flags)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidPattern, err)
	}

	re = re.Simplify()

	return convert(re)
}

// MustParse is like Parse but panics on error. Useful for testing.
func (p *Parser) MustParse(pat string) *refa.Tree {
	tree, err := p.Parse(pat)
	if err != nil {
		panic(err)
	}
	return tree
}

// Validate checks whether a pattern parses and uses only supported features.
func (p *Parser) Validate(pat string) error {
	_, err := p.Parse(pat)
	return err
}

// convert lowers one regexp/syntax node to the core operators. Plus and
// quest desugar into star and alternation; a sub-tree may be shared between
// siblings because compilation never mutates its input.
func convert(re *syntax.Regexp) (*refa.Tree, error) {
	switch re.Op {
	case syntax.OpLiteral:
		if len(re.Rune) == 0 {
			return refa.NewEmpty(), nil
		}
		if len(re.Rune) == 1 {
			return refa.NewLiteral(re.Rune[0]), nil
		}
		sub := make([]*refa.Tree, len(re.Rune))
		for i, r := range re.Rune {
			sub[i] = refa.NewLiteral(r)
		}
		return refa.NewConcat(sub...), nil

	case syntax.OpEmptyMatch:
		return refa.NewEmpty(), nil

	case syntax.OpCharClass:
		return convertClass(re)

	case syntax.OpConcat:
		return convertSub(re, refa.NewConcat)

	case syntax.OpAlternate:
		return convertSub(re, refa.NewAlternate)

	case syntax.OpStar:
		sub, err := convert(re.Sub[0])
		if err != nil {
			return nil, err
		}
		return refa.NewStar(sub), nil

	case syntax.OpPlus:
		sub, err := convert(re.Sub[0])
		if err != nil {
			return nil, err
		}
		return refa.NewConcat(sub, refa.NewStar(sub)), nil

	case syntax.OpQuest:
		sub, err := convert(re.Sub[0])
		if err != nil {
			return nil, err
		}
		return refa.NewAlternate(sub, refa.NewEmpty()), nil

	case syntax.OpCapture:
		if len(re.Sub) == 0 {
			return refa.NewEmpty(), nil
		}
		return convert(re.Sub[0])

	default:
		return nil, fmt.Errorf("%w: %v", ErrUnsupportedFeature, re.Op)
	}
}

func convertSub(re *syntax.Regexp, join func(...*refa.Tree) *refa.Tree) (*refa.Tree, error) {
	if len(re.Sub) == 0 {
		return refa.NewEmpty(), nil
	}
	sub := make([]*refa.Tree, len(re.Sub))
	for i, s := range re.Sub {
		t, err := convert(s)
		if err != nil {
			return nil, err
		}
		sub[i] = t
	}
	if len(sub) == 1 {
		return sub[0], nil
	}
	return join(sub...), nil
}

// convertClass expands a small character class into an alternation of
// literals. regexp/syntax normalizes alternations of single runes, a|b,
// into classes, so this path is what keeps such patterns working. Classes
// too large to enumerate are rejected.
func convertClass(re *syntax.Regexp) (*refa.Tree, error) {
	var runes []rune
	for i := 0; i+1 < len(re.Rune); i += 2 {
		lo, hi := re.Rune[i], re.Rune[i+1]
		if int(hi-lo)+1 > maxClassSize-len(runes) {
			return nil, fmt.Errorf("%w: character class with more than %d runes", ErrUnsupportedFeature, maxClassSize)
		}
		for r := lo; r <= hi; r++ {
			runes = append(runes, r)
		}
	}

	if len(runes) == 0 {
		return nil, fmt.Errorf("%w: empty character class", ErrUnsupportedFeature)
	}
	if len(runes) == 1 {
		return refa.NewLiteral(runes[0]), nil
	}
	sub := make([]*refa.Tree, len(runes))
	for i, r := range runes {
		sub[i] = refa.NewLiteral(r)
	}
	return refa.NewAlternate(sub...), nil
}
