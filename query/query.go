// Package query compiles text expressions such as
//
//	color=blue and (size=large or not name="Tree")
//
// into specifications. The attributes an expression may test are
// registered per item type, so the package knows nothing about the items.
//
// Keywords are case-insensitive and have symbolic forms: "and" (&&),
// "or" (||) and "not" (!). "a!=v" is short for "not a=v". AND binds
// tighter than OR; both evaluate left to right and short-circuit.
package query

import (
	"sort"
	"strconv"
	"strings"

	"github.com/cockroachdb/errors"

	"github.com/go-leo/spec-filter/specification"
)

// Leaf builds the specification testing one attribute against value.
type Leaf[T any] func(value string) (specification.Specification[T], error)

// Registry maps attribute names to leaf constructors.
// Register everything before sharing a Registry between goroutines.
type Registry[T any] struct {
	leaves map[string]Leaf[T]
}

func NewRegistry[T any]() *Registry[T] {
	return &Registry[T]{leaves: make(map[string]Leaf[T])}
}

// Register makes attribute usable in expressions. Names are case-insensitive.
func (r *Registry[T]) Register(attribute string, leaf Leaf[T]) error {
	name := strings.ToLower(strings.TrimSpace(attribute))
	if name == "" {
		return errors.Wrap(specification.ErrInvalidArgument, "register: attribute name is empty")
	}
	if leaf == nil {
		return errors.Wrapf(specification.ErrInvalidArgument, "register %q: leaf is nil", name)
	}
	if _, ok := r.leaves[name]; ok {
		return errors.Wrapf(ErrRegistered, "register %q", name)
	}
	r.leaves[name] = leaf
	return nil
}

// Attributes returns the registered attribute names, sorted.
func (r *Registry[T]) Attributes() []string {
	names := make([]string, 0, len(r.leaves))
	for name := range r.leaves {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Parse compiles expr into a specification.
func (r *Registry[T]) Parse(expr string) (specification.Specification[T], error) {
	tokens, err := lex(expr)
	if err != nil {
		return nil, err
	}
	p := &parser[T]{registry: r, tokens: tokens}
	spec, err := p.parseOr()
	if err != nil {
		return nil, err
	}
	if tok := p.peek(); tok.kind != kindEOF {
		return nil, p.unexpected(tok, "end of expression")
	}
	return spec, nil
}

type parser[T any] struct {
	registry *Registry[T]
	tokens   []token
	pos      int
}

func (p *parser[T]) peek() token {
	return p.tokens[p.pos]
}

func (p *parser[T]) next() token {
	tok := p.tokens[p.pos]
	if tok.kind != kindEOF {
		p.pos++
	}
	return tok
}

func (p *parser[T]) unexpected(tok token, want string) error {
	got := tok.kind.String()
	if tok.kind == kindWord || tok.kind == kindString {
		got = strconv.Quote(tok.text)
	}
	return errors.Wrapf(ErrSyntax, "at offset %d: expected %s, got %s", tok.pos, want, got)
}

// or := and (OR and)*
func (p *parser[T]) parseOr() (specification.Specification[T], error) {
	return p.parseChain(kindOr, p.parseAnd, specification.Disjunction[T])
}

// and := unary (AND unary)*
func (p *parser[T]) parseAnd() (specification.Specification[T], error) {
	return p.parseChain(kindAnd, p.parseUnary, specification.Conjunction[T])
}

func (p *parser[T]) parseChain(
	op kind,
	operand func() (specification.Specification[T], error),
	combine func(...specification.Specification[T]) (specification.Specification[T], error),
) (specification.Specification[T], error) {
	first, err := operand()
	if err != nil {
		return nil, err
	}
	specs := []specification.Specification[T]{first}
	for p.peek().kind == op {
		p.next()
		spec, err := operand()
		if err != nil {
			return nil, err
		}
		specs = append(specs, spec)
	}
	if len(specs) == 1 {
		return first, nil
	}
	return combine(specs...)
}

// unary := NOT unary | "(" or ")" | comparison
func (p *parser[T]) parseUnary() (specification.Specification[T], error) {
	switch tok := p.peek(); tok.kind {
	case kindNot:
		p.next()
		spec, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		return specification.Not(spec)
	case kindLParen:
		p.next()
		spec, err := p.parseOr()
		if err != nil {
			return nil, err
		}
		if tok := p.next(); tok.kind != kindRParen {
			return nil, p.unexpected(tok, "')'")
		}
		return spec, nil
	default:
		return p.parseComparison()
	}
}

// comparison := word ("=" | "!=") (word | string)
func (p *parser[T]) parseComparison() (specification.Specification[T], error) {
	attr := p.next()
	if attr.kind != kindWord {
		return nil, p.unexpected(attr, "attribute")
	}
	op := p.next()
	if op.kind != kindEq && op.kind != kindNeq {
		return nil, p.unexpected(op, "'=' or '!='")
	}
	value := p.next()
	if value.kind != kindWord && value.kind != kindString {
		return nil, p.unexpected(value, "value")
	}

	name := strings.ToLower(attr.text)
	leaf, ok := p.registry.leaves[name]
	if !ok {
		return nil, errors.Wrapf(ErrUnknownAttribute, "at offset %d: %q", attr.pos, attr.text)
	}
	spec, err := leaf(value.text)
	if err != nil {
		return nil, errors.Wrapf(err, "at offset %d: %s", value.pos, name)
	}
	if specification.IsNil(spec) {
		return nil, errors.Wrapf(specification.ErrInvalidArgument, "at offset %d: %s leaf returned nil", value.pos, name)
	}
	if op.kind == kindNeq {
		return specification.Not(spec)
	}
	return spec, nil
}
