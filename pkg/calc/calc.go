// Package calc evaluates arithmetic over parse trees: integers, decimals,
// the four infix operators, prefix minus and parenthesised subexpressions.
// It doubles as the reference analyser for consumers of the parse tree.
package calc

import (
	"errors"
	"fmt"
	"math"

	"github.com/crilang/cri/pkg/parser"
	"github.com/crilang/cri/pkg/symbols"
	"github.com/crilang/cri/pkg/token"
	"github.com/crilang/cri/pkg/tree"
)

// Expression is an evaluatable arithmetic node.
type Expression interface {
	Eval() float64
}

// Integer is an exact integer operand.
type Integer int64

func (i Integer) Eval() float64 { return float64(i) }

// Float is a floating-point operand, converted from a decimal literal.
type Float float64

func (f Float) Eval() float64 { return float64(f) }

// Add evaluates L + R.
type Add struct{ L, R Expression }

func (e Add) Eval() float64 { return e.L.Eval() + e.R.Eval() }

// Sub evaluates L - R.
type Sub struct{ L, R Expression }

func (e Sub) Eval() float64 { return e.L.Eval() - e.R.Eval() }

// Mult evaluates L * R.
type Mult struct{ L, R Expression }

func (e Mult) Eval() float64 { return e.L.Eval() * e.R.Eval() }

// Div evaluates L / R.
type Div struct{ L, R Expression }

func (e Div) Eval() float64 { return e.L.Eval() / e.R.Eval() }

var (
	ErrNoExpression    = errors.New("no expression")
	ErrMultiplePhrases = errors.New("unexpected line separator")
	ErrMultipleVerses  = errors.New("unexpected comma separator")
)

// UnexpectedNodeError reports a tree node with no arithmetic meaning.
type UnexpectedNodeError struct {
	At token.Span
}

func (e *UnexpectedNodeError) Error() string {
	return fmt.Sprintf("unexpected node at %s", e.At)
}

// InvalidIntegerError reports an integer literal outside the signed 64-bit
// range.
type InvalidIntegerError struct {
	Value uint64
	At    token.Span
}

func (e *InvalidIntegerError) Error() string {
	return fmt.Sprintf("invalid 64-bit signed integer %d at %s", e.Value, e.At)
}

// UnexpectedSymbolError reports a symbol that is not one of + - * /.
type UnexpectedSymbolError struct {
	Symbol byte
	At     token.Span
}

func (e *UnexpectedSymbolError) Error() string {
	return fmt.Sprintf("unexpected symbol '%c' at %s", e.Symbol, e.At)
}

// StrayOperatorError reports an operator with a missing operand.
type StrayOperatorError struct {
	Symbol byte
	At     token.Span
}

func (e *StrayOperatorError) Error() string {
	return fmt.Sprintf("stray operator '%c' at %s", e.Symbol, e.At)
}

// StrayExpressionError reports two adjacent operands with no operator.
type StrayExpressionError struct {
	At token.Span
}

func (e *StrayExpressionError) Error() string {
	return fmt.Sprintf("stray expression at %s", e.At)
}

// element is either an expression or an operator awaiting folding. A nil
// expr marks an operator.
type element struct {
	expr Expression
	op   byte
	meta token.Span
}

// Analyse converts a single-phrase verse into an expression tree.
func Analyse(v *tree.Verse) (Expression, error) {
	nodes, err := flatten(v.Phrases)
	if err != nil {
		return nil, err
	}
	elements, err := processNodes(nodes)
	if err != nil {
		return nil, err
	}
	return foldElements(elements)
}

// Evaluate lexes, parses and analyses src in one step.
func Evaluate(src string) (float64, error) {
	v, err := parser.ParseString(src, symbols.Default())
	if err != nil {
		return 0, err
	}
	if v == nil {
		return 0, ErrNoExpression
	}
	expr, err := Analyse(v)
	if err != nil {
		return 0, err
	}
	return expr.Eval(), nil
}

func flatten(phrases []tree.Phrase) ([]tree.Node, error) {
	if len(phrases) > 1 {
		return nil, ErrMultiplePhrases
	}
	if len(phrases) == 0 {
		return nil, nil
	}
	return phrases[0].Nodes, nil
}

func flattenList(verses []tree.Verse) ([]tree.Node, error) {
	if len(verses) > 1 {
		return nil, ErrMultipleVerses
	}
	if len(verses) == 0 {
		return nil, nil
	}
	return flatten(verses[0].Phrases)
}

func processNodes(nodes []tree.Node) ([]element, error) {
	elements := make([]element, 0, len(nodes))
	for _, n := range nodes {
		switch n := n.(type) {
		case *tree.Raw:
			el, err := processToken(n)
			if err != nil {
				return nil, err
			}
			elements = append(elements, el)
		case *tree.List:
			inner, err := flattenList(n.Verses)
			if err != nil {
				return nil, err
			}
			innerElements, err := processNodes(inner)
			if err != nil {
				return nil, err
			}
			folded, err := foldElements(innerElements)
			if err != nil {
				return nil, err
			}
			elements = append(elements, element{expr: folded, meta: n.Meta})
		default:
			return nil, &UnexpectedNodeError{At: n.Span()}
		}
	}
	return elements, nil
}

func processToken(n *tree.Raw) (element, error) {
	switch n.Token.Kind {
	case token.KindInteger:
		if n.Token.Int > math.MaxInt64 {
			return element{}, &InvalidIntegerError{Value: n.Token.Int, At: n.Meta}
		}
		return element{expr: Integer(n.Token.Int), meta: n.Meta}, nil
	case token.KindDecimal:
		return element{expr: Float(n.Token.Dec.Float64()), meta: n.Meta}, nil
	case token.KindSymbol:
		switch n.Token.Sym {
		case '+', '-', '*', '/':
			return element{op: n.Token.Sym, meta: n.Meta}, nil
		}
		return element{}, &UnexpectedSymbolError{Symbol: n.Token.Sym, At: n.Meta}
	}
	return element{}, &UnexpectedNodeError{At: n.Meta}
}

// foldElements reduces a flat operand/operator sequence by precedence:
// prefix minus binds tightest, then division, multiplication, subtraction
// and addition.
func foldElements(elements []element) (Expression, error) {
	elements, err := foldPrefix(elements, '-', func(rhs Expression) Expression {
		return Sub{L: Integer(0), R: rhs}
	})
	if err != nil {
		return nil, err
	}
	for _, pass := range []struct {
		op      byte
		combine func(lhs, rhs Expression) Expression
	}{
		{'/', func(lhs, rhs Expression) Expression { return Div{L: lhs, R: rhs} }},
		{'*', func(lhs, rhs Expression) Expression { return Mult{L: lhs, R: rhs} }},
		{'-', func(lhs, rhs Expression) Expression { return Sub{L: lhs, R: rhs} }},
		{'+', func(lhs, rhs Expression) Expression { return Add{L: lhs, R: rhs} }},
	} {
		elements, err = foldInfix(elements, pass.op, pass.combine)
		if err != nil {
			return nil, err
		}
	}

	switch len(elements) {
	case 0:
		return nil, ErrNoExpression
	case 1:
		if elements[0].expr == nil {
			return nil, &StrayOperatorError{Symbol: elements[0].op, At: elements[0].meta}
		}
		return elements[0].expr, nil
	default:
		stray := elements[0]
		if stray.expr != nil {
			stray = elements[1]
		}
		return nil, &StrayOperatorError{Symbol: stray.op, At: stray.meta}
	}
}

func foldPrefix(elements []element, op byte, combine func(Expression) Expression) ([]element, error) {
	refined := make([]element, 0, len(elements))
	for _, el := range elements {
		if el.expr == nil {
			refined = append(refined, el)
			continue
		}
		if len(refined) == 0 {
			refined = append(refined, el)
			continue
		}
		last := refined[len(refined)-1]
		refined = refined[:len(refined)-1]
		if last.expr != nil {
			return nil, &StrayExpressionError{At: el.meta}
		}
		if last.op != op {
			refined = append(refined, last, el)
			continue
		}
		// operator is a prefix only when nothing, or another operator,
		// precedes it
		if len(refined) > 0 && refined[len(refined)-1].expr != nil {
			refined = append(refined, last, el)
			continue
		}
		refined = append(refined, element{expr: combine(el.expr), meta: el.meta})
	}
	return refined, nil
}

func foldInfix(elements []element, op byte, combine func(lhs, rhs Expression) Expression) ([]element, error) {
	refined := make([]element, 0, len(elements))
	for _, el := range elements {
		if el.expr == nil {
			if len(refined) == 0 || refined[len(refined)-1].expr == nil {
				return nil, &StrayOperatorError{Symbol: el.op, At: el.meta}
			}
			refined = append(refined, el)
			continue
		}
		if len(refined) == 0 {
			refined = append(refined, el)
			continue
		}
		last := refined[len(refined)-1]
		if last.expr != nil {
			return nil, &StrayExpressionError{At: el.meta}
		}
		if last.op != op {
			refined = append(refined, el)
			continue
		}
		lhs := refined[len(refined)-2]
		refined = refined[:len(refined)-2]
		refined = append(refined, element{
			expr: combine(lhs.expr, el.expr),
			meta: token.Span{Start: lhs.meta.Start, End: el.meta.End},
		})
	}
	return refined, nil
}
