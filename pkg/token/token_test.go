//go:build !integration

package token

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDecimalFloat64(t *testing.T) {
	tests := []struct {
		name string
		dec  Decimal
		want float64
	}{
		{name: "whole only", dec: Decimal{7, 0, 1}, want: 7.0},
		{name: "leading zero fraction", dec: Decimal{7, 1, 2}, want: 7.01},
		{name: "three digit fraction", dec: Decimal{7, 123, 3}, want: 7.123},
		{name: "zero whole", dec: Decimal{0, 5, 1}, want: 0.5},
		{name: "zero value", dec: Decimal{0, 0, 0}, want: 0.0},
		{name: "scale without fraction", dec: Decimal{12, 0, 3}, want: 12.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, tt.dec.Float64(), 1e-12)
		})
	}
}

func TestLocationString(t *testing.T) {
	assert.Equal(t, "line 1, column 1", Location{Line: 1, Column: 1}.String())
	assert.Equal(t, "line 3, column 14", Location{Line: 3, Column: 14}.String())
}

func TestSpanJoin(t *testing.T) {
	a := NewSpan(1, 1, 1, 4)
	b := NewSpan(1, 6, 2, 3)
	assert.Equal(t, NewSpan(1, 1, 2, 3), a.Join(b))
}

func TestTokenEquality(t *testing.T) {
	assert.Equal(t, NewInteger(42), NewInteger(42))
	assert.NotEqual(t, NewInteger(42), NewInteger(43))
	assert.Equal(t, NewSymbol(':'), NewSymbol(':'))
	assert.NotEqual(t, NewSymbol(':'), NewExtendedSymbol("::"))
	assert.Equal(t, NewDecimal(7, 1, 2), NewDecimal(7, 1, 2))
	assert.NotEqual(t, NewDecimal(7, 1, 2), NewDecimal(7, 10, 2))
	assert.Equal(t, NewLeft(Paren), NewLeft(Paren))
	assert.NotEqual(t, NewLeft(Paren), NewRight(Paren))
}

func TestTokenString(t *testing.T) {
	tests := []struct {
		tok  Token
		want string
	}{
		{NewText("hi"), `Text("hi")`},
		{NewIdent("verse"), `Ident("verse")`},
		{NewCharacter('q'), `Character('q')`},
		{NewInteger(17), "Integer(17)"},
		{NewDecimal(3, 14, 2), "Decimal(3, 14, 2)"},
		{NewBoolean(true), "Boolean(true)"},
		{NewLeft(Bracket), "Left(Bracket)"},
		{NewRight(Brace), "Right(Brace)"},
		{NewSymbol('+'), "Symbol('+')"},
		{NewExtendedSymbol("::"), "ExtendedSymbol([':', ':'])"},
		{NewNewline(), "Newline"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.tok.String())
		})
	}
}
