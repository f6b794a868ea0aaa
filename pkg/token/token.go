// Package token defines the lexical vocabulary of the CRI notation: token
// kinds, exact decimals, and source locations shared by the lexer, parser and
// downstream analysers.
package token

import (
	"fmt"
	"strings"
)

// Kind discriminates the variants of a Token.
type Kind uint8

const (
	KindInvalid Kind = iota
	KindText
	KindCharacter
	KindInteger
	KindDecimal
	KindBoolean
	KindLeft
	KindRight
	KindSymbol
	KindExtendedSymbol
	KindIdent
	KindNewline
)

// Delim identifies a list delimiter pair.
type Delim uint8

const (
	Paren Delim = iota
	Brace
	Bracket
	Angle
)

func (d Delim) String() string {
	switch d {
	case Paren:
		return "Paren"
	case Brace:
		return "Brace"
	case Bracket:
		return "Bracket"
	case Angle:
		return "Angle"
	}
	return fmt.Sprintf("Delim(%d)", uint8(d))
}

// Token is a single lexical unit. It is a comparable value: two tokens are
// equal iff their kind and payload are equal.
type Token struct {
	Kind  Kind
	Text  string // KindText, KindIdent, KindExtendedSymbol
	Char  rune   // KindCharacter
	Int   uint64 // KindInteger
	Dec   Decimal
	Bool  bool
	Delim Delim
	Sym   byte // KindSymbol
}

// NewText returns a text literal token.
func NewText(s string) Token { return Token{Kind: KindText, Text: s} }

// NewIdent returns an identifier token.
func NewIdent(s string) Token { return Token{Kind: KindIdent, Text: s} }

// NewCharacter returns a character literal token.
func NewCharacter(r rune) Token { return Token{Kind: KindCharacter, Char: r} }

// NewInteger returns an integer literal token.
func NewInteger(v uint64) Token { return Token{Kind: KindInteger, Int: v} }

// NewDecimal returns an exact decimal literal token.
func NewDecimal(whole, frac uint64, scale uint8) Token {
	return Token{Kind: KindDecimal, Dec: Decimal{Whole: whole, Frac: frac, Scale: scale}}
}

// NewBoolean returns a boolean literal token.
func NewBoolean(v bool) Token { return Token{Kind: KindBoolean, Bool: v} }

// NewLeft returns an opening delimiter token.
func NewLeft(d Delim) Token { return Token{Kind: KindLeft, Delim: d} }

// NewRight returns a closing delimiter token.
func NewRight(d Delim) Token { return Token{Kind: KindRight, Delim: d} }

// NewSymbol returns a single-byte symbol token.
func NewSymbol(b byte) Token { return Token{Kind: KindSymbol, Sym: b} }

// NewExtendedSymbol returns a multi-byte symbol token. The run must have been
// matched against a symbol table by the lexer.
func NewExtendedSymbol(run string) Token { return Token{Kind: KindExtendedSymbol, Text: run} }

// NewNewline returns a line terminator token.
func NewNewline() Token { return Token{Kind: KindNewline} }

func (t Token) String() string {
	switch t.Kind {
	case KindText:
		return fmt.Sprintf("Text(%q)", t.Text)
	case KindCharacter:
		return fmt.Sprintf("Character(%q)", t.Char)
	case KindInteger:
		return fmt.Sprintf("Integer(%d)", t.Int)
	case KindDecimal:
		return fmt.Sprintf("Decimal(%d, %d, %d)", t.Dec.Whole, t.Dec.Frac, t.Dec.Scale)
	case KindBoolean:
		return fmt.Sprintf("Boolean(%t)", t.Bool)
	case KindLeft:
		return fmt.Sprintf("Left(%s)", t.Delim)
	case KindRight:
		return fmt.Sprintf("Right(%s)", t.Delim)
	case KindSymbol:
		return fmt.Sprintf("Symbol('%c')", t.Sym)
	case KindExtendedSymbol:
		var buf strings.Builder
		buf.WriteString("ExtendedSymbol([")
		for i := 0; i < len(t.Text); i++ {
			if i > 0 {
				buf.WriteString(", ")
			}
			fmt.Fprintf(&buf, "'%c'", t.Text[i])
		}
		buf.WriteString("])")
		return buf.String()
	case KindIdent:
		return fmt.Sprintf("Ident(%q)", t.Text)
	case KindNewline:
		return "Newline"
	}
	return "Invalid"
}
