//go:build !integration

package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/crilang/cri/pkg/console"
	"github.com/crilang/cri/pkg/lexer"
	"github.com/crilang/cri/pkg/parser"
	"github.com/crilang/cri/pkg/symbols"
	"github.com/crilang/cri/pkg/token"
)

func TestDiagnoseLexerError(t *testing.T) {
	src := "alpha\nbeta\ngamma"
	err := &lexer.UnterminatedLiteralError{At: token.Location{Line: 2, Column: 3}}

	d := diagnose("notes.cri", src, err)

	assert.Equal(t, console.ErrorPosition{File: "notes.cri", Line: 2, Column: 3}, d.Position)
	assert.Equal(t, "error", d.Type)
	assert.Equal(t, "unterminated literal at line 2, column 3", d.Message)
	assert.Equal(t, []string{"alpha", "beta", "gamma"}, d.Context)
}

func TestDiagnoseUnexpectedToken(t *testing.T) {
	src := "alpha)\nbeta"
	err := &parser.UnexpectedTokenError{
		Token: token.NewRight(token.Paren),
		At:    token.NewSpan(1, 6, 1, 6),
	}

	d := diagnose("notes.cri", src, err)

	assert.Equal(t, console.ErrorPosition{File: "notes.cri", Line: 1, Column: 6}, d.Position)
	assert.Equal(t, []string{"alpha)", "beta"}, d.Context)
}

func TestDiagnoseUnlocatedErrorPointsAtLastLine(t *testing.T) {
	src := "one\n(two"
	_, err := parser.ParseString(src, symbols.Default())
	require.ErrorIs(t, err, parser.ErrUnterminatedList)

	d := diagnose("notes.cri", src, err)

	assert.Equal(t, 2, d.Position.Line)
	assert.Equal(t, 1, d.Position.Column)
	assert.Equal(t, "unterminated list", d.Message)
	assert.Equal(t, []string{"one", "(two"}, d.Context)
}

func TestDiagnoseRealLexerError(t *testing.T) {
	src := "count: 12a4\n"
	_, err := parser.ParseString(src, symbols.Default())
	require.Error(t, err)

	d := diagnose("notes.cri", src, err)

	assert.Equal(t, 1, d.Position.Line)
	assert.Contains(t, d.Message, "unparsable integer")
}
