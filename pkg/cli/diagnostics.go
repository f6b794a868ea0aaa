// Package cli implements the cri command surface: checking, tokenising and
// parsing notation files, evaluating arithmetic and running task recipes.
package cli

import (
	"errors"
	"strings"

	"github.com/crilang/cri/pkg/console"
	"github.com/crilang/cri/pkg/lexer"
	"github.com/crilang/cri/pkg/parser"
)

// diagnose converts a lex or parse failure into a positioned diagnostic with
// the surrounding source lines. Errors without a location (unterminated
// constructs detected at end of input) point at the last line.
func diagnose(path, src string, err error) console.CompilerError {
	lines := strings.Split(src, "\n")

	line, column := len(lines), 1
	var located lexer.LocatedError
	var unexpected *parser.UnexpectedTokenError
	switch {
	case errors.As(err, &located):
		at := located.Location()
		line, column = int(at.Line), int(at.Column)
	case errors.As(err, &unexpected):
		line, column = int(unexpected.At.Start.Line), int(unexpected.At.Start.Column)
	}

	var context []string
	if line >= 1 && line <= len(lines) {
		first := line - 1
		if first < 1 {
			first = 1
		}
		last := line + 1
		if last > len(lines) {
			last = len(lines)
		}
		context = lines[first-1 : last]
	}

	return console.CompilerError{
		Position: console.ErrorPosition{File: path, Line: line, Column: column},
		Type:     "error",
		Message:  err.Error(),
		Context:  context,
	}
}
