package lexer

import (
	"fmt"

	"github.com/crilang/cri/pkg/token"
)

// Cause strings carried by numeric and codepoint errors.
const (
	causeInvalidDigit = "invalid digit found in string"
	causeTooLarge     = "number too large to fit in target type"
	causeOutOfRange   = "codepoint out of range"
)

// LocatedError is implemented by every lexer error so diagnostics can point
// at the offending grapheme.
type LocatedError interface {
	error
	Location() token.Location
}

// UnexpectedCharacterError reports a grapheme that cannot appear where it did.
type UnexpectedCharacterError struct {
	Char rune
	At   token.Location
}

func (e *UnexpectedCharacterError) Error() string {
	return fmt.Sprintf("unexpected character '%c' at %s", e.Char, e.At)
}

func (e *UnexpectedCharacterError) Location() token.Location { return e.At }

// UnterminatedLiteralError reports a text or character literal cut off by a
// line break.
type UnterminatedLiteralError struct {
	At token.Location
}

func (e *UnterminatedLiteralError) Error() string {
	return fmt.Sprintf("unterminated literal at %s", e.At)
}

func (e *UnterminatedLiteralError) Location() token.Location { return e.At }

// UnknownEscapeError reports a backslash followed by an unsupported grapheme.
type UnknownEscapeError struct {
	Char rune
	At   token.Location
}

func (e *UnknownEscapeError) Error() string {
	return fmt.Sprintf("unknown escape sequence \"%c\" at %s", e.Char, e.At)
}

func (e *UnknownEscapeError) Location() token.Location { return e.At }

// InvalidCodepointError reports \x or \u escape digits that do not name a
// valid codepoint.
type InvalidCodepointError struct {
	Digits string
	Cause  string
	At     token.Location
}

func (e *InvalidCodepointError) Error() string {
	return fmt.Sprintf("invalid codepoint %q (%s) at %s", e.Digits, e.Cause, e.At)
}

func (e *InvalidCodepointError) Location() token.Location { return e.At }

// UnparsableIntegerError reports an integer literal that does not parse.
type UnparsableIntegerError struct {
	Raw   string
	Cause string
	At    token.Location
}

func (e *UnparsableIntegerError) Error() string {
	return fmt.Sprintf("unparsable integer %s (%s) at %s", e.Raw, e.Cause, e.At)
}

func (e *UnparsableIntegerError) Location() token.Location { return e.At }

// UnparsableDecimalError reports a decimal literal whose fractional part does
// not parse.
type UnparsableDecimalError struct {
	Whole uint64
	Frac  string
	Cause string
	At    token.Location
}

func (e *UnparsableDecimalError) Error() string {
	return fmt.Sprintf("unparsable decimal %d.%s (%s) at %s", e.Whole, e.Frac, e.Cause, e.At)
}

func (e *UnparsableDecimalError) Location() token.Location { return e.At }

// EmptyCharacterError reports a character literal with no grapheme between
// the quotes.
type EmptyCharacterError struct {
	At token.Location
}

func (e *EmptyCharacterError) Error() string {
	return fmt.Sprintf("empty character literal at %s", e.At)
}

func (e *EmptyCharacterError) Location() token.Location { return e.At }
