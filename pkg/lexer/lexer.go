// Package lexer scans CRI notation into a stream of located tokens. The
// scanner is grapheme-driven: columns count graphemes, not bytes, and a
// synthetic trailing newline guarantees every token is terminated.
package lexer

import (
	"errors"
	"strconv"
	"unicode/utf8"

	"github.com/crilang/cri/pkg/symbols"
	"github.com/crilang/cri/pkg/token"
)

// Fragment pairs a token with the source span it was scanned from.
type Fragment struct {
	Token token.Token
	Span  token.Span
}

type mode uint8

const (
	modeWhitespace mode = iota
	modeDot
	modeText
	modeChar
	modeEscape
	modeEscapeHex
	modeEscapeU
	modeEscapeUVar
	modeInteger
	modeDecimal
	modeIdent
	modeSymbolRun
)

// Lexer scans a source string fragment by fragment, in the manner of
// bufio.Scanner. The first error stops the scan for good.
type Lexer struct {
	src     string
	table   *symbols.Table
	stream  *newlineStream
	pending []Fragment
	frag    Fragment
	err     error
	done    bool

	mode    mode
	retMode mode // body mode an escape substitution returns to
	pos     token.Location
	start   token.Location
	buf     charBuffer
	whole   uint64

	escDigits []byte
	escN      int
	escWant   int

	runBuf   []byte
	runStart token.Location
}

// New returns a lexer over src resolving symbol runs against table.
func New(src string, table *symbols.Table) *Lexer {
	return &Lexer{
		src:    src,
		table:  table,
		stream: newNewlineStream(src),
		pos:    token.Location{Line: 1, Column: 0},
		buf:    charBuffer{src: src},
	}
}

// Tokenise scans all of src at once.
func Tokenise(src string, table *symbols.Table) ([]Fragment, error) {
	l := New(src, table)
	var out []Fragment
	for l.Scan() {
		out = append(out, l.Fragment())
	}
	return out, l.Err()
}

// Scan advances to the next fragment. It returns false at end of input or on
// the first error; Err tells the two apart.
func (l *Lexer) Scan() bool {
	for {
		if len(l.pending) > 0 {
			l.frag = l.pending[0]
			l.pending = l.pending[1:]
			return true
		}
		if l.err != nil || l.done {
			return false
		}
		off, g, ok := l.stream.next()
		if !ok {
			l.done = true
			continue
		}
		l.pos.Column++
		if err := l.consume(off, l.stream.width, g); err != nil {
			l.err = err
			return false
		}
	}
}

// Fragment returns the fragment produced by the last successful Scan.
func (l *Lexer) Fragment() Fragment { return l.frag }

// Err returns the error that stopped the scan, if any.
func (l *Lexer) Err() error { return l.err }

func (l *Lexer) consume(off, width int, g rune) error {
	for {
		again, err := l.step(off, width, g)
		if err != nil {
			return err
		}
		if !again {
			return nil
		}
	}
}

func (l *Lexer) emit(t token.Token, s token.Span) {
	l.pending = append(l.pending, Fragment{Token: t, Span: s})
}

func (l *Lexer) emitAt(t token.Token) {
	l.emit(t, token.Span{Start: l.pos, End: l.pos})
}

// emitEnded closes the buffered token one column before the terminator the
// scanner is about to reprocess.
func (l *Lexer) emitEnded(t token.Token) {
	end := token.Location{Line: l.pos.Line, Column: l.pos.Column - 1}
	l.emit(t, token.Span{Start: l.start, End: end})
	l.buf.clear()
	l.mode = modeWhitespace
}

func (l *Lexer) emitNewline() {
	end := token.Location{Line: l.pos.Line + 1, Column: 0}
	l.emit(token.NewNewline(), token.Span{Start: l.pos, End: end})
	l.pos.Line++
	l.pos.Column = 0
}

// step processes one grapheme in the current mode. A true result means the
// grapheme was not consumed and must be reprocessed in the new mode.
func (l *Lexer) step(off, width int, g rune) (bool, error) {
	switch l.mode {
	case modeWhitespace:
		return l.stepWhitespace(off, width, g)
	case modeDot:
		if isDigit(g) {
			l.whole = 0
			l.buf.clear()
			l.buf.push(off, width, g)
			l.mode = modeDecimal
			return false, nil
		}
		l.runBuf = append(l.runBuf[:0], '.')
		l.runStart = l.start
		l.mode = modeSymbolRun
		return true, nil
	case modeText:
		switch g {
		case '\\':
			l.buf.toCopy()
			l.retMode = modeText
			l.mode = modeEscape
		case '"':
			l.emit(token.NewText(l.buf.str()), token.Span{Start: l.start, End: l.pos})
			l.buf.clear()
			l.mode = modeWhitespace
		case '\n':
			return false, &UnterminatedLiteralError{At: l.pos}
		default:
			l.buf.push(off, width, g)
		}
		return false, nil
	case modeChar:
		switch g {
		case '\\':
			l.buf.toCopy()
			l.retMode = modeChar
			l.mode = modeEscape
		case '\'':
			if l.buf.empty() {
				return false, &EmptyCharacterError{At: l.pos}
			}
			l.emit(token.NewCharacter(firstRune(l.buf.str())), token.Span{Start: l.start, End: l.pos})
			l.buf.clear()
			l.mode = modeWhitespace
		case '\n':
			return false, &UnterminatedLiteralError{At: l.pos}
		default:
			if !l.buf.empty() {
				return false, &UnexpectedCharacterError{Char: g, At: l.pos}
			}
			l.buf.push(off, width, g)
		}
		return false, nil
	case modeEscape:
		return false, l.stepEscape(g)
	case modeEscapeHex, modeEscapeU:
		if g == '\n' {
			return false, &UnknownEscapeError{Char: '\n', At: l.pos}
		}
		if l.mode == modeEscapeU && l.escN == 0 && g == '{' {
			l.mode = modeEscapeUVar
			return false, nil
		}
		l.escDigits = utf8.AppendRune(l.escDigits, g)
		l.escN++
		if l.escN == l.escWant {
			return false, l.finishCodepoint()
		}
		return false, nil
	case modeEscapeUVar:
		switch g {
		case '\n':
			return false, &UnknownEscapeError{Char: '\n', At: l.pos}
		case '}':
			return false, l.finishCodepoint()
		default:
			l.escDigits = utf8.AppendRune(l.escDigits, g)
		}
		return false, nil
	case modeInteger:
		switch {
		case g == '_':
			l.buf.toCopy()
		case g == '.':
			raw := l.buf.str()
			whole, err := strconv.ParseUint(raw, 10, 64)
			if err != nil {
				return false, &UnparsableIntegerError{Raw: raw, Cause: numCause(err), At: l.pos}
			}
			l.whole = whole
			l.buf.clear()
			l.mode = modeDecimal
		case isTerminator(g):
			raw := l.buf.str()
			v, err := strconv.ParseUint(raw, 10, 64)
			if err != nil {
				return false, &UnparsableIntegerError{Raw: raw, Cause: numCause(err), At: l.pos}
			}
			l.emitEnded(token.NewInteger(v))
			return true, nil
		default:
			l.buf.push(off, width, g)
		}
		return false, nil
	case modeDecimal:
		switch {
		case g == '_':
			l.buf.toCopy()
		case isTerminator(g):
			raw := l.buf.str()
			frac, err := strconv.ParseUint(raw, 10, 64)
			if err != nil {
				return false, &UnparsableDecimalError{Whole: l.whole, Frac: raw, Cause: numCause(err), At: l.pos}
			}
			l.emitEnded(token.NewDecimal(l.whole, frac, uint8(l.buf.len())))
			return true, nil
		default:
			l.buf.push(off, width, g)
		}
		return false, nil
	case modeIdent:
		if isTerminator(g) {
			switch s := l.buf.str(); s {
			case "true":
				l.emitEnded(token.NewBoolean(true))
			case "false":
				l.emitEnded(token.NewBoolean(false))
			default:
				l.emitEnded(token.NewIdent(s))
			}
			return true, nil
		}
		l.buf.push(off, width, g)
		return false, nil
	case modeSymbolRun:
		if g < utf8.RuneSelf && symbols.IsSymbol(byte(g)) {
			l.runBuf = append(l.runBuf, byte(g))
			return false, nil
		}
		l.decomposeRun()
		l.mode = modeWhitespace
		return true, nil
	}
	return false, nil
}

func (l *Lexer) stepWhitespace(off, width int, g rune) (bool, error) {
	switch g {
	case '\\':
		return false, &UnexpectedCharacterError{Char: g, At: l.pos}
	case '"':
		l.start = l.pos
		l.buf.clear()
		l.mode = modeText
	case '\'':
		l.start = l.pos
		l.buf.clear()
		l.mode = modeChar
	case '\t', '\r', ' ':
	case '\n':
		l.emitNewline()
	case '(':
		l.emitAt(token.NewLeft(token.Paren))
	case ')':
		l.emitAt(token.NewRight(token.Paren))
	case '{':
		l.emitAt(token.NewLeft(token.Brace))
	case '}':
		l.emitAt(token.NewRight(token.Brace))
	case '[':
		l.emitAt(token.NewLeft(token.Bracket))
	case ']':
		l.emitAt(token.NewRight(token.Bracket))
	case '.':
		l.start = l.pos
		l.mode = modeDot
	default:
		switch {
		case isDigit(g):
			l.start = l.pos
			l.buf.clear()
			l.buf.push(off, width, g)
			l.mode = modeInteger
		case g < utf8.RuneSelf && symbols.IsSymbol(byte(g)):
			l.start = l.pos
			l.runBuf = append(l.runBuf[:0], byte(g))
			l.runStart = l.pos
			l.mode = modeSymbolRun
		default:
			l.start = l.pos
			l.buf.clear()
			l.buf.push(off, width, g)
			l.mode = modeIdent
		}
	}
	return false, nil
}

func (l *Lexer) stepEscape(g rune) error {
	switch g {
	case '\\', '"', '\'':
		l.buf.pushRune(g)
	case 'n':
		l.buf.pushRune('\n')
	case 'r':
		l.buf.pushRune('\r')
	case 't':
		l.buf.pushRune('\t')
	case '0':
		l.buf.pushRune(0)
	case 'x':
		l.escDigits = l.escDigits[:0]
		l.escN = 0
		l.escWant = 2
		l.mode = modeEscapeHex
		return nil
	case 'u':
		l.escDigits = l.escDigits[:0]
		l.escN = 0
		l.escWant = 4
		l.mode = modeEscapeU
		return nil
	default:
		return &UnknownEscapeError{Char: g, At: l.pos}
	}
	l.mode = l.retMode
	return nil
}

// finishCodepoint resolves a collected \x or \u digit group at the current
// position (the last digit or the closing brace).
func (l *Lexer) finishCodepoint() error {
	digits := string(l.escDigits)
	v, err := strconv.ParseUint(digits, 16, 32)
	if err != nil {
		return &InvalidCodepointError{Digits: digits, Cause: numCause(err), At: l.pos}
	}
	if v > utf8.MaxRune || !utf8.ValidRune(rune(v)) {
		return &InvalidCodepointError{Digits: digits, Cause: causeOutOfRange, At: l.pos}
	}
	l.buf.pushRune(rune(v))
	l.mode = l.retMode
	return nil
}

// decomposeRun splits a maximal run of symbol bytes greedily against the
// table: longest extended symbol first, leftover bytes as single symbols.
func (l *Lexer) decomposeRun() {
	run := string(l.runBuf)
	line := l.runStart.Line
	col := l.runStart.Column
	for len(run) > 0 {
		if e, ok := l.table.Longest(run); ok {
			end := col + uint32(len(e)) - 1
			l.emit(token.NewExtendedSymbol(e), token.NewSpan(line, col, line, end))
			col += uint32(len(e))
			run = run[len(e):]
			continue
		}
		l.emit(token.NewSymbol(run[0]), token.NewSpan(line, col, line, col))
		col++
		run = run[1:]
	}
	l.runBuf = l.runBuf[:0]
}

func isDigit(g rune) bool { return g >= '0' && g <= '9' }

// isTerminator reports whether g ends a buffered integer, decimal or ident.
func isTerminator(g rune) bool {
	if g >= utf8.RuneSelf {
		return false
	}
	switch byte(g) {
	case ' ', '\t', '\r', '\n', '(', ')', '[', ']', '{', '}', '"', '\'':
		return true
	}
	return symbols.IsSymbol(byte(g))
}

func firstRune(s string) rune {
	r, _ := utf8.DecodeRuneInString(s)
	return r
}

func numCause(err error) string {
	var ne *strconv.NumError
	if errors.As(err, &ne) && errors.Is(ne.Err, strconv.ErrRange) {
		return causeTooLarge
	}
	return causeInvalidDigit
}
