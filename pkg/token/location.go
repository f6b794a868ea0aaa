package token

import "fmt"

// Location is a 1-based source position. Columns count graphemes, not bytes.
type Location struct {
	Line   uint32
	Column uint32
}

func (l Location) String() string {
	return fmt.Sprintf("line %d, column %d", l.Line, l.Column)
}

// Span covers a source range from the first grapheme of a construct through
// its last grapheme, inclusive on both ends.
type Span struct {
	Start Location
	End   Location
}

// NewSpan builds a span from explicit coordinates.
func NewSpan(startLine, startCol, endLine, endCol uint32) Span {
	return Span{
		Start: Location{Line: startLine, Column: startCol},
		End:   Location{Line: endLine, Column: endCol},
	}
}

// Join returns the smallest span covering both s and other, assuming s starts
// no later than other ends.
func (s Span) Join(other Span) Span {
	return Span{Start: s.Start, End: other.End}
}

func (s Span) String() string {
	switch {
	case s == Span{}:
		return "unspecified location"
	case s.Start.Line == s.End.Line:
		return fmt.Sprintf("line %d, columns %d to %d", s.Start.Line, s.Start.Column, s.End.Column)
	default:
		return fmt.Sprintf("%s to %s", s.Start, s.End)
	}
}
