package lexer

import "github.com/crilang/cri/pkg/graphemes"

// newlineStream yields the graphemes of its source with a trailing '\n'
// appended when the source does not already end with one, so every token is
// terminated and every scan ends in a line break.
type newlineStream struct {
	it        *graphemes.Iterator
	width     int
	lastWasNL bool
	emitted   bool
	done      bool
}

func newNewlineStream(src string) *newlineStream {
	return &newlineStream{it: graphemes.New(src)}
}

// next returns the byte offset and value of the next grapheme. The width of
// the returned grapheme is available from width until the following call.
func (s *newlineStream) next() (int, rune, bool) {
	if s.done {
		return 0, 0, false
	}
	if off, g, ok := s.it.Next(); ok {
		s.width = s.it.Offset() - off
		s.lastWasNL = g == '\n'
		s.emitted = true
		return off, g, true
	}
	s.done = true
	if s.emitted && s.lastWasNL {
		return 0, 0, false
	}
	s.width = 1
	return s.it.Offset(), '\n', true
}
