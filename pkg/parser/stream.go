package parser

import (
	"fmt"

	"github.com/crilang/cri/pkg/lexer"
)

// stream wraps a FragmentSource with a one-fragment stash so the relation
// parser can hand its terminator back to the enclosing parser.
type stream struct {
	src     FragmentSource
	stashed *lexer.Fragment
}

func (s *stream) next() (lexer.Fragment, bool, error) {
	if s.stashed != nil {
		f := *s.stashed
		s.stashed = nil
		return f, true, nil
	}
	if s.src.Scan() {
		return s.src.Fragment(), true, nil
	}
	if err := s.src.Err(); err != nil {
		return lexer.Fragment{}, false, fmt.Errorf("lexer error: %w", err)
	}
	return lexer.Fragment{}, false, nil
}

func (s *stream) stash(f lexer.Fragment) {
	s.stashed = &f
}

// fragmentSlice adapts an in-memory fragment list to FragmentSource.
type fragmentSlice struct {
	frags []lexer.Fragment
	cur   lexer.Fragment
}

// FromFragments returns a FragmentSource over frags.
func FromFragments(frags []lexer.Fragment) FragmentSource {
	return &fragmentSlice{frags: frags}
}

func (s *fragmentSlice) Scan() bool {
	if len(s.frags) == 0 {
		return false
	}
	s.cur = s.frags[0]
	s.frags = s.frags[1:]
	return true
}

func (s *fragmentSlice) Fragment() lexer.Fragment { return s.cur }

func (s *fragmentSlice) Err() error { return nil }
