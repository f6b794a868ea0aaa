// Package parser builds Verse/Phrase/Node trees from a stream of lexer
// fragments. Newlines close phrases, commas close verses inside lists, and
// the ':' symbol binds the preceding node to a tail phrase as a relation.
package parser

import (
	"errors"
	"fmt"

	"github.com/crilang/cri/pkg/lexer"
	"github.com/crilang/cri/pkg/symbols"
	"github.com/crilang/cri/pkg/token"
	"github.com/crilang/cri/pkg/tree"
)

var (
	ErrUnterminatedList     = errors.New("unterminated list")
	ErrUnterminatedRelation = errors.New("unterminated relation")
	ErrUnterminatedPhrase   = errors.New("unterminated phrase")
	ErrEmptyVerse           = errors.New("empty verse")
	ErrEmptyRelationSegment = errors.New("empty relation segment")
)

// UnexpectedTokenError reports a token that cannot appear where it did, such
// as a closing delimiter that matches no opening one.
type UnexpectedTokenError struct {
	Token token.Token
	At    token.Span
}

func (e *UnexpectedTokenError) Error() string {
	return fmt.Sprintf("unexpected token %s", e.Token)
}

// FragmentSource supplies fragments one at a time; *lexer.Lexer satisfies it.
type FragmentSource interface {
	Scan() bool
	Fragment() lexer.Fragment
	Err() error
}

// ParseString lexes and parses src in one step.
func ParseString(src string, table *symbols.Table) (*tree.Verse, error) {
	return Parse(lexer.New(src, table))
}

// Parse consumes the whole fragment source and returns the document verse,
// or nil for empty input.
func Parse(src FragmentSource) (*tree.Verse, error) {
	fr := &stream{src: src}
	var verse []tree.Phrase
	var phrase []tree.Node
	for {
		f, ok, err := fr.next()
		if err != nil {
			return nil, err
		}
		if !ok {
			break
		}
		switch f.Token.Kind {
		case token.KindNewline:
			if len(phrase) > 0 {
				verse = append(verse, closePhrase(&phrase))
			}
		case token.KindLeft:
			child, err := parseList(f.Span.Start, f.Token.Delim, fr)
			if err != nil {
				return nil, err
			}
			phrase = append(phrase, child)
		case token.KindRight:
			return nil, &UnexpectedTokenError{Token: f.Token, At: f.Span}
		case token.KindSymbol:
			switch f.Token.Sym {
			case ':':
				head, err := relationHead(&phrase)
				if err != nil {
					return nil, err
				}
				child, err := parseRelation(head, fr)
				if err != nil {
					return nil, err
				}
				phrase = append(phrase, child)
			case ',':
				return nil, &UnexpectedTokenError{Token: f.Token, At: f.Span}
			default:
				phrase = append(phrase, &tree.Raw{Token: f.Token, Meta: f.Span})
			}
		default:
			phrase = append(phrase, &tree.Raw{Token: f.Token, Meta: f.Span})
		}
	}
	if len(phrase) > 0 {
		return nil, ErrUnterminatedPhrase
	}
	if len(verse) == 0 {
		return nil, nil
	}
	return &tree.Verse{Phrases: verse}, nil
}

// closePhrase moves the accumulated nodes into a phrase spanning the first
// node through the last.
func closePhrase(nodes *[]tree.Node) tree.Phrase {
	ns := *nodes
	*nodes = nil
	meta := token.Span{
		Start: ns[0].Span().Start,
		End:   ns[len(ns)-1].Span().End,
	}
	return tree.NewPhrase(ns, meta)
}

func parseList(start token.Location, left token.Delim, fr *stream) (tree.Node, error) {
	var verses []tree.Verse
	var verse []tree.Phrase
	var phrase []tree.Node
	for {
		f, ok, err := fr.next()
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, ErrUnterminatedList
		}
		switch f.Token.Kind {
		case token.KindNewline:
			if len(phrase) > 0 {
				verse = append(verse, closePhrase(&phrase))
			}
		case token.KindLeft:
			child, err := parseList(f.Span.Start, f.Token.Delim, fr)
			if err != nil {
				return nil, err
			}
			phrase = append(phrase, child)
		case token.KindRight:
			if f.Token.Delim != left {
				return nil, &UnexpectedTokenError{Token: f.Token, At: f.Span}
			}
			if len(phrase) > 0 {
				verse = append(verse, closePhrase(&phrase))
			}
			if len(verse) > 0 {
				verses = append(verses, tree.Verse{Phrases: verse})
			}
			meta := token.Span{Start: start, End: f.Span.End}
			return &tree.List{Verses: verses, Meta: meta}, nil
		case token.KindSymbol:
			switch f.Token.Sym {
			case ',':
				if len(phrase) > 0 {
					verse = append(verse, closePhrase(&phrase))
				}
				if len(verse) == 0 {
					return nil, ErrEmptyVerse
				}
				verses = append(verses, tree.Verse{Phrases: verse})
				verse = nil
			case ':':
				head, err := relationHead(&phrase)
				if err != nil {
					return nil, err
				}
				child, err := parseRelation(head, fr)
				if err != nil {
					return nil, err
				}
				phrase = append(phrase, child)
			default:
				phrase = append(phrase, &tree.Raw{Token: f.Token, Meta: f.Span})
			}
		default:
			phrase = append(phrase, &tree.Raw{Token: f.Token, Meta: f.Span})
		}
	}
}

// relationHead takes the node preceding a ':' as the relation head.
func relationHead(nodes *[]tree.Node) (tree.Node, error) {
	ns := *nodes
	if len(ns) == 0 {
		return nil, ErrEmptyRelationSegment
	}
	head := ns[len(ns)-1]
	*nodes = ns[:len(ns)-1]
	return head, nil
}

func parseRelation(head tree.Node, fr *stream) (tree.Node, error) {
	var tail []tree.Node
	for {
		f, ok, err := fr.next()
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, ErrUnterminatedRelation
		}
		switch f.Token.Kind {
		case token.KindLeft:
			child, err := parseList(f.Span.Start, f.Token.Delim, fr)
			if err != nil {
				return nil, err
			}
			tail = append(tail, child)
		case token.KindRight, token.KindNewline:
			fr.stash(f)
			return closeRelation(head, tail)
		case token.KindSymbol:
			switch f.Token.Sym {
			case ',':
				fr.stash(f)
				return closeRelation(head, tail)
			case ':':
				// a:b:c nests on the head side
				wrapped, err := closeRelation(head, tail)
				if err != nil {
					return nil, err
				}
				return parseRelation(wrapped, fr)
			default:
				tail = append(tail, &tree.Raw{Token: f.Token, Meta: f.Span})
			}
		default:
			tail = append(tail, &tree.Raw{Token: f.Token, Meta: f.Span})
		}
	}
}

func closeRelation(head tree.Node, tail []tree.Node) (tree.Node, error) {
	if len(tail) == 0 {
		return nil, ErrEmptyRelationSegment
	}
	tailMeta := token.Span{
		Start: tail[0].Span().Start,
		End:   tail[len(tail)-1].Span().End,
	}
	meta := token.Span{Start: head.Span().Start, End: tailMeta.End}
	return &tree.Relation{
		Head: head,
		Tail: tree.NewPhrase(tail, tailMeta),
		Meta: meta,
	}, nil
}
