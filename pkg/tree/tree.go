// Package tree defines the parse tree of the CRI notation. A document is a
// Verse of Phrases; a Phrase is a non-empty run of Nodes scanned from one
// line segment.
package tree

import (
	"github.com/crilang/cri/pkg/token"
)

// Node is one element of a phrase: a raw token, a delimited list of verses,
// or a head:tail relation.
type Node interface {
	Span() token.Span
}

// Raw wraps a single token.
type Raw struct {
	Token token.Token
	Meta  token.Span
}

func (n *Raw) Span() token.Span { return n.Meta }

// List is a delimited sequence of verses. Its span runs from the opening
// delimiter to the closing one.
type List struct {
	Verses []Verse
	Meta   token.Span
}

func (n *List) Span() token.Span { return n.Meta }

// Relation binds a head node to a tail phrase. Chained relations nest on the
// head side: a:b:c parses as (a:b):c.
type Relation struct {
	Head Node
	Tail Phrase
	Meta token.Span
}

func (n *Relation) Span() token.Span { return n.Meta }

// Phrase is a non-empty sequence of nodes.
type Phrase struct {
	Nodes []Node
	Meta  token.Span
}

// NewPhrase panics if nodes is empty; the parser never closes an empty
// phrase.
func NewPhrase(nodes []Node, meta token.Span) Phrase {
	if len(nodes) == 0 {
		panic("phrase must comprise at least one node")
	}
	return Phrase{Nodes: nodes, Meta: meta}
}

func (p *Phrase) Span() token.Span { return p.Meta }

// Verse is a sequence of phrases. It may be empty.
type Verse struct {
	Phrases []Phrase
}

// Span covers the first phrase through the last. The zero span means the
// verse is empty.
func (v *Verse) Span() token.Span {
	if len(v.Phrases) == 0 {
		return token.Span{}
	}
	return token.Span{
		Start: v.Phrases[0].Meta.Start,
		End:   v.Phrases[len(v.Phrases)-1].Meta.End,
	}
}

// Flatten returns the nodes of all phrases in order.
func (v *Verse) Flatten() []Node {
	var nodes []Node
	for _, p := range v.Phrases {
		nodes = append(nodes, p.Nodes...)
	}
	return nodes
}
