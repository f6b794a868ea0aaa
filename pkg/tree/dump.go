package tree

import (
	"fmt"
	"strings"
)

// Dump renders a verse as an indented outline, one node per line with its
// source span. The output is stable and used by golden tests.
func Dump(v *Verse) string {
	var b strings.Builder
	dumpVerse(&b, v, 0)
	return b.String()
}

func dumpVerse(b *strings.Builder, v *Verse, depth int) {
	indent(b, depth)
	fmt.Fprintf(b, "verse %s\n", v.Span())
	for i := range v.Phrases {
		dumpPhrase(b, &v.Phrases[i], depth+1)
	}
}

func dumpPhrase(b *strings.Builder, p *Phrase, depth int) {
	indent(b, depth)
	fmt.Fprintf(b, "phrase %s\n", p.Meta)
	for _, n := range p.Nodes {
		dumpNode(b, n, depth+1)
	}
}

func dumpNode(b *strings.Builder, n Node, depth int) {
	indent(b, depth)
	switch n := n.(type) {
	case *Raw:
		fmt.Fprintf(b, "%s %s\n", n.Token, n.Meta)
	case *List:
		fmt.Fprintf(b, "list %s\n", n.Meta)
		for i := range n.Verses {
			dumpVerse(b, &n.Verses[i], depth+1)
		}
	case *Relation:
		fmt.Fprintf(b, "relation %s\n", n.Meta)
		indent(b, depth+1)
		b.WriteString("head\n")
		dumpNode(b, n.Head, depth+2)
		indent(b, depth+1)
		b.WriteString("tail\n")
		dumpPhrase(b, &n.Tail, depth+2)
	default:
		fmt.Fprintf(b, "%T %s\n", n, n.Span())
	}
}

func indent(b *strings.Builder, depth int) {
	for i := 0; i < depth; i++ {
		b.WriteString("  ")
	}
}
