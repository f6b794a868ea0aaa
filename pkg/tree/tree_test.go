//go:build !integration

package tree

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/crilang/cri/pkg/token"
)

func raw(t token.Token, sl, sc, el, ec uint32) *Raw {
	return &Raw{Token: t, Meta: token.NewSpan(sl, sc, el, ec)}
}

func TestNewPhrasePanicsOnEmpty(t *testing.T) {
	assert.PanicsWithValue(t, "phrase must comprise at least one node", func() {
		NewPhrase(nil, token.Span{})
	})
}

func TestVerseSpan(t *testing.T) {
	empty := Verse{}
	assert.Equal(t, token.Span{}, empty.Span())

	v := Verse{Phrases: []Phrase{
		NewPhrase([]Node{raw(token.NewInteger(1), 1, 1, 1, 1)}, token.NewSpan(1, 1, 1, 1)),
		NewPhrase([]Node{raw(token.NewInteger(2), 2, 1, 2, 3)}, token.NewSpan(2, 1, 2, 3)),
	}}
	assert.Equal(t, token.NewSpan(1, 1, 2, 3), v.Span())
}

func TestFlatten(t *testing.T) {
	a := raw(token.NewInteger(1), 1, 1, 1, 1)
	b := raw(token.NewInteger(2), 1, 3, 1, 3)
	c := raw(token.NewInteger(3), 2, 1, 2, 1)
	v := Verse{Phrases: []Phrase{
		NewPhrase([]Node{a, b}, token.NewSpan(1, 1, 1, 3)),
		NewPhrase([]Node{c}, token.NewSpan(2, 1, 2, 1)),
	}}
	assert.Equal(t, []Node{a, b, c}, v.Flatten())
}

func TestDump(t *testing.T) {
	v := &Verse{Phrases: []Phrase{
		NewPhrase([]Node{
			&Relation{
				Head: raw(token.NewIdent("k"), 1, 1, 1, 1),
				Tail: NewPhrase([]Node{raw(token.NewInteger(7), 1, 3, 1, 3)}, token.NewSpan(1, 3, 1, 3)),
				Meta: token.NewSpan(1, 1, 1, 3),
			},
		}, token.NewSpan(1, 1, 1, 3)),
	}}
	want := `verse line 1, columns 1 to 3
  phrase line 1, columns 1 to 3
    relation line 1, columns 1 to 3
      head
        Ident("k") line 1, columns 1 to 1
      tail
        phrase line 1, columns 3 to 3
          Integer(7) line 1, columns 3 to 3
`
	assert.Equal(t, want, Dump(v))
}
