//go:build !integration

package graphemes

import (
	"strings"
	"testing"
)

// prose is a paragraph of ordinary English text, the common case the byte
// class table is tuned for: almost entirely single-byte graphemes.
const prose = `To Sherlock Holmes she is always the woman. I have seldom heard
him mention her under any other name. In his eyes she eclipses and
predominates the whole of her sex. It was not that he felt any emotion akin
to love for Irene Adler. All emotions, and that one particularly, were
abhorrent to his cold, precise but admirably balanced mind. He was, I take
it, the most perfect reasoning and observing machine that the world has
seen, but as a lover he would have placed himself in a false position. He
never spoke of the softer passions, save with a gibe and a sneer.`

func BenchmarkProse(b *testing.B) {
	src := strings.Repeat(prose, 16)
	b.SetBytes(int64(len(src)))
	b.ReportAllocs()
	for b.Loop() {
		it := New(src)
		for {
			if _, _, ok := it.Next(); !ok {
				break
			}
		}
	}
}

func BenchmarkProseGenericDecoder(b *testing.B) {
	src := strings.Repeat(prose, 16)
	b.SetBytes(int64(len(src)))
	b.ReportAllocs()
	for b.Loop() {
		for range src {
		}
	}
}
