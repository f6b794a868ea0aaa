// Package graphemes iterates the graphemes of a string using a 256-entry
// first-byte class table. ASCII bytes pass through without decoding; only
// multibyte lead bytes pay for sequence assembly. Undecodable bytes
// (continuations out of position, overlong 5/6-byte forms) yield U+FFFD and
// advance a single byte so the iterator always terminates.
package graphemes

// classes maps a lead byte to its sequence length in bytes. Zero marks bytes
// that cannot start a sequence.
var classes [256]uint8

func init() {
	for b := 0x00; b <= 0x7F; b++ {
		classes[b] = 1
	}
	for b := 0xC0; b <= 0xDF; b++ {
		classes[b] = 2
	}
	for b := 0xE0; b <= 0xEF; b++ {
		classes[b] = 3
	}
	for b := 0xF0; b <= 0xF7; b++ {
		classes[b] = 4
	}
}

// Replacement is yielded for byte sequences that do not decode.
const Replacement = '�'

// Iterator walks a string one grapheme at a time, reporting the byte offset
// each grapheme starts at.
type Iterator struct {
	src string
	off int
}

// New returns an iterator positioned before the first grapheme of src.
func New(src string) *Iterator {
	return &Iterator{src: src}
}

// Next returns the byte offset and value of the next grapheme. ok is false
// once the input is exhausted.
func (it *Iterator) Next() (offset int, g rune, ok bool) {
	if it.off >= len(it.src) {
		return it.off, 0, false
	}
	offset = it.off
	b := it.src[it.off]
	n := int(classes[b])
	if n == 1 {
		it.off++
		return offset, rune(b), true
	}
	if n == 0 || it.off+n > len(it.src) {
		it.off++
		return offset, Replacement, true
	}
	g = rune(b & (0x7F >> uint(n)))
	for i := 1; i < n; i++ {
		c := it.src[it.off+i]
		if c&0xC0 != 0x80 {
			it.off++
			return offset, Replacement, true
		}
		g = g<<6 | rune(c&0x3F)
	}
	it.off += n
	return offset, g, true
}

// Offset returns the byte position the next grapheme starts at.
func (it *Iterator) Offset() int { return it.off }

// Count returns the number of graphemes in src.
func Count(src string) int {
	n := 0
	it := New(src)
	for {
		if _, _, ok := it.Next(); !ok {
			return n
		}
		n++
	}
}
