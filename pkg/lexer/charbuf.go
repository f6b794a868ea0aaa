package lexer

import "strings"

// charBuffer accumulates the graphemes of the token being scanned. While the
// graphemes are contiguous in the source it stays a window over the source
// string and str() allocates nothing; the first escape substitution or
// skipped separator switches it to copy mode.
type charBuffer struct {
	src        string
	start, end int
	copied     strings.Builder
	copyMode   bool
	count      int
}

// push appends the grapheme at [off, off+width) in the source.
func (b *charBuffer) push(off, width int, g rune) {
	if b.copyMode {
		b.copied.WriteRune(g)
	} else {
		if b.count == 0 {
			b.start = off
		}
		b.end = off + width
	}
	b.count++
}

// pushRune appends a grapheme that is not present in the source, such as the
// replacement produced by an escape sequence. Forces copy mode.
func (b *charBuffer) pushRune(g rune) {
	b.toCopy()
	b.copied.WriteRune(g)
	b.count++
}

// toCopy switches to copy mode, preserving the window contents. Used when a
// source grapheme must be skipped rather than substituted.
func (b *charBuffer) toCopy() {
	if b.copyMode {
		return
	}
	if b.count > 0 {
		b.copied.WriteString(b.src[b.start:b.end])
	}
	b.copyMode = true
}

func (b *charBuffer) str() string {
	if b.copyMode {
		return b.copied.String()
	}
	if b.count == 0 {
		return ""
	}
	return b.src[b.start:b.end]
}

// len returns the number of graphemes pushed since the last clear.
func (b *charBuffer) len() int { return b.count }

func (b *charBuffer) empty() bool { return b.count == 0 }

func (b *charBuffer) clear() {
	b.copied.Reset()
	b.copyMode = false
	b.count = 0
	b.start = 0
	b.end = 0
}
