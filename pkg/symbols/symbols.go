// Package symbols classifies the ASCII symbol bytes of the CRI notation and
// holds the extended-symbol table the lexer decomposes symbol runs against.
package symbols

import (
	"fmt"
	"sort"
)

// set lists every byte the notation treats as a symbol. Delimiters and quotes
// are deliberately absent.
const set = "!#$%&*+,-./:;<=>?@^`|~"

var symbolBytes [256]bool

func init() {
	for i := 0; i < len(set); i++ {
		symbolBytes[set[i]] = true
	}
}

// IsSymbol reports whether b is a symbol byte.
func IsSymbol(b byte) bool {
	return symbolBytes[b]
}

// Table is a validated, sorted set of extended symbols. Every entry is at
// least two symbol bytes long, and every entry longer than two bytes has its
// prefix (the entry minus its final byte) in the table, so the lexer can
// extend matches one byte at a time.
type Table struct {
	entries []string
	maxLen  int
}

// New builds a table from the given extended symbols.
func New(entries ...string) (*Table, error) {
	sorted := make([]string, len(entries))
	copy(sorted, entries)
	sort.Strings(sorted)

	t := &Table{entries: sorted}
	for i, e := range sorted {
		if len(e) < 2 {
			return nil, fmt.Errorf("extended symbol %q is too short", e)
		}
		for j := 0; j < len(e); j++ {
			if !IsSymbol(e[j]) {
				return nil, fmt.Errorf("extended symbol %q has a non-symbol byte at offset %d", e, j)
			}
		}
		if i > 0 && sorted[i-1] == e {
			return nil, fmt.Errorf("duplicate extended symbol %q", e)
		}
		if len(e) > 2 && !t.contains(e[:len(e)-1]) {
			return nil, fmt.Errorf("extended symbol %q lacks its prefix %q", e, e[:len(e)-1])
		}
		if len(e) > t.maxLen {
			t.maxLen = len(e)
		}
	}
	return t, nil
}

// MustNew is New for tables known valid at compile time.
func MustNew(entries ...string) *Table {
	t, err := New(entries...)
	if err != nil {
		panic(err)
	}
	return t
}

// Default returns the notation's built-in extended symbols.
func Default() *Table {
	return MustNew("::", "--", "-=", "++", "+=")
}

func (t *Table) contains(s string) bool {
	i := sort.SearchStrings(t.entries, s)
	return i < len(t.entries) && t.entries[i] == s
}

// Longest returns the longest table entry that is a prefix of run.
func (t *Table) Longest(run string) (string, bool) {
	n := t.maxLen
	if len(run) < n {
		n = len(run)
	}
	for ; n >= 2; n-- {
		if t.contains(run[:n]) {
			return run[:n], true
		}
	}
	return "", false
}

// Entries returns the table contents in sorted order.
func (t *Table) Entries() []string {
	out := make([]string, len(t.entries))
	copy(out, t.entries)
	return out
}
