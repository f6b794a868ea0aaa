//go:build !integration

package symbols

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsSymbol(t *testing.T) {
	for _, b := range []byte("!#$%&*+,-./:;<=>?@^`|~") {
		assert.True(t, IsSymbol(b), "expected %q to be a symbol", b)
	}
	for _, b := range []byte("ab09 \t\n\"'()[]{}_\\") {
		assert.False(t, IsSymbol(b), "expected %q not to be a symbol", b)
	}
}

func TestNewValidation(t *testing.T) {
	tests := []struct {
		name    string
		entries []string
		wantErr string
	}{
		{name: "valid default", entries: []string{"::", "--", "-=", "++", "+="}},
		{name: "valid with prefix chain", entries: []string{"::", "::="}},
		{name: "empty table", entries: nil},
		{name: "too short", entries: []string{":"}, wantErr: `extended symbol ":" is too short`},
		{name: "non-symbol byte", entries: []string{":a"}, wantErr: `extended symbol ":a" has a non-symbol byte at offset 1`},
		{name: "duplicate", entries: []string{"::", "::"}, wantErr: `duplicate extended symbol "::"`},
		{name: "missing prefix", entries: []string{"::="}, wantErr: `extended symbol "::=" lacks its prefix "::"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tab, err := New(tt.entries...)
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Equal(t, tt.wantErr, err.Error())
				return
			}
			require.NoError(t, err)
			assert.NotNil(t, tab)
		})
	}
}

func TestLongest(t *testing.T) {
	tab := MustNew("::", "::=", "--", "-=", "++", "+=")

	tests := []struct {
		run  string
		want string
		ok   bool
	}{
		{run: "::=+", want: "::=", ok: true},
		{run: "::", want: "::", ok: true},
		{run: ":;", want: "", ok: false},
		{run: "--x", want: "--", ok: true},
		{run: ",", want: "", ok: false},
		{run: "", want: "", ok: false},
	}

	for _, tt := range tests {
		t.Run(tt.run, func(t *testing.T) {
			got, ok := tab.Longest(tt.run)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDefault(t *testing.T) {
	assert.Equal(t, []string{"++", "+=", "--", "-=", "::"}, Default().Entries())
}
