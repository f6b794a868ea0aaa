package console

import (
	"fmt"
	"os"

	"golang.org/x/term"
)

func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// MoveCursorUp moves the cursor up by n lines on stderr. A no-op when stderr
// is not a terminal, so piped output stays free of ANSI codes.
func MoveCursorUp(n int) {
	if n <= 0 || !isTerminal(os.Stderr) {
		return
	}
	fmt.Fprintf(os.Stderr, "\033[%dA", n)
}

// MoveCursorDown moves the cursor down by n lines on stderr.
func MoveCursorDown(n int) {
	if n <= 0 || !isTerminal(os.Stderr) {
		return
	}
	fmt.Fprintf(os.Stderr, "\033[%dB", n)
}

// ClearLine erases the current line on stderr and returns the cursor to the
// start of it.
func ClearLine() {
	if !isTerminal(os.Stderr) {
		return
	}
	fmt.Fprint(os.Stderr, "\033[2K\r")
}

// ClearScreen clears the terminal and homes the cursor on stdout.
func ClearScreen() {
	if !isTerminal(os.Stdout) {
		return
	}
	fmt.Fprint(os.Stdout, "\033[2J\033[H")
}
