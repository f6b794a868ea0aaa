// Package console renders user-facing CLI output: coloured status messages,
// positioned source errors with context lines, and lipgloss-based layout
// helpers. All styling degrades to plain text when output is not a terminal.
package console

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Adaptive colours pick a readable variant for light and dark terminals.
var (
	ColorError   = lipgloss.AdaptiveColor{Light: "#d70000", Dark: "#ff5f5f"}
	ColorWarning = lipgloss.AdaptiveColor{Light: "#af8700", Dark: "#ffd787"}
	ColorSuccess = lipgloss.AdaptiveColor{Light: "#008700", Dark: "#5fd75f"}
	ColorInfo    = lipgloss.AdaptiveColor{Light: "#005fd7", Dark: "#5fafff"}
	ColorVerbose = lipgloss.AdaptiveColor{Light: "#6c6c6c", Dark: "#9e9e9e"}
	ColorPrompt  = lipgloss.AdaptiveColor{Light: "#8700af", Dark: "#d787ff"}
)

var (
	errorStyle   = lipgloss.NewStyle().Foreground(ColorError)
	warningStyle = lipgloss.NewStyle().Foreground(ColorWarning)
	successStyle = lipgloss.NewStyle().Foreground(ColorSuccess)
	infoStyle    = lipgloss.NewStyle().Foreground(ColorInfo)
	verboseStyle = lipgloss.NewStyle().Foreground(ColorVerbose)
	commandStyle = lipgloss.NewStyle().Foreground(ColorPrompt).Bold(true)
	boldStyle    = lipgloss.NewStyle().Bold(true)
	dimStyle     = lipgloss.NewStyle().Faint(true)
)

// FormatErrorMessage renders a message with the error icon.
func FormatErrorMessage(msg string) string {
	return errorStyle.Render("✗ "+msg) + "\n"
}

// FormatWarningMessage renders a message with the warning icon.
func FormatWarningMessage(msg string) string {
	return warningStyle.Render("⚠ "+msg) + "\n"
}

// FormatSuccessMessage renders a message with the success icon.
func FormatSuccessMessage(msg string) string {
	return successStyle.Render("✓ "+msg) + "\n"
}

// FormatInfoMessage renders a message with the info icon.
func FormatInfoMessage(msg string) string {
	return infoStyle.Render("ℹ "+msg) + "\n"
}

// FormatVerboseMessage renders a dimmed message for --verbose output.
func FormatVerboseMessage(msg string) string {
	return verboseStyle.Render(msg) + "\n"
}

// FormatCommandMessage renders a shell command about to be executed.
func FormatCommandMessage(cmd string) string {
	return commandStyle.Render("$ "+cmd) + "\n"
}

// FormatLocationMessage renders a filesystem location.
func FormatLocationMessage(msg string) string {
	return infoStyle.Render("📁 "+msg) + "\n"
}

// ErrorPosition identifies a source location in a file.
type ErrorPosition struct {
	File   string
	Line   int
	Column int
}

// CompilerError is a positioned diagnostic with optional source context.
// Context holds the source lines surrounding the error, starting one line
// before Position.Line.
type CompilerError struct {
	Position ErrorPosition
	Type     string // "error" or "warning"
	Message  string
	Context  []string
	Hint     string
}

// FormatError renders a compiler-style diagnostic:
//
//	file:line:column: error: message
//	  2 | source line
//	  3 | offending line
//	    |      ^
func FormatError(err CompilerError) string {
	var sb strings.Builder

	pos := fmt.Sprintf("%s:%d:%d:", ToRelativePath(err.Position.File), err.Position.Line, err.Position.Column)
	kind := err.Type + ":"
	if err.Type == "warning" {
		kind = warningStyle.Render(kind)
	} else {
		kind = errorStyle.Render(kind)
	}
	sb.WriteString(fmt.Sprintf("%s %s %s\n", boldStyle.Render(pos), kind, err.Message))

	if len(err.Context) > 0 {
		first := err.Position.Line - 1
		if first < 1 {
			first = 1
		}
		width := len(fmt.Sprintf("%d", first+len(err.Context)-1))
		for i, line := range err.Context {
			number := first + i
			sb.WriteString(dimStyle.Render(fmt.Sprintf("  %*d | ", width, number)))
			sb.WriteString(line)
			sb.WriteString("\n")
			if number == err.Position.Line && err.Position.Column > 0 {
				sb.WriteString(dimStyle.Render(fmt.Sprintf("  %*s | ", width, "")))
				sb.WriteString(errorStyle.Render(strings.Repeat(" ", err.Position.Column-1) + "^"))
				sb.WriteString("\n")
			}
		}
	}

	return sb.String()
}

// FormatErrorWithSuggestions renders an error followed by a bulleted list of
// next steps.
func FormatErrorWithSuggestions(message string, suggestions []string) string {
	var sb strings.Builder
	sb.WriteString(FormatErrorMessage(message))
	if len(suggestions) > 0 {
		sb.WriteString("\nSuggestions:\n")
		for _, s := range suggestions {
			sb.WriteString("  • " + s + "\n")
		}
	}
	return sb.String()
}

// ToRelativePath converts an absolute path to one relative to the working
// directory, which keeps diagnostics stable across machines. Relative paths
// pass through untouched.
func ToRelativePath(path string) string {
	if !filepath.IsAbs(path) {
		return path
	}
	cwd, err := os.Getwd()
	if err != nil {
		return filepath.Base(path)
	}
	rel, err := filepath.Rel(cwd, path)
	if err != nil {
		return filepath.Base(path)
	}
	return rel
}
