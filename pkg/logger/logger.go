// Package logger provides namespaced debug logging controlled by the DEBUG
// environment variable. A logger only writes when its namespace matches one
// of the comma-separated patterns in DEBUG, so instrumentation can stay in
// place permanently and be switched on per subsystem.
//
// Patterns support a trailing wildcard ("lexer:*") and a leading '-' to
// exclude namespaces that an earlier wildcard enabled ("*,-parser:stream").
package logger

import (
	"fmt"
	"os"
	"strings"
	"sync"
	"time"
)

// Logger writes timestamped debug lines to stderr for one namespace.
type Logger struct {
	namespace string
	enabled   bool

	mu   sync.Mutex
	last time.Time
}

// New returns a logger for the given namespace. Whether it is enabled is
// decided once, from the DEBUG variable at creation time.
func New(namespace string) *Logger {
	return &Logger{
		namespace: namespace,
		enabled:   matches(namespace, os.Getenv("DEBUG")),
	}
}

// Enabled reports whether this logger writes anything.
func (l *Logger) Enabled() bool {
	return l.enabled
}

// Printf formats like fmt.Printf and writes the line with the namespace
// prefix and the time elapsed since the previous line.
func (l *Logger) Printf(format string, args ...any) {
	if !l.enabled {
		return
	}
	l.write(fmt.Sprintf(format, args...))
}

// Print concatenates its arguments like fmt.Sprint.
func (l *Logger) Print(args ...any) {
	if !l.enabled {
		return
	}
	l.write(fmt.Sprint(args...))
}

func (l *Logger) write(msg string) {
	l.mu.Lock()
	now := time.Now()
	elapsed := time.Duration(0)
	if !l.last.IsZero() {
		elapsed = now.Sub(l.last)
	}
	l.last = now
	l.mu.Unlock()
	fmt.Fprintf(os.Stderr, "%s %s +%s\n", l.namespace, msg, elapsed)
}

// matches applies every pattern in spec to the namespace. Exclusion patterns
// win over inclusions regardless of order, so "*,-lexer:scan" silences
// exactly one namespace.
func matches(namespace, spec string) bool {
	included := false
	for _, pattern := range strings.Split(spec, ",") {
		pattern = strings.TrimSpace(pattern)
		if pattern == "" {
			continue
		}
		exclude := strings.HasPrefix(pattern, "-")
		if exclude {
			pattern = pattern[1:]
		}
		if !matchPattern(pattern, namespace) {
			continue
		}
		if exclude {
			return false
		}
		included = true
	}
	return included
}

func matchPattern(pattern, namespace string) bool {
	if prefix, ok := strings.CutSuffix(pattern, "*"); ok {
		return strings.HasPrefix(namespace, prefix)
	}
	return pattern == namespace
}
