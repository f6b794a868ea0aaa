// Package testutil provides shared helpers for tests. Temporary directories
// are grouped under one per-process "test-runs" directory so leftovers from
// interrupted runs are easy to find and sweep.
package testutil

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"
)

var (
	testRunDirOnce sync.Once
	testRunDir     string
)

// GetTestRunDir returns the directory all TempDir directories for this
// process live under. It is created on first use and stays the same for the
// life of the process.
func GetTestRunDir() string {
	testRunDirOnce.Do(func() {
		base := filepath.Join(os.TempDir(), "cri-test-runs")
		run := fmt.Sprintf("run-%d-%d", time.Now().Unix(), os.Getpid())
		testRunDir = filepath.Join(base, run)
		if err := os.MkdirAll(testRunDir, 0o755); err != nil {
			// Fall back to the system temp dir rather than failing every test.
			testRunDir = os.TempDir()
		}
	})
	return testRunDir
}

// TempDir creates a temporary directory under the test run directory using
// the given MkdirTemp pattern. The directory is removed when the test ends.
func TempDir(t *testing.T, pattern string) string {
	t.Helper()
	dir, err := os.MkdirTemp(GetTestRunDir(), pattern)
	if err != nil {
		t.Fatalf("failed to create temp directory: %v", err)
	}
	t.Cleanup(func() {
		os.RemoveAll(dir)
	})
	return dir
}
