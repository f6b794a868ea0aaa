package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/sourcegraph/conc/pool"
	"github.com/spf13/cobra"

	"github.com/crilang/cri/pkg/console"
	"github.com/crilang/cri/pkg/envutil"
	"github.com/crilang/cri/pkg/logger"
	"github.com/crilang/cri/pkg/parser"
	"github.com/crilang/cri/pkg/symbols"
)

var checkLog = logger.New("cli:check")

// watchDebounce suppresses the duplicate events editors produce for one
// save.
const watchDebounce = 100 * time.Millisecond

// NewCheckCommand creates the check command.
func NewCheckCommand() *cobra.Command {
	var watch bool

	cmd := &cobra.Command{
		Use:   "check [files...]",
		Short: "Lex and parse notation files and report diagnostics",
		Long: `Check lexes and parses each file and prints compiler-style diagnostics
(file:line:column: error: message) with the surrounding source lines.

Files are checked in parallel. With --watch, the files are re-checked
every time one of them changes, until interrupted.

Examples:
  # Check a single file
  cri check notes.cri

  # Check many files at once
  cri check docs/*.cri

  # Keep checking on every save
  cri check --watch notes.cri`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if watch {
				return watchFiles(cmd.Context(), cmd.ErrOrStderr(), args)
			}
			if failed := checkFiles(cmd.ErrOrStderr(), args); failed > 0 {
				return fmt.Errorf("%d of %d files failed", failed, len(args))
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&watch, "watch", "w", false, "re-check files whenever they change")
	return cmd
}

type checkResult struct {
	path string
	src  string
	err  error
}

// checkFiles checks every path with a bounded worker pool and prints one
// line or diagnostic per file, in argument order. It returns the number of
// failed files.
func checkFiles(w io.Writer, paths []string) int {
	results := make([]checkResult, len(paths))

	workers := envutil.GetIntFromEnv("CRI_CHECK_CONCURRENCY", runtime.NumCPU(), 1, 64, checkLog)
	p := pool.New().WithMaxGoroutines(workers)
	for i, path := range paths {
		p.Go(func() {
			results[i] = checkFile(path)
		})
	}
	p.Wait()

	failed := 0
	for _, res := range results {
		switch {
		case res.err == nil:
			fmt.Fprint(w, console.FormatSuccessMessage(res.path))
		case res.src == "":
			failed++
			fmt.Fprint(w, console.FormatErrorMessage(res.err.Error()))
		default:
			failed++
			fmt.Fprint(w, console.FormatError(diagnose(res.path, res.src, res.err)))
		}
	}
	return failed
}

func checkFile(path string) checkResult {
	checkLog.Printf("checking %s", path)
	data, err := os.ReadFile(path)
	if err != nil {
		return checkResult{path: path, err: err}
	}
	src := string(data)
	_, err = parser.ParseString(src, symbols.Default())
	return checkResult{path: path, src: src, err: err}
}

// watchFiles re-checks all paths whenever one of them is written. Watches
// are placed on the parent directories so files replaced by rename (the
// common editor save strategy) stay watched.
func watchFiles(ctx context.Context, w io.Writer, paths []string) error {
	checkFiles(w, paths)

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}
	defer watcher.Close()

	watched := make(map[string]bool, len(paths))
	dirs := make(map[string]bool)
	for _, path := range paths {
		watched[filepath.Clean(path)] = true
		dirs[filepath.Dir(path)] = true
	}
	for dir := range dirs {
		if err := watcher.Add(dir); err != nil {
			return fmt.Errorf("failed to watch %s: %w", dir, err)
		}
	}
	fmt.Fprint(w, console.FormatInfoMessage("watching for changes, press Ctrl-C to stop"))

	lastRun := make(map[string]time.Time)
	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			name := filepath.Clean(event.Name)
			if !watched[name] {
				continue
			}
			if time.Since(lastRun[name]) < watchDebounce {
				continue
			}
			lastRun[name] = time.Now()
			checkLog.Printf("%s changed, re-checking", name)
			checkFiles(w, paths)
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			checkLog.Printf("watch error: %v", err)
		}
	}
}
