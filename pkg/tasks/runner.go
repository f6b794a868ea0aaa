package tasks

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"

	"github.com/crilang/cri/pkg/console"
	"github.com/crilang/cri/pkg/logger"
)

var runnerLog = logger.New("tasks:runner")

// ExitError carries the unchanged exit code of a failed step so callers can
// propagate it as the process exit code.
type ExitError struct {
	Code int
	Step string
}

func (e *ExitError) Error() string {
	return fmt.Sprintf("step %q exited with code %d", e.Step, e.Code)
}

// Runner executes recipes from a manifest. Steps run one external process at
// a time with no retry or recovery.
type Runner struct {
	Manifest *Manifest

	// Stdout and Stderr receive step output; defaults are the process
	// streams.
	Stdout io.Writer
	Stderr io.Writer

	// LookPath is swappable for tests.
	LookPath func(string) (string, error)
}

// NewRunner returns a runner wired to the process's standard streams.
func NewRunner(m *Manifest) *Runner {
	return &Runner{
		Manifest: m,
		Stdout:   os.Stdout,
		Stderr:   os.Stderr,
		LookPath: exec.LookPath,
	}
}

// Run executes the named recipe. An empty name selects the manifest's
// default recipe. Recipes without steps list the available recipes instead
// of executing anything.
func (r *Runner) Run(ctx context.Context, name string) error {
	if name == "" {
		name = r.Manifest.Default
	}
	if name == "" {
		return r.List(r.Stdout)
	}
	recipe := r.Manifest.Recipe(name)
	if recipe == nil {
		return fmt.Errorf("recipe %q not found", name)
	}
	if len(recipe.Steps) == 0 {
		return r.List(r.Stdout)
	}

	runnerLog.Printf("running recipe %s (%d steps)", recipe.Name, len(recipe.Steps))
	for _, step := range recipe.Steps {
		if err := r.runStep(ctx, step); err != nil {
			return err
		}
	}
	return nil
}

func (r *Runner) runStep(ctx context.Context, step Step) error {
	if step.Ensure != nil {
		if _, err := r.LookPath(step.Ensure.Binary); err != nil {
			fmt.Fprint(r.Stderr, console.FormatInfoMessage(
				fmt.Sprintf("%s not found, installing", step.Ensure.Binary)))
			if err := r.runCommand(ctx, step.Ensure.Install); err != nil {
				return err
			}
		}
	}
	return r.runCommand(ctx, step.Run)
}

func (r *Runner) runCommand(ctx context.Context, command string) error {
	fmt.Fprint(r.Stderr, console.FormatCommandMessage(command))

	cmd := exec.CommandContext(ctx, "sh", "-c", command)
	cmd.Stdin = os.Stdin
	cmd.Stdout = r.Stdout
	cmd.Stderr = r.Stderr
	err := cmd.Run()
	if err == nil {
		return nil
	}
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		runnerLog.Printf("command failed with code %d: %s", exitErr.ExitCode(), command)
		return &ExitError{Code: exitErr.ExitCode(), Step: command}
	}
	return fmt.Errorf("failed to start %q: %w", command, err)
}

// List writes the available recipes in manifest order.
func (r *Runner) List(w io.Writer) error {
	sections := []string{console.LayoutTitleBox("Available Recipes", 60), ""}
	for _, recipe := range r.Manifest.Recipes {
		sections = append(sections, console.LayoutInfoSection(recipe.Name, recipe.Description))
	}
	_, err := fmt.Fprintln(w, console.LayoutJoinVertical(sections...))
	return err
}
