package cli

import (
	"github.com/spf13/cobra"

	"github.com/crilang/cri/pkg/tasks"
)

// NewTaskCommand creates the task command.
func NewTaskCommand() *cobra.Command {
	var manifestPath string
	var list bool

	cmd := &cobra.Command{
		Use:   "task [recipe]",
		Short: "Run a recipe from the task manifest",
		Long: `Task runs a named recipe from the manifest: a declarative sequence of
shell steps executed strictly in order. A failing step aborts the recipe
and the step's exit code becomes the exit code of cri itself.

Without a recipe name the manifest's default recipe runs; recipes without
steps list the available recipes.

Examples:
  # List recipes
  cri task

  # Run the test recipe
  cri task test

  # Use a different manifest
  cri task bench --manifest ci-tasks.yml`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			manifest, err := tasks.LoadManifest(manifestPath)
			if err != nil {
				return err
			}
			runner := tasks.NewRunner(manifest)
			runner.Stdout = cmd.OutOrStdout()
			runner.Stderr = cmd.ErrOrStderr()

			if list {
				return runner.List(cmd.OutOrStdout())
			}
			name := ""
			if len(args) == 1 {
				name = args[0]
			}
			return runner.Run(cmd.Context(), name)
		},
	}

	cmd.Flags().StringVarP(&manifestPath, "manifest", "m", tasks.DefaultManifestFile, "path to the task manifest")
	cmd.Flags().BoolVarP(&list, "list", "l", false, "list available recipes")
	return cmd
}
