package commands

import (
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(addCmd)
}

var addCmd = &cobra.Command{
	Use:     "add [projectDirectory]",
	Aliases: []string{"save"},
	Short:   "Save current directory as a project",
	Long: `Save a directory as a project. Defaults to the current directory.

You are asked for a project name, pre-filled with the directory name.
Names must be unique.`,
	Example: `  # Save the current directory
  pm add

  # Save another directory
  pm save ~/src/api

  See Also: pm remove, pm list`,
	Args: cobra.MaximumNArgs(1),
	RunE: runAdd,
}

func runAdd(cmd *cobra.Command, args []string) error {
	a, err := newApp(cmd)
	if err != nil {
		return err
	}
	return a.Add(cmd.Context(), optionalArg(args))
}
