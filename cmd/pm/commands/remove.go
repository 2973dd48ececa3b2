package commands

import (
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(removeCmd)
}

var removeCmd = &cobra.Command{
	Use:   "remove [projectName]",
	Short: "Remove the project",
	Long: `Remove a saved project. The directory itself is not touched.

Without a name, pick the project from a list.`,
	Example: `  # Pick a project to remove
  pm remove

  # Remove by name
  pm remove api

  See Also: pm add, pm list`,
	Args: cobra.MaximumNArgs(1),
	RunE: runRemove,
}

func runRemove(cmd *cobra.Command, args []string) error {
	a, err := newApp(cmd)
	if err != nil {
		return err
	}
	return a.Remove(cmd.Context(), optionalArg(args))
}
