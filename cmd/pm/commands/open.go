package commands

import (
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(openCmd)
}

var openCmd = &cobra.Command{
	Use:     "open [projectName]",
	Aliases: []string{"o"},
	Short:   "Open one of your saved projects",
	Long: `Open a saved project with its editor command.

Without a name, pick the project from a list. A project without its own
editor uses the global commandToOpen from the settings file.`,
	Example: `  # Pick a project to open
  pm open

  # Open a project by name
  pm o api

  See Also: pm list, pm seteditor`,
	Args: cobra.MaximumNArgs(1),
	RunE: runOpen,
}

func runOpen(cmd *cobra.Command, args []string) error {
	a, err := newApp(cmd)
	if err != nil {
		return err
	}
	return a.Open(cmd.Context(), optionalArg(args))
}
