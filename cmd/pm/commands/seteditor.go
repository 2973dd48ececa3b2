package commands

import (
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(setEditorCmd)
}

var setEditorCmd = &cobra.Command{
	Use:   "seteditor [commandToOpen]",
	Short: "Set text editor to use",
	Long: `Set the command used to open one project.

Pick the project from a list. Without a command argument you are asked
for one. The command may include arguments ("code -n"). Use "default" to
go back to the global commandToOpen.`,
	Example: `  # Pick a project and type the command
  pm seteditor

  # Open a project with Sublime Text
  pm seteditor subl

  # Back to the global command
  pm seteditor default

  See Also: pm open, pm edit`,
	Args: cobra.MaximumNArgs(1),
	RunE: runSetEditor,
}

func runSetEditor(cmd *cobra.Command, args []string) error {
	a, err := newApp(cmd)
	if err != nil {
		return err
	}
	return a.SetEditor(cmd.Context(), optionalArg(args))
}
