package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/thoreinstein/pm/internal/editor"
	"github.com/thoreinstein/pm/internal/errors"
	"github.com/thoreinstein/pm/internal/settings"
)

func init() {
	rootCmd.AddCommand(editCmd)
}

var editCmd = &cobra.Command{
	Use:   "edit",
	Short: "Edit settings.json",
	Long: `Open the settings file in your editor.

Uses $EDITOR, then $VISUAL, then nano or vi. The file is created first if
it does not exist. Comments and trailing commas are allowed.`,
	Example: `  # Edit settings
  pm edit

  # Edit with a specific editor
  EDITOR=vim pm edit

  See Also: pm list, pm config`,
	Args: cobra.NoArgs,
	RunE: runEdit,
}

func runEdit(cmd *cobra.Command, _ []string) error {
	store, err := settingsStore()
	if err != nil {
		return err
	}

	created, err := store.Bootstrap(cmd.Context())
	if err != nil {
		var cfgErr *settings.ConfigError
		if errors.As(err, &cfgErr) {
			return errors.NewConfigError(err, cfgErr.Path)
		}
		return err
	}
	if created {
		fmt.Fprintf(cmd.OutOrStdout(), "Generating new settings file at %s...\n", store.Path())
	}

	return editor.Open(cmd.Context(), cmd.OutOrStdout(), store.Path())
}
