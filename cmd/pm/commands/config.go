package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/thoreinstein/pm/internal/config"
	"github.com/thoreinstein/pm/internal/errors"
)

func init() {
	configCmd.AddCommand(configGetCmd)
	configCmd.AddCommand(configSetCmd)
	configCmd.AddCommand(configListCmd)
	rootCmd.AddCommand(configCmd)
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show or change pm preferences",
	Long: `Manage pm preferences stored in ~/.config/pm/config.yaml.

Preferences are separate from the project list in settings.json.
Without a subcommand, lists all preference values.`,
	Example: `  # List all preferences
  pm config

  # Get a specific value
  pm config get selector

  # Use the numbered list instead of the fuzzy finder
  pm config set selector list

See Also: pm edit`,
	Args: cobra.NoArgs,
	RunE: runConfigList,
}

var configGetCmd = &cobra.Command{
	Use:   "get <key>",
	Short: "Get a preference value",
	Long: `Get a single preference value by key.

Keys: version, settings_file, default_command, selector, open_also_default.`,
	Example: `  # Get the selector
  pm config get selector

See Also: pm config set, pm config list`,
	Args: cobra.ExactArgs(1),
	RunE: runConfigGet,
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set a preference value",
	Long: `Set a preference value. The value is validated before the file is
written.

  default_command    command written into a new settings file
  selector           fuzzy or list
  open_also_default  true to also run the global command after a
                     project's own editor
  settings_file      location of the settings file`,
	Example: `  # Also open with the global command
  pm config set open_also_default true

See Also: pm config get, pm config list`,
	Args: cobra.ExactArgs(2),
	RunE: runConfigSet,
}

var configListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all preferences",
	Long:  `List all preference values in YAML format.`,
	Example: `  # List all preferences
  pm config list

See Also: pm config get, pm config set`,
	Args: cobra.NoArgs,
	RunE: runConfigList,
}

func runConfigGet(cmd *cobra.Command, args []string) error {
	val, err := config.Get(args[0])
	if err != nil {
		return errors.NewUserError(err, "Run: pm config list")
	}
	fmt.Fprintln(cmd.OutOrStdout(), val)
	return nil
}

func runConfigSet(cmd *cobra.Command, args []string) error {
	key, value := args[0], args[1]

	if err := config.Set(key, value); err != nil {
		if errors.Is(err, config.ErrUnknownKey) ||
			errors.Is(err, config.ErrInvalidValue) ||
			errors.Is(err, config.ErrInvalidSelector) ||
			errors.Is(err, config.ErrUnsupportedVersion) ||
			errors.Is(err, config.ErrEmptyCommand) ||
			errors.Is(err, config.ErrReservedCommand) ||
			errors.Is(err, config.ErrInvalidPath) {
			return errors.NewUserError(err, "Run: pm config set --help")
		}
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Set %s = %s\n", key, value)
	return nil
}

func runConfigList(cmd *cobra.Command, _ []string) error {
	data, err := yaml.Marshal(config.Values())
	if err != nil {
		return errors.Wrap(err, "marshaling config")
	}

	fmt.Fprint(cmd.OutOrStdout(), string(data))
	return nil
}
