package commands

import (
	"github.com/spf13/cobra"

	"github.com/thoreinstein/pm/internal/app"
)

var listFormat string

func init() {
	listCmd.Flags().StringVarP(&listFormat, "format", "f", string(app.FormatText),
		"output format: text, json, yaml, toml")
	rootCmd.AddCommand(listCmd)
}

var listCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List saved projects",
	Long: `List saved projects in the order they were added, with the command
each one opens with.

Structured formats export the whole catalogue for scripts.`,
	Example: `  # Table of projects
  pm ls

  # Export as JSON
  pm list --format json

  See Also: pm open, pm edit`,
	Args: cobra.NoArgs,
	RunE: runList,
}

func runList(cmd *cobra.Command, _ []string) error {
	format, err := app.ParseFormat(listFormat)
	if err != nil {
		return err
	}
	a, err := newApp(cmd)
	if err != nil {
		return err
	}
	return a.List(cmd.Context(), format)
}
