package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/thoreinstein/pm/cmd"
)

func init() {
	rootCmd.AddCommand(versionCmd)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version information",
	Long:  `Print the version, commit, and build date of pm.`,
	Args:  cobra.NoArgs,
	Run: func(c *cobra.Command, _ []string) {
		w := c.OutOrStdout()
		info := cmd.Info()
		fmt.Fprintf(w, "pm version %s\n", info.Version)
		fmt.Fprintf(w, "  commit: %s\n", info.Commit)
		fmt.Fprintf(w, "  built:  %s\n", info.Date)
	},
}
