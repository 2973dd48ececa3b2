package commands

import (
	"github.com/spf13/cobra"

	"github.com/thoreinstein/pm/internal/app"
	"github.com/thoreinstein/pm/internal/cli/prompt"
	"github.com/thoreinstein/pm/internal/launch"
	"github.com/thoreinstein/pm/internal/paths"
	"github.com/thoreinstein/pm/internal/settings"
)

// launcher starts editors for pm open. Tests replace it.
var launcher app.Launcher = launch.Process{}

// settingsStore returns the store for --settings, the settings_file
// preference or the default location, in that order.
func settingsStore() (*settings.Store, error) {
	var (
		path string
		err  error
	)
	if settingsFlag != "" {
		path, err = paths.ExpandHome(settingsFlag)
	} else {
		path, err = cfg.SettingsPath()
	}
	if err != nil {
		return nil, err
	}

	var opts []settings.Option
	if cfg != nil {
		opts = append(opts, settings.WithDefaultCommand(cfg.DefaultCommand))
	}
	return settings.NewStore(path, opts...), nil
}

// newApp wires the use-cases to the command's streams.
func newApp(cmd *cobra.Command) (*app.App, error) {
	store, err := settingsStore()
	if err != nil {
		return nil, err
	}

	mode := prompt.ModeFuzzy
	alsoDefault := false
	if cfg != nil {
		if m, ok := prompt.ParseMode(cfg.Selector); ok {
			mode = m
		}
		alsoDefault = cfg.OpenAlsoDefault
	}

	p := prompt.New(mode, cmd.InOrStdin(), cmd.OutOrStdout())
	return app.New(store, p, p, launcher, cmd.OutOrStdout(), app.WithAlsoDefault(alsoDefault)), nil
}

// optionalArg returns the first argument or "".
func optionalArg(args []string) string {
	if len(args) == 0 {
		return ""
	}
	return args[0]
}
