// Package commands implements the CLI commands for pm.
package commands

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/thoreinstein/pm/cmd"
	"github.com/thoreinstein/pm/internal/app"
	"github.com/thoreinstein/pm/internal/config"
	"github.com/thoreinstein/pm/internal/errors"
	"github.com/thoreinstein/pm/internal/logging"
)

// verbosity holds the count of -v flags.
var verbosity int

// quiet holds the value of the -q/--quiet flag.
var quiet bool

// logFormat holds the value of the --log-format flag.
var logFormat string

// logFile holds the path to the log file.
var logFile string

// configFlag holds an explicit preferences file.
var configFlag string

// settingsFlag overrides the settings document location.
var settingsFlag string

// cfg holds the loaded preferences.
var cfg *config.Config

// configLoadErr holds any error that occurred during config loading.
var configLoadErr error

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v",
		"increase verbosity level (e.g., -v, -vv)")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false,
		"suppress non-error output")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "text",
		"log format: text, json")
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", "",
		"write logs to file in JSON format")
	rootCmd.PersistentFlags().StringVar(&configFlag, "config", "",
		"preferences file (default: $XDG_CONFIG_HOME/pm/config.yaml)")
	rootCmd.PersistentFlags().StringVar(&settingsFlag, "settings", "",
		"settings file holding your projects (default: ~/.projectman/settings.json)")

	rootCmd.Version = cmd.Info().Version
	rootCmd.SetVersionTemplate("pm version {{.Version}}\n")
	rootCmd.Flags().BoolP("version", "V", false, "output the version number")

	// Silence errors and usage so we can control error output
	rootCmd.SilenceErrors = true
	rootCmd.SilenceUsage = true
}

func initConfig() {
	config.Init()
	// Capture load errors for later reporting
	cfg, configLoadErr = config.Load(configFlag)
}

var rootCmd = &cobra.Command{
	Use:   "pm [command]",
	Short: "Open your projects in your editor",
	Long: `pm keeps a list of project directories and opens them in your
editor or IDE.

Without a command, pm asks which saved project to open. Projects are
stored in ~/.projectman/settings.json; each one can override the command
used to open it.`,
	Example: `  # Pick a project to open
  pm

  # Save the current directory as a project
  pm add

  # Open a project by name
  pm open api

  See Also: pm list, pm seteditor, pm edit`,
	Args: cobra.ArbitraryArgs,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Initialize logging first
		if err := setupLogging(cmd); err != nil {
			return err
		}
		return checkConfig(cmd)
	},
	RunE: runRoot,
}

func runRoot(cmd *cobra.Command, args []string) error {
	if len(args) > 0 {
		app.CommandNotFound(cmd.OutOrStdout(), args[0])
		return errors.NewExitError(nil, errors.ExitUser)
	}
	return runOpen(cmd, nil)
}

// setupLogging configures the default logger based on verbosity flags.
func setupLogging(cmd *cobra.Command) error {
	if quiet && verbosity > 0 {
		return errors.NewUserError(errors.New("conflicting flags"), "cannot use --quiet and --verbose together")
	}

	var level slog.Level
	if quiet {
		level = slog.LevelError
	} else {
		v := verbosity

		// CLI flags take precedence, but if not set, check env var
		if v == 0 {
			if val, ok := os.LookupEnv("PM_DEBUG"); ok {
				switch val {
				case "1", "true":
					v = 2 // Debug
				case "2":
					v = 3 // Trace
				}
			}
		}
		level = logging.LevelFromVerbosity(v)
	}

	opts := &slog.HandlerOptions{
		Level: level,
	}

	var primaryHandler slog.Handler
	switch logging.Format(logFormat) {
	case logging.FormatJSON:
		primaryHandler = slog.NewJSONHandler(cmd.ErrOrStderr(), opts)
	default:
		primaryHandler = logging.NewHandler(cmd.ErrOrStderr(), opts)
	}

	handlers := []slog.Handler{primaryHandler}

	if logFile != "" {
		f, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return errors.NewUserError(err, "failed to open log file")
		}
		// File output uses JSON format
		handlers = append(handlers, slog.NewJSONHandler(f, &slog.HandlerOptions{
			Level: level,
		}))
	}

	logger := slog.New(logging.NewTee(handlers...))
	slog.SetDefault(logger)

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	cmd.SetContext(logging.NewContext(ctx, logger))

	return nil
}

// checkConfig reports a broken preferences file before any command runs.
func checkConfig(cmd *cobra.Command) error {
	// help, version and doctor work with a broken file
	switch cmd.Name() {
	case "help", "version", "doctor":
		return nil
	}
	if configLoadErr != nil {
		return errors.NewUserError(configLoadErr, fmt.Sprintf("Fix or remove %s", config.File()))
	}
	return nil
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// PrintError writes err and its suggestion, if any, for the user.
// An ExitError without a cause only carries an exit code and prints nothing.
func PrintError(w io.Writer, err error) {
	var exitErr *errors.ExitError
	isExit := errors.As(err, &exitErr)
	if isExit && exitErr.Err == nil {
		return
	}

	red := color.New(color.FgRed)
	red.Fprintf(w, "Error: %v\n", err)
	if isExit && exitErr.Suggestion != "" {
		fmt.Fprintf(w, "Suggestion: %s\n", exitErr.Suggestion)
	}
}
