// Package config manages pm's own preferences using Viper.
//
// Preferences are separate from the settings document that holds the
// project catalogue. They live in config.yaml under the XDG config home
// (~/.config/pm/config.yaml on Linux) or in the current directory, and can
// be overridden with PM_* environment variables:
//
//	version: 1
//	settings_file: ~/.projectman/settings.json  # optional
//	default_command: code
//	selector: fuzzy          # fuzzy or list
//	open_also_default: false
//
// A missing file is not an error; defaults apply. A file that cannot be
// parsed or fails [Validate] is reported to the caller.
package config
