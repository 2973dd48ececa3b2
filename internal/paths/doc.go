// Package paths resolves the locations pm reads and writes.
//
// Two files matter:
//
//	~/.projectman/settings.json   project catalogue (see package settings)
//	<ConfigHome>/pm/config.yaml   tool preferences (see package config)
//
// The settings location is kept under the home directory so catalogues
// written by earlier releases keep working. Preferences live in the XDG config
// home resolved by github.com/adrg/xdg:
//
//	Linux:   ~/.config/pm/config.yaml
//	macOS:   ~/Library/Application Support/pm/config.yaml
//	Windows: %LOCALAPPDATA%\pm\config.yaml
package paths
