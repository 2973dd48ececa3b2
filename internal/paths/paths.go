package paths

import (
	"os"
	"path/filepath"

	"github.com/adrg/xdg"

	"github.com/thoreinstein/pm/internal/errors"
)

// AppName names the preferences directory under ConfigHome.
const AppName = "pm"

const (
	// SettingsDirName is the directory under the home directory holding the catalogue.
	SettingsDirName = ".projectman"
	// SettingsFileName is the catalogue file name.
	SettingsFileName = "settings.json"
	// ConfigFileName is the preferences file name.
	ConfigFileName = "config.yaml"
)

// ErrHomeDirNotFound indicates the user's home directory could not be determined.
var ErrHomeDirNotFound = errors.New("home directory not found")

// DefaultDirPerm is the permission for newly created directories (private).
const DefaultDirPerm = 0o700

// EnsureDir creates the directory and any necessary parents.
// If perm is 0, DefaultDirPerm is used. It returns nil if the directory exists.
func EnsureDir(path string, perm os.FileMode) error {
	if perm == 0 {
		perm = DefaultDirPerm
	}
	return os.MkdirAll(path, perm)
}

// ResolveHome returns the user's home directory.
// Returns ErrHomeDirNotFound if the directory cannot be determined.
func ResolveHome() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return "", errors.Wrapf(ErrHomeDirNotFound, "%v", err)
	}
	return home, nil
}

// ConfigHome returns the XDG config home directory.
func ConfigHome() string {
	return xdg.ConfigHome
}

// ConfigDir returns <ConfigHome>/pm.
func ConfigDir() string {
	return filepath.Join(ConfigHome(), AppName)
}

// ConfigFile returns <ConfigHome>/pm/config.yaml.
func ConfigFile() string {
	return filepath.Join(ConfigDir(), ConfigFileName)
}

// SettingsPath returns ~/.projectman/settings.json.
func SettingsPath() (string, error) {
	home, err := ResolveHome()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, SettingsDirName, SettingsFileName), nil
}

// ExpandHome replaces a leading "~" in path with the home directory.
// Paths without the prefix are returned unchanged.
func ExpandHome(path string) (string, error) {
	if path != "~" && !hasHomePrefix(path) {
		return path, nil
	}
	home, err := ResolveHome()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, path[1:]), nil
}

func hasHomePrefix(path string) bool {
	return len(path) >= 2 && path[0] == '~' && os.IsPathSeparator(path[1])
}
