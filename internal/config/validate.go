package config

import (
	"path/filepath"
	"strings"

	"github.com/thoreinstein/pm/internal/errors"
	"github.com/thoreinstein/pm/internal/settings"
)

// Validation errors for configuration fields.
var (
	// ErrUnsupportedVersion indicates a version this release cannot read.
	ErrUnsupportedVersion = errors.New("version must be 1")

	// ErrInvalidSelector indicates an unrecognized selector name.
	ErrInvalidSelector = errors.New("selector must be fuzzy or list")

	// ErrEmptyCommand indicates default_command is blank.
	ErrEmptyCommand = errors.New("default_command must not be empty")

	// ErrReservedCommand indicates default_command is the literal that
	// settings files use to mean "no per-project editor".
	ErrReservedCommand = errors.New(`default_command must not be "default"`)

	// ErrInvalidPath indicates a path value is malformed.
	ErrInvalidPath = errors.New("invalid path")

	// ErrUnknownKey indicates a key that is not a preference.
	ErrUnknownKey = errors.New("unknown config key")

	// ErrInvalidValue indicates a value of the wrong type for its key.
	ErrInvalidValue = errors.New("invalid config value")
)

// Validate checks a Config for validity.
// Returns nil if valid, or a slice of validation errors.
func Validate(cfg *Config) []error {
	if cfg == nil {
		return []error{errors.New("config is nil")}
	}

	var errs []error

	if cfg.Version != 1 {
		errs = append(errs, ErrUnsupportedVersion)
	}

	if cfg.Selector != SelectorFuzzy && cfg.Selector != SelectorList {
		errs = append(errs, &ValueError{Key: KeySelector, Value: cfg.Selector, Err: ErrInvalidSelector})
	}

	switch command := strings.TrimSpace(cfg.DefaultCommand); {
	case command == "":
		errs = append(errs, ErrEmptyCommand)
	case !settings.ParseEditor(command).IsSet():
		errs = append(errs, &ValueError{Key: KeyDefaultCommand, Value: cfg.DefaultCommand, Err: ErrReservedCommand})
	}

	if cfg.SettingsFile != "" {
		if err := validatePath(cfg.SettingsFile); err != nil {
			errs = append(errs, &ValueError{Key: KeySettingsFile, Value: cfg.SettingsFile, Err: err})
		}
	}

	return errs
}

// validatePath checks if a path string is well-formed.
// It does not check if the path exists, only that it's syntactically valid.
func validatePath(path string) error {
	// Check for null bytes which are never valid in paths
	if strings.ContainsRune(path, '\x00') {
		return ErrInvalidPath
	}

	cleaned := filepath.Clean(path)
	if cleaned == "." || strings.HasSuffix(path, string(filepath.Separator)) {
		return ErrInvalidPath
	}

	return nil
}

// ValueError reports an invalid value for a specific key.
type ValueError struct {
	Key   string
	Value string
	Err   error
}

func (e *ValueError) Error() string {
	return e.Key + ": " + e.Err.Error() + ": " + e.Value
}

func (e *ValueError) Unwrap() error {
	return e.Err
}
