package settings

import (
	"fmt"

	"github.com/thoreinstein/pm/internal/errors"
)

// Sentinel errors returned by document operations.
var (
	// ErrEmptyCatalog indicates an operation needed at least one project.
	ErrEmptyCatalog = errors.New("no projects saved")

	// ErrNotFound indicates no project has the requested name.
	ErrNotFound = errors.New("project not found")

	// ErrDuplicateName indicates a project with the name already exists.
	ErrDuplicateName = errors.New("project with this name already exists")

	// ErrEmptyName indicates a project name was blank.
	ErrEmptyName = errors.New("project name is required")
)

// ConfigError reports a settings file that could not be read, parsed,
// validated or written. It always names the file.
type ConfigError struct {
	// Path is the settings file.
	Path string
	// Op is the failed step: "stat", "create", "read", "parse", "validate" or "write".
	Op string
	// Err is the underlying cause.
	Err error
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("settings file %s: %s: %v", e.Path, e.Op, e.Err)
}

func (e *ConfigError) Unwrap() error {
	return e.Err
}
