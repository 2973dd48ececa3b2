package settings

import (
	"context"
	"os"
	"path/filepath"

	"github.com/thoreinstein/pm/internal/logging"
	"github.com/thoreinstein/pm/internal/paths"
	"github.com/thoreinstein/pm/pkg/fileutil"
)

// Store reads and writes the settings document at a fixed path.
type Store struct {
	path           string
	defaultCommand string
}

// Option configures a Store.
type Option func(*Store)

// WithDefaultCommand sets the commandToOpen used when bootstrapping a new file.
func WithDefaultCommand(command string) Option {
	return func(s *Store) {
		if command != "" {
			s.defaultCommand = command
		}
	}
}

// NewStore returns a Store for the settings file at path.
func NewStore(path string, opts ...Option) *Store {
	s := &Store{
		path:           path,
		defaultCommand: DefaultCommand,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Path returns the settings file location.
func (s *Store) Path() string {
	return s.path
}

// Bootstrap writes a default document if the settings file does not exist,
// creating parent directories as needed. It reports whether a file was
// created. An existing file is never touched.
func (s *Store) Bootstrap(ctx context.Context) (bool, error) {
	_, err := os.Stat(s.path)
	if err == nil {
		return false, nil
	}
	if !os.IsNotExist(err) {
		return false, &ConfigError{Path: s.path, Op: "stat", Err: err}
	}

	if err := paths.EnsureDir(filepath.Dir(s.path), 0); err != nil {
		return false, &ConfigError{Path: s.path, Op: "create", Err: err}
	}
	if err := s.Save(ctx, Default(s.defaultCommand)); err != nil {
		return false, err
	}

	logging.FromContext(ctx).Info("created settings file", "path", s.path, "commandToOpen", s.defaultCommand)
	return true, nil
}

// Load returns the settings document, bootstrapping it first if missing.
// A file that exists but cannot be read or parsed yields a *ConfigError.
func (s *Store) Load(ctx context.Context) (Document, error) {
	if _, err := s.Bootstrap(ctx); err != nil {
		return Document{}, err
	}

	data, err := fileutil.ReadFileWithLimit(s.path)
	if err != nil {
		return Document{}, &ConfigError{Path: s.path, Op: "read", Err: err}
	}

	doc, err := Parse(data)
	if err != nil {
		return Document{}, &ConfigError{Path: s.path, Op: "parse", Err: err}
	}

	logger := logging.FromContext(ctx)
	logger.Debug("loaded settings", "path", s.path, "projects", len(doc.Projects))
	logger.Log(ctx, logging.LevelTrace, "settings document", "commandToOpen", doc.CommandToOpen, "names", doc.Names())

	return doc, nil
}

// Save replaces the settings file with doc.
func (s *Store) Save(ctx context.Context, doc Document) error {
	if errs := Validate(doc); len(errs) > 0 {
		return &ConfigError{Path: s.path, Op: "validate", Err: errs[0]}
	}
	if doc.Projects == nil {
		doc.Projects = []Project{}
	}

	if err := fileutil.AtomicWriteJSON(s.path, doc); err != nil {
		return &ConfigError{Path: s.path, Op: "write", Err: err}
	}

	logging.FromContext(ctx).Debug("saved settings", "path", s.path, "projects", len(doc.Projects))
	return nil
}
