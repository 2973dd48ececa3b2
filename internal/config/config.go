package config

import (
	"path/filepath"
	"slices"
	"strconv"
	"strings"

	"github.com/spf13/viper"

	"github.com/thoreinstein/pm/internal/errors"
	"github.com/thoreinstein/pm/internal/paths"
	"github.com/thoreinstein/pm/pkg/fileutil"
)

// Preference keys.
const (
	KeyVersion         = "version"
	KeySettingsFile    = "settings_file"
	KeyDefaultCommand  = "default_command"
	KeySelector        = "selector"
	KeyOpenAlsoDefault = "open_also_default"
)

// Keys lists every preference in display order.
var Keys = []string{KeyVersion, KeySettingsFile, KeyDefaultCommand, KeySelector, KeyOpenAlsoDefault}

// Selector names accepted by the selector preference.
const (
	SelectorFuzzy = "fuzzy"
	SelectorList  = "list"
)

// Config represents the preferences file.
type Config struct {
	Version int `mapstructure:"version" yaml:"version"`
	// SettingsFile overrides ~/.projectman/settings.json when set.
	SettingsFile   string `mapstructure:"settings_file" yaml:"settings_file"`
	DefaultCommand string `mapstructure:"default_command" yaml:"default_command"`
	Selector       string `mapstructure:"selector" yaml:"selector"`
	// OpenAlsoDefault also runs the global command after a differing
	// per-project override when opening.
	OpenAlsoDefault bool `mapstructure:"open_also_default" yaml:"open_also_default"`
}

// Init initializes Viper with default configuration.
// Call this once at application startup before accessing config values.
func Init() {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")

	// Search paths (in order of precedence)
	viper.AddConfigPath(".")
	viper.AddConfigPath(paths.ConfigDir())

	// PM_SELECTOR, PM_SETTINGS_FILE, ...
	viper.SetEnvPrefix("PM")
	viper.AutomaticEnv()

	viper.SetDefault(KeyVersion, 1)
	viper.SetDefault(KeySettingsFile, "")
	viper.SetDefault(KeyDefaultCommand, "code")
	viper.SetDefault(KeySelector, SelectorFuzzy)
	viper.SetDefault(KeyOpenAlsoDefault, false)
}

// Load reads the preferences file.
// If path is provided, it reads from that specific file and a missing file
// is an error. If path is empty, it searches the default locations and
// falls back to defaults when nothing is found.
func Load(path string) (*Config, error) {
	if path != "" {
		viper.SetConfigFile(path)
	}

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) || path != "" {
			return nil, errors.Wrap(err, "reading config file")
		}
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, errors.Wrap(err, "unmarshaling config")
	}

	if errs := Validate(&cfg); len(errs) > 0 {
		msgs := make([]string, len(errs))
		for i, e := range errs {
			msgs[i] = e.Error()
		}
		return nil, errors.Wrapf(errors.ErrInvalidConfig, "%s", strings.Join(msgs, "; "))
	}

	return &cfg, nil
}

// File returns the preferences file in use, or the default location when
// none was read.
func File() string {
	if f := viper.ConfigFileUsed(); f != "" {
		return f
	}
	return paths.ConfigFile()
}

// Values returns the effective preferences keyed by name.
func Values() map[string]any {
	return map[string]any{
		KeyVersion:         viper.GetInt(KeyVersion),
		KeySettingsFile:    viper.GetString(KeySettingsFile),
		KeyDefaultCommand:  viper.GetString(KeyDefaultCommand),
		KeySelector:        viper.GetString(KeySelector),
		KeyOpenAlsoDefault: viper.GetBool(KeyOpenAlsoDefault),
	}
}

// Get returns the effective value of key.
func Get(key string) (any, error) {
	if !slices.Contains(Keys, key) {
		return nil, unknownKey(key)
	}
	return Values()[key], nil
}

// Set parses value for key, validates the result and writes the
// preferences file.
func Set(key, value string) error {
	if !slices.Contains(Keys, key) {
		return unknownKey(key)
	}

	var parsed any
	switch key {
	case KeyVersion:
		n, err := strconv.Atoi(value)
		if err != nil {
			return errors.Wrapf(ErrInvalidValue, "%s: %q is not a number", key, value)
		}
		parsed = n
	case KeyOpenAlsoDefault:
		b, err := strconv.ParseBool(value)
		if err != nil {
			return errors.Wrapf(ErrInvalidValue, "%s: %q is not true or false", key, value)
		}
		parsed = b
	default:
		parsed = strings.TrimSpace(value)
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return errors.Wrap(err, "unmarshaling config")
	}
	switch key {
	case KeyVersion:
		cfg.Version = parsed.(int)
	case KeySettingsFile:
		cfg.SettingsFile = parsed.(string)
	case KeyDefaultCommand:
		cfg.DefaultCommand = parsed.(string)
	case KeySelector:
		cfg.Selector = parsed.(string)
	case KeyOpenAlsoDefault:
		cfg.OpenAlsoDefault = parsed.(bool)
	}
	if errs := Validate(&cfg); len(errs) > 0 {
		return errs[0]
	}

	viper.Set(key, parsed)
	return Write(File())
}

// Write stores the effective preferences at path.
func Write(path string) error {
	if err := paths.EnsureDir(filepath.Dir(path), 0); err != nil {
		return errors.Wrap(err, "creating config directory")
	}
	if err := fileutil.AtomicWriteYAML(path, Values()); err != nil {
		return errors.Wrap(err, "writing config file")
	}
	return nil
}

// SettingsPath returns the settings document location: the settings_file
// preference when set, otherwise ~/.projectman/settings.json.
func (c *Config) SettingsPath() (string, error) {
	if c != nil && c.SettingsFile != "" {
		return paths.ExpandHome(c.SettingsFile)
	}
	return paths.SettingsPath()
}

func unknownKey(key string) error {
	return errors.Wrapf(ErrUnknownKey, "%q (valid: %s)", key, strings.Join(Keys, ", "))
}
