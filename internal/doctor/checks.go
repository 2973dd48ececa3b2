package doctor

import (
	"fmt"
	"os"
	"os/exec"
	"runtime"
	"slices"
	"strings"

	"github.com/thoreinstein/pm/internal/resolver"
	"github.com/thoreinstein/pm/internal/settings"
	"github.com/thoreinstein/pm/pkg/fileutil"
)

// SettingsFileCheck verifies the settings file can be read and parsed and
// is not writable by others. On success Document holds the parsed result
// for the checks that depend on it.
type SettingsFileCheck struct {
	Path     string
	Document *settings.Document
}

var _ Check = (*SettingsFileCheck)(nil)

// NewSettingsFileCheck creates a check for the settings file at path.
func NewSettingsFileCheck(path string) *SettingsFileCheck {
	return &SettingsFileCheck{Path: path}
}

// Name returns the unique identifier for this check.
func (c *SettingsFileCheck) Name() string {
	return "settings-file"
}

// Category returns the grouping for this check.
func (c *SettingsFileCheck) Category() string {
	return "settings"
}

// Run reads and parses the settings file.
func (c *SettingsFileCheck) Run() *CheckResult {
	result := &CheckResult{
		Name:     c.Name(),
		Category: c.Category(),
		Details:  map[string]any{"path": c.Path},
	}

	info, err := os.Stat(c.Path)
	if os.IsNotExist(err) {
		result.Status = SeverityInfo
		result.Message = "settings file does not exist yet; it is created on first use"
		return result
	}
	if err != nil {
		result.Status = SeverityError
		result.Message = fmt.Sprintf("cannot stat settings file: %v", err)
		return result
	}

	data, err := fileutil.ReadFileWithLimit(c.Path)
	if err != nil {
		result.Status = SeverityError
		result.Message = fmt.Sprintf("cannot read settings file: %v", err)
		return result
	}

	doc, err := settings.Parse(data)
	if err != nil {
		result.Status = SeverityError
		result.Message = fmt.Sprintf("settings file is invalid: %v", err)
		result.FixHint = "pm edit"
		return result
	}
	c.Document = &doc
	result.Details["projects"] = len(doc.Projects)

	// Unix permissions don't apply on Windows
	if runtime.GOOS != "windows" && info.Mode().Perm()&0o022 != 0 {
		result.Status = SeverityWarning
		result.Message = fmt.Sprintf("settings file is writable by others (%04o)", info.Mode().Perm())
		result.FixHint = "chmod 600 " + c.Path
		return result
	}

	result.Status = SeverityPass
	result.Message = fmt.Sprintf("%d project(s) saved", len(doc.Projects))
	return result
}

// ProjectPathsCheck warns about saved projects whose directory is gone.
type ProjectPathsCheck struct {
	source *SettingsFileCheck
}

var _ Check = (*ProjectPathsCheck)(nil)

// NewProjectPathsCheck creates a check over the document parsed by source.
// source must be run first.
func NewProjectPathsCheck(source *SettingsFileCheck) *ProjectPathsCheck {
	return &ProjectPathsCheck{source: source}
}

// Name returns the unique identifier for this check.
func (c *ProjectPathsCheck) Name() string {
	return "project-paths"
}

// Category returns the grouping for this check.
func (c *ProjectPathsCheck) Category() string {
	return "projects"
}

// Run stats every project path.
func (c *ProjectPathsCheck) Run() *CheckResult {
	result := &CheckResult{Name: c.Name(), Category: c.Category()}

	doc := c.source.Document
	if doc == nil {
		result.Status = SeverityInfo
		result.Message = "skipped: no readable settings file"
		return result
	}

	var missing []string
	for _, p := range doc.Projects {
		info, err := os.Stat(p.Path)
		if err != nil || !info.IsDir() {
			missing = append(missing, p.Name)
		}
	}

	if len(missing) == 0 {
		result.Status = SeverityPass
		result.Message = fmt.Sprintf("all %d project directories exist", len(doc.Projects))
		return result
	}

	result.Status = SeverityWarning
	result.Message = fmt.Sprintf("%d project(s) point to a missing directory: %s", len(missing), strings.Join(missing, ", "))
	result.Details = map[string]any{"missing": missing}
	result.FixHint = "pm remove " + missing[0]
	return result
}

// EditorCommandsCheck warns about open commands that are not on PATH.
type EditorCommandsCheck struct {
	source   *SettingsFileCheck
	lookPath func(string) (string, error)
}

var _ Check = (*EditorCommandsCheck)(nil)

// NewEditorCommandsCheck creates a check over the document parsed by
// source. A nil lookPath uses exec.LookPath.
func NewEditorCommandsCheck(source *SettingsFileCheck, lookPath func(string) (string, error)) *EditorCommandsCheck {
	if lookPath == nil {
		lookPath = exec.LookPath
	}
	return &EditorCommandsCheck{source: source, lookPath: lookPath}
}

// Name returns the unique identifier for this check.
func (c *EditorCommandsCheck) Name() string {
	return "editor-commands"
}

// Category returns the grouping for this check.
func (c *EditorCommandsCheck) Category() string {
	return "projects"
}

// Run resolves the executable of the global command and of every
// project's effective command.
func (c *EditorCommandsCheck) Run() *CheckResult {
	result := &CheckResult{Name: c.Name(), Category: c.Category()}

	doc := c.source.Document
	if doc == nil {
		result.Status = SeverityInfo
		result.Message = "skipped: no readable settings file"
		return result
	}

	commands := []string{doc.CommandToOpen}
	for _, p := range doc.Projects {
		cmd := resolver.EffectiveOpenCommand(*doc, p)
		if !slices.Contains(commands, cmd) {
			commands = append(commands, cmd)
		}
	}

	var missing []string
	for _, cmd := range commands {
		fields := strings.Fields(cmd)
		if len(fields) == 0 {
			missing = append(missing, cmd)
			continue
		}
		if _, err := c.lookPath(fields[0]); err != nil {
			missing = append(missing, cmd)
		}
	}

	if len(missing) == 0 {
		result.Status = SeverityPass
		result.Message = fmt.Sprintf("%d command(s) found in PATH", len(commands))
		return result
	}

	result.Status = SeverityWarning
	result.Message = fmt.Sprintf("command(s) not found in PATH: %s", strings.Join(missing, ", "))
	result.Details = map[string]any{"missing": missing}
	result.FixHint = "pm seteditor, or install the editor's shell command"
	return result
}

// ConfigCheck reports whether the preferences file loaded.
type ConfigCheck struct {
	path    string
	loadErr error
}

var _ Check = (*ConfigCheck)(nil)

// NewConfigCheck creates a check from the outcome of loading path.
func NewConfigCheck(path string, loadErr error) *ConfigCheck {
	return &ConfigCheck{path: path, loadErr: loadErr}
}

// Name returns the unique identifier for this check.
func (c *ConfigCheck) Name() string {
	return "preferences"
}

// Category returns the grouping for this check.
func (c *ConfigCheck) Category() string {
	return "config"
}

// Run reports the load outcome.
func (c *ConfigCheck) Run() *CheckResult {
	result := &CheckResult{
		Name:     c.Name(),
		Category: c.Category(),
		Details:  map[string]any{"path": c.path},
	}
	if c.loadErr != nil {
		result.Status = SeverityError
		result.Message = c.loadErr.Error()
		result.FixHint = "fix or remove " + c.path
		return result
	}
	result.Status = SeverityPass
	result.Message = "preferences loaded"
	return result
}
