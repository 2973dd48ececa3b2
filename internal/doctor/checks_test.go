package doctor

import (
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thoreinstein/pm/internal/errors"
)

func writeSettings(t *testing.T, content string, perm os.FileMode) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "settings.json")
	require.NoError(t, os.WriteFile(path, []byte(content), perm))
	require.NoError(t, os.Chmod(path, perm))
	return path
}

func TestSettingsFileCheck(t *testing.T) {
	t.Run("missing file is informational", func(t *testing.T) {
		c := NewSettingsFileCheck(filepath.Join(t.TempDir(), "settings.json"))
		r := c.Run()
		assert.Equal(t, SeverityInfo, r.Status)
		assert.Nil(t, c.Document)
	})

	t.Run("valid file", func(t *testing.T) {
		path := writeSettings(t, `{"commandToOpen":"code","projects":[{"name":"a","path":"/a","editor":"default"}]}`, 0o600)
		c := NewSettingsFileCheck(path)
		r := c.Run()
		assert.Equal(t, SeverityPass, r.Status)
		assert.Equal(t, "1 project(s) saved", r.Message)
		require.NotNil(t, c.Document)
		assert.Equal(t, []string{"a"}, c.Document.Names())
	})

	t.Run("invalid file", func(t *testing.T) {
		path := writeSettings(t, `{"projects":[{"name":"a"},{"name":"a"}]}`, 0o600)
		c := NewSettingsFileCheck(path)
		r := c.Run()
		assert.Equal(t, SeverityError, r.Status)
		assert.Equal(t, "pm edit", r.FixHint)
		assert.Nil(t, c.Document)
	})

	t.Run("writable by others", func(t *testing.T) {
		if runtime.GOOS == "windows" {
			t.Skip("Unix permissions")
		}
		path := writeSettings(t, `{"commandToOpen":"code","projects":[]}`, 0o666)
		r := NewSettingsFileCheck(path).Run()
		assert.Equal(t, SeverityWarning, r.Status)
		assert.Equal(t, "chmod 600 "+path, r.FixHint)
	})
}

func TestProjectPathsCheck(t *testing.T) {
	existing := t.TempDir()
	path := writeSettings(t, `{"commandToOpen":"code","projects":[
		{"name":"here","path":"`+existing+`","editor":"default"},
		{"name":"gone","path":"/nonexistent/pm/gone","editor":"default"}
	]}`, 0o600)

	source := NewSettingsFileCheck(path)
	source.Run()

	r := NewProjectPathsCheck(source).Run()
	assert.Equal(t, SeverityWarning, r.Status)
	assert.Equal(t, []string{"gone"}, r.Details["missing"])
	assert.Equal(t, "pm remove gone", r.FixHint)
}

func TestProjectPathsCheck_SkippedWithoutDocument(t *testing.T) {
	source := NewSettingsFileCheck(filepath.Join(t.TempDir(), "missing.json"))
	source.Run()

	r := NewProjectPathsCheck(source).Run()
	assert.Equal(t, SeverityInfo, r.Status)
}

func TestEditorCommandsCheck(t *testing.T) {
	path := writeSettings(t, `{"commandToOpen":"code","projects":[
		{"name":"a","path":"/a","editor":"default"},
		{"name":"b","path":"/b","editor":"subl -n"},
		{"name":"c","path":"/c","editor":"code"}
	]}`, 0o600)
	source := NewSettingsFileCheck(path)
	source.Run()

	var looked []string
	lookPath := func(file string) (string, error) {
		looked = append(looked, file)
		if file == "subl" {
			return "", exec.ErrNotFound
		}
		return "/usr/bin/" + file, nil
	}

	r := NewEditorCommandsCheck(source, lookPath).Run()
	assert.Equal(t, []string{"code", "subl"}, looked)
	assert.Equal(t, SeverityWarning, r.Status)
	assert.Equal(t, []string{"subl -n"}, r.Details["missing"])
}

func TestEditorCommandsCheck_AllFound(t *testing.T) {
	path := writeSettings(t, `{"commandToOpen":"code","projects":[]}`, 0o600)
	source := NewSettingsFileCheck(path)
	source.Run()

	r := NewEditorCommandsCheck(source, func(f string) (string, error) { return "/bin/" + f, nil }).Run()
	assert.Equal(t, SeverityPass, r.Status)
}

func TestConfigCheck(t *testing.T) {
	r := NewConfigCheck("/cfg.yaml", nil).Run()
	assert.Equal(t, SeverityPass, r.Status)

	r = NewConfigCheck("/cfg.yaml", errors.New("selector must be fuzzy or list")).Run()
	assert.Equal(t, SeverityError, r.Status)
	assert.Equal(t, "fix or remove /cfg.yaml", r.FixHint)
}
