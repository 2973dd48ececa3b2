package launch

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thoreinstein/pm/internal/errors"
	"github.com/thoreinstein/pm/internal/logging"
)

func TestLaunch_EmptyCommand(t *testing.T) {
	err := Process{}.Launch(t.Context(), "   ", "/work/demo")

	var launchErr *LaunchError
	require.True(t, errors.As(err, &launchErr), "got %v", err)
	assert.True(t, errors.Is(err, ErrEmptyCommand))
	assert.Equal(t, "/work/demo", launchErr.Path)
}

func TestLaunch_NotFound(t *testing.T) {
	err := Process{}.Launch(t.Context(), "non-existent-editor-12345", "/work/demo")

	var launchErr *LaunchError
	require.True(t, errors.As(err, &launchErr), "got %v", err)
	assert.True(t, launchErr.NotFound())
	assert.Contains(t, err.Error(), "non-existent-editor-12345")
	assert.Contains(t, err.Error(), "/work/demo")
}

func TestLaunch_PassesArgsAndPath(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("uses a shell script mock")
	}

	ctx := logging.NewContext(t.Context(), logging.ForTest(t))
	dir := t.TempDir()
	mockEditor := filepath.Join(dir, "mock-editor.sh")
	outputFile := filepath.Join(dir, "output.txt")

	script := "#!/bin/sh\nprintf '%s|' \"$@\" > " + outputFile + "\n"
	require.NoError(t, os.WriteFile(mockEditor, []byte(script), 0o755))

	target := filepath.Join(dir, "project")
	require.NoError(t, Process{Wait: true}.Launch(ctx, mockEditor+" -n --reuse", target))

	got, err := os.ReadFile(outputFile)
	require.NoError(t, err)
	assert.Equal(t, "-n|--reuse|"+target+"|", string(got))
}

func TestLaunch_WaitReportsExitFailure(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("uses a shell script mock")
	}

	mockEditor := filepath.Join(t.TempDir(), "failing-editor.sh")
	require.NoError(t, os.WriteFile(mockEditor, []byte("#!/bin/sh\nexit 3\n"), 0o755))

	err := Process{Wait: true}.Launch(t.Context(), mockEditor, "/work/demo")

	var launchErr *LaunchError
	require.True(t, errors.As(err, &launchErr), "got %v", err)
	assert.False(t, launchErr.NotFound())
}
