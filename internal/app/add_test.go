package app

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/thoreinstein/pm/internal/cli/prompt"
	"github.com/thoreinstein/pm/internal/errors"
	"github.com/thoreinstein/pm/internal/settings"
)

func TestAdd_FirstProject(t *testing.T) {
	f := newFixture(t, docWith("code"), fixedWd("/work/demo"))
	f.input.On("Input", mock.Anything, "Project Name", "demo", true).Return("demo", nil).Once()

	require.NoError(t, f.app.Add(f.ctx, ""))

	got := f.saved(t)
	assert.Equal(t, "code", got.CommandToOpen)
	assert.Equal(t, []settings.Project{{Name: "demo", Path: "/work/demo", Editor: "code"}}, got.Projects)
	assert.Contains(t, f.out.String(), "Project demo is successfully added")
}

func TestAdd_DuplicateNameChangesNothing(t *testing.T) {
	doc := docWith("code", settings.Project{Name: "demo", Path: "/work/demo", Editor: "code"})
	f := newFixture(t, doc, fixedWd("/elsewhere/demo"))
	f.input.On("Input", mock.Anything, "Project Name", "demo", true).Return("demo", nil).Once()

	before, err := os.ReadFile(f.store.Path())
	require.NoError(t, err)

	require.NoError(t, f.app.Add(f.ctx, ""))

	assert.Contains(t, f.out.String(), "Project with this name already exists")
	after, err := os.ReadFile(f.store.Path())
	require.NoError(t, err)
	assert.Equal(t, before, after)
}

func TestAdd_CustomName(t *testing.T) {
	f := newFixture(t, docWith("subl"), fixedWd("/work/demo"))
	f.input.On("Input", mock.Anything, "Project Name", "demo", true).Return("  My Demo ", nil).Once()

	require.NoError(t, f.app.Add(f.ctx, ""))

	got := f.saved(t)
	require.Len(t, got.Projects, 1)
	assert.Equal(t, settings.Project{Name: "My Demo", Path: "/work/demo", Editor: "subl"}, got.Projects[0])
}

func TestAdd_RootDirectoryOffersNoName(t *testing.T) {
	f := newFixture(t, docWith("code"), fixedWd("/"))
	f.input.On("Input", mock.Anything, "Project Name", "", true).Return("", nil).Once()

	require.NoError(t, f.app.Add(f.ctx, ""))

	assert.Contains(t, f.out.String(), "Project name is required")
	assert.Empty(t, f.saved(t).Projects)
}

func TestDefaultName(t *testing.T) {
	tests := []struct {
		path string
		want string
	}{
		{"/work/demo", "demo"},
		{"/work/demo/", "demo"},
		{"/", ""},
		{".", ""},
		{"", ""},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			assert.Equal(t, tt.want, defaultName(tt.path))
		})
	}
}

func TestAdd_DirectoryArgument(t *testing.T) {
	wd := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(wd, "api"), 0o755))

	f := newFixture(t, docWith("code"), fixedWd(wd))
	f.input.On("Input", mock.Anything, "Project Name", "api", true).Return("api", nil).Once()

	require.NoError(t, f.app.Add(f.ctx, "api"))

	got := f.saved(t)
	require.Len(t, got.Projects, 1)
	assert.Equal(t, filepath.Join(wd, "api"), got.Projects[0].Path)
}

func TestAdd_MissingDirectory(t *testing.T) {
	wd := t.TempDir()
	f := newFixture(t, docWith("code"), fixedWd(wd))

	err := f.app.Add(f.ctx, "nope")
	require.Error(t, err)
	assert.Equal(t, errors.ExitUser, errors.ExitCode(err))
	assert.Empty(t, f.saved(t).Projects)
}

func TestAdd_FileIsNotADirectory(t *testing.T) {
	wd := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(wd, "notes.txt"), []byte("x"), 0o600))
	f := newFixture(t, docWith("code"), fixedWd(wd))

	err := f.app.Add(f.ctx, "notes.txt")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "is not a directory")
}

func TestAdd_CancelledSavesNothing(t *testing.T) {
	f := newFixture(t, docWith("code"), fixedWd("/work/demo"))
	f.input.On("Input", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return("", prompt.ErrCancelled).Once()

	require.NoError(t, f.app.Add(f.ctx, ""))
	assert.Empty(t, f.saved(t).Projects)
	assert.Empty(t, f.out.String())
}

func TestAdd_ThenRemoveRoundTrip(t *testing.T) {
	doc := docWith("code", settings.Project{Name: "a", Path: "/work/a"})
	f := newFixture(t, doc, fixedWd("/work/b"))
	f.input.On("Input", mock.Anything, "Project Name", "b", true).Return("b", nil).Once()

	require.NoError(t, f.app.Add(f.ctx, ""))
	require.NoError(t, f.app.Remove(f.ctx, "b"))

	assert.Equal(t, *doc, f.saved(t))
}
