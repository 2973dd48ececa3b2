package app

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/require"

	"github.com/thoreinstein/pm/internal/logging"
	"github.com/thoreinstein/pm/internal/mocks"
	"github.com/thoreinstein/pm/internal/paths"
	"github.com/thoreinstein/pm/internal/settings"
)

func TestMain(m *testing.M) {
	color.NoColor = true
	os.Exit(m.Run())
}

type fixture struct {
	app      *App
	store    *settings.Store
	selector *mocks.Selector
	input    *mocks.Inputter
	launcher *mocks.Launcher
	out      *bytes.Buffer
	ctx      context.Context
}

// newFixture builds an App over a temporary settings file. A nil doc
// leaves the file missing.
func newFixture(t *testing.T, doc *settings.Document, opts ...Option) *fixture {
	t.Helper()

	path := filepath.Join(t.TempDir(), paths.SettingsDirName, paths.SettingsFileName)
	store := settings.NewStore(path)
	ctx := logging.NewContext(t.Context(), logging.ForTest(t))

	if doc != nil {
		require.NoError(t, paths.EnsureDir(filepath.Dir(path), paths.DefaultDirPerm))
		require.NoError(t, store.Save(ctx, *doc))
	}

	f := &fixture{
		store:    store,
		selector: mocks.NewSelector(t),
		input:    mocks.NewInputter(t),
		launcher: mocks.NewLauncher(t),
		out:      &bytes.Buffer{},
		ctx:      ctx,
	}
	f.app = New(store, f.selector, f.input, f.launcher, f.out, opts...)
	return f
}

// saved reads the settings document back from disk.
func (f *fixture) saved(t *testing.T) settings.Document {
	t.Helper()
	doc, err := f.store.Load(f.ctx)
	require.NoError(t, err)
	return doc
}

func docWith(command string, projects ...settings.Project) *settings.Document {
	doc := settings.Default(command)
	doc.Projects = append(doc.Projects, projects...)
	return &doc
}

func fixedWd(dir string) Option {
	return WithGetwd(func() (string, error) { return dir, nil })
}
