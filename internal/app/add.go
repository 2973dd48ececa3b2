package app

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/thoreinstein/pm/internal/errors"
	"github.com/thoreinstein/pm/internal/paths"
	"github.com/thoreinstein/pm/internal/settings"
)

// Add saves dir as a project, or the current directory when dir is empty.
// The user is asked for a name, pre-filled with the directory's last
// segment. A name that is already taken prints a message and saves nothing.
func (a *App) Add(ctx context.Context, dir string) error {
	path, err := a.projectDir(dir)
	if err != nil {
		return err
	}

	doc, err := a.load(ctx)
	if err != nil {
		return err
	}

	name, err := a.input.Input(ctx, "Project Name", defaultName(path), true)
	if interrupted(err) {
		return nil
	}
	if err != nil {
		return errors.Wrap(err, "reading project name")
	}
	name = strings.TrimSpace(name)

	next, err := doc.Insert(settings.Project{
		Name:   name,
		Path:   path,
		Editor: settings.Editor(doc.CommandToOpen),
	})
	switch {
	case errors.Is(err, settings.ErrDuplicateName):
		fmt.Fprintln(a.out, failure.Sprint("Project with this name already exists"))
		return nil
	case errors.Is(err, settings.ErrEmptyName):
		fmt.Fprintln(a.out, failure.Sprint("Project name is required"))
		return nil
	case err != nil:
		return err
	}

	if err := a.save(ctx, next); err != nil {
		return err
	}
	fmt.Fprintln(a.out, success.Sprintf("Project %s is successfully added", highlight.Sprint(name)))
	return nil
}

// defaultName is the last segment of path. The filesystem root has no
// usable segment, so the prompt starts empty there.
func defaultName(path string) string {
	base := filepath.Base(path)
	if base == "." || base == string(filepath.Separator) {
		return ""
	}
	return base
}

// projectDir resolves the directory to save. An explicit dir may be
// relative to the working directory or start with ~, and must exist.
func (a *App) projectDir(dir string) (string, error) {
	wd, err := a.getwd()
	if err != nil {
		return "", errors.Wrap(err, "getting current directory")
	}
	if dir == "" {
		return wd, nil
	}

	expanded, err := paths.ExpandHome(dir)
	if err != nil {
		return "", errors.Wrapf(err, "expanding %s", dir)
	}
	if !filepath.IsAbs(expanded) {
		expanded = filepath.Join(wd, expanded)
	}
	expanded = filepath.Clean(expanded)

	info, err := os.Stat(expanded)
	if err != nil {
		return "", errors.NewUserError(errors.Wrapf(err, "project directory %s", dir), "Pass an existing directory")
	}
	if !info.IsDir() {
		return "", errors.NewUserError(errors.Newf("%s is not a directory", expanded), "Pass an existing directory")
	}
	return expanded, nil
}
