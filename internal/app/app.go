package app

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"

	"github.com/thoreinstein/pm/internal/cli/prompt"
	"github.com/thoreinstein/pm/internal/errors"
	"github.com/thoreinstein/pm/internal/launch"
	"github.com/thoreinstein/pm/internal/resolver"
	"github.com/thoreinstein/pm/internal/settings"
)

// Inputter asks the user for a line of free text.
type Inputter interface {
	Input(ctx context.Context, prompt, defaultValue string, allowEmpty bool) (string, error)
}

// Launcher starts command with path as its final argument.
type Launcher interface {
	Launch(ctx context.Context, command, path string) error
}

// App wires the settings store to the interactive and process collaborators.
type App struct {
	store    *settings.Store
	resolver *resolver.Resolver
	input    Inputter
	launcher Launcher
	out      io.Writer

	getwd       func() (string, error)
	alsoDefault bool
}

// Option configures an App.
type Option func(*App)

// WithGetwd replaces os.Getwd as the source of the current directory.
func WithGetwd(fn func() (string, error)) Option {
	return func(a *App) {
		a.getwd = fn
	}
}

// WithAlsoDefault makes Open launch the document's global command after a
// differing per-project override.
func WithAlsoDefault(v bool) Option {
	return func(a *App) {
		a.alsoDefault = v
	}
}

// New creates an App. Output for the user is written to out.
func New(store *settings.Store, sel resolver.Selector, in Inputter, l Launcher, out io.Writer, opts ...Option) *App {
	a := &App{
		store:    store,
		resolver: resolver.New(sel),
		input:    in,
		launcher: l,
		out:      out,
		getwd:    os.Getwd,
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

var (
	success   = color.New(color.FgGreen)
	failure   = color.New(color.FgRed, color.Bold)
	highlight = color.New(color.FgCyan, color.Bold)
	hint      = color.New(color.FgYellow, color.Bold)
)

// load reads the settings document, announcing when a new file had to be
// generated first.
func (a *App) load(ctx context.Context) (settings.Document, error) {
	created, err := a.store.Bootstrap(ctx)
	if err != nil {
		return settings.Document{}, userFacing(err)
	}
	if created {
		fmt.Fprintf(a.out, "Generating new settings file at %s...\n", a.store.Path())
	}

	doc, err := a.store.Load(ctx)
	if err != nil {
		return settings.Document{}, userFacing(err)
	}
	return doc, nil
}

func (a *App) save(ctx context.Context, doc settings.Document) error {
	return userFacing(a.store.Save(ctx, doc))
}

// printEmptyCatalog tells the user how to add a first project.
func (a *App) printEmptyCatalog() {
	fmt.Fprintln(a.out, failure.Sprint("No projects saved yet :("))
	fmt.Fprintf(a.out, "Add one using %s, or cd into the project folder and type %s\n",
		hint.Sprint("`pm add [projectDirectory]`"),
		hint.Sprint("`pm add`"))
}

// interrupted reports whether err is a cancelled prompt. Cancelling ends
// the use-case quietly with nothing saved.
func interrupted(err error) bool {
	return errors.Is(err, prompt.ErrCancelled)
}

// userFacing turns store, launch and prompt failures into exit errors with
// a suggestion. Other errors pass through unchanged.
func userFacing(err error) error {
	if err == nil {
		return nil
	}

	var cfgErr *settings.ConfigError
	if errors.As(err, &cfgErr) {
		return errors.NewConfigError(err, cfgErr.Path)
	}

	var launchErr *launch.LaunchError
	if errors.As(err, &launchErr) {
		return errors.NewUserError(err, fmt.Sprintf(
			"Are you sure your editor uses command `%s` to open directories from terminal? If not, use `pm seteditor` to set one",
			launchErr.Command))
	}

	if errors.Is(err, prompt.ErrInvalidSelection) {
		return errors.NewUserError(err, "Enter the number of one of the listed projects")
	}

	return err
}
