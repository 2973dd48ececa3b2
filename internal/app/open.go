package app

import (
	"context"
	"fmt"

	"github.com/thoreinstein/pm/internal/errors"
	"github.com/thoreinstein/pm/internal/logging"
	"github.com/thoreinstein/pm/internal/resolver"
	"github.com/thoreinstein/pm/internal/settings"
)

// Open launches the project named name, or one the user picks when name
// is empty. An unknown name prints guidance and launches nothing.
func (a *App) Open(ctx context.Context, name string) error {
	doc, err := a.load(ctx)
	if err != nil {
		return err
	}

	target, err := a.resolver.ResolveForOpen(ctx, doc, name)
	switch {
	case errors.Is(err, settings.ErrEmptyCatalog):
		a.printEmptyCatalog()
		return nil
	case interrupted(err):
		return nil
	case err != nil:
		return userFacing(err)
	}

	if target.Outcome == resolver.Unresolved {
		fmt.Fprintln(a.out, failure.Sprintf("Project %s not found :(", target.Name))
		fmt.Fprintf(a.out, "Add it using %s, or list saved projects with %s\n",
			hint.Sprint("`pm add [projectDirectory]`"),
			hint.Sprint("`pm list`"))
		return nil
	}

	p := target.Project
	cmd := resolver.EffectiveOpenCommand(doc, p)
	logging.FromContext(ctx).Debug("opening project",
		"name", p.Name, "path", p.Path, "command", cmd, "outcome", target.Outcome.String())

	fmt.Fprintf(a.out, ">>> Opening %s...\n", success.Sprint(p.Name))
	if err := a.launcher.Launch(ctx, cmd, p.Path); err != nil {
		return userFacing(err)
	}

	if a.alsoDefault && cmd != doc.CommandToOpen {
		if err := a.launcher.Launch(ctx, doc.CommandToOpen, p.Path); err != nil {
			return userFacing(err)
		}
	}
	return nil
}
