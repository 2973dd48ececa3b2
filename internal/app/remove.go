package app

import (
	"context"
	"fmt"

	"github.com/thoreinstein/pm/internal/errors"
	"github.com/thoreinstein/pm/internal/settings"
)

// Remove deletes the project named name, or one the user picks when name
// is empty.
func (a *App) Remove(ctx context.Context, name string) error {
	doc, err := a.load(ctx)
	if err != nil {
		return err
	}
	if len(doc.Projects) == 0 {
		a.printEmptyCatalog()
		return nil
	}

	if name == "" {
		p, err := a.resolver.Choose(ctx, doc, "Select project to remove")
		if interrupted(err) {
			return nil
		}
		if err != nil {
			return userFacing(err)
		}
		name = p.Name
	}

	next, err := doc.Remove(name)
	if errors.Is(err, settings.ErrNotFound) {
		fmt.Fprintln(a.out, failure.Sprintf("Project %s not found :(", name))
		return nil
	}
	if err != nil {
		return err
	}

	if err := a.save(ctx, next); err != nil {
		return err
	}
	fmt.Fprintln(a.out, success.Sprintf("Project %s is successfully removed", highlight.Sprint(name)))
	return nil
}
