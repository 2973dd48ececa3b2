package app

import (
	"context"
	"fmt"
	"strings"

	"github.com/thoreinstein/pm/internal/errors"
	"github.com/thoreinstein/pm/internal/settings"
)

// SetEditor sets the command used to open a project the user picks. When
// editorCmd is empty the user is asked for it. The literal "default"
// clears the override so the global command applies again.
func (a *App) SetEditor(ctx context.Context, editorCmd string) error {
	doc, err := a.load(ctx)
	if err != nil {
		return err
	}
	if len(doc.Projects) == 0 {
		a.printEmptyCatalog()
		return nil
	}

	p, err := a.resolver.Choose(ctx, doc, "Select project to set editor")
	if interrupted(err) {
		return nil
	}
	if err != nil {
		return userFacing(err)
	}

	editorCmd = strings.TrimSpace(editorCmd)
	if editorCmd == "" {
		editorCmd, err = a.input.Input(ctx, "The command to open your editor", "", false)
		if interrupted(err) {
			return nil
		}
		if err != nil {
			return errors.Wrap(err, "reading editor command")
		}
		editorCmd = strings.TrimSpace(editorCmd)
	}

	editor := settings.ParseEditor(editorCmd)
	next, err := doc.UpdateEditor(p.Name, editor)
	if err != nil {
		// p came from doc, so it is always present.
		return errors.Wrapf(err, "updating %q", p.Name)
	}

	if err := a.save(ctx, next); err != nil {
		return err
	}
	if editor.IsSet() {
		fmt.Fprintln(a.out, success.Sprint("Editor is successfully updated"))
	} else {
		fmt.Fprintln(a.out, success.Sprintf("Project %s now opens with the default command", highlight.Sprint(p.Name)))
	}
	return nil
}
