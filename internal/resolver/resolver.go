// Package resolver decides which catalogue entry an invocation refers to,
// either by exact name or by asking the user to pick one.
package resolver

import (
	"context"

	"github.com/thoreinstein/pm/internal/errors"
	"github.com/thoreinstein/pm/internal/settings"
)

// Selector asks the user to pick one of options and returns its index.
// It is only called with at least one option.
type Selector interface {
	Select(ctx context.Context, prompt string, options []string) (int, error)
}

// Outcome classifies a resolution.
type Outcome int

const (
	// Selected means the user picked the project interactively.
	Selected Outcome = iota + 1
	// Found means the requested name matched a project.
	Found
	// Unresolved means the requested name matched nothing.
	Unresolved
)

func (o Outcome) String() string {
	switch o {
	case Selected:
		return "selected"
	case Found:
		return "found"
	case Unresolved:
		return "unresolved"
	default:
		return "unknown"
	}
}

// Target is the result of resolving a project for opening.
type Target struct {
	Outcome Outcome
	// Project is set for Selected and Found.
	Project settings.Project
	// Name is the requested name for Unresolved, the project name otherwise.
	Name string
}

// Resolver maps names or interactive choices onto projects.
type Resolver struct {
	selector Selector
}

// New returns a Resolver using selector for interactive choices.
func New(selector Selector) *Resolver {
	return &Resolver{selector: selector}
}

// ResolveForOpen resolves the project to open. An empty name means none was
// given and the user is asked to choose; an empty catalogue then yields
// settings.ErrEmptyCatalog without prompting. A name that matches nothing
// is an Unresolved target, not an error.
func (r *Resolver) ResolveForOpen(ctx context.Context, doc settings.Document, name string) (Target, error) {
	if name == "" {
		p, err := r.Choose(ctx, doc, "Select project to open")
		if err != nil {
			return Target{}, err
		}
		return Target{Outcome: Selected, Project: p, Name: p.Name}, nil
	}

	if p, ok := doc.Find(name); ok {
		return Target{Outcome: Found, Project: p, Name: p.Name}, nil
	}
	return Target{Outcome: Unresolved, Name: name}, nil
}

// Choose asks the user to pick a project, listing names in document order.
// Returns settings.ErrEmptyCatalog without prompting when there are none.
func (r *Resolver) Choose(ctx context.Context, doc settings.Document, prompt string) (settings.Project, error) {
	names := doc.Names()
	if len(names) == 0 {
		return settings.Project{}, settings.ErrEmptyCatalog
	}

	idx, err := r.selector.Select(ctx, prompt, names)
	if err != nil {
		return settings.Project{}, err
	}
	if idx < 0 || idx >= len(names) {
		return settings.Project{}, errors.Newf("selection %d out of range [0-%d]", idx, len(names)-1)
	}

	p, ok := doc.Find(names[idx])
	if !ok {
		// Names came from doc, so this is an invariant violation.
		return settings.Project{}, errors.Wrapf(settings.ErrNotFound, "%q", names[idx])
	}
	return p, nil
}

// EffectiveOpenCommand returns the project's editor override, or the
// document's commandToOpen when the project has none.
func EffectiveOpenCommand(doc settings.Document, p settings.Project) string {
	if p.Editor.IsSet() {
		return string(p.Editor)
	}
	return doc.CommandToOpen
}
