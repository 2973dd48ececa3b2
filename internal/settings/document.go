package settings

import (
	"encoding/json"
	"slices"

	"github.com/thoreinstein/pm/internal/errors"
)

// DefaultCommand is the commandToOpen written into a new catalogue.
const DefaultCommand = "code"

// editorSentinel is how an absent override is spelled on disk. Older
// releases compare the editor field against this literal, so it is kept
// for files they may read back.
const editorSentinel = "default"

// Editor is a per-project open command. The zero value means "no override":
// the document's CommandToOpen applies.
type Editor string

// IsSet reports whether e overrides the global command.
func (e Editor) IsSet() bool {
	return e != ""
}

// ParseEditor converts user input into an Editor. The literal "default"
// clears the override rather than being stored as a command.
func ParseEditor(s string) Editor {
	if s == editorSentinel {
		return ""
	}
	return Editor(s)
}

// MarshalJSON implements json.Marshaler.
func (e Editor) MarshalJSON() ([]byte, error) {
	if !e.IsSet() {
		return json.Marshal(editorSentinel)
	}
	return json.Marshal(string(e))
}

// UnmarshalJSON implements json.Unmarshaler.
func (e *Editor) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return errors.Wrap(err, "editor must be a string")
	}
	*e = ParseEditor(s)
	return nil
}

// Project is one catalogue entry.
type Project struct {
	Name   string `json:"name"`
	Path   string `json:"path"`
	Editor Editor `json:"editor"`
}

// Document is the whole settings file.
type Document struct {
	CommandToOpen string    `json:"commandToOpen"`
	Projects      []Project `json:"projects"`
}

// Default returns an empty catalogue opening projects with command.
// An empty command falls back to DefaultCommand.
func Default(command string) Document {
	if command == "" {
		command = DefaultCommand
	}
	return Document{
		CommandToOpen: command,
		Projects:      []Project{},
	}
}

// Names returns project names in document order.
func (d Document) Names() []string {
	names := make([]string, len(d.Projects))
	for i, p := range d.Projects {
		names[i] = p.Name
	}
	return names
}

// Find returns the project named name.
func (d Document) Find(name string) (Project, bool) {
	i := d.index(name)
	if i < 0 {
		return Project{}, false
	}
	return d.Projects[i], true
}

// Exists reports whether a project named name exists.
func (d Document) Exists(name string) bool {
	return d.index(name) >= 0
}

// Insert returns a copy of d with p appended.
func (d Document) Insert(p Project) (Document, error) {
	if p.Name == "" {
		return d, ErrEmptyName
	}
	if d.Exists(p.Name) {
		return d, errors.Wrapf(ErrDuplicateName, "%q", p.Name)
	}

	next := d.clone()
	next.Projects = append(next.Projects, p)
	return next, nil
}

// Remove returns a copy of d without the project named name.
func (d Document) Remove(name string) (Document, error) {
	i := d.index(name)
	if i < 0 {
		return d, errors.Wrapf(ErrNotFound, "%q", name)
	}

	next := d.clone()
	next.Projects = slices.Delete(next.Projects, i, i+1)
	return next, nil
}

// UpdateEditor returns a copy of d where the project named name has editor e.
// Nothing else changes.
func (d Document) UpdateEditor(name string, e Editor) (Document, error) {
	i := d.index(name)
	if i < 0 {
		return d, errors.Wrapf(ErrNotFound, "%q", name)
	}

	next := d.clone()
	next.Projects[i].Editor = e
	return next, nil
}

func (d Document) index(name string) int {
	return slices.IndexFunc(d.Projects, func(p Project) bool {
		return p.Name == name
	})
}

func (d Document) clone() Document {
	projects := make([]Project, len(d.Projects), len(d.Projects)+1)
	copy(projects, d.Projects)
	return Document{
		CommandToOpen: d.CommandToOpen,
		Projects:      projects,
	}
}
