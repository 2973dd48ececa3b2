package app

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/fatih/color"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/thoreinstein/pm/internal/errors"
	"github.com/thoreinstein/pm/internal/resolver"
	"github.com/thoreinstein/pm/internal/settings"
)

// Format specifies the output format for List.
type Format string

const (
	// FormatText produces an aligned human-readable table.
	FormatText Format = "text"
	// FormatJSON produces machine-readable JSON output.
	FormatJSON Format = "json"
	// FormatYAML produces YAML output.
	FormatYAML Format = "yaml"
	// FormatTOML produces TOML output.
	FormatTOML Format = "toml"
)

// ParseFormat validates a --format value.
func ParseFormat(s string) (Format, error) {
	switch f := Format(s); f {
	case FormatText, FormatJSON, FormatYAML, FormatTOML:
		return f, nil
	case "":
		return FormatText, nil
	default:
		return "", errors.NewUserError(
			errors.Newf("unknown format %q", s),
			"Use one of: text, json, yaml, toml",
		)
	}
}

// listing is the exported view of the catalogue.
type listing struct {
	CommandToOpen string         `json:"commandToOpen" yaml:"commandToOpen" toml:"commandToOpen"`
	Projects      []listingEntry `json:"projects" yaml:"projects" toml:"projects"`
}

type listingEntry struct {
	Name string `json:"name" yaml:"name" toml:"name"`
	Path string `json:"path" yaml:"path" toml:"path"`
	// Editor is the override as stored, "default" when there is none.
	Editor string `json:"editor" yaml:"editor" toml:"editor"`
	// Command is what pm open runs for this project.
	Command string `json:"command" yaml:"command" toml:"command"`
}

func newListing(doc settings.Document) listing {
	l := listing{
		CommandToOpen: doc.CommandToOpen,
		Projects:      make([]listingEntry, 0, len(doc.Projects)),
	}
	for _, p := range doc.Projects {
		editor := "default"
		if p.Editor.IsSet() {
			editor = string(p.Editor)
		}
		l.Projects = append(l.Projects, listingEntry{
			Name:    p.Name,
			Path:    p.Path,
			Editor:  editor,
			Command: resolver.EffectiveOpenCommand(doc, p),
		})
	}
	return l
}

// List writes the saved projects in document order. It never modifies
// the settings file beyond bootstrapping a missing one.
func (a *App) List(ctx context.Context, format Format) error {
	doc, err := a.load(ctx)
	if err != nil {
		return err
	}

	l := newListing(doc)
	switch format {
	case FormatJSON:
		encoder := json.NewEncoder(a.out)
		encoder.SetIndent("", "  ")
		return errors.Wrap(encoder.Encode(l), "encoding JSON listing")
	case FormatYAML:
		encoder := yaml.NewEncoder(a.out)
		encoder.SetIndent(2)
		if err := encoder.Encode(l); err != nil {
			return errors.Wrap(err, "encoding YAML listing")
		}
		return errors.Wrap(encoder.Close(), "encoding YAML listing")
	case FormatTOML:
		return errors.Wrap(toml.NewEncoder(a.out).Encode(l), "encoding TOML listing")
	default:
		if len(l.Projects) == 0 {
			a.printEmptyCatalog()
			return nil
		}
		writeTable(a.out, l)
		return nil
	}
}

// writeTable prints one project per line with padded name and path columns.
func writeTable(w io.Writer, l listing) {
	nameWidth, pathWidth := len("NAME"), len("PATH")
	for _, e := range l.Projects {
		nameWidth = max(nameWidth, lipgloss.Width(e.Name))
		pathWidth = max(pathWidth, lipgloss.Width(e.Path))
	}
	nameCol := lipgloss.NewStyle().Width(nameWidth + 2)
	pathCol := lipgloss.NewStyle().Width(pathWidth + 2)
	header := color.New(color.Bold)
	dim := color.New(color.FgHiBlack)

	fmt.Fprintln(w, header.Sprint(nameCol.Render("NAME")+pathCol.Render("PATH")+"COMMAND"))
	for _, e := range l.Projects {
		cmd := e.Command
		if e.Editor == "default" {
			cmd += " " + dim.Sprint("(default)")
		}
		fmt.Fprintln(w, nameCol.Render(highlight.Sprint(e.Name))+pathCol.Render(e.Path)+cmd)
	}
}
