package settings

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/tidwall/jsonc"

	"github.com/thoreinstein/pm/internal/errors"
)

// Parse decodes a settings document. Comments and trailing commas are
// accepted so files edited by hand with `pm edit` keep loading. Unknown
// keys are ignored. A missing commandToOpen defaults to DefaultCommand and
// a missing projects array to an empty one; anything else that does not fit
// the document shape is an error.
func Parse(data []byte) (Document, error) {
	stripped := bytes.TrimSpace(jsonc.ToJSON(data))
	if len(stripped) == 0 || stripped[0] != '{' {
		return Document{}, errors.New("expected a JSON object")
	}

	var doc Document
	if err := json.Unmarshal(stripped, &doc); err != nil {
		return Document{}, errors.Wrap(err, "decoding JSON")
	}

	if doc.CommandToOpen == "" {
		doc.CommandToOpen = DefaultCommand
	}
	if doc.Projects == nil {
		doc.Projects = []Project{}
	}

	if errs := Validate(doc); len(errs) > 0 {
		msgs := make([]string, len(errs))
		for i, e := range errs {
			msgs[i] = e.Error()
		}
		return Document{}, errors.Newf("%s", strings.Join(msgs, "; "))
	}

	return doc, nil
}

// Validate checks the document invariants: every project has a name and
// names are unique. Returns nil when valid.
func Validate(doc Document) []error {
	var errs []error
	seen := make(map[string]int, len(doc.Projects))

	for i, p := range doc.Projects {
		if p.Name == "" {
			errs = append(errs, fmt.Errorf("projects[%d]: %w", i, ErrEmptyName))
			continue
		}
		if first, ok := seen[p.Name]; ok {
			errs = append(errs, fmt.Errorf("projects[%d]: %w: %q (first at projects[%d])", i, ErrDuplicateName, p.Name, first))
			continue
		}
		seen[p.Name] = i
	}

	return errs
}
