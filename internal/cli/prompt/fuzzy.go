package prompt

import (
	"context"

	"github.com/ktr0731/go-fuzzyfinder"

	"github.com/thoreinstein/pm/internal/errors"
)

// Fuzzy selects with a full-screen fuzzy finder. It needs a terminal.
type Fuzzy struct{}

// Select runs the finder over options and returns the chosen index.
// Aborting the finder yields ErrCancelled.
func (Fuzzy) Select(ctx context.Context, prompt string, options []string) (int, error) {
	if len(options) == 0 {
		return 0, ErrNoOptions
	}

	idx, err := fuzzyfinder.Find(
		options,
		func(i int) string { return options[i] },
		fuzzyfinder.WithHeader(prompt),
		fuzzyfinder.WithContext(ctx),
	)
	if err != nil {
		if errors.Is(err, fuzzyfinder.ErrAbort) {
			return 0, ErrCancelled
		}
		return 0, errors.Wrap(err, "fuzzy selection failed")
	}
	return idx, nil
}
