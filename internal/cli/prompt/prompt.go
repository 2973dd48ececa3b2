package prompt

import (
	"context"
	"io"

	"github.com/thoreinstein/pm/internal/logging"
)

// Mode selects the selection UI.
type Mode string

const (
	// ModeFuzzy uses the fuzzy finder on a terminal.
	ModeFuzzy Mode = "fuzzy"
	// ModeList always uses the numbered list.
	ModeList Mode = "list"
)

type selector interface {
	Select(ctx context.Context, prompt string, options []string) (int, error)
}

type inputter interface {
	Input(ctx context.Context, prompt, defaultValue string, allowEmpty bool) (string, error)
}

// Prompter picks the selection and input implementation for the
// environment it runs in.
type Prompter struct {
	selector selector
	inputter inputter
}

// New returns a Prompter for in and out. Terminal UIs are used only when
// both are terminals; otherwise every prompt is line based.
func New(mode Mode, in io.Reader, out io.Writer) *Prompter {
	line := NewLine(in, out)
	if !logging.Interactive(in, out) {
		return &Prompter{selector: line, inputter: line}
	}

	p := &Prompter{selector: line, inputter: NewBox(in, out)}
	if mode != ModeList {
		p.selector = Fuzzy{}
	}
	return p
}

// Select asks the user to choose one of options.
func (p *Prompter) Select(ctx context.Context, prompt string, options []string) (int, error) {
	return p.selector.Select(ctx, prompt, options)
}

// Input asks the user for a line of text.
func (p *Prompter) Input(ctx context.Context, prompt, defaultValue string, allowEmpty bool) (string, error) {
	return p.inputter.Input(ctx, prompt, defaultValue, allowEmpty)
}

// ParseMode validates a selector name from the configuration.
func ParseMode(s string) (Mode, bool) {
	switch Mode(s) {
	case ModeFuzzy, ModeList:
		return Mode(s), true
	default:
		return "", false
	}
}
