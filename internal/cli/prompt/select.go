package prompt

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/fatih/color"

	"github.com/thoreinstein/pm/internal/errors"
)

// Sentinel errors for prompts.
var (
	ErrNoOptions        = errors.New("no options to select from")
	ErrInvalidSelection = errors.New("invalid selection")
	// ErrCancelled is returned when the user aborts a prompt with Ctrl+C,
	// Esc or end of input. Callers stop without persisting anything.
	ErrCancelled = errors.New("prompt cancelled")
)

var question = color.New(color.FgGreen, color.Bold)

// Line prompts on a plain reader and writer, one answer per line.
// Select and Input share a single buffered reader so consecutive prompts
// never lose buffered input.
type Line struct {
	reader *bufio.Reader
	writer io.Writer
}

// NewLine creates a Line prompter reading from r and writing to w.
func NewLine(r io.Reader, w io.Writer) *Line {
	br, ok := r.(*bufio.Reader)
	if !ok {
		br = bufio.NewReader(r)
	}
	return &Line{reader: br, writer: w}
}

// Select prints options as a numbered list and reads a 1-based choice.
//
// Returns:
//   - ErrNoOptions if options is empty
//   - index 0 when the answer is empty
//   - ErrInvalidSelection if the answer is not a number or out of range
//   - ErrCancelled on end of input
func (l *Line) Select(ctx context.Context, prompt string, options []string) (int, error) {
	if len(options) == 0 {
		return 0, ErrNoOptions
	}

	fmt.Fprintf(l.writer, "%s %s\n", question.Sprint("?"), prompt)
	for i, opt := range options {
		fmt.Fprintf(l.writer, "  [%d] %s\n", i+1, opt)
	}
	fmt.Fprintf(l.writer, "Select [1]: ")

	input, err := l.readLine(ctx)
	if err != nil {
		return 0, err
	}

	if input == "" {
		return 0, nil
	}

	selection, err := strconv.Atoi(input)
	if err != nil {
		return 0, errors.Wrapf(ErrInvalidSelection, "%q is not a number", input)
	}

	// Validate range (1-indexed)
	if selection < 1 || selection > len(options) {
		return 0, errors.Wrapf(ErrInvalidSelection, "%d is out of range [1-%d]", selection, len(options))
	}

	return selection - 1, nil
}

// Input reads a line of free text. An empty answer takes defaultValue.
// When the result is still empty and allowEmpty is false the question is
// asked again.
func (l *Line) Input(ctx context.Context, prompt, defaultValue string, allowEmpty bool) (string, error) {
	for {
		if defaultValue != "" {
			fmt.Fprintf(l.writer, "%s [%s]: ", prompt, defaultValue)
		} else {
			fmt.Fprintf(l.writer, "%s: ", prompt)
		}

		input, err := l.readLine(ctx)
		if err != nil {
			return "", err
		}
		if input == "" {
			input = defaultValue
		}
		if input != "" || allowEmpty {
			return input, nil
		}
		fmt.Fprintln(l.writer, "A value is required.")
	}
}

// readLine returns the next trimmed line. A final line without a newline
// is still an answer; end of input with nothing read is a cancellation.
func (l *Line) readLine(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", errors.Wrap(ErrCancelled, err.Error())
	}

	line, err := l.reader.ReadString('\n')
	if err != nil {
		if !errors.Is(err, io.EOF) {
			return "", errors.Wrap(err, "reading input")
		}
		if line == "" {
			fmt.Fprintln(l.writer)
			return "", ErrCancelled
		}
	}
	return strings.TrimSpace(line), nil
}
