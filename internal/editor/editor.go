// Package editor opens the settings file in the user's text editor.
package editor

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"

	"github.com/thoreinstein/pm/internal/errors"
	"github.com/thoreinstein/pm/internal/logging"
)

// Open runs the user's editor on path and waits for it to exit. Progress
// is written to w. The editor comes from $EDITOR, then $VISUAL, then nano,
// then vi; the variables may include arguments ("code --wait").
func Open(ctx context.Context, w io.Writer, path string) error {
	editorCmd := detectEditor()
	fields := strings.Fields(editorCmd)

	fmt.Fprintf(w, "Opening %s with %s\n", path, fields[0])
	logging.FromContext(ctx).Debug("running editor", "editor", editorCmd, "path", path)

	cmd := exec.CommandContext(ctx, fields[0], append(fields[1:], path)...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	if err := cmd.Run(); err != nil {
		return errors.Wrapf(err, "running editor %q", editorCmd)
	}

	return nil
}

// detectEditor returns the editor command to use based on environment
// variables and available binaries. Blank variables count as unset.
func detectEditor() string {
	for _, env := range []string{"EDITOR", "VISUAL"} {
		if v := strings.TrimSpace(os.Getenv(env)); v != "" {
			return v
		}
	}

	if _, err := exec.LookPath("nano"); err == nil {
		return "nano"
	}

	return "vi"
}
