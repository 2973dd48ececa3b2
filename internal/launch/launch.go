// Package launch starts the editor or IDE that opens a project.
package launch

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"strings"

	"github.com/thoreinstein/pm/internal/errors"
	"github.com/thoreinstein/pm/internal/logging"
)

// ErrEmptyCommand indicates there was no command to run.
var ErrEmptyCommand = errors.New("empty command")

// LaunchError reports a command that could not be started.
type LaunchError struct {
	Command string
	Path    string
	Err     error
}

func (e *LaunchError) Error() string {
	return fmt.Sprintf("launching %q for %s: %v", e.Command, e.Path, e.Err)
}

func (e *LaunchError) Unwrap() error {
	return e.Err
}

// NotFound reports whether the command binary could not be located.
func (e *LaunchError) NotFound() bool {
	return errors.Is(e.Err, exec.ErrNotFound)
}

// Process starts commands as detached child processes.
type Process struct {
	// Wait makes Launch block until the command exits. Off by default:
	// GUI editors return immediately anyway, and pm has nothing to do after.
	Wait bool
}

// Launch runs command with path appended as its last argument. command may
// carry its own arguments ("code -n"); it is split on whitespace, without
// shell quoting. The child inherits pm's stdio.
func (p Process) Launch(ctx context.Context, command, path string) error {
	fields := strings.Fields(command)
	if len(fields) == 0 {
		return &LaunchError{Command: command, Path: path, Err: ErrEmptyCommand}
	}

	args := append(fields[1:], path)
	cmd := exec.Command(fields[0], args...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	if err := cmd.Start(); err != nil {
		return &LaunchError{Command: command, Path: path, Err: err}
	}

	logging.FromContext(ctx).Info("launched", "command", command, "path", path, "pid", cmd.Process.Pid)

	if p.Wait {
		if err := cmd.Wait(); err != nil {
			return &LaunchError{Command: command, Path: path, Err: errors.Wrap(err, "waiting")}
		}
		return nil
	}

	if err := cmd.Process.Release(); err != nil {
		logging.FromContext(ctx).Debug("releasing child process", "err", err)
	}
	return nil
}
