// Package errors provides error handling conventions for the pm CLI.
//
// It re-exports the constructors and inspectors of
// github.com/cockroachdb/errors so call sites import a single package, and
// defines [ExitError], which carries an exit code and an optional
// suggestion up to main.
//
// # Exit Codes
//
//   - ExitSuccess (0): Command completed successfully
//   - ExitUser (1): User-related error (corrupt settings file, bad flag, etc.)
//   - ExitSystem (2): System-related error (I/O, permissions, etc.)
//
// # ExitError
//
//	err := pmerrors.NewConfigError(cause, "/home/me/.projectman/settings.json")
//	var exitErr *pmerrors.ExitError
//	if errors.As(err, &exitErr) {
//	    fmt.Println("Suggestion:", exitErr.Suggestion)
//	    os.Exit(exitErr.Code)
//	}
package errors
