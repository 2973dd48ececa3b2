// Package app implements the pm use-cases: open, add, remove, seteditor,
// list and help.
//
// Each use-case loads the settings document, asks the resolver or the
// prompts for whatever it needs, applies at most one pure mutation and
// saves at most once. Collaborators that touch the terminal or start
// processes are injected, so the use-cases run in tests against fakes and
// a temporary settings file.
//
// This package is the only place that writes user-facing text. Expected
// outcomes such as an empty catalogue, a duplicate name or an unknown
// project print guidance and return nil. Failures that should stop the
// process are returned as *errors.ExitError values carrying a suggestion.
package app
