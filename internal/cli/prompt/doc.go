// Package prompt provides the interactive collaborators used by the
// use-cases: single selection from a list of options and free text input.
//
// On a terminal, selection uses a fuzzy finder and text input uses a
// bubbletea input box. When stdin or stdout is not a terminal both fall
// back to line-based prompts that read one answer per line, which is also
// what the tests drive.
package prompt
