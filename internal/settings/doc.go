// Package settings owns the project catalogue: the single JSON document at
// ~/.projectman/settings.json holding the global open command and the
// ordered list of named projects.
//
// # Document
//
//	{
//	  "commandToOpen": "code",
//	  "projects": [
//	    {"name": "demo", "path": "/work/demo", "editor": "code"}
//	  ]
//	}
//
// Project names are unique and matched exactly (case-sensitive). The order
// of projects is insertion order and is the order shown by selectors.
//
// # Mutations
//
// [Document.Insert], [Document.Remove] and [Document.UpdateEditor] are pure:
// they return a new Document and never touch the disk. Callers compose the
// checks they need and then persist once with [Store.Save]. A failed
// mutation returns the receiver's value unchanged together with one of
// [ErrDuplicateName], [ErrNotFound] or [ErrEmptyName].
//
// # Persistence
//
// [Store.Load] bootstraps a default document when the file is missing.
// A file that exists but cannot be read, parsed or validated is reported
// as a [*ConfigError]; it is never replaced by defaults. [Store.Save]
// rewrites the whole file atomically (temp file + rename). There is no
// locking across processes: concurrent runs are last-writer-wins.
package settings
