// Package logging configures log/slog for the pm CLI.
//
// Diagnostics go to stderr and are quiet by default (Warn); user-facing
// messages are not logs and are written by package app instead. Use -v,
// -vv or -vvv (or PM_DEBUG) to see store and launch activity.
//
//	logger := logging.New(logging.Config{
//		Level:  logging.LevelFromVerbosity(2),
//		Format: logging.FormatText,
//	})
//	ctx = logging.NewContext(ctx, logger)
//	logging.FromContext(ctx).Debug("loaded settings", "path", path)
//
// In tests use [ForTest] so output lands in the test log.
package logging
