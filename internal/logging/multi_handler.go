package logging

import (
	"context"
	"errors"
	"log/slog"
)

// Tee writes each record to every handler that accepts its level. pm uses
// it to send the console stream and the --log-file JSON stream side by side.
type Tee []slog.Handler

// NewTee returns h itself when only one handler is given.
func NewTee(h ...slog.Handler) slog.Handler {
	if len(h) == 1 {
		return h[0]
	}
	return Tee(h)
}

func (t Tee) Enabled(ctx context.Context, level slog.Level) bool {
	for _, h := range t {
		if h.Enabled(ctx, level) {
			return true
		}
	}
	return false
}

// Handle returns every sink error joined, so a failing log file does not
// hide console output.
func (t Tee) Handle(ctx context.Context, r slog.Record) error {
	var errs []error
	for _, h := range t {
		if !h.Enabled(ctx, r.Level) {
			continue
		}
		errs = append(errs, h.Handle(ctx, r.Clone()))
	}
	return errors.Join(errs...)
}

func (t Tee) WithAttrs(attrs []slog.Attr) slog.Handler {
	return t.each(func(h slog.Handler) slog.Handler { return h.WithAttrs(attrs) })
}

func (t Tee) WithGroup(name string) slog.Handler {
	if name == "" {
		return t
	}
	return t.each(func(h slog.Handler) slog.Handler { return h.WithGroup(name) })
}

func (t Tee) each(fn func(slog.Handler) slog.Handler) Tee {
	out := make(Tee, len(t))
	for i, h := range t {
		out[i] = fn(h)
	}
	return out
}
