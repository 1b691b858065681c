// Package logging builds the slog.Logger used throughout voxelkit and
// carries request-scoped attributes through a context.Context so they are
// merged into every record emitted with it.
package logging

import (
	"context"
	"io"
	"log/slog"
)

type ctxKey struct{}

// ctxAttrs is a slog.Handler that merges attributes stashed on the context
// via AppendCtx into every record it handles, before delegating to the
// wrapped handler.
type ctxAttrs struct {
	slog.Handler
}

func (h ctxAttrs) Handle(ctx context.Context, r slog.Record) error {
	if attrs, ok := ctx.Value(ctxKey{}).([]slog.Attr); ok {
		r.AddAttrs(attrs...)
	}
	return h.Handler.Handle(ctx, r)
}

func (h ctxAttrs) WithAttrs(attrs []slog.Attr) slog.Handler {
	return ctxAttrs{h.Handler.WithAttrs(attrs)}
}

func (h ctxAttrs) WithGroup(name string) slog.Handler {
	return ctxAttrs{h.Handler.WithGroup(name)}
}

// Logger builds a *slog.Logger writing to w at level, as JSON if jsonFormat
// is set and as human-readable text otherwise. The returned logger merges
// any attributes a caller attached to its context with AppendCtx into every
// record.
func Logger(w io.Writer, jsonFormat bool, level slog.Level) *slog.Logger {
	opts := &slog.HandlerOptions{Level: level}
	var base slog.Handler
	if jsonFormat {
		base = slog.NewJSONHandler(w, opts)
	} else {
		base = slog.NewTextHandler(w, opts)
	}
	return slog.New(ctxAttrs{base})
}

// AppendCtx returns a context carrying attrs alongside any already attached
// by an earlier AppendCtx call; loggers built with Logger merge them into
// every record emitted with the returned context.
func AppendCtx(ctx context.Context, attrs ...slog.Attr) context.Context {
	existing, _ := ctx.Value(ctxKey{}).([]slog.Attr)
	merged := make([]slog.Attr, 0, len(existing)+len(attrs))
	merged = append(merged, existing...)
	merged = append(merged, attrs...)
	return context.WithValue(ctx, ctxKey{}, merged)
}
