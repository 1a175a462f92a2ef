package logger

import (
	"context"
	"log/slog"
)

// ContextExtractor derives an attribute from a record's context.
type ContextExtractor func(ctx context.Context) (slog.Attr, bool)

// contextHandler appends extracted attributes to every record. An extracted
// key already present on the record is skipped.
type contextHandler struct {
	slog.Handler
	extractors []ContextExtractor
}

// NewContextHandler wraps next with extractors. Nil extractors are dropped;
// with none left next is returned as is.
func NewContextHandler(next slog.Handler, extractors ...ContextExtractor) slog.Handler {
	var kept []ContextExtractor
	for _, ex := range extractors {
		if ex != nil {
			kept = append(kept, ex)
		}
	}
	if len(kept) == 0 {
		return next
	}
	return &contextHandler{Handler: next, extractors: kept}
}

func (h *contextHandler) Handle(ctx context.Context, rec slog.Record) error {
	for _, ex := range h.extractors {
		attr, ok := ex(ctx)
		if !ok || hasKey(rec, attr.Key) {
			continue
		}
		rec.AddAttrs(attr)
	}
	return h.Handler.Handle(ctx, rec)
}

func (h *contextHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &contextHandler{Handler: h.Handler.WithAttrs(attrs), extractors: h.extractors}
}

func (h *contextHandler) WithGroup(name string) slog.Handler {
	return &contextHandler{Handler: h.Handler.WithGroup(name), extractors: h.extractors}
}

func hasKey(rec slog.Record, key string) bool {
	found := false
	rec.Attrs(func(a slog.Attr) bool {
		found = a.Key == key
		return !found
	})
	return found
}
