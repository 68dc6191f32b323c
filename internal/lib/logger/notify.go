package logger

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
)

// notifyHandler wraps a slog.Handler and forwards a formatted copy of
// qualifying records to a Notifier. Forwarding is fire-and-forget; a slow
// notifier must never block request logging.
type notifyHandler struct {
	next     slog.Handler
	notifier Notifier
	minLevel slog.Level
	attrs    []slog.Attr
}

func (h *notifyHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.next.Enabled(ctx, level)
}

func (h *notifyHandler) Handle(ctx context.Context, record slog.Record) error {
	if record.Level >= h.minLevel && h.notifier != nil {
		go h.notifier.Notify(record.Level, h.format(record))
	}
	return h.next.Handle(ctx, record)
}

func (h *notifyHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &notifyHandler{
		next:     h.next.WithAttrs(attrs),
		notifier: h.notifier,
		minLevel: h.minLevel,
		attrs:    append(h.attrs[:len(h.attrs):len(h.attrs)], attrs...),
	}
}

func (h *notifyHandler) WithGroup(name string) slog.Handler {
	return &notifyHandler{
		next:     h.next.WithGroup(name),
		notifier: h.notifier,
		minLevel: h.minLevel,
		attrs:    h.attrs,
	}
}

func (h *notifyHandler) format(record slog.Record) string {
	var b strings.Builder
	b.WriteString(record.Level.String())
	b.WriteString(": ")
	b.WriteString(record.Message)
	for _, attr := range h.attrs {
		b.WriteString(fmt.Sprintf("\n%s=%v", attr.Key, attr.Value))
	}
	record.Attrs(func(attr slog.Attr) bool {
		b.WriteString(fmt.Sprintf("\n%s=%v", attr.Key, attr.Value))
		return true
	})
	return b.String()
}
