package parser

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"
)

// contextKey is a custom type for context keys to satisfy staticcheck SA1029
type contextKey string

func TestNopLogger(t *testing.T) {
	t.Run("implements Logger interface", func(t *testing.T) {
		var _ Logger = NopLogger{}
	})

	t.Run("methods do nothing", func(t *testing.T) {
		l := NopLogger{}
		// Should not panic
		l.Debug("test message", "key", "value")
		l.Info("test message", "key", "value")
		l.Warn("test message", "key", "value")
		l.Error("test message", "key", "value")
	})

	t.Run("With returns same NopLogger", func(t *testing.T) {
		l := NopLogger{}
		l2 := l.With("key", "value")
		_, ok := l2.(NopLogger)
		if !ok {
			t.Error("With should return NopLogger")
		}
	})
}

func TestSlogAdapter(t *testing.T) {
	t.Run("implements Logger interface", func(t *testing.T) {
		var _ Logger = (*SlogAdapter)(nil)
	})

	t.Run("NewSlogAdapter with nil uses default", func(t *testing.T) {
		adapter := NewSlogAdapter(nil)
		if adapter.logger == nil {
			t.Error("adapter.logger should not be nil")
		}
	})

	t.Run("Debug logs at debug level", func(t *testing.T) {
		var buf bytes.Buffer
		handler := slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})
		adapter := NewSlogAdapter(slog.New(handler))

		adapter.Debug("test debug", "foo", "bar")
		output := buf.String()
		if !strings.Contains(output, "DEBUG") {
			t.Errorf("expected DEBUG level, got: %s", output)
		}
		if !strings.Contains(output, "foo=bar") {
			t.Errorf("expected foo=bar attribute, got: %s", output)
		}
	})

	t.Run("Info logs at info level", func(t *testing.T) {
		var buf bytes.Buffer
		handler := slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelInfo})
		adapter := NewSlogAdapter(slog.New(handler))

		adapter.Info("test info", "count", 42)
		output := buf.String()
		if !strings.Contains(output, "INFO") {
			t.Errorf("expected INFO level, got: %s", output)
		}
	})

	t.Run("Warn logs at warn level", func(t *testing.T) {
		var buf bytes.Buffer
		handler := slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelWarn})
		adapter := NewSlogAdapter(slog.New(handler))

		adapter.Warn("test warn")
		if !strings.Contains(buf.String(), "WARN") {
			t.Errorf("expected WARN level, got: %s", buf.String())
		}
	})

	t.Run("Error logs at error level", func(t *testing.T) {
		var buf bytes.Buffer
		handler := slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelError})
		adapter := NewSlogAdapter(slog.New(handler))

		adapter.Error("test error")
		if !strings.Contains(buf.String(), "ERROR") {
			t.Errorf("expected ERROR level, got: %s", buf.String())
		}
	})

	t.Run("With adds attributes to every log", func(t *testing.T) {
		var buf bytes.Buffer
		handler := slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})
		adapter := NewSlogAdapter(slog.New(handler))

		scoped := adapter.With("source", "api.raml")
		scoped.Debug("scoped message")
		if !strings.Contains(buf.String(), "source=api.raml") {
			t.Errorf("expected source=api.raml attribute, got: %s", buf.String())
		}
	})
}

func TestContextLogger(t *testing.T) {
	t.Run("implements Logger interface", func(t *testing.T) {
		var _ Logger = (*ContextLogger)(nil)
	})

	t.Run("delegates to wrapped logger", func(t *testing.T) {
		var buf bytes.Buffer
		handler := slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})
		adapter := NewSlogAdapter(slog.New(handler))

		ctx := context.WithValue(context.Background(), contextKey("request"), "abc123")
		cl := NewContextLogger(adapter, ctx)
		cl.Debug("delegated message", "key", "value")
		if !strings.Contains(buf.String(), "delegated message") {
			t.Errorf("expected delegated message, got: %s", buf.String())
		}
	})

	t.Run("Context returns the wrapped context", func(t *testing.T) {
		ctx := context.WithValue(context.Background(), contextKey("request"), "abc123")
		cl := NewContextLogger(NopLogger{}, ctx)
		if cl.Context().Value(contextKey("request")) != "abc123" {
			t.Error("Context should return the wrapped context")
		}
	})

	t.Run("With preserves the context", func(t *testing.T) {
		ctx := context.WithValue(context.Background(), contextKey("request"), "abc123")
		cl := NewContextLogger(NopLogger{}, ctx)
		scoped, ok := cl.With("key", "value").(*ContextLogger)
		if !ok {
			t.Fatal("With should return a *ContextLogger")
		}
		if scoped.Context().Value(contextKey("request")) != "abc123" {
			t.Error("With should preserve the context")
		}
	})
}

func TestParserLogDefault(t *testing.T) {
	p := New()
	if _, ok := p.log().(NopLogger); !ok {
		t.Error("log() should return NopLogger when no logger is configured")
	}
}
