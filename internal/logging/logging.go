package logging

import (
	"context"
	"log/slog"
	"os"
	"runtime"
	"strings"
	"time"

	"github.com/getsentry/sentry-go"
)

// Setup configures the global slog default with a JSON handler.
// Log level is controlled by the LOG_LEVEL environment variable
// (DEBUG, INFO, WARN, ERROR). Defaults to INFO.
// ERROR-level logs automatically include a stack trace and, when sentryDSN
// is non-empty, are reported to Sentry.
func Setup(sentryDSN string) {
	level := parseLevel(os.Getenv("LOG_LEVEL"))
	json := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level:     level,
		AddSource: true,
	})

	sentryEnabled := false
	if sentryDSN != "" {
		if err := sentry.Init(sentry.ClientOptions{Dsn: sentryDSN, AttachStacktrace: true}); err != nil {
			slog.New(json).Error("sentry init failed", "error", err)
		} else {
			sentryEnabled = true
		}
	}

	slog.SetDefault(slog.New(&stackHandler{Handler: json, sentry: sentryEnabled}))
}

// Flush waits for buffered Sentry events to be delivered.
func Flush() {
	sentry.Flush(2 * time.Second)
}

func parseLevel(s string) slog.Level {
	switch strings.ToUpper(s) {
	case "DEBUG":
		return slog.LevelDebug
	case "WARN", "WARNING":
		return slog.LevelWarn
	case "ERROR":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// Fatal logs at Error level and exits with code 1.
func Fatal(msg string, args ...any) {
	slog.Error(msg, args...)
	Flush()
	os.Exit(1)
}

// stackHandler wraps a slog.Handler and appends a stack trace for ERROR+.
type stackHandler struct {
	slog.Handler
	sentry bool
	attrs  []slog.Attr
}

func (h *stackHandler) Handle(ctx context.Context, r slog.Record) error {
	if r.Level >= slog.LevelError {
		buf := make([]byte, 4096)
		n := runtime.Stack(buf, false)
		r.AddAttrs(slog.String("stacktrace", string(buf[:n])))
		if h.sentry {
			captureRecord(h.attrs, r)
		}
	}
	return h.Handler.Handle(ctx, r)
}

func (h *stackHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	merged := append(append([]slog.Attr{}, h.attrs...), attrs...)
	return &stackHandler{Handler: h.Handler.WithAttrs(attrs), sentry: h.sentry, attrs: merged}
}

func (h *stackHandler) WithGroup(name string) slog.Handler {
	return &stackHandler{Handler: h.Handler.WithGroup(name), sentry: h.sentry, attrs: h.attrs}
}

// captureRecord sends r to Sentry with its attributes as extras.
func captureRecord(base []slog.Attr, r slog.Record) {
	sentry.WithScope(func(scope *sentry.Scope) {
		for _, a := range base {
			scope.SetExtra(a.Key, a.Value.String())
		}
		r.Attrs(func(a slog.Attr) bool {
			if a.Key != "stacktrace" {
				scope.SetExtra(a.Key, a.Value.String())
			}
			return true
		})
		sentry.CaptureMessage(r.Message)
	})
}
