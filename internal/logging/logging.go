// Package logging builds the process-wide structured logger.
package logging

import (
	"context"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	charmlog "github.com/charmbracelet/log"
)

// New returns a slog.Logger writing JSON in production and human-readable
// lines everywhere else.
func New(appEnv, level string) *slog.Logger {
	return newLogger(os.Stderr, appEnv, level)
}

func newLogger(w io.Writer, appEnv, level string) *slog.Logger {
	lvl := parseLevel(level)

	if appEnv == "production" {
		return slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{Level: lvl}))
	}

	h := charmlog.NewWithOptions(w, charmlog.Options{
		ReportTimestamp: true,
		TimeFormat:      time.Kitchen,
		Level:           charmlog.Level(lvl),
	})
	return slog.New(textHandler{h})
}

// textHandler feeds attributes to the charm logger under keys it does not
// reserve. The text formatter consumes "time", "level", "caller", "prefix"
// and "msg" itself and silently drops attributes using those names.
type textHandler struct {
	slog.Handler
}

func (h textHandler) Handle(ctx context.Context, r slog.Record) error {
	out := slog.NewRecord(r.Time, r.Level, r.Message, r.PC)
	r.Attrs(func(a slog.Attr) bool {
		out.AddAttrs(renameReserved(a))
		return true
	})
	return h.Handler.Handle(ctx, out)
}

func (h textHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	renamed := make([]slog.Attr, len(attrs))
	for i, a := range attrs {
		renamed[i] = renameReserved(a)
	}
	return textHandler{h.Handler.WithAttrs(renamed)}
}

func (h textHandler) WithGroup(name string) slog.Handler {
	return textHandler{h.Handler.WithGroup(name)}
}

func renameReserved(a slog.Attr) slog.Attr {
	a.Value = a.Value.Resolve()
	switch a.Key {
	case charmlog.TimestampKey, charmlog.LevelKey, charmlog.CallerKey, charmlog.PrefixKey, charmlog.MessageKey:
		a.Key += "_"
	}
	return a
}

func parseLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
