// Package logger provides a structured, levelled logger built on log/slog.
//
// Output goes to stderr so commands that print a result on stdout (the
// seeder) keep stdout clean. WithCtx returns the request-scoped logger that
// middleware.Logger injects, pre-tagged with the request id:
//
//	log := logger.WithCtx(r.Context())
//	log.Info("product created", "id", id)
//	// → time=... level=INFO msg="product created" request_id=a1b2c3d4 id=65f0...
package logger

import (
	"context"
	"io"
	"log/slog"
	"os"

	"github.com/shashiranjanraj/catalog/config"
)

var L *slog.Logger

func init() {
	Init(os.Stderr)
}

// Init rebuilds the base logger writing to w. Production environments get
// JSON lines, everything else the human-readable text handler.
func Init(w io.Writer) {
	var handler slog.Handler

	switch config.AppEnv() {
	case "production", "prod":
		handler = slog.NewJSONHandler(w, &slog.HandlerOptions{Level: slog.LevelInfo})
	default:
		handler = slog.NewTextHandler(w, &slog.HandlerOptions{Level: slog.LevelDebug})
	}

	L = slog.New(handler)
	slog.SetDefault(L)
}

type ctxKey struct{}

// WithCtx returns the logger stored in ctx by InjectLogger, or the base
// logger when there is none.
func WithCtx(ctx context.Context) *slog.Logger {
	if log, ok := ctx.Value(ctxKey{}).(*slog.Logger); ok && log != nil {
		return log
	}
	return L
}

// InjectLogger stores log into ctx. Called by the Logger middleware.
func InjectLogger(ctx context.Context, log *slog.Logger) context.Context {
	return context.WithValue(ctx, ctxKey{}, log)
}

func Debug(msg string, args ...any) { L.Debug(msg, args...) }

func Info(msg string, args ...any) { L.Info(msg, args...) }

func Warn(msg string, args ...any) { L.Warn(msg, args...) }

func Error(msg string, args ...any) { L.Error(msg, args...) }
