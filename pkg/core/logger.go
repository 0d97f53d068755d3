package core

import (
	"io"
	"log/slog"
	"os"
	"strings"

	slogmulti "github.com/samber/slog-multi"
	"go.opentelemetry.io/contrib/bridges/otelslog"
)

const loggerName = "student-image-finder"

func newStdoutHandler(cfg Config, out io.Writer) slog.Handler {
	opts := &slog.HandlerOptions{Level: parseLevel(cfg.LogLevel)}
	if cfg.IsProd() {
		return slog.NewJSONHandler(out, opts)
	}
	return slog.NewTextHandler(out, opts)
}

// NewLoggerTo builds a logger without the otel bridge, writing to out.
func NewLoggerTo(cfg Config, out io.Writer) *slog.Logger {
	return slog.New(newStdoutHandler(cfg, out))
}

func NewLoggerWithOtel(cfg Config, otel OtelService) *slog.Logger {
	stdoutHandler := newStdoutHandler(cfg, os.Stdout)
	otelHandler := otelslog.NewHandler(
		loggerName,
		otelslog.WithLoggerProvider(otel.LoggerProvider()),
	)

	return slog.New(
		slogmulti.Fanout(
			stdoutHandler,
			otelHandler,
		),
	)
}

func parseLevel(level string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
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
