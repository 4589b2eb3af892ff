// Package logger builds the process logger: zerolog on stderr, with log/slog
// routed through it.
package logger

import (
	"io"
	"log/slog"
	"time"

	"github.com/phsym/zeroslog"
	"github.com/rs/zerolog"
)

// New returns a console logger at the given level. An unknown or empty level
// falls back to warn.
func New(w io.Writer, level string) zerolog.Logger {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil || level == "" {
		lvl = zerolog.WarnLevel
	}

	output := zerolog.ConsoleWriter{Out: w, TimeFormat: time.Stamp}
	return zerolog.New(output).Level(lvl).With().Timestamp().Logger()
}

// SetDefault makes log as the slog default so packages logging through slog
// end up in the same stream.
func SetDefault(log zerolog.Logger) {
	slog.SetDefault(slog.New(
		zeroslog.NewHandler(log, &zeroslog.HandlerOptions{Level: slogLevel(log.GetLevel())}),
	))
}

func slogLevel(l zerolog.Level) slog.Level {
	switch {
	case l <= zerolog.DebugLevel:
		return slog.LevelDebug
	case l == zerolog.InfoLevel:
		return slog.LevelInfo
	case l == zerolog.WarnLevel:
		return slog.LevelWarn
	default:
		return slog.LevelError
	}
}
