package logger

import (
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

type Logger interface {
	Infof(format string, v ...any)
	Errorf(format string, v ...any)
}

type zeroLogger struct {
	log zerolog.Logger
}

// New builds a console logger. LOG_LEVEL selects the level; anything
// unrecognized falls back to info.
func New() Logger {
	level := zerolog.InfoLevel
	switch strings.ToLower(os.Getenv("LOG_LEVEL")) {
	case "debug":
		level = zerolog.DebugLevel
	case "warn", "warning":
		level = zerolog.WarnLevel
	case "error":
		level = zerolog.ErrorLevel
	}
	out := zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339}
	return &zeroLogger{log: zerolog.New(out).Level(level).With().Timestamp().Logger()}
}

func (l *zeroLogger) Infof(format string, v ...any)  { l.log.Info().Msgf(format, v...) }
func (l *zeroLogger) Errorf(format string, v ...any) { l.log.Error().Msgf(format, v...) }
