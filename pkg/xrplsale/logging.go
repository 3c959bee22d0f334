package xrplsale

import (
	"io"

	"github.com/rs/zerolog"
)

// Logger interface for logging.
type Logger interface {
	Debug(msg string, fields map[string]interface{})
	Info(msg string, fields map[string]interface{})
	Warn(msg string, fields map[string]interface{})
	Error(msg string, fields map[string]interface{})
}

// NewLogger returns a Logger writing structured output to w. It is the
// default Logger used by the HTTP layer when debug mode is enabled and no
// Logger is configured.
func NewLogger(w io.Writer) Logger {
	return &zerologLogger{
		log: zerolog.New(w).Level(zerolog.DebugLevel).With().Timestamp().Logger(),
	}
}

type zerologLogger struct {
	log zerolog.Logger
}

func (l *zerologLogger) Debug(msg string, fields map[string]interface{}) {
	l.log.Debug().Fields(fields).Msg(msg)
}

func (l *zerologLogger) Info(msg string, fields map[string]interface{}) {
	l.log.Info().Fields(fields).Msg(msg)
}

func (l *zerologLogger) Warn(msg string, fields map[string]interface{}) {
	l.log.Warn().Fields(fields).Msg(msg)
}

func (l *zerologLogger) Error(msg string, fields map[string]interface{}) {
	l.log.Error().Fields(fields).Msg(msg)
}
