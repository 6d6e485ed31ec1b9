package obs

import (
	"io"
	"time"

	"github.com/rs/zerolog"
)

type Level int

const (
	Debug Level = iota
	Info
	Warn
	Error
)

func (l Level) String() string {
	switch l {
	case Debug:
		return "DEBUG"
	case Info:
		return "INFO"
	case Warn:
		return "WARN"
	case Error:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

func (l Level) zerolog() zerolog.Level {
	switch l {
	case Debug:
		return zerolog.DebugLevel
	case Info:
		return zerolog.InfoLevel
	case Warn:
		return zerolog.WarnLevel
	default:
		return zerolog.ErrorLevel
	}
}

// SyslogTag identifies the server's lines in the system log.
const SyslogTag = "LittleHTTP"

// Logger is the logging capability handed to each component.
type Logger interface {
	Logf(level Level, format string, args ...interface{})
}

// NopLogger discards all logs.
type NopLogger struct{}

func (NopLogger) Logf(level Level, format string, args ...interface{}) {}

// ZeroLogger adapts a zerolog logger.
type ZeroLogger struct {
	L zerolog.Logger
}

func (z ZeroLogger) Logf(level Level, format string, args ...interface{}) {
	z.L.WithLevel(level.zerolog()).Msgf(format, args...)
}

// NewLogger returns the logger for the run mode. In debug (foreground)
// mode lines go to w in console form; otherwise they go to the system log.
func NewLogger(debug bool, w io.Writer) (ZeroLogger, error) {
	if debug {
		cw := zerolog.ConsoleWriter{Out: w, TimeFormat: time.RFC3339, NoColor: true}
		return ZeroLogger{L: zerolog.New(cw).Level(zerolog.DebugLevel).With().Timestamp().Logger()}, nil
	}
	zl, err := newSyslogLogger(SyslogTag)
	if err != nil {
		return ZeroLogger{}, err
	}
	return ZeroLogger{L: zl.Level(zerolog.InfoLevel)}, nil
}
