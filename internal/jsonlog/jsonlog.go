package jsonlog

import (
	"fmt"
	"io"
	"os"
	"runtime/debug"

	"github.com/rs/zerolog"
)

// Level type to represent the severity level for a log entry
type Level int8

const (
	LevelInfo Level = iota
	LevelError
	LevelFatal
	LevelOff
)

// String return human friendly string for the severity level
func (l Level) String() string {
	switch l {
	case LevelInfo:
		return "INFO"
	case LevelError:
		return "ERROR"
	case LevelFatal:
		return "FATAL"
	default:
		return ""
	}
}

func (l Level) zerologLevel() zerolog.Level {
	switch l {
	case LevelInfo:
		return zerolog.InfoLevel
	case LevelError:
		return zerolog.ErrorLevel
	case LevelFatal:
		return zerolog.FatalLevel
	default:
		return zerolog.Disabled
	}
}

// Logger writes one JSON object per line to its output destination, dropping
// entries below the minimum severity level.
type Logger struct {
	zl       zerolog.Logger
	minLevel Level
}

// NewLogger return a new Logger instance which writes log entries at or above
// a minimum severity level to a specific output destination
func NewLogger(out io.Writer, minLevel Level) *Logger {
	// SyncWriter serializes writes so that concurrent entries never interleave.
	zl := zerolog.New(zerolog.SyncWriter(out)).With().Timestamp().Logger()

	return &Logger{
		zl:       zl,
		minLevel: minLevel,
	}
}

// PrintInfo writes message and properties with LevelInfo severity.
func (l *Logger) PrintInfo(message string, properties map[string]string) {
	l.print(LevelInfo, message, properties)
}

// PrintError writes err and properties with LevelError severity.
func (l *Logger) PrintError(err error, properties map[string]string) {
	l.print(LevelError, err.Error(), properties)
}

// PrintFatal writes err and properties with LevelFatal severity, then exits.
func (l *Logger) PrintFatal(err error, properties map[string]string) {
	l.print(LevelFatal, err.Error(), properties)
	os.Exit(1)
}

// Printf and Fatalf let the logger stand in for goose's migration logger.
func (l *Logger) Printf(format string, v ...interface{}) {
	l.print(LevelInfo, fmt.Sprintf(format, v...), nil)
}

func (l *Logger) Fatalf(format string, v ...interface{}) {
	l.print(LevelFatal, fmt.Sprintf(format, v...), nil)
	os.Exit(1)
}

// print is internal method for writing the log entry
func (l *Logger) print(level Level, message string, properties map[string]string) {
	if level < l.minLevel || level >= LevelOff {
		return
	}

	event := l.zl.WithLevel(level.zerologLevel())

	if len(properties) > 0 {
		dict := zerolog.Dict()
		for k, v := range properties {
			dict.Str(k, v)
		}
		event.Dict("properties", dict)
	}

	// Include a stack trace for entries at the ERROR and FATAL level
	if level >= LevelError {
		event.Str("trace", string(debug.Stack()))
	}

	event.Msg(message)
}

// Write lets the logger be used as the destination of a standard library
// log.Logger, such as http.Server.ErrorLog. Entries are written at LevelError.
func (l *Logger) Write(message []byte) (n int, err error) {
	l.print(LevelError, string(message), nil)
	return len(message), nil
}
