package logger

import (
	"io"
	"os"
	"sync"
)

// Dependency injection points for testing outputs.
var (
	outStdout io.Writer = os.Stdout
	outStderr io.Writer = os.Stderr
)

// global state
var (
	defaultOnce   sync.Once
	defaultLogger *Logger
)

// Default returns the process-wide Logger. It is created on first use
// from the LOG_LEVEL environment variable, see NewFromEnv.
func Default() *Logger {
	defaultOnce.Do(func() {
		defaultLogger = NewFromEnv(WithStdout(outStdout), WithStderr(outStderr))
	})
	return defaultLogger
}

// SetLevel replaces the threshold of the default Logger.
func SetLevel(level *Level) { Default().SetLevel(level) }

// GetLevel returns the threshold of the default Logger.
func GetLevel() *Level { return Default().Level() }

// SetPrintTimestamps enables or disables timestamps on the default Logger.
func SetPrintTimestamps(v bool) { Default().SetPrintTimestamps(v) }

// SetPrintJSON enables or disables JSON lines on the default Logger.
func SetPrintJSON(v bool) { Default().SetPrintJSON(v) }

// SetTimeFormat replaces the timestamp pattern of the default Logger.
func SetTimeFormat(pattern string) { Default().SetTimeFormat(pattern) }

// GetTimeFormat returns the timestamp pattern of the default Logger.
func GetTimeFormat() string { return Default().TimeFormat() }

// Format renders a text line with the default Logger.
func Format(level *Level, message any) string { return Default().Format(level, message) }

// FormatWithoutTime renders a text line without a timestamp.
func FormatWithoutTime(level *Level, message any) string {
	return Default().FormatWithoutTime(level, message)
}

// FormatJSON renders a JSON line with the default Logger.
func FormatJSON(level *Level, message any) string { return Default().FormatJSON(level, message) }

// Log writes message at level through the default Logger.
func Log(level *Level, message any) (string, bool) { return Default().Log(level, message) }

// Error logs message at ErrorLevel through the default Logger.
func Error(message any) (string, bool) { return Default().Error(message) }

// Warn logs message at WarnLevel through the default Logger.
func Warn(message any) (string, bool) { return Default().Warn(message) }

// Info logs message at InfoLevel through the default Logger.
func Info(message any) (string, bool) { return Default().Info(message) }

// Debug logs message at DebugLevel through the default Logger.
func Debug(message any) (string, bool) { return Default().Debug(message) }

// Errorf logs a formatted message at ErrorLevel through the default Logger.
func Errorf(format string, v ...any) (string, bool) { return Default().Errorf(format, v...) }

// Warnf logs a formatted message at WarnLevel through the default Logger.
func Warnf(format string, v ...any) (string, bool) { return Default().Warnf(format, v...) }

// Infof logs a formatted message at InfoLevel through the default Logger.
func Infof(format string, v ...any) (string, bool) { return Default().Infof(format, v...) }

// Debugf logs a formatted message at DebugLevel through the default Logger.
func Debugf(format string, v ...any) (string, bool) { return Default().Debugf(format, v...) }

// Status logs message at a level chosen from an HTTP status code.
func Status(code int, message any) (string, bool) { return Default().Status(code, message) }
