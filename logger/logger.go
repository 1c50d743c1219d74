package logger

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"github.com/hashicorp/go-multierror"
	"go.uber.org/atomic"
)

// Options holds the settings a Logger is created with.
type Options struct {
	stdout          io.Writer
	stderr          io.Writer
	level           *Level
	printTimestamps bool
	printJSON       bool
	timeFormat      string
	colors          bool
	journal         bool
	clock           func() time.Time
	hooks           []Hook
}

// Option modifies Options.
type Option func(*Options)

// WithStdout sets the stream used by levels with the Stdout scope.
func WithStdout(w io.Writer) Option {
	return func(o *Options) { o.stdout = w }
}

// WithStderr sets the stream used by levels with the Stderr scope.
func WithStderr(w io.Writer) Option {
	return func(o *Options) { o.stderr = w }
}

// WithLevel sets the initial threshold.
func WithLevel(l *Level) Option {
	return func(o *Options) { o.level = l }
}

// WithPrintTimestamps enables or disables the timestamp prefix.
func WithPrintTimestamps(v bool) Option {
	return func(o *Options) { o.printTimestamps = v }
}

// WithPrintJSON enables or disables JSON lines.
func WithPrintJSON(v bool) Option {
	return func(o *Options) { o.printJSON = v }
}

// WithTimeFormat sets the moment-style timestamp pattern, such as
// "YYYY-MM-DD HH:mm:ss".
func WithTimeFormat(pattern string) Option {
	return func(o *Options) { o.timeFormat = pattern }
}

// WithColors enables or disables ANSI decoration.
func WithColors(v bool) Option {
	return func(o *Options) { o.colors = v }
}

// WithJournalPrefix prefixes every written line with its syslog
// priority, as understood by systemd-journald.
func WithJournalPrefix(v bool) Option {
	return func(o *Options) { o.journal = v }
}

// WithClock replaces time.Now as the source of timestamps.
func WithClock(now func() time.Time) Option {
	return func(o *Options) { o.clock = now }
}

// WithHooks registers hooks fired after every emitted line.
func WithHooks(hooks ...Hook) Option {
	return func(o *Options) { o.hooks = append(o.hooks, hooks...) }
}

// Logger filters, formats and writes leveled lines.
// It is safe for concurrent use.
type Logger struct {
	level           atomic.Value // *Level
	printTimestamps atomic.Bool
	printJSON       atomic.Bool
	timeFormat      atomic.String
	colors          atomic.Bool

	// mu serializes writes so lines never interleave.
	mu      sync.Mutex
	stdout  io.Writer
	stderr  io.Writer
	journal bool
	clock   func() time.Time
	hooks   hooks
}

// New returns a Logger writing to os.Stdout and os.Stderr at the default
// level, with timestamps and colors on and JSON off.
func New(opts ...Option) *Logger {
	o := Options{
		stdout:          os.Stdout,
		stderr:          os.Stderr,
		level:           DefaultLevel(),
		printTimestamps: true,
		timeFormat:      DefaultTimeFormat,
		colors:          true,
		clock:           time.Now,
	}
	for _, opt := range opts {
		opt(&o)
	}

	l := &Logger{
		stdout:  o.stdout,
		stderr:  o.stderr,
		journal: o.journal,
		clock:   o.clock,
		hooks:   o.hooks,
	}
	l.SetLevel(o.level)
	l.printTimestamps.Store(o.printTimestamps)
	l.printJSON.Store(o.printJSON)
	l.timeFormat.Store(o.timeFormat)
	l.colors.Store(o.colors)
	return l
}

// SetLevel replaces the threshold. A nil level restores the default.
func (l *Logger) SetLevel(level *Level) {
	if level == nil {
		level = DefaultLevel()
	}
	l.level.Store(level)
}

// Level returns the current threshold.
func (l *Logger) Level() *Level {
	return l.level.Load().(*Level)
}

// SetPrintTimestamps enables or disables the timestamp prefix.
func (l *Logger) SetPrintTimestamps(v bool) { l.printTimestamps.Store(v) }

// PrintTimestamps reports whether lines carry a timestamp.
func (l *Logger) PrintTimestamps() bool { return l.printTimestamps.Load() }

// SetPrintJSON enables or disables JSON lines.
func (l *Logger) SetPrintJSON(v bool) { l.printJSON.Store(v) }

// PrintJSON reports whether lines are rendered as JSON.
func (l *Logger) PrintJSON() bool { return l.printJSON.Load() }

// SetTimeFormat replaces the timestamp pattern.
func (l *Logger) SetTimeFormat(pattern string) { l.timeFormat.Store(pattern) }

// TimeFormat returns the timestamp pattern.
func (l *Logger) TimeFormat() string { return l.timeFormat.Load() }

// SetColors enables or disables ANSI decoration of text lines.
func (l *Logger) SetColors(v bool) { l.colors.Store(v) }

// Colors reports whether text lines are decorated.
func (l *Logger) Colors() bool { return l.colors.Load() }

// Enabled reports whether a message at the given level passes the
// threshold. Levels are compared only by priority, so a custom level with
// a negative priority is shown under every built-in threshold.
func (l *Logger) Enabled(level *Level) bool {
	return level != nil && l.Level().Priority() >= level.Priority()
}

// Format renders message as a text line, prefixed with a timestamp when
// timestamps are enabled. A nil level renders as an empty string.
func (l *Logger) Format(level *Level, message any) string {
	return l.format(level, message, false)
}

// FormatWithoutTime renders message as a text line and never adds a
// timestamp, whatever the logger setting.
func (l *Logger) FormatWithoutTime(level *Level, message any) string {
	return l.format(level, message, true)
}

func (l *Logger) format(level *Level, message any, notime bool) string {
	if level == nil {
		return ""
	}
	line := l.decorate(level.decorator, level.tag()) + " " + fmt.Sprint(message)
	if !notime && l.PrintTimestamps() {
		line = "[" + l.decorate(timestampStyle, l.now()) + "] " + line
	}
	return line
}

// FormatJSON renders message as a JSON object. Keys are always in the
// order time, level, message; time is left out when timestamps are
// disabled. The message keeps its JSON type; values that cannot be
// encoded are written as their fmt.Sprint string. A nil level renders as
// an empty string.
func (l *Logger) FormatJSON(level *Level, message any) string {
	if level == nil {
		return ""
	}
	var b bytes.Buffer
	b.WriteByte('{')
	if l.PrintTimestamps() {
		ts, _ := marshalJSON(l.now())
		b.WriteString(`"time":`)
		b.Write(ts)
		b.WriteByte(',')
	}
	lv, _ := marshalJSON(level.view())
	b.WriteString(`"level":`)
	b.Write(lv)
	msg, err := marshalJSON(message)
	if err != nil {
		msg, _ = marshalJSON(fmt.Sprint(message))
	}
	b.WriteString(`,"message":`)
	b.Write(msg)
	b.WriteByte('}')
	return b.String()
}

// Log writes message at the given level if it passes the threshold and
// returns the rendered line without its terminator. The boolean result is
// false, and nothing is written, when the message is filtered out.
func (l *Logger) Log(level *Level, message any) (string, bool) {
	if !l.Enabled(level) {
		return "", false
	}
	var line string
	if l.PrintJSON() {
		line = l.FormatJSON(level, message)
	} else {
		line = l.Format(level, message)
	}
	if err := l.emit(level, line); err != nil {
		fmt.Fprintln(os.Stderr, err)
	}
	return line, true
}

// emit writes the line to the level's stream and fires the hooks.
func (l *Logger) emit(level *Level, line string) error {
	out := l.stdout
	if level.Scope() == Stderr {
		out = l.stderr
	}

	buf := make([]byte, 0, len(line)+4)
	if l.journal {
		buf = append(buf, syslogPrefix(level)...)
	}
	buf = append(buf, line...)
	buf = append(buf, '\n')

	var merr *multierror.Error
	l.mu.Lock()
	_, err := out.Write(buf)
	l.mu.Unlock()
	if err != nil {
		merr = multierror.Append(merr, fmt.Errorf("log %s: failed to write message: %w", level, err))
	}
	if err := l.hooks.fire(level); err != nil {
		merr = multierror.Append(merr, fmt.Errorf("log %s: failed to fire hooks: %w", level, err))
	}
	return merr.ErrorOrNil()
}

// Error logs message at ErrorLevel.
func (l *Logger) Error(message any) (string, bool) { return l.Log(ErrorLevel, message) }

// Warn logs message at WarnLevel.
func (l *Logger) Warn(message any) (string, bool) { return l.Log(WarnLevel, message) }

// Info logs message at InfoLevel.
func (l *Logger) Info(message any) (string, bool) { return l.Log(InfoLevel, message) }

// Debug logs message at DebugLevel.
func (l *Logger) Debug(message any) (string, bool) { return l.Log(DebugLevel, message) }

// Errorf logs a message formatted with fmt.Sprintf at ErrorLevel.
func (l *Logger) Errorf(format string, v ...any) (string, bool) {
	return l.logf(ErrorLevel, format, v...)
}

// Warnf logs a message formatted with fmt.Sprintf at WarnLevel.
func (l *Logger) Warnf(format string, v ...any) (string, bool) {
	return l.logf(WarnLevel, format, v...)
}

// Infof logs a message formatted with fmt.Sprintf at InfoLevel.
func (l *Logger) Infof(format string, v ...any) (string, bool) {
	return l.logf(InfoLevel, format, v...)
}

// Debugf logs a message formatted with fmt.Sprintf at DebugLevel.
func (l *Logger) Debugf(format string, v ...any) (string, bool) {
	return l.logf(DebugLevel, format, v...)
}

func (l *Logger) logf(level *Level, format string, v ...any) (string, bool) {
	// Skip the Sprintf work for filtered messages.
	if !l.Enabled(level) {
		return "", false
	}
	return l.Log(level, fmt.Sprintf(format, v...))
}

// Status logs message with a level chosen from an HTTP status code:
// 5xx as error, 4xx as warn and everything else as info.
//
// Example:
//
//	l.Status(200, "api call successful")
//	l.Status(404, "resource not found")
func (l *Logger) Status(code int, message any) (string, bool) {
	return l.Log(statusCodeToLevel(code), fmt.Sprintf("[%d] %v", code, message))
}

// statusCodeToLevel maps HTTP status codes to log levels.
// 1xx, 2xx, 3xx -> INFO, 4xx -> WARN, 5xx -> ERROR
func statusCodeToLevel(code int) *Level {
	switch {
	case code >= 500:
		return ErrorLevel
	case code >= 400:
		return WarnLevel
	default:
		return InfoLevel
	}
}

func (l *Logger) decorate(d Decorator, s string) string {
	if d == nil || !l.Colors() {
		return s
	}
	return d.Decorate(s)
}

func (l *Logger) now() string {
	return formatTime(l.clock(), l.TimeFormat())
}

// syslogPrefix returns the journald priority prefix of a built-in level.
// Custom levels get none.
func syslogPrefix(level *Level) string {
	switch level {
	case ErrorLevel:
		return "<3>"
	case WarnLevel:
		return "<4>"
	case InfoLevel:
		return "<6>"
	case DebugLevel:
		return "<7>"
	default:
		return ""
	}
}

// marshalJSON encodes v without escaping HTML characters and without the
// trailing newline added by json.Encoder.
func marshalJSON(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return bytes.TrimSuffix(buf.Bytes(), []byte("\n")), nil
}
