package logger

import (
	"os"
	"strconv"
	"strings"
	"unicode"

	"github.com/mattn/go-isatty"
)

// EnvLevel is the environment variable consulted for the initial threshold.
// It holds a level name such as "warn" or a priority such as "1".
const EnvLevel = "LOG_LEVEL"

// ResolveLevel turns a configuration value into a level. The value is
// looked up as a level name first, then as a priority taken from its
// leading decimal digits, so "1.5" and "1s" both resolve to warn. An empty
// value, an unknown name or an unknown priority all resolve to the default
// level.
func ResolveLevel(raw string) *Level {
	if raw == "" {
		return DefaultLevel()
	}
	if l, ok := LevelByName(raw); ok {
		return l
	}
	if n, ok := leadingInt(raw); ok {
		if l, ok := LevelByPriority(n); ok {
			return l
		}
	}
	return DefaultLevel()
}

// leadingInt parses the optionally signed decimal integer at the start of
// s, after any leading white space. Trailing characters are ignored.
func leadingInt(s string) (int, bool) {
	s = strings.TrimLeftFunc(s, unicode.IsSpace)
	end := 0
	if end < len(s) && (s[end] == '+' || s[end] == '-') {
		end++
	}
	digits := end
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == digits {
		return 0, false
	}
	n, err := strconv.Atoi(s[:end])
	if err != nil {
		return 0, false
	}
	return n, true
}

// NewFromEnv returns a Logger whose threshold is read from LOG_LEVEL.
// Colors are enabled only when stdout is a terminal and journald prefixes
// only when JOURNAL_STREAM is set. The given options are applied last.
// The chosen level is reported with a debug line.
func NewFromEnv(opts ...Option) *Logger {
	base := []Option{
		WithLevel(ResolveLevel(os.Getenv(EnvLevel))),
		WithColors(isTerminal(os.Stdout)),
		WithJournalPrefix(os.Getenv("JOURNAL_STREAM") != ""),
	}
	l := New(append(base, opts...)...)
	l.Debug("Using log level: " + l.Level().Name())
	return l
}

func isTerminal(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
