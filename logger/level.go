package logger

import "strings"

// Scope names the stream a level writes to.
type Scope string

const (
	// Stdout routes lines to standard output.
	Stdout Scope = "stdout"
	// Stderr routes lines to standard error.
	Stderr Scope = "stderr"
)

// Level is a named severity. The lower the priority, the more severe the
// level and the more likely it is to be printed.
// Levels are immutable once created.
type Level struct {
	name      string
	decorator Decorator
	priority  int
	scope     Scope
}

// NewLevel creates a level that does not need to belong to the built-in
// catalog. Any priority is accepted, including negative ones.
// A nil decorator leaves the level name undecorated.
func NewLevel(name string, d Decorator, priority int, scope Scope) *Level {
	if d == nil {
		d = Plain
	}
	if s, ok := d.(Style); ok {
		d = NewStyle(s...)
	}
	return &Level{name: name, decorator: d, priority: priority, scope: scope}
}

// Name returns the level name.
func (l *Level) Name() string { return l.name }

// Decorator returns the decoration applied to the level tag. A Style is
// returned as a copy, so changing it does not affect the level.
func (l *Level) Decorator() Decorator {
	if s, ok := l.decorator.(Style); ok {
		return NewStyle(s...)
	}
	return l.decorator
}

// Priority returns the level priority.
func (l *Level) Priority() int { return l.priority }

// Scope returns the stream the level writes to.
func (l *Level) Scope() Scope { return l.scope }

// String implements the fmt.Stringer interface.
func (l *Level) String() string { return l.name }

// tag is the undecorated upper case label printed in text lines.
func (l *Level) tag() string { return strings.ToUpper(l.name) }

// levelView is the serialized form of a Level. The decorator has no
// data representation and is left out.
type levelView struct {
	Name     string `json:"name" yaml:"name"`
	Priority int    `json:"priority" yaml:"priority"`
	Scope    Scope  `json:"scope" yaml:"scope"`
}

func (l *Level) view() levelView {
	return levelView{Name: l.name, Priority: l.priority, Scope: l.scope}
}

// MarshalJSON implements the json.Marshaler interface.
func (l *Level) MarshalJSON() ([]byte, error) {
	return marshalJSON(l.view())
}

// MarshalYAML implements the yaml.Marshaler interface.
func (l *Level) MarshalYAML() (interface{}, error) {
	return l.view(), nil
}

// Built-in levels, in priority order.
var (
	// ErrorLevel is for failures; written to stderr.
	ErrorLevel = NewLevel("error", NewStyle(Red, Bold), 0, Stderr)
	// WarnLevel is for recoverable problems; written to stderr.
	WarnLevel = NewLevel("warn", NewStyle(Yellow, Bold), 1, Stderr)
	// InfoLevel is the default threshold; written to stdout.
	InfoLevel = NewLevel("info", NewStyle(Green, Bold), 2, Stdout)
	// DebugLevel is for diagnostics; written to stdout.
	DebugLevel = NewLevel("debug", NewStyle(Blue, Bold), 3, Stdout)
)

var levels = []*Level{ErrorLevel, WarnLevel, InfoLevel, DebugLevel}

// Levels returns the built-in levels in priority order.
func Levels() []*Level {
	return append([]*Level(nil), levels...)
}

// DefaultLevel returns the threshold used when none is configured.
func DefaultLevel() *Level {
	return InfoLevel
}

// LevelByName looks up a built-in level by its exact name.
func LevelByName(name string) (*Level, bool) {
	for _, l := range levels {
		if l.name == name {
			return l, true
		}
	}
	return nil, false
}

// LevelByPriority looks up a built-in level by priority.
func LevelByPriority(priority int) (*Level, bool) {
	for _, l := range levels {
		if l.priority == priority {
			return l, true
		}
	}
	return nil, false
}
