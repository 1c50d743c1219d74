// Package logrushook forwards logrus entries to a schlog Logger, so code
// written against logrus shares the schlog threshold and output format.
package logrushook

import (
	"fmt"
	"sort"
	"strings"

	"github.com/mordilloSan/schlog/logger"
	"github.com/sirupsen/logrus"
)

var _ logrus.Hook = (*Hook)(nil)

// Hook implements logrus.Hook.
type Hook struct {
	logger *logger.Logger
}

// New returns a Hook writing through l.
func New(l *logger.Logger) *Hook {
	return &Hook{logger: l}
}

// Levels implements logrus.Hook. Every entry is forwarded; filtering is
// left to the schlog Logger.
func (h *Hook) Levels() []logrus.Level {
	return logrus.AllLevels
}

// Fire implements logrus.Hook.
func (h *Hook) Fire(entry *logrus.Entry) error {
	h.logger.Log(levelFor(entry.Level), entry.Message+encodeFields(entry.Data))
	return nil
}

// levelFor maps a logrus level to a built-in level.
func levelFor(l logrus.Level) *logger.Level {
	switch l {
	case logrus.PanicLevel, logrus.FatalLevel, logrus.ErrorLevel:
		return logger.ErrorLevel
	case logrus.WarnLevel:
		return logger.WarnLevel
	case logrus.InfoLevel:
		return logger.InfoLevel
	default:
		return logger.DebugLevel
	}
}

// encodeFields formats fields as " key=value" pairs sorted by key.
func encodeFields(fields logrus.Fields) string {
	if len(fields) == 0 {
		return ""
	}
	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		v := fields[k]
		if err, ok := v.(error); ok {
			v = err.Error()
		}
		parts = append(parts, fmt.Sprintf("%s=%v", k, v))
	}
	return " " + strings.Join(parts, " ")
}
