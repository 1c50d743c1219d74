package logger

import (
	"time"

	"github.com/nleeper/goment"
)

// DefaultTimeFormat is the timestamp pattern used unless changed.
const DefaultTimeFormat = "HH:mm:ss"

// fallbackTimeLayout is used when a time cannot be wrapped for pattern
// formatting.
const fallbackTimeLayout = "15:04:05"

// formatTime renders t using a moment-style pattern such as
// "YYYY-MM-DD HH:mm:ss.SSS". Text inside square brackets is printed
// literally, as is any character that is not a token.
func formatTime(t time.Time, pattern string) string {
	if pattern == "" {
		return ""
	}
	g, err := goment.New(t)
	if err != nil {
		return t.Format(fallbackTimeLayout)
	}
	return g.Format(pattern)
}
