package logger

import (
	"testing"
	"time"
)

func TestFormatTime(t *testing.T) {
	ts := time.Date(2024, time.March, 9, 17, 5, 3, 120*int(time.Millisecond), time.UTC)

	cases := map[string]string{
		DefaultTimeFormat:         "17:05:03",
		"HH":                      "17",
		"YYYY-MM-DD HH:mm:ss.SSS": "2024-03-09 17:05:03.120",
		"YY/M/D":                  "24/3/9",
		"h:mm A":                  "5:05 PM",
		"hh:mm a":                 "05:05 pm",
		"ddd D MMM":               "Sat 9 Mar",
		"dddd, MMMM DD":           "Saturday, March 09",
		"[at] HH":                 "at 17",
		"":                        "",

		// Fractional seconds do not depend on a preceding separator.
		"HH:mm:ss:SSS": "17:05:03:120",
		"HH:mm:ss SSS": "17:05:03 120",

		// Escaped and loose text is never read as a layout.
		"[Mon] HH": "Mon 17",
		"HH [1]":   "17 1",
		"YYYY_D":   "2024_9",
		"[15:04]":  "15:04",
	}

	for pattern, want := range cases {
		if got := formatTime(ts, pattern); got != want {
			t.Errorf("formatTime(%q) = %q, want %q", pattern, got, want)
		}
	}
}

func TestFormatTime_UnpaddedHour(t *testing.T) {
	ts := time.Date(2024, time.March, 9, 7, 5, 3, 0, time.UTC)

	if got, want := formatTime(ts, "H:m:s"), "7:5:3"; got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}
