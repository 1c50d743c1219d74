// Package logger provides a leveled console logger that writes colored
// text or JSON lines to stdout and stderr.
//
// # Levels
//
// Four levels are built in, in priority order:
//
//	error  0  stderr
//	warn   1  stderr
//	info   2  stdout
//	debug  3  stdout
//
// A message is written when the threshold priority is greater than or
// equal to the message level priority, so a warn threshold shows error
// and warn lines and hides info and debug. Custom levels can be created
// with NewLevel; a negative priority makes a level visible under every
// built-in threshold.
//
// # Configuration
//
// The package-level functions use a Logger created on first use from the
// LOG_LEVEL environment variable, which holds a level name or priority:
//
//	LOG_LEVEL=warn ./myapp
//	LOG_LEVEL=3 ./myapp
//
// Unknown values fall back to info. Isolated loggers are created with New:
//
//	l := logger.New(logger.WithLevel(logger.DebugLevel), logger.WithPrintJSON(true))
//	l.Info("ready")
//
// # Output
//
// Text lines look like
//
//	[15:04:05] INFO ready
//
// and JSON lines like
//
//	{"time":"15:04:05","level":{"name":"info","priority":2,"scope":"stdout"},"message":"ready"}
//
// Timestamps use moment-style patterns, "HH:mm:ss" by default. Text in
// square brackets is printed as is, so "YYYY-MM-DD [at] HH:mm" renders
// like "2024-03-09 at 17:05".
package logger
