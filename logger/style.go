package logger

import "strconv"

// Decorator styles text for display on a terminal.
type Decorator interface {
	Decorate(s string) string
}

// DecoratorFunc adapts an ordinary function to the Decorator interface.
type DecoratorFunc func(s string) string

// Decorate calls f(s).
func (f DecoratorFunc) Decorate(s string) string {
	return f(s)
}

// Plain leaves text untouched.
var Plain Decorator = DecoratorFunc(func(s string) string { return s })

// Code is an ANSI SGR attribute together with the code that resets it.
type Code struct {
	Open  uint8
	Close uint8
}

// Common SGR attributes.
var (
	Bold      = Code{1, 22}
	Dim       = Code{2, 22}
	Italic    = Code{3, 23}
	Underline = Code{4, 24}

	Red     = Code{31, 39}
	Green   = Code{32, 39}
	Yellow  = Code{33, 39}
	Blue    = Code{34, 39}
	Magenta = Code{35, 39}
	Cyan    = Code{36, 39}
	White   = Code{37, 39}
	Gray    = Code{90, 39}
)

// Style is a stack of SGR attributes. Attributes are opened in order
// and closed in reverse order.
type Style []Code

// NewStyle returns a Style applying the given codes.
func NewStyle(codes ...Code) Style {
	return append(Style(nil), codes...)
}

// Decorate implements the Decorator interface.
func (s Style) Decorate(text string) string {
	if len(s) == 0 {
		return text
	}
	b := make([]byte, 0, len(text)+len(s)*10)
	for _, c := range s {
		b = appendSGR(b, c.Open)
	}
	b = append(b, text...)
	for i := len(s) - 1; i >= 0; i-- {
		b = appendSGR(b, s[i].Close)
	}
	return string(b)
}

func appendSGR(b []byte, n uint8) []byte {
	b = append(b, '\033', '[')
	b = strconv.AppendUint(b, uint64(n), 10)
	return append(b, 'm')
}

// timestampStyle is applied to the bracketed timestamp regardless of level.
var timestampStyle = NewStyle(Gray)
