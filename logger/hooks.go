package logger

import "github.com/hashicorp/go-multierror"

// Hook is fired after a line has been written at the given level.
// The call must be non-blocking.
type Hook interface {
	Fire(level *Level) error
}

// HookFunc adapts an ordinary function to the Hook interface.
type HookFunc func(level *Level) error

// Fire calls f(level).
func (f HookFunc) Fire(level *Level) error {
	return f(level)
}

// hooks triggers every registered hook, collecting their failures.
type hooks []Hook

func (hs hooks) fire(level *Level) error {
	var merr *multierror.Error
	for _, h := range hs {
		if err := h.Fire(level); err != nil {
			merr = multierror.Append(merr, err)
		}
	}
	return merr.ErrorOrNil()
}
