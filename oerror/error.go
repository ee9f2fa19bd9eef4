package oerror

import "fmt"

// Error is returned by the core when level data or settings are unusable.
type Error struct {
	Err string
}

// New formats a new Error. Arguments are handled like fmt.Sprintf.
func New(format string, args ...any) *Error {
	return &Error{Err: fmt.Sprintf(format, args...)}
}

func (e *Error) Error() string {
	return e.Err
}
