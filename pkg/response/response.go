package response

import "errors"

// Error is a domain error carrying the HTTP status it should map to.
// Every internal/api package declares its error values with NewError and
// pkg/handlerUtil translates them at the Fiber boundary.
type Error struct {
	Code int
	Err  error
}

func (e *Error) Error() string {
	return e.Err.Error()
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Is matches on status code and message so sentinel comparisons with
// errors.Is work across wrapping.
func (e *Error) Is(target error) bool {
	var t *Error
	if !errors.As(target, &t) {
		return false
	}
	return e.Code == t.Code && e.Err.Error() == t.Err.Error()
}

func NewError(code int, msg string) error {
	return &Error{Code: code, Err: errors.New(msg)}
}
