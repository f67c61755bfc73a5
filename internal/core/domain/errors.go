package domain

import "errors"

// Kind classifies every failure the API can surface. Handlers never map
// errors themselves; the helper package owns the kind-to-status table.
type Kind int

const (
	KindUnknown Kind = iota
	KindValidation
	KindUnauthorized
	KindNotFound
	KindConflict
	KindStore
	KindConfig
)

type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}

	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

// E builds a kinded error. Message is the fixed, user-facing text; the
// optional wrapped error keeps store detail for logs only.
func E(kind Kind, message string, err ...error) *Error {
	e := &Error{Kind: kind, Message: message}

	if len(err) > 0 {
		e.Err = err[0]
	}

	return e
}

func KindOf(err error) Kind {
	var appErr *Error

	if errors.As(err, &appErr) {
		return appErr.Kind
	}

	return KindUnknown
}

func IsNotFound(err error) bool {
	return KindOf(err) == KindNotFound
}
