// Package apierr classifies failures of the fetch-and-decode sequence by the
// stage that produced them.
package apierr

import (
	"errors"
	"fmt"
)

// Kind is the tag of a failure. The set is closed.
type Kind string

const (
	KindFetch Kind = "FetchError"
	KindJSON  Kind = "JsonError"
)

func (k Kind) String() string {
	return string(k)
}

// Error is a tagged failure. Status is set only for unsuccessful responses.
type Error struct {
	Kind   Kind
	Status int
	Cause  error
}

var (
	// ErrFetch matches every KindFetch failure under errors.Is.
	ErrFetch = &Error{Kind: KindFetch}
	// ErrJSON matches every KindJSON failure under errors.Is.
	ErrJSON = &Error{Kind: KindJSON}
)

// Fetch tags a failure of the request itself.
func Fetch(cause error) *Error {
	return &Error{Kind: KindFetch, Cause: cause}
}

// Status tags an unsuccessful response as a transport failure.
func Status(code int) *Error {
	return &Error{Kind: KindFetch, Status: code}
}

// JSON tags a failure to decode the response body.
func JSON(cause error) *Error {
	return &Error{Kind: KindJSON, Cause: cause}
}

func (e *Error) Error() string {
	switch {
	case e.Status != 0:
		return fmt.Sprintf("%s: unexpected status %d", e.Kind, e.Status)
	case e.Cause != nil:
		return fmt.Sprintf("%s: %v", e.Kind, e.Cause)
	default:
		return string(e.Kind)
	}
}

func (e *Error) Unwrap() error { return e.Cause }

// Is reports whether target is an *Error of the same kind.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Kind == e.Kind
}

// KindOf returns the kind of the first tagged failure in err's chain.
func KindOf(err error) (Kind, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind, true
	}
	return "", false
}

// CatchKinds builds a handler that maps tagged failures to values. Failures
// whose kind has no handler, and untagged failures, are declined.
func CatchKinds[T any](handlers map[Kind]func(err error) T) func(err error) (T, bool) {
	return func(err error) (T, bool) {
		var zero T
		kind, ok := KindOf(err)
		if !ok {
			return zero, false
		}
		h, ok := handlers[kind]
		if !ok || h == nil {
			return zero, false
		}
		return h(err), true
	}
}
