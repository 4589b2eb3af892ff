package rop

import (
	"context"
	"errors"
	"reflect"
)

func IsNil(i interface{}) bool {
	if i == nil || (reflect.ValueOf(i).Kind() == reflect.Ptr && reflect.ValueOf(i).IsNil()) {
		return true
	}
	return false
}

// GetErrors splits an errors.Join result back into its parts.
func GetErrors(err error) []error {
	if IsNil(err) {
		return []error{}
	}

	e, ok := err.(interface{ Unwrap() []error })
	if ok {
		return e.Unwrap()
	}

	return []error{err}
}

// Collect joins the failures of results, nil when all succeeded.
func Collect[T any](results ...Result[T]) error {
	var errs []error
	for _, r := range results {
		if r.IsFailure() {
			errs = append(errs, GetErrors(r.Err())...)
		}
	}
	return errors.Join(errs...)
}

func IsCancellationError(err error) bool {
	return errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled)
}
