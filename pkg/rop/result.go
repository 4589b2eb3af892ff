package rop

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// ErrNilFailure replaces a nil error handed to Fail.
var ErrNilFailure = errors.New("rop: failure without error")

// Result holds either a produced value or the failure that prevented it.
type Result[T any] struct {
	id        uuid.UUID
	createdAt time.Time
	result    T
	err       error
	isSuccess bool
}

func Success[T any](r T) Result[T] {
	return Result[T]{
		result:    r,
		isSuccess: true,
		createdAt: time.Now().UTC(),
		id:        uuid.New(),
	}
}

func Fail[T any](err error) Result[T] {
	if err == nil {
		err = ErrNilFailure
	}
	return Result[T]{
		err:       err,
		isSuccess: false,
		createdAt: time.Now().UTC(),
		id:        uuid.New(),
	}
}

// FailFrom carries the failure of one Result over to a Result of another type.
func FailFrom[In, Out any](from Result[In]) Result[Out] {
	return Result[Out]{
		err:       from.Err(),
		isSuccess: false,
		createdAt: from.createdAt,
		id:        from.id,
	}
}

func (r Result[T]) Result() T {
	return r.result
}

// Err returns the failure, or nil on success. A failed Result that was never
// given an error, such as the zero value, reports ErrNilFailure.
func (r Result[T]) Err() error {
	if !r.isSuccess && r.err == nil {
		return ErrNilFailure
	}
	return r.err
}

func (r Result[T]) IsSuccess() bool {
	return r.isSuccess
}

func (r Result[T]) IsFailure() bool {
	return !r.isSuccess
}

// Unpack returns the Result as a conventional (value, error) pair.
func (r Result[T]) Unpack() (T, error) {
	return r.result, r.Err()
}

// OrElse returns the value on success and fallback otherwise.
func (r Result[T]) OrElse(fallback T) T {
	if r.isSuccess {
		return r.result
	}
	return fallback
}

func (r Result[T]) CreatedAt() time.Time {
	return r.createdAt
}

func (r Result[T]) Id() uuid.UUID {
	return r.id
}
