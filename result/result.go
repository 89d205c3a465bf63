package result

import (
	"fmt"

	"gopkg.microglot.org/containers.go/exc"
)

// Result holds exactly one of a success value of type T or a failure value of
// type E, distinguished by an internal tag. The zero value of the struct is a
// failure holding E's zero value.
type Result[T any, E any] struct {
	ok    bool
	value T
	err   E
}

func (self Result[T, E]) IsSuccess() bool {
	return self.ok
}

func (self Result[T, E]) IsFailure() bool {
	return !self.ok
}

// Unwrap returns the success value. Unwrapping a failed Result fails with
// exc.CodeFailureValueAccess carrying the stored failure value: when E is an
// error the exception wraps it so errors.Is and errors.As reach it, otherwise
// its rendering is part of the message.
func (self Result[T, E]) Unwrap() (T, error) {
	if !self.ok {
		if cause, ok := any(self.err).(error); ok {
			return self.value, exc.Wrap(exc.CodeFailureValueAccess, cause)
		}
		return self.value, exc.New(exc.CodeFailureValueAccess, fmt.Sprintf("unwrap of a failed result: %v", self.err))
	}
	return self.value, nil
}

// consume clears both payloads and the tag. A spent Result is
// indistinguishable from Failure of E's zero value and reading one is a
// caller defect.
func (self *Result[T, E]) consume() {
	var value T
	var err E
	self.ok = false
	self.value = value
	self.err = err
}

// Success builds a succeeded Result. The value is not validated: unlike
// optional.WithValue, a success payload may be anything, including a nil
// pointer.
func Success[T any, E any](v T) Result[T, E] {
	return Result[T, E]{
		ok:    true,
		value: v,
	}
}

// Failure builds a failed Result holding e.
func Failure[T any, E any](e E) Result[T, E] {
	return Result[T, E]{
		err: e,
	}
}

// ExpectSuccess returns the success value of a Result that the caller
// requires to have succeeded. A failed Result fails with
// exc.CodeUnexpectedFailureAccess.
func ExpectSuccess[T any, E any](o Result[T, E]) (T, error) {
	if !o.ok {
		return o.value, exc.New(exc.CodeUnexpectedFailureAccess, fmt.Sprintf("result expected to succeed holds a failure: %v", o.err))
	}
	return o.value, nil
}

// ExpectFailure returns the failure value of a Result that the caller
// requires to have failed. A succeeded Result fails with
// exc.CodeUnexpectedSuccessAccess.
func ExpectFailure[T any, E any](o Result[T, E]) (E, error) {
	if o.ok {
		return o.err, exc.New(exc.CodeUnexpectedSuccessAccess, "result expected to fail holds a success")
	}
	return o.err, nil
}
