// © 2023 Microglot LLC
//
// SPDX-License-Identifier: Apache-2.0

package exc

import "fmt"

type Exception interface {
	error
	Code() string
	Message() string
}

type exc struct {
	code    string
	message string
}

func (e *exc) Error() string {
	return fmt.Sprintf("%s: %s", e.code, e.message)
}

func (e *exc) Code() string {
	return e.code
}

func (e *exc) Message() string {
	return e.message
}

type excUnwrap struct {
	Exception
	cause error
}

func (e *excUnwrap) Unwrap() error {
	return e.cause
}

func New(code string, message string) Exception {
	return &exc{
		message: message,
		code:    code,
	}
}

// Wrap preserves err as the cause so that errors.Is and errors.As reach it
// through the returned Exception.
func Wrap(code string, err error) Exception {
	if err == nil {
		return nil
	}
	if e, ok := err.(Exception); ok {
		return &excUnwrap{
			Exception: New(code, e.Message()),
			cause:     e,
		}
	}
	return &excUnwrap{
		cause:     err,
		Exception: New(code, err.Error()),
	}
}
