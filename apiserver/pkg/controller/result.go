/*
 * Copyright (C) 2025-2026, Advanced Micro Devices, Inc. All rights reserved.
 * See LICENSE for license information.
 */

package controller

import "net/http"

// Result is the outcome of one controller operation: either a success value
// or a failure message with the HTTP status it should surface as. Controller
// operations are total, they never return an error or panic across this
// boundary.
type Result[T any] struct {
	value   T
	failure string
	code    int
	ok      bool
}

// Success wraps a value in a successful result.
func Success[T any](value T) Result[T] {
	return Result[T]{value: value, code: http.StatusOK, ok: true}
}

// Failure builds a failed result carrying an HTTP status code and a message
// already safe to show the caller.
func Failure[T any](code int, message string) Result[T] {
	return Result[T]{failure: message, code: code}
}

// Ok reports whether the operation succeeded.
func (r Result[T]) Ok() bool {
	return r.ok
}

// Value returns the success value; the zero value on failure.
func (r Result[T]) Value() T {
	return r.value
}

// Err returns the failure message, empty on success.
func (r Result[T]) Err() string {
	return r.failure
}

// StatusCode returns the HTTP status the result maps to.
func (r Result[T]) StatusCode() int {
	return r.code
}
