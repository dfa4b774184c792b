/*
 * Copyright (C) 2025-2026, Advanced Micro Devices, Inc. All rights reserved.
 * See LICENSE for license information.
 */

package errors

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	apierrors "k8s.io/apimachinery/pkg/api/errors"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
)

const FredPrefix = "Fred."

/*
   5-digit Error Code Convention: [xx][yyy]
   [xx] Business ID (00–99), used to distinguish errors from different business interfaces.
   00: General errors
   01: Job-related errors
   02: Run-related errors
   03: Storage-related errors
   04: Executor-related errors
   [yyy] Error code range (000–999)
*/

// public: 00xxx
const (
	InternalError = FredPrefix + "00001"
	BadRequest    = FredPrefix + "00002"
	Forbidden     = FredPrefix + "00003"
	AlreadyExist  = FredPrefix + "00004"
	NotFound      = FredPrefix + "00005"
	Unauthorized  = FredPrefix + "00006"
)

// job: 01xxx
const (
	JobNotFound       = FredPrefix + "01001"
	InvalidTransition = FredPrefix + "01002"
)

// run: 02xxx
const (
	RunNotFound = FredPrefix + "02001"
)

// storage: 03xxx
const (
	StorageError            = FredPrefix + "03001"
	InvalidResultsDirectory = FredPrefix + "03002"
)

// executor: 04xxx
const (
	ExecutorUnavailable = FredPrefix + "04001"
)

// IsFred returns true if the specified error carries a Fred error reason.
func IsFred(err error) bool {
	if err == nil {
		return false
	}
	return strings.HasPrefix(string(apierrors.ReasonForError(err)), FredPrefix)
}

func IsBadRequest(err error) bool {
	return apierrors.ReasonForError(err) == BadRequest
}

func IsInternal(err error) bool {
	return apierrors.ReasonForError(err) == InternalError
}

func IsUnauthorized(err error) bool {
	return apierrors.ReasonForError(err) == Unauthorized
}

func IsNotFound(err error) bool {
	reason := apierrors.ReasonForError(err)
	if reason == NotFound || reason == JobNotFound || reason == RunNotFound {
		return true
	}
	return false
}

func IsInvalidTransition(err error) bool {
	return apierrors.ReasonForError(err) == InvalidTransition
}

func IsStorageError(err error) bool {
	return apierrors.ReasonForError(err) == StorageError
}

func IsExecutorUnavailable(err error) bool {
	return apierrors.ReasonForError(err) == ExecutorUnavailable
}

func IgnoreFound(err error) error {
	if err == nil || IsNotFound(err) {
		return nil
	}
	return err
}

func GetErrorCode(err error) string {
	if err == nil || !IsFred(err) {
		return ""
	}
	return string(apierrors.ReasonForError(err))
}

// HTTPCode returns the HTTP status carried by a Fred error, 500 otherwise.
func HTTPCode(err error) int {
	var se *apierrors.StatusError
	if !errors.As(err, &se) {
		return http.StatusInternalServerError
	}
	return int(se.ErrStatus.Code)
}

func NewBadRequest(message string) *apierrors.StatusError {
	return &apierrors.StatusError{ErrStatus: metav1.Status{
		Status:  metav1.StatusFailure,
		Code:    http.StatusBadRequest,
		Reason:  BadRequest,
		Message: fmt.Sprintf("Bad request. %s", message),
	}}
}

func NewInternalError(message string) *apierrors.StatusError {
	return &apierrors.StatusError{ErrStatus: metav1.Status{
		Status:  metav1.StatusFailure,
		Code:    http.StatusInternalServerError,
		Reason:  InternalError,
		Message: fmt.Sprintf("Internal error. %s", message),
	}}
}

func NewUnauthorized(message string) *apierrors.StatusError {
	return &apierrors.StatusError{ErrStatus: metav1.Status{
		Status:  metav1.StatusFailure,
		Code:    http.StatusUnauthorized,
		Reason:  Unauthorized,
		Message: message,
	}}
}

func NewForbidden(message string) *apierrors.StatusError {
	return &apierrors.StatusError{ErrStatus: metav1.Status{
		Status:  metav1.StatusFailure,
		Code:    http.StatusForbidden,
		Reason:  Forbidden,
		Message: message,
	}}
}

func NotFoundErrorCode(kind string) metav1.StatusReason {
	switch kind {
	case "Job":
		return JobNotFound
	case "Run":
		return RunNotFound
	default:
		return NotFound
	}
}

func NewNotFound(kind, name string) *apierrors.StatusError {
	return &apierrors.StatusError{ErrStatus: metav1.Status{
		Status: metav1.StatusFailure,
		Code:   http.StatusNotFound,
		Reason: NotFoundErrorCode(kind),
		Details: &metav1.StatusDetails{
			Kind: kind,
			Name: name,
		},
		Message: fmt.Sprintf("%s %s not found.", kind, name),
	}}
}

func NewInvalidTransition(message string) *apierrors.StatusError {
	return &apierrors.StatusError{ErrStatus: metav1.Status{
		Status:  metav1.StatusFailure,
		Code:    http.StatusBadRequest,
		Reason:  InvalidTransition,
		Message: message,
	}}
}

// NewStorageError wraps an object-store failure. Callers are expected to pass
// an already-sanitized message; see the sanitize package.
func NewStorageError(message string) *apierrors.StatusError {
	return &apierrors.StatusError{ErrStatus: metav1.Status{
		Status:  metav1.StatusFailure,
		Code:    http.StatusInternalServerError,
		Reason:  StorageError,
		Message: message,
	}}
}

func NewInvalidResultsDirectory(message string) *apierrors.StatusError {
	return &apierrors.StatusError{ErrStatus: metav1.Status{
		Status:  metav1.StatusFailure,
		Code:    http.StatusBadRequest,
		Reason:  InvalidResultsDirectory,
		Message: message,
	}}
}

func NewExecutorUnavailable(message string) *apierrors.StatusError {
	return &apierrors.StatusError{ErrStatus: metav1.Status{
		Status:  metav1.StatusFailure,
		Code:    http.StatusServiceUnavailable,
		Reason:  ExecutorUnavailable,
		Message: message,
	}}
}
