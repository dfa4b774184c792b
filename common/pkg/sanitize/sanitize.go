/*
 * Copyright (C) 2025-2026, Advanced Micro Devices, Inc. All rights reserved.
 * See LICENSE for license information.
 */

// Package sanitize scrubs object-store credentials out of error messages
// before they escape to logs or API responses.
package sanitize

import (
	"errors"
	"regexp"
)

const mask = "***"

var (
	accessKeyPattern = regexp.MustCompile(`(?:AKIA|ASIA)[0-9A-Z]{16}`)
	base64Pattern    = regexp.MustCompile(`[A-Za-z0-9+/=]{40,}`)
	xmlCredPattern   = regexp.MustCompile(`<(AWSAccessKeyId|SecretAccessKey|Signature)>[^<]*</(?:AWSAccessKeyId|SecretAccessKey|Signature)>`)
	jsonCredPattern  = regexp.MustCompile(`"(AWSAccessKeyId|SecretAccessKey|Signature|accessKeyId|secretAccessKey|sessionToken)"\s*:\s*"[^"]*"`)
)

// Sanitize masks access keys, signature material and credential fields in
// msg. Applying it twice yields the same output.
func Sanitize(msg string) string {
	msg = xmlCredPattern.ReplaceAllString(msg, "<$1>"+mask+"</$1>")
	msg = jsonCredPattern.ReplaceAllString(msg, `"$1": "`+mask+`"`)
	msg = accessKeyPattern.ReplaceAllString(msg, mask)
	msg = base64Pattern.ReplaceAllString(msg, mask)
	return msg
}

// Error wraps an error with its message scrubbed. A raw error passed to
// NewError is not retained, so its message cannot resurface through
// unwrapping; an error passed to Mark has already been scrubbed and stays
// reachable for status-code inspection.
type Error struct {
	msg   string
	cause error
}

// NewError scrubs err's message into a sanitized error.
func NewError(err error) *Error {
	return &Error{msg: Sanitize(err.Error())}
}

// Mark tags an error whose message was already built from sanitized input.
func Mark(err error) *Error {
	return &Error{msg: err.Error(), cause: err}
}

// Error returns the scrubbed message.
func (e *Error) Error() string {
	return e.msg
}

func (e *Error) Unwrap() error {
	return e.cause
}

// Sanitized marks the message as credential-free.
func (e *Error) Sanitized() bool {
	return true
}

type sanitized interface {
	Sanitized() bool
}

// IsSanitized reports whether err or anything it wraps has been scrubbed.
func IsSanitized(err error) bool {
	for err != nil {
		if s, ok := err.(sanitized); ok {
			return s.Sanitized()
		}
		err = errors.Unwrap(err)
	}
	return false
}
