/*
 * Copyright (C) 2025-2026, Advanced Micro Devices, Inc. All rights reserved.
 * See LICENSE for license information.
 */

package controller

import (
	"fmt"
	"net/http"
	"runtime/debug"

	"k8s.io/klog/v2"

	"github.com/epiforge/fredcp/apiserver/pkg/service"
	"github.com/epiforge/fredcp/common/pkg/batch"
	commonerrors "github.com/epiforge/fredcp/common/pkg/errors"
)

// Controller glues the use cases to the HTTP and CLI boundaries. Every
// operation returns a Result; repository and gateway failures thrown inside
// the use cases are caught here and converted.
type Controller struct {
	svc      *service.Service
	executor batch.Gateway
}

func New(svc *service.Service, executor batch.Gateway) *Controller {
	return &Controller{svc: svc, executor: executor}
}

// guard runs one operation and converts its outcome into a Result. Coded
// errors propagate their message; anything else, panics included, becomes a
// generic failure so raw internals never reach a caller.
func guard[T any](op string, fn func() (T, error)) (result Result[T]) {
	defer func() {
		if r := recover(); r != nil {
			klog.Errorf("panic while %s: %v\n%s", op, r, debug.Stack())
			result = Failure[T](http.StatusInternalServerError, unexpectedMessage(op))
		}
	}()
	value, err := fn()
	if err != nil {
		if commonerrors.IsFred(err) {
			return Failure[T](commonerrors.HTTPCode(err), err.Error())
		}
		klog.ErrorS(err, "unexpected error", "operation", op)
		return Failure[T](http.StatusInternalServerError, unexpectedMessage(op))
	}
	return Success(value)
}

func unexpectedMessage(op string) string {
	return fmt.Sprintf("An unexpected error occurred while %s", op)
}
