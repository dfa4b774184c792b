/*
 * Copyright (C) 2025-2026, Advanced Micro Devices, Inc. All rights reserved.
 * See LICENSE for license information.
 */

package utils

import (
	"errors"

	"github.com/gin-gonic/gin"
	apierrors "k8s.io/apimachinery/pkg/api/errors"
	utilerrors "k8s.io/apimachinery/pkg/util/errors"

	commonerrors "github.com/epiforge/fredcp/common/pkg/errors"
)

// FredApiError is the unified error response body: HTTP code, error code and
// error message.
type FredApiError struct {
	HttpCode     int    `json:"-"`
	ErrorCode    string `json:"errorCode"`
	ErrorMessage string `json:"errorMessage"`
}

// Error returns the error message string.
func (err *FredApiError) Error() string {
	return err.ErrorMessage
}

// AbortWithApiError converts err into the standardized error format and
// aborts the request with a JSON error response.
func AbortWithApiError(c *gin.Context, err error) {
	handleErrors(c, err)
	rsp := convertToErrResponse(err)
	c.AbortWithStatusJSON(rsp.HttpCode, rsp)
}

// convertToErrResponse converts an error into the FredApiError format. Coded
// errors keep their HTTP status and reason; anything else becomes an
// internal error, so a raw failure never leaks its own shape to the client.
func convertToErrResponse(err error) FredApiError {
	var result *FredApiError
	if errors.As(err, &result) {
		return *result
	}
	var statusErr *apierrors.StatusError
	if !errors.As(err, &statusErr) {
		switch {
		case apierrors.IsNotFound(err):
			statusErr = commonerrors.NewNotFound("", err.Error())
		case apierrors.IsBadRequest(err), apierrors.IsInvalid(err):
			statusErr = commonerrors.NewBadRequest(err.Error())
		case apierrors.IsForbidden(err):
			statusErr = commonerrors.NewForbidden(err.Error())
		default:
			statusErr = commonerrors.NewInternalError(err.Error())
		}
	}
	return FredApiError{
		HttpCode:     int(statusErr.Status().Code),
		ErrorCode:    string(statusErr.Status().Reason),
		ErrorMessage: statusErr.Error(),
	}
}

// handleErrors adds single errors or each member of an aggregate to the gin
// context error collection for the logging middleware.
func handleErrors(c *gin.Context, err error) {
	var errs []error
	if aggregate, ok := err.(utilerrors.Aggregate); ok {
		errs = aggregate.Errors()
	} else {
		errs = []error{err}
	}
	for _, val := range errs {
		if val != nil {
			_ = c.Error(val)
		}
	}
}
