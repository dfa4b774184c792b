/*
 * Copyright (C) 2025-2026, Advanced Micro Devices, Inc. All rights reserved.
 * See LICENSE for license information.
 */

package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/epiforge/fredcp/apiserver/pkg/controller"
	apiutils "github.com/epiforge/fredcp/apiserver/pkg/utils"
	"github.com/epiforge/fredcp/common/pkg/common"
	commonerrors "github.com/epiforge/fredcp/common/pkg/errors"
)

var jsonContentType = "application/json; charset=utf-8"

// Handler owns the HTTP surface. Every route delegates to the controller and
// serializes its Result; no business decision is made here.
type Handler struct {
	ctrl *controller.Controller
}

func NewHandler(ctrl *controller.Controller) *Handler {
	return &Handler{ctrl: ctrl}
}

type handleFunc func(*gin.Context) (interface{}, error)

func handle(c *gin.Context, fn handleFunc) {
	rsp, err := fn(c)
	if err != nil {
		apiutils.AbortWithApiError(c, err)
		return
	}
	code := http.StatusOK
	// If a status was previously set, use that status in the response.
	if c.Writer.Status() > 0 {
		code = c.Writer.Status()
	}
	switch rspType := rsp.(type) {
	case []byte:
		c.Data(code, jsonContentType, rspType)
	case string:
		c.Data(code, jsonContentType, []byte(rspType))
	default:
		c.JSON(code, rspType)
	}
}

// apiError converts a failed controller result into the response error shape.
// The result's message is already safe to show, so it is passed through with
// the error code matching its HTTP status.
func apiError(code int, message string) *apiutils.FredApiError {
	return &apiutils.FredApiError{
		HttpCode:     code,
		ErrorCode:    codeForStatus(code),
		ErrorMessage: message,
	}
}

func codeForStatus(code int) string {
	switch code {
	case http.StatusBadRequest:
		return commonerrors.BadRequest
	case http.StatusUnauthorized:
		return commonerrors.Unauthorized
	case http.StatusForbidden:
		return commonerrors.Forbidden
	case http.StatusNotFound:
		return commonerrors.NotFound
	case http.StatusServiceUnavailable:
		return commonerrors.ExecutorUnavailable
	default:
		return commonerrors.InternalError
	}
}

// jobIdFromQuery parses the job_id query parameter.
func jobIdFromQuery(c *gin.Context) (int64, error) {
	raw := c.Query(common.JobIdParam)
	if raw == "" {
		return 0, commonerrors.NewBadRequest("the job_id query parameter is required")
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, commonerrors.NewBadRequest("the job_id query parameter must be an integer")
	}
	return id, nil
}

// intQuery parses an optional integer query parameter with a fallback.
func intQuery(c *gin.Context, name string, fallback int) int {
	raw := c.Query(name)
	if raw == "" {
		return fallback
	}
	value, err := strconv.Atoi(raw)
	if err != nil || value < 0 {
		return fallback
	}
	return value
}

// idFromPath parses the id path parameter.
func idFromPath(c *gin.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param(common.IdParam), 10, 64)
	if err != nil {
		return 0, commonerrors.NewBadRequest("the id path parameter must be an integer")
	}
	return id, nil
}
