/*
 * Copyright (C) 2025-2026, Advanced Micro Devices, Inc. All rights reserved.
 * See LICENSE for license information.
 */

package middle

import (
	"fmt"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"k8s.io/klog/v2"

	apiutils "github.com/epiforge/fredcp/apiserver/pkg/utils"
	"github.com/epiforge/fredcp/common/pkg/common"
	commonerrors "github.com/epiforge/fredcp/common/pkg/errors"
	commonjob "github.com/epiforge/fredcp/common/pkg/job"
)

// RequestLogger assigns a request id and logs one line per request with
// method, path, status and latency.
func RequestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestId := c.GetHeader(common.HeaderRequestId)
		if requestId == "" {
			requestId = uuid.NewString()
		}
		c.Set(common.RequestId, requestId)
		c.Header(common.HeaderRequestId, requestId)

		start := time.Now()
		c.Next()

		latency := time.Since(start)
		status := c.Writer.Status()
		line := fmt.Sprintf("%s %s %d %s request_id=%s",
			c.Request.Method, c.Request.URL.RequestURI(), status, latency, requestId)
		if len(c.Errors) > 0 {
			klog.Warningf("%s errors=%v", line, c.Errors.Errors())
			return
		}
		klog.Infof("%s", line)
	}
}

// Authorize parses the Offline-Token header into the request context. The
// handlers read the raw header back out of the context when a use case
// needs to re-derive the caller identity.
func Authorize() gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader(common.HeaderOfflineToken)
		token, err := commonjob.ParseIdentityToken(header)
		if err != nil {
			apiutils.AbortWithApiError(c, err)
			return
		}
		c.Set(common.IdentityToken, header)
		c.Set(common.UserId, token.UserId)
		c.Set(common.ScopesHash, token.ScopesHash)
		c.Next()
	}
}

// Preprocess validates the client headers and extracts the client version
// from the user agent and the Fredcli-Version header.
func Preprocess() gin.HandlerFunc {
	return func(c *gin.Context) {
		version := c.GetHeader(common.HeaderClientVersion)
		if version == "" {
			apiutils.AbortWithApiError(c,
				commonerrors.NewBadRequest(fmt.Sprintf("the %s header is required", common.HeaderClientVersion)))
			return
		}
		userAgent := c.GetHeader(common.HeaderUserAgent)
		if userAgent == "" {
			apiutils.AbortWithApiError(c,
				commonerrors.NewBadRequest(fmt.Sprintf("the %s header is required", common.HeaderUserAgent)))
			return
		}
		if c.Request.ContentLength > 0 &&
			!strings.HasPrefix(c.ContentType(), common.JsonContentType) {
			apiutils.AbortWithApiError(c,
				commonerrors.NewBadRequest("the request body must be application/json"))
			return
		}
		c.Set(common.ClientVersion, commonjob.ExtractClientVersion(userAgent, version))
		c.Next()
	}
}
