/*
 * Copyright (C) 2025-2026, Advanced Micro Devices, Inc. All rights reserved.
 * See LICENSE for license information.
 */

package middle

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	semconv "go.opentelemetry.io/otel/semconv/v1.21.0"
	oteltrace "go.opentelemetry.io/otel/trace"

	commonconfig "github.com/epiforge/fredcp/common/pkg/config"
)

const tracerName = "fredcp-apiserver"

// HandleTracing starts one server span per request and records the HTTP
// outcome on it. A no-op when tracing is disabled.
func HandleTracing() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !commonconfig.IsTracingEnable() {
			c.Next()
			return
		}
		ctx := c.Request.Context()
		propagator := otel.GetTextMapPropagator()
		ctx = propagator.Extract(ctx, &httpHeaderCarrier{header: c.Request.Header})

		tracer := otel.Tracer(tracerName)
		ctx, span := tracer.Start(ctx, c.Request.Method+" "+c.FullPath(),
			oteltrace.WithSpanKind(oteltrace.SpanKindServer))
		defer span.End()

		c.Request = c.Request.WithContext(ctx)
		c.Next()

		status := c.Writer.Status()
		span.SetAttributes(
			semconv.HTTPMethod(c.Request.Method),
			semconv.HTTPRoute(c.FullPath()),
			semconv.HTTPStatusCode(status),
			attribute.String("component", "gin-http"),
		)
		if status >= http.StatusBadRequest {
			span.SetStatus(codes.Error, http.StatusText(status))
			if len(c.Errors) > 0 {
				span.RecordError(c.Errors.Last())
			}
		}
	}
}

// httpHeaderCarrier adapts http.Header to the propagation carrier.
type httpHeaderCarrier struct {
	header http.Header
}

func (h *httpHeaderCarrier) Get(key string) string {
	return h.header.Get(key)
}

func (h *httpHeaderCarrier) Set(key, val string) {
	h.header.Set(key, val)
}

func (h *httpHeaderCarrier) Keys() []string {
	keys := make([]string, 0, len(h.header))
	for k := range h.header {
		keys = append(keys, k)
	}
	return keys
}
