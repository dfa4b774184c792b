/*
 * Copyright (C) 2025-2026, Advanced Micro Devices, Inc. All rights reserved.
 * See LICENSE for license information.
 */

package handlers

import (
	"context"
	"fmt"

	"github.com/gin-gonic/gin"

	"github.com/epiforge/fredcp/apiserver/pkg/controller"
	"github.com/epiforge/fredcp/apiserver/pkg/handlers/middle"
	"github.com/epiforge/fredcp/apiserver/pkg/service"
	apiutils "github.com/epiforge/fredcp/apiserver/pkg/utils"
	"github.com/epiforge/fredcp/common/pkg/batch"
	"github.com/epiforge/fredcp/common/pkg/common"
	dbclient "github.com/epiforge/fredcp/common/pkg/database/client"
	commonerrors "github.com/epiforge/fredcp/common/pkg/errors"
	"github.com/epiforge/fredcp/common/pkg/s3"
)

// InitHttpHandlers builds the gin engine with the full middleware chain and
// the job and run routes. The database, object store and batch clients are
// constructed here from the loaded configuration.
func InitHttpHandlers(ctx context.Context) (*gin.Engine, error) {
	db := dbclient.NewClient()
	if db == nil {
		return nil, fmt.Errorf("failed to create the database client")
	}
	store, err := s3.NewGateway(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create the object store gateway: %w", err)
	}
	executor, err := batch.NewGateway(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create the batch gateway: %w", err)
	}
	svc := service.NewService(db, store)
	ctrl := controller.New(svc, executor)
	return buildEngine(NewHandler(ctrl)), nil
}

func buildEngine(h *Handler) *gin.Engine {
	engine := gin.New()
	engine.Use(middle.RequestLogger(), gin.Recovery(), middle.HandleTracing())
	engine.NoRoute(func(c *gin.Context) {
		apiutils.AbortWithApiError(c, commonerrors.NewNotFound("", c.Request.RequestURI))
	})
	InitJobRouters(engine, h)
	return engine
}

// InitJobRouters registers the API routes. Everything except the health probe
// sits behind the token and header middleware.
func InitJobRouters(e *gin.Engine, h *Handler) {
	e.GET("health", h.Health)

	group := e.Group("/", middle.Authorize(), middle.Preprocess())
	{
		group.POST("jobs/register", h.RegisterJob)
		group.POST("jobs", h.SubmitUpload)
		group.GET("jobs", h.ListJobs)
		group.GET("jobs/results", h.GetRunResults)
		group.GET(fmt.Sprintf("jobs/:%s", common.IdParam), h.GetJob)
		group.GET(fmt.Sprintf("jobs/:%s/uploads", common.IdParam), h.GetJobUploads)

		group.POST("runs", h.SubmitRuns)
		group.GET("runs", h.GetRuns)
	}
}
