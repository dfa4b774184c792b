/*
 * Copyright (C) 2025-2026, Advanced Micro Devices, Inc. All rights reserved.
 * See LICENSE for license information.
 */

package handlers

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/epiforge/fredcp/common/pkg/common"
	commonconfig "github.com/epiforge/fredcp/common/pkg/config"
	commonerrors "github.com/epiforge/fredcp/common/pkg/errors"
)

// SubmitRuns handles POST /runs. All runs of the request are persisted and
// dispatched before any response is written.
func (h *Handler) SubmitRuns(c *gin.Context) {
	handle(c, func(c *gin.Context) (interface{}, error) {
		var req SubmitRunsRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			return nil, commonerrors.NewBadRequest(err.Error())
		}
		if len(req.RunRequests) == 0 {
			return nil, commonerrors.NewBadRequest("runRequests must not be empty")
		}
		result := h.ctrl.SubmitRuns(c.Request.Context(), req.RunRequests,
			c.GetString(common.IdentityToken), c.GetString(common.ClientVersion))
		if !result.Ok() {
			return nil, apiError(result.StatusCode(), result.Err())
		}
		rsp := SubmitRunsResponse{RunResponses: make([]RunResponse, 0, len(result.Value()))}
		for _, run := range result.Value() {
			rsp.RunResponses = append(rsp.RunResponses, RunResponse{
				RunId:      run.Id,
				JobId:      run.JobId,
				Status:     string(run.Status),
				Errors:     []string{},
				RunRequest: run.Request,
			})
		}
		return rsp, nil
	})
}

// GetRuns handles GET /runs?job_id=N. Stored state is reconciled against the
// executor before serialization, so the response reflects the executor's view.
func (h *Handler) GetRuns(c *gin.Context) {
	handle(c, func(c *gin.Context) (interface{}, error) {
		jobId, err := jobIdFromQuery(c)
		if err != nil {
			return nil, err
		}
		result := h.ctrl.GetRuns(c.Request.Context(), jobId)
		if !result.Ok() {
			return nil, apiError(result.StatusCode(), result.Err())
		}
		rsp := GetRunsResponse{Runs: make([]RunView, 0, len(result.Value()))}
		for _, run := range result.Value() {
			rsp.Runs = append(rsp.Runs, NewRunView(run))
		}
		return rsp, nil
	})
}

// GetRunResults handles GET /jobs/results?job_id=N with one presigned GET
// per run of the job.
func (h *Handler) GetRunResults(c *gin.Context) {
	handle(c, func(c *gin.Context) (interface{}, error) {
		jobId, err := jobIdFromQuery(c)
		if err != nil {
			return nil, err
		}
		result := h.ctrl.GetRunResults(c.Request.Context(), jobId, commonconfig.GetDownloadURLExpireSecond())
		if !result.Ok() {
			return nil, apiError(result.StatusCode(), result.Err())
		}
		rsp := RunResultsResponse{Urls: make([]RunResultView, 0, len(result.Value()))}
		for _, item := range result.Value() {
			rsp.Urls = append(rsp.Urls, RunResultView{RunId: item.RunId, Url: item.Url})
		}
		return rsp, nil
	})
}

// Health handles GET /health, the only unauthenticated route.
func (h *Handler) Health(c *gin.Context) {
	handle(c, func(c *gin.Context) (interface{}, error) {
		return HealthResponse{
			Status:    "ok",
			Timestamp: time.Now().UTC().Format(time.RFC3339),
		}, nil
	})
}
