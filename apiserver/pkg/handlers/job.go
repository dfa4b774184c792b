/*
 * Copyright (C) 2025-2026, Advanced Micro Devices, Inc. All rights reserved.
 * See LICENSE for license information.
 */

package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/epiforge/fredcp/common/pkg/common"
	commonerrors "github.com/epiforge/fredcp/common/pkg/errors"
	commonjob "github.com/epiforge/fredcp/common/pkg/job"
)

// RegisterJob handles POST /jobs/register. The caller identity comes from the
// offline token; the body only carries the tags.
func (h *Handler) RegisterJob(c *gin.Context) {
	handle(c, func(c *gin.Context) (interface{}, error) {
		var req RegisterJobRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			return nil, commonerrors.NewBadRequest(err.Error())
		}
		result := h.ctrl.RegisterJob(c.Request.Context(), c.GetString(common.IdentityToken), req.Tags)
		if !result.Ok() {
			return nil, apiError(result.StatusCode(), result.Err())
		}
		job := result.Value()
		return RegisterJobResponse{Id: job.Id, UserId: job.UserId, Tags: job.Tags}, nil
	})
}

// SubmitUpload handles POST /jobs. The context and type pair in the body
// selects which presigned PUT is issued.
func (h *Handler) SubmitUpload(c *gin.Context) {
	handle(c, func(c *gin.Context) (interface{}, error) {
		var req SubmitUploadRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			return nil, commonerrors.NewBadRequest(err.Error())
		}
		upload := &commonjob.JobUpload{
			Context: commonjob.UploadContext(req.Context),
			Type:    commonjob.UploadType(req.Type),
			JobId:   req.JobId,
			RunId:   req.RunId,
		}
		result := h.ctrl.SubmitUpload(c.Request.Context(), upload)
		if !result.Ok() {
			return nil, apiError(result.StatusCode(), result.Err())
		}
		return SubmitUploadResponse{Url: result.Value().Url}, nil
	})
}

// GetJob handles GET /jobs/:id.
func (h *Handler) GetJob(c *gin.Context) {
	handle(c, func(c *gin.Context) (interface{}, error) {
		id, err := idFromPath(c)
		if err != nil {
			return nil, err
		}
		result := h.ctrl.GetJob(c.Request.Context(), id)
		if !result.Ok() {
			return nil, apiError(result.StatusCode(), result.Err())
		}
		return NewJobView(result.Value()), nil
	})
}

// ListJobs handles GET /jobs with limit and offset paging.
func (h *Handler) ListJobs(c *gin.Context) {
	handle(c, func(c *gin.Context) (interface{}, error) {
		limit := intQuery(c, "limit", 50)
		offset := intQuery(c, "offset", 0)
		result := h.ctrl.ListJobs(c.Request.Context(), limit, offset)
		if !result.Ok() {
			return nil, apiError(result.StatusCode(), result.Err())
		}
		rsp := ListJobsResponse{Jobs: make([]JobView, 0, len(result.Value()))}
		for _, job := range result.Value() {
			rsp.Jobs = append(rsp.Jobs, NewJobView(job))
		}
		return rsp, nil
	})
}

// GetJobUploads handles GET /jobs/:id/uploads.
func (h *Handler) GetJobUploads(c *gin.Context) {
	handle(c, func(c *gin.Context) (interface{}, error) {
		id, err := idFromPath(c)
		if err != nil {
			return nil, err
		}
		includeContent := c.Query("include_content") == "true"
		result := h.ctrl.GetJobUploads(c.Request.Context(), id, includeContent)
		if !result.Ok() {
			return nil, apiError(result.StatusCode(), result.Err())
		}
		uploads := make([]JobUploadView, 0, len(result.Value()))
		for _, upload := range result.Value() {
			uploads = append(uploads, NewJobUploadView(upload))
		}
		return gin.H{"uploads": uploads}, nil
	})
}
