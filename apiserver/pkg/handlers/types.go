/*
 * Copyright (C) 2025-2026, Advanced Micro Devices, Inc. All rights reserved.
 * See LICENSE for license information.
 */

package handlers

import (
	commonjob "github.com/epiforge/fredcp/common/pkg/job"
	"github.com/epiforge/fredcp/common/pkg/s3"
	"github.com/epiforge/fredcp/utils/pkg/timeutil"
)

// RegisterJobRequest is the body of POST /jobs/register.
type RegisterJobRequest struct {
	Tags []string `json:"tags"`
}

// RegisterJobResponse echoes the persisted job identity.
type RegisterJobResponse struct {
	Id     int64    `json:"id"`
	UserId int64    `json:"userId"`
	Tags   []string `json:"tags"`
}

// SubmitUploadRequest is the body of POST /jobs. The context and type pair
// selects the upload operation.
type SubmitUploadRequest struct {
	JobId   int64  `json:"jobId"`
	Context string `json:"context"`
	Type    string `json:"type"`
	RunId   int64  `json:"runId,omitempty"`
}

// SubmitUploadResponse carries the presigned PUT to the client.
type SubmitUploadResponse struct {
	Url string `json:"url"`
}

// SubmitRunsRequest is the body of POST /runs. Each request payload is kept
// verbatim; the service stores it on the run unmodified.
type SubmitRunsRequest struct {
	RunRequests []map[string]interface{} `json:"runRequests"`
}

// RunResponse is one element of the POST /runs reply. Status is the value
// the run carries at submission, historically the legacy "Submitted".
type RunResponse struct {
	RunId      int64                  `json:"runId"`
	JobId      int64                  `json:"jobId"`
	Status     string                 `json:"status"`
	Errors     []string               `json:"errors"`
	RunRequest map[string]interface{} `json:"runRequest"`
}

// SubmitRunsResponse wraps the run responses.
type SubmitRunsResponse struct {
	RunResponses []RunResponse `json:"runResponses"`
}

// RunView is the client-facing run dictionary of GET /runs. The status field
// derives from the pod phase, so the at-rest aliases never leak out.
type RunView struct {
	Id                int64                  `json:"id"`
	JobId             int64                  `json:"jobId"`
	UserId            int64                  `json:"userId"`
	CreatedTs         string                 `json:"createdTs"`
	Request           map[string]interface{} `json:"request"`
	PodPhase          string                 `json:"podPhase"`
	ContainerStatus   string                 `json:"containerStatus,omitempty"`
	Status            string                 `json:"status"`
	UserDeleted       bool                   `json:"userDeleted"`
	EpxClientVersion  string                 `json:"epxClientVersion"`
	ConfigUrl         string                 `json:"config_url,omitempty"`
	ResultsUrl        string                 `json:"results_url,omitempty"`
	ResultsUploadedAt string                 `json:"results_uploaded_at,omitempty"`
}

// GetRunsResponse wraps the run views.
type GetRunsResponse struct {
	Runs []RunView `json:"runs"`
}

// RunResultsResponse is the body of GET /jobs/results.
type RunResultsResponse struct {
	Urls []RunResultView `json:"urls"`
}

type RunResultView struct {
	RunId int64  `json:"run_id"`
	Url   string `json:"url"`
}

// JobView is the serialization shared by GET /jobs and the CLI job listing.
type JobView struct {
	Id             int64             `json:"id"`
	UserId         int64             `json:"userId"`
	Tags           []string          `json:"tags"`
	Status         string            `json:"status"`
	CreatedAt      string            `json:"createdAt"`
	UpdatedAt      string            `json:"updatedAt"`
	InputLocation  string            `json:"inputLocation,omitempty"`
	ConfigLocation string            `json:"configLocation,omitempty"`
	Metadata       map[string]string `json:"metadata,omitempty"`
}

// ListJobsResponse wraps the job views.
type ListJobsResponse struct {
	Jobs []JobView `json:"jobs"`
}

// JobUploadView is one artifact in GET /jobs/:id/uploads listings.
type JobUploadView struct {
	Context string      `json:"context"`
	Type    string      `json:"type"`
	JobId   int64       `json:"jobId"`
	RunId   int64       `json:"runId,omitempty"`
	Url     string      `json:"url,omitempty"`
	Errors  []string    `json:"errors,omitempty"`
	Content interface{} `json:"content,omitempty"`
}

// HealthResponse is the body of GET /health.
type HealthResponse struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
}

// NewRunView converts a run into its client dictionary.
func NewRunView(run *commonjob.Run) RunView {
	view := RunView{
		Id:               run.Id,
		JobId:            run.JobId,
		UserId:           run.UserId,
		CreatedTs:        run.CreatedAt.UTC().Format("2006-01-02T15:04:05Z07:00"),
		Request:          run.Request,
		PodPhase:         string(run.PodPhase),
		ContainerStatus:  run.ContainerStatus,
		Status:           string(commonjob.PodPhaseToStatus(run.PodPhase)),
		UserDeleted:      run.UserDeleted,
		EpxClientVersion: run.EpxClientVersion,
		ConfigUrl:        run.ConfigUrl,
		ResultsUrl:       run.ResultsUrl,
	}
	view.ResultsUploadedAt = timeutil.FormatRFC3339(run.ResultsUploadedAt)
	return view
}

// NewJobView converts a job into its client dictionary.
func NewJobView(job *commonjob.Job) JobView {
	createdAt := job.CreatedAt
	updatedAt := job.UpdatedAt
	return JobView{
		Id:             job.Id,
		UserId:         job.UserId,
		Tags:           job.Tags,
		Status:         string(job.Status),
		CreatedAt:      timeutil.FormatRFC3339(&createdAt),
		UpdatedAt:      timeutil.FormatRFC3339(&updatedAt),
		InputLocation:  job.InputLocation,
		ConfigLocation: job.ConfigLocation,
		Metadata:       job.Metadata,
	}
}

// NewJobUploadView converts an upload into its listing entry.
func NewJobUploadView(upload *commonjob.JobUpload) JobUploadView {
	view := JobUploadView{
		Context: string(upload.Context),
		Type:    string(upload.Type),
		JobId:   upload.JobId,
		RunId:   upload.RunId,
		Content: upload.Content,
	}
	if upload.Location != nil {
		view.Url = upload.Location.SanitizedUrl()
		view.Errors = upload.Location.Errors
	}
	if content, ok := upload.Content.(*s3.UploadContent); ok {
		view.Content = content
	}
	return view
}
