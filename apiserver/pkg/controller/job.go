/*
 * Copyright (C) 2025-2026, Advanced Micro Devices, Inc. All rights reserved.
 * See LICENSE for license information.
 */

package controller

import (
	"context"
	"fmt"
	"time"

	commonerrors "github.com/epiforge/fredcp/common/pkg/errors"
	commonjob "github.com/epiforge/fredcp/common/pkg/job"
)

// RegisterJob decodes the caller identity and creates a job in CREATED.
func (c *Controller) RegisterJob(ctx context.Context, tokenHeader string, tags []string) Result[*commonjob.Job] {
	return guard("registering the job", func() (*commonjob.Job, error) {
		token, err := commonjob.ParseIdentityToken(tokenHeader)
		if err != nil {
			return nil, err
		}
		return c.svc.RegisterJob(ctx, token, tags)
	})
}

// SubmitUpload routes an upload request to the use case matching its
// context and type pair. Unknown pairs fail with a bad request.
func (c *Controller) SubmitUpload(ctx context.Context, upload *commonjob.JobUpload) Result[*commonjob.UploadLocation] {
	return guard("issuing the upload location", func() (*commonjob.UploadLocation, error) {
		if upload == nil {
			return nil, commonerrors.NewBadRequest("the upload is empty")
		}
		switch {
		case upload.Context == commonjob.ContextJob && upload.Type == commonjob.TypeInput:
			return c.svc.SubmitJob(ctx, upload)
		case upload.Context == commonjob.ContextJob && upload.Type == commonjob.TypeConfig:
			return c.svc.SubmitJobConfig(ctx, upload)
		case upload.Context == commonjob.ContextRun && upload.Type == commonjob.TypeConfig:
			return c.svc.SubmitRunConfig(ctx, upload)
		}
		return nil, commonerrors.NewBadRequest(fmt.Sprintf(
			"no upload operation for context %q and type %q", upload.Context, upload.Type))
	})
}

// GetJob returns a single job.
func (c *Controller) GetJob(ctx context.Context, id int64) Result[*commonjob.Job] {
	return guard("reading the job", func() (*commonjob.Job, error) {
		if id <= 0 {
			return nil, commonerrors.NewBadRequest("the job id must be positive")
		}
		return c.svc.GetJob(ctx, id)
	})
}

// ListJobs pages through all jobs, newest first.
func (c *Controller) ListJobs(ctx context.Context, limit, offset int) Result[[]*commonjob.Job] {
	return guard("listing the jobs", func() ([]*commonjob.Job, error) {
		return c.svc.ListJobs(ctx, limit, offset)
	})
}

// GetJobUploads enumerates a job's artifacts, optionally fetching content.
func (c *Controller) GetJobUploads(ctx context.Context, jobId int64, includeContent bool) Result[[]*commonjob.JobUpload] {
	return guard("listing the job uploads", func() ([]*commonjob.JobUpload, error) {
		if jobId <= 0 {
			return nil, commonerrors.NewBadRequest("the job id must be positive")
		}
		return c.svc.GetJobUploads(ctx, jobId, includeContent)
	})
}

// ArchiveUploads transitions the given objects to cold storage. Per-object
// failures are recorded on the locations, so the operation itself succeeds.
func (c *Controller) ArchiveUploads(ctx context.Context, locations []*commonjob.UploadLocation,
	ageThreshold *time.Time, dryRun bool) Result[[]*commonjob.UploadLocation] {
	return guard("archiving the uploads", func() ([]*commonjob.UploadLocation, error) {
		return c.svc.ArchiveUploads(ctx, locations, ageThreshold, dryRun), nil
	})
}

// DownloadJobUploads materializes every upload of a job into dir.
func (c *Controller) DownloadJobUploads(ctx context.Context, jobId int64, dir string) Result[[]string] {
	return guard("downloading the job uploads", func() ([]string, error) {
		if jobId <= 0 {
			return nil, commonerrors.NewBadRequest("the job id must be positive")
		}
		return c.svc.DownloadJobUploads(ctx, jobId, dir)
	})
}
