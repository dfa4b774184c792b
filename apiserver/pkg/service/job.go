/*
 * Copyright (C) 2025-2026, Advanced Micro Devices, Inc. All rights reserved.
 * See LICENSE for license information.
 */

package service

import (
	"context"
	"fmt"

	"k8s.io/klog/v2"

	dbclient "github.com/epiforge/fredcp/common/pkg/database/client"
	commonerrors "github.com/epiforge/fredcp/common/pkg/errors"
	commonjob "github.com/epiforge/fredcp/common/pkg/job"
)

// RegisterJob creates a job owned by the token's user. The job starts in
// CREATED and receives its id from the repository.
func (s *Service) RegisterJob(ctx context.Context, token *commonjob.IdentityToken, tags []string) (*commonjob.Job, error) {
	if token == nil {
		return nil, commonerrors.NewBadRequest("identity token is required")
	}
	job := commonjob.NewJob(token.UserId, tags)
	record, err := s.db.SaveJob(ctx, dbclient.NewJobRecord(job))
	if err != nil {
		klog.ErrorS(err, "failed to register job", "user", token.UserId)
		return nil, err
	}
	klog.Infof("registered job %d for user %d", record.Id, token.UserId)
	return record.ToDomain(), nil
}

// SubmitJob issues a presigned PUT for a job's input archive and moves the
// job from CREATED to SUBMITTED. Jobs in any other status are refused.
func (s *Service) SubmitJob(ctx context.Context, upload *commonjob.JobUpload) (*commonjob.UploadLocation, error) {
	if err := validateUploadPair(upload, commonjob.ContextJob, commonjob.TypeInput); err != nil {
		return nil, err
	}
	job, err := s.loadJob(ctx, upload.JobId)
	if err != nil {
		return nil, err
	}
	if job.Status != commonjob.JobCreated {
		return nil, commonerrors.NewInvalidTransition(
			fmt.Sprintf("job %d cannot accept input in status %s", job.Id, job.Status))
	}
	location, err := s.store.GetUploadLocation(ctx, upload, commonjob.NewKeyPrefix(job))
	if err != nil {
		return nil, err
	}
	job.InputLocation = location.Url
	if err = job.Transition(commonjob.JobSubmitted); err != nil {
		return nil, err
	}
	if _, err = s.db.SaveJob(ctx, dbclient.NewJobRecord(job)); err != nil {
		return nil, err
	}
	klog.Infof("job %d input upload issued, status %s", job.Id, job.Status)
	return location, nil
}

// SubmitJobConfig issues a presigned PUT for a job's configuration document.
// Unlike SubmitJob it carries no state requirement, configuration can be
// replaced at any point in the job's life.
func (s *Service) SubmitJobConfig(ctx context.Context, upload *commonjob.JobUpload) (*commonjob.UploadLocation, error) {
	if err := validateUploadPair(upload, commonjob.ContextJob, commonjob.TypeConfig); err != nil {
		return nil, err
	}
	job, err := s.loadJob(ctx, upload.JobId)
	if err != nil {
		return nil, err
	}
	location, err := s.store.GetUploadLocation(ctx, upload, commonjob.NewKeyPrefix(job))
	if err != nil {
		return nil, err
	}
	job.ConfigLocation = location.Url
	if _, err = s.db.SaveJob(ctx, dbclient.NewJobRecord(job)); err != nil {
		return nil, err
	}
	return location, nil
}

// GetJob returns a single job.
func (s *Service) GetJob(ctx context.Context, id int64) (*commonjob.Job, error) {
	return s.loadJob(ctx, id)
}

// ListJobs pages through all jobs, newest first.
func (s *Service) ListJobs(ctx context.Context, limit, offset int) ([]*commonjob.Job, error) {
	records, err := s.db.ListJobs(ctx, limit, offset)
	if err != nil {
		return nil, err
	}
	jobs := make([]*commonjob.Job, 0, len(records))
	for _, record := range records {
		jobs = append(jobs, record.ToDomain())
	}
	return jobs, nil
}

// GetJobsByStatus returns every job currently in status.
func (s *Service) GetJobsByStatus(ctx context.Context, status commonjob.JobStatus) ([]*commonjob.Job, error) {
	records, err := s.db.GetJobsByStatus(ctx, status)
	if err != nil {
		return nil, err
	}
	jobs := make([]*commonjob.Job, 0, len(records))
	for _, record := range records {
		jobs = append(jobs, record.ToDomain())
	}
	return jobs, nil
}

// validateUploadPair validates UploadPair and returns the result.
func validateUploadPair(upload *commonjob.JobUpload, context commonjob.UploadContext,
	uploadType commonjob.UploadType) error {
	if upload == nil {
		return commonerrors.NewBadRequest("the upload is empty")
	}
	if err := upload.Validate(); err != nil {
		return err
	}
	if upload.Context != context || upload.Type != uploadType {
		return commonerrors.NewBadRequest(fmt.Sprintf(
			"expected a %s/%s upload, got %s/%s", context, uploadType, upload.Context, upload.Type))
	}
	return nil
}
