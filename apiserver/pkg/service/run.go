/*
 * Copyright (C) 2025-2026, Advanced Micro Devices, Inc. All rights reserved.
 * See LICENSE for license information.
 */

package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"k8s.io/klog/v2"

	dbclient "github.com/epiforge/fredcp/common/pkg/database/client"
	commonerrors "github.com/epiforge/fredcp/common/pkg/errors"
	commonjob "github.com/epiforge/fredcp/common/pkg/job"
	"github.com/epiforge/fredcp/common/pkg/results"
)

// RunResultURL pairs a run with a presigned download for its results archive.
type RunResultURL struct {
	RunId int64  `json:"run_id"`
	Url   string `json:"url"`
}

// SubmitRuns persists one run per request and issues a presigned PUT for
// each run's configuration document. An empty request list is a no-op.
// Dispatching the persisted runs to the executor is the caller's job.
func (s *Service) SubmitRuns(ctx context.Context, requests []map[string]interface{},
	token *commonjob.IdentityToken, clientVersion string) ([]*commonjob.Run, error) {
	if token == nil {
		return nil, commonerrors.NewBadRequest("identity token is required")
	}
	if len(requests) == 0 {
		return []*commonjob.Run{}, nil
	}
	version := commonjob.ExtractClientVersion(clientVersion)

	jobs := make(map[int64]*commonjob.Job)
	runs := make([]*commonjob.Run, 0, len(requests))
	for _, request := range requests {
		jobId, err := runRequestJobId(request)
		if err != nil {
			return nil, err
		}
		job, ok := jobs[jobId]
		if !ok {
			if job, err = s.loadJob(ctx, jobId); err != nil {
				return nil, err
			}
			jobs[jobId] = job
		}

		run := commonjob.NewRun(jobId, token.UserId, request, version)
		record, err := s.db.SaveRun(ctx, dbclient.NewRunRecord(run))
		if err != nil {
			klog.ErrorS(err, "failed to persist run", "job", jobId)
			return nil, err
		}
		run.Id = record.Id

		upload := &commonjob.JobUpload{
			Context: commonjob.ContextRun,
			Type:    commonjob.TypeConfig,
			JobId:   jobId,
			RunId:   run.Id,
		}
		location, err := s.store.GetUploadLocation(ctx, upload, commonjob.NewKeyPrefix(job))
		if err != nil {
			return nil, err
		}
		run.ConfigUrl = location.Url
		if _, err = s.db.SaveRun(ctx, dbclient.NewRunRecord(run)); err != nil {
			return nil, err
		}
		runs = append(runs, run)
	}
	klog.Infof("submitted %d runs for user %d, client version %s", len(runs), token.UserId, version)
	return runs, nil
}

// SubmitRunConfig issues a presigned PUT for an existing run's configuration
// document. The object key derives from the run's job, not from the upload.
func (s *Service) SubmitRunConfig(ctx context.Context, upload *commonjob.JobUpload) (*commonjob.UploadLocation, error) {
	if err := validateUploadPair(upload, commonjob.ContextRun, commonjob.TypeConfig); err != nil {
		return nil, err
	}
	run, err := s.loadRun(ctx, upload.RunId)
	if err != nil {
		return nil, err
	}
	job, err := s.loadJob(ctx, run.JobId)
	if err != nil {
		return nil, err
	}
	location, err := s.store.GetUploadLocation(ctx, upload, commonjob.NewKeyPrefix(job))
	if err != nil {
		return nil, err
	}
	run.ConfigUrl = location.Url
	if _, err = s.db.SaveRun(ctx, dbclient.NewRunRecord(run)); err != nil {
		return nil, err
	}
	return location, nil
}

// GetRunsByJobId returns a job's runs ordered by id.
func (s *Service) GetRunsByJobId(ctx context.Context, jobId int64) ([]*commonjob.Run, error) {
	records, err := s.db.GetRunsByJobId(ctx, jobId)
	if err != nil {
		return nil, err
	}
	runs := make([]*commonjob.Run, 0, len(records))
	for _, record := range records {
		runs = append(runs, record.ToDomain())
	}
	return runs, nil
}

// SaveRun writes back a reconciled run.
func (s *Service) SaveRun(ctx context.Context, run *commonjob.Run) error {
	_, err := s.db.SaveRun(ctx, dbclient.NewRunRecord(run))
	return err
}

// DeleteRun removes a run record.
func (s *Service) DeleteRun(ctx context.Context, runId int64) error {
	return s.db.DeleteRun(ctx, runId)
}

// UploadResults packages the simulation output under resultsDir, stores the
// archive server-side and completes the run. The persisted results_url is
// the permanent form of the archive's address, query-free.
func (s *Service) UploadResults(ctx context.Context, jobId, runId int64, resultsDir string) (*commonjob.UploadLocation, error) {
	run, err := s.loadRun(ctx, runId)
	if err != nil {
		return nil, err
	}
	if run.JobId != jobId {
		return nil, commonerrors.NewBadRequest(
			fmt.Sprintf("run %d does not belong to job %d", runId, jobId))
	}
	job, err := s.loadJob(ctx, jobId)
	if err != nil {
		return nil, err
	}
	packaged, err := results.Package(resultsDir)
	if err != nil {
		return nil, err
	}
	location, err := s.store.UploadResults(ctx, jobId, runId, packaged.Bytes, commonjob.NewKeyPrefix(job))
	if err != nil {
		return nil, err
	}
	cleanUrl := stripQuery(location.Url)
	run.MarkResultsUploaded(cleanUrl, time.Now().UTC())
	if _, err = s.db.SaveRun(ctx, dbclient.NewRunRecord(run)); err != nil {
		return nil, err
	}
	klog.Infof("results uploaded for job %d run %d: %d files, %d bytes",
		jobId, runId, packaged.FileCount, packaged.TotalBytes)
	return commonjob.NewUploadLocation(cleanUrl), nil
}

// GetRunResults issues a presigned GET per run of the job. The address is
// rebuilt from the job's key prefix, the persisted results_url is not
// consulted.
func (s *Service) GetRunResults(ctx context.Context, jobId int64, expireSecond int) ([]RunResultURL, error) {
	job, err := s.loadJob(ctx, jobId)
	if err != nil {
		return nil, err
	}
	records, err := s.db.GetRunsByJobId(ctx, jobId)
	if err != nil {
		return nil, err
	}
	prefix := commonjob.NewKeyPrefix(job)
	urls := make([]RunResultURL, 0, len(records))
	for _, record := range records {
		canonical := s.store.ResultsURL(prefix, record.Id)
		location, err := s.store.GetDownloadURL(ctx, canonical, expireSecond)
		if err != nil {
			return nil, err
		}
		urls = append(urls, RunResultURL{RunId: record.Id, Url: location.Url})
	}
	return urls, nil
}

// runRequestJobId pulls the referenced job out of a submission payload. The
// HTTP layer decodes JSON numbers as float64.
func runRequestJobId(request map[string]interface{}) (int64, error) {
	raw, ok := request["jobId"]
	if !ok {
		raw, ok = request["job_id"]
	}
	if !ok {
		return 0, commonerrors.NewBadRequest("run request is missing jobId")
	}
	switch v := raw.(type) {
	case float64:
		return int64(v), nil
	case int:
		return int64(v), nil
	case int64:
		return v, nil
	case json.Number:
		id, err := v.Int64()
		if err != nil {
			return 0, commonerrors.NewBadRequest("run request jobId is not an integer")
		}
		return id, nil
	}
	return 0, commonerrors.NewBadRequest("run request jobId must be a number")
}
