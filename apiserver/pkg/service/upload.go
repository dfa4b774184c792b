/*
 * Copyright (C) 2025-2026, Advanced Micro Devices, Inc. All rights reserved.
 * See LICENSE for license information.
 */

package service

import (
	"context"
	"time"

	"k8s.io/klog/v2"

	commonjob "github.com/epiforge/fredcp/common/pkg/job"
)

// GetJobUploads enumerates a job's artifacts from the persisted locations:
// the input archive, the job configuration and every run's configuration.
// With includeContent the object behind each location is fetched and
// classified; a failed read is recorded on the location instead of failing
// the enumeration.
func (s *Service) GetJobUploads(ctx context.Context, jobId int64, includeContent bool) ([]*commonjob.JobUpload, error) {
	job, err := s.loadJob(ctx, jobId)
	if err != nil {
		return nil, err
	}
	runs, err := s.GetRunsByJobId(ctx, jobId)
	if err != nil {
		return nil, err
	}

	uploads := make([]*commonjob.JobUpload, 0, len(runs)+2)
	if job.InputLocation != "" {
		uploads = append(uploads, &commonjob.JobUpload{
			Context:  commonjob.ContextJob,
			Type:     commonjob.TypeInput,
			JobId:    jobId,
			Location: commonjob.NewUploadLocation(job.InputLocation),
		})
	}
	if job.ConfigLocation != "" {
		uploads = append(uploads, &commonjob.JobUpload{
			Context:  commonjob.ContextJob,
			Type:     commonjob.TypeConfig,
			JobId:    jobId,
			Location: commonjob.NewUploadLocation(job.ConfigLocation),
		})
	}
	for _, run := range runs {
		if run.ConfigUrl == "" {
			continue
		}
		uploads = append(uploads, &commonjob.JobUpload{
			Context:  commonjob.ContextRun,
			Type:     commonjob.TypeConfig,
			JobId:    jobId,
			RunId:    run.Id,
			Location: commonjob.NewUploadLocation(run.ConfigUrl),
		})
	}

	if includeContent {
		for _, upload := range uploads {
			content, err := s.store.ReadContent(ctx, upload.Location)
			if err != nil {
				klog.Warningf("failed to read upload content for job %d: %v", jobId, err)
				upload.Location.AppendError(err.Error())
				continue
			}
			upload.Content = content
		}
	}
	return uploads, nil
}

// ArchiveUploads moves the given objects to cold storage, oldest-reference
// first order preserved, duplicate URLs collapsed. A dry run only reports
// which objects pass the age filter and touches nothing.
func (s *Service) ArchiveUploads(ctx context.Context, locations []*commonjob.UploadLocation,
	ageThreshold *time.Time, dryRun bool) []*commonjob.UploadLocation {
	deduped := dedupeLocations(locations)
	if dryRun {
		if ageThreshold == nil {
			return deduped
		}
		return s.store.FilterByAge(ctx, deduped, *ageThreshold)
	}
	return s.store.ArchiveUploads(ctx, deduped, ageThreshold)
}

// DownloadJobUploads materializes every upload of a job into dir and returns
// the local file paths.
func (s *Service) DownloadJobUploads(ctx context.Context, jobId int64, dir string) ([]string, error) {
	uploads, err := s.GetJobUploads(ctx, jobId, false)
	if err != nil {
		return nil, err
	}
	paths := make([]string, 0, len(uploads))
	for _, upload := range uploads {
		path, err := s.store.DownloadUpload(ctx, upload.Location, dir)
		if err != nil {
			return nil, err
		}
		paths = append(paths, path)
	}
	klog.Infof("downloaded %d uploads of job %d into %s", len(paths), jobId, dir)
	return paths, nil
}

// dedupeLocations collapses locations that point at the same URL, keeping
// the first occurrence.
func dedupeLocations(locations []*commonjob.UploadLocation) []*commonjob.UploadLocation {
	seen := make(map[string]bool, len(locations))
	deduped := make([]*commonjob.UploadLocation, 0, len(locations))
	for _, location := range locations {
		if location == nil || seen[location.Url] {
			continue
		}
		seen[location.Url] = true
		deduped = append(deduped, location)
	}
	return deduped
}
