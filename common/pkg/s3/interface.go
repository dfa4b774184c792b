/*
 * Copyright (C) 2025-2026, Advanced Micro Devices, Inc. All rights reserved.
 * See LICENSE for license information.
 */

package s3

import (
	"context"
	"time"

	commonjob "github.com/epiforge/fredcp/common/pkg/job"
)

// UploadGateway brokers client access to uploaded job artifacts. Clients
// never receive credentials, only presigned URLs scoped to a single object.
type UploadGateway interface {
	// GetUploadLocation issues a presigned PUT for the artifact addressed by
	// upload under prefix.
	GetUploadLocation(ctx context.Context, upload *commonjob.JobUpload,
		prefix commonjob.KeyPrefix) (*commonjob.UploadLocation, error)
	// ReadContent fetches the object behind location and classifies it.
	ReadContent(ctx context.Context, location *commonjob.UploadLocation) (*UploadContent, error)
	// FilterByAge keeps the locations whose objects were last modified
	// before threshold. Missing objects are dropped with a warning.
	FilterByAge(ctx context.Context, locations []*commonjob.UploadLocation,
		threshold time.Time) []*commonjob.UploadLocation
	// ArchiveUploads moves objects to cold storage. Per-object failures are
	// recorded on the location and do not stop the sweep.
	ArchiveUploads(ctx context.Context, locations []*commonjob.UploadLocation,
		ageThreshold *time.Time) []*commonjob.UploadLocation
	// DownloadUpload materializes the object behind location into localDir
	// and returns the local path.
	DownloadUpload(ctx context.Context, location *commonjob.UploadLocation,
		localDir string) (string, error)
}

// ResultsGateway stores simulation results server-side and hands out
// download URLs for them.
type ResultsGateway interface {
	// UploadResults writes the packaged results archive of a run.
	UploadResults(ctx context.Context, jobId, runId int64, zipBytes []byte,
		prefix commonjob.KeyPrefix) (*commonjob.UploadLocation, error)
	// ResultsURL returns the permanent URL a run's results archive lives at,
	// whether or not the object exists yet.
	ResultsURL(prefix commonjob.KeyPrefix, runId int64) string
	// GetDownloadURL issues a presigned GET for an existing results object.
	// expireSecond falls back to the configured download expiry when <= 0.
	GetDownloadURL(ctx context.Context, resultsUrl string, expireSecond int) (*commonjob.UploadLocation, error)
}

type Interface interface {
	UploadGateway
	ResultsGateway
}
