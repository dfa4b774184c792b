/*
 * Copyright (C) 2025-2026, Advanced Micro Devices, Inc. All rights reserved.
 * See LICENSE for license information.
 */

package s3

import (
	"context"
	"os"
	"path/filepath"
	"time"

	commonjob "github.com/epiforge/fredcp/common/pkg/job"
)

const dummyBaseURL = "https://dummy.s3.amazonaws.com"

// DummyGateway satisfies Interface without an object store behind it. Local
// environments and tests use it; every artifact resolves to a fixed URL.
type DummyGateway struct {
	BaseURL string
}

func NewDummyGateway() *DummyGateway {
	return &DummyGateway{BaseURL: dummyBaseURL}
}

func (d *DummyGateway) GetUploadLocation(_ context.Context, upload *commonjob.JobUpload,
	prefix commonjob.KeyPrefix) (*commonjob.UploadLocation, error) {
	key, err := upload.Key(prefix)
	if err != nil {
		return nil, err
	}
	return commonjob.NewUploadLocation(d.BaseURL + "/" + key), nil
}

func (d *DummyGateway) ReadContent(_ context.Context, location *commonjob.UploadLocation) (*UploadContent, error) {
	key, err := ExtractKeyFromURL(location.Url)
	if err != nil {
		return nil, err
	}
	return &UploadContent{Key: key, Kind: KindText}, nil
}

func (d *DummyGateway) FilterByAge(_ context.Context, locations []*commonjob.UploadLocation,
	_ time.Time) []*commonjob.UploadLocation {
	return locations
}

func (d *DummyGateway) ArchiveUploads(_ context.Context, locations []*commonjob.UploadLocation,
	_ *time.Time) []*commonjob.UploadLocation {
	return locations
}

func (d *DummyGateway) DownloadUpload(_ context.Context, location *commonjob.UploadLocation,
	localDir string) (string, error) {
	key, err := ExtractKeyFromURL(location.Url)
	if err != nil {
		return "", err
	}
	localPath := filepath.Join(localDir, filepath.Base(key))
	if err := os.MkdirAll(localDir, 0755); err != nil {
		return "", err
	}
	if err := os.WriteFile(localPath, nil, 0644); err != nil {
		return "", err
	}
	return localPath, nil
}

func (d *DummyGateway) UploadResults(_ context.Context, _, runId int64, _ []byte,
	prefix commonjob.KeyPrefix) (*commonjob.UploadLocation, error) {
	return commonjob.NewUploadLocation(d.ResultsURL(prefix, runId)), nil
}

func (d *DummyGateway) ResultsURL(prefix commonjob.KeyPrefix, runId int64) string {
	return d.BaseURL + "/" + prefix.RunResultsKey(runId)
}

func (d *DummyGateway) GetDownloadURL(_ context.Context, resultsUrl string, _ int) (*commonjob.UploadLocation, error) {
	key, err := ExtractKeyFromURL(resultsUrl)
	if err != nil {
		return nil, err
	}
	return commonjob.NewUploadLocation(d.BaseURL + "/" + key), nil
}
