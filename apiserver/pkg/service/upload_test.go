/*
 * Copyright (C) 2025-2026, Advanced Micro Devices, Inc. All rights reserved.
 * See LICENSE for license information.
 */

package service

import (
	"context"
	"path"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	dbclient "github.com/epiforge/fredcp/common/pkg/database/client"
	mock_client "github.com/epiforge/fredcp/common/pkg/database/client/mock"
	commonerrors "github.com/epiforge/fredcp/common/pkg/errors"
	commonjob "github.com/epiforge/fredcp/common/pkg/job"
	"github.com/epiforge/fredcp/common/pkg/s3"
	mock_s3 "github.com/epiforge/fredcp/common/pkg/s3/mock"
)

func testJobRecordWithLocations(id int64, inputUrl, configUrl string) *dbclient.Job {
	return dbclient.NewJobRecord(&commonjob.Job{
		Id:             id,
		UserId:         42,
		Status:         commonjob.JobProcessing,
		CreatedAt:      testCreatedAt,
		UpdatedAt:      testCreatedAt,
		InputLocation:  inputUrl,
		ConfigLocation: configUrl,
	})
}

func TestGetJobUploads(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()

	inputUrl := "https://fred-uploads.s3.us-east-1.amazonaws.com/jobs/1/2026/03/14/092653/job_input.zip"
	configUrl := "https://fred-uploads.s3.us-east-1.amazonaws.com/jobs/1/2026/03/14/092653/job_config.json"
	runConfigUrl := "https://fred-uploads.s3.us-east-1.amazonaws.com/jobs/1/2026/03/14/092653/run_5_config.json"

	t.Run("enumerate persisted locations", func(t *testing.T) {
		mockDB := mock_client.NewMockInterface(ctrl)
		mockStore := mock_s3.NewMockInterface(ctrl)
		svc := NewService(mockDB, mockStore)

		run5 := dbclient.NewRunRecord(&commonjob.Run{
			Id: 5, JobId: 1, UserId: 42,
			Status: commonjob.RunQueued, PodPhase: commonjob.PodPending,
			ConfigUrl: runConfigUrl, CreatedAt: testCreatedAt,
		})
		// A run that never had its config uploaded contributes nothing.
		run6 := testRunRecord(6, 1, commonjob.RunQueued, commonjob.PodPending)

		mockDB.EXPECT().GetJob(ctx, int64(1)).Return(testJobRecordWithLocations(1, inputUrl, configUrl), nil)
		mockDB.EXPECT().GetRunsByJobId(ctx, int64(1)).Return([]*dbclient.Run{run5, run6}, nil)

		uploads, err := svc.GetJobUploads(ctx, 1, false)
		require.NoError(t, err)
		require.Len(t, uploads, 3)

		assert.Equal(t, commonjob.ContextJob, uploads[0].Context)
		assert.Equal(t, commonjob.TypeInput, uploads[0].Type)
		assert.Equal(t, inputUrl, uploads[0].Location.Url)
		assert.Equal(t, commonjob.ContextJob, uploads[1].Context)
		assert.Equal(t, commonjob.TypeConfig, uploads[1].Type)
		assert.Equal(t, configUrl, uploads[1].Location.Url)
		assert.Equal(t, commonjob.ContextRun, uploads[2].Context)
		assert.Equal(t, commonjob.TypeConfig, uploads[2].Type)
		assert.Equal(t, int64(5), uploads[2].RunId)
		assert.Equal(t, runConfigUrl, uploads[2].Location.Url)
		for _, upload := range uploads {
			assert.Nil(t, upload.Content)
		}
	})

	t.Run("include content records per object failures", func(t *testing.T) {
		mockDB := mock_client.NewMockInterface(ctrl)
		mockStore := mock_s3.NewMockInterface(ctrl)
		svc := NewService(mockDB, mockStore)

		run5 := dbclient.NewRunRecord(&commonjob.Run{
			Id: 5, JobId: 1, UserId: 42,
			Status: commonjob.RunQueued, PodPhase: commonjob.PodPending,
			ConfigUrl: runConfigUrl, CreatedAt: testCreatedAt,
		})

		mockDB.EXPECT().GetJob(ctx, int64(1)).Return(testJobRecordWithLocations(1, inputUrl, ""), nil)
		mockDB.EXPECT().GetRunsByJobId(ctx, int64(1)).Return([]*dbclient.Run{run5}, nil)
		mockStore.EXPECT().ReadContent(ctx, commonjob.NewUploadLocation(inputUrl)).
			Return(&s3.UploadContent{Key: "jobs/1/2026/03/14/092653/job_input.zip", Kind: s3.KindZip, Size: 512}, nil)
		mockStore.EXPECT().ReadContent(ctx, commonjob.NewUploadLocation(runConfigUrl)).
			Return(nil, commonerrors.NewStorageError("object read failed"))

		uploads, err := svc.GetJobUploads(ctx, 1, true)
		require.NoError(t, err)
		require.Len(t, uploads, 2)

		content, ok := uploads[0].Content.(*s3.UploadContent)
		require.True(t, ok)
		assert.Equal(t, s3.KindZip, content.Kind)
		assert.Empty(t, uploads[0].Location.Errors)

		assert.Nil(t, uploads[1].Content)
		require.Len(t, uploads[1].Location.Errors, 1)
		assert.Contains(t, uploads[1].Location.Errors[0], "object read failed")
	})

	t.Run("unknown job", func(t *testing.T) {
		mockDB := mock_client.NewMockInterface(ctrl)
		mockStore := mock_s3.NewMockInterface(ctrl)
		svc := NewService(mockDB, mockStore)

		mockDB.EXPECT().GetJob(ctx, int64(9)).Return(nil, commonerrors.NewNotFound(commonjob.JobKind, "9"))

		_, err := svc.GetJobUploads(ctx, 9, false)
		require.Error(t, err)
		assert.Equal(t, commonerrors.JobNotFound, commonerrors.GetErrorCode(err))
	})
}

func TestArchiveUploads(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()

	t.Run("dry run without threshold reports deduped set", func(t *testing.T) {
		mockDB := mock_client.NewMockInterface(ctrl)
		mockStore := mock_s3.NewMockInterface(ctrl)
		svc := NewService(mockDB, mockStore)

		locations := []*commonjob.UploadLocation{
			commonjob.NewUploadLocation("https://store/a.zip"),
			nil,
			commonjob.NewUploadLocation("https://store/a.zip"),
			commonjob.NewUploadLocation("https://store/b.json"),
		}

		got := svc.ArchiveUploads(ctx, locations, nil, true)
		require.Len(t, got, 2)
		assert.Equal(t, "https://store/a.zip", got[0].Url)
		assert.Equal(t, "https://store/b.json", got[1].Url)
	})

	t.Run("dry run with threshold filters by age", func(t *testing.T) {
		mockDB := mock_client.NewMockInterface(ctrl)
		mockStore := mock_s3.NewMockInterface(ctrl)
		svc := NewService(mockDB, mockStore)

		threshold := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
		locations := []*commonjob.UploadLocation{
			commonjob.NewUploadLocation("https://store/a.zip"),
			commonjob.NewUploadLocation("https://store/b.json"),
		}

		mockStore.EXPECT().FilterByAge(ctx, gomock.Any(), threshold).DoAndReturn(
			func(_ context.Context, deduped []*commonjob.UploadLocation, _ time.Time) []*commonjob.UploadLocation {
				require.Len(t, deduped, 2)
				return deduped[:1]
			})

		got := svc.ArchiveUploads(ctx, locations, &threshold, true)
		require.Len(t, got, 1)
		assert.Equal(t, "https://store/a.zip", got[0].Url)
	})

	t.Run("archive delegates the deduped set", func(t *testing.T) {
		mockDB := mock_client.NewMockInterface(ctrl)
		mockStore := mock_s3.NewMockInterface(ctrl)
		svc := NewService(mockDB, mockStore)

		threshold := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
		locations := []*commonjob.UploadLocation{
			commonjob.NewUploadLocation("https://store/a.zip"),
			commonjob.NewUploadLocation("https://store/a.zip"),
		}

		mockStore.EXPECT().ArchiveUploads(ctx, gomock.Any(), &threshold).DoAndReturn(
			func(_ context.Context, deduped []*commonjob.UploadLocation, _ *time.Time) []*commonjob.UploadLocation {
				require.Len(t, deduped, 1)
				return deduped
			})

		got := svc.ArchiveUploads(ctx, locations, &threshold, false)
		require.Len(t, got, 1)
	})
}

func TestDownloadJobUploads(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()

	inputUrl := "https://fred-uploads.s3.us-east-1.amazonaws.com/jobs/1/2026/03/14/092653/job_input.zip"
	runConfigUrl := "https://fred-uploads.s3.us-east-1.amazonaws.com/jobs/1/2026/03/14/092653/run_5_config.json"

	t.Run("materialize every upload", func(t *testing.T) {
		mockDB := mock_client.NewMockInterface(ctrl)
		mockStore := mock_s3.NewMockInterface(ctrl)
		svc := NewService(mockDB, mockStore)

		run5 := dbclient.NewRunRecord(&commonjob.Run{
			Id: 5, JobId: 1, UserId: 42,
			Status: commonjob.RunQueued, PodPhase: commonjob.PodPending,
			ConfigUrl: runConfigUrl, CreatedAt: testCreatedAt,
		})

		mockDB.EXPECT().GetJob(ctx, int64(1)).Return(testJobRecordWithLocations(1, inputUrl, ""), nil)
		mockDB.EXPECT().GetRunsByJobId(ctx, int64(1)).Return([]*dbclient.Run{run5}, nil)
		mockStore.EXPECT().DownloadUpload(ctx, gomock.Any(), "/tmp/work").Times(2).DoAndReturn(
			func(_ context.Context, location *commonjob.UploadLocation, dir string) (string, error) {
				return path.Join(dir, path.Base(location.Url)), nil
			})

		paths, err := svc.DownloadJobUploads(ctx, 1, "/tmp/work")
		require.NoError(t, err)
		require.Len(t, paths, 2)
		assert.Equal(t, "/tmp/work/job_input.zip", paths[0])
		assert.Equal(t, "/tmp/work/run_5_config.json", paths[1])
	})

	t.Run("download failure aborts", func(t *testing.T) {
		mockDB := mock_client.NewMockInterface(ctrl)
		mockStore := mock_s3.NewMockInterface(ctrl)
		svc := NewService(mockDB, mockStore)

		mockDB.EXPECT().GetJob(ctx, int64(1)).Return(testJobRecordWithLocations(1, inputUrl, ""), nil)
		mockDB.EXPECT().GetRunsByJobId(ctx, int64(1)).Return([]*dbclient.Run{}, nil)
		mockStore.EXPECT().DownloadUpload(ctx, gomock.Any(), "/tmp/work").
			Return("", commonerrors.NewStorageError("download failed"))

		_, err := svc.DownloadJobUploads(ctx, 1, "/tmp/work")
		require.Error(t, err)
		assert.Equal(t, commonerrors.StorageError, commonerrors.GetErrorCode(err))
	})
}
