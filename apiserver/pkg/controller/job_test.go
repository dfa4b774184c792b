/*
 * Copyright (C) 2025-2026, Advanced Micro Devices, Inc. All rights reserved.
 * See LICENSE for license information.
 */

package controller

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	dbclient "github.com/epiforge/fredcp/common/pkg/database/client"
	commonjob "github.com/epiforge/fredcp/common/pkg/job"
)

func TestRegisterJob(t *testing.T) {
	ctx := context.Background()

	t.Run("happy path", func(t *testing.T) {
		f := newFixture(t)
		f.db.EXPECT().SaveJob(ctx, gomock.Any()).DoAndReturn(
			func(_ context.Context, record *dbclient.Job) (*dbclient.Job, error) {
				record.Id = 1
				return record, nil
			})

		result := f.ctrl.RegisterJob(ctx, tokenHeader, []string{"info_job"})
		require.True(t, result.Ok(), result.Err())
		job := result.Value()
		assert.Equal(t, int64(1), job.Id)
		assert.Equal(t, int64(42), job.UserId)
		assert.Equal(t, []string{"info_job"}, job.Tags)
		assert.Equal(t, commonjob.JobCreated, job.Status)
	})

	t.Run("invalid token", func(t *testing.T) {
		f := newFixture(t)
		result := f.ctrl.RegisterJob(ctx, "Bearer %%%", []string{"a"})
		require.False(t, result.Ok())
		assert.Equal(t, http.StatusBadRequest, result.StatusCode())
		assert.Contains(t, result.Err(), "base64")
	})
}

func TestSubmitUploadRouting(t *testing.T) {
	ctx := context.Background()

	t.Run("unknown pair", func(t *testing.T) {
		f := newFixture(t)
		result := f.ctrl.SubmitUpload(ctx, &commonjob.JobUpload{
			Context: commonjob.ContextRun, Type: commonjob.TypeOutput, JobId: 1, RunId: 1,
		})
		require.False(t, result.Ok())
		assert.Equal(t, http.StatusBadRequest, result.StatusCode())
	})

	t.Run("nil upload", func(t *testing.T) {
		f := newFixture(t)
		result := f.ctrl.SubmitUpload(ctx, nil)
		require.False(t, result.Ok())
		assert.Equal(t, http.StatusBadRequest, result.StatusCode())
	})

	t.Run("job input routes to submit job", func(t *testing.T) {
		f := newFixture(t)
		job := dbclient.NewJobRecord(&commonjob.Job{
			Id: 1, UserId: 42, Status: commonjob.JobCreated,
			CreatedAt: testCreatedAt, UpdatedAt: testCreatedAt,
		})
		f.db.EXPECT().GetJob(ctx, int64(1)).Return(job, nil)
		f.store.EXPECT().GetUploadLocation(ctx, gomock.Any(), gomock.Any()).Return(
			commonjob.NewUploadLocation("https://bucket.s3.amazonaws.com/jobs/1/2026/03/14/092653/job_input.zip?sig=x"), nil)
		f.db.EXPECT().SaveJob(ctx, gomock.Any()).DoAndReturn(
			func(_ context.Context, record *dbclient.Job) (*dbclient.Job, error) {
				assert.Equal(t, string(commonjob.JobSubmitted), record.Status)
				return record, nil
			})

		result := f.ctrl.SubmitUpload(ctx, &commonjob.JobUpload{
			Context: commonjob.ContextJob, Type: commonjob.TypeInput, JobId: 1,
		})
		require.True(t, result.Ok(), result.Err())
		assert.True(t, strings.Contains(result.Value().Url, "job_input.zip"))
	})
}

func TestGuardTotality(t *testing.T) {
	ctx := context.Background()

	t.Run("raw repository error becomes generic failure", func(t *testing.T) {
		f := newFixture(t)
		f.db.EXPECT().ListJobs(ctx, 10, 0).Return(nil, errors.New("pq: connection reset"))

		result := f.ctrl.ListJobs(ctx, 10, 0)
		require.False(t, result.Ok())
		assert.Equal(t, http.StatusInternalServerError, result.StatusCode())
		assert.Contains(t, result.Err(), "An unexpected error occurred while")
		assert.NotContains(t, result.Err(), "pq:")
	})

	t.Run("coded error keeps its message", func(t *testing.T) {
		f := newFixture(t)
		result := f.ctrl.GetJob(ctx, -1)
		require.False(t, result.Ok())
		assert.Equal(t, http.StatusBadRequest, result.StatusCode())
		assert.Contains(t, result.Err(), "must be positive")
	})
}
