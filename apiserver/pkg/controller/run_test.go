/*
 * Copyright (C) 2025-2026, Advanced Micro Devices, Inc. All rights reserved.
 * See LICENSE for license information.
 */

package controller

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/epiforge/fredcp/apiserver/pkg/service"
	"github.com/epiforge/fredcp/common/pkg/batch"
	mock_batch "github.com/epiforge/fredcp/common/pkg/batch/mock"
	dbclient "github.com/epiforge/fredcp/common/pkg/database/client"
	mock_client "github.com/epiforge/fredcp/common/pkg/database/client/mock"
	commonjob "github.com/epiforge/fredcp/common/pkg/job"
	mock_s3 "github.com/epiforge/fredcp/common/pkg/s3/mock"
)

var testCreatedAt = time.Date(2026, 3, 14, 9, 26, 53, 0, time.UTC)

// tokenHeader is {"user_id": 42, "scopes_hash": "abc123"}.
var tokenHeader = (&commonjob.IdentityToken{UserId: 42, ScopesHash: "abc123"}).Encode()

type fixture struct {
	db       *mock_client.MockInterface
	store    *mock_s3.MockInterface
	executor *mock_batch.MockGateway
	ctrl     *Controller
}

func newFixture(t *testing.T) *fixture {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)
	f := &fixture{
		db:       mock_client.NewMockInterface(ctrl),
		store:    mock_s3.NewMockInterface(ctrl),
		executor: mock_batch.NewMockGateway(ctrl),
	}
	f.ctrl = New(service.NewService(f.db, f.store), f.executor)
	return f
}

func storedRun(id, jobId int64, status commonjob.RunStatus, phase commonjob.PodPhase, executorId string) *dbclient.Run {
	return dbclient.NewRunRecord(&commonjob.Run{
		Id:               id,
		JobId:            jobId,
		UserId:           42,
		Status:           status,
		PodPhase:         phase,
		BatchExecutorId:  executorId,
		EpxClientVersion: "11.1.1",
		CreatedAt:        testCreatedAt,
	})
}

func TestSubmitRunsDispatch(t *testing.T) {
	ctx := context.Background()

	t.Run("persist then dispatch", func(t *testing.T) {
		f := newFixture(t)
		job := dbclient.NewJobRecord(&commonjob.Job{
			Id: 1, UserId: 42, Status: commonjob.JobSubmitted,
			CreatedAt: testCreatedAt, UpdatedAt: testCreatedAt,
		})
		f.db.EXPECT().GetJob(ctx, int64(1)).Return(job, nil)
		saved := 0
		f.db.EXPECT().SaveRun(ctx, gomock.Any()).DoAndReturn(
			func(_ context.Context, record *dbclient.Run) (*dbclient.Run, error) {
				saved++
				record.Id = 1
				return record, nil
			}).Times(3) // initial persist, config url, executor id
		f.store.EXPECT().GetUploadLocation(ctx, gomock.Any(), gomock.Any()).Return(
			commonjob.NewUploadLocation("https://bucket.s3.amazonaws.com/jobs/1/x/run_1_config.json?sig=1"), nil)
		f.executor.EXPECT().SubmitRun(ctx, gomock.Any()).DoAndReturn(
			func(_ context.Context, run *commonjob.Run) error {
				assert.Equal(t, int64(1), run.JobId)
				assert.Equal(t, int64(1), run.Id)
				run.BatchExecutorId = "b-1"
				return nil
			})

		result := f.ctrl.SubmitRuns(ctx, []map[string]interface{}{{"jobId": float64(1)}},
			tokenHeader, "fredcli/11.1.1")
		require.True(t, result.Ok(), result.Err())
		runs := result.Value()
		require.Len(t, runs, 1)
		assert.Equal(t, "b-1", runs[0].BatchExecutorId)
		assert.NotEmpty(t, runs[0].ConfigUrl)
		assert.Equal(t, 3, saved)
	})

	t.Run("dispatch failure rolls the submission back", func(t *testing.T) {
		f := newFixture(t)
		job := dbclient.NewJobRecord(&commonjob.Job{
			Id: 1, UserId: 42, Status: commonjob.JobSubmitted,
			CreatedAt: testCreatedAt, UpdatedAt: testCreatedAt,
		})
		f.db.EXPECT().GetJob(ctx, int64(1)).Return(job, nil)
		f.db.EXPECT().SaveRun(ctx, gomock.Any()).DoAndReturn(
			func(_ context.Context, record *dbclient.Run) (*dbclient.Run, error) {
				record.Id = 5
				return record, nil
			}).Times(2) // persist, config url
		f.store.EXPECT().GetUploadLocation(ctx, gomock.Any(), gomock.Any()).Return(
			commonjob.NewUploadLocation("https://u"), nil)
		f.executor.EXPECT().SubmitRun(ctx, gomock.Any()).Return(errors.New("queue does not exist"))
		// both-or-neither: the persisted row must not survive the failure
		f.db.EXPECT().DeleteRun(ctx, int64(5)).Return(nil)

		result := f.ctrl.SubmitRuns(ctx, []map[string]interface{}{{"jobId": float64(1)}},
			tokenHeader, "fredcli/11.1.1")
		require.False(t, result.Ok())
		assert.Equal(t, http.StatusInternalServerError, result.StatusCode())
	})

	t.Run("partial dispatch cancels accepted runs before removal", func(t *testing.T) {
		f := newFixture(t)
		job := dbclient.NewJobRecord(&commonjob.Job{
			Id: 1, UserId: 42, Status: commonjob.JobSubmitted,
			CreatedAt: testCreatedAt, UpdatedAt: testCreatedAt,
		})
		f.db.EXPECT().GetJob(ctx, int64(1)).Return(job, nil)
		nextId := int64(10)
		f.db.EXPECT().SaveRun(ctx, gomock.Any()).DoAndReturn(
			func(_ context.Context, record *dbclient.Run) (*dbclient.Run, error) {
				if record.Id == 0 {
					nextId++
					record.Id = nextId
				}
				return record, nil
			}).Times(5) // 2x(persist, config url) + executor id of run 11
		f.store.EXPECT().GetUploadLocation(ctx, gomock.Any(), gomock.Any()).Return(
			commonjob.NewUploadLocation("https://u"), nil).Times(2)
		gomock.InOrder(
			f.executor.EXPECT().SubmitRun(ctx, gomock.Any()).DoAndReturn(
				func(_ context.Context, run *commonjob.Run) error {
					run.BatchExecutorId = "b-11"
					return nil
				}),
			f.executor.EXPECT().SubmitRun(ctx, gomock.Any()).Return(errors.New("queue is full")),
		)
		f.executor.EXPECT().CancelRun(ctx, gomock.Any()).DoAndReturn(
			func(_ context.Context, run *commonjob.Run) error {
				assert.Equal(t, int64(11), run.Id)
				return nil
			})
		f.db.EXPECT().DeleteRun(ctx, int64(11)).Return(nil)
		f.db.EXPECT().DeleteRun(ctx, int64(12)).Return(nil)

		result := f.ctrl.SubmitRuns(ctx,
			[]map[string]interface{}{{"jobId": float64(1)}, {"jobId": float64(1)}},
			tokenHeader, "fredcli/11.1.1")
		require.False(t, result.Ok())
	})

	t.Run("bad token", func(t *testing.T) {
		f := newFixture(t)
		result := f.ctrl.SubmitRuns(ctx, []map[string]interface{}{{"jobId": float64(1)}},
			"not-a-bearer", "fredcli/11.1.1")
		require.False(t, result.Ok())
		assert.Equal(t, http.StatusBadRequest, result.StatusCode())
	})
}

func TestGetRunsReconciliation(t *testing.T) {
	ctx := context.Background()

	t.Run("transition observed and persisted", func(t *testing.T) {
		f := newFixture(t)
		f.db.EXPECT().GetRunsByJobId(ctx, int64(1)).Return(
			[]*dbclient.Run{storedRun(1, 1, commonjob.RunQueued, commonjob.PodPending, "b")}, nil)
		f.executor.EXPECT().DescribeRun(ctx, gomock.Any()).Return(&batch.RunStatusDetail{
			Status: commonjob.RunRunning, PodPhase: commonjob.PodRunning,
		}, nil)
		f.db.EXPECT().SaveRun(ctx, gomock.Any()).DoAndReturn(
			func(_ context.Context, record *dbclient.Run) (*dbclient.Run, error) {
				assert.Equal(t, string(commonjob.RunRunning), record.Status)
				assert.Equal(t, string(commonjob.PodRunning), record.PodPhase)
				return record, nil
			})

		result := f.ctrl.GetRuns(ctx, 1)
		require.True(t, result.Ok(), result.Err())
		runs := result.Value()
		require.Len(t, runs, 1)
		assert.Equal(t, commonjob.RunRunning, runs[0].Status)
		assert.Equal(t, commonjob.PodRunning, runs[0].PodPhase)
	})

	t.Run("executor outage keeps stored state without a write", func(t *testing.T) {
		f := newFixture(t)
		f.db.EXPECT().GetRunsByJobId(ctx, int64(1)).Return(
			[]*dbclient.Run{storedRun(1, 1, commonjob.RunRunning, commonjob.PodRunning, "b")}, nil)
		f.executor.EXPECT().DescribeRun(ctx, gomock.Any()).Return(&batch.RunStatusDetail{
			Status:   commonjob.RunError,
			PodPhase: commonjob.PodUnknown,
			Message:  batch.ApiErrorSentinel + ": connection refused",
		}, nil)
		// no SaveRun expectation: a write would fail the test

		result := f.ctrl.GetRuns(ctx, 1)
		require.True(t, result.Ok(), result.Err())
		runs := result.Value()
		require.Len(t, runs, 1)
		assert.Equal(t, commonjob.RunRunning, runs[0].Status)
		assert.Equal(t, commonjob.PodRunning, runs[0].PodPhase)
	})

	t.Run("describe error isolates the run", func(t *testing.T) {
		f := newFixture(t)
		f.db.EXPECT().GetRunsByJobId(ctx, int64(1)).Return([]*dbclient.Run{
			storedRun(1, 1, commonjob.RunQueued, commonjob.PodPending, ""),
			storedRun(2, 1, commonjob.RunQueued, commonjob.PodPending, "b2"),
		}, nil)
		f.executor.EXPECT().DescribeRun(ctx, gomock.Any()).DoAndReturn(
			func(_ context.Context, run *commonjob.Run) (*batch.RunStatusDetail, error) {
				if run.Id == 1 {
					return nil, errors.New("run 1 has no batch executor id")
				}
				return &batch.RunStatusDetail{
					Status: commonjob.RunDone, PodPhase: commonjob.PodSucceeded,
				}, nil
			}).Times(2)
		f.db.EXPECT().SaveRun(ctx, gomock.Any()).DoAndReturn(
			func(_ context.Context, record *dbclient.Run) (*dbclient.Run, error) {
				assert.Equal(t, int64(2), record.Id)
				return record, nil
			})

		result := f.ctrl.GetRuns(ctx, 1)
		require.True(t, result.Ok(), result.Err())
		runs := result.Value()
		require.Len(t, runs, 2)
		assert.Equal(t, commonjob.RunQueued, commonjob.NormalizeRunStatus(runs[0].Status))
		assert.Equal(t, commonjob.RunDone, runs[1].Status)
	})

	t.Run("no change issues no write", func(t *testing.T) {
		f := newFixture(t)
		f.db.EXPECT().GetRunsByJobId(ctx, int64(1)).Return(
			[]*dbclient.Run{storedRun(1, 1, commonjob.RunRunning, commonjob.PodRunning, "b")}, nil)
		f.executor.EXPECT().DescribeRun(ctx, gomock.Any()).Return(&batch.RunStatusDetail{
			Status: commonjob.RunRunning, PodPhase: commonjob.PodRunning,
		}, nil)

		result := f.ctrl.GetRuns(ctx, 1)
		require.True(t, result.Ok(), result.Err())
	})

	t.Run("invalid job id", func(t *testing.T) {
		f := newFixture(t)
		result := f.ctrl.GetRuns(ctx, 0)
		require.False(t, result.Ok())
		assert.Equal(t, http.StatusBadRequest, result.StatusCode())
	})
}
