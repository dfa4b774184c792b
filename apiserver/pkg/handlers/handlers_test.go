/*
 * Copyright (C) 2025-2026, Advanced Micro Devices, Inc. All rights reserved.
 * See LICENSE for license information.
 */

package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/epiforge/fredcp/apiserver/pkg/controller"
	"github.com/epiforge/fredcp/apiserver/pkg/service"
	"github.com/epiforge/fredcp/common/pkg/batch"
	mock_batch "github.com/epiforge/fredcp/common/pkg/batch/mock"
	"github.com/epiforge/fredcp/common/pkg/common"
	dbclient "github.com/epiforge/fredcp/common/pkg/database/client"
	mock_client "github.com/epiforge/fredcp/common/pkg/database/client/mock"
	commonjob "github.com/epiforge/fredcp/common/pkg/job"
	mock_s3 "github.com/epiforge/fredcp/common/pkg/s3/mock"
)

var testCreatedAt = time.Date(2026, 3, 14, 9, 26, 53, 0, time.UTC)

var tokenHeader = (&commonjob.IdentityToken{UserId: 42, ScopesHash: "abc123"}).Encode()

type fixture struct {
	db       *mock_client.MockInterface
	store    *mock_s3.MockInterface
	executor *mock_batch.MockGateway
	engine   *gin.Engine
}

func newFixture(t *testing.T) *fixture {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)
	f := &fixture{
		db:       mock_client.NewMockInterface(ctrl),
		store:    mock_s3.NewMockInterface(ctrl),
		executor: mock_batch.NewMockGateway(ctrl),
	}
	svc := service.NewService(f.db, f.store)
	f.engine = buildEngine(NewHandler(controller.New(svc, f.executor)))
	return f
}

func (f *fixture) request(t *testing.T, method, target string, body interface{}) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, target, reader)
	req.Header.Set(common.HeaderOfflineToken, tokenHeader)
	req.Header.Set(common.HeaderClientVersion, "11.1.1")
	req.Header.Set(common.HeaderUserAgent, "fredcli/11.1.1")
	if body != nil {
		req.Header.Set(common.HeaderContentType, common.JsonContentType)
	}
	w := httptest.NewRecorder()
	f.engine.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder, out interface{}) {
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), out))
}

func TestRegisterJobRoute(t *testing.T) {
	f := newFixture(t)
	f.db.EXPECT().SaveJob(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ interface{}, record *dbclient.Job) (*dbclient.Job, error) {
			record.Id = 7
			return record, nil
		})

	w := f.request(t, http.MethodPost, "/jobs/register",
		RegisterJobRequest{Tags: []string{"influenza", "allegheny"}})

	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var rsp RegisterJobResponse
	decode(t, w, &rsp)
	assert.Equal(t, int64(7), rsp.Id)
	assert.Equal(t, int64(42), rsp.UserId)
	assert.Equal(t, []string{"influenza", "allegheny"}, rsp.Tags)
}

func TestRegisterJobRouteRejectsMissingToken(t *testing.T) {
	f := newFixture(t)
	req := httptest.NewRequest(http.MethodPost, "/jobs/register",
		bytes.NewReader([]byte(`{"tags":[]}`)))
	req.Header.Set(common.HeaderClientVersion, "11.1.1")
	req.Header.Set(common.HeaderUserAgent, "fredcli/11.1.1")
	req.Header.Set(common.HeaderContentType, common.JsonContentType)
	w := httptest.NewRecorder()
	f.engine.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSubmitUploadRoute(t *testing.T) {
	f := newFixture(t)
	job := dbclient.NewJobRecord(&commonjob.Job{
		Id: 3, UserId: 42, Status: commonjob.JobCreated,
		CreatedAt: testCreatedAt, UpdatedAt: testCreatedAt,
	})
	f.db.EXPECT().GetJob(gomock.Any(), int64(3)).Return(job, nil)
	f.db.EXPECT().SaveJob(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ interface{}, record *dbclient.Job) (*dbclient.Job, error) {
			return record, nil
		})
	f.store.EXPECT().GetUploadLocation(gomock.Any(), gomock.Any(), gomock.Any()).Return(
		commonjob.NewUploadLocation("https://bucket.s3.amazonaws.com/jobs/3/x/job.zip?sig=1"), nil)

	w := f.request(t, http.MethodPost, "/jobs",
		SubmitUploadRequest{JobId: 3, Context: "job", Type: "input"})

	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var rsp SubmitUploadResponse
	decode(t, w, &rsp)
	assert.Contains(t, rsp.Url, "job.zip")
}

func TestSubmitUploadRouteRejectsUnknownPair(t *testing.T) {
	f := newFixture(t)
	w := f.request(t, http.MethodPost, "/jobs",
		SubmitUploadRequest{JobId: 3, Context: "job", Type: "results"})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	var rsp map[string]string
	decode(t, w, &rsp)
	assert.NotEmpty(t, rsp["errorCode"])
	assert.NotEmpty(t, rsp["errorMessage"])
}

func TestGetRunsRouteSerializesPodPhaseStatus(t *testing.T) {
	f := newFixture(t)
	stored := dbclient.NewRunRecord(&commonjob.Run{
		Id: 11, JobId: 3, UserId: 42,
		Status: commonjob.RunLegacySubmitted, PodPhase: commonjob.PodRunning,
		BatchExecutorId: "b-11", EpxClientVersion: "11.1.1", CreatedAt: testCreatedAt,
	})
	f.db.EXPECT().GetRunsByJobId(gomock.Any(), int64(3)).Return([]*dbclient.Run{stored}, nil)
	f.executor.EXPECT().DescribeRun(gomock.Any(), gomock.Any()).Return(
		&batch.RunStatusDetail{Status: commonjob.RunRunning, PodPhase: commonjob.PodRunning}, nil)
	f.db.EXPECT().SaveRun(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ interface{}, record *dbclient.Run) (*dbclient.Run, error) {
			return record, nil
		})

	w := f.request(t, http.MethodGet, "/runs?job_id=3", nil)

	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var rsp GetRunsResponse
	decode(t, w, &rsp)
	require.Len(t, rsp.Runs, 1)
	// client-facing status derives from the pod phase, not the stored alias
	assert.Equal(t, "RUNNING", rsp.Runs[0].Status)
	assert.Equal(t, "Running", rsp.Runs[0].PodPhase)
	assert.Equal(t, int64(11), rsp.Runs[0].Id)
}

func TestGetRunsRouteRequiresJobId(t *testing.T) {
	f := newFixture(t)
	w := f.request(t, http.MethodGet, "/runs", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestPreprocessRejectsMissingClientVersion(t *testing.T) {
	f := newFixture(t)
	req := httptest.NewRequest(http.MethodGet, "/runs?job_id=3", nil)
	req.Header.Set(common.HeaderOfflineToken, tokenHeader)
	req.Header.Set(common.HeaderUserAgent, "fredcli/11.1.1")
	w := httptest.NewRecorder()
	f.engine.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHealthRouteIsPublic(t *testing.T) {
	f := newFixture(t)
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	w := httptest.NewRecorder()
	f.engine.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var rsp HealthResponse
	decode(t, w, &rsp)
	assert.Equal(t, "ok", rsp.Status)
	assert.NotEmpty(t, rsp.Timestamp)
}

func TestNoRouteReturnsNotFound(t *testing.T) {
	f := newFixture(t)
	req := httptest.NewRequest(http.MethodGet, "/nope", nil)
	w := httptest.NewRecorder()
	f.engine.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}
