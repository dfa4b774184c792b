/*
 * Copyright (C) 2025-2026, Advanced Micro Devices, Inc. All rights reserved.
 * See LICENSE for license information.
 */

package job

import (
	"testing"
	"time"

	"gotest.tools/assert"

	commonerrors "github.com/epiforge/fredcp/common/pkg/errors"
)

func TestJobTransitions(t *testing.T) {
	tests := []struct {
		name    string
		from    JobStatus
		to      JobStatus
		allowed bool
	}{
		{"created to submitted", JobCreated, JobSubmitted, true},
		{"submitted to processing", JobSubmitted, JobProcessing, true},
		{"processing to completed", JobProcessing, JobCompleted, true},
		{"processing to failed", JobProcessing, JobFailed, true},
		{"created to cancelled", JobCreated, JobCancelled, true},
		{"submitted to cancelled", JobSubmitted, JobCancelled, true},
		{"processing to cancelled", JobProcessing, JobCancelled, true},
		{"created to processing", JobCreated, JobProcessing, false},
		{"created to completed", JobCreated, JobCompleted, false},
		{"submitted to completed", JobSubmitted, JobCompleted, false},
		{"completed is terminal", JobCompleted, JobCancelled, false},
		{"failed is terminal", JobFailed, JobSubmitted, false},
		{"cancelled is terminal", JobCancelled, JobCreated, false},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			j := &Job{Id: 1, Status: test.from}
			err := j.Transition(test.to)
			if test.allowed {
				assert.NilError(t, err)
				assert.Equal(t, j.Status, test.to)
			} else {
				assert.Assert(t, err != nil)
				assert.Equal(t, commonerrors.GetErrorCode(err), commonerrors.InvalidTransition)
				assert.Equal(t, j.Status, test.from)
			}
		})
	}
}

func TestJobIsActive(t *testing.T) {
	for status, active := range map[JobStatus]bool{
		JobCreated:    true,
		JobSubmitted:  true,
		JobProcessing: true,
		JobCompleted:  false,
		JobFailed:     false,
		JobCancelled:  false,
	} {
		j := &Job{Status: status}
		assert.Equal(t, j.IsActive(), active, "status %s", status)
	}
}

func TestNewJob(t *testing.T) {
	j := NewJob(123, []string{"info_job", "baseline"})
	assert.Equal(t, j.Id, int64(0))
	assert.Equal(t, j.UserId, int64(123))
	assert.Equal(t, j.Status, JobCreated)
	assert.DeepEqual(t, j.Tags, []string{"info_job", "baseline"})
	assert.Assert(t, !j.CreatedAt.IsZero())
}

func TestNewRunStartsQueuedAtRest(t *testing.T) {
	r := NewRun(1, 123, map[string]interface{}{"jobId": 1}, "2.4.1")
	assert.Equal(t, r.Status, RunLegacySubmitted)
	assert.Equal(t, r.PodPhase, PodPending)
	assert.Equal(t, NormalizeRunStatus(r.Status), RunQueued)
	assert.Equal(t, r.EpxClientVersion, "2.4.1")
}

func TestMarkResultsUploaded(t *testing.T) {
	r := NewRun(1, 123, nil, "2.4.1")
	uploadedAt := time.Date(2026, 4, 1, 12, 0, 0, 0, time.UTC)
	r.MarkResultsUploaded("https://bucket.s3.amazonaws.com/jobs/1/2026/04/01/120000/run_1_results.zip", uploadedAt)

	assert.Equal(t, r.Status, RunDone)
	assert.Equal(t, r.PodPhase, PodSucceeded)
	assert.Assert(t, r.ResultsUploadedAt != nil)
	assert.Equal(t, *r.ResultsUploadedAt, uploadedAt)
	assert.Assert(t, r.ResultsUrl != "")
}
