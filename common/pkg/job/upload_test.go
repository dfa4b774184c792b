/*
 * Copyright (C) 2025-2026, Advanced Micro Devices, Inc. All rights reserved.
 * See LICENSE for license information.
 */

package job

import (
	"testing"
	"time"

	"gotest.tools/assert"
)

func TestJobUploadValidate(t *testing.T) {
	tests := []struct {
		name   string
		upload JobUpload
		valid  bool
	}{
		{"job config", JobUpload{Context: ContextJob, Type: TypeConfig, JobId: 1}, true},
		{"job input", JobUpload{Context: ContextJob, Type: TypeInput, JobId: 1}, true},
		{"run config", JobUpload{Context: ContextRun, Type: TypeConfig, JobId: 1, RunId: 2}, true},
		{"run output", JobUpload{Context: ContextRun, Type: TypeOutput, JobId: 1, RunId: 2}, true},
		{"run results", JobUpload{Context: ContextRun, Type: TypeResults, JobId: 1, RunId: 2}, true},
		{"run logs", JobUpload{Context: ContextRun, Type: TypeLogs, JobId: 1, RunId: 2}, true},
		{"job output", JobUpload{Context: ContextJob, Type: TypeOutput, JobId: 1}, false},
		{"job results", JobUpload{Context: ContextJob, Type: TypeResults, JobId: 1}, false},
		{"run input", JobUpload{Context: ContextRun, Type: TypeInput, JobId: 1, RunId: 2}, false},
		{"run without run id", JobUpload{Context: ContextRun, Type: TypeConfig, JobId: 1}, false},
		{"job with run id", JobUpload{Context: ContextJob, Type: TypeInput, JobId: 1, RunId: 2}, false},
		{"unknown context", JobUpload{Context: "cluster", Type: TypeConfig, JobId: 1}, false},
		{"missing job id", JobUpload{Context: ContextJob, Type: TypeInput}, false},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			err := test.upload.Validate()
			if test.valid {
				assert.NilError(t, err)
			} else {
				assert.Assert(t, err != nil)
			}
		})
	}
}

func TestJobUploadKey(t *testing.T) {
	j := &Job{Id: 5, CreatedAt: time.Date(2026, 2, 3, 10, 20, 30, 0, time.UTC)}
	prefix := NewKeyPrefix(j)

	tests := []struct {
		name   string
		upload JobUpload
		key    string
	}{
		{"job config", JobUpload{Context: ContextJob, Type: TypeConfig, JobId: 5}, "jobs/5/2026/02/03/102030/job_config.json"},
		{"job input", JobUpload{Context: ContextJob, Type: TypeInput, JobId: 5}, "jobs/5/2026/02/03/102030/job_input.zip"},
		{"run config", JobUpload{Context: ContextRun, Type: TypeConfig, JobId: 5, RunId: 8}, "jobs/5/2026/02/03/102030/run_8_config.json"},
		{"run results", JobUpload{Context: ContextRun, Type: TypeResults, JobId: 5, RunId: 8}, "jobs/5/2026/02/03/102030/run_8_results.zip"},
		{"run logs", JobUpload{Context: ContextRun, Type: TypeLogs, JobId: 5, RunId: 8}, "jobs/5/2026/02/03/102030/run_8_logs.log"},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			key, err := test.upload.Key(prefix)
			assert.NilError(t, err)
			assert.Equal(t, key, test.key)
		})
	}

	// output uploads have no addressable artifact
	_, err := (&JobUpload{Context: ContextRun, Type: TypeOutput, JobId: 5, RunId: 8}).Key(prefix)
	assert.Assert(t, err != nil)
}

func TestUploadLocationEqual(t *testing.T) {
	a := NewUploadLocation("https://bucket.s3.amazonaws.com/jobs/1/x")
	b := NewUploadLocation("https://bucket.s3.amazonaws.com/jobs/1/x")
	c := NewUploadLocation("https://bucket.s3.amazonaws.com/jobs/1/y")
	b.AppendError("copy failed")

	assert.Assert(t, a.Equal(b))
	assert.Assert(t, !a.Equal(c))
	assert.Assert(t, !a.Equal(nil))
}

func TestUploadLocationSanitizedUrl(t *testing.T) {
	tests := []struct {
		name string
		url  string
		want string
	}{
		{
			"presigned query stripped and bucket masked",
			"https://fred-uploads.s3.amazonaws.com/jobs/1/f.zip?X-Amz-Signature=abc&X-Amz-Expires=3600",
			"https://***.s3.amazonaws.com/jobs/1/f.zip",
		},
		{
			"regional virtual host",
			"https://fred-uploads.s3.us-east-1.amazonaws.com/jobs/1/f.zip",
			"https://***.s3.us-east-1.amazonaws.com/jobs/1/f.zip",
		},
		{
			"path style",
			"https://s3.amazonaws.com/fred-uploads/jobs/1/f.zip",
			"https://s3.amazonaws.com/***/jobs/1/f.zip",
		},
		{
			"s3 scheme",
			"s3://fred-uploads/jobs/1/f.zip",
			"s3://***/jobs/1/f.zip",
		},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			assert.Equal(t, NewUploadLocation(test.url).SanitizedUrl(), test.want)
		})
	}
}

func TestSanitizedUrlIdempotent(t *testing.T) {
	loc := NewUploadLocation("https://fred-uploads.s3.amazonaws.com/jobs/1/f.zip?X-Amz-Signature=abc")
	once := loc.SanitizedUrl()
	twice := NewUploadLocation(once).SanitizedUrl()
	assert.Equal(t, once, twice)
}
