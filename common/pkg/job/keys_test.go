/*
 * Copyright (C) 2025-2026, Advanced Micro Devices, Inc. All rights reserved.
 * See LICENSE for license information.
 */

package job

import (
	"strings"
	"testing"
	"time"

	"gotest.tools/assert"
)

func TestKeyPrefixLayout(t *testing.T) {
	created := time.Date(2026, 3, 7, 9, 5, 2, 0, time.UTC)
	j := &Job{Id: 42, CreatedAt: created}
	prefix := NewKeyPrefix(j)

	assert.Equal(t, prefix.String(), "jobs/42/2026/03/07/090502")
	assert.Equal(t, prefix.JobConfigKey(), "jobs/42/2026/03/07/090502/job_config.json")
	assert.Equal(t, prefix.JobInputKey(), "jobs/42/2026/03/07/090502/job_input.zip")
	assert.Equal(t, prefix.RunConfigKey(7), "jobs/42/2026/03/07/090502/run_7_config.json")
	assert.Equal(t, prefix.RunResultsKey(7), "jobs/42/2026/03/07/090502/run_7_results.zip")
	assert.Equal(t, prefix.RunLogsKey(7), "jobs/42/2026/03/07/090502/run_7_logs.log")
}

func TestKeyPrefixMidnightKeepsZeros(t *testing.T) {
	j := &Job{Id: 1, CreatedAt: time.Date(2026, 1, 2, 0, 0, 0, 0, time.UTC)}
	assert.Equal(t, NewKeyPrefix(j).String(), "jobs/1/2026/01/02/000000")
}

func TestKeyPrefixDeterministic(t *testing.T) {
	j := &Job{Id: 9, CreatedAt: time.Date(2026, 6, 15, 23, 59, 59, 0, time.UTC)}
	first := NewKeyPrefix(j)
	second := NewKeyPrefix(j)
	assert.Equal(t, first.String(), second.String())

	// the prefix depends only on (id, created_at)
	j.Status = JobProcessing
	j.InputLocation = "https://bucket.s3.amazonaws.com/other"
	assert.Equal(t, NewKeyPrefix(j).String(), first.String())
}

func TestKeyPrefixNonUTCTimestamp(t *testing.T) {
	loc := time.FixedZone("UTC+8", 8*3600)
	j := &Job{Id: 3, CreatedAt: time.Date(2026, 1, 1, 7, 30, 0, 0, loc)}
	assert.Equal(t, NewKeyPrefix(j).String(), "jobs/3/2025/12/31/233000")
}

func TestAllArtifactKeysShareJobRoot(t *testing.T) {
	j := &Job{Id: 17, CreatedAt: time.Date(2026, 5, 20, 14, 8, 33, 0, time.UTC)}
	prefix := NewKeyPrefix(j)
	keys := []string{
		prefix.JobConfigKey(),
		prefix.JobInputKey(),
		prefix.RunConfigKey(1),
		prefix.RunResultsKey(1),
		prefix.RunLogsKey(1),
	}
	for _, key := range keys {
		assert.Assert(t, strings.HasPrefix(key, "jobs/17/"), "key %s escapes the job root", key)
	}
}
