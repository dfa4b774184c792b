/*
 * Copyright (C) 2025-2026, Advanced Micro Devices, Inc. All rights reserved.
 * See LICENSE for license information.
 */

package job

import "fmt"

// KeyPrefix is the canonical object-store directory of a job's artifacts,
// derived from the immutable (id, created_at) pair. It is computed on demand
// and never persisted, so every artifact of a job lands under one path no
// matter when it is uploaded.
type KeyPrefix struct {
	jobId     int64
	formatted string
}

// NewKeyPrefix derives the prefix for j from its creation timestamp.
func NewKeyPrefix(j *Job) KeyPrefix {
	ts := j.CreatedAt.UTC()
	return KeyPrefix{
		jobId:     j.Id,
		formatted: fmt.Sprintf("jobs/%d/%s", j.Id, ts.Format("2006/01/02/150405")),
	}
}

// String returns the prefix without a trailing slash.
func (p KeyPrefix) String() string {
	return p.formatted
}

// JobConfigKey returns the key of the job-level configuration document.
func (p KeyPrefix) JobConfigKey() string {
	return p.formatted + "/job_config.json"
}

// JobInputKey returns the key of the job input archive.
func (p KeyPrefix) JobInputKey() string {
	return p.formatted + "/job_input.zip"
}

// RunConfigKey returns the key of a per-run configuration document.
func (p KeyPrefix) RunConfigKey(runId int64) string {
	return fmt.Sprintf("%s/run_%d_config.json", p.formatted, runId)
}

// RunResultsKey returns the key of a run's packaged results archive.
func (p KeyPrefix) RunResultsKey(runId int64) string {
	return fmt.Sprintf("%s/run_%d_results.zip", p.formatted, runId)
}

// RunLogsKey returns the key of a run's simulation log.
func (p KeyPrefix) RunLogsKey(runId int64) string {
	return fmt.Sprintf("%s/run_%d_logs.log", p.formatted, runId)
}
