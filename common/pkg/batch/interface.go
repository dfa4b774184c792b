/*
 * Copyright (C) 2025-2026, Advanced Micro Devices, Inc. All rights reserved.
 * See LICENSE for license information.
 */

package batch

import (
	"context"

	commonjob "github.com/epiforge/fredcp/common/pkg/job"
)

// RunStatusDetail is one executor observation of a run.
type RunStatusDetail struct {
	Status   commonjob.RunStatus
	PodPhase commonjob.PodPhase
	Message  string
}

// Gateway dispatches runs to the batch executor and reads their state back.
type Gateway interface {
	// SubmitRun dispatches run and records the executor id on it.
	SubmitRun(ctx context.Context, run *commonjob.Run) error
	// DescribeRun reports the executor's view of run. Executor API failures
	// are not errors: they come back as an (ERROR, Unknown) detail whose
	// message starts with the api error sentinel, so readers can fall back
	// to stored state. The error return is reserved for runs that cannot be
	// described at all (no executor id).
	DescribeRun(ctx context.Context, run *commonjob.Run) (*RunStatusDetail, error)
	// CancelRun terminates the run's executor job.
	CancelRun(ctx context.Context, run *commonjob.Run) error
}

// ApiErrorSentinel prefixes DescribeRun messages produced by executor API
// failures rather than by the executor's own job state.
const ApiErrorSentinel = "AWS Batch API error"
