/*
 * Copyright (C) 2025-2026, Advanced Micro Devices, Inc. All rights reserved.
 * See LICENSE for license information.
 */

package batch

import (
	"context"

	"github.com/google/uuid"
	"k8s.io/klog/v2"

	commonjob "github.com/epiforge/fredcp/common/pkg/job"
)

// DummyGateway satisfies Gateway without an executor behind it. Submitted
// runs get a synthetic executor id and describe echoes stored state, so
// the reconciler sees no transitions.
type DummyGateway struct{}

func NewDummyGateway() *DummyGateway {
	return &DummyGateway{}
}

func (d *DummyGateway) SubmitRun(_ context.Context, run *commonjob.Run) error {
	run.BatchExecutorId = "local-" + uuid.NewString()
	klog.Infof("stubbed dispatch of run %d as %s", run.Id, run.BatchExecutorId)
	return nil
}

func (d *DummyGateway) DescribeRun(_ context.Context, run *commonjob.Run) (*RunStatusDetail, error) {
	return &RunStatusDetail{
		Status:   commonjob.NormalizeRunStatus(run.Status),
		PodPhase: run.PodPhase,
		Message:  "local executor",
	}, nil
}

func (d *DummyGateway) CancelRun(_ context.Context, run *commonjob.Run) error {
	klog.Infof("stubbed cancel of run %d (%s)", run.Id, run.BatchExecutorId)
	return nil
}
