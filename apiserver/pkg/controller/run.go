/*
 * Copyright (C) 2025-2026, Advanced Micro Devices, Inc. All rights reserved.
 * See LICENSE for license information.
 */

package controller

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"k8s.io/klog/v2"

	"github.com/epiforge/fredcp/apiserver/pkg/service"
	"github.com/epiforge/fredcp/common/pkg/batch"
	commonerrors "github.com/epiforge/fredcp/common/pkg/errors"
	commonjob "github.com/epiforge/fredcp/common/pkg/job"
	"github.com/epiforge/fredcp/common/pkg/notification"
	"github.com/epiforge/fredcp/common/pkg/notification/model"
)

// errStaleStatus marks a run whose executor view was unavailable; the
// stored status stands in for it.
var errStaleStatus = errors.New("executor view unavailable, stored status used")

// SubmitRuns persists the requested runs and dispatches each to the batch
// executor. Both steps succeed or neither is exposed: any failure rolls the
// whole submission back, so a caller never observes a run from a failed
// request.
func (c *Controller) SubmitRuns(ctx context.Context, requests []map[string]interface{},
	tokenHeader, clientVersion string) Result[[]*commonjob.Run] {
	return guard("submitting the runs", func() ([]*commonjob.Run, error) {
		token, err := commonjob.ParseIdentityToken(tokenHeader)
		if err != nil {
			return nil, err
		}
		runs, err := c.svc.SubmitRuns(ctx, requests, token, clientVersion)
		if err != nil {
			return nil, err
		}
		for i, run := range runs {
			if err = c.executor.SubmitRun(ctx, run); err != nil {
				klog.ErrorS(err, "failed to dispatch run", "run", run.Id, "job", run.JobId)
				c.rollbackRuns(ctx, runs, i)
				return nil, err
			}
			if err = c.svc.SaveRun(ctx, run); err != nil {
				c.rollbackRuns(ctx, runs, i+1)
				return nil, err
			}
		}
		return runs, nil
	})
}

// rollbackRuns undoes a partially dispatched submission. Runs the executor
// already accepted are cancelled, then every persisted row of the
// submission is removed; best effort, each failure logged.
func (c *Controller) rollbackRuns(ctx context.Context, runs []*commonjob.Run, dispatched int) {
	for i, run := range runs {
		if i < dispatched {
			if err := c.executor.CancelRun(ctx, run); err != nil {
				klog.ErrorS(err, "failed to cancel run during rollback", "run", run.Id)
			}
		}
		if err := c.svc.DeleteRun(ctx, run.Id); err != nil {
			klog.ErrorS(err, "failed to remove run during rollback", "run", run.Id)
		}
	}
}

// GetRuns returns a job's runs after reconciling their stored state against
// the executor. Reconciliation is pulled by readers; there is no background
// poller.
func (c *Controller) GetRuns(ctx context.Context, jobId int64) Result[[]*commonjob.Run] {
	return guard("reading the runs", func() ([]*commonjob.Run, error) {
		if jobId <= 0 {
			return nil, commonerrors.NewBadRequest("the job id must be positive")
		}
		runs, err := c.svc.GetRunsByJobId(ctx, jobId)
		if err != nil {
			return nil, err
		}
		c.reconcileRuns(ctx, jobId, runs)
		return runs, nil
	})
}

// GetRunResults issues a presigned GET per run of the job.
func (c *Controller) GetRunResults(ctx context.Context, jobId int64, expireSecond int) Result[[]service.RunResultURL] {
	return guard("reading the run results", func() ([]service.RunResultURL, error) {
		if jobId <= 0 {
			return nil, commonerrors.NewBadRequest("the job id must be positive")
		}
		return c.svc.GetRunResults(ctx, jobId, expireSecond)
	})
}

// UploadResults packages and stores a run's simulation output.
func (c *Controller) UploadResults(ctx context.Context, jobId, runId int64, resultsDir string) Result[*commonjob.UploadLocation] {
	return guard("uploading the run results", func() (*commonjob.UploadLocation, error) {
		return c.svc.UploadResults(ctx, jobId, runId, resultsDir)
	})
}

// reconcileRuns aligns each run with the executor's view. Per-run failures
// are isolated: a run that cannot be reconciled keeps its stored state and
// the read still succeeds.
func (c *Controller) reconcileRuns(ctx context.Context, jobId int64, runs []*commonjob.Run) {
	updated, failed := 0, 0
	for _, run := range runs {
		changed, err := c.reconcileRun(ctx, run)
		switch {
		case errors.Is(err, errStaleStatus):
			failed++
		case err != nil:
			klog.ErrorS(err, "failed to reconcile run", "run", run.Id)
			failed++
		case changed:
			updated++
		}
	}
	if updated > 0 || failed > 0 {
		klog.Infof("reconciled %d runs of job %d: %d updated, %d kept stored state",
			len(runs), jobId, updated, failed)
	}
}

func (c *Controller) reconcileRun(ctx context.Context, run *commonjob.Run) (changed bool, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("panic while describing run %d: %v", run.Id, r)
		}
	}()
	detail, err := c.executor.DescribeRun(ctx, run)
	if err != nil {
		return false, err
	}
	if detail.Status == commonjob.RunError && strings.Contains(detail.Message, batch.ApiErrorSentinel) {
		klog.Warningf("executor unreachable for run %d, keeping stored status %s/%s: %s",
			run.Id, run.Status, run.PodPhase, detail.Message)
		return false, errStaleStatus
	}
	if commonjob.NormalizeRunStatus(run.Status) == detail.Status && run.PodPhase == detail.PodPhase {
		return false, nil
	}
	klog.Infof("run %d of job %d moved %s/%s -> %s/%s",
		run.Id, run.JobId, run.Status, run.PodPhase, detail.Status, detail.PodPhase)
	run.UpdateStatus(detail.Status, detail.PodPhase)
	if err = c.svc.SaveRun(ctx, run); err != nil {
		return false, err
	}
	if detail.Status == commonjob.RunDone || detail.Status == commonjob.RunError {
		c.notifyRunCompleted(ctx, run)
	}
	return true, nil
}

// notifyRunCompleted enqueues a completion notification, best effort.
func (c *Controller) notifyRunCompleted(ctx context.Context, run *commonjob.Run) {
	m := notification.GetNotificationManager()
	if m == nil {
		return
	}
	data := map[string]interface{}{
		"job_id":  run.JobId,
		"run_id":  run.Id,
		"user_id": run.UserId,
		"status":  string(run.Status),
	}
	uid := fmt.Sprintf("run-%d-%s", run.Id, run.Status)
	if err := m.SubmitNotification(ctx, model.TopicJob, uid, data); err != nil {
		klog.Warningf("failed to enqueue completion notification for run %d: %v", run.Id, err)
	}
}
