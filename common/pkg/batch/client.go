/*
 * Copyright (C) 2025-2026, Advanced Micro Devices, Inc. All rights reserved.
 * See LICENSE for license information.
 */

package batch

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/batch"
	"github.com/aws/aws-sdk-go-v2/service/batch/types"
	"k8s.io/klog/v2"

	commonconfig "github.com/epiforge/fredcp/common/pkg/config"
	commonerrors "github.com/epiforge/fredcp/common/pkg/errors"
	commonjob "github.com/epiforge/fredcp/common/pkg/job"
	"github.com/epiforge/fredcp/common/pkg/sanitize"
)

const (
	defaultTimeout = 60 * time.Second

	cancelReason = "User requested cancellation"
)

// Client dispatches runs as AWS Batch jobs.
type Client struct {
	batchClient   *batch.Client
	jobQueue      string
	jobDefinition string
}

// NewGateway returns the live client, or the dummy when running locally.
func NewGateway(ctx context.Context) (Gateway, error) {
	if commonconfig.IsLocalEnvironment() {
		klog.Infof("local environment, batch dispatch is stubbed")
		return NewDummyGateway(), nil
	}
	return NewClient(ctx)
}

// NewClient creates a Client from system-wide settings with ambient
// credentials.
func NewClient(ctx context.Context) (Gateway, error) {
	cfg, err := config.LoadDefaultConfig(ctx, config.WithRegion(commonconfig.GetAWSRegion()))
	if err != nil {
		return nil, err
	}
	return &Client{
		batchClient:   batch.NewFromConfig(cfg),
		jobQueue:      commonconfig.GetBatchJobQueue(),
		jobDefinition: commonconfig.GetBatchJobDefinition(),
	}, nil
}

// SubmitRun dispatches run and records the executor id on it. Submission
// failures are fatal to the caller, unlike describe failures.
func (c *Client) SubmitRun(ctx context.Context, run *commonjob.Run) error {
	timeoutCtx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	resp, err := c.batchClient.SubmitJob(timeoutCtx, buildSubmitInput(run, c.jobQueue, c.jobDefinition))
	if err != nil {
		return executorError("submit run %d of job %d: %v", run.Id, run.JobId, err)
	}
	run.BatchExecutorId = aws.ToString(resp.JobId)
	klog.Infof("dispatched run %d of job %d as batch job %s", run.Id, run.JobId, run.BatchExecutorId)
	return nil
}

// DescribeRun reports the executor's view of run. API failures and jobs
// that aged out of the executor's history degrade to the sentinel detail.
func (c *Client) DescribeRun(ctx context.Context, run *commonjob.Run) (*RunStatusDetail, error) {
	if run.BatchExecutorId == "" {
		return nil, commonerrors.NewBadRequest(fmt.Sprintf("run %d has no batch executor id", run.Id))
	}
	timeoutCtx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	resp, err := c.batchClient.DescribeJobs(timeoutCtx, &batch.DescribeJobsInput{
		Jobs: []string{run.BatchExecutorId},
	})
	if err != nil {
		return apiErrorDetail(err), nil
	}
	if len(resp.Jobs) == 0 {
		return apiErrorDetail(fmt.Errorf("job %s not found in executor history", run.BatchExecutorId)), nil
	}
	return describeDetail(&resp.Jobs[0]), nil
}

// CancelRun terminates the run's executor job.
func (c *Client) CancelRun(ctx context.Context, run *commonjob.Run) error {
	if run.BatchExecutorId == "" {
		return commonerrors.NewBadRequest(fmt.Sprintf("run %d has no batch executor id", run.Id))
	}
	timeoutCtx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	if _, err := c.batchClient.TerminateJob(timeoutCtx, &batch.TerminateJobInput{
		JobId:  aws.String(run.BatchExecutorId),
		Reason: aws.String(cancelReason),
	}); err != nil {
		return executorError("cancel run %d: %v", run.Id, err)
	}
	klog.Infof("cancelled batch job %s for run %d", run.BatchExecutorId, run.Id)
	return nil
}

func buildSubmitInput(run *commonjob.Run, queue, definition string) *batch.SubmitJobInput {
	return &batch.SubmitJobInput{
		JobName:       aws.String(fmt.Sprintf("job-%d-run-%d", run.JobId, run.Id)),
		JobQueue:      aws.String(queue),
		JobDefinition: aws.String(definition),
		ContainerOverrides: &types.ContainerOverrides{
			Environment: []types.KeyValuePair{
				{Name: aws.String("JOB_ID"), Value: aws.String(strconv.FormatInt(run.JobId, 10))},
				{Name: aws.String("RUN_ID"), Value: aws.String(strconv.FormatInt(run.Id, 10))},
			},
		},
	}
}

func describeDetail(detail *types.JobDetail) *RunStatusDetail {
	status, phase := commonjob.MapExecutorStatus(string(detail.Status))
	return &RunStatusDetail{
		Status:   status,
		PodPhase: phase,
		Message:  aws.ToString(detail.StatusReason),
	}
}

func apiErrorDetail(err error) *RunStatusDetail {
	return &RunStatusDetail{
		Status:   commonjob.RunError,
		PodPhase: commonjob.PodUnknown,
		Message:  fmt.Sprintf("%s: %s", ApiErrorSentinel, sanitize.Sanitize(err.Error())),
	}
}

func executorError(format string, args ...interface{}) error {
	return sanitize.Mark(commonerrors.NewExecutorUnavailable(sanitize.Sanitize(fmt.Sprintf(format, args...))))
}
