/*
 * Copyright (C) 2025-2026, Advanced Micro Devices, Inc. All rights reserved.
 * See LICENSE for license information.
 */

package client

import (
	"context"

	sqrl "github.com/Masterminds/squirrel"

	commonjob "github.com/epiforge/fredcp/common/pkg/job"
	"github.com/epiforge/fredcp/common/pkg/notification/model"
)

// Interface is the full repository surface. Consumers declare it instead of
// *Client so tests can substitute the generated mock.
type Interface interface {
	Close()

	SaveJob(ctx context.Context, record *Job) (*Job, error)
	SelectJobs(ctx context.Context, query sqrl.Sqlizer, orderBy []string, limit, offset int) ([]*Job, error)
	CountJobs(ctx context.Context, query sqrl.Sqlizer) (int, error)
	GetJob(ctx context.Context, id int64) (*Job, error)
	GetJobsByUserId(ctx context.Context, userId int64) ([]*Job, error)
	GetJobsByStatus(ctx context.Context, status commonjob.JobStatus) ([]*Job, error)
	ListJobs(ctx context.Context, limit, offset int) ([]*Job, error)
	JobExists(ctx context.Context, id int64) (bool, error)
	DeleteJob(ctx context.Context, id int64) error

	SaveRun(ctx context.Context, record *Run) (*Run, error)
	SelectRuns(ctx context.Context, query sqrl.Sqlizer, orderBy []string, limit, offset int) ([]*Run, error)
	CountRuns(ctx context.Context, query sqrl.Sqlizer) (int, error)
	GetRun(ctx context.Context, id int64) (*Run, error)
	GetRunsByJobId(ctx context.Context, jobId int64) ([]*Run, error)
	GetRunsByUserId(ctx context.Context, userId int64) ([]*Run, error)
	GetRunsByStatus(ctx context.Context, status commonjob.RunStatus) ([]*Run, error)
	RunExists(ctx context.Context, id int64) (bool, error)
	DeleteRun(ctx context.Context, id int64) error

	SubmitNotification(ctx context.Context, data *model.Notification) error
	UpdateNotification(ctx context.Context, data *model.Notification) error
	ListUnprocessedNotifications(ctx context.Context) ([]*model.Notification, error)
}

var _ Interface = (*Client)(nil)
