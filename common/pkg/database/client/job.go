/*
 * Copyright (C) 2025-2026, Advanced Micro Devices, Inc. All rights reserved.
 * See LICENSE for license information.
 */

package client

import (
	"context"
	"fmt"
	"time"

	sqrl "github.com/Masterminds/squirrel"
	"k8s.io/klog/v2"

	dbutils "github.com/epiforge/fredcp/common/pkg/database/utils"
	commonerrors "github.com/epiforge/fredcp/common/pkg/errors"
	commonjob "github.com/epiforge/fredcp/common/pkg/job"
)

const (
	TJob = "jobs"
)

var (
	getJobCmd       = fmt.Sprintf(`SELECT * FROM %s WHERE id = $1 LIMIT 1`, TJob)
	jobExistsCmd    = fmt.Sprintf(`SELECT EXISTS(SELECT 1 FROM %s WHERE id = $1)`, TJob)
	deleteJobCmd    = fmt.Sprintf(`DELETE FROM %s WHERE id = $1`, TJob)
	insertJobFormat = `INSERT INTO ` + TJob + ` (%s) VALUES (%s) RETURNING id`
	updateJobCmd    = fmt.Sprintf(`UPDATE %s
		SET tags = :tags,
		    status = :status,
		    updated_at = :updated_at,
		    input_location = :input_location,
		    config_location = :config_location,
		    metadata = :metadata
		WHERE id = :id`, TJob)
)

// SaveJob persists the record, inserting when it has no id yet and
// updating otherwise. The returned record carries the assigned id and
// refreshed timestamps. created_at never changes after the first insert
// because every artifact path derives from it.
func (c *Client) SaveJob(ctx context.Context, record *Job) (*Job, error) {
	if record == nil {
		return nil, commonerrors.NewBadRequest("the input is empty")
	}
	db, err := c.getDB()
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	if !record.CreatedAt.Valid {
		record.CreatedAt = dbutils.NullTime(now)
	}
	record.UpdatedAt = dbutils.NullTime(now)

	if record.Id != 0 {
		var jobs []*Job
		if err = db.SelectContext(ctx, &jobs, getJobCmd, record.Id); err != nil {
			klog.ErrorS(err, "failed to select job", "id", record.Id)
			return nil, err
		}
		if len(jobs) > 0 && jobs[0] != nil {
			if _, err = db.NamedExecContext(ctx, updateJobCmd, record); err != nil {
				klog.ErrorS(err, "failed to update job db", "id", record.Id)
				return nil, err
			}
			return record, nil
		}
	}

	rows, err := db.NamedQueryContext(ctx, generateCommand(*record, insertJobFormat, "id"), record)
	if err != nil {
		klog.ErrorS(err, "failed to insert job db", "user", record.UserId)
		return nil, err
	}
	defer func() { _ = rows.Close() }()
	if rows.Next() {
		if err = rows.Scan(&record.Id); err != nil {
			return nil, err
		}
	}
	return record, nil
}

// SelectJobs retrieves multiple job records.
func (c *Client) SelectJobs(ctx context.Context, query sqrl.Sqlizer, orderBy []string, limit, offset int) ([]*Job, error) {
	startTime := time.Now().UTC()
	defer func() {
		if query != nil {
			strQuery := dbutils.CvtToSqlStr(query)
			klog.Infof("select jobs, query: %s, orderBy: %v, limit: %d, offset: %d, cost (%v)",
				strQuery, orderBy, limit, offset, time.Since(startTime))
		}
	}()
	db, err := c.getDB()
	if err != nil {
		return nil, err
	}

	builder := sqrl.Select("*").PlaceholderFormat(sqrl.Dollar).From(TJob)
	if query != nil {
		builder = builder.Where(query)
	}
	if limit > 0 {
		builder = builder.Limit(uint64(limit))
	}
	sql, args, err := builder.OrderBy(orderBy...).Offset(uint64(offset)).ToSql()
	if err != nil {
		return nil, err
	}

	var jobs []*Job
	if c.RequestTimeout > 0 {
		ctx2, cancel := context.WithTimeout(ctx, c.RequestTimeout)
		defer cancel()
		err = db.SelectContext(ctx2, &jobs, sql, args...)
	} else {
		err = db.SelectContext(ctx, &jobs, sql, args...)
	}
	return jobs, err
}

// CountJobs returns the total count of jobs matching the criteria.
func (c *Client) CountJobs(ctx context.Context, query sqrl.Sqlizer) (int, error) {
	db, err := c.getDB()
	if err != nil {
		return 0, err
	}
	sql, args, err := sqrl.Select("COUNT(*)").PlaceholderFormat(sqrl.Dollar).From(TJob).Where(query).ToSql()
	if err != nil {
		return 0, err
	}
	var cnt int
	err = db.GetContext(ctx, &cnt, sql, args...)
	return cnt, err
}

// GetJob retrieves a job by id.
func (c *Client) GetJob(ctx context.Context, id int64) (*Job, error) {
	if id <= 0 {
		return nil, commonerrors.NewBadRequest("job id must be positive")
	}
	dbTags := GetJobFieldTags()
	dbSql := sqrl.Eq{GetFieldTag(dbTags, "Id"): id}
	jobs, err := c.SelectJobs(ctx, dbSql, nil, 1, 0)
	if err != nil {
		klog.ErrorS(err, "failed to select job", "sql", dbutils.CvtToSqlStr(dbSql))
		return nil, err
	}
	if len(jobs) == 0 {
		return nil, commonerrors.NewNotFound(commonjob.JobKind, fmt.Sprintf("%d", id))
	}
	return jobs[0], nil
}

// GetJobsByUserId retrieves the jobs owned by a user, newest first.
func (c *Client) GetJobsByUserId(ctx context.Context, userId int64) ([]*Job, error) {
	dbTags := GetJobFieldTags()
	dbSql := sqrl.Eq{GetFieldTag(dbTags, "UserId"): userId}
	return c.SelectJobs(ctx, dbSql, []string{CreatedAt + " " + DESC}, 0, 0)
}

// GetJobsByStatus retrieves the jobs in the given status, newest first.
func (c *Client) GetJobsByStatus(ctx context.Context, status commonjob.JobStatus) ([]*Job, error) {
	dbTags := GetJobFieldTags()
	dbSql := sqrl.Eq{GetFieldTag(dbTags, "Status"): string(status)}
	return c.SelectJobs(ctx, dbSql, []string{CreatedAt + " " + DESC}, 0, 0)
}

// ListJobs pages through all jobs, newest first.
func (c *Client) ListJobs(ctx context.Context, limit, offset int) ([]*Job, error) {
	return c.SelectJobs(ctx, nil, []string{CreatedAt + " " + DESC}, limit, offset)
}

// JobExists reports whether a job row with the id exists.
func (c *Client) JobExists(ctx context.Context, id int64) (bool, error) {
	db, err := c.getDB()
	if err != nil {
		return false, err
	}
	var exists bool
	if err = db.GetContext(ctx, &exists, jobExistsCmd, id); err != nil {
		klog.ErrorS(err, "failed to check job existence", "id", id)
		return false, err
	}
	return exists, nil
}

// DeleteJob removes a job row.
func (c *Client) DeleteJob(ctx context.Context, id int64) error {
	db, err := c.getDB()
	if err != nil {
		return err
	}
	if _, err = db.ExecContext(ctx, deleteJobCmd, id); err != nil {
		klog.ErrorS(err, "failed to delete job db", "id", id)
		return err
	}
	return nil
}
