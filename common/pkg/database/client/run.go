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
	TRun = "runs"
)

var (
	getRunCmd       = fmt.Sprintf(`SELECT * FROM %s WHERE id = $1 LIMIT 1`, TRun)
	runExistsCmd    = fmt.Sprintf(`SELECT EXISTS(SELECT 1 FROM %s WHERE id = $1)`, TRun)
	deleteRunCmd    = fmt.Sprintf(`DELETE FROM %s WHERE id = $1`, TRun)
	insertRunFormat = `INSERT INTO ` + TRun + ` (%s) VALUES (%s) RETURNING id`
	updateRunCmd    = fmt.Sprintf(`UPDATE %s
		SET request = :request,
		    status = :status,
		    pod_phase = :pod_phase,
		    container_status = :container_status,
		    epx_client_version = :epx_client_version,
		    config_url = :config_url,
		    results_url = :results_url,
		    results_uploaded_at = :results_uploaded_at,
		    batch_executor_id = :batch_executor_id,
		    user_deleted = :user_deleted
		WHERE id = :id`, TRun)
)

// runStatusFilter widens a canonical status to the aliases that may still
// sit in older rows, so status queries match both spellings.
func runStatusFilter(column string, status commonjob.RunStatus) sqrl.Sqlizer {
	values := []string{string(status)}
	switch commonjob.NormalizeRunStatus(status) {
	case commonjob.RunQueued:
		values = []string{string(commonjob.RunQueued), string(commonjob.RunLegacySubmitted)}
	case commonjob.RunError:
		values = []string{
			string(commonjob.RunError),
			string(commonjob.RunLegacyFailed),
			string(commonjob.RunLegacyCancelled),
		}
	}
	return sqrl.Eq{column: values}
}

// SaveRun persists the record, inserting when it has no id yet and
// updating otherwise.
func (c *Client) SaveRun(ctx context.Context, record *Run) (*Run, error) {
	if record == nil {
		return nil, commonerrors.NewBadRequest("the input is empty")
	}
	db, err := c.getDB()
	if err != nil {
		return nil, err
	}

	if !record.CreatedAt.Valid {
		record.CreatedAt = dbutils.NullTime(time.Now().UTC())
	}

	if record.Id != 0 {
		var runs []*Run
		if err = db.SelectContext(ctx, &runs, getRunCmd, record.Id); err != nil {
			klog.ErrorS(err, "failed to select run", "id", record.Id)
			return nil, err
		}
		if len(runs) > 0 && runs[0] != nil {
			if _, err = db.NamedExecContext(ctx, updateRunCmd, record); err != nil {
				klog.ErrorS(err, "failed to update run db", "id", record.Id)
				return nil, err
			}
			return record, nil
		}
	}

	rows, err := db.NamedQueryContext(ctx, generateCommand(*record, insertRunFormat, "id"), record)
	if err != nil {
		klog.ErrorS(err, "failed to insert run db", "job", record.JobId)
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

// SelectRuns retrieves multiple run records.
func (c *Client) SelectRuns(ctx context.Context, query sqrl.Sqlizer, orderBy []string, limit, offset int) ([]*Run, error) {
	startTime := time.Now().UTC()
	defer func() {
		if query != nil {
			strQuery := dbutils.CvtToSqlStr(query)
			klog.Infof("select runs, query: %s, orderBy: %v, limit: %d, offset: %d, cost (%v)",
				strQuery, orderBy, limit, offset, time.Since(startTime))
		}
	}()
	db, err := c.getDB()
	if err != nil {
		return nil, err
	}

	builder := sqrl.Select("*").PlaceholderFormat(sqrl.Dollar).From(TRun)
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

	var runs []*Run
	if c.RequestTimeout > 0 {
		ctx2, cancel := context.WithTimeout(ctx, c.RequestTimeout)
		defer cancel()
		err = db.SelectContext(ctx2, &runs, sql, args...)
	} else {
		err = db.SelectContext(ctx, &runs, sql, args...)
	}
	return runs, err
}

// CountRuns returns the total count of runs matching the criteria.
func (c *Client) CountRuns(ctx context.Context, query sqrl.Sqlizer) (int, error) {
	db, err := c.getDB()
	if err != nil {
		return 0, err
	}
	sql, args, err := sqrl.Select("COUNT(*)").PlaceholderFormat(sqrl.Dollar).From(TRun).Where(query).ToSql()
	if err != nil {
		return 0, err
	}
	var cnt int
	err = db.GetContext(ctx, &cnt, sql, args...)
	return cnt, err
}

// GetRun retrieves a run by id.
func (c *Client) GetRun(ctx context.Context, id int64) (*Run, error) {
	if id <= 0 {
		return nil, commonerrors.NewBadRequest("run id must be positive")
	}
	dbTags := GetRunFieldTags()
	dbSql := sqrl.Eq{GetFieldTag(dbTags, "Id"): id}
	runs, err := c.SelectRuns(ctx, dbSql, nil, 1, 0)
	if err != nil {
		klog.ErrorS(err, "failed to select run", "sql", dbutils.CvtToSqlStr(dbSql))
		return nil, err
	}
	if len(runs) == 0 {
		return nil, commonerrors.NewNotFound(commonjob.RunKind, fmt.Sprintf("%d", id))
	}
	return runs[0], nil
}

// GetRunsByJobId retrieves a job's runs ordered by id.
func (c *Client) GetRunsByJobId(ctx context.Context, jobId int64) ([]*Run, error) {
	if jobId <= 0 {
		return nil, commonerrors.NewBadRequest("job id must be positive")
	}
	dbTags := GetRunFieldTags()
	dbSql := sqrl.Eq{GetFieldTag(dbTags, "JobId"): jobId}
	return c.SelectRuns(ctx, dbSql, []string{GetFieldTag(dbTags, "Id") + " " + ASC}, 0, 0)
}

// GetRunsByUserId retrieves the runs owned by a user ordered by id.
func (c *Client) GetRunsByUserId(ctx context.Context, userId int64) ([]*Run, error) {
	dbTags := GetRunFieldTags()
	dbSql := sqrl.Eq{GetFieldTag(dbTags, "UserId"): userId}
	return c.SelectRuns(ctx, dbSql, []string{GetFieldTag(dbTags, "Id") + " " + ASC}, 0, 0)
}

// GetRunsByStatus retrieves runs in the given status, aliases included.
func (c *Client) GetRunsByStatus(ctx context.Context, status commonjob.RunStatus) ([]*Run, error) {
	dbTags := GetRunFieldTags()
	dbSql := runStatusFilter(GetFieldTag(dbTags, "Status"), status)
	return c.SelectRuns(ctx, dbSql, []string{GetFieldTag(dbTags, "Id") + " " + ASC}, 0, 0)
}

// RunExists reports whether a run row with the id exists.
func (c *Client) RunExists(ctx context.Context, id int64) (bool, error) {
	db, err := c.getDB()
	if err != nil {
		return false, err
	}
	var exists bool
	if err = db.GetContext(ctx, &exists, runExistsCmd, id); err != nil {
		klog.ErrorS(err, "failed to check run existence", "id", id)
		return false, err
	}
	return exists, nil
}

// DeleteRun removes a run row.
func (c *Client) DeleteRun(ctx context.Context, id int64) error {
	db, err := c.getDB()
	if err != nil {
		return err
	}
	if _, err = db.ExecContext(ctx, deleteRunCmd, id); err != nil {
		klog.ErrorS(err, "failed to delete run db", "id", id)
		return err
	}
	return nil
}
