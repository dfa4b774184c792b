/*
 * Copyright (C) 2025-2026, Advanced Micro Devices, Inc. All rights reserved.
 * See LICENSE for license information.
 */

package client

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"reflect"
	"strings"

	"github.com/lib/pq"
	"k8s.io/klog/v2"

	dbutils "github.com/epiforge/fredcp/common/pkg/database/utils"
	commonjob "github.com/epiforge/fredcp/common/pkg/job"
	jsonutils "github.com/epiforge/fredcp/utils/pkg/json"
)

const (
	DESC = "desc"
	ASC  = "asc"

	CreatedAt = "created_at"
)

// Job is the persisted form of a job. Tags and metadata are stored as JSON
// text so ordering survives the round trip.
type Job struct {
	Id             int64          `db:"id"`
	UserId         int64          `db:"user_id"`
	Tags           sql.NullString `db:"tags"`
	Status         string         `db:"status"`
	CreatedAt      pq.NullTime    `db:"created_at"`
	UpdatedAt      pq.NullTime    `db:"updated_at"`
	InputLocation  sql.NullString `db:"input_location"`
	ConfigLocation sql.NullString `db:"config_location"`
	Metadata       sql.NullString `db:"metadata"`
}

// GetJobFieldTags returns the JobFieldTags value.
func GetJobFieldTags() map[string]string {
	j := Job{}
	return getFieldTags(j)
}

// NewJobRecord converts a domain job into its persisted form.
func NewJobRecord(j *commonjob.Job) *Job {
	record := &Job{
		Id:             j.Id,
		UserId:         j.UserId,
		Status:         string(j.Status),
		CreatedAt:      dbutils.NullTime(j.CreatedAt),
		UpdatedAt:      dbutils.NullTime(j.UpdatedAt),
		InputLocation:  dbutils.NullString(j.InputLocation),
		ConfigLocation: dbutils.NullString(j.ConfigLocation),
	}
	if len(j.Tags) > 0 {
		record.Tags = dbutils.NullString(string(jsonutils.MarshalSilently(j.Tags)))
	}
	if len(j.Metadata) > 0 {
		record.Metadata = dbutils.NullString(string(jsonutils.MarshalSilently(j.Metadata)))
	}
	return record
}

// ToDomain converts the record back into the domain form.
func (j *Job) ToDomain() *commonjob.Job {
	domain := &commonjob.Job{
		Id:             j.Id,
		UserId:         j.UserId,
		Status:         commonjob.JobStatus(j.Status),
		CreatedAt:      dbutils.ParseNullTime(j.CreatedAt),
		UpdatedAt:      dbutils.ParseNullTime(j.UpdatedAt),
		InputLocation:  dbutils.ParseNullString(j.InputLocation),
		ConfigLocation: dbutils.ParseNullString(j.ConfigLocation),
	}
	if tags := dbutils.ParseNullString(j.Tags); tags != "" {
		if err := json.Unmarshal([]byte(tags), &domain.Tags); err != nil {
			klog.ErrorS(err, "failed to parse job tags", "id", j.Id)
		}
	}
	if metadata := dbutils.ParseNullString(j.Metadata); metadata != "" {
		if err := json.Unmarshal([]byte(metadata), &domain.Metadata); err != nil {
			klog.ErrorS(err, "failed to parse job metadata", "id", j.Id)
		}
	}
	return domain
}

// Run is the persisted form of a run. The submission payload is stored
// verbatim as a JSON blob.
type Run struct {
	Id                int64          `db:"id"`
	JobId             int64          `db:"job_id"`
	UserId            int64          `db:"user_id"`
	Request           sql.NullString `db:"request"`
	Status            string         `db:"status"`
	PodPhase          string         `db:"pod_phase"`
	ContainerStatus   sql.NullString `db:"container_status"`
	EpxClientVersion  string         `db:"epx_client_version"`
	ConfigUrl         sql.NullString `db:"config_url"`
	ResultsUrl        sql.NullString `db:"results_url"`
	ResultsUploadedAt pq.NullTime    `db:"results_uploaded_at"`
	BatchExecutorId   sql.NullString `db:"batch_executor_id"`
	UserDeleted       bool           `db:"user_deleted"`
	CreatedAt         pq.NullTime    `db:"created_at"`
}

// GetRunFieldTags returns the RunFieldTags value.
func GetRunFieldTags() map[string]string {
	r := Run{}
	return getFieldTags(r)
}

// NewRunRecord converts a domain run into its persisted form. The status
// column is normalized, legacy aliases exist only in rows written by older
// deployments.
func NewRunRecord(r *commonjob.Run) *Run {
	record := &Run{
		Id:                r.Id,
		JobId:             r.JobId,
		UserId:            r.UserId,
		Status:            string(commonjob.NormalizeRunStatus(r.Status)),
		PodPhase:          string(r.PodPhase),
		ContainerStatus:   dbutils.NullString(r.ContainerStatus),
		EpxClientVersion:  r.EpxClientVersion,
		ConfigUrl:         dbutils.NullString(r.ConfigUrl),
		ResultsUrl:        dbutils.NullString(r.ResultsUrl),
		ResultsUploadedAt: dbutils.NullTimePtr(r.ResultsUploadedAt),
		BatchExecutorId:   dbutils.NullString(r.BatchExecutorId),
		UserDeleted:       r.UserDeleted,
		CreatedAt:         dbutils.NullTime(r.CreatedAt),
	}
	if len(r.Request) > 0 {
		record.Request = dbutils.NullString(string(jsonutils.MarshalSilently(r.Request)))
	}
	return record
}

// ToDomain converts the record back into the domain form.
func (r *Run) ToDomain() *commonjob.Run {
	domain := &commonjob.Run{
		Id:                r.Id,
		JobId:             r.JobId,
		UserId:            r.UserId,
		Status:            commonjob.RunStatus(r.Status),
		PodPhase:          commonjob.PodPhase(r.PodPhase),
		ContainerStatus:   dbutils.ParseNullString(r.ContainerStatus),
		EpxClientVersion:  r.EpxClientVersion,
		ConfigUrl:         dbutils.ParseNullString(r.ConfigUrl),
		ResultsUrl:        dbutils.ParseNullString(r.ResultsUrl),
		ResultsUploadedAt: dbutils.ParseNullTimePtr(r.ResultsUploadedAt),
		BatchExecutorId:   dbutils.ParseNullString(r.BatchExecutorId),
		UserDeleted:       r.UserDeleted,
		CreatedAt:         dbutils.ParseNullTime(r.CreatedAt),
	}
	if request := dbutils.ParseNullString(r.Request); request != "" {
		if err := json.Unmarshal([]byte(request), &domain.Request); err != nil {
			klog.ErrorS(err, "failed to parse run request", "id", r.Id)
		}
	}
	return domain
}

// getFieldTags retrieves FieldTags for internal use.
func getFieldTags(obj interface{}) map[string]string {
	result := make(map[string]string)
	t := reflect.TypeOf(obj)
	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		result[strings.ToLower(field.Name)] = field.Tag.Get("db")
	}
	return result
}

// generateCommand generates SQL command string using reflection
// Iterates through struct fields and builds column and value lists
// Skips fields with specified ignoreTag
// Returns formatted SQL command with columns and values
func generateCommand(obj interface{}, format, ignoreTag string) string {
	t := reflect.TypeOf(obj)
	columns := make([]string, 0, t.NumField())
	values := make([]string, 0, t.NumField())
	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		tag := field.Tag.Get("db")
		if tag == ignoreTag {
			continue
		}
		columns = append(columns, tag)
		values = append(values, fmt.Sprintf(":%s", tag))
	}
	cmd := fmt.Sprintf(format, strings.Join(columns, ", "), strings.Join(values, ", "))
	return cmd
}

// GetFieldTag returns the FieldTag value.
func GetFieldTag(tags map[string]string, name string) string {
	name = strings.ToLower(name)
	return tags[name]
}
