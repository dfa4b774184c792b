/*
 * Copyright (C) 2025-2026, Advanced Micro Devices, Inc. All rights reserved.
 * See LICENSE for license information.
 */

package job

import (
	"fmt"
	"time"

	commonerrors "github.com/epiforge/fredcp/common/pkg/errors"
)

type (
	JobStatus string
	RunStatus string
	PodPhase  string
)

const (
	JobKind = "Job"
	RunKind = "Run"

	JobCreated    JobStatus = "CREATED"
	JobSubmitted  JobStatus = "SUBMITTED"
	JobProcessing JobStatus = "PROCESSING"
	JobCompleted  JobStatus = "COMPLETED"
	JobFailed     JobStatus = "FAILED"
	JobCancelled  JobStatus = "CANCELLED"

	RunQueued     RunStatus = "QUEUED"
	RunNotStarted RunStatus = "NOT_STARTED"
	RunRunning    RunStatus = "RUNNING"
	RunDone       RunStatus = "DONE"
	RunError      RunStatus = "ERROR"

	// Legacy values still found at rest in older rows. Normalized on
	// read, never produced by the executor mapper.
	RunLegacySubmitted RunStatus = "Submitted"
	RunLegacyFailed    RunStatus = "Failed"
	RunLegacyCancelled RunStatus = "Cancelled"

	PodPending   PodPhase = "Pending"
	PodRunning   PodPhase = "Running"
	PodSucceeded PodPhase = "Succeeded"
	PodFailed    PodPhase = "Failed"
	PodUnknown   PodPhase = "Unknown"
)

// jobTransitions enumerates the allowed status edges. Terminal states have
// no outgoing edges.
var jobTransitions = map[JobStatus][]JobStatus{
	JobCreated:    {JobSubmitted, JobCancelled},
	JobSubmitted:  {JobProcessing, JobCancelled},
	JobProcessing: {JobCompleted, JobFailed, JobCancelled},
}

// Job is a user submission that groups one or more simulation runs. It is
// created unpersisted and receives its id on first save.
type Job struct {
	Id             int64             `json:"id"`
	UserId         int64             `json:"userId"`
	Tags           []string          `json:"tags"`
	Status         JobStatus         `json:"status"`
	CreatedAt      time.Time         `json:"createdAt"`
	UpdatedAt      time.Time         `json:"updatedAt"`
	InputLocation  string            `json:"inputLocation,omitempty"`
	ConfigLocation string            `json:"configLocation,omitempty"`
	Metadata       map[string]string `json:"metadata,omitempty"`
}

// NewJob constructs an unpersisted job owned by userId.
func NewJob(userId int64, tags []string) *Job {
	now := time.Now().UTC()
	return &Job{
		UserId:    userId,
		Tags:      tags,
		Status:    JobCreated,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// IsTerminal reports whether the status has no outgoing transition.
func (s JobStatus) IsTerminal() bool {
	return len(jobTransitions[s]) == 0
}

// IsActive reports whether the job can still change state.
func (j *Job) IsActive() bool {
	return !j.Status.IsTerminal()
}

// CanTransition reports whether the edge from the current status to target
// is allowed.
func (j *Job) CanTransition(target JobStatus) bool {
	for _, next := range jobTransitions[j.Status] {
		if next == target {
			return true
		}
	}
	return false
}

// Transition moves the job to target, failing when the state machine does
// not allow the edge.
func (j *Job) Transition(target JobStatus) error {
	if !j.CanTransition(target) {
		return commonerrors.NewInvalidTransition(
			fmt.Sprintf("job %d cannot move from %s to %s", j.Id, j.Status, target))
	}
	j.Status = target
	j.UpdatedAt = time.Now().UTC()
	return nil
}

// Run is one execution of the simulator with a specific parameter set.
type Run struct {
	Id                int64                  `json:"id"`
	JobId             int64                  `json:"jobId"`
	UserId            int64                  `json:"userId"`
	Request           map[string]interface{} `json:"request"`
	Status            RunStatus              `json:"status"`
	PodPhase          PodPhase               `json:"podPhase"`
	ContainerStatus   string                 `json:"containerStatus,omitempty"`
	EpxClientVersion  string                 `json:"epxClientVersion"`
	ConfigUrl         string                 `json:"config_url,omitempty"`
	ResultsUrl        string                 `json:"results_url,omitempty"`
	ResultsUploadedAt *time.Time             `json:"results_uploaded_at,omitempty"`
	BatchExecutorId   string                 `json:"batchExecutorId,omitempty"`
	UserDeleted       bool                   `json:"userDeleted"`
	CreatedAt         time.Time              `json:"createdTs"`
}

// NewRun constructs an unpersisted run for the given job. Fresh runs carry
// the legacy at-rest status so historical rows and new rows compare equal.
func NewRun(jobId, userId int64, request map[string]interface{}, clientVersion string) *Run {
	return &Run{
		JobId:            jobId,
		UserId:           userId,
		Request:          request,
		Status:           RunLegacySubmitted,
		PodPhase:         PodPending,
		EpxClientVersion: clientVersion,
		CreatedAt:        time.Now().UTC(),
	}
}

// UpdateStatus replaces status and pod phase together so the pair stays one
// of the mapper-produced combinations.
func (r *Run) UpdateStatus(status RunStatus, phase PodPhase) {
	r.Status = status
	r.PodPhase = phase
}

// MarkResultsUploaded records the permanent results URL and completes the run.
func (r *Run) MarkResultsUploaded(url string, uploadedAt time.Time) {
	r.ResultsUrl = url
	r.ResultsUploadedAt = &uploadedAt
	r.Status = RunDone
	r.PodPhase = PodSucceeded
}
