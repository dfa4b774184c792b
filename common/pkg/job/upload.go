/*
 * Copyright (C) 2025-2026, Advanced Micro Devices, Inc. All rights reserved.
 * See LICENSE for license information.
 */

package job

import (
	"fmt"
	"net/url"
	"strings"

	commonerrors "github.com/epiforge/fredcp/common/pkg/errors"
)

type (
	UploadContext string
	UploadType    string
)

const (
	ContextJob UploadContext = "job"
	ContextRun UploadContext = "run"

	TypeConfig  UploadType = "config"
	TypeInput   UploadType = "input"
	TypeOutput  UploadType = "output"
	TypeResults UploadType = "results"
	TypeLogs    UploadType = "logs"
)

var allowedUploadTypes = map[UploadContext][]UploadType{
	ContextJob: {TypeConfig, TypeInput},
	ContextRun: {TypeConfig, TypeOutput, TypeResults, TypeLogs},
}

// JobUpload identifies one artifact of a job or of a run. Content is only
// populated by read paths that were asked to fetch the object body.
type JobUpload struct {
	Context  UploadContext   `json:"context"`
	Type     UploadType      `json:"type"`
	JobId    int64           `json:"jobId"`
	RunId    int64           `json:"runId,omitempty"`
	Location *UploadLocation `json:"location,omitempty"`
	Content  interface{}     `json:"content,omitempty"`
}

// Validate checks the context and type pair and the id requirements.
func (u *JobUpload) Validate() error {
	if u.JobId <= 0 {
		return commonerrors.NewBadRequest("jobId must be positive")
	}
	types, ok := allowedUploadTypes[u.Context]
	if !ok {
		return commonerrors.NewBadRequest(fmt.Sprintf("unknown upload context %q", u.Context))
	}
	found := false
	for _, t := range types {
		if t == u.Type {
			found = true
			break
		}
	}
	if !found {
		return commonerrors.NewBadRequest(
			fmt.Sprintf("upload type %q is not valid for context %q", u.Type, u.Context))
	}
	if u.Context == ContextRun && u.RunId <= 0 {
		return commonerrors.NewBadRequest("runId is required for run uploads")
	}
	if u.Context == ContextJob && u.RunId != 0 {
		return commonerrors.NewBadRequest("runId is not allowed for job uploads")
	}
	return nil
}

// Key resolves the object key of this upload under prefix.
func (u *JobUpload) Key(prefix KeyPrefix) (string, error) {
	switch {
	case u.Context == ContextJob && u.Type == TypeConfig:
		return prefix.JobConfigKey(), nil
	case u.Context == ContextJob && u.Type == TypeInput:
		return prefix.JobInputKey(), nil
	case u.Context == ContextRun && u.Type == TypeConfig:
		return prefix.RunConfigKey(u.RunId), nil
	case u.Context == ContextRun && u.Type == TypeResults:
		return prefix.RunResultsKey(u.RunId), nil
	case u.Context == ContextRun && u.Type == TypeLogs:
		return prefix.RunLogsKey(u.RunId), nil
	}
	return "", commonerrors.NewBadRequest(
		fmt.Sprintf("no object key defined for %s/%s uploads", u.Context, u.Type))
}

// UploadLocation is an object-store URL plus the errors accumulated while
// operating on it. Two locations are the same location when their URLs match.
type UploadLocation struct {
	Url    string   `json:"url"`
	Errors []string `json:"errors,omitempty"`
}

// NewUploadLocation wraps a URL with an empty error list.
func NewUploadLocation(rawUrl string) *UploadLocation {
	return &UploadLocation{Url: rawUrl}
}

// Equal compares locations by URL only.
func (l *UploadLocation) Equal(other *UploadLocation) bool {
	return other != nil && l.Url == other.Url
}

// AppendError records an operation failure against this location.
func (l *UploadLocation) AppendError(msg string) {
	l.Errors = append(l.Errors, msg)
}

// SanitizedUrl returns the URL with the signed query stripped and the
// bucket segment masked, safe for logs and error messages.
func (l *UploadLocation) SanitizedUrl() string {
	u, err := url.Parse(l.Url)
	if err != nil {
		return ""
	}
	u.RawQuery = ""
	u.Fragment = ""
	switch {
	case u.Scheme == "s3":
		u.Host = "***"
	case strings.Contains(u.Host, ".s3"):
		// virtual-host style, bucket is the leading host label
		idx := strings.Index(u.Host, ".s3")
		u.Host = "***" + u.Host[idx:]
	case strings.HasPrefix(u.Host, "s3.") || strings.HasPrefix(u.Host, "s3-"):
		// path-style, bucket is the first path segment
		parts := strings.SplitN(strings.TrimPrefix(u.Path, "/"), "/", 2)
		if len(parts) == 2 {
			u.Path = "/***/" + parts[1]
		}
	}
	return u.String()
}
