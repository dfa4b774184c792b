/*
 * Copyright (C) 2025-2026, Advanced Micro Devices, Inc. All rights reserved.
 * See LICENSE for license information.
 */

package jobevents

import (
	"context"
	"fmt"
	"strings"

	commonjob "github.com/epiforge/fredcp/common/pkg/job"
	"github.com/epiforge/fredcp/common/pkg/notification/model"
)

// Topic turns terminal job transitions into operator mail.
type Topic struct {
	Recipients []string
}

// Name returns the name of the topic.
func (t *Topic) Name() string {
	return model.TopicJob
}

// Filter keeps only events for jobs that reached a terminal status. The
// terminal set is matched explicitly: a status string the state machine
// does not know is noise, not a finished job.
func (t *Topic) Filter(data map[string]interface{}) bool {
	status, _ := data["status"].(string)
	switch commonjob.JobStatus(status) {
	case commonjob.JobCompleted, commonjob.JobFailed, commonjob.JobCancelled:
		return true
	}
	return false
}

// BuildMessage renders the event into one email for the configured
// recipients.
func (t *Topic) BuildMessage(ctx context.Context, data map[string]interface{}) ([]*model.Message, error) {
	if len(t.Recipients) == 0 {
		return nil, nil
	}
	status, _ := data["status"].(string)
	title := fmt.Sprintf("FRED job %s %s", formatId(data["job_id"]), strings.ToLower(status))
	content := fmt.Sprintf(
		"<p>Job %s moved to <b>%s</b>.</p><p>User: %s</p>",
		formatId(data["job_id"]), status, formatId(data["user_id"]))
	return []*model.Message{
		{Email: &model.EmailMessage{To: t.Recipients, Title: title, Content: content}},
	}, nil
}

// formatId renders numeric ids without a float exponent after the JSON
// round trip through the queue table.
func formatId(v interface{}) string {
	switch n := v.(type) {
	case float64:
		return fmt.Sprintf("%.0f", n)
	case nil:
		return "unknown"
	default:
		return fmt.Sprintf("%v", n)
	}
}
