/*
 * Copyright (C) 2025-2026, Advanced Micro Devices, Inc. All rights reserved.
 * See LICENSE for license information.
 */

package jobevents

import (
	"context"
	"testing"

	"gotest.tools/assert"
)

func TestFilterKeepsTerminalStatuses(t *testing.T) {
	topic := &Topic{Recipients: []string{"ops@example.org"}}
	tests := []struct {
		status string
		keep   bool
	}{
		{"COMPLETED", true},
		{"FAILED", true},
		{"CANCELLED", true},
		{"CREATED", false},
		{"SUBMITTED", false},
		{"PROCESSING", false},
		{"DELETED", false},
		{"completed", false},
		{"", false},
	}
	for _, test := range tests {
		t.Run(test.status, func(t *testing.T) {
			data := map[string]interface{}{"job_id": float64(1), "status": test.status}
			assert.Equal(t, topic.Filter(data), test.keep)
		})
	}
}

func TestBuildMessage(t *testing.T) {
	topic := &Topic{Recipients: []string{"ops@example.org"}}
	data := map[string]interface{}{
		"job_id":  float64(42),
		"user_id": float64(123),
		"status":  "FAILED",
	}
	messages, err := topic.BuildMessage(context.Background(), data)
	assert.NilError(t, err)
	assert.Equal(t, len(messages), 1)
	assert.Assert(t, messages[0].Email != nil)
	assert.Equal(t, messages[0].Email.Title, "FRED job 42 failed")
	assert.DeepEqual(t, messages[0].Email.To, []string{"ops@example.org"})
}

func TestBuildMessageWithoutRecipients(t *testing.T) {
	topic := &Topic{}
	messages, err := topic.BuildMessage(context.Background(), map[string]interface{}{"status": "FAILED"})
	assert.NilError(t, err)
	assert.Equal(t, len(messages), 0)
}
