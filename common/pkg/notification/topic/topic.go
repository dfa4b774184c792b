/*
 * Copyright (C) 2025-2026, Advanced Micro Devices, Inc. All rights reserved.
 * See LICENSE for license information.
 */

package topic

import (
	"context"

	"github.com/epiforge/fredcp/common/pkg/notification/model"
	"github.com/epiforge/fredcp/common/pkg/notification/topic/jobevents"
)

type Topic interface {
	Name() string
	BuildMessage(ctx context.Context, data map[string]interface{}) ([]*model.Message, error)
	Filter(data map[string]interface{}) bool
}

// NewTopics creates and returns all supported notification topics.
func NewTopics(recipients []string) map[string]Topic {
	topics := make(map[string]Topic)
	jobTopic := &jobevents.Topic{Recipients: recipients}
	topics[jobTopic.Name()] = jobTopic

	return topics
}
