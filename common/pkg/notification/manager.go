/*
 * Copyright (C) 2025-2026, Advanced Micro Devices, Inc. All rights reserved.
 * See LICENSE for license information.
 */

package notification

import (
	"context"
	"time"

	"k8s.io/klog/v2"

	dbClient "github.com/epiforge/fredcp/common/pkg/database/client"
	"github.com/epiforge/fredcp/common/pkg/notification/channel"
	"github.com/epiforge/fredcp/common/pkg/notification/model"
	"github.com/epiforge/fredcp/common/pkg/notification/topic"
)

// pollInterval bounds how stale a queued job event can get before delivery.
const pollInterval = 5 * time.Second

var singleton *Manager

// GetNotificationManager returns the singleton notification manager, nil
// when notifications are not configured.
func GetNotificationManager() *Manager {
	return singleton
}

// InitNotificationManager builds the manager from the notification config
// and starts its delivery loop.
func InitNotificationManager(ctx context.Context, configFile string) error {
	klog.Infof("Notification manager initializing with config file: %s", configFile)
	conf, err := channel.ReadConfig(configFile)
	if err != nil {
		return err
	}
	channels, err := channel.InitChannels(ctx, conf)
	if err != nil {
		return err
	}
	singleton = &Manager{
		channels: channels,
		topics:   topic.NewTopics(conf.Recipients),
		dbClient: dbClient.NewClient(),
	}
	go singleton.deliverLoop(ctx)
	return nil
}

// Manager decouples job-event producers from mail delivery through the
// notification table: SubmitNotification enqueues, the delivery loop drains.
// An SMTP outage therefore never blocks a request path, and undelivered
// events are retried on the next tick.
type Manager struct {
	channels map[string]channel.Channel
	topics   map[string]topic.Topic
	dbClient *dbClient.Client
}

// SubmitNotification queues one event for delivery. Events no topic claims,
// or that the topic filters out, are dropped silently.
func (m *Manager) SubmitNotification(ctx context.Context, topicName, uid string, data map[string]interface{}) error {
	t, ok := m.topics[topicName]
	if !ok || !t.Filter(data) {
		return nil
	}
	return m.dbClient.SubmitNotification(ctx, &model.Notification{
		Data:      data,
		Topic:     topicName,
		UID:       uid,
		CreatedAt: time.Now(),
	})
}

func (m *Manager) deliverLoop(ctx context.Context) {
	ticker := time.NewTicker(pollInterval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			klog.Infof("notification manager stopping")
			return
		case <-ticker.C:
			m.drainQueue(ctx)
		}
	}
}

// drainQueue delivers every unsent event. A failing event stays queued and
// does not block the others.
func (m *Manager) drainQueue(ctx context.Context) {
	unsent, err := m.dbClient.ListUnprocessedNotifications(ctx)
	if err != nil {
		klog.ErrorS(err, "failed to list queued notifications")
		return
	}
	for _, event := range unsent {
		if err := m.deliver(ctx, event); err != nil {
			klog.ErrorS(err, "failed to deliver notification", "topic", event.Topic, "uid", event.UID)
			continue
		}
		now := time.Now()
		event.SentAt = &now
		if err := m.dbClient.UpdateNotification(ctx, event); err != nil {
			klog.ErrorS(err, "failed to mark notification sent", "uid", event.UID)
		}
	}
}

// deliver renders one queued event through its topic and pushes the
// resulting messages out on their channels.
func (m *Manager) deliver(ctx context.Context, event *model.Notification) error {
	t, ok := m.topics[event.Topic]
	if !ok {
		// Rows written by a newer deployment; leave them for it.
		return nil
	}
	messages, err := t.BuildMessage(ctx, event.Data)
	if err != nil {
		return err
	}
	for _, msg := range messages {
		for _, name := range msg.GetChannels() {
			ch, ok := m.channels[name]
			if !ok {
				klog.Warningf("channel %s is not configured", name)
				continue
			}
			if err := ch.Send(ctx, msg); err != nil {
				return err
			}
		}
	}
	return nil
}
