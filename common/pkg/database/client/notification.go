/*
 * Copyright (C) 2025-2026, Advanced Micro Devices, Inc. All rights reserved.
 * See LICENSE for license information.
 */

package client

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/epiforge/fredcp/common/pkg/notification/model"
)

// SubmitNotification submits a notification to be processed and sent.
// Resubmitting the same (uid, topic) pair is a no-op so event producers can
// fire blindly on every save.
func (c *Client) SubmitNotification(ctx context.Context, data *model.Notification) error {
	db, err := c.getGorm()
	if err != nil {
		return err
	}
	existing := &model.Notification{}
	err = db.WithContext(ctx).
		Where("uid = ? AND topic = ?", data.UID, data.Topic).
		First(existing).Error
	if err == nil {
		// Notification already exists
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}
	return db.WithContext(ctx).Create(data).Error
}

// UpdateNotification updates the specified resource.
func (c *Client) UpdateNotification(ctx context.Context, data *model.Notification) error {
	db, err := c.getGorm()
	if err != nil {
		return err
	}
	return db.WithContext(ctx).Where("id = ?", data.ID).Save(data).Error
}

// ListUnprocessedNotifications retrieves a list of resources.
func (c *Client) ListUnprocessedNotifications(ctx context.Context) ([]*model.Notification, error) {
	db, err := c.getGorm()
	if err != nil {
		return nil, err
	}
	var pending []*model.Notification
	err = db.WithContext(ctx).Where("sent_at IS NULL").Find(&pending).Error
	return pending, err
}
