/*
 * Copyright (C) 2025-2026, Advanced Micro Devices, Inc. All rights reserved.
 * See LICENSE for license information.
 */

package model

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"
)

const TableNameNotification = "notification"

// Notification is one queued event waiting for delivery. SentAt stays nil
// until every channel accepted the message.
type Notification struct {
	ID        int64      `gorm:"column:id;primaryKey;autoIncrement:true" json:"id"`
	UID       string     `gorm:"column:uid;not null" json:"uid"`
	Topic     string     `gorm:"column:topic;not null" json:"topic"`
	Data      ExtType    `gorm:"column:data" json:"data"`
	CreatedAt time.Time  `gorm:"column:created_at;not null;default:CURRENT_TIMESTAMP" json:"created_at"`
	SentAt    *time.Time `gorm:"column:sent_at" json:"sent_at"`
}

// TableName returns the table name
func (*Notification) TableName() string {
	return TableNameNotification
}

// ExtType stores a JSON object column as a plain map.
type ExtType map[string]interface{}

func (e ExtType) Value() (driver.Value, error) {
	b, err := json.Marshal(e)
	return string(b), err
}

func (e *ExtType) Scan(value interface{}) error {
	if value == nil {
		*e = make(map[string]interface{})
		return nil
	}

	var b []byte
	switch v := value.(type) {
	case []byte:
		b = v
	case string:
		b = []byte(v)
	default:
		return errors.New("type assertion to []byte failed")
	}

	if len(b) == 0 {
		*e = make(map[string]interface{})
		return nil
	}

	return json.Unmarshal(b, e)
}

// GetStringValue returns the string at key, empty when absent or not a string.
func (e *ExtType) GetStringValue(key string) string {
	if val, ok := (*e)[key]; ok {
		if str, ok := val.(string); ok {
			return str
		}
	}
	return ""
}
