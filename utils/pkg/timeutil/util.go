/*
 * Copyright (C) 2025-2026, Advanced Micro Devices, Inc. All rights reserved.
 * See LICENSE for license information.
 */

package timeutil

import (
	"time"
)

const (
	TimeRFC3339Short = "2006-01-02T15:04:05"
)

// NowUTC returns the current time in UTC truncated to whole seconds.
func NowUTC() time.Time {
	return time.Now().UTC().Truncate(time.Second)
}

// FormatRFC3339 formats a time pointer, returning "" when nil or zero.
func FormatRFC3339(t *time.Time) string {
	if t == nil || t.IsZero() {
		return ""
	}
	return t.UTC().Format(TimeRFC3339Short)
}

// ParseRFC3339 accepts both the short form and full RFC 3339 with zone.
func ParseRFC3339(s string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t.UTC(), nil
	}
	t, err := time.Parse(TimeRFC3339Short, s)
	if err != nil {
		return time.Time{}, err
	}
	return t.UTC(), nil
}

// AgeThreshold returns the instant that lies the given number of days in the past.
func AgeThreshold(days int) time.Time {
	return NowUTC().AddDate(0, 0, -days)
}
