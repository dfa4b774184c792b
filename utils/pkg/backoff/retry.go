/*
 * Copyright (C) 2025-2026, Advanced Micro Devices, Inc. All rights reserved.
 * See LICENSE for license information.
 */

package backoff

import (
	"time"

	"github.com/cenkalti/backoff/v4"
)

// Retry executes an operation with exponential backoff retry logic.
// It uses the backoff library to retry the operation with exponential backoff intervals
// until the operation succeeds or the maximum elapsed time is reached.
//
// Parameters:
//   - op: The operation function to execute, which should return an error
//   - maxElapsedTime: Maximum total time to spend retrying before giving up
//   - maxInterval: Maximum interval between retry attempts
//
// Returns:
//   - error: The last error returned by the operation, or nil if operation succeeded
func Retry(op backoff.Operation, maxElapsedTime, maxInterval time.Duration) error {
	b := backoff.NewExponentialBackOff()
	b.MaxElapsedTime = maxElapsedTime
	b.MaxInterval = maxInterval
	if err := backoff.Retry(op, b); err != nil {
		return err
	}
	return nil
}

// RetryCount executes an operation with fixed-interval retry logic.
// It retries the operation a fixed number of times with a fixed interval between
// attempts, but only continues retrying while retryable reports true for the
// returned error. A nil retryable retries every error.
//
// Parameters:
//   - op: The operation function to execute, which should return an error
//   - retryable: Predicate deciding whether an error is worth another attempt
//   - count: Maximum number of attempts
//   - interval: Fixed time interval to wait between attempts
//
// Returns:
//   - error: The last error returned by the operation, or nil if operation succeeded
func RetryCount(op backoff.Operation, retryable func(error) bool, count int, interval time.Duration) error {
	var err error
	for i := 0; i < count; i++ {
		err = op()
		if err == nil {
			return nil
		}
		if i == count-1 || (retryable != nil && !retryable(err)) {
			return err
		}
		time.Sleep(interval)
	}
	return err
}
