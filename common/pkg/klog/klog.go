/*
 * Copyright (C) 2025-2026, Advanced Micro Devices, Inc. All rights reserved.
 * See LICENSE for license information.
 */

package klog

import (
	"flag"
	"strconv"

	"k8s.io/klog/v2"
)

// Init initializes the klog logging system with the specified log file path
// and maximum log file size. Logs go to both file and stderr with headers
// skipped. An empty path logs to stderr only.
func Init(logfilePath string, logFileSize int) error {
	fs := flag.NewFlagSet("klog", flag.ContinueOnError)
	klog.InitFlags(fs)
	if logfilePath != "" {
		fs.Set("log_file", logfilePath)
		fs.Set("alsologtostderr", "true")
		fs.Set("logtostderr", "false")
	}
	fs.Set("skip_log_headers", "true")
	if logFileSize != 0 {
		fs.Set("log_file_max_size", strconv.Itoa(logFileSize))
	}
	return nil
}
