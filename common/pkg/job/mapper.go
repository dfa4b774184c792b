/*
 * Copyright (C) 2025-2026, Advanced Micro Devices, Inc. All rights reserved.
 * See LICENSE for license information.
 */

package job

import (
	"strings"

	"k8s.io/klog/v2"
)

// MapExecutorStatus translates a batch-executor status string into the
// run status and pod phase pair. Unrecognized values degrade to
// (ERROR, Unknown) with a warning so a new executor state never breaks
// a read path.
func MapExecutorStatus(executorStatus string) (RunStatus, PodPhase) {
	switch strings.ToUpper(executorStatus) {
	case "SUBMITTED", "PENDING", "RUNNABLE":
		return RunQueued, PodPending
	case "STARTING", "RUNNING":
		return RunRunning, PodRunning
	case "SUCCEEDED":
		return RunDone, PodSucceeded
	case "FAILED":
		return RunError, PodFailed
	default:
		klog.Warningf("unrecognized executor status %q, treating as ERROR/Unknown", executorStatus)
		return RunError, PodUnknown
	}
}

// PodPhaseToStatus maps a pod phase to the run status exposed to clients.
func PodPhaseToStatus(phase PodPhase) RunStatus {
	switch phase {
	case PodPending:
		return RunQueued
	case PodRunning:
		return RunRunning
	case PodSucceeded:
		return RunDone
	default:
		return RunError
	}
}

// NormalizeRunStatus folds the legacy at-rest aliases into the canonical
// status set. Unknown values pass through unchanged.
func NormalizeRunStatus(status RunStatus) RunStatus {
	switch status {
	case RunLegacySubmitted:
		return RunQueued
	case RunLegacyFailed, RunLegacyCancelled:
		return RunError
	default:
		return status
	}
}
