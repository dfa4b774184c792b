/*
 * Copyright (C) 2025-2026, Advanced Micro Devices, Inc. All rights reserved.
 * See LICENSE for license information.
 */

package pipeline

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"regexp"
	"strconv"
	"time"

	"k8s.io/klog/v2"

	commonconfig "github.com/epiforge/fredcp/common/pkg/config"
	"github.com/epiforge/fredcp/runner/pkg/fredfile"
	"github.com/epiforge/fredcp/utils/pkg/backoff"
)

var runConfigPattern = regexp.MustCompile(`^run_(\d+)_config\.json$`)

// downloadStage materializes every upload of the job into the workspace.
// Object store reads are retried; a job whose artifacts cannot be fetched
// never reaches the simulator.
type downloadStage struct{}

func (s *downloadStage) Name() string { return "download" }

func (s *downloadStage) Execute(ctx context.Context, rc *RunContext) error {
	if err := os.MkdirAll(rc.Workspace, 0o755); err != nil {
		return err
	}
	return backoff.Retry(func() error {
		result := rc.ctrl.DownloadJobUploads(ctx, rc.JobId, rc.Workspace)
		if !result.Ok() {
			return errors.New(result.Err())
		}
		klog.Infof("downloaded %d artifacts of job %d", len(result.Value()), rc.JobId)
		return nil
	}, 2*time.Minute, 15*time.Second)
}

// extractStage unpacks the job input archive. Jobs without one carry their
// model inline in the uploads, so a missing archive is not a failure.
type extractStage struct{}

func (s *extractStage) Name() string { return "extract" }

func (s *extractStage) Execute(_ context.Context, rc *RunContext) error {
	archive := filepath.Join(rc.Workspace, "job_input.zip")
	if _, err := os.Stat(archive); os.IsNotExist(err) {
		klog.Infof("job %d has no input archive, skipping extraction", rc.JobId)
		return nil
	}
	extracted, err := unzip(archive, rc.Workspace)
	if err != nil {
		return err
	}
	klog.Infof("extracted %d files from job input archive", extracted)
	return nil
}

// prepareStage loads the run configurations and rewrites the model file per
// run. With a RUN_ID only that run's config is prepared; without one every
// downloaded config is.
type prepareStage struct{}

func (s *prepareStage) Name() string { return "prepare" }

func (s *prepareStage) Execute(_ context.Context, rc *RunContext) error {
	mainPath := filepath.Join(rc.Workspace, fredfile.MainFileName)
	if _, err := os.Stat(mainPath); err != nil {
		return fmt.Errorf("workspace has no %s: %w", fredfile.MainFileName, err)
	}
	configs, err := s.configPaths(rc)
	if err != nil {
		return err
	}
	for runId, configPath := range configs {
		config, err := fredfile.LoadRunConfig(configPath)
		if err != nil {
			return err
		}
		prepared, err := fredfile.Prepare(mainPath, config, runId)
		if err != nil {
			return err
		}
		rc.Runs[runId] = &RunState{
			ConfigPath:   configPath,
			PreparedPath: prepared,
			RunNumber:    config.RunNumber(),
			OutputDir:    filepath.Join(rc.Workspace, "OUT", fmt.Sprintf("run_%d", runId)),
		}
		klog.Infof("prepared run %d: run number %d", runId, config.RunNumber())
	}
	if len(rc.Runs) == 0 {
		return fmt.Errorf("no run configurations found for job %d", rc.JobId)
	}
	return nil
}

func (s *prepareStage) configPaths(rc *RunContext) (map[int64]string, error) {
	if rc.RunId > 0 {
		path := filepath.Join(rc.Workspace, fmt.Sprintf("run_%d_config.json", rc.RunId))
		if _, err := os.Stat(path); err != nil {
			return nil, fmt.Errorf("config for run %d is missing: %w", rc.RunId, err)
		}
		return map[int64]string{rc.RunId: path}, nil
	}
	entries, err := os.ReadDir(rc.Workspace)
	if err != nil {
		return nil, err
	}
	configs := make(map[int64]string)
	for _, entry := range entries {
		match := runConfigPattern.FindStringSubmatch(entry.Name())
		if match == nil {
			continue
		}
		runId, err := strconv.ParseInt(match[1], 10, 64)
		if err != nil {
			continue
		}
		configs[runId] = filepath.Join(rc.Workspace, entry.Name())
	}
	return configs, nil
}

// validateStage runs the simulator's check mode against every prepared
// model. A model the simulator rejects aborts the pipeline before any run
// starts.
type validateStage struct{}

func (s *validateStage) Name() string { return "validate" }

func (s *validateStage) Execute(ctx context.Context, rc *RunContext) error {
	for runId, state := range rc.Runs {
		logPath := filepath.Join(rc.Workspace, fmt.Sprintf("run_%d_validation.log", runId))
		err := runSimulator(ctx, logPath, rc.SimulatorPath, "-p", state.PreparedPath, "-c")
		if err != nil {
			return fmt.Errorf("model validation failed for run %d, see %s: %w",
				runId, filepath.Base(logPath), err)
		}
	}
	return nil
}

// executeStage runs the simulator once per prepared run, each under the
// configured timeout with its output captured to the run's simulation log.
type executeStage struct{}

func (s *executeStage) Name() string { return "execute" }

func (s *executeStage) Execute(ctx context.Context, rc *RunContext) error {
	timeout := time.Duration(commonconfig.GetSimulationTimeoutSecond()) * time.Second
	for runId, state := range rc.Runs {
		if err := os.MkdirAll(state.OutputDir, 0o755); err != nil {
			return err
		}
		logPath := filepath.Join(rc.Workspace, fmt.Sprintf("run_%d_simulation.log", runId))
		runCtx, cancel := context.WithTimeout(ctx, timeout)
		err := runSimulator(runCtx, logPath, rc.SimulatorPath,
			"-p", state.PreparedPath,
			"-r", strconv.FormatInt(state.RunNumber, 10),
			"-d", state.OutputDir)
		cancel()
		if err != nil {
			return fmt.Errorf("simulation failed for run %d, see %s: %w",
				runId, filepath.Base(logPath), err)
		}
		klog.Infof("simulation finished for run %d", runId)
	}
	return nil
}

// uploadStage packages and uploads each completed run's results through the
// control plane.
type uploadStage struct{}

func (s *uploadStage) Name() string { return "upload" }

func (s *uploadStage) Execute(ctx context.Context, rc *RunContext) error {
	for runId, state := range rc.Runs {
		result := rc.ctrl.UploadResults(ctx, rc.JobId, runId, state.OutputDir)
		if !result.Ok() {
			return fmt.Errorf("results upload failed for run %d: %s", runId, result.Err())
		}
		klog.Infof("uploaded results of run %d to %s", runId, result.Value().SanitizedUrl())
	}
	return nil
}

// runSimulator executes the simulator with its stdout and stderr captured
// into logPath.
func runSimulator(ctx context.Context, logPath, simulator string, args ...string) error {
	logFile, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return err
	}
	defer logFile.Close()

	cmd := exec.CommandContext(ctx, simulator, args...)
	cmd.Stdout = logFile
	cmd.Stderr = logFile
	if err = cmd.Run(); err != nil {
		if ctx.Err() == context.DeadlineExceeded {
			return fmt.Errorf("simulator timed out: %w", ctx.Err())
		}
		return err
	}
	return nil
}
