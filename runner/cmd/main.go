/*
 * Copyright (C) 2025-2026, Advanced Micro Devices, Inc. All rights reserved.
 * See LICENSE for license information.
 */

package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strconv"
	"syscall"

	"github.com/google/uuid"
	"k8s.io/klog/v2"

	"github.com/epiforge/fredcp/apiserver/pkg/controller"
	"github.com/epiforge/fredcp/apiserver/pkg/service"
	"github.com/epiforge/fredcp/common/pkg/batch"
	commonconfig "github.com/epiforge/fredcp/common/pkg/config"
	dbclient "github.com/epiforge/fredcp/common/pkg/database/client"
	commonklog "github.com/epiforge/fredcp/common/pkg/klog"
	"github.com/epiforge/fredcp/common/pkg/options"
	"github.com/epiforge/fredcp/common/pkg/s3"
	"github.com/epiforge/fredcp/runner/pkg/pipeline"
)

func main() {
	if err := run(); err != nil {
		klog.ErrorS(err, "simulation runner failed")
		klog.Flush()
		os.Exit(1)
	}
	klog.Flush()
}

func run() error {
	opts := &options.Options{}
	if err := opts.InitFlags(); err != nil {
		return err
	}
	if err := commonklog.Init(opts.LogfilePath, opts.LogFileSize); err != nil {
		return err
	}
	if err := commonconfig.InitConfig(opts.Config); err != nil {
		return err
	}

	jobId, err := requiredId("JOB_ID")
	if err != nil {
		return err
	}
	runId, err := optionalId("RUN_ID")
	if err != nil {
		return err
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	ctrl, err := newController(ctx)
	if err != nil {
		return err
	}
	workspace := filepath.Join(commonconfig.GetRunnerWorkspace(),
		fmt.Sprintf("job_%d_%s", jobId, uuid.NewString()[:8]))
	simulator := filepath.Join(commonconfig.GetFredHome(), "bin", "FRED")

	klog.Infof("simulation runner starting: job %d run %d workspace %s", jobId, runId, workspace)
	rc := pipeline.NewRunContext(ctrl, jobId, runId, workspace, simulator)
	return pipeline.New().Run(ctx, rc)
}

// newController wires the in-process controller the pipeline runs against.
// The runner never dispatches to the executor, so it carries the dummy
// gateway.
func newController(ctx context.Context) (*controller.Controller, error) {
	db := dbclient.NewClient()
	if db == nil {
		return nil, fmt.Errorf("failed to create the database client")
	}
	store, err := s3.NewGateway(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create the object store gateway: %w", err)
	}
	return controller.New(service.NewService(db, store), batch.NewDummyGateway()), nil
}

func requiredId(env string) (int64, error) {
	raw := os.Getenv(env)
	if raw == "" {
		return 0, fmt.Errorf("%s is not set", env)
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%s must be a positive integer, got %q", env, raw)
	}
	return id, nil
}

func optionalId(env string) (int64, error) {
	raw := os.Getenv(env)
	if raw == "" {
		return 0, nil
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%s must be a positive integer, got %q", env, raw)
	}
	return id, nil
}
