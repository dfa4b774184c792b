/*
 * Copyright (C) 2025-2026, Advanced Micro Devices, Inc. All rights reserved.
 * See LICENSE for license information.
 */

package pipeline

import (
	"context"
	"fmt"

	"k8s.io/klog/v2"

	"github.com/epiforge/fredcp/apiserver/pkg/controller"
)

// Stage is one step of the simulation pipeline. Stages run in order and a
// failure aborts everything downstream.
type Stage interface {
	Name() string
	Execute(ctx context.Context, rc *RunContext) error
}

// RunContext carries the state the stages hand to each other: the workspace
// layout, the loaded run configurations and the prepared model files.
type RunContext struct {
	JobId     int64
	RunId     int64
	Workspace string

	// SimulatorPath is the FRED executable, {FRED_HOME}/bin/FRED.
	SimulatorPath string

	ctrl *controller.Controller

	// Runs maps each run id this process prepares to its state. With a
	// RUN_ID in the environment it holds exactly that run; without one it
	// holds every run whose config was downloaded.
	Runs map[int64]*RunState
}

// RunState is the per-run output of the prepare stage.
type RunState struct {
	ConfigPath   string
	PreparedPath string
	RunNumber    int64
	OutputDir    string
}

func NewRunContext(ctrl *controller.Controller, jobId, runId int64, workspace, simulatorPath string) *RunContext {
	return &RunContext{
		JobId:         jobId,
		RunId:         runId,
		Workspace:     workspace,
		SimulatorPath: simulatorPath,
		ctrl:          ctrl,
		Runs:          make(map[int64]*RunState),
	}
}

// Pipeline is the ordered stage list of one runner process.
type Pipeline struct {
	stages []Stage
}

// New builds the standard simulation pipeline.
func New() *Pipeline {
	return &Pipeline{stages: []Stage{
		&downloadStage{},
		&extractStage{},
		&prepareStage{},
		&validateStage{},
		&executeStage{},
		&uploadStage{},
	}}
}

// Run executes the stages in order, stopping at the first failure.
func (p *Pipeline) Run(ctx context.Context, rc *RunContext) error {
	total := len(p.stages)
	for i, stage := range p.stages {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}
		klog.Infof("[%d/%d] running stage %s for job %d run %d",
			i+1, total, stage.Name(), rc.JobId, rc.RunId)
		if err := stage.Execute(ctx, rc); err != nil {
			return fmt.Errorf("stage %s failed: %w", stage.Name(), err)
		}
		klog.Infof("[%d/%d] stage %s completed", i+1, total, stage.Name())
	}
	return nil
}
