/*
 * Copyright (C) 2025-2026, Advanced Micro Devices, Inc. All rights reserved.
 * See LICENSE for license information.
 */

package archiver

import (
	"context"

	"github.com/robfig/cron/v3"
	"k8s.io/klog/v2"

	"github.com/epiforge/fredcp/apiserver/pkg/service"
	commonconfig "github.com/epiforge/fredcp/common/pkg/config"
	commonjob "github.com/epiforge/fredcp/common/pkg/job"
	"github.com/epiforge/fredcp/utils/pkg/timeutil"
)

// Archiver periodically moves the uploads of finished jobs to cold storage.
// Only objects older than the configured age threshold are touched, so a
// recently finished job stays in hot storage for its retention window.
type Archiver struct {
	svc  *service.Service
	cron *cron.Cron
}

func New(svc *service.Service) *Archiver {
	return &Archiver{
		svc: svc,
		cron: cron.New(cron.WithChain(
			cron.SkipIfStillRunning(cron.DiscardLogger),
		)),
	}
}

// Start schedules the archive sweep. A missing or invalid schedule disables
// the archiver.
func (a *Archiver) Start(ctx context.Context) error {
	schedule := commonconfig.GetArchiveSchedule()
	if schedule == "" {
		klog.Info("archive schedule is not configured, archiver disabled")
		return nil
	}
	_, err := a.cron.AddFunc(schedule, func() {
		a.sweep(ctx)
	})
	if err != nil {
		return err
	}
	a.cron.Start()
	klog.Infof("archiver started with schedule %q, age threshold %d days",
		schedule, commonconfig.GetArchiveAgeDays())
	return nil
}

// Stop halts the schedule and waits for a running sweep to finish.
func (a *Archiver) Stop() {
	<-a.cron.Stop().Done()
}

// sweep archives the uploads of every job in a terminal status.
func (a *Archiver) sweep(ctx context.Context) {
	threshold := timeutil.AgeThreshold(commonconfig.GetArchiveAgeDays())
	jobs := a.terminalJobs(ctx)
	archived := 0
	for _, job := range jobs {
		uploads, err := a.svc.GetJobUploads(ctx, job.Id, false)
		if err != nil {
			klog.ErrorS(err, "failed to list uploads for archiving", "job", job.Id)
			continue
		}
		locations := make([]*commonjob.UploadLocation, 0, len(uploads))
		for _, upload := range uploads {
			locations = append(locations, upload.Location)
		}
		for _, location := range a.svc.ArchiveUploads(ctx, locations, &threshold, false) {
			if len(location.Errors) > 0 {
				klog.Warningf("failed to archive %s of job %d: %v",
					location.SanitizedUrl(), job.Id, location.Errors)
				continue
			}
			archived++
		}
	}
	klog.Infof("archive sweep finished: %d jobs inspected, %d objects archived", len(jobs), archived)
}

func (a *Archiver) terminalJobs(ctx context.Context) []*commonjob.Job {
	var jobs []*commonjob.Job
	for _, status := range []commonjob.JobStatus{
		commonjob.JobCompleted, commonjob.JobFailed, commonjob.JobCancelled,
	} {
		batch, err := a.svc.GetJobsByStatus(ctx, status)
		if err != nil {
			klog.ErrorS(err, "failed to list jobs for archiving", "status", status)
			continue
		}
		jobs = append(jobs, batch...)
	}
	return jobs
}
