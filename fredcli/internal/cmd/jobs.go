/*
 * Copyright (C) 2025-2026, Advanced Micro Devices, Inc. All rights reserved.
 * See LICENSE for license information.
 */

package cmd

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	commonjob "github.com/epiforge/fredcp/common/pkg/job"
)

var (
	jobId      int64
	listLimit  int
	listOffset int
)

// jobsCmd groups the job inspection commands.
var jobsCmd = &cobra.Command{
	Use:   "jobs",
	Short: "Inspect simulation jobs",
}

var jobsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List jobs, newest first",
	RunE:  runJobsList,
}

var jobsInfoCmd = &cobra.Command{
	Use:   "info",
	Short: "Show one job with its runs",
	RunE:  runJobsInfo,
}

func init() {
	jobsListCmd.Flags().IntVar(&listLimit, "limit", 50, "maximum number of jobs to list")
	jobsListCmd.Flags().IntVar(&listOffset, "offset", 0, "number of jobs to skip")
	jobsInfoCmd.Flags().Int64Var(&jobId, "job-id", 0, "job id (required)")
	_ = jobsInfoCmd.MarkFlagRequired("job-id")
	jobsCmd.AddCommand(jobsListCmd)
	jobsCmd.AddCommand(jobsInfoCmd)
	rootCmd.AddCommand(jobsCmd)
}

func runJobsList(cmd *cobra.Command, _ []string) error {
	ctx, cancel := context.WithTimeout(cmd.Context(), 2*time.Minute)
	defer cancel()
	ctrl, err := newController(ctx)
	if err != nil {
		return err
	}
	result := ctrl.ListJobs(ctx, listLimit, listOffset)
	if !result.Ok() {
		return errors.New(result.Err())
	}
	jobs := result.Value()
	if len(jobs) == 0 {
		fmt.Println("no jobs found")
		return nil
	}
	fmt.Printf("%-8s %-8s %-12s %-22s %s\n", "ID", "USER", "STATUS", "CREATED", "TAGS")
	for _, job := range jobs {
		fmt.Printf("%-8d %-8d %-12s %-22s %s\n",
			job.Id, job.UserId, job.Status,
			job.CreatedAt.UTC().Format(time.RFC3339),
			strings.Join(job.Tags, ","))
	}
	return nil
}

func runJobsInfo(cmd *cobra.Command, _ []string) error {
	ctx, cancel := context.WithTimeout(cmd.Context(), 2*time.Minute)
	defer cancel()
	ctrl, err := newController(ctx)
	if err != nil {
		return err
	}
	result := ctrl.GetJob(ctx, jobId)
	if !result.Ok() {
		return errors.New(result.Err())
	}
	printJob(result.Value())

	runsResult := ctrl.GetRuns(ctx, jobId)
	if !runsResult.Ok() {
		return errors.New(runsResult.Err())
	}
	printRuns(runsResult.Value())
	return nil
}

func printJob(job *commonjob.Job) {
	fmt.Printf("Job:      %d\n", job.Id)
	fmt.Printf("User:     %d\n", job.UserId)
	fmt.Printf("Status:   %s\n", job.Status)
	fmt.Printf("Created:  %s\n", job.CreatedAt.UTC().Format(time.RFC3339))
	fmt.Printf("Updated:  %s\n", job.UpdatedAt.UTC().Format(time.RFC3339))
	if len(job.Tags) > 0 {
		fmt.Printf("Tags:     %s\n", strings.Join(job.Tags, ","))
	}
	if job.InputLocation != "" {
		fmt.Printf("Input:    %s\n", job.InputLocation)
	}
	if job.ConfigLocation != "" {
		fmt.Printf("Config:   %s\n", job.ConfigLocation)
	}
}

func printRuns(runs []*commonjob.Run) {
	if len(runs) == 0 {
		fmt.Println("\nno runs")
		return
	}
	fmt.Printf("\n%-8s %-14s %-12s %-22s %s\n", "RUN", "STATUS", "POD PHASE", "CREATED", "EXECUTOR")
	for _, run := range runs {
		fmt.Printf("%-8d %-14s %-12s %-22s %s\n",
			run.Id, commonjob.PodPhaseToStatus(run.PodPhase), run.PodPhase,
			run.CreatedAt.UTC().Format(time.RFC3339), run.BatchExecutorId)
	}
}
