/*
 * Copyright (C) 2025-2026, Advanced Micro Devices, Inc. All rights reserved.
 * See LICENSE for license information.
 */

package cmd

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	commonjob "github.com/epiforge/fredcp/common/pkg/job"
	"github.com/epiforge/fredcp/common/pkg/s3"
	"github.com/epiforge/fredcp/utils/pkg/stringutil"
	"github.com/epiforge/fredcp/utils/pkg/timeutil"
)

var (
	includeContent bool
	ageDays        int
	dryRun         bool
	outputDir      string
)

// uploadsCmd groups the artifact commands under jobs.
var uploadsCmd = &cobra.Command{
	Use:   "uploads",
	Short: "Operate on a job's uploaded artifacts",
}

var uploadsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List a job's artifacts",
	RunE:  runUploadsList,
}

var uploadsArchiveCmd = &cobra.Command{
	Use:   "archive",
	Short: "Move a job's artifacts to cold storage",
	RunE:  runUploadsArchive,
}

var uploadsDownloadCmd = &cobra.Command{
	Use:   "download",
	Short: "Download a job's artifacts into a directory",
	RunE:  runUploadsDownload,
}

func init() {
	for _, c := range []*cobra.Command{uploadsListCmd, uploadsArchiveCmd, uploadsDownloadCmd} {
		c.Flags().Int64Var(&jobId, "job-id", 0, "job id (required)")
		_ = c.MarkFlagRequired("job-id")
	}
	uploadsListCmd.Flags().BoolVar(&includeContent, "include-content", false,
		"fetch and classify the object behind each artifact")
	uploadsArchiveCmd.Flags().IntVar(&ageDays, "age-days", 0,
		"only archive objects older than this many days (0 archives everything)")
	uploadsArchiveCmd.Flags().BoolVar(&dryRun, "dry-run", false,
		"report which objects would be archived without touching them")
	uploadsDownloadCmd.Flags().StringVar(&outputDir, "output-dir", ".",
		"directory the artifacts are written into")
	uploadsCmd.AddCommand(uploadsListCmd)
	uploadsCmd.AddCommand(uploadsArchiveCmd)
	uploadsCmd.AddCommand(uploadsDownloadCmd)
	jobsCmd.AddCommand(uploadsCmd)
}

func runUploadsList(cmd *cobra.Command, _ []string) error {
	ctx, cancel := context.WithTimeout(cmd.Context(), 2*time.Minute)
	defer cancel()
	ctrl, err := newController(ctx)
	if err != nil {
		return err
	}
	result := ctrl.GetJobUploads(ctx, jobId, includeContent)
	if !result.Ok() {
		return errors.New(result.Err())
	}
	uploads := result.Value()
	if len(uploads) == 0 {
		fmt.Println("no uploads found")
		return nil
	}
	fmt.Printf("%-8s %-10s %-8s %s\n", "CONTEXT", "TYPE", "RUN", "URL")
	for _, upload := range uploads {
		url := ""
		if upload.Location != nil {
			url = upload.Location.SanitizedUrl()
		}
		fmt.Printf("%-8s %-10s %-8d %s\n", upload.Context, upload.Type, upload.RunId, url)
		if content, ok := upload.Content.(*s3.UploadContent); ok && content != nil {
			fmt.Printf("         %s, %d bytes\n", content.Kind, content.Size)
			if content.Text != "" {
				fmt.Printf("         %s\n", stringutil.Truncate(content.Text, 200))
			}
		}
	}
	return nil
}

func runUploadsArchive(cmd *cobra.Command, _ []string) error {
	ctx, cancel := context.WithTimeout(cmd.Context(), 10*time.Minute)
	defer cancel()
	ctrl, err := newController(ctx)
	if err != nil {
		return err
	}
	uploadsResult := ctrl.GetJobUploads(ctx, jobId, false)
	if !uploadsResult.Ok() {
		return errors.New(uploadsResult.Err())
	}
	locations := make([]*commonjob.UploadLocation, 0, len(uploadsResult.Value()))
	for _, upload := range uploadsResult.Value() {
		locations = append(locations, upload.Location)
	}

	var threshold *time.Time
	if ageDays > 0 {
		t := timeutil.AgeThreshold(ageDays)
		threshold = &t
	}
	result := ctrl.ArchiveUploads(ctx, locations, threshold, dryRun)
	if !result.Ok() {
		return errors.New(result.Err())
	}
	verb := "archived"
	if dryRun {
		verb = "would archive"
	}
	failed := 0
	for _, location := range result.Value() {
		if len(location.Errors) > 0 {
			fmt.Printf("failed   %s: %v\n", location.SanitizedUrl(), location.Errors)
			failed++
			continue
		}
		fmt.Printf("%s %s\n", verb, location.SanitizedUrl())
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d objects failed to archive", failed, len(result.Value()))
	}
	return nil
}

func runUploadsDownload(cmd *cobra.Command, _ []string) error {
	ctx, cancel := context.WithTimeout(cmd.Context(), 10*time.Minute)
	defer cancel()
	ctrl, err := newController(ctx)
	if err != nil {
		return err
	}
	result := ctrl.DownloadJobUploads(ctx, jobId, outputDir)
	if !result.Ok() {
		return errors.New(result.Err())
	}
	for _, path := range result.Value() {
		fmt.Println(path)
	}
	fmt.Printf("downloaded %d artifacts into %s\n", len(result.Value()), outputDir)
	return nil
}
