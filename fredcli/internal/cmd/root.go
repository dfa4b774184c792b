/*
 * Copyright (C) 2025-2026, Advanced Micro Devices, Inc. All rights reserved.
 * See LICENSE for license information.
 */

package cmd

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/epiforge/fredcp/apiserver/pkg/controller"
	"github.com/epiforge/fredcp/apiserver/pkg/service"
	"github.com/epiforge/fredcp/common/pkg/batch"
	commonconfig "github.com/epiforge/fredcp/common/pkg/config"
	dbclient "github.com/epiforge/fredcp/common/pkg/database/client"
	"github.com/epiforge/fredcp/common/pkg/s3"
)

var (
	cfgFile string
	verbose bool
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "fredcli",
	Short: "fredcli - administrative CLI for the simulation control plane",
	Long: `fredcli operates directly on the control plane's database and object
store, bypassing the HTTP API. It serves the operational tasks that the API
does not expose: inspecting jobs, listing and fetching their uploaded
artifacts, and moving old artifacts to cold storage.

Example:
  fredcli jobs list
  fredcli jobs info --job-id 17
  fredcli jobs uploads list --job-id 17 --include-content
  fredcli jobs uploads archive --job-id 17 --age-days 30 --dry-run
  fredcli version`,
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "config file (environment is used when omitted)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")
}

// loadConfig binds the environment and reads the optional config file.
func loadConfig() error {
	if cfgFile == "" {
		return commonconfig.InitConfig("")
	}
	fullPath, err := filepath.Abs(cfgFile)
	if err != nil {
		return err
	}
	return commonconfig.InitConfig(fullPath)
}

// newController wires the in-process controller the subcommands run against.
func newController(ctx context.Context) (*controller.Controller, error) {
	if err := loadConfig(); err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	db := dbclient.NewClient()
	if db == nil {
		return nil, fmt.Errorf("failed to create the database client")
	}
	store, err := s3.NewGateway(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create the object store gateway: %w", err)
	}
	executor, err := batch.NewGateway(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create the batch gateway: %w", err)
	}
	return controller.New(service.NewService(db, store), executor), nil
}
