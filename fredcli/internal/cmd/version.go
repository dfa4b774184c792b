/*
 * Copyright (C) 2025-2026, Advanced Micro Devices, Inc. All rights reserved.
 * See LICENSE for license information.
 */

package cmd

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	commonconfig "github.com/epiforge/fredcp/common/pkg/config"
	"github.com/epiforge/fredcp/utils/pkg/backoff"
	"github.com/epiforge/fredcp/utils/pkg/httpclient"
)

// Version is stamped at build time with -ldflags.
var Version = "dev"

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the CLI version and probe the control plane",
	RunE:  runVersion,
}

func init() {
	rootCmd.AddCommand(versionCmd)
}

func runVersion(_ *cobra.Command, _ []string) error {
	fmt.Printf("fredcli %s\n", Version)
	if err := loadConfig(); err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	serverURL := commonconfig.GetControlPlaneURL()
	if serverURL == "" {
		fmt.Println("control plane: not configured")
		return nil
	}
	url := strings.TrimRight(serverURL, "/") + "/health"
	client := httpclient.NewHttpClient()
	err := backoff.Retry(func() error {
		result, err := client.Get(url)
		if err != nil {
			return err
		}
		if !result.IsSuccess() {
			return fmt.Errorf("health probe returned %s", result.String())
		}
		return nil
	}, 15*time.Second, 5*time.Second)
	if err != nil {
		fmt.Printf("control plane: unreachable at %s (%v)\n", serverURL, err)
		return err
	}
	fmt.Printf("control plane: healthy at %s\n", serverURL)
	return nil
}
