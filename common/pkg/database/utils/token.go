/*
 * Copyright (C) 2025-2026, Advanced Micro Devices, Inc. All rights reserved.
 * See LICENSE for license information.
 */

package utils

import (
	"context"
	"database/sql/driver"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	rdsauth "github.com/aws/aws-sdk-go-v2/feature/rds/auth"
	"github.com/lib/pq"
	"k8s.io/klog/v2"
)

// tokenLifetime is how long a minted database auth token stays valid.
const tokenLifetime = 15 * time.Minute

// tokenConnector is a database/sql connector that mints a fresh IAM auth
// token for every new physical connection. Tokens expire, so they can never
// be baked into a static DSN.
type tokenConnector struct {
	cfg   *DBConfig
	creds aws.CredentialsProvider
}

// NewTokenConnector builds a connector against cfg using ambient AWS
// credentials. Token auth requires SSL, so a disabled SSL mode is upgraded.
func NewTokenConnector(cfg *DBConfig) (driver.Connector, error) {
	if cfg.Region == "" {
		return nil, fmt.Errorf("region is required for token auth")
	}
	awsCfg, err := awsconfig.LoadDefaultConfig(context.Background(), awsconfig.WithRegion(cfg.Region))
	if err != nil {
		return nil, fmt.Errorf("failed to load aws config: %v", err)
	}
	if cfg.SSLMode == "" || cfg.SSLMode == "disable" {
		cfg.SSLMode = "require"
	}
	return &tokenConnector{cfg: cfg, creds: awsCfg.Credentials}, nil
}

// Connect mints a token and dials one physical connection with it.
func (c *tokenConnector) Connect(ctx context.Context) (driver.Conn, error) {
	endpoint := fmt.Sprintf("%s:%d", c.cfg.Host, c.cfg.Port)
	token, err := rdsauth.BuildAuthToken(ctx, endpoint, c.cfg.Region, c.cfg.Username, c.creds)
	if err != nil {
		klog.ErrorS(err, "failed to build db auth token", "endpoint", endpoint)
		return nil, err
	}
	tokenCfg := *c.cfg
	tokenCfg.Password = token
	connector, err := pq.NewConnector(tokenCfg.SourceName())
	if err != nil {
		return nil, err
	}
	return connector.Connect(ctx)
}

// Driver returns the underlying postgres driver.
func (c *tokenConnector) Driver() driver.Driver {
	return &pq.Driver{}
}
