/*
 * Copyright (C) 2025-2026, Advanced Micro Devices, Inc. All rights reserved.
 * See LICENSE for license information.
 */

package s3

import (
	"context"
	"crypto/tls"
	"fmt"
	"net/http"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"k8s.io/utils/pointer"

	commonconfig "github.com/epiforge/fredcp/common/pkg/config"
)

type Config struct {
	aws.Config
	Bucket   *string
	Endpoint string
}

// NewConfig creates and returns a new S3 configuration object using system-wide settings.
// With an access key pair configured the client signs with it, otherwise the
// ambient AWS credential chain is used.
func NewConfig(ctx context.Context) (*Config, error) {
	if commonconfig.GetS3Bucket() == "" {
		return nil, fmt.Errorf("the s3 bucket is empty")
	}
	return newConfig(ctx,
		commonconfig.GetS3AccessKey(), commonconfig.GetS3SecretKey(),
		commonconfig.GetS3Endpoint(), commonconfig.GetAWSRegion(),
		commonconfig.GetS3Bucket())
}

func newConfig(ctx context.Context, ak, sk, endpoint, region, bucket string) (*Config, error) {
	opts := []func(*config.LoadOptions) error{
		config.WithRegion(region),
	}

	if ak != "" || sk != "" {
		if ak == "" {
			return nil, fmt.Errorf("the s3 AccessKey is empty")
		}
		if sk == "" {
			return nil, fmt.Errorf("the s3 SecretKey is empty")
		}
		opts = append(opts, config.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(ak, sk, "")))
	}

	if endpoint != "" {
		// Self-hosted stores commonly run with self-signed certificates.
		httpClient := &http.Client{
			Transport: &http.Transport{
				TLSClientConfig: &tls.Config{
					InsecureSkipVerify: true,
				},
			},
		}
		opts = append(opts,
			config.WithHTTPClient(httpClient),
			config.WithEndpointResolverWithOptions(
				aws.EndpointResolverWithOptionsFunc(func(service, region string, options ...interface{}) (aws.Endpoint, error) {
					return aws.Endpoint{
						URL: endpoint,
					}, nil
				}),
			),
		)
	}

	cfg, err := config.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, err
	}
	return &Config{
		Config:   cfg,
		Bucket:   pointer.String(bucket),
		Endpoint: endpoint,
	}, nil
}
