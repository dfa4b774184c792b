/*
 * Copyright (C) 2025-2026, Advanced Micro Devices, Inc. All rights reserved.
 * See LICENSE for license information.
 */

package s3

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/s3/manager"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"k8s.io/klog/v2"

	commonconfig "github.com/epiforge/fredcp/common/pkg/config"
	commonerrors "github.com/epiforge/fredcp/common/pkg/errors"
	commonjob "github.com/epiforge/fredcp/common/pkg/job"
	"github.com/epiforge/fredcp/common/pkg/sanitize"
)

const (
	DefaultTimeout = 180

	resultsUploadTimeout = 600

	partSize           = 100 * 1024 * 1024  // 100MB per part
	largeFileThreshold = 1024 * 1024 * 1024 // Files larger than 1GB use concurrent download
)

// Client serves both gateway roles against one bucket: presigned upload and
// download brokering for clients, and server-side reads and writes for the
// control plane itself.
type Client struct {
	*Config
	s3Client  *s3.Client
	presigner *s3.PresignClient
}

// NewGateway returns the live client, or the dummy when running locally.
func NewGateway(ctx context.Context) (Interface, error) {
	if commonconfig.IsLocalEnvironment() {
		klog.Infof("local environment, object store calls are stubbed")
		return NewDummyGateway(), nil
	}
	return NewClient(ctx)
}

// NewClient creates a Client from system-wide settings.
func NewClient(ctx context.Context) (Interface, error) {
	conf, err := NewConfig(ctx)
	if err != nil {
		return nil, err
	}
	return NewClientFromConfig(conf), nil
}

// NewClientFromConfig creates a Client from an explicit configuration.
func NewClientFromConfig(conf *Config) Interface {
	s3Client := s3.NewFromConfig(conf.Config, func(o *s3.Options) {
		// Custom endpoints (minio and friends) resolve buckets by path, AWS
		// proper by virtual host.
		o.UsePathStyle = conf.Endpoint != ""
	})
	return &Client{
		Config:    conf,
		s3Client:  s3Client,
		presigner: s3.NewPresignClient(s3Client),
	}
}

// GetUploadLocation issues a presigned PUT for the artifact addressed by
// upload. The signature covers no server-side-encryption headers, encryption
// is the bucket default and clients PUT with no custom headers at all.
func (c *Client) GetUploadLocation(ctx context.Context, upload *commonjob.JobUpload,
	prefix commonjob.KeyPrefix) (*commonjob.UploadLocation, error) {
	key, err := upload.Key(prefix)
	if err != nil {
		return nil, err
	}

	resp, err := c.presigner.PresignPutObject(ctx, &s3.PutObjectInput{
		Bucket: c.Bucket,
		Key:    aws.String(key),
	}, func(o *s3.PresignOptions) {
		o.Expires = time.Duration(commonconfig.GetUploadURLExpireSecond()) * time.Second
	})
	if err != nil {
		return nil, storageError("generate upload url for %s: %v", key, err)
	}
	return commonjob.NewUploadLocation(resp.URL), nil
}

// ReadContent fetches the object behind location and classifies it.
func (c *Client) ReadContent(ctx context.Context, location *commonjob.UploadLocation) (*UploadContent, error) {
	key, err := ExtractKeyFromURL(location.Url)
	if err != nil {
		return nil, err
	}
	data, err := c.getObjectBytes(ctx, key)
	if err != nil {
		return nil, err
	}
	return DetectContent(key, data), nil
}

func (c *Client) getObjectBytes(ctx context.Context, key string) ([]byte, error) {
	timeoutCtx, cancel := WithOptionalTimeout(ctx, DefaultTimeout)
	defer cancel()

	resp, err := c.s3Client.GetObject(timeoutCtx, &s3.GetObjectInput{
		Bucket: c.Bucket,
		Key:    aws.String(key),
	})
	if err != nil {
		return nil, storageError("get object %s: %v", key, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, storageError("read object %s: %v", key, err)
	}
	return data, nil
}

// FilterByAge keeps the locations whose objects were last modified before
// threshold. Gone or unreadable objects are dropped with a warning, the
// archive sweep must not fail because a client deleted an upload.
func (c *Client) FilterByAge(ctx context.Context, locations []*commonjob.UploadLocation,
	threshold time.Time) []*commonjob.UploadLocation {
	kept := make([]*commonjob.UploadLocation, 0, len(locations))
	for _, location := range locations {
		key, err := ExtractKeyFromURL(location.Url)
		if err != nil {
			klog.Warningf("dropping upload with malformed url %s: %v", location.SanitizedUrl(), err)
			continue
		}

		timeoutCtx, cancel := WithOptionalTimeout(ctx, DefaultTimeout)
		head, err := c.s3Client.HeadObject(timeoutCtx, &s3.HeadObjectInput{
			Bucket: c.Bucket,
			Key:    aws.String(key),
		})
		cancel()
		if err != nil {
			klog.Warningf("dropping unreadable object %s: %s", key, sanitize.Sanitize(err.Error()))
			continue
		}
		if head.LastModified != nil && head.LastModified.Before(threshold) {
			kept = append(kept, location)
		}
	}
	return kept
}

// ArchiveUploads copies each object in place with a cold storage class.
// Failures are appended to the location's error list and the location is
// still returned. Empty input returns without touching the store.
func (c *Client) ArchiveUploads(ctx context.Context, locations []*commonjob.UploadLocation,
	ageThreshold *time.Time) []*commonjob.UploadLocation {
	if len(locations) == 0 {
		return locations
	}
	if ageThreshold != nil {
		locations = c.FilterByAge(ctx, locations, *ageThreshold)
	}

	archived := make([]*commonjob.UploadLocation, 0, len(locations))
	for _, location := range locations {
		if err := c.archiveObject(ctx, location); err != nil {
			klog.Warningf("archive failed for %s: %s",
				location.SanitizedUrl(), sanitize.Sanitize(err.Error()))
			location.AppendError(sanitize.Sanitize(err.Error()))
		}
		archived = append(archived, location)
	}
	return archived
}

func (c *Client) archiveObject(ctx context.Context, location *commonjob.UploadLocation) error {
	key, err := ExtractKeyFromURL(location.Url)
	if err != nil {
		return err
	}
	timeoutCtx, cancel := WithOptionalTimeout(ctx, DefaultTimeout)
	defer cancel()

	_, err = c.s3Client.CopyObject(timeoutCtx, &s3.CopyObjectInput{
		Bucket:            c.Bucket,
		Key:               aws.String(key),
		CopySource:        aws.String(url.PathEscape(*c.Bucket + "/" + key)),
		StorageClass:      types.StorageClassGlacier,
		MetadataDirective: types.MetadataDirectiveCopy,
	})
	return err
}

// DownloadUpload materializes the object behind location into localDir,
// named after the last key segment.
func (c *Client) DownloadUpload(ctx context.Context, location *commonjob.UploadLocation,
	localDir string) (string, error) {
	key, err := ExtractKeyFromURL(location.Url)
	if err != nil {
		return "", err
	}
	localPath := filepath.Join(localDir, filepath.Base(key))
	if err := c.downloadToPath(ctx, key, localPath); err != nil {
		return "", storageError("download %s: %v", key, err)
	}
	return localPath, nil
}

// downloadToPath picks a simple GET for small objects and a concurrent
// multipart download above largeFileThreshold.
func (c *Client) downloadToPath(ctx context.Context, key, localPath string) error {
	head, err := c.s3Client.HeadObject(ctx, &s3.HeadObjectInput{
		Bucket: c.Bucket,
		Key:    aws.String(key),
	})
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(localPath), 0755); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}

	if head.ContentLength == nil || *head.ContentLength < largeFileThreshold {
		return c.downloadSmallFile(ctx, key, localPath)
	}
	return c.downloadLargeFile(ctx, key, localPath)
}

func (c *Client) downloadSmallFile(ctx context.Context, key, localPath string) error {
	resp, err := c.s3Client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: c.Bucket,
		Key:    aws.String(key),
	})
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	file, err := os.Create(localPath)
	if err != nil {
		return err
	}
	defer file.Close()

	if _, err = io.Copy(file, resp.Body); err != nil {
		os.Remove(localPath)
		return err
	}
	return nil
}

func (c *Client) downloadLargeFile(ctx context.Context, key, localPath string) error {
	downloader := manager.NewDownloader(c.s3Client, func(d *manager.Downloader) {
		d.PartSize = partSize
		d.Concurrency = 5
	})

	file, err := os.Create(localPath)
	if err != nil {
		return err
	}
	defer file.Close()

	_, err = downloader.Download(ctx, file, &s3.GetObjectInput{
		Bucket: c.Bucket,
		Key:    aws.String(key),
	})
	if err != nil {
		os.Remove(localPath)
		return err
	}
	return nil
}

// UploadResults writes the packaged results archive of a run server-side and
// returns its permanent, unsigned URL.
func (c *Client) UploadResults(ctx context.Context, jobId, runId int64, zipBytes []byte,
	prefix commonjob.KeyPrefix) (*commonjob.UploadLocation, error) {
	if len(zipBytes) == 0 {
		return nil, commonerrors.NewBadRequest("results archive is empty")
	}
	key := prefix.RunResultsKey(runId)

	timeoutCtx, cancel := WithOptionalTimeout(ctx, resultsUploadTimeout)
	defer cancel()

	if _, err := c.s3Client.PutObject(timeoutCtx, &s3.PutObjectInput{
		Bucket:      c.Bucket,
		Key:         aws.String(key),
		Body:        bytes.NewReader(zipBytes),
		ContentType: aws.String("application/zip"),
	}); err != nil {
		return nil, storageError("upload results for job %d run %d: %v", jobId, runId, err)
	}
	klog.Infof("uploaded results for job %d run %d, key %s, %d bytes", jobId, runId, key, len(zipBytes))
	return commonjob.NewUploadLocation(c.objectURL(key)), nil
}

// ResultsURL returns the permanent URL a run's results archive lives at.
func (c *Client) ResultsURL(prefix commonjob.KeyPrefix, runId int64) string {
	return c.objectURL(prefix.RunResultsKey(runId))
}

// GetDownloadURL issues a presigned GET for an existing results object.
func (c *Client) GetDownloadURL(ctx context.Context, resultsUrl string, expireSecond int) (*commonjob.UploadLocation, error) {
	key, err := ExtractKeyFromURL(resultsUrl)
	if err != nil {
		return nil, err
	}
	if expireSecond <= 0 {
		expireSecond = commonconfig.GetDownloadURLExpireSecond()
	}

	resp, err := c.presigner.PresignGetObject(ctx, &s3.GetObjectInput{
		Bucket: c.Bucket,
		Key:    aws.String(key),
	}, func(o *s3.PresignOptions) {
		o.Expires = time.Duration(expireSecond) * time.Second
	})
	if err != nil {
		return nil, storageError("generate download url for %s: %v", key, err)
	}
	return commonjob.NewUploadLocation(resp.URL), nil
}

// objectURL returns the permanent, unsigned address of key.
func (c *Client) objectURL(key string) string {
	if c.Endpoint != "" {
		return fmt.Sprintf("%s/%s/%s", strings.TrimSuffix(c.Endpoint, "/"), *c.Bucket, key)
	}
	if c.Region == "" || c.Region == "us-east-1" {
		return fmt.Sprintf("https://%s.s3.amazonaws.com/%s", *c.Bucket, key)
	}
	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", *c.Bucket, c.Region, key)
}

// storageError builds a store failure with credential material scrubbed.
func storageError(format string, args ...interface{}) error {
	return sanitize.Mark(commonerrors.NewStorageError(sanitize.Sanitize(fmt.Sprintf(format, args...))))
}

// WithOptionalTimeout add optional timeout to context.
func WithOptionalTimeout(parent context.Context, timeout int64) (context.Context, context.CancelFunc) {
	if timeout <= 0 {
		return parent, func() {}
	}
	return context.WithTimeout(parent, time.Duration(timeout)*time.Second)
}
