/*
 * Copyright (C) 2025-2026, Advanced Micro Devices, Inc. All rights reserved.
 * See LICENSE for license information.
 */

package config

const (
	// server
	serverPrefix = "server."
	serverPort   = serverPrefix + "port"
	environment  = serverPrefix + "environment"
	logFile      = serverPrefix + "log_file"
	logFileSize  = serverPrefix + "log_file_max_size"
	serverURL    = serverPrefix + "url"

	// db
	dbPrefix            = "db."
	dbURL               = dbPrefix + "url"
	dbHost              = dbPrefix + "host"
	dbPort              = dbPrefix + "port"
	dbName              = dbPrefix + "name"
	dbUser              = dbPrefix + "user"
	dbPassword          = dbPrefix + "password"
	dbUseIAMAuth        = dbPrefix + "use_iam_auth"
	dbSslMode           = dbPrefix + "ssl_mode"
	dbSecretPath        = dbPrefix + "secret_path"
	dbMaxOpenConns      = dbPrefix + "max_open_conns"
	dbMaxIdleConns      = dbPrefix + "max_idle_conns"
	dbMaxLifetime       = dbPrefix + "max_life_time_second"
	dbMaxIdleTimeSecond = dbPrefix + "max_idle_time_second"

	// aws
	awsPrefix = "aws."
	awsRegion = awsPrefix + "region"

	// s3
	s3Prefix         = "s3."
	s3Bucket         = s3Prefix + "upload_bucket"
	s3Endpoint       = s3Prefix + "endpoint"
	s3AccessKey      = s3Prefix + "access_key"
	s3SecretKey      = s3Prefix + "secret_key"
	s3SecretPath     = s3Prefix + "secret_path"
	s3UploadExpire   = s3Prefix + "upload_url_expiration_seconds"
	s3DownloadExpire = s3Prefix + "download_url_expiration_seconds"

	// batch
	batchPrefix        = "batch."
	batchJobQueue      = batchPrefix + "job_queue"
	batchJobDefinition = batchPrefix + "job_definition"

	// archive
	archivePrefix   = "archive."
	archiveSchedule = archivePrefix + "schedule"
	archiveAgeDays  = archivePrefix + "age_days"

	// notification
	notificationPrefix = "notification."
	notificationConfig = notificationPrefix + "config"

	// tracing
	tracingPrefix = "tracing."
	tracingEnable = tracingPrefix + "enable"

	// runner
	runnerPrefix          = "runner."
	fredHome              = runnerPrefix + "fred_home"
	simulationTimeoutSecs = runnerPrefix + "simulation_timeout_seconds"
	runnerWorkspace       = runnerPrefix + "workspace"
)
