/*
 * Copyright (C) 2025-2026, Advanced Micro Devices, Inc. All rights reserved.
 * See LICENSE for license information.
 */

package config

import (
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// envBindings maps configuration keys to the environment variables that
// deployments set. A config file may provide the same keys; environment
// values win.
var envBindings = map[string]string{
	serverPort:            "SERVER_PORT",
	environment:           "ENVIRONMENT",
	logFile:               "LOG_FILE",
	logFileSize:           "LOG_FILE_MAX_SIZE",
	serverURL:             "CONTROL_PLANE_URL",
	dbURL:                 "DATABASE_URL",
	dbHost:                "DATABASE_HOST",
	dbPort:                "DATABASE_PORT",
	dbName:                "DATABASE_NAME",
	dbUser:                "DATABASE_USER",
	dbPassword:            "DATABASE_PASSWORD",
	dbUseIAMAuth:          "USE_IAM_AUTH",
	dbSslMode:             "DATABASE_SSL_MODE",
	dbMaxOpenConns:        "DATABASE_MAX_OPEN_CONNS",
	dbMaxIdleConns:        "DATABASE_MAX_IDLE_CONNS",
	dbMaxLifetime:         "DATABASE_CONN_MAX_LIFETIME_SECONDS",
	awsRegion:             "AWS_REGION",
	s3Bucket:              "S3_UPLOAD_BUCKET",
	s3Endpoint:            "S3_ENDPOINT",
	s3AccessKey:           "S3_ACCESS_KEY",
	s3SecretKey:           "S3_SECRET_KEY",
	s3UploadExpire:        "UPLOAD_URL_EXPIRATION_SECONDS",
	s3DownloadExpire:      "DOWNLOAD_URL_EXPIRATION_SECONDS",
	batchJobQueue:         "BATCH_JOB_QUEUE",
	batchJobDefinition:    "BATCH_JOB_DEFINITION",
	archiveSchedule:       "ARCHIVE_SCHEDULE",
	archiveAgeDays:        "ARCHIVE_AGE_DAYS",
	notificationConfig:    "NOTIFICATION_CONFIG",
	tracingEnable:         "OTEL_ENABLE",
	fredHome:              "FRED_HOME",
	simulationTimeoutSecs: "SIMULATION_TIMEOUT_SECONDS",
	runnerWorkspace:       "RUNNER_WORKSPACE",
}

// InitConfig loads the optional YAML config file and binds the environment
// variables. Safe to call with an empty path.
func InitConfig(path string) error {
	for key, env := range envBindings {
		if err := viper.BindEnv(key, env); err != nil {
			return err
		}
	}
	if path == "" {
		return nil
	}
	viper.SetConfigFile(path)
	viper.SetConfigType("yaml")
	return viper.ReadInConfig()
}

// SetValue sets a configuration value for the specified key path.
func SetValue(key string, value interface{}) {
	viper.Set(key, value)
}

func getString(key, defaultValue string) string {
	if v := viper.GetString(key); v != "" {
		return v
	}
	return defaultValue
}

func getBool(key string, defaultValue bool) bool {
	if !viper.IsSet(key) {
		return defaultValue
	}
	return viper.GetBool(key)
}

func getInt(key string, defaultValue int) int {
	if !viper.IsSet(key) {
		return defaultValue
	}
	if v := viper.GetInt(key); v != 0 {
		return v
	}
	return defaultValue
}

func getFromFile(configPath, item string) string {
	path := getString(configPath, "")
	data, err := os.ReadFile(filepath.Join(path, item))
	if err != nil {
		return ""
	}
	key := string(data)
	return strings.TrimRight(key, "\r\n")
}

// GetServerPort returns the API server port.
func GetServerPort() int {
	return getInt(serverPort, 8000)
}

// GetEnvironment returns the deployment environment name.
func GetEnvironment() string {
	return getString(environment, "production")
}

// IsLocalEnvironment reports whether the process runs against local fakes
// rather than real cloud services.
func IsLocalEnvironment() bool {
	return GetEnvironment() == "local"
}

// GetLogFile returns the log file path, empty for stderr-only logging.
func GetLogFile() string {
	return getString(logFile, "")
}

// GetLogFileMaxSize returns the log rotation size in MB.
func GetLogFileMaxSize() int {
	return getInt(logFileSize, 0)
}

// GetControlPlaneURL returns the externally reachable API base URL.
func GetControlPlaneURL() string {
	return getString(serverURL, "")
}

// GetDatabaseURL returns the connection URL, assembling it from individual
// components when DATABASE_URL is not set. Credentials are URL-encoded so
// passwords with reserved characters survive the round trip.
func GetDatabaseURL() string {
	if u := getString(dbURL, ""); u != "" {
		return u
	}
	host := GetDBHost()
	if host == "" {
		return ""
	}
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=%s",
		url.QueryEscape(GetDBUser()),
		url.QueryEscape(GetDBPassword()),
		host, GetDBPort(), GetDBName(), GetDBSslMode())
}

// GetDBHost returns the database host address.
func GetDBHost() string {
	if host := getString(dbHost, ""); host != "" {
		return host
	}
	return getFromFile(dbSecretPath, "host")
}

// GetDBPort returns the database port number.
func GetDBPort() int {
	return getInt(dbPort, 5432)
}

// GetDBName returns the database name.
func GetDBName() string {
	if name := getString(dbName, ""); name != "" {
		return name
	}
	return getFromFile(dbSecretPath, "dbname")
}

// GetDBUser returns the database username.
func GetDBUser() string {
	if user := getString(dbUser, ""); user != "" {
		return user
	}
	return getFromFile(dbSecretPath, "user")
}

// GetDBPassword returns the database password.
func GetDBPassword() string {
	if passwd := getString(dbPassword, ""); passwd != "" {
		return passwd
	}
	return getFromFile(dbSecretPath, "password")
}

// UseIAMAuth returns whether database auth uses short-lived IAM tokens
// instead of a static password.
func UseIAMAuth() bool {
	return getBool(dbUseIAMAuth, false)
}

// GetDBSslMode returns the database SSL mode. IAM token auth requires SSL.
func GetDBSslMode() string {
	if UseIAMAuth() {
		return "require"
	}
	return getString(dbSslMode, "require")
}

// GetDBMaxOpenConns returns the maximum number of open database connections.
func GetDBMaxOpenConns() int {
	return getInt(dbMaxOpenConns, 100)
}

// GetDBMaxIdleConns returns the maximum number of idle database connections.
func GetDBMaxIdleConns() int {
	return getInt(dbMaxIdleConns, 10)
}

// GetDBMaxLifetimeSecond returns the maximum lifetime of database
// connections in seconds. With IAM auth the pool recycles connections well
// inside the 15 minute token validity.
func GetDBMaxLifetimeSecond() int {
	if UseIAMAuth() {
		return getInt(dbMaxLifetime, 600)
	}
	return getInt(dbMaxLifetime, 1800)
}

// GetDBMaxIdleTimeSecond returns the maximum idle time of database connections in seconds.
func GetDBMaxIdleTimeSecond() int {
	return getInt(dbMaxIdleTimeSecond, 60)
}

// GetS3Bucket returns the bucket that holds job artifacts.
func GetS3Bucket() string {
	if bucket := getString(s3Bucket, ""); bucket != "" {
		return bucket
	}
	return getFromFile(s3SecretPath, "bucket")
}

// GetAWSRegion returns the region shared by the S3, Batch and RDS clients.
func GetAWSRegion() string {
	return getString(awsRegion, "us-east-1")
}

// GetS3Endpoint returns a custom S3 endpoint for local stacks, empty for AWS.
func GetS3Endpoint() string {
	return getString(s3Endpoint, "")
}

// GetS3AccessKey returns the static S3 access key, empty when ambient
// credentials are used.
func GetS3AccessKey() string {
	if key := getString(s3AccessKey, ""); key != "" {
		return key
	}
	return getFromFile(s3SecretPath, "access_key")
}

// GetS3SecretKey returns the static S3 secret key.
func GetS3SecretKey() string {
	if key := getString(s3SecretKey, ""); key != "" {
		return key
	}
	return getFromFile(s3SecretPath, "secret_key")
}

// GetUploadURLExpireSecond returns the presigned PUT validity in seconds.
func GetUploadURLExpireSecond() int {
	return getInt(s3UploadExpire, 3600)
}

// GetDownloadURLExpireSecond returns the presigned GET validity in seconds.
func GetDownloadURLExpireSecond() int {
	return getInt(s3DownloadExpire, 86400)
}

// GetBatchJobQueue returns the executor queue runs are submitted to.
func GetBatchJobQueue() string {
	return getString(batchJobQueue, "fred-simulation-queue")
}

// GetBatchJobDefinition returns the executor job definition for runs.
func GetBatchJobDefinition() string {
	return getString(batchJobDefinition, "fred-simulation-job")
}

// GetArchiveSchedule returns the cron expression of the scheduled archiver,
// empty when disabled.
func GetArchiveSchedule() string {
	return getString(archiveSchedule, "")
}

// GetArchiveAgeDays returns the minimum object age for cold-storage transitions.
func GetArchiveAgeDays() int {
	return getInt(archiveAgeDays, 30)
}

// GetNotificationConfig returns the path of the notification channel config,
// empty when notifications are disabled.
func GetNotificationConfig() string {
	return getString(notificationConfig, "")
}

// IsTracingEnable returns whether OpenTelemetry tracing is enabled.
func IsTracingEnable() bool {
	return getBool(tracingEnable, false)
}

// GetFredHome returns the simulator installation directory.
func GetFredHome() string {
	return getString(fredHome, "/usr/local/fred")
}

// GetSimulationTimeoutSecond returns the per-run simulator timeout.
func GetSimulationTimeoutSecond() int {
	return getInt(simulationTimeoutSecs, 3600)
}

// GetRunnerWorkspace returns the scratch directory for runner downloads.
func GetRunnerWorkspace() string {
	return getString(runnerWorkspace, "/tmp/fred-runner")
}
