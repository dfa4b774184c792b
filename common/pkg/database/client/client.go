/*
 * Copyright (C) 2025-2026, Advanced Micro Devices, Inc. All rights reserved.
 * See LICENSE for license information.
 */

package client

import (
	"fmt"
	"sync"
	"time"

	"github.com/jmoiron/sqlx"
	"gorm.io/gorm"
	utilerrors "k8s.io/apimachinery/pkg/util/errors"
	"k8s.io/klog/v2"

	commonconfig "github.com/epiforge/fredcp/common/pkg/config"
	"github.com/epiforge/fredcp/common/pkg/database/utils"
	commonerrors "github.com/epiforge/fredcp/common/pkg/errors"
)

var (
	once     sync.Once
	instance *Client
)

// Client represents a database client that manages both sqlx and gorm database connections.
// It encapsulates the database configuration and provides methods to interact with the database.
type Client struct {
	db              *sqlx.DB // sqlx database instance
	gorm            *gorm.DB // gorm ORM database instance
	*utils.DBConfig          // Embedded database configuration
}

// NewClient creates a singleton instance of the database Client.
// It initializes the database configuration from common configuration,
// validates the parameters, establishes connections using both sqlx and gorm
// The initialization happens only once even if called multiple times.
//
// Returns:
//   - *Client: Singleton database client instance
func NewClient() *Client {
	once.Do(func() {
		cfg := &utils.DBConfig{
			DBName:       commonconfig.GetDBName(),
			Username:     commonconfig.GetDBUser(),
			Password:     commonconfig.GetDBPassword(),
			Host:         commonconfig.GetDBHost(),
			Port:         commonconfig.GetDBPort(),
			SSLMode:      commonconfig.GetDBSslMode(),
			MaxOpenConns: commonconfig.GetDBMaxOpenConns(),
			MaxIdleConns: commonconfig.GetDBMaxIdleConns(),
			MaxLifetime:  time.Duration(commonconfig.GetDBMaxLifetimeSecond()) * time.Second,
			MaxIdleTime:  time.Duration(commonconfig.GetDBMaxIdleTimeSecond()) * time.Second,
			UseIAMAuth:   commonconfig.UseIAMAuth(),
			Region:       commonconfig.GetAWSRegion(),
		}
		if cfg.Host == "" {
			// DATABASE_URL serves deployments that do not set the
			// individual components.
			if rawURL := commonconfig.GetDatabaseURL(); rawURL != "" {
				if err := cfg.ApplyURL(rawURL); err != nil {
					klog.ErrorS(err, "failed to parse the database url")
					return
				}
			}
		}
		if err := checkParams(cfg); err != nil {
			klog.ErrorS(err, "failed to check db params")
			return
		}
		db, err := utils.Connect(cfg, utils.PgDriver)
		if err != nil {
			klog.Errorf("%s", err.Error())
			return
		}
		err = db.Ping()
		if err != nil {
			klog.ErrorS(err, "failed to ping db")
			return
		}
		var gormDb *gorm.DB
		if cfg.UseIAMAuth {
			// gorm rides on a static DSN, which token auth cannot provide
			klog.Infof("token auth enabled, notification queue disabled")
		} else if gormDb, err = utils.ConnectGorm(cfg); err != nil {
			klog.Warningf("failed to init gorm connection, notification queue disabled: %v", err)
			gormDb = nil
		}
		instance = &Client{db: db, DBConfig: cfg, gorm: gormDb}
		klog.Infof("init db-client successfully! host: %s, iam-auth: %v", cfg.Host, cfg.UseIAMAuth)
	})
	return instance
}

// NewClientWithDB wraps an existing connection, for tests.
func NewClientWithDB(db *sqlx.DB) *Client {
	return &Client{db: db, DBConfig: &utils.DBConfig{}}
}

// Close performs the Close operation.
func (c *Client) Close() {
	err := c.db.Close()
	if err != nil {
		klog.ErrorS(err, "failed to close db connection")
	}
}

// getDB retrieves DB for internal use.
func (c *Client) getDB() (*sqlx.DB, error) {
	if c == nil || c.db == nil {
		return nil, commonerrors.NewInternalError("The client of db has not been initialized")
	}
	return c.db.Unsafe(), nil
}

// getGorm retrieves the gorm handle for internal use.
func (c *Client) getGorm() (*gorm.DB, error) {
	if c == nil || c.gorm == nil {
		return nil, commonerrors.NewInternalError("The gorm client of db has not been initialized")
	}
	return c.gorm, nil
}

// checkParams checks Params and returns the result.
func checkParams(cfg *utils.DBConfig) error {
	var errs []error
	if cfg.DBName == "" {
		errs = append(errs, fmt.Errorf("dbname not found"))
	}
	if cfg.Username == "" {
		errs = append(errs, fmt.Errorf("username not found"))
	}
	if cfg.Password == "" && !cfg.UseIAMAuth {
		errs = append(errs, fmt.Errorf("password not found"))
	}
	if cfg.Host == "" {
		errs = append(errs, fmt.Errorf("host not found"))
	}
	if cfg.SSLMode == "" {
		errs = append(errs, fmt.Errorf("ssl_mode not found"))
	}
	if cfg.Port == 0 {
		errs = append(errs, fmt.Errorf("port not found"))
	}
	return utilerrors.NewAggregate(errs)
}
