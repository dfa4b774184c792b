/*
 * Copyright (C) 2025-2026, Advanced Micro Devices, Inc. All rights reserved.
 * See LICENSE for license information.
 */

package utils

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"
)

type DBConfig struct {
	DBName         string
	Username       string
	Password       string
	Host           string
	SSLMode        string
	Port           int
	MaxIdleConns   int
	MaxOpenConns   int
	MaxIdleTime    time.Duration
	MaxLifetime    time.Duration
	ConnectTimeout int
	RequestTimeout time.Duration
	// UseIAMAuth switches to short-lived token authentication. Region is
	// required in that mode.
	UseIAMAuth bool
	Region     string
}

func (c *DBConfig) SourceName() string {
	return fmt.Sprintf("user=%s password=%s dbname=%s host=%s port=%d sslmode=%s connect_timeout=%d",
		c.Username, c.Password, c.DBName, c.Host, c.Port, c.SSLMode, c.ConnectTimeout)
}

// ApplyURL fills the connection fields from a postgres:// URL, leaving the
// pool and auth settings untouched. Percent-encoded credentials are decoded
// by the parser. Fields absent from the URL keep their current values.
func (c *DBConfig) ApplyURL(raw string) error {
	u, err := url.Parse(raw)
	if err != nil {
		return fmt.Errorf("invalid database url: %v", err)
	}
	if u.Scheme != "postgres" && u.Scheme != "postgresql" {
		return fmt.Errorf("unsupported database url scheme %q", u.Scheme)
	}
	if u.Hostname() == "" {
		return fmt.Errorf("the database url carries no host")
	}
	c.Host = u.Hostname()
	if p := u.Port(); p != "" {
		port, err := strconv.Atoi(p)
		if err != nil {
			return fmt.Errorf("invalid database url port %q", p)
		}
		c.Port = port
	}
	if u.User != nil {
		c.Username = u.User.Username()
		if password, ok := u.User.Password(); ok {
			c.Password = password
		}
	}
	if name := strings.TrimPrefix(u.Path, "/"); name != "" {
		c.DBName = name
	}
	if mode := u.Query().Get("sslmode"); mode != "" {
		c.SSLMode = mode
	}
	return nil
}
