/*
 * Copyright (C) 2025-2026, Advanced Micro Devices, Inc. All rights reserved.
 * See LICENSE for license information.
 */

package channel

import (
	"context"
	"encoding/json"
	"os"
	"strings"

	"github.com/epiforge/fredcp/common/pkg/notification/model"
)

type Config struct {
	Email *EmailConfig `json:"email,omitempty" yaml:"email"`
	// Recipients receive job lifecycle mail when a message does not name
	// its own recipients.
	Recipients []string `json:"recipients,omitempty" yaml:"recipients"`
}

type EmailConfig struct {
	SMTPHost string `json:"smtp_host" yaml:"smtp_host"`
	SMTPPort int    `json:"smtp_port" yaml:"smtp_port"`
	Username string `json:"username" yaml:"username"`
	Password string `json:"password" yaml:"password"`
	From     string `json:"from" yaml:"from"`
	UseTLS   bool   `json:"use_tls" yaml:"use_tls"`
}

// ReadConfig accepts either inline JSON or a path of a JSON file.
func ReadConfig(pathOrJSON string) (*Config, error) {
	data := pathOrJSON
	if !strings.HasPrefix(strings.TrimSpace(pathOrJSON), "{") {
		raw, err := os.ReadFile(pathOrJSON)
		if err != nil {
			return nil, err
		}
		data = string(raw)
	}
	c := &Config{}
	err := json.Unmarshal([]byte(data), c)
	if err != nil {
		return nil, err
	}
	return c, nil
}

type Channel interface {
	Init(cfg Config) error
	Name() string
	Send(ctx context.Context, message *model.Message) error
}

// InitChannels initializes all notification channels from the configuration.
func InitChannels(ctx context.Context, conf *Config) (map[string]Channel, error) {
	channels := make(map[string]Channel)
	if conf.Email != nil {
		emailChannel := &EmailChannel{}
		if err := emailChannel.Init(*conf); err != nil {
			return nil, err
		}
		channels[emailChannel.Name()] = emailChannel
	}
	return channels, nil
}
